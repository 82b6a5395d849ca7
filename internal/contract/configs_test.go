package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldsys/worldsys/schema"
)

// validInput returns the raw input produced by the default flag values.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Metrics:   []string{"economic", "military", "diplomatic"},
		Precision: DefaultPrecision,
		Output:    "text",
		Color:     "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*ConfigRawInput)
		expectError string
		check       func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.DefaultSelection(), cfg.Selection)
				assert.Equal(t, schema.TextOut, cfg.Output)
				assert.True(t, cfg.UseColors)
				assert.False(t, cfg.CompareMode)
				assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
				assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
				assert.Empty(t, cfg.Categories)
			},
		},
		{
			name: "subset with aliases and direction flag",
			modify: func(in *ConfigRawInput) {
				in.Metrics = []string{"gdi,GDP"}
				in.Direction = []string{"military=asc"}
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []schema.Metric{schema.Economic, schema.Diplomatic}, cfg.Selection.Active)
				assert.Equal(t, schema.Ascending, cfg.Selection.Direction(schema.Military))
			},
		},
		{
			name: "flag direction overrides config file",
			modify: func(in *ConfigRawInput) {
				in.Directions = map[string]string{"military": "asc", "economic": "asc"}
				in.Direction = []string{"economic=desc"}
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.Ascending, cfg.Selection.Direction(schema.Military))
				assert.Equal(t, schema.Descending, cfg.Selection.Direction(schema.Economic))
			},
		},
		{
			name: "category filter and limit",
			modify: func(in *ConfigRawInput) {
				in.Category = []string{"core", "semi"}
				in.Limit = 10
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []schema.Category{schema.Core, schema.SemiPeriphery}, cfg.Categories)
				assert.Equal(t, 10, cfg.ResultLimit)
			},
		},
		{
			name:        "no metrics",
			modify:      func(in *ConfigRawInput) { in.Metrics = nil },
			expectError: "at least one metric must be active",
		},
		{
			name:        "unknown metric",
			modify:      func(in *ConfigRawInput) { in.Metrics = []string{"population"} },
			expectError: `unknown metric "population"`,
		},
		{
			name:        "bad direction",
			modify:      func(in *ConfigRawInput) { in.Direction = []string{"military=up"} },
			expectError: "invalid --direction value",
		},
		{
			name:        "bad output",
			modify:      func(in *ConfigRawInput) { in.Output = "html" },
			expectError: "invalid output format",
		},
		{
			name:        "parquet needs a file",
			modify:      func(in *ConfigRawInput) { in.Output = "parquet" },
			expectError: "--output-file is required",
		},
		{
			name:        "negative limit",
			modify:      func(in *ConfigRawInput) { in.Limit = -1 },
			expectError: "limit must be between",
		},
		{
			name:        "precision too high",
			modify:      func(in *ConfigRawInput) { in.Precision = 9 },
			expectError: "precision must be between",
		},
		{
			name:        "bad color",
			modify:      func(in *ConfigRawInput) { in.Color = "rainbow" },
			expectError: "invalid --color value",
		},
		{
			name:        "bad category",
			modify:      func(in *ConfigRawInput) { in.Category = []string{"center"} },
			expectError: "invalid --category value",
		},
		{
			name:        "bad log format",
			modify:      func(in *ConfigRawInput) { in.LogFormat = "xml" },
			expectError: "invalid log format",
		},
		{
			name: "compare mode fills the missing side",
			modify: func(in *ConfigRawInput) {
				in.TargetMetrics = []string{"economic"}
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.CompareMode)
				assert.Equal(t, schema.DefaultSelection(), cfg.BaseSelection)
				assert.Equal(t, []schema.Metric{schema.Economic}, cfg.TargetSelection.Active)
			},
		},
		{
			name: "compare mode rejects empty side",
			modify: func(in *ConfigRawInput) {
				in.BaseMetrics = []string{","}
				in.TargetMetrics = []string{"economic"}
			},
			expectError: "invalid --base-metrics value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			if tt.modify != nil {
				tt.modify(input)
			}
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestProcessAndValidateConfigurationError(t *testing.T) {
	input := validInput()
	input.Metrics = []string{}

	err := ProcessAndValidate(&Config{}, input)
	assert.True(t, IsConfigurationError(err), "empty selection must surface as a ConfigurationError")
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		Selection:  schema.NewSelection(schema.Economic).WithDirection(schema.Economic, schema.Ascending),
		Categories: []schema.Category{schema.Core},
	}
	clone := cfg.Clone()
	clone.Categories[0] = schema.Periphery
	clone.Selection.Directions[schema.Economic] = schema.Descending

	assert.Equal(t, schema.Core, cfg.Categories[0])
	assert.Equal(t, schema.Ascending, cfg.Selection.Direction(schema.Economic))
}

func TestRevalidateSelection(t *testing.T) {
	fallback := schema.DefaultSelection()

	t.Run("keeps fallback metrics", func(t *testing.T) {
		sel, err := RevalidateSelection(fallback, "", "military=asc")
		require.NoError(t, err)
		assert.Equal(t, schema.AllMetrics, sel.Active)
		assert.Equal(t, schema.Ascending, sel.Direction(schema.Military))
		assert.Equal(t, schema.Descending, fallback.Direction(schema.Military), "fallback is not modified")
	})

	t.Run("replaces metrics", func(t *testing.T) {
		sel, err := RevalidateSelection(fallback, "gdi, gdp", "")
		require.NoError(t, err)
		assert.Equal(t, []schema.Metric{schema.Economic, schema.Diplomatic}, sel.Active)
	})

	t.Run("unknown metric", func(t *testing.T) {
		_, err := RevalidateSelection(fallback, "population", "")
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("bad direction", func(t *testing.T) {
		_, err := RevalidateSelection(fallback, "", "military")
		assert.ErrorContains(t, err, "invalid direction value")
	})

	t.Run("empty fallback", func(t *testing.T) {
		_, err := RevalidateSelection(schema.Selection{}, "", "")
		assert.True(t, IsConfigurationError(err))
	})
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	ProcessProfilingConfig(profile, "")
	assert.False(t, profile.Enabled)

	ProcessProfilingConfig(profile, " run1 ")
	assert.True(t, profile.Enabled)
	assert.Equal(t, "run1", profile.Prefix)
}
