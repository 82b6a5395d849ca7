package contract

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/worldsys/worldsys/schema"
)

// Config holds the runtime configuration for a run.
// This struct is the "final, validated" config.
type Config struct {
	DatasetPath string // Empty means the embedded dataset
	Selection   schema.Selection
	Categories  []schema.Category // Empty means all categories
	ResultLimit int               // 0 means no limit
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	CompareMode     bool
	BaseSelection   schema.Selection
	TargetSelection schema.Selection

	LogLevel  string
	LogFormat string
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Dataset    string   `mapstructure:"dataset"`
	Metrics    []string `mapstructure:"metrics"`
	Direction  []string `mapstructure:"direction"`
	Category   []string `mapstructure:"category"`
	Limit      int      `mapstructure:"limit"`
	Output     string   `mapstructure:"output"`
	OutputFile string   `mapstructure:"output-file"`
	Precision  int      `mapstructure:"precision"`
	Width      int      `mapstructure:"width"`
	Color      string   `mapstructure:"color"`
	LogLevel   string   `mapstructure:"log-level"`
	LogFormat  string   `mapstructure:"log-format"`

	// --- Fields from compareCmd.Flags() ---
	BaseMetrics   []string `mapstructure:"base-metrics"`
	TargetMetrics []string `mapstructure:"target-metrics"`

	// --- Direction overrides from config file, e.g. {military: asc} ---
	Directions map[string]string `mapstructure:"directions"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Selection = c.Selection.Normalize()
	clone.BaseSelection = c.BaseSelection.Normalize()
	clone.TargetSelection = c.TargetSelection.Normalize()
	if c.Categories != nil {
		clone.Categories = slices.Clone(c.Categories)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSelection(cfg, input); err != nil {
		return err
	}
	if err := processCompareMode(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-selection fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.DatasetPath = strings.TrimSpace(input.Dataset)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, xlsx", input.Output)
	}
	if _, fileOnly := schema.FileOnlyOutputModes[cfg.Output]; fileOnly && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for %s output", cfg.Output)
	}

	categories, err := schema.ParseCategories(input.Category...)
	if err != nil {
		return fmt.Errorf("invalid --category value: %w", err)
	}
	cfg.Categories = categories

	cfg.LogLevel = input.LogLevel
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogFormat = strings.ToLower(input.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if _, ok := ValidLogFormats[cfg.LogFormat]; !ok {
		return fmt.Errorf("invalid log format '%s'. must be console, json", input.LogFormat)
	}

	return nil
}

// processSelection builds the active-metric selection. Direction overrides from
// the config file are applied first so --direction flags win.
func processSelection(cfg *Config, input *ConfigRawInput) error {
	directions, err := parseDirectionInputs(input)
	if err != nil {
		return err
	}
	sel, err := buildSelection(input.Metrics, directions)
	if err != nil {
		return fmt.Errorf("invalid --metrics value: %w", err)
	}
	cfg.Selection = sel
	return nil
}

// processCompareMode resolves the base and target selections. A side that is
// not given falls back to the main selection.
func processCompareMode(cfg *Config, input *ConfigRawInput) error {
	cfg.CompareMode = len(input.BaseMetrics) > 0 || len(input.TargetMetrics) > 0
	cfg.BaseSelection = cfg.Selection.Normalize()
	cfg.TargetSelection = cfg.Selection.Normalize()
	if !cfg.CompareMode {
		return nil
	}

	directions, err := parseDirectionInputs(input)
	if err != nil {
		return err
	}
	if len(input.BaseMetrics) > 0 {
		if cfg.BaseSelection, err = buildSelection(input.BaseMetrics, directions); err != nil {
			return fmt.Errorf("invalid --base-metrics value: %w", err)
		}
	}
	if len(input.TargetMetrics) > 0 {
		if cfg.TargetSelection, err = buildSelection(input.TargetMetrics, directions); err != nil {
			return fmt.Errorf("invalid --target-metrics value: %w", err)
		}
	}
	return nil
}

// parseDirectionInputs merges the config-file directions map with --direction pairs.
func parseDirectionInputs(input *ConfigRawInput) (map[schema.Metric]schema.Direction, error) {
	out := make(map[schema.Metric]schema.Direction)
	keys := slices.Sorted(maps.Keys(input.Directions))
	for _, key := range keys {
		m, err := schema.ParseMetric(key)
		if err != nil {
			return nil, fmt.Errorf("invalid directions entry: %w", err)
		}
		d, err := schema.ParseDirection(input.Directions[key])
		if err != nil {
			return nil, fmt.Errorf("invalid directions entry: %w", err)
		}
		out[m] = d
	}
	flags, err := schema.ParseDirections(input.Direction...)
	if err != nil {
		return nil, fmt.Errorf("invalid --direction value: %w", err)
	}
	maps.Copy(out, flags)
	return out, nil
}

// buildSelection parses metric names and applies the direction overrides.
func buildSelection(metrics []string, directions map[schema.Metric]schema.Direction) (schema.Selection, error) {
	parsed, err := schema.ParseMetrics(metrics...)
	if err != nil {
		return schema.Selection{}, err
	}
	sel := schema.NewSelection(parsed...)
	for m, d := range directions {
		sel = sel.WithDirection(m, d)
	}
	if err := sel.Validate(); err != nil {
		return schema.Selection{}, err
	}
	return sel, nil
}

// IsConfigurationError reports whether err is, or wraps, a *schema.ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *schema.ConfigurationError
	return errors.As(err, &cfgErr)
}

// RevalidateSelection builds a selection from tool-style arguments: a
// comma-separated metric list and "metric=asc" pairs. When metrics is empty
// the fallback selection is kept and only the directions are applied.
func RevalidateSelection(fallback schema.Selection, metrics, directions string) (schema.Selection, error) {
	overrides, err := schema.ParseDirections(directions)
	if err != nil {
		return schema.Selection{}, fmt.Errorf("invalid direction value: %w", err)
	}
	if strings.TrimSpace(metrics) == "" {
		sel := fallback.Normalize()
		for m, d := range overrides {
			sel = sel.WithDirection(m, d)
		}
		if err := sel.Validate(); err != nil {
			return schema.Selection{}, err
		}
		return sel, nil
	}
	sel, err := buildSelection([]string{metrics}, overrides)
	if err != nil {
		return schema.Selection{}, fmt.Errorf("invalid metrics value: %w", err)
	}
	return sel, nil
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) {
	profilePrefix = strings.TrimSpace(profilePrefix)
	profile.Enabled = profilePrefix != ""
	profile.Prefix = profilePrefix
}
