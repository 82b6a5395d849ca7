package outwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/schema"
)

// sampleClassification is a hand-built classification of three countries
// under economic + diplomatic, military inactive.
func sampleClassification() schema.Classification {
	sel := schema.NewSelection(schema.Economic, schema.Diplomatic)
	return schema.Classification{
		Selection:   sel,
		Total:       3,
		TertileSize: 1,
		Records: []schema.RankedRecord{
			{
				Record:         schema.Record{Identifier: "USA", Name: "United States", Economic: 85810, Military: 706.2, Diplomatic: 271},
				Ranks:          map[schema.Metric]int{schema.Economic: 1, schema.Diplomatic: 1},
				CompositeScore: 2,
				FinalRank:      1,
				Category:       schema.Core,
			},
			{
				Record:         schema.Record{Identifier: "BRA", Name: "Brazil", Economic: 10295.5, Military: 664.1, Diplomatic: 227},
				Ranks:          map[schema.Metric]int{schema.Economic: 2, schema.Diplomatic: 2},
				CompositeScore: 4,
				FinalRank:      2,
				Category:       schema.SemiPeriphery,
			},
			{
				Record:         schema.Record{Identifier: "MLI", Name: "Mali", Economic: 897, Military: 621, Diplomatic: 33},
				Ranks:          map[schema.Metric]int{schema.Economic: 3, schema.Diplomatic: 3},
				CompositeScore: 6,
				FinalRank:      3,
				Category:       schema.Periphery,
			},
		},
	}
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		metrics int
		want    int
	}{
		{"wide terminal is capped", 200, 3, 40},
		{"narrow terminal is floored", 60, 3, 12},
		{"in between", 100, 1, 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, GetMaxTableNameWidth(cfg, tt.metrics))
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "$85,810", formatValue(schema.Economic, 85810.4, 1))
	assert.Equal(t, "$10,296", formatValue(schema.Economic, 10295.5, 1))
	assert.Equal(t, "1,271", formatValue(schema.Diplomatic, 1271, 1))
	assert.Equal(t, "706.2", formatValue(schema.Military, 706.23, 1))
	assert.Equal(t, "706.23", formatValue(schema.Military, 706.23, 2))
}

func TestRawFloat(t *testing.T) {
	assert.Equal(t, "706.2", rawFloat(706.2))
	assert.Equal(t, "85810", rawFloat(85810))
	assert.Equal(t, "0.125", rawFloat(0.125))
}

func TestColorizerDisabled(t *testing.T) {
	upper := func(a ...any) string { return "X" }
	assert.Equal(t, "plain", colorizer(false, upper)("plain"))
	assert.Equal(t, "X", colorizer(true, upper)("plain"))
}

func TestCountCategoriesIncludesEmpty(t *testing.T) {
	counts := countCategories(nil)
	assert.Equal(t, map[schema.Category]int{
		schema.Core:          0,
		schema.SemiPeriphery: 0,
		schema.Periphery:     0,
	}, counts)

	counts = countCategories(sampleClassification().Records)
	assert.Equal(t, 1, counts[schema.Core])
	assert.Equal(t, 1, counts[schema.SemiPeriphery])
	assert.Equal(t, 1, counts[schema.Periphery])
}
