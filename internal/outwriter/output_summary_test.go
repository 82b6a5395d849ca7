package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/schema"
)

func sampleSummary() schema.Summary {
	dist := func(n int, v float64) schema.Distribution {
		if n == 0 {
			return schema.Distribution{}
		}
		return schema.Distribution{Count: n, Min: v, Q1: v, Median: v, Q3: v, Max: v, Mean: v}
	}
	var metrics []schema.MetricSummary
	for _, m := range schema.AllMetrics {
		metrics = append(metrics, schema.MetricSummary{
			Metric: m,
			Active: m != schema.Military,
			ByCategory: map[schema.Category]schema.Distribution{
				schema.Core:          dist(2, 50000),
				schema.SemiPeriphery: dist(1, 12000.25),
				schema.Periphery:     dist(0, 0),
			},
		})
	}
	return schema.Summary{
		Selection:   schema.NewSelection(schema.Economic, schema.Diplomatic),
		Total:       3,
		TertileSize: 1,
		Counts: map[schema.Category]int{
			schema.Core:          2,
			schema.SemiPeriphery: 1,
			schema.Periphery:     0,
		},
		Metrics: metrics,
	}
}

func TestWriteSummaryText(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1}
	require.NoError(t, WriteSummary(&buf, sampleSummary(), cfg, 0))

	out := buf.String()
	assert.Contains(t, out, "GDP per Capita (active)")
	assert.Contains(t, out, "Global Militarization Index (inactive)")
	assert.Contains(t, out, "$50,000")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "3 countries, tertile size 1.00")
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.CSVOut}
	require.NoError(t, WriteSummary(&buf, sampleSummary(), cfg, 0))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// header + 3 metrics x 3 categories
	require.Len(t, records, 10)
	assert.Equal(t, "metric", records[0][0])
	assert.Equal(t, []string{"economic", "true", "Semi-Periphery", "1", "12000.25", "12000.25", "12000.25", "12000.25", "12000.25", "12000.25"}, records[2])
	assert.Equal(t, "false", records[4][1])
}

func TestWriteSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.JSONOut}
	require.NoError(t, WriteSummary(&buf, sampleSummary(), cfg, 0))

	var got schema.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Counts[schema.Core])
	assert.Len(t, got.Metrics, 3)
}

func TestWriteSummaryRejectsBinary(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSummary(&buf, sampleSummary(), &contract.Config{Output: schema.ParquetOut}, 0)
	assert.ErrorContains(t, err, "summary does not support parquet output")
}

func TestRoundTo(t *testing.T) {
	assert.InDelta(t, 3.0, roundTo(2.999, 1), 1e-9)
	assert.InDelta(t, 2.35, roundTo(2.349, 2), 1e-9)
}
