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

func sampleMetricsModel() schema.MetricsRenderModel {
	return schema.MetricsRenderModel{
		Title:       "World-Systems Indicators",
		Description: "Ranks are summed into a composite.",
		Formula:     "composite = rank(economic) + rank(military)",
		Indicators: []schema.IndicatorRow{
			{Indicator: schema.Indicators[schema.Economic], Direction: schema.Descending, Active: true},
			{Indicator: schema.Indicators[schema.Military], Direction: schema.Ascending, Active: true},
			{Indicator: schema.Indicators[schema.Diplomatic], Direction: schema.Descending, Active: false},
		},
	}
}

func TestWriteMetricsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMetrics(&buf, sampleMetricsModel(), &contract.Config{Output: schema.TextOut}))

	out := buf.String()
	assert.Contains(t, out, "World-Systems Indicators")
	assert.Contains(t, out, "Global Diplomacy Index")
	assert.Contains(t, out, "lower is better")
	assert.Contains(t, out, "Formula: composite = rank(economic) + rank(military)")
}

func TestWriteMetricsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMetrics(&buf, sampleMetricsModel(), &contract.Config{Output: schema.CSVOut}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"military", "Global Militarization Index", "GMI", "BICC 2022", "score", "asc", "true", "Military resources relative to society"}, records[2])
}

func TestWriteMetricsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMetrics(&buf, sampleMetricsModel(), &contract.Config{Output: schema.JSONOut}))

	var got schema.MetricsRenderModel
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleMetricsModel(), got)
}
