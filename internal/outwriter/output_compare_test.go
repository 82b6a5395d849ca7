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

func sampleComparison() schema.ComparisonResult {
	return schema.ComparisonResult{
		Base:   schema.DefaultSelection(),
		Target: schema.NewSelection(schema.Economic),
		Details: []schema.ComparisonDetail{
			{
				Identifier:     "LUX",
				Name:           "Luxembourg",
				BeforeRank:     71,
				AfterRank:      1,
				DeltaRank:      -70,
				BeforeCategory: schema.SemiPeriphery,
				AfterCategory:  schema.Core,
				Movement:       schema.Promoted,
			},
			{
				Identifier:     "UKR",
				Name:           "Ukraine",
				BeforeRank:     37,
				AfterRank:      90,
				DeltaRank:      53,
				BeforeCategory: schema.Core,
				AfterCategory:  schema.Periphery,
				Movement:       schema.Demoted,
			},
			{
				Identifier:     "USA",
				Name:           "United States",
				BeforeRank:     1,
				AfterRank:      1,
				BeforeCategory: schema.Core,
				AfterCategory:  schema.Core,
				Movement:       schema.Unchanged,
			},
		},
		Summary: schema.ComparisonSummary{
			Promoted:     1,
			Demoted:      1,
			Unchanged:    1,
			BeforeCounts: map[schema.Category]int{schema.Core: 2, schema.SemiPeriphery: 1},
			AfterCounts:  map[schema.Category]int{schema.Core: 2, schema.Periphery: 1},
		},
	}
}

func TestWriteComparisonTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut, Width: 120}
	require.NoError(t, WriteComparison(&buf, sampleComparison(), cfg, 0))

	out := buf.String()
	assert.Contains(t, out, "Luxembourg")
	assert.Contains(t, out, "-70 ▲")
	assert.Contains(t, out, "+53 ▼")
	assert.Contains(t, out, "Semi-Periphery → Core")
	assert.Contains(t, out, "Base: GDP per Capita + GMI + GDI | Target: GDP per Capita")
	assert.Contains(t, out, "Promoted: 1, Demoted: 1, Unchanged: 1")
	assert.Contains(t, out, "Core 2 → 2, Semi-Periphery 1 → 0, Periphery 0 → 1")
}

func TestWriteComparisonCSV(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.CSVOut}
	require.NoError(t, WriteComparison(&buf, sampleComparison(), cfg, 0))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "movement", records[0][7])
	assert.Equal(t, []string{"UKR", "Ukraine", "37", "90", "53", "Core", "Periphery", "demoted"}, records[2])
}

func TestWriteComparisonJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.JSONOut}
	require.NoError(t, WriteComparison(&buf, sampleComparison(), cfg, 0))

	var got schema.ComparisonResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleComparison().Details, got.Details)
	assert.Equal(t, 1, got.Summary.Promoted)
}

func TestWriteComparisonRejectsBinary(t *testing.T) {
	var buf bytes.Buffer
	err := WriteComparison(&buf, sampleComparison(), &contract.Config{Output: schema.XLSXOut}, 0)
	assert.ErrorContains(t, err, "compare does not support xlsx output")
}
