package xlsxio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"github.com/worldsys/worldsys/schema"
)

func intPtr(v int) *int { return &v }

func TestWriteClassificationXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classification.xlsx")
	rows := []schema.ExportRow{
		{
			FinalRank: 1, Identifier: "USA", Name: "United States", Category: schema.Core, CompositeScore: 8,
			Economic: 85810, EconomicRank: intPtr(6), Military: 639, Diplomatic: 271, DiplomaticRank: intPtr(2),
		},
		{
			FinalRank: 3, Identifier: "AFG", Name: "Afghanistan", Category: schema.Periphery, CompositeScore: 150,
			Economic: 415, EconomicRank: intPtr(112), Military: 520, Diplomatic: 40, DiplomaticRank: intPtr(38),
		},
	}
	sel := schema.NewSelection(schema.Economic, schema.Diplomatic)

	require.NoError(t, WriteClassificationXLSX(rows, sel, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 2)

	sheet := f.Sheet[ClassificationSheet]
	require.NotNil(t, sheet)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "final_rank", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "USA", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "", sheet.Rows[1].Cells[8].String(), "inactive military rank is blank")

	meta := f.Sheet[SelectionSheet]
	require.NotNil(t, meta)
	require.Len(t, meta.Rows, 4)
	assert.Equal(t, "military", meta.Rows[2].Cells[0].String())

	got, err := ReadClassificationXLSX(path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReadClassificationXLSX_MissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.xlsx")
	f := xlsx.NewFile()
	_, err := f.AddSheet("Sheet1")
	require.NoError(t, err)
	require.NoError(t, f.Save(path))

	_, err = ReadClassificationXLSX(path)
	assert.ErrorContains(t, err, "not found")
}

func TestWriteClassificationXLSX_InvalidPath(t *testing.T) {
	err := WriteClassificationXLSX(nil, schema.DefaultSelection(), filepath.Join(t.TempDir(), "missing", "out.xlsx"))
	assert.Error(t, err)
}
