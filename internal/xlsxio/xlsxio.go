// Package xlsxio exports classified records to Excel workbooks and reads them back.
package xlsxio

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"github.com/worldsys/worldsys/schema"
)

// Sheet names used in exported workbooks.
const (
	ClassificationSheet = "classification"
	SelectionSheet      = "selection"
)

// WriteClassificationXLSX writes rows to the classification sheet and the
// active selection to a second sheet. Inactive ranks are left blank.
func WriteClassificationXLSX(rows []schema.ExportRow, sel schema.Selection, outputPath string) error {
	f := xlsx.NewFile()

	sheet, err := f.AddSheet(ClassificationSheet)
	if err != nil {
		return eris.Wrap(err, "xlsx: add classification sheet")
	}
	header := sheet.AddRow()
	for _, h := range schema.ExportHeader {
		header.AddCell().SetString(h)
	}
	for _, r := range rows {
		row := sheet.AddRow()
		row.AddCell().SetInt(r.FinalRank)
		row.AddCell().SetString(r.Identifier)
		row.AddCell().SetString(r.Name)
		row.AddCell().SetString(string(r.Category))
		row.AddCell().SetInt(r.CompositeScore)
		row.AddCell().SetFloat(r.Economic)
		addRank(row, r.EconomicRank)
		row.AddCell().SetFloat(r.Military)
		addRank(row, r.MilitaryRank)
		row.AddCell().SetFloat(r.Diplomatic)
		addRank(row, r.DiplomaticRank)
	}

	meta, err := f.AddSheet(SelectionSheet)
	if err != nil {
		return eris.Wrap(err, "xlsx: add selection sheet")
	}
	metaHeader := meta.AddRow()
	for _, h := range []string{"metric", "active", "direction"} {
		metaHeader.AddCell().SetString(h)
	}
	for _, m := range schema.AllMetrics {
		row := meta.AddRow()
		row.AddCell().SetString(string(m))
		row.AddCell().SetBool(sel.IsActive(m))
		row.AddCell().SetString(string(sel.Direction(m)))
	}

	if err := f.Save(outputPath); err != nil {
		return eris.Wrap(err, "xlsx: save workbook")
	}
	return nil
}

// ReadClassificationXLSX reads the classification sheet of a workbook written
// by WriteClassificationXLSX.
func ReadClassificationXLSX(path string) ([]schema.ExportRow, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}
	sheet, ok := f.Sheet[ClassificationSheet]
	if !ok {
		return nil, eris.Errorf("xlsx: sheet %q not found", ClassificationSheet)
	}
	if len(sheet.Rows) == 0 {
		return nil, eris.New("xlsx: classification sheet is empty")
	}

	header := rowToStrings(sheet.Rows[0])
	out := make([]schema.ExportRow, 0, len(sheet.Rows)-1)
	for i, row := range sheet.Rows[1:] {
		cells := rowToStrings(row)
		if strings.Join(cells, "") == "" {
			continue
		}
		parsed, err := schema.ParseExportRecord(header, cells)
		if err != nil {
			return nil, eris.Wrap(err, fmt.Sprintf("xlsx: row %d", i+2))
		}
		out = append(out, parsed)
	}
	return out, nil
}

func addRank(row *xlsx.Row, rank *int) {
	cell := row.AddCell()
	if rank != nil {
		cell.SetInt(*rank)
	}
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
