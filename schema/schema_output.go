package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// ExportRow is the flat, export-friendly shape of a RankedRecord.
// Rank pointers are nil for inactive metrics.
type ExportRow struct {
	FinalRank      int      `json:"final_rank"`
	Identifier     string   `json:"identifier"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	CompositeScore int      `json:"composite_score"`
	Economic       float64  `json:"economic"`
	EconomicRank   *int     `json:"economic_rank"`
	Military       float64  `json:"military"`
	MilitaryRank   *int     `json:"military_rank"`
	Diplomatic     float64  `json:"diplomatic"`
	DiplomaticRank *int     `json:"diplomatic_rank"`
}

// ExportHeader lists the export columns in order.
var ExportHeader = []string{
	"final_rank",
	"identifier",
	"name",
	"category",
	"composite_score",
	"economic",
	"economic_rank",
	"military",
	"military_rank",
	"diplomatic",
	"diplomatic_rank",
}

// ToExportRow flattens a RankedRecord.
func ToExportRow(r RankedRecord) ExportRow {
	rankPtr := func(m Metric) *int {
		if v, ok := r.Ranks[m]; ok {
			return &v
		}
		return nil
	}
	return ExportRow{
		FinalRank:      r.FinalRank,
		Identifier:     r.Identifier,
		Name:           r.Name,
		Category:       r.Category,
		CompositeScore: r.CompositeScore,
		Economic:       r.Economic,
		EconomicRank:   rankPtr(Economic),
		Military:       r.Military,
		MilitaryRank:   rankPtr(Military),
		Diplomatic:     r.Diplomatic,
		DiplomaticRank: rankPtr(Diplomatic),
	}
}

// ToExportRows flattens a list of RankedRecords.
func ToExportRows(records []RankedRecord) []ExportRow {
	out := make([]ExportRow, len(records))
	for i, r := range records {
		out[i] = ToExportRow(r)
	}
	return out
}

// ExportRecord renders the row as string cells in ExportHeader order.
// Inactive ranks become empty cells.
func (r ExportRow) ExportRecord(fmtFloat func(float64) string) []string {
	rankCell := func(v *int) string {
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	}
	return []string{
		strconv.Itoa(r.FinalRank),
		r.Identifier,
		r.Name,
		string(r.Category),
		strconv.Itoa(r.CompositeScore),
		fmtFloat(r.Economic),
		rankCell(r.EconomicRank),
		fmtFloat(r.Military),
		rankCell(r.MilitaryRank),
		fmtFloat(r.Diplomatic),
		rankCell(r.DiplomaticRank),
	}
}

// ParseExportRecord is the inverse of ExportRecord. header maps each
// ExportHeader column to its position in cells; columns may be in any order.
func ParseExportRecord(header []string, cells []string) (ExportRow, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"identifier", "category"} {
		if _, ok := pos[col]; !ok {
			return ExportRow{}, fmt.Errorf("missing column %q", col)
		}
	}
	get := func(col string) string {
		i, ok := pos[col]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}
	var firstErr error
	intCell := func(col string) int {
		s := get(col)
		if s == "" {
			return 0
		}
		v, err := strconv.Atoi(s)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("column %s: %w", col, err)
		}
		return v
	}
	floatCell := func(col string) float64 {
		s := get(col)
		if s == "" {
			return 0
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("column %s: %w", col, err)
		}
		return v
	}
	rankCell := func(col string) *int {
		if get(col) == "" {
			return nil
		}
		v := intCell(col)
		return &v
	}

	row := ExportRow{
		FinalRank:      intCell("final_rank"),
		Identifier:     get("identifier"),
		Name:           get("name"),
		Category:       Category(get("category")),
		CompositeScore: intCell("composite_score"),
		Economic:       floatCell("economic"),
		EconomicRank:   rankCell("economic_rank"),
		Military:       floatCell("military"),
		MilitaryRank:   rankCell("military_rank"),
		Diplomatic:     floatCell("diplomatic"),
		DiplomaticRank: rankCell("diplomatic_rank"),
	}
	if firstErr != nil {
		return ExportRow{}, firstErr
	}
	if row.Category.Tier() < 0 {
		return ExportRow{}, fmt.Errorf("unknown category %q", row.Category)
	}
	return row, nil
}
