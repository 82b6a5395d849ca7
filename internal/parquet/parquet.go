// Package parquet exports classified records to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/rotisserie/eris"
	"github.com/worldsys/worldsys/schema"
)

// ClassificationRow is one classified country.
// Column names and order follow schema.ExportHeader, plus run metadata.
type ClassificationRow struct {
	// FinalRank is the competition rank of the composite score (1 = most core-like)
	FinalRank int32 `parquet:"final_rank,snappy"`

	// Identifier is the ISO-3166 alpha-3 country code
	Identifier string `parquet:"identifier,snappy"`

	// Name is the display label of the country
	Name string `parquet:"name,snappy"`

	// Category is Core, Semi-Periphery or Periphery
	Category string `parquet:"category,snappy,dict"`

	// CompositeScore is the sum of the active metric ranks
	CompositeScore int32 `parquet:"composite_score,snappy"`

	Economic     float64 `parquet:"economic,snappy"`
	EconomicRank *int32  `parquet:"economic_rank,optional,snappy"`

	Military     float64 `parquet:"military,snappy"`
	MilitaryRank *int32  `parquet:"military_rank,optional,snappy"`

	Diplomatic     float64 `parquet:"diplomatic,snappy"`
	DiplomaticRank *int32  `parquet:"diplomatic_rank,optional,snappy"`

	// Metrics lists the active metrics of the run, comma separated
	Metrics string `parquet:"metrics,snappy,dict"`

	// ExportedAt is when the file was written (stored as TIMESTAMP with nanosecond precision)
	ExportedAt time.Time `parquet:"exported_at,snappy"`
}

// ConvertExportRows converts schema.ExportRow values for Parquet export.
func ConvertExportRows(rows []schema.ExportRow, sel schema.Selection, exportedAt time.Time) []ClassificationRow {
	metrics := strings.Join(sel.Keys(), ",")
	result := make([]ClassificationRow, len(rows))
	for i, r := range rows {
		result[i] = ClassificationRow{
			FinalRank:      int32(r.FinalRank),
			Identifier:     r.Identifier,
			Name:           r.Name,
			Category:       string(r.Category),
			CompositeScore: int32(r.CompositeScore),
			Economic:       r.Economic,
			EconomicRank:   toInt32(r.EconomicRank),
			Military:       r.Military,
			MilitaryRank:   toInt32(r.MilitaryRank),
			Diplomatic:     r.Diplomatic,
			DiplomaticRank: toInt32(r.DiplomaticRank),
			Metrics:        metrics,
			ExportedAt:     exportedAt,
		}
	}
	return result
}

// ToExportRow converts a Parquet row back to the export shape.
func (r ClassificationRow) ToExportRow() schema.ExportRow {
	return schema.ExportRow{
		FinalRank:      int(r.FinalRank),
		Identifier:     r.Identifier,
		Name:           r.Name,
		Category:       schema.Category(r.Category),
		CompositeScore: int(r.CompositeScore),
		Economic:       r.Economic,
		EconomicRank:   toInt(r.EconomicRank),
		Military:       r.Military,
		MilitaryRank:   toInt(r.MilitaryRank),
		Diplomatic:     r.Diplomatic,
		DiplomaticRank: toInt(r.DiplomaticRank),
	}
}

// WriteClassificationParquet writes a slice of ClassificationRow structs to a Parquet file.
func WriteClassificationParquet(data []ClassificationRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "parquet: create output file")
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the ClassificationRow struct tags
	writer := parquet.NewGenericWriter[ClassificationRow](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return eris.Wrap(err, "parquet: write rows")
	}
	if err := writer.Close(); err != nil {
		return eris.Wrap(err, "parquet: close writer")
	}
	return nil
}

// ReadClassificationParquet reads back a file written by WriteClassificationParquet.
func ReadClassificationParquet(path string) ([]ClassificationRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "parquet: open input file")
	}
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[ClassificationRow](file)
	defer func() { _ = reader.Close() }()

	rows := make([]ClassificationRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		return nil, eris.Wrap(err, "parquet: read rows")
	}
	return rows[:n], nil
}

func toInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	out := int32(*v)
	return &out
}

func toInt(v *int32) *int {
	if v == nil {
		return nil
	}
	out := int(*v)
	return &out
}
