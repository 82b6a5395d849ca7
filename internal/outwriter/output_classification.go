package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/internal/parquet"
	"github.com/worldsys/worldsys/internal/xlsxio"
	"github.com/worldsys/worldsys/schema"
	"go.uber.org/zap"
)

// errBinaryOutput is returned when a binary format is asked to write to a stream.
var errBinaryOutput = errors.New("parquet and xlsx output need --output-file")

// classificationJSON is the JSON document for a classification.
type classificationJSON struct {
	Selection   schema.Selection        `json:"selection"`
	Total       int                     `json:"total"`
	TertileSize float64                 `json:"tertile_size"`
	Counts      map[schema.Category]int `json:"counts"`
	Shown       int                     `json:"shown"`
	Records     []schema.ExportRow      `json:"records"`
}

// PrintClassification writes rows of c to cfg.OutputFile (stdout when empty)
// in the configured format.
func PrintClassification(c schema.Classification, rows []schema.RankedRecord, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.ParquetOut:
		data := parquet.ConvertExportRows(schema.ToExportRows(rows), c.Selection, time.Now())
		if err := parquet.WriteClassificationParquet(data, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		zap.L().Info("Wrote Parquet", zap.String("path", cfg.OutputFile), zap.Int("rows", len(rows)))
		return nil
	case schema.XLSXOut:
		if err := xlsxio.WriteClassificationXLSX(schema.ToExportRows(rows), c.Selection, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
		zap.L().Info("Wrote XLSX", zap.String("path", cfg.OutputFile), zap.Int("rows", len(rows)))
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return WriteClassification(w, c, rows, cfg, duration)
		}, "Wrote "+strings.ToUpper(string(cfg.Output)))
	}
}

// WriteClassification outputs the classification, dispatching based on the output format configured.
func WriteClassification(w io.Writer, c schema.Classification, rows []schema.RankedRecord, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeClassificationJSON(w, c, rows); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeClassificationCSV(w, rows); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut, schema.XLSXOut:
		return errBinaryOutput
	default:
		return writeClassificationTable(w, c, rows, cfg, duration)
	}
	return nil
}

// writeClassificationTable generates and writes the human-readable table.
// Only active metrics get value and rank columns.
func writeClassificationTable(w io.Writer, c schema.Classification, rows []schema.RankedRecord, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"Rank", "Code", "Country", "Category", "Composite"}
	for _, m := range c.Selection.Active {
		headers = append(headers, schema.ShortName(m), "#")
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := GetMaxTableNameWidth(cfg, len(c.Selection.Active))
	var data [][]string
	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.FinalRank),
			r.Identifier,
			contract.TruncateName(r.Name, nameWidth),
			contract.CategoryLabel(r.Category, cfg.UseColors),
			strconv.Itoa(r.CompositeScore),
		}
		for _, m := range c.Selection.Active {
			rank, _ := r.Rank(m)
			row = append(row, formatValue(m, r.Value(m), cfg.Precision), strconv.Itoa(rank))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	counts := countCategories(c.Records)
	if _, err := fmt.Fprintf(w, "Showing %d of %d countries ranked by %s\n", len(rows), c.Total, c.Selection.Label()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Core: %d, Semi-Periphery: %d, Periphery: %d (tertile size %.2f)\n",
		counts[schema.Core], counts[schema.SemiPeriphery], counts[schema.Periphery], c.TertileSize); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Classification completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeClassificationCSV writes the export columns. Raw values are written
// exactly and inactive ranks are empty cells.
func writeClassificationCSV(w io.Writer, rows []schema.RankedRecord) error {
	return writeCSVWithHeader(w, schema.ExportHeader, func(cw *csv.Writer) error {
		for _, r := range rows {
			if err := cw.Write(schema.ToExportRow(r).ExportRecord(rawFloat)); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeClassificationJSON marshals the classification with the shown rows.
func writeClassificationJSON(w io.Writer, c schema.Classification, rows []schema.RankedRecord) error {
	return writeJSON(w, classificationJSON{
		Selection:   c.Selection,
		Total:       c.Total,
		TertileSize: c.TertileSize,
		Counts:      countCategories(c.Records),
		Shown:       len(rows),
		Records:     schema.ToExportRows(rows),
	})
}

// countCategories tallies categories, always including all three.
func countCategories(records []schema.RankedRecord) map[schema.Category]int {
	counts := make(map[schema.Category]int, len(schema.AllCategories))
	for _, cat := range schema.AllCategories {
		counts[cat] = 0
	}
	for _, r := range records {
		counts[r.Category]++
	}
	return counts
}
