package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/schema"
)

// PrintSummary writes the summary to cfg.OutputFile (stdout when empty).
func PrintSummary(s schema.Summary, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteSummary(w, s, cfg, duration)
	}, "Wrote summary")
}

// WriteSummary outputs the summary, dispatching based on the output format configured.
func WriteSummary(w io.Writer, s schema.Summary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, s); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSummaryCSV(w, s); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut, schema.XLSXOut:
		return fmt.Errorf("summary does not support %s output", cfg.Output)
	default:
		return writeSummaryText(w, s, cfg, fmtFloat, duration)
	}
	return nil
}

// writeSummaryText prints the three headline counts, then one box plot table per metric.
func writeSummaryText(w io.Writer, s schema.Summary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "World-Systems Classification (%s)\n\n", s.Selection.Label()); err != nil {
		return err
	}

	counts := tablewriter.NewWriter(w)
	counts.Header([]string{"Category", "Countries", "Share"})
	counts.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, cat := range schema.AllCategories {
		n := s.Counts[cat]
		share := 0.0
		if s.Total > 0 {
			share = 100 * float64(n) / float64(s.Total)
		}
		data = append(data, []string{
			contract.CategoryLabel(cat, cfg.UseColors),
			strconv.Itoa(n),
			fmtFloat(share) + "%",
		})
	}
	if err := counts.Bulk(data); err != nil {
		return err
	}
	if err := counts.Render(); err != nil {
		return err
	}

	for _, ms := range s.Metrics {
		state := "inactive"
		if ms.Active {
			state = "active"
		}
		if _, err := fmt.Fprintf(w, "\n%s (%s)\n", schema.Indicators[ms.Metric].Name, state); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Category", "N", "Min", "Q1", "Median", "Q3", "Max", "Mean"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		var rows [][]string
		for _, cat := range schema.AllCategories {
			d := ms.ByCategory[cat]
			row := []string{contract.CategoryLabel(cat, cfg.UseColors), strconv.Itoa(d.Count)}
			if d.Count == 0 {
				row = append(row, "-", "-", "-", "-", "-", "-")
			} else {
				for _, v := range []float64{d.Min, d.Q1, d.Median, d.Q3, d.Max, d.Mean} {
					row = append(row, formatValue(ms.Metric, roundTo(v, cfg.Precision), cfg.Precision))
				}
			}
			rows = append(rows, row)
		}
		if err := table.Bulk(rows); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n%d countries, tertile size %.2f. Summary completed in %v\n", s.Total, s.TertileSize, duration); err != nil {
		return err
	}
	return nil
}

// writeSummaryCSV writes one row per metric and category.
func writeSummaryCSV(w io.Writer, s schema.Summary) error {
	header := []string{"metric", "active", "category", "count", "min", "q1", "median", "q3", "max", "mean"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, ms := range s.Metrics {
			for _, cat := range schema.AllCategories {
				d := ms.ByCategory[cat]
				row := []string{
					string(ms.Metric),
					strconv.FormatBool(ms.Active),
					string(cat),
					strconv.Itoa(d.Count),
					rawFloat(d.Min),
					rawFloat(d.Q1),
					rawFloat(d.Median),
					rawFloat(d.Q3),
					rawFloat(d.Max),
					rawFloat(d.Mean),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// roundTo rounds v to precision decimals so whole results print without decimals.
func roundTo(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}
