package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/schema"
)

// PrintComparison writes the comparison to cfg.OutputFile (stdout when empty).
func PrintComparison(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteComparison(w, result, cfg, duration)
	}, "Wrote comparison")
}

// WriteComparison outputs the comparison results, dispatching based on the output format configured.
func WriteComparison(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeComparisonCSV(w, result); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut, schema.XLSXOut:
		return fmt.Errorf("compare does not support %s output", cfg.Output)
	default:
		return writeComparisonTable(w, result, cfg, duration)
	}
	return nil
}

// writeComparisonTable writes the movements in a custom comparison format.
func writeComparisonTable(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"Code", "Country", "Before", "After", "Delta", "Category", "Movement"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	green := colorizer(cfg.UseColors, color.New(color.FgGreen).SprintFunc())
	red := colorizer(cfg.UseColors, color.New(color.FgRed).SprintFunc())
	nameWidth := GetMaxTableNameWidth(cfg, 2)

	var data [][]string
	for _, d := range result.Details {
		var deltaStr string
		switch {
		case d.DeltaRank < 0:
			// Moving up the table is good
			deltaStr = green(fmt.Sprintf("%d ▲", d.DeltaRank))
		case d.DeltaRank > 0:
			deltaStr = red(fmt.Sprintf("+%d ▼", d.DeltaRank))
		default:
			deltaStr = "0"
		}

		category := contract.CategoryLabel(d.AfterCategory, cfg.UseColors)
		if d.BeforeCategory != d.AfterCategory {
			category = contract.CategoryLabel(d.BeforeCategory, cfg.UseColors) + " → " + category
		}

		movement := string(d.Movement)
		switch d.Movement {
		case schema.Promoted:
			movement = green(movement)
		case schema.Demoted:
			movement = red(movement)
		}

		data = append(data, []string{
			d.Identifier,
			contract.TruncateName(d.Name, nameWidth),
			strconv.Itoa(d.BeforeRank),
			strconv.Itoa(d.AfterRank),
			deltaStr,
			category,
			movement,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := result.Summary
	if _, err := fmt.Fprintf(w, "Base: %s | Target: %s\n", result.Base.Label(), result.Target.Label()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Promoted: %d, Demoted: %d, Unchanged: %d\n", s.Promoted, s.Demoted, s.Unchanged); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Core %d → %d, Semi-Periphery %d → %d, Periphery %d → %d\n",
		s.BeforeCounts[schema.Core], s.AfterCounts[schema.Core],
		s.BeforeCounts[schema.SemiPeriphery], s.AfterCounts[schema.SemiPeriphery],
		s.BeforeCounts[schema.Periphery], s.AfterCounts[schema.Periphery]); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Comparison completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeComparisonCSV writes one row per record.
func writeComparisonCSV(w io.Writer, result schema.ComparisonResult) error {
	header := []string{
		"identifier",
		"name",
		"before_rank",
		"after_rank",
		"delta_rank",
		"before_category",
		"after_category",
		"movement",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, d := range result.Details {
			row := []string{
				d.Identifier,
				d.Name,
				strconv.Itoa(d.BeforeRank),
				strconv.Itoa(d.AfterRank),
				strconv.Itoa(d.DeltaRank),
				string(d.BeforeCategory),
				string(d.AfterCategory),
				string(d.Movement),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
