package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/schema"
)

// PrintCheck writes the dataset health report to cfg.OutputFile (stdout when empty).
func PrintCheck(result schema.CheckResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteCheck(w, result, cfg)
	}, "Wrote check report")
}

// WriteCheck outputs the dataset health report in the configured format.
func WriteCheck(w io.Writer, result schema.CheckResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, result)
	case schema.CSVOut:
		return writeCheckCSV(w, result)
	case schema.ParquetOut, schema.XLSXOut:
		return fmt.Errorf("check does not support %s output", cfg.Output)
	default:
		return writeCheckText(w, result, cfg)
	}
}

// writeCheckText prints the verdict, the per-metric table and every issue.
func writeCheckText(w io.Writer, result schema.CheckResult, cfg *contract.Config) error {
	green := colorizer(cfg.UseColors, color.New(color.FgGreen, color.Bold).SprintFunc())
	red := colorizer(cfg.UseColors, color.New(color.FgRed, color.Bold).SprintFunc())

	verdict := green("PASSED")
	if !result.Passed {
		verdict = red("FAILED")
	}
	if _, err := fmt.Fprintf(w, "Dataset check %s: %s (%d records)\n", verdict, result.Source, result.Total); err != nil {
		return err
	}

	if len(result.Metrics) > 0 {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Metric", "Min", "Max", "Distinct", "Tie groups", "Largest tie"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, m := range result.Metrics {
			data = append(data, []string{
				string(m.Metric),
				formatValue(m.Metric, m.Min, cfg.Precision),
				formatValue(m.Metric, m.Max, cfg.Precision),
				strconv.Itoa(m.Distinct),
				strconv.Itoa(m.TieGroups),
				strconv.Itoa(m.Largest),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	for _, issue := range result.Issues {
		if _, err := fmt.Fprintf(w, "  - %s\n", issue); err != nil {
			return err
		}
	}
	return nil
}

// writeCheckCSV writes metric rows first, then one row per issue.
func writeCheckCSV(w io.Writer, result schema.CheckResult) error {
	header := []string{"kind", "metric", "min", "max", "distinct", "tie_groups", "largest", "issue"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range result.Metrics {
			row := []string{
				"metric",
				string(m.Metric),
				rawFloat(m.Min),
				rawFloat(m.Max),
				strconv.Itoa(m.Distinct),
				strconv.Itoa(m.TieGroups),
				strconv.Itoa(m.Largest),
				"",
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		for _, issue := range result.Issues {
			if err := cw.Write([]string{"issue", "", "", "", "", "", "", issue}); err != nil {
				return err
			}
		}
		return nil
	})
}
