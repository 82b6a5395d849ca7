package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/schema"
)

// PrintMetrics displays the indicator definitions.
// This is a static display that does not need the dataset.
func PrintMetrics(model schema.MetricsRenderModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteMetrics(w, model, cfg)
	}, "Wrote metrics")
}

// WriteMetrics outputs the indicator definitions in the configured format.
func WriteMetrics(w io.Writer, model schema.MetricsRenderModel, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, model)
	case schema.CSVOut:
		return writeMetricsCSV(w, model)
	case schema.ParquetOut, schema.XLSXOut:
		return fmt.Errorf("metrics does not support %s output", cfg.Output)
	default:
		return writeMetricsText(w, model)
	}
}

// writeMetricsText displays metrics in human-readable text format.
func writeMetricsText(w io.Writer, model schema.MetricsRenderModel) error {
	if _, err := fmt.Fprintf(w, "%s\n\n%s\n\n", model.Title, model.Description); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Key", "Indicator", "Source", "Unit", "Direction", "Active"})
	var data [][]string
	for _, ind := range model.Indicators {
		active := "no"
		if ind.Active {
			active = "yes"
		}
		data = append(data, []string{
			string(ind.Metric),
			ind.Name,
			ind.Source,
			ind.Unit,
			directionText(ind.Direction),
			active,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nFormula: %s\n", model.Formula); err != nil {
		return err
	}
	return nil
}

// writeMetricsCSV writes one row per indicator.
func writeMetricsCSV(w io.Writer, model schema.MetricsRenderModel) error {
	header := []string{"metric", "name", "short_name", "source", "unit", "direction", "active", "description"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, ind := range model.Indicators {
			row := []string{
				string(ind.Metric),
				ind.Name,
				ind.ShortName,
				ind.Source,
				ind.Unit,
				string(ind.Direction),
				strconv.FormatBool(ind.Active),
				ind.Description,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func directionText(d schema.Direction) string {
	if d == schema.Ascending {
		return "lower is better"
	}
	return "higher is better"
}
