package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/schema"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders numbers with thousands separators.
var printer = message.NewPrinter(language.English)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return fmt.Errorf("cannot open output file: %w", err)
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		zap.L().Info(successMsg, zap.String("path", outputFile))
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// createFormatter returns the float formatter for human-readable output.
func createFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// rawFloat prints the shortest exact representation, for machine-readable output.
func rawFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatValue renders a raw metric value for tables: GDP per capita as whole
// dollars, whole numbers without decimals, everything with grouping.
func formatValue(m schema.Metric, v float64, precision int) string {
	if m == schema.Economic {
		return printer.Sprintf("$%d", int64(math.Round(v)))
	}
	if v == math.Trunc(v) {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", precision), v)
}

// colorizer returns a color function, or fmt.Sprint when colors are disabled.
func colorizer(enabled bool, fn func(a ...any) string) func(a ...any) string {
	if enabled {
		return fn
	}
	return fmt.Sprint
}
