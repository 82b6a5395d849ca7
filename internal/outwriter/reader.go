package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/worldsys/worldsys/schema"
)

// ReadCSV parses a classification CSV produced with --output csv.
// It is the inverse of the CSV writer and recovers every exported column.
func ReadCSV(r io.Reader) ([]schema.ExportRow, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("classification csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}

	var rows []schema.ExportRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV line %d: %w", line, err)
		}
		row, err := schema.ParseExportRecord(header, record)
		if err != nil {
			return nil, fmt.Errorf("invalid CSV line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CategoriesFromCSV returns identifier -> category from a classification CSV.
func CategoriesFromCSV(r io.Reader) (map[string]schema.Category, error) {
	rows, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}
	out := make(map[string]schema.Category, len(rows))
	for _, row := range rows {
		out[row.Identifier] = row.Category
	}
	return out, nil
}
