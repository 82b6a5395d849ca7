package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"github.com/worldsys/worldsys/schema"
	"gopkg.in/yaml.v3"
)

// Column names shared by the CSV and XLSX formats.
const (
	colIdentifier = "identifier"
	colName       = "name"
)

// requiredColumns lists the header names every tabular file must carry.
var requiredColumns = []string{
	colIdentifier,
	colName,
	string(schema.Economic),
	string(schema.Military),
	string(schema.Diplomatic),
}

// Load reads and validates a dataset file.
func Load(path string) (Dataset, error) {
	records, err := ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	return New(path, records)
}

// ReadFile parses a dataset file without validating it. The format is picked
// from the extension: .csv, .json, .yaml, .yml or .xlsx.
func ReadFile(path string) ([]schema.Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readFile(path, ReadCSV)
	case ".json":
		return readFile(path, ReadJSON)
	case ".yaml", ".yml":
		return readFile(path, ReadYAML)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, eris.Errorf("dataset: unsupported file extension %q (want .csv, .json, .yaml, .yml, .xlsx)", ext)
	}
}

// LoadOrDefault loads path, or returns the embedded dataset when path is empty.
func LoadOrDefault(path string) (Dataset, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

func readFile(path string, parse func(io.Reader) ([]schema.Record, error)) ([]schema.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer func() { _ = f.Close() }()
	return parse(f)
}

// ReadCSV parses records from CSV with a header row. Columns are matched by
// name, case-insensitively, and extra columns are ignored.
func ReadCSV(r io.Reader) ([]schema.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, eris.New("dataset: csv is empty")
	}
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read csv header")
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "dataset: read csv row")
		}
		rows = append(rows, row)
	}
	return fromRows(header, rows)
}

// ReadXLSX parses records from the first sheet of a workbook laid out like the CSV format.
func ReadXLSX(path string) ([]schema.Record, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("dataset: xlsx has no sheets")
	}

	sheet := f.Sheets[0]
	var rows [][]string
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return nil, eris.New("dataset: xlsx sheet is empty")
	}
	return fromRows(rows[0], rows[1:])
}

// ReadJSON parses a JSON array of records.
func ReadJSON(r io.Reader) ([]schema.Record, error) {
	var records []schema.Record
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, eris.Wrap(err, "dataset: decode json")
	}
	return trimRecords(records), nil
}

// ReadYAML parses a YAML sequence of records.
func ReadYAML(r io.Reader) ([]schema.Record, error) {
	var records []schema.Record
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, eris.New("dataset: yaml is empty")
		}
		return nil, eris.Wrap(err, "dataset: decode yaml")
	}
	return trimRecords(records), nil
}

// fromRows maps header names to columns and converts every row.
func fromRows(header []string, rows [][]string) ([]schema.Record, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, eris.Errorf("dataset: missing column %q", name)
		}
	}

	records := make([]schema.Record, 0, len(rows))
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		line := i + 2 // 1-based, after the header
		get := func(col string) string {
			idx := cols[col]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		rec := schema.Record{
			Identifier: get(colIdentifier),
			Name:       get(colName),
		}
		for _, m := range schema.AllMetrics {
			v, err := parseNumber(get(string(m)))
			if err != nil {
				return nil, eris.Wrapf(err, "dataset: row %d column %s", line, m)
			}
			switch m {
			case schema.Economic:
				rec.Economic = v
			case schema.Military:
				rec.Military = v
			case schema.Diplomatic:
				rec.Diplomatic = v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseNumber accepts plain numbers and tolerates "$" and thousands separators.
func parseNumber(s string) (float64, error) {
	clean := strings.NewReplacer("$", "", ",", "", "_", "").Replace(s)
	if clean == "" {
		return 0, eris.New("empty value")
	}
	return strconv.ParseFloat(clean, 64)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func trimRecords(records []schema.Record) []schema.Record {
	for i := range records {
		records[i].Identifier = strings.TrimSpace(records[i].Identifier)
		records[i].Name = strings.TrimSpace(records[i].Name)
	}
	return records
}
