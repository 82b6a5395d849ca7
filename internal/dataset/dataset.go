// Package dataset provides the immutable table of country records that the
// ranking engine consumes, plus loaders for the supported file formats.
package dataset

import (
	"bytes"
	_ "embed"

	"github.com/rotisserie/eris"
	"github.com/worldsys/worldsys/schema"
)

// DefaultSource is the name reported for the embedded dataset.
const DefaultSource = "embedded:world.csv"

//go:embed data/world.csv
var worldCSV []byte

// Dataset is a read-only table of records. The zero value is an empty dataset.
// Build one with New, Default or Load; it is never mutated afterwards, so it
// can be shared across any number of ranking runs.
type Dataset struct {
	source  string
	records []schema.Record
	index   map[string]int
}

// New validates records and wraps a private copy of them in a Dataset.
func New(source string, records []schema.Record) (Dataset, error) {
	if err := Validate(records); err != nil {
		return Dataset{}, err
	}
	owned := append([]schema.Record(nil), records...)
	index := make(map[string]int, len(owned))
	for i, r := range owned {
		index[r.Identifier] = i
	}
	return Dataset{source: source, records: owned, index: index}, nil
}

// Default returns the embedded dataset of the original dashboard.
func Default() (Dataset, error) {
	records, err := ReadCSV(bytes.NewReader(worldCSV))
	if err != nil {
		return Dataset{}, eris.Wrap(err, "dataset: parse embedded world.csv")
	}
	return New(DefaultSource, records)
}

// Source returns where the dataset was loaded from.
func (d Dataset) Source() string { return d.source }

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// Records returns a copy of the records in their original order.
func (d Dataset) Records() []schema.Record {
	return append([]schema.Record(nil), d.records...)
}

// Lookup returns the record with the given identifier.
func (d Dataset) Lookup(identifier string) (schema.Record, bool) {
	i, ok := d.index[identifier]
	if !ok {
		return schema.Record{}, false
	}
	return d.records[i], true
}
