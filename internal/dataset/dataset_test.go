package dataset

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldsys/worldsys/schema"
)

func sampleRecords() []schema.Record {
	return []schema.Record{
		{Identifier: "AAA", Name: "Alpha", Economic: 100, Military: 10, Diplomatic: 5},
		{Identifier: "BBB", Name: "Beta", Economic: 200, Military: 20, Diplomatic: 15},
		{Identifier: "CCC", Name: "Gamma", Economic: 300, Military: 30, Diplomatic: 25},
	}
}

func TestDefault(t *testing.T) {
	ds, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 113, ds.Len())
	assert.Equal(t, DefaultSource, ds.Source())

	ukr, ok := ds.Lookup("UKR")
	require.True(t, ok)
	assert.Equal(t, "Ukraine", ukr.Name)
	assert.Equal(t, 5181.0, ukr.Economic)
	assert.Equal(t, 335.0, ukr.Military)
	assert.Equal(t, 75.0, ukr.Diplomatic)

	assert.Equal(t, "UKR", ds.Records()[0].Identifier, "records keep file order")
}

func TestNewCopiesRecords(t *testing.T) {
	records := sampleRecords()
	ds, err := New("test", records)
	require.NoError(t, err)

	records[0].Economic = 999
	got, ok := ds.Lookup("AAA")
	require.True(t, ok)
	assert.Equal(t, 100.0, got.Economic, "caller slice must not alias the dataset")

	out := ds.Records()
	out[1].Name = "changed"
	again, _ := ds.Lookup("BBB")
	assert.Equal(t, "Beta", again.Name, "Records must return a copy")
}

func TestLookupMissing(t *testing.T) {
	ds, err := New("test", sampleRecords())
	require.NoError(t, err)

	_, ok := ds.Lookup("ZZZ")
	assert.False(t, ok)

	var zero Dataset
	_, ok = zero.Lookup("AAA")
	assert.False(t, ok)
	assert.Equal(t, 0, zero.Len())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		records []schema.Record
		issues  []string
	}{
		{
			name:    "valid",
			records: sampleRecords(),
		},
		{
			name:    "empty",
			records: nil,
			issues:  []string{"dataset has no records"},
		},
		{
			name: "duplicate identifier",
			records: []schema.Record{
				{Identifier: "AAA", Name: "Alpha"},
				{Identifier: " AAA ", Name: "Beta"},
			},
			issues: []string{`record 2: duplicate identifier "AAA" (first seen at record 1)`},
		},
		{
			name: "duplicate name and blank identifier",
			records: []schema.Record{
				{Identifier: "AAA", Name: "Alpha"},
				{Identifier: "", Name: "Alpha"},
			},
			issues: []string{
				"record 2: empty identifier",
				`record 2: duplicate name "Alpha" (first seen at record 1)`,
			},
		},
		{
			name: "bad values",
			records: []schema.Record{
				{Identifier: "AAA", Name: "Alpha", Economic: -1, Military: math.NaN(), Diplomatic: math.Inf(1)},
			},
			issues: []string{
				"record 1 (AAA): economic is negative (-1)",
				"record 1 (AAA): military is not a finite number",
				"record 1 (AAA): diplomatic is not a finite number",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.records)
			if len(tt.issues) == 0 {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.issues, verr.Issues)
			assert.Contains(t, err.Error(), "invalid dataset")
		})
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	records := sampleRecords()
	records[2].Identifier = "AAA"

	_, err := New("test", records)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 1)
}
