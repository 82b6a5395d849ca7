package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldsys/worldsys/internal/contract"
	"github.com/worldsys/worldsys/internal/parquet"
	"github.com/worldsys/worldsys/internal/xlsxio"
	"github.com/worldsys/worldsys/schema"
)

func TestWriteClassificationTable(t *testing.T) {
	c := sampleClassification()
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1, Width: 120}

	var buf bytes.Buffer
	err := WriteClassification(&buf, c, c.Records, cfg, time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "United States")
	assert.Contains(t, out, "$85,810")
	// Military is inactive, so its values do not appear
	assert.NotContains(t, out, "706.2")
	assert.Contains(t, out, "Showing 3 of 3 countries ranked by GDP per Capita + GDI")
	assert.Contains(t, out, "Core: 1, Semi-Periphery: 1, Periphery: 1")
}

func TestWriteClassificationCSV(t *testing.T) {
	c := sampleClassification()
	cfg := &contract.Config{Output: schema.CSVOut}

	var buf bytes.Buffer
	require.NoError(t, WriteClassification(&buf, c, c.Records, cfg, 0))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, schema.ExportHeader, records[0])
	assert.Equal(t, []string{
		"2", "BRA", "Brazil", "Semi-Periphery", "4",
		"10295.5", "2", "664.1", "", "227", "2",
	}, records[2])
}

func TestClassificationCSVRoundTrip(t *testing.T) {
	c := sampleClassification()
	cfg := &contract.Config{Output: schema.CSVOut}

	var buf bytes.Buffer
	require.NoError(t, WriteClassification(&buf, c, c.Records, cfg, 0))

	categories, err := CategoriesFromCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.CategoryOf(), categories)
}

func TestClassificationCSVRoundTripRows(t *testing.T) {
	c := sampleClassification()
	cfg := &contract.Config{Output: schema.CSVOut}

	var buf bytes.Buffer
	require.NoError(t, WriteClassification(&buf, c, c.Records, cfg, 0))

	rows, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, schema.ToExportRows(c.Records), rows)
}

func TestWriteClassificationJSON(t *testing.T) {
	c := sampleClassification()
	cfg := &contract.Config{Output: schema.JSONOut}

	var buf bytes.Buffer
	require.NoError(t, WriteClassification(&buf, c, c.Records[:1], cfg, 0))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, float64(3), doc["total"])
	assert.Equal(t, float64(1), doc["shown"])

	records, ok := doc["records"].([]any)
	require.True(t, ok)
	require.Len(t, records, 1)
	first := records[0].(map[string]any)
	assert.Equal(t, "USA", first["identifier"])
	assert.Nil(t, first["military_rank"])
	assert.Equal(t, float64(1), first["economic_rank"])
}

func TestWriteClassificationBinaryToStream(t *testing.T) {
	c := sampleClassification()
	for _, mode := range []schema.OutputMode{schema.ParquetOut, schema.XLSXOut} {
		var buf bytes.Buffer
		err := WriteClassification(&buf, c, c.Records, &contract.Config{Output: mode}, 0)
		assert.ErrorIs(t, err, errBinaryOutput)
	}
}

func TestPrintClassificationFiles(t *testing.T) {
	c := sampleClassification()
	dir := t.TempDir()

	t.Run("csv", func(t *testing.T) {
		path := filepath.Join(dir, "out.csv")
		cfg := &contract.Config{Output: schema.CSVOut, OutputFile: path}
		require.NoError(t, PrintClassification(c, c.Records, cfg, 0))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		categories, err := CategoriesFromCSV(f)
		require.NoError(t, err)
		assert.Equal(t, schema.Core, categories["USA"])
	})

	t.Run("parquet", func(t *testing.T) {
		path := filepath.Join(dir, "out.parquet")
		cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: path}
		require.NoError(t, PrintClassification(c, c.Records, cfg, 0))

		rows, err := parquet.ReadClassificationParquet(path)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "MLI", rows[2].Identifier)
	})

	t.Run("xlsx", func(t *testing.T) {
		path := filepath.Join(dir, "out.xlsx")
		cfg := &contract.Config{Output: schema.XLSXOut, OutputFile: path}
		require.NoError(t, PrintClassification(c, c.Records, cfg, 0))

		rows, err := xlsxio.ReadClassificationXLSX(path)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, schema.SemiPeriphery, rows[1].Category)
		assert.Nil(t, rows[1].MilitaryRank)
	})
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)

	_, err = ReadCSV(strings.NewReader("identifier,name\nUSA,United States\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")

	_, err = ReadCSV(strings.NewReader("identifier,category\nUSA,Center\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
