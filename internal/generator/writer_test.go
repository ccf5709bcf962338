package generator

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	w, err := newCSVWriter(path)
	require.NoError(t, err)

	gen := New(testConfig())
	rows := []Row{gen.Generate(), gen.Generate(), gen.Generate()}
	for _, row := range rows {
		require.NoError(t, w.Write(row))
	}
	require.NoError(t, w.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header + 3 rows

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, rows[0].OrderID, records[1][0])
	assert.Equal(t, rows[2].RestaurantName, records[3][1])
}

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	w, err := newJSONWriter(path)
	require.NoError(t, err)

	gen := New(testConfig())
	want := gen.Generate()
	require.NoError(t, w.Write(want))
	require.NoError(t, w.Write(gen.Generate()))
	require.NoError(t, w.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	require.True(t, scanner.Scan())

	var got Row
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &got))
	assert.Equal(t, want, got)

	require.True(t, scanner.Scan())
	require.False(t, scanner.Scan()) // one object per line, nothing trailing
}

func TestWriteDatasetEndToEnd(t *testing.T) {
	cfg := testConfig()
	cfg.Samples = 25
	cfg.OutputFormat = "csv"
	cfg.OutputPath = filepath.Join(t.TempDir(), "dataset.csv")

	require.NoError(t, WriteDataset(cfg))

	file, err := os.Open(cfg.OutputPath)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 26)
}

func TestParquetWriterRoundTrip(t *testing.T) {
	cfg := testConfig()
	cfg.OutputFormat = "parquet"
	cfg.OutputPath = filepath.Join(t.TempDir(), "dataset.parquet")

	w, err := newParquetWriter(cfg)
	require.NoError(t, err)

	gen := New(cfg)
	for i := 0; i < 10; i++ {
		require.NoError(t, w.Write(gen.Generate()))
	}
	require.NoError(t, w.Close())

	info, err := os.Stat(cfg.OutputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
