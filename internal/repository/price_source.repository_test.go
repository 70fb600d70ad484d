package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParsePriceCsv(t *testing.T) {
	t.Run("keeps header order", func(t *testing.T) {
		table, err := ParsePriceCsv([]byte("Date,TCS,INFY,HDFC\n2024-01-01,100,,50\n2024-01-02,101,20,51\n"))
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff([]string{"Date", "TCS", "INFY", "HDFC"}, table.Columns))
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]map[string]string{
					{"Date": "2024-01-01", "TCS": "100", "INFY": "", "HDFC": "50"},
					{"Date": "2024-01-02", "TCS": "101", "INFY": "20", "HDFC": "51"},
				},
				table.Rows,
			),
		)
	})

	t.Run("empty input", func(t *testing.T) {
		table, err := ParsePriceCsv([]byte{})
		require.NoError(t, err)
		require.Empty(t, table.Columns)
		require.Empty(t, table.Rows)
	})

	t.Run("strips byte order mark", func(t *testing.T) {
		table, err := ParsePriceCsv([]byte("\xef\xbb\xbfDate,A\n2024-01-01,1\n"))
		require.NoError(t, err)
		require.Equal(t, "Date", table.Columns[0])
		require.Equal(t, "1", table.Rows[0]["A"])
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := ParsePriceCsv([]byte("Date,A\n2024-01-01,1,2\n"))
		require.Error(t, err)
	})
}

func TestCsvPriceSourceRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,A\n2024-01-01,1\n"), 0644))

	repo := NewCsvPriceSourceRepository(path)

	table, err := repo.Read()
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	v1, err := repo.Version()
	require.NoError(t, err)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.WriteFile(path, []byte("Date,A\n2024-01-01,1\n2024-01-02,2\n"), 0644))
	require.NoError(t, os.Chtimes(path, later, later))

	v2, err := repo.Version()
	require.NoError(t, err)
	require.NotEqual(t, v1, v2)

	_, err = NewCsvPriceSourceRepository(filepath.Join(t.TempDir(), "missing.csv")).Read()
	require.Error(t, err)
}
