package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sixInstrumentCsv = `Date,A,B,C,D,E,F
2024-01-01,100,100,100,100,100,100
2024-01-02,101,104,102,90,70,103
2024-01-03,102,108,110,104,105,106
`

func runCli(t *testing.T, args ...string) (string, error) {
	dir := t.TempDir()
	pricesPath := filepath.Join(dir, "prices.csv")
	require.NoError(t, os.WriteFile(pricesPath, []byte(sixInstrumentCsv), 0644))

	out := &bytes.Buffer{}
	root := newRootCommand()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append(args,
		"--prices", pricesPath,
		"--config", filepath.Join(dir, "missing.yaml"),
	))
	err := root.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	t.Run("prints the plan", func(t *testing.T) {
		out, err := runCli(t, "analyze", "--horizons", "1,10", "--monthly-investment", "5000")
		require.NoError(t, err)
		require.Contains(t, out, "Investment ratios")
		require.Contains(t, out, "1 Years")
		require.Contains(t, out, "10 Years")
	})

	t.Run("rejects bad horizons", func(t *testing.T) {
		_, err := runCli(t, "analyze", "--horizons", "1,,x")
		require.Error(t, err)
		require.Contains(t, err.Error(), "params stage failed")
	})
}

func TestExportCommand(t *testing.T) {
	outDir := t.TempDir()
	allocationPath := filepath.Join(outDir, "ratios.csv")
	statisticsPath := filepath.Join(outDir, "stats.csv")

	_, err := runCli(t, "export",
		"--allocation-out", allocationPath,
		"--statistics-out", statisticsPath,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(allocationPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Equal(t, "Instrument,Weight", lines[0])
	require.Len(t, lines, 3)

	data, err = os.ReadFile(statisticsPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "Instrument,Volatility,AverageGrowth,ROI"))

	out, err := runCli(t, "show-allocation", allocationPath)
	require.NoError(t, err)
	require.Contains(t, out, "B")
	require.Contains(t, out, "F")
}

func TestChartCommand(t *testing.T) {
	chartDir := t.TempDir()
	_, err := runCli(t, "chart", "--dir", chartDir, "--horizons", "1,5")
	require.NoError(t, err)

	for _, name := range []string{"price_trends.png", "selection.png", "projection.png"} {
		info, err := os.Stat(filepath.Join(chartDir, name))
		require.NoError(t, err, name)
		require.Greater(t, info.Size(), int64(0))
	}
}
