package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsalpha/newsplot/pkg/dataframe"
	"github.com/newsalpha/newsplot/pkg/datatype/floats"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "newsplot.yaml", `
outputDir: charts
format: svg
plot:
  dpi: 120
  scale: 1.5
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "charts", config.OutputDir)
	assert.Equal(t, "svg", config.Format)
	assert.Equal(t, 120.0, config.Plot.DPI)
	assert.Equal(t, 1.5, config.Plot.Scale)

	_, err = LoadConfig(writeFile(t, "broken.yaml", "plot: [1, 2"))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigIntoViper(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := writeFile(t, "newsplot.yaml", "outputDir: charts\nplot:\n  scale: 2\n")
	require.NoError(t, loadConfig(path))
	assert.Equal(t, "charts", viper.GetString("output-dir"))
	assert.Equal(t, 2.0, viper.GetFloat64("scale"))

	// explicit values win over the config file
	viper.Set("output-dir", "elsewhere")
	assert.Equal(t, "elsewhere", viper.GetString("output-dir"))

	assert.NoError(t, loadConfig(""))
}

func TestReturnColumns(t *testing.T) {
	df := dataframe.MustNew(
		dataframe.NewStringColumn("Date", "2024-01-02", "2024-01-03", "2024-01-04"),
		dataframe.NewFloatColumn("AAPL_Close", floats.New(100, 110, 99)),
		dataframe.NewFloatColumn("GOOG_Return", floats.New(0.1, 0.2, 0.3)),
	)

	columns, err := returnColumns(df, []string{"AAPL", "GOOG"})
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL_Return", "GOOG_Return"}, columns)

	returns, err := df.Floats("AAPL_Return")
	require.NoError(t, err)
	assert.True(t, returns.HasNaN())
	assert.InDelta(t, 10.0, returns[1], 1e-9)
	assert.InDelta(t, -10.0, returns[2], 1e-9)

	_, err = returnColumns(df, []string{"MSFT"})
	assert.ErrorIs(t, err, dataframe.ErrColumnNotFound)
}

func TestPublishersCommand(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	require.NoError(t, viper.BindPFlags(RootCmd.PersistentFlags()))

	file := writeFile(t, "news.csv", `headline,publisher,date
a,Reuters,2020-06-05 10:30:54
b,Reuters,2020-06-05 11:00:00
c,Benzinga,2020-06-04 09:00:00
`)
	outputDir := filepath.Join(t.TempDir(), "figures")

	RootCmd.SetArgs([]string{"publishers", "--file", file, "--top", "3", "--output-dir", outputDir})
	require.NoError(t, RootCmd.Execute())

	_, err := os.Stat(filepath.Join(outputDir, "top-3-publishers-by-number-of-articles.png"))
	assert.NoError(t, err)
}

func TestRowsFooter(t *testing.T) {
	assert.Equal(t, "1 row", rowsFooter(1))
	assert.Equal(t, "1,200 rows", rowsFooter(1200))
	assert.Equal(t, "12,345", countString(12345))
}

func TestPublishersCommandDefaultTop(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	require.NoError(t, viper.BindPFlags(RootCmd.PersistentFlags()))

	file := writeFile(t, "news.csv", `headline,publisher,date
a,Reuters,2020-06-05 10:30:54
b,Reuters,2020-06-05 11:00:00
c,Benzinga,2020-06-04 09:00:00
`)
	outputDir := filepath.Join(t.TempDir(), "figures")

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	defer RootCmd.SetOut(nil)

	RootCmd.SetArgs([]string{"publishers", "--file", file, "--top", "0", "--output-dir", outputDir})
	require.NoError(t, RootCmd.Execute())

	// the printed table and the chart both fall back to the top 10
	assert.Contains(t, out.String(), "Reuters")
	assert.Contains(t, out.String(), "Benzinga")

	_, err := os.Stat(filepath.Join(outputDir, "top-10-publishers-by-number-of-articles.png"))
	assert.NoError(t, err)
}
