package cmdutil

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/newsalpha/newsplot/pkg/dataframe"
)

// InputFlags defines the flags for the CSV input of a command.
func InputFlags(flags *pflag.FlagSet) {
	flags.String("file", "", "the CSV file to read")
}

// ExportFlags defines the flag for exporting the data behind a chart.
func ExportFlags(flags *pflag.FlagSet) {
	flags.String("tsv", "", "also write the charted data to this TSV file")
}

// ReadTable reads the CSV file given by --file.
func ReadTable(cmd *cobra.Command) (*dataframe.Table, error) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}

	if len(file) == 0 {
		return nil, errors.New("--file [CSV] is required")
	}

	return dataframe.ReadCSVFile(file)
}

// Columns returns the comma separated column names of a flag, with the spaces trimmed.
func Columns(cmd *cobra.Command, name string) ([]string, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}

	var columns []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			columns = append(columns, c)
		}
	}
	return columns, nil
}
