package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gertd/go-pluralize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leekchan/accounting"

	"github.com/newsalpha/newsplot/pkg/dataframe"
	"github.com/newsalpha/newsplot/pkg/style"
	"github.com/newsalpha/newsplot/pkg/types"
)

var heading = color.New(color.FgHiCyan, color.Bold)

var plural = pluralize.NewClient()

// countString formats a count with thousands separators, e.g. 12,345.
func countString(n int) string {
	return accounting.FormatNumber(n, 0, ",", ".")
}

// rowsFooter returns e.g. "1 row" or "1,200 rows".
func rowsFooter(n int) string {
	return countString(n) + " " + plural.Pluralize("row", n, false)
}

func printHeading(w io.Writer, format string, args ...interface{}) {
	_, _ = heading.Fprintf(w, format+"\n", args...)
}

func newTableWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style.NewDefaultTableStyle(!color.NoColor))
	return t
}

// printTable prints the first n rows of df.
func printTable(w io.Writer, df *dataframe.Table, n int) {
	head := df.Head(n)

	t := newTableWriter(w)
	var header table.Row
	for _, name := range head.Names() {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for i := 0; i < head.Len(); i++ {
		var row table.Row
		for _, v := range head.Row(i) {
			row = append(row, v)
		}
		t.AppendRow(row)
	}

	t.AppendFooter(table.Row{rowsFooter(df.Len())})
	t.Render()
}

func printCounts(w io.Writer, title string, counts types.Counts) {
	t := newTableWriter(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"#", "Key", "Count"})
	for i, c := range counts {
		t.AppendRow(table.Row{i + 1, c.Key, countString(c.Count)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Count", Align: text.AlignRight},
	})
	t.Render()
}

func printCorrelations(w io.Writer, title string, record types.CorrelationRecord) {
	t := newTableWriter(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Symbol", "Correlation", "P-value"})
	for _, c := range record {
		t.AppendRow(table.Row{
			c.Symbol,
			fmt.Sprintf("%.4f", c.Correlation.Correlation),
			fmt.Sprintf("%.4f", c.PValue),
		})
	}
	t.Render()
}
