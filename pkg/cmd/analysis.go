package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/newsalpha/newsplot/pkg/cmd/cmdutil"
	"github.com/newsalpha/newsplot/pkg/data/tsv"
	"github.com/newsalpha/newsplot/pkg/indicator"
	"github.com/newsalpha/newsplot/pkg/plot"
	"github.com/newsalpha/newsplot/pkg/stats"
)

func init() {
	cmdutil.InputFlags(CorrelationCmd.Flags())
	CorrelationCmd.Flags().String("base", "sentiment", "the column every other column is correlated with")
	CorrelationCmd.Flags().String("columns", "", "comma separated columns, e.g. AAPL_Return,GOOG_Return")
	CorrelationCmd.Flags().String("title", plot.DefaultCorrelationTitle, "the chart title")
	cmdutil.ExportFlags(CorrelationCmd.Flags())
	RootCmd.AddCommand(CorrelationCmd)

	cmdutil.InputFlags(IndicatorsCmd.Flags())
	IndicatorsCmd.Flags().String("ticker", "", "the ticker, its close prices are read from <TICKER>_Close")
	IndicatorsCmd.Flags().String("index", "Date", "the date column used as the index")
	RootCmd.AddCommand(IndicatorsCmd)

	cmdutil.InputFlags(HeadCmd.Flags())
	HeadCmd.Flags().Int("rows", 5, "number of rows to print")
	cmdutil.ExportFlags(HeadCmd.Flags())
	RootCmd.AddCommand(HeadCmd)
}

var CorrelationCmd = &cobra.Command{
	Use:   "correlation --file [CSV] --columns AAPL_Return,GOOG_Return",
	Short: "plot the pearson correlation and its p-value of columns against a base column",
	RunE: func(cmd *cobra.Command, args []string) error {
		df, err := cmdutil.ReadTable(cmd)
		if err != nil {
			return err
		}

		base, err := cmd.Flags().GetString("base")
		if err != nil {
			return err
		}

		columns, err := cmdutil.Columns(cmd, "columns")
		if err != nil {
			return err
		}

		if len(columns) == 0 {
			return errors.New("--columns [COLUMN,...] is required")
		}

		title, err := cmd.Flags().GetString("title")
		if err != nil {
			return err
		}

		record, err := stats.Correlate(df, base, columns)
		if err != nil {
			return err
		}

		printCorrelations(cmd.OutOrStdout(), title, record)

		if err := exportTSV(cmd, func(w *tsv.Writer) error {
			return w.WriteCorrelations(record)
		}); err != nil {
			return err
		}

		p, err := newPlotter()
		if err != nil {
			return err
		}

		fig := p.CorrelationAnalysis(record, title)
		return p.Show(fig.Title, fig)
	},
}

var IndicatorsCmd = &cobra.Command{
	Use:   "indicators --file [CSV] --ticker [TICKER]",
	Short: "plot the moving averages, RSI and MACD of a ticker",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cmdutil.ReadTable(cmd)
		if err != nil {
			return err
		}

		ticker, err := cmd.Flags().GetString("ticker")
		if err != nil {
			return err
		}

		if len(ticker) == 0 {
			return errors.New("--ticker [TICKER] is required")
		}

		index, err := cmd.Flags().GetString("index")
		if err != nil {
			return err
		}

		if err := data.SetIndex(index); err != nil {
			return err
		}

		closes, err := data.Floats(plot.CloseColumn(ticker))
		if err != nil {
			return err
		}

		indicators := indicator.Compute(closes)

		p, err := newPlotter()
		if err != nil {
			return err
		}

		if err := p.PriceAndMA(data, ticker, indicators); err != nil {
			return err
		}

		if err := p.RSI(data, ticker, indicators); err != nil {
			return err
		}

		return p.MACD(data, ticker, indicators)
	},
}

var HeadCmd = &cobra.Command{
	Use:   "head --file [CSV]",
	Short: "print the first rows of a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		df, err := cmdutil.ReadTable(cmd)
		if err != nil {
			return err
		}

		rows, err := cmd.Flags().GetInt("rows")
		if err != nil {
			return err
		}

		file, _ := cmd.Flags().GetString("file")
		printHeading(cmd.OutOrStdout(), "%s: %d columns", file, len(df.Names()))
		printTable(cmd.OutOrStdout(), df, rows)

		return exportTSV(cmd, func(w *tsv.Writer) error {
			return w.WriteTable(df)
		})
	},
}
