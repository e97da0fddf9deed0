package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/newsalpha/newsplot/pkg/cmd/cmdutil"
	"github.com/newsalpha/newsplot/pkg/data/tsv"
	"github.com/newsalpha/newsplot/pkg/dataframe"
	"github.com/newsalpha/newsplot/pkg/plot"
)

func init() {
	cmdutil.InputFlags(StockCmd.Flags())
	StockCmd.Flags().String("date-column", plot.DefaultDateColumn, "the date column")
	StockCmd.Flags().String("value-column", plot.DefaultStockValueColumn, "the stock value column")
	StockCmd.Flags().String("title", plot.DefaultStockTitle, "the chart title")
	RootCmd.AddCommand(StockCmd)

	cmdutil.InputFlags(FrequencyCmd.Flags())
	FrequencyCmd.Flags().String("date-column", plot.DefaultDateColumn, "the publication date column")
	RootCmd.AddCommand(FrequencyCmd)

	cmdutil.InputFlags(PublishersCmd.Flags())
	PublishersCmd.Flags().String("publisher-column", "publisher", "the publisher column")
	PublishersCmd.Flags().Int("top", plot.DefaultTopN, "number of publishers")
	cmdutil.ExportFlags(PublishersCmd.Flags())
	RootCmd.AddCommand(PublishersCmd)

	cmdutil.InputFlags(SentimentCmd.Flags())
	SentimentCmd.Flags().String("publisher-column", "publisher", "the publisher column")
	SentimentCmd.Flags().String("sentiment-column", "sentiment", "the sentiment label column")
	SentimentCmd.Flags().Int("top", plot.DefaultTopN, "number of publishers")
	RootCmd.AddCommand(SentimentCmd)

	cmdutil.InputFlags(ReturnsCmd.Flags())
	ReturnsCmd.Flags().String("symbols", "", "comma separated symbols, e.g. AAPL,GOOG")
	RootCmd.AddCommand(ReturnsCmd)
}

var StockCmd = &cobra.Command{
	Use:   "stock --file [CSV]",
	Short: "plot a stock value over time",
	RunE: func(cmd *cobra.Command, args []string) error {
		df, err := cmdutil.ReadTable(cmd)
		if err != nil {
			return err
		}

		dateColumn, err := cmd.Flags().GetString("date-column")
		if err != nil {
			return err
		}

		valueColumn, err := cmd.Flags().GetString("value-column")
		if err != nil {
			return err
		}

		title, err := cmd.Flags().GetString("title")
		if err != nil {
			return err
		}

		p, err := newPlotter()
		if err != nil {
			return err
		}

		return p.StockData(df, dateColumn, valueColumn, title)
	},
}

var FrequencyCmd = &cobra.Command{
	Use:   "frequency --file [CSV]",
	Short: "plot the number of articles published per day",
	RunE: func(cmd *cobra.Command, args []string) error {
		df, err := cmdutil.ReadTable(cmd)
		if err != nil {
			return err
		}

		dateColumn, err := cmd.Flags().GetString("date-column")
		if err != nil {
			return err
		}

		p, err := newPlotter()
		if err != nil {
			return err
		}

		return p.PublicationFrequency(df, dateColumn)
	},
}

var PublishersCmd = &cobra.Command{
	Use:   "publishers --file [CSV]",
	Short: "plot the publishers with the most articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		df, err := cmdutil.ReadTable(cmd)
		if err != nil {
			return err
		}

		publisherColumn, err := cmd.Flags().GetString("publisher-column")
		if err != nil {
			return err
		}

		top, err := cmd.Flags().GetInt("top")
		if err != nil {
			return err
		}
		top = plot.TopN(top)

		counts, err := df.ValueCounts(publisherColumn)
		if err != nil {
			return err
		}

		printCounts(cmd.OutOrStdout(), "Articles per Publisher", counts.Head(top))

		if err := exportTSV(cmd, func(w *tsv.Writer) error {
			return w.WriteCounts(counts)
		}); err != nil {
			return err
		}

		p, err := newPlotter()
		if err != nil {
			return err
		}

		return p.TopPublishers(counts, top)
	},
}

var SentimentCmd = &cobra.Command{
	Use:   "sentiment --file [CSV]",
	Short: "plot the sentiment composition of the top publishers",
	RunE: func(cmd *cobra.Command, args []string) error {
		df, err := cmdutil.ReadTable(cmd)
		if err != nil {
			return err
		}

		publisherColumn, err := cmd.Flags().GetString("publisher-column")
		if err != nil {
			return err
		}

		sentimentColumn, err := cmd.Flags().GetString("sentiment-column")
		if err != nil {
			return err
		}

		top, err := cmd.Flags().GetInt("top")
		if err != nil {
			return err
		}

		p, err := newPlotter()
		if err != nil {
			return err
		}

		return p.SentimentByPublisher(df, publisherColumn, sentimentColumn, top)
	},
}

var ReturnsCmd = &cobra.Command{
	Use:   "returns --file [CSV] --symbols AAPL,GOOG",
	Short: "plot the daily returns of several stocks",
	Long:  "plot the <SYMBOL>_Return columns, computed from <SYMBOL>_Close when missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		df, err := cmdutil.ReadTable(cmd)
		if err != nil {
			return err
		}

		symbols, err := cmdutil.Columns(cmd, "symbols")
		if err != nil {
			return err
		}

		if len(symbols) == 0 {
			return errors.New("--symbols [SYMBOL,...] is required")
		}

		columns, err := returnColumns(df, symbols)
		if err != nil {
			return err
		}

		p, err := newPlotter()
		if err != nil {
			return err
		}

		return p.StockReturns(df, columns)
	},
}

// returnColumns returns the <SYMBOL>_Return column of every symbol, adding the
// percent daily returns of <SYMBOL>_Close to df when the column is missing.
func returnColumns(df *dataframe.Table, symbols []string) ([]string, error) {
	columns := make([]string, len(symbols))
	for i, symbol := range symbols {
		column := symbol + "_Return"
		columns[i] = column
		if df.Has(column) {
			continue
		}

		closes, err := df.Floats(plot.CloseColumn(symbol))
		if err != nil {
			return nil, errors.Wrapf(err, "no returns for %s", symbol)
		}

		log.Infof("computing %s from the close prices", column)
		if err := df.Set(dataframe.NewFloatColumn(column, closes.PctChange().MulScalar(100))); err != nil {
			return nil, err
		}
	}
	return columns, nil
}

// exportTSV writes to the file given by --tsv, if any.
func exportTSV(cmd *cobra.Command, write func(w *tsv.Writer) error) (err error) {
	filename, err := cmd.Flags().GetString("tsv")
	if err != nil || filename == "" {
		return err
	}

	w, err := tsv.NewWriterFile(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, w.Close())
	}()

	if err := write(w); err != nil {
		return err
	}

	log.Infof("data written to %s", filename)
	return nil
}
