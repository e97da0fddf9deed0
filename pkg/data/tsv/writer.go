package tsv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"go.uber.org/multierr"

	"github.com/newsalpha/newsplot/pkg/dataframe"
	"github.com/newsalpha/newsplot/pkg/types"
)

// Writer writes tab separated records, e.g. the numbers behind a chart.
type Writer struct {
	file io.WriteCloser

	*csv.Writer
}

func NewWriterFile(filename string) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return NewWriter(f), nil
}

func NewWriter(file io.WriteCloser) *Writer {
	w := csv.NewWriter(file)
	w.Comma = '\t'
	return &Writer{
		Writer: w,
		file:   file,
	}
}

// WriteTable writes the header and every row of df.
func (w *Writer) WriteTable(df *dataframe.Table) error {
	if err := w.Write(df.Names()); err != nil {
		return err
	}

	for i := 0; i < df.Len(); i++ {
		if err := w.Write(df.Row(i)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) WriteCounts(counts types.Counts) error {
	if err := w.Write([]string{"key", "count"}); err != nil {
		return err
	}

	for _, c := range counts {
		if err := w.Write([]string{c.Key, strconv.Itoa(c.Count)}); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) WriteCorrelations(record types.CorrelationRecord) error {
	if err := w.Write([]string{"symbol", "correlation", "p_value"}); err != nil {
		return err
	}

	for _, c := range record {
		if err := w.Write([]string{
			c.Symbol,
			strconv.FormatFloat(c.Correlation.Correlation, 'f', -1, 64),
			strconv.FormatFloat(c.PValue, 'f', -1, 64),
		}); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes the buffered records and closes the file.
func (w *Writer) Close() error {
	w.Writer.Flush()
	return multierr.Append(w.Writer.Error(), w.file.Close())
}
