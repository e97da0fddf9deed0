package dataframe

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsalpha/newsplot/pkg/datatype/floats"
)

func TestNew(t *testing.T) {
	tbl, err := New(
		NewStringColumn("symbol", "AAPL", "GOOG"),
		NewFloatColumn("close", floats.New(190.5, 140.1)),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"symbol", "close"}, tbl.Names())

	_, err = New(
		NewStringColumn("symbol", "AAPL", "GOOG"),
		NewFloatColumn("close", floats.New(190.5)),
	)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestColumnLookup(t *testing.T) {
	tbl := MustNew(NewStringColumn("publisher", "Reuters"))

	_, err := tbl.Column("headline")
	assert.True(t, errors.Is(err, ErrColumnNotFound))
	assert.Contains(t, err.Error(), "headline")

	_, err = tbl.Floats("publisher")
	assert.True(t, errors.Is(err, ErrColumnType))

	_, err = tbl.Times("publisher")
	assert.True(t, errors.Is(err, ErrColumnType))
}

func TestFloatsFromStrings(t *testing.T) {
	tbl := MustNew(NewStringColumn("v", "1.5", "", "3"))
	values, err := tbl.Floats("v")
	require.NoError(t, err)
	assert.Equal(t, 1.5, values[0])
	assert.True(t, math.IsNaN(values[1]))
	assert.Equal(t, 3.0, values[2])
}

func TestSetReplacesInPlace(t *testing.T) {
	tbl := MustNew(
		NewStringColumn("a", "x", "y"),
		NewStringColumn("b", "1", "2"),
	)
	require.NoError(t, tbl.Set(NewFloatColumn("a", floats.New(1, 2))))
	assert.Equal(t, []string{"a", "b"}, tbl.Names())

	c, err := tbl.Column("a")
	require.NoError(t, err)
	assert.Equal(t, KindFloat, c.Kind())
}

func TestFilterIn(t *testing.T) {
	tbl := MustNew(
		NewStringColumn("publisher", "A", "B", "C", "A"),
		NewFloatColumn("n", floats.New(1, 2, 3, 4)),
	)

	out, err := tbl.FilterIn("publisher", []string{"A", "C"})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Len())

	n, err := out.Floats("n")
	require.NoError(t, err)
	assert.Equal(t, floats.New(1, 3, 4), n)

	// the source table is untouched
	assert.Equal(t, 4, tbl.Len())
}

func TestHeadAndRow(t *testing.T) {
	tbl := MustNew(
		NewStringColumn("publisher", "A", "B", "C"),
		NewFloatColumn("n", floats.New(1, math.NaN(), 3.25)),
	)
	head := tbl.Head(2)
	assert.Equal(t, 2, head.Len())
	assert.Equal(t, []string{"B", ""}, head.Row(1))
	assert.Equal(t, 3, tbl.Head(10).Len())
	assert.Equal(t, []string{"C", "3.25"}, tbl.Row(2))
}

func TestIndex(t *testing.T) {
	tbl := MustNew(
		NewStringColumn("Date", "2024-01-02", "2024-01-03"),
		NewFloatColumn("AAPL_Close", floats.New(185.6, 184.2)),
	)

	_, err := tbl.Index()
	assert.True(t, errors.Is(err, ErrNoIndex))

	require.NoError(t, tbl.SetIndex("Date"))
	assert.Equal(t, "Date", tbl.IndexName())

	index, err := tbl.Index()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), index[1])

	assert.Equal(t, "Date", tbl.Head(1).IndexName())
}

func TestPctChange(t *testing.T) {
	tbl := MustNew(NewFloatColumn("AAPL_Close", floats.New(100, 102, 96.9)))
	require.NoError(t, tbl.PctChange("AAPL_Close", "AAPL_Return"))

	returns, err := tbl.Floats("AAPL_Return")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(returns[0]))
	assert.InDelta(t, 0.02, returns[1], 1e-9)
	assert.InDelta(t, -0.05, returns[2], 1e-9)
}

func TestReadCSV(t *testing.T) {
	input := `date,headline,publisher,stock_value
2020-06-05 10:30:54,Stocks That Hit 52-Week Highs,Benzinga Insights,101.5
2020-06-06 11:00:00,"Earnings, again",Lisa Levin,
`
	tbl, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"date", "headline", "publisher", "stock_value"}, tbl.Names())

	c, err := tbl.Column("stock_value")
	require.NoError(t, err)
	assert.Equal(t, KindFloat, c.Kind())

	c, err = tbl.Column("date")
	require.NoError(t, err)
	assert.Equal(t, KindString, c.Kind())

	headlines, err := tbl.Strings("headline")
	require.NoError(t, err)
	assert.Equal(t, "Earnings, again", headlines[1])
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("a,a\n1,2\n"))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2\n3\n"))
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestReadCSVHeaderOnly(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("date,headline\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, []string{"date", "headline"}, tbl.Names())
}
