package plot

import (
	"github.com/wcharczuk/go-chart/v2"

	"github.com/newsalpha/newsplot/pkg/dataframe"
	"github.com/newsalpha/newsplot/pkg/style"
	"github.com/newsalpha/newsplot/pkg/types"
)

// StockData plots valueColumn over dateColumn as a single line.
//
// The date column is converted in place; rows whose date cannot be parsed are
// dropped from df rather than reported.
func (p *Plotter) StockData(df *dataframe.Table, dateColumn, valueColumn, title string) error {
	if _, err := df.ToDatetime(dateColumn, types.DateTimeLayout, dataframe.Coerce); err != nil {
		return err
	}

	dropped, err := df.DropNaT(dateColumn)
	if err != nil {
		return err
	}
	if dropped > 0 {
		log.Debugf("dropped %d rows with unparsable %s", dropped, dateColumn)
	}

	dates, err := df.Times(dateColumn)
	if err != nil {
		return err
	}

	values, err := df.Floats(valueColumn)
	if err != nil {
		return err
	}

	grid := gridStyle(1.0, false)
	ch := p.newChart(title, sizeStock)
	ch.XAxis = dateAxis("Date", &grid)
	ch.YAxis = chart.YAxis{Name: "Stock Value", GridMajorStyle: grid}

	series := timeSeries(valueColumn, dates, values, lineStyle(style.Blue))
	addTimeSeries(&ch, series)
	legend(&ch)

	log.Debugf("plotting %d points of %s", len(series.XValues), valueColumn)
	return p.Show(title, ch)
}

// ReturnLabel is the legend label of a returns column, e.g. AAPL_Return gives AAPL.
func ReturnLabel(column string) string {
	return types.SymbolFromColumn(column)
}

// StockReturns plots the given <SYMBOL>_Return columns against the Date column.
func (p *Plotter) StockReturns(df *dataframe.Table, stockColumns []string) error {
	const title = "Daily Stock Returns Comparison"

	dates, err := df.AsTimes(ReturnsDateColumn, "")
	if err != nil {
		return err
	}

	grid := gridStyle(0.3, false)
	ch := p.newChart(title, sizeReturns)
	ch.XAxis = dateAxis("Date", &grid)
	ch.YAxis = chart.YAxis{Name: "Daily Returns (%)", GridMajorStyle: grid}

	for i, column := range stockColumns {
		values, err := df.Floats(column)
		if err != nil {
			return err
		}

		s := lineStyle(style.Alpha(style.SeriesColor(i), 0.7))
		s.StrokeWidth = 1.5
		series := timeSeries(ReturnLabel(column), dates, values, s)
		if len(series.XValues) == 0 {
			log.Debugf("no returns to plot for %s", column)
			continue
		}
		ch.Series = append(ch.Series, series)
	}

	if len(ch.Series) == 0 {
		addTimeSeries(&ch, chart.TimeSeries{Name: "Returns"})
	} else {
		xs, ys := seriesPoints(&ch)
		fitTimeRanges(&ch, xs, ys)
	}
	legend(&ch)

	return p.Show(title, ch)
}
