package plot

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/newsalpha/newsplot/pkg/dataframe"
	"github.com/newsalpha/newsplot/pkg/datatype/floats"
	"github.com/newsalpha/newsplot/pkg/style"
	"github.com/newsalpha/newsplot/pkg/types"
)

const (
	RSIOverbought = 70.0
	RSIOversold   = 30.0
)

// CloseColumn is the close price column of ticker in a price table, e.g. AAPL_Close.
func CloseColumn(ticker string) string {
	return ticker + "_Close"
}

// indicatorSeries returns the named indicators, each checked to be aligned with the index.
func indicatorSeries(index []time.Time, indicators types.IndicatorMapping, names ...string) ([]floats.Slice, error) {
	out := make([]floats.Slice, len(names))
	for i, name := range names {
		values, err := indicators.Get(name)
		if err != nil {
			return nil, err
		}

		if len(values) != len(index) {
			return nil, errors.Wrapf(dataframe.ErrLengthMismatch,
				"indicator %s has %d values, the index has %d", name, len(values), len(index))
		}
		out[i] = values
	}
	return out, nil
}

func (p *Plotter) technicalChart(title string) chart.Chart {
	ch := p.newChart(title, sizeTechnical)
	ch.XAxis = dateAxis("", nil)
	return ch
}

// addSeries appends the non-empty time series, a placeholder keeps the legend entry of an empty one.
func addSeries(ch *chart.Chart, series ...chart.TimeSeries) {
	for _, s := range series {
		if len(s.XValues) == 0 {
			ch.Series = append(ch.Series, &EmptySeries{Name: s.Name, Style: s.Style, YAxis: s.YAxis})
			continue
		}
		ch.Series = append(ch.Series, s)
	}
}

// finish adds the legend, and fixed ranges when the points do not span an axis.
func finish(ch *chart.Chart) {
	xs, ys := seriesPoints(ch)
	fitTimeRanges(ch, xs, ys)
	legend(ch)
}

// PriceAndMA plots the close price of ticker with its 50 and 200 day simple moving averages.
func (p *Plotter) PriceAndMA(data *dataframe.Table, ticker string, indicators types.IndicatorMapping) error {
	title := fmt.Sprintf("%s Close Price and Moving Averages", ticker)

	index, err := data.Index()
	if err != nil {
		return err
	}

	closes, err := data.Floats(CloseColumn(ticker))
	if err != nil {
		return err
	}

	ma, err := indicatorSeries(index, indicators, types.IndicatorSMA50, types.IndicatorSMA200)
	if err != nil {
		return err
	}

	ch := p.technicalChart(title)
	addSeries(&ch,
		timeSeries(ticker+" Close Price", index, closes, lineStyle(style.SeriesColor(0))),
		timeSeries(ticker+" 50-Day SMA", index, ma[0], lineStyle(style.SeriesColor(1))),
		timeSeries(ticker+" 200-Day SMA", index, ma[1], lineStyle(style.SeriesColor(2))),
	)
	finish(&ch)

	return p.Show(title, ch)
}

// RSI plots the relative strength index of ticker with the overbought and oversold levels.
func (p *Plotter) RSI(data *dataframe.Table, ticker string, indicators types.IndicatorMapping) error {
	title := fmt.Sprintf("%s Relative Strength Index (RSI)", ticker)

	index, err := data.Index()
	if err != nil {
		return err
	}

	rsi, err := indicatorSeries(index, indicators, types.IndicatorRSI)
	if err != nil {
		return err
	}

	levelStyle := dashedLineStyle(style.Red)
	levelStyle.StrokeWidth = 1.0

	ch := p.technicalChart(title)
	ch.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 100}
	addSeries(&ch,
		timeSeries(ticker+" RSI", index, rsi[0], lineStyle(style.SeriesColor(0))),
		hline(fmt.Sprintf("Overbought (%.0f)", RSIOverbought), index, RSIOverbought, levelStyle),
		hline(fmt.Sprintf("Oversold (%.0f)", RSIOversold), index, RSIOversold, levelStyle),
	)
	finish(&ch)

	return p.Show(title, ch)
}

// MACD plots the MACD and signal lines of ticker over the semi-transparent histogram.
func (p *Plotter) MACD(data *dataframe.Table, ticker string, indicators types.IndicatorMapping) error {
	title := fmt.Sprintf("%s MACD", ticker)

	index, err := data.Index()
	if err != nil {
		return err
	}

	macd, err := indicatorSeries(index, indicators,
		types.IndicatorMACD, types.IndicatorMACDSignal, types.IndicatorMACDHist)
	if err != nil {
		return err
	}

	histColor := style.Alpha(style.SeriesColor(2), 0.3)
	hist := timeSeries(ticker+" MACD Hist", index, macd[2], chart.Style{
		FillColor:   histColor,
		StrokeColor: histColor,
		StrokeWidth: 1.0,
	})

	ch := p.technicalChart(title)
	if len(hist.XValues) > 0 {
		ch.Series = append(ch.Series, chart.HistogramSeries{
			Name:        hist.Name,
			Style:       hist.Style,
			InnerSeries: hist,
		})
	} else {
		addSeries(&ch, hist)
	}
	addSeries(&ch,
		timeSeries(ticker+" MACD", index, macd[0], lineStyle(style.SeriesColor(0))),
		timeSeries(ticker+" MACD Signal", index, macd[1], lineStyle(style.SeriesColor(1))),
	)
	finish(&ch)

	return p.Show(title, ch)
}
