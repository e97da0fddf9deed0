package indicator

import (
	"github.com/newsalpha/newsplot/pkg/datatype/floats"
)

/*
macd implements moving average convergence divergence indicator

Moving Average Convergence Divergence (MACD)
- https://www.investopedia.com/terms/m/macd.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:macd-histogram
*/
type MACDConfig struct {
	// Window is the signal line period, usually 9
	Window int `json:"window"`
	// ShortPeriod is the short term period EMA, usually 12
	ShortPeriod int `json:"short"`
	// LongPeriod is the long term period EMA, usually 26
	LongPeriod int `json:"long"`
}

var DefaultMACDConfig = MACDConfig{Window: 9, ShortPeriod: 12, LongPeriod: 26}

type MACD struct {
	MACDConfig

	Values    floats.Slice `json:"-"`
	Signal    floats.Slice `json:"-"`
	Histogram floats.Slice `json:"-"`

	fastEWMA, slowEWMA, signalLine *EWMA
}

func (inc *MACD) Update(x float64) {
	if inc.fastEWMA == nil {
		if inc.ShortPeriod == 0 {
			inc.ShortPeriod = DefaultMACDConfig.ShortPeriod
		}

		if inc.LongPeriod == 0 {
			inc.LongPeriod = DefaultMACDConfig.LongPeriod
		}

		if inc.Window == 0 {
			inc.Window = DefaultMACDConfig.Window
		}

		inc.fastEWMA = &EWMA{Window: inc.ShortPeriod}
		inc.slowEWMA = &EWMA{Window: inc.LongPeriod}
		inc.signalLine = &EWMA{Window: inc.Window}
	}

	// update fast and slow ema
	inc.fastEWMA.Update(x)
	inc.slowEWMA.Update(x)

	macd := inc.fastEWMA.Last() - inc.slowEWMA.Last()
	inc.Values.Push(macd)

	inc.signalLine.Update(macd)
	signal := inc.signalLine.Last()
	inc.Signal.Push(signal)

	inc.Histogram.Push(macd - signal)
}

func (inc *MACD) Last() float64 {
	return inc.Values.Last(0)
}

func (inc *MACD) Length() int {
	return len(inc.Values)
}

// CalculateMACD returns the MACD line, the signal line and the histogram of prices.
func CalculateMACD(prices floats.Slice, config MACDConfig) (macd, signal, histogram floats.Slice) {
	inc := &MACD{MACDConfig: config}
	for _, p := range prices {
		inc.Update(p)
	}
	return inc.Values, inc.Signal, inc.Histogram
}
