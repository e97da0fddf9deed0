package indicator

import (
	"math"

	"github.com/newsalpha/newsplot/pkg/datatype/floats"
)

/*
rsi implements Relative Strength Index (RSI) with Wilder's smoothing

https://www.investopedia.com/terms/r/rsi.asp
*/
type RSI struct {
	Window          int
	Values          floats.Slice
	Prices          floats.Slice
	PreviousAvgLoss float64
	PreviousAvgGain float64
}

func (inc *RSI) Update(price float64) {
	inc.Prices.Push(price)

	if len(inc.Prices) < inc.Window+1 {
		inc.Values.Push(math.NaN())
		return
	}

	var avgGain float64
	var avgLoss float64
	if len(inc.Prices) == inc.Window+1 {
		for _, diff := range inc.Prices.Diff()[1:] {
			avgGain += math.Max(diff, 0)
			avgLoss += -math.Min(diff, 0)
		}
		avgGain /= float64(inc.Window)
		avgLoss /= float64(inc.Window)
	} else {
		difference := price - inc.Prices[len(inc.Prices)-2]
		currentGain := math.Max(difference, 0)
		currentLoss := -math.Min(difference, 0)

		avgGain = (inc.PreviousAvgGain*float64(inc.Window-1) + currentGain) / float64(inc.Window)
		avgLoss = (inc.PreviousAvgLoss*float64(inc.Window-1) + currentLoss) / float64(inc.Window)
	}

	var rsi float64
	switch {
	case avgLoss == 0 && avgGain == 0:
		rsi = 50
	case avgLoss == 0:
		rsi = 100
	default:
		rs := avgGain / avgLoss
		rsi = 100 - (100 / (1 + rs))
	}
	inc.Values.Push(rsi)

	inc.PreviousAvgGain = avgGain
	inc.PreviousAvgLoss = avgLoss
}

func (inc *RSI) Last() float64 {
	return inc.Values.Last(0)
}

func (inc *RSI) Length() int {
	return len(inc.Values)
}

// CalculateRSI returns the RSI of prices, aligned with the input.
func CalculateRSI(prices floats.Slice, window int) floats.Slice {
	inc := &RSI{Window: window}
	for _, p := range prices {
		inc.Update(p)
	}
	return inc.Values
}
