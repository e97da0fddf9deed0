package indicator

import (
	"github.com/newsalpha/newsplot/pkg/datatype/floats"
	"github.com/newsalpha/newsplot/pkg/types"
)

const (
	ShortSMAWindow = 50
	LongSMAWindow  = 200
	RSIWindow      = 14
)

// Compute calculates every indicator drawn by the price, RSI and MACD charts
// from a close price series. Each series is aligned with closes.
func Compute(closes floats.Slice) types.IndicatorMapping {
	macd, signal, histogram := CalculateMACD(closes, DefaultMACDConfig)
	return types.IndicatorMapping{
		types.IndicatorSMA50:      CalculateSMA(closes, ShortSMAWindow),
		types.IndicatorSMA200:     CalculateSMA(closes, LongSMAWindow),
		types.IndicatorRSI:        CalculateRSI(closes, RSIWindow),
		types.IndicatorMACD:       macd,
		types.IndicatorMACDSignal: signal,
		types.IndicatorMACDHist:   histogram,
	}
}
