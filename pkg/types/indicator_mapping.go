package types

import (
	"github.com/pkg/errors"

	"github.com/newsalpha/newsplot/pkg/datatype/floats"
)

// Indicator names produced by the indicator package and consumed by the chart helpers.
const (
	IndicatorSMA50      = "SMA50"
	IndicatorSMA200     = "SMA200"
	IndicatorRSI        = "RSI"
	IndicatorMACD       = "MACD"
	IndicatorMACDSignal = "MACD_Signal"
	IndicatorMACDHist   = "MACD_Hist"
)

var ErrIndicatorNotFound = errors.New("indicator not found")

// IndicatorMapping maps an indicator name to a series aligned with the rows of a table.
type IndicatorMapping map[string]floats.Slice

// Get returns the series of the named indicator.
func (m IndicatorMapping) Get(name string) (floats.Slice, error) {
	values, ok := m[name]
	if !ok {
		return nil, errors.Wrapf(ErrIndicatorNotFound, "indicator %s", name)
	}
	return values, nil
}
