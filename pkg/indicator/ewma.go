package indicator

import (
	"github.com/newsalpha/newsplot/pkg/datatype/floats"
)

// EWMA is the exponential weighted moving average with multiplier 2 / (window + 1),
// seeded with the first value.
type EWMA struct {
	Window int
	Values floats.Slice
}

func (inc *EWMA) Update(value float64) {
	if len(inc.Values) == 0 {
		inc.Values.Push(value)
		return
	}

	var multiplier = 2.0 / float64(1+inc.Window)
	ema := (1-multiplier)*inc.Last() + multiplier*value
	inc.Values.Push(ema)
}

func (inc *EWMA) Last() float64 {
	return inc.Values.Last(0)
}

func (inc *EWMA) Length() int {
	return len(inc.Values)
}

// CalculateEWMA returns the exponential moving average of values, aligned with the input.
func CalculateEWMA(values floats.Slice, window int) floats.Slice {
	inc := &EWMA{Window: window}
	for _, v := range values {
		inc.Update(v)
	}
	return inc.Values
}
