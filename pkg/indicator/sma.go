package indicator

import (
	"math"

	"github.com/newsalpha/newsplot/pkg/datatype/floats"
)

// SMA is the simple moving average over the last Window values.
// Values holds one output per input, NaN until the window is filled.
type SMA struct {
	Window int
	Values floats.Slice

	rawValues floats.Slice
	sum       float64
}

func (inc *SMA) Update(value float64) {
	inc.rawValues.Push(value)
	inc.sum += value

	if len(inc.rawValues) > inc.Window {
		inc.sum -= inc.rawValues[len(inc.rawValues)-1-inc.Window]
	}

	if len(inc.rawValues) < inc.Window {
		inc.Values.Push(math.NaN())
		return
	}

	inc.Values.Push(inc.sum / float64(inc.Window))
}

func (inc *SMA) Last() float64 {
	return inc.Values.Last(0)
}

func (inc *SMA) Length() int {
	return len(inc.Values)
}

// CalculateSMA returns the simple moving average of values, aligned with the input.
func CalculateSMA(values floats.Slice, window int) floats.Slice {
	inc := &SMA{Window: window}
	for _, v := range values {
		inc.Update(v)
	}
	return inc.Values
}
