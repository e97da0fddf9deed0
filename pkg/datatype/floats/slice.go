package floats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Slice is a column of float64 values. Missing values are NaN.
type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

// Repeat returns a slice of n copies of v.
func Repeat(v float64, n int) Slice {
	s := make(Slice, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Last(i int) float64 {
	length := len(s)
	if i < 0 || length-1-i < 0 {
		return 0.0
	}
	return s[length-1-i]
}

func (s Slice) Sum() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return floats.Sum(s)
}

func (s Slice) Mean() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return s.Sum() / float64(len(s))
}

// Diff returns the first difference, the first element is NaN.
func (s Slice) Diff() Slice {
	values := make(Slice, len(s))
	for i, v := range s {
		if i == 0 {
			values[i] = math.NaN()
			continue
		}
		values[i] = v - s[i-1]
	}
	return values
}

// PctChange returns (s[i] - s[i-1]) / s[i-1], the first element is NaN.
func (s Slice) PctChange() Slice {
	values := make(Slice, len(s))
	for i, v := range s {
		if i == 0 || s[i-1] == 0 {
			values[i] = math.NaN()
			continue
		}
		values[i] = (v - s[i-1]) / s[i-1]
	}
	return values
}

func (s Slice) MulScalar(x float64) Slice {
	values := make(Slice, len(s))
	copy(values, s)
	floats.Scale(x, values)
	return values
}

// Normalize divides every element by the sum of the slice.
// A zero sum yields a copy of the input.
func (s Slice) Normalize() Slice {
	sum := s.Sum()
	if sum == 0 {
		values := make(Slice, len(s))
		copy(values, s)
		return values
	}
	return s.MulScalar(1.0 / sum)
}

func (s Slice) HasNaN() bool {
	return floats.HasNaN(s)
}

// Valid returns the indexes of the non-NaN elements.
func (s Slice) Valid() []int {
	var idx []int
	for i, v := range s {
		if math.IsNaN(v) {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// Take returns the elements at the given indexes.
func (s Slice) Take(idx []int) Slice {
	values := make(Slice, len(idx))
	for i, j := range idx {
		values[i] = s[j]
	}
	return values
}
