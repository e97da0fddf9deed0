package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newsalpha/newsplot/pkg/datatype/floats"
)

func TestCountsHead(t *testing.T) {
	counts := Counts{{"A", 50}, {"B", 30}, {"C", 20}, {"D", 5}}

	assert.Equal(t, Counts{{"A", 50}, {"B", 30}, {"C", 20}}, counts.Head(3))
	assert.Equal(t, counts, counts.Head(10))
	assert.Empty(t, counts.Head(0))
	assert.Empty(t, counts.Head(-1))
	assert.Equal(t, []string{"A", "B", "C", "D"}, counts.Keys())
	assert.Equal(t, 105, counts.Total())

	n, ok := counts.Get("C")
	assert.True(t, ok)
	assert.Equal(t, 20, n)
	_, ok = counts.Get("Z")
	assert.False(t, ok)
}

func TestIndicatorMappingGet(t *testing.T) {
	m := IndicatorMapping{IndicatorRSI: floats.New(50, 60)}

	v, err := m.Get(IndicatorRSI)
	assert.NoError(t, err)
	assert.Equal(t, floats.New(50, 60), v)

	_, err = m.Get(IndicatorMACD)
	assert.True(t, errors.Is(err, ErrIndicatorNotFound))
	assert.Contains(t, err.Error(), "MACD")
}

func TestCorrelationRecord(t *testing.T) {
	record := NewCorrelationRecord(map[string]Correlation{
		"TSLA": {Correlation: 0.2, PValue: 0.5},
		"AAPL": {Correlation: 0.4, PValue: 0.01},
	})
	record.Add("NVDA", Correlation{Correlation: -0.1, PValue: 0.9})

	assert.Equal(t, []string{"AAPL", "TSLA", "NVDA"}, record.Symbols())
	assert.Equal(t, []float64{0.4, 0.2, -0.1}, record.Correlations())
	assert.Equal(t, []float64{0.01, 0.5, 0.9}, record.PValues())
}
