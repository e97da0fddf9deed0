package types

import "sort"

// Correlation is a correlation coefficient with its statistical significance.
type Correlation struct {
	Correlation float64 `json:"correlation"`
	PValue      float64 `json:"p_value"`
}

type SymbolCorrelation struct {
	Symbol string `json:"symbol"`
	Correlation
}

// CorrelationRecord keeps the correlation of each symbol in insertion order.
type CorrelationRecord []SymbolCorrelation

// NewCorrelationRecord builds a record from a map, ordered by symbol.
func NewCorrelationRecord(m map[string]Correlation) CorrelationRecord {
	symbols := make([]string, 0, len(m))
	for symbol := range m {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	record := make(CorrelationRecord, 0, len(m))
	for _, symbol := range symbols {
		record = append(record, SymbolCorrelation{Symbol: symbol, Correlation: m[symbol]})
	}
	return record
}

func (r *CorrelationRecord) Add(symbol string, c Correlation) {
	*r = append(*r, SymbolCorrelation{Symbol: symbol, Correlation: c})
}

func (r CorrelationRecord) Symbols() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Symbol
	}
	return out
}

func (r CorrelationRecord) Correlations() []float64 {
	out := make([]float64, len(r))
	for i, c := range r {
		out[i] = c.Correlation.Correlation
	}
	return out
}

func (r CorrelationRecord) PValues() []float64 {
	out := make([]float64, len(r))
	for i, c := range r {
		out[i] = c.PValue
	}
	return out
}
