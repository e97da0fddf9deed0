package stats

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/newsalpha/newsplot/pkg/dataframe"
	"github.com/newsalpha/newsplot/pkg/datatype/floats"
	"github.com/newsalpha/newsplot/pkg/types"
)

var ErrNotEnoughData = errors.New("not enough data points")

// Pearson returns the Pearson correlation of x and y and its two-sided p-value
// under the null hypothesis of no correlation. Pairs where either side is NaN are skipped.
func Pearson(x, y floats.Slice) (types.Correlation, error) {
	if len(x) != len(y) {
		return types.Correlation{}, errors.Wrapf(dataframe.ErrLengthMismatch, "x has %d values, y has %d", len(x), len(y))
	}

	var xs, ys []float64
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}

	n := len(xs)
	if n < 3 {
		return types.Correlation{}, errors.Wrapf(ErrNotEnoughData, "%d complete pairs", n)
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		// one side is constant
		return types.Correlation{Correlation: math.NaN(), PValue: math.NaN()}, nil
	}

	return types.Correlation{Correlation: r, PValue: pValue(r, n)}, nil
}

func pValue(r float64, n int) float64 {
	if math.Abs(r) >= 1 {
		return 0
	}

	dof := float64(n - 2)
	t := r * math.Sqrt(dof/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
	return 2 * dist.Survival(math.Abs(t))
}

// Correlate correlates the base column with every column of columns and returns
// one entry per column, keyed by the symbol prefix of the column name.
func Correlate(t *dataframe.Table, base string, columns []string) (types.CorrelationRecord, error) {
	x, err := t.Floats(base)
	if err != nil {
		return nil, err
	}

	var record types.CorrelationRecord
	for _, column := range columns {
		y, err := t.Floats(column)
		if err != nil {
			return nil, err
		}

		c, err := Pearson(x, y)
		if err != nil {
			return nil, errors.Wrapf(err, "correlate %s with %s", base, column)
		}

		record.Add(types.SymbolFromColumn(column), c)
	}
	return record, nil
}
