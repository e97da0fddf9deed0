package dataframe

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	floatsx "github.com/newsalpha/newsplot/pkg/datatype/floats"
)

// Crosstab is a frequency table of two columns: one row per distinct value of the
// row column and one column per distinct value of the column column, both sorted.
// Absent combinations are zero.
type Crosstab struct {
	Rows    []string
	Columns []string

	// values is nil when there are no rows or no columns.
	values *mat.Dense
}

// Crosstab counts the rows for every (rowName, colName) value pair.
// Rows where either value is empty are ignored.
func (t *Table) Crosstab(rowName, colName string) (*Crosstab, error) {
	rowValues, err := t.Strings(rowName)
	if err != nil {
		return nil, err
	}

	colValues, err := t.Strings(colName)
	if err != nil {
		return nil, err
	}

	rowSet := map[string]int{}
	colSet := map[string]int{}
	for i := range rowValues {
		if rowValues[i] == "" || colValues[i] == "" {
			continue
		}
		rowSet[rowValues[i]] = 0
		colSet[colValues[i]] = 0
	}

	ct := &Crosstab{
		Rows:    sortedKeys(rowSet),
		Columns: sortedKeys(colSet),
	}
	if len(ct.Rows) == 0 || len(ct.Columns) == 0 {
		return ct, nil
	}

	for i, k := range ct.Rows {
		rowSet[k] = i
	}
	for j, k := range ct.Columns {
		colSet[k] = j
	}

	ct.values = mat.NewDense(len(ct.Rows), len(ct.Columns), nil)
	for i := range rowValues {
		if rowValues[i] == "" || colValues[i] == "" {
			continue
		}
		r, c := rowSet[rowValues[i]], colSet[colValues[i]]
		ct.values.Set(r, c, ct.values.At(r, c)+1)
	}
	return ct, nil
}

func (ct *Crosstab) Empty() bool {
	return ct.values == nil
}

// Row returns a copy of the i-th row.
func (ct *Crosstab) Row(i int) floatsx.Slice {
	if ct.values == nil {
		return nil
	}
	return mat.Row(nil, i, ct.values)
}

// Column returns a copy of the j-th column.
func (ct *Crosstab) Column(j int) floatsx.Slice {
	if ct.values == nil {
		return nil
	}
	return mat.Col(nil, j, ct.values)
}

// At returns the cell of the given row and column values, zero when either is unknown.
func (ct *Crosstab) At(row, col string) float64 {
	i, j := indexOf(ct.Rows, row), indexOf(ct.Columns, col)
	if i < 0 || j < 0 || ct.values == nil {
		return 0
	}
	return ct.values.At(i, j)
}

func (ct *Crosstab) RowSums() floatsx.Slice {
	sums := make(floatsx.Slice, len(ct.Rows))
	if ct.values == nil {
		return sums
	}
	for i := range ct.Rows {
		sums[i] = floats.Sum(ct.values.RawRowView(i))
	}
	return sums
}

// SelectRows returns the crosstab restricted to the given row values, in the
// existing row order. Every column is kept, even when it becomes all zero.
func (ct *Crosstab) SelectRows(keys []string) *Crosstab {
	keep := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}

	out := &Crosstab{Columns: ct.Columns}
	var idx []int
	for i, row := range ct.Rows {
		if _, ok := keep[row]; ok {
			out.Rows = append(out.Rows, row)
			idx = append(idx, i)
		}
	}

	if ct.values == nil || len(idx) == 0 {
		return out
	}

	out.values = mat.NewDense(len(idx), len(ct.Columns), nil)
	for i, src := range idx {
		out.values.SetRow(i, ct.values.RawRowView(src))
	}
	return out
}

// Normalize returns a new crosstab where each row is divided by its sum,
// so each row holds the composition of the row value in fractions of one.
// Rows summing to zero are left at zero.
func (ct *Crosstab) Normalize() *Crosstab {
	out := &Crosstab{Rows: ct.Rows, Columns: ct.Columns}
	if ct.values == nil {
		return out
	}

	out.values = mat.DenseCopyOf(ct.values)
	for i := range out.Rows {
		row := out.values.RawRowView(i)
		sum := floats.Sum(row)
		if sum == 0 {
			continue
		}
		floats.Scale(1.0/sum, row)
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(a []string, s string) int {
	for i, v := range a {
		if v == s {
			return i
		}
	}
	return -1
}
