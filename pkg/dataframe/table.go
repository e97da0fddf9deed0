package dataframe

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/newsalpha/newsplot/pkg/datatype/floats"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrColumnType     = errors.New("unexpected column type")
	ErrParseTime      = errors.New("unable to parse time")
	ErrNoIndex        = errors.New("table has no index")
)

// Table is an ordered collection of named, equal-length columns.
type Table struct {
	names   []string
	columns map[string]Column
	length  int

	// index is the name of the time column used as the row index, if any.
	index string
}

func New(columns ...Column) (*Table, error) {
	t := &Table{columns: make(map[string]Column, len(columns))}
	for _, c := range columns {
		if err := t.Set(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(columns ...Column) *Table {
	t, err := New(columns...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Len() int {
	return t.length
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Set adds the column, or replaces the column with the same name in place.
func (t *Table) Set(c Column) error {
	_, replacing := t.columns[c.Name()]
	onlyColumn := replacing && len(t.names) == 1
	if len(t.names) > 0 && c.Len() != t.length && !onlyColumn {
		return errors.Wrapf(ErrLengthMismatch, "column %s has %d rows, table has %d", c.Name(), c.Len(), t.length)
	}

	if !replacing {
		t.names = append(t.names, c.Name())
	}
	t.columns[c.Name()] = c
	t.length = c.Len()
	return nil
}

func (t *Table) Column(name string) (Column, error) {
	c, ok := t.columns[name]
	if !ok {
		return nil, errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}
	return c, nil
}

// Strings returns the printable values of any column.
func (t *Table) Strings(name string) ([]string, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	if sc, ok := c.(*StringColumn); ok {
		return sc.Values(), nil
	}

	values := make([]string, c.Len())
	for i := range values {
		values[i] = c.Format(i)
	}
	return values, nil
}

// Floats returns the values of a float column. String columns are parsed,
// empty cells become NaN.
func (t *Table) Floats(name string) (floats.Slice, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	switch cc := c.(type) {
	case *FloatColumn:
		return cc.Values(), nil

	case *StringColumn:
		values, ok := parseFloats(cc.Values())
		if !ok {
			return nil, errors.Wrapf(ErrColumnType, "column %q is not numeric", name)
		}
		return values, nil
	}

	return nil, errors.Wrapf(ErrColumnType, "column %q is %s, not float", name, c.Kind())
}

// Times returns the values of a time column.
func (t *Table) Times(name string) ([]time.Time, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	tc, ok := c.(*TimeColumn)
	if !ok {
		return nil, errors.Wrapf(ErrColumnType, "column %q is %s, not time", name, c.Kind())
	}
	return tc.Values(), nil
}

// SetIndex marks a time column as the row index. String columns are converted first.
func (t *Table) SetIndex(name string) error {
	c, err := t.Column(name)
	if err != nil {
		return err
	}

	if c.Kind() != KindTime {
		if _, err := t.ToDatetime(name, "", Raise); err != nil {
			return err
		}
	}

	t.index = name
	return nil
}

func (t *Table) IndexName() string {
	return t.index
}

// Index returns the values of the index column.
func (t *Table) Index() ([]time.Time, error) {
	if t.index == "" {
		return nil, ErrNoIndex
	}
	return t.Times(t.index)
}

// Take returns a new table with the rows at idx, in that order.
func (t *Table) Take(idx []int) *Table {
	out := &Table{
		columns: make(map[string]Column, len(t.names)),
		names:   t.Names(),
		length:  len(idx),
		index:   t.index,
	}
	for _, name := range t.names {
		out.columns[name] = t.columns[name].take(idx)
	}
	return out
}

// Filter returns the rows for which keep returns true.
func (t *Table) Filter(keep func(i int) bool) *Table {
	var idx []int
	for i := 0; i < t.length; i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	return t.Take(idx)
}

// FilterIn keeps the rows whose value in column name is one of keys.
func (t *Table) FilterIn(name string, keys []string) (*Table, error) {
	values, err := t.Strings(name)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}

	return t.Filter(func(i int) bool {
		_, ok := set[values[i]]
		return ok
	}), nil
}

func (t *Table) Head(n int) *Table {
	if n > t.length {
		n = t.length
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return t.Take(idx)
}

// Row returns the printable values of the i-th row.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.names))
	for j, name := range t.names {
		row[j] = t.columns[name].Format(i)
	}
	return row
}

// PctChange adds a column holding the percent change of a numeric column.
func (t *Table) PctChange(name, newName string) error {
	values, err := t.Floats(name)
	if err != nil {
		return err
	}
	return t.Set(NewFloatColumn(newName, values.PctChange()))
}

func parseFloats(raw []string) (floats.Slice, bool) {
	values := make(floats.Slice, len(raw))
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			values[i] = nan
			continue
		}

		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}
