package dataframe

import (
	"math"
	"strconv"
	"time"

	"github.com/newsalpha/newsplot/pkg/datatype/floats"
	"github.com/newsalpha/newsplot/pkg/types"
)

type Kind int

const (
	KindString Kind = iota
	KindFloat
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	}
	return "unknown"
}

// Column is a named sequence of values of a single kind.
type Column interface {
	Name() string
	Kind() Kind
	Len() int

	// Format returns the printable representation of the i-th value,
	// an empty string for missing values.
	Format(i int) string

	take(idx []int) Column
}

type StringColumn struct {
	name   string
	values []string
}

func NewStringColumn(name string, values ...string) *StringColumn {
	return &StringColumn{name: name, values: values}
}

func (c *StringColumn) Name() string       { return c.name }
func (c *StringColumn) Kind() Kind         { return KindString }
func (c *StringColumn) Len() int           { return len(c.values) }
func (c *StringColumn) Values() []string   { return c.values }
func (c *StringColumn) Format(i int) string { return c.values[i] }

func (c *StringColumn) take(idx []int) Column {
	values := make([]string, len(idx))
	for i, j := range idx {
		values[i] = c.values[j]
	}
	return &StringColumn{name: c.name, values: values}
}

type FloatColumn struct {
	name   string
	values floats.Slice
}

func NewFloatColumn(name string, values floats.Slice) *FloatColumn {
	return &FloatColumn{name: name, values: values}
}

func (c *FloatColumn) Name() string         { return c.name }
func (c *FloatColumn) Kind() Kind           { return KindFloat }
func (c *FloatColumn) Len() int             { return len(c.values) }
func (c *FloatColumn) Values() floats.Slice { return c.values }

func (c *FloatColumn) Format(i int) string {
	v := c.values[i]
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *FloatColumn) take(idx []int) Column {
	return &FloatColumn{name: c.name, values: c.values.Take(idx)}
}

// TimeColumn holds timestamps, the zero time marks a missing value.
type TimeColumn struct {
	name   string
	values []time.Time
}

func NewTimeColumn(name string, values []time.Time) *TimeColumn {
	return &TimeColumn{name: name, values: values}
}

func (c *TimeColumn) Name() string        { return c.name }
func (c *TimeColumn) Kind() Kind          { return KindTime }
func (c *TimeColumn) Len() int            { return len(c.values) }
func (c *TimeColumn) Values() []time.Time { return c.values }

func (c *TimeColumn) Format(i int) string {
	if c.values[i].IsZero() {
		return ""
	}
	return c.values[i].Format(types.DateTimeLayout)
}

func (c *TimeColumn) take(idx []int) Column {
	values := make([]time.Time, len(idx))
	for i, j := range idx {
		values[i] = c.values[j]
	}
	return &TimeColumn{name: c.name, values: values}
}
