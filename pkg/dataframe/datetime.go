package dataframe

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/newsalpha/newsplot/pkg/types"
)

// ErrorPolicy decides what ToDatetime does with a value it cannot parse.
type ErrorPolicy int

const (
	// Raise returns ErrParseTime for the first unparsable value and leaves the table untouched.
	Raise ErrorPolicy = iota

	// Coerce stores the zero time (NaT) for unparsable values.
	Coerce
)

// ToDatetime converts the named column to a time column in place. layout is tried
// first, then the loose formats. Empty cells are always NaT. It returns the number
// of values set to NaT.
// A column that is already a time column is left as is.
func (t *Table) ToDatetime(name, layout string, policy ErrorPolicy) (int, error) {
	c, err := t.Column(name)
	if err != nil {
		return 0, err
	}

	if c.Kind() == KindTime {
		return 0, nil
	}

	values, coerced, err := t.parseTimes(name, layout, policy)
	if err != nil {
		return 0, err
	}

	return coerced, t.Set(NewTimeColumn(name, values))
}

// DropNaT removes, in place, the rows whose value in the named time column is missing.
// It returns the number of dropped rows.
func (t *Table) DropNaT(name string) (int, error) {
	values, err := t.Times(name)
	if err != nil {
		return 0, err
	}

	var idx []int
	for i, v := range values {
		if !v.IsZero() {
			idx = append(idx, i)
		}
	}

	dropped := t.length - len(idx)
	if dropped == 0 {
		return 0, nil
	}

	*t = *t.Take(idx)
	return dropped, nil
}

// AsTimes returns the named column as timestamps without modifying the table.
// Time columns are returned as is, other columns are parsed with the Raise policy.
func (t *Table) AsTimes(name, layout string) ([]time.Time, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	if tc, ok := c.(*TimeColumn); ok {
		return tc.Values(), nil
	}

	values, _, err := t.parseTimes(name, layout, Raise)
	return values, err
}

func (t *Table) parseTimes(name, layout string, policy ErrorPolicy) ([]time.Time, int, error) {
	raw, err := t.Strings(name)
	if err != nil {
		return nil, 0, err
	}

	coerced := 0
	values := make([]time.Time, len(raw))
	for i, s := range raw {
		if strings.TrimSpace(s) == "" {
			// missing values are NaT under both policies
			coerced++
			continue
		}

		tt, err := types.ParseTime(s, layout)
		if err != nil {
			if policy == Raise {
				return nil, 0, errors.Wrapf(ErrParseTime, "column %q row %d: %q", name, i, s)
			}

			coerced++
			continue
		}
		values[i] = tt
	}
	return values, coerced, nil
}
