package dataframe

import (
	"sort"
	"time"

	"github.com/newsalpha/newsplot/pkg/types"
)

// ValueCounts counts the occurrences of each distinct value of the named column,
// most frequent first. Ties keep the order of first appearance. Empty values are skipped.
func (t *Table) ValueCounts(name string) (types.Counts, error) {
	values, err := t.Strings(name)
	if err != nil {
		return nil, err
	}

	positions := make(map[string]int)
	var counts types.Counts
	for _, v := range values {
		if v == "" {
			continue
		}

		if pos, ok := positions[v]; ok {
			counts[pos].Count++
			continue
		}

		positions[v] = len(counts)
		counts = append(counts, types.Count{Key: v, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts, nil
}

type DateCount struct {
	Date  time.Time
	Count int
}

// CountByDate groups the rows by the calendar date of the named time column and
// counts the rows of each date, in ascending date order. Missing times are skipped.
func (t *Table) CountByDate(name string) ([]DateCount, error) {
	values, err := t.Times(name)
	if err != nil {
		return nil, err
	}

	counts := make(map[time.Time]int)
	for _, v := range values {
		if v.IsZero() {
			continue
		}
		counts[types.Date(v)]++
	}

	out := make([]DateCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, DateCount{Date: d, Count: n})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
