package types

import (
	"time"

	"github.com/newsalpha/newsplot/pkg/util"
)

// DateTimeLayout is the layout of the timestamps found in the price and news exports.
const DateTimeLayout = "2006-01-02 15:04:05"

var looseTimeFormats = []string{
	DateTimeLayout,
	time.RFC3339,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC822,
}

// ParseLooseTime parses date time string with a wide range of formats.
func ParseLooseTime(s string) (time.Time, error) {
	return util.ParseTimeWithFormats(s, looseTimeFormats)
}

// ParseTime tries layout first and falls back to the loose formats.
func ParseTime(s, layout string) (time.Time, error) {
	if layout != "" {
		if tt, err := time.Parse(layout, s); err == nil {
			return tt, nil
		}
	}
	return ParseLooseTime(s)
}

// Date truncates t to its calendar date, keeping the location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
