package util

import (
	"fmt"
	"time"
)

// ParseTimeWithFormats tries the given layouts in order and returns the first match.
func ParseTimeWithFormats(strTime string, formats []string) (time.Time, error) {
	for _, format := range formats {
		tt, err := time.Parse(format, strTime)
		if err == nil {
			return tt, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse time %q, valid formats are %+v", strTime, formats)
}
