package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
		err   bool
	}{
		{"2020-06-05 10:30:54", time.Date(2020, 6, 5, 10, 30, 54, 0, time.UTC), false},
		{"2020-06-05", time.Date(2020, 6, 5, 0, 0, 0, 0, time.UTC), false},
		{"2020-06-05T10:30:54Z", time.Date(2020, 6, 5, 10, 30, 54, 0, time.UTC), false},
		{"not a date", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input, DateTimeLayout)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestParseTimeWithOffset(t *testing.T) {
	got, err := ParseLooseTime("2020-06-05 10:30:54-04:00")
	assert.NoError(t, err)
	assert.Equal(t, 14, got.UTC().Hour())
}

func TestDate(t *testing.T) {
	d := Date(time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), d)
}
