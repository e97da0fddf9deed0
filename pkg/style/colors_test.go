package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeriesColor(t *testing.T) {
	assert.Equal(t, Tab10[0], SeriesColor(0))
	assert.Equal(t, Tab10[1], SeriesColor(11))
	assert.Equal(t, Tab10[3], SeriesColor(-3))
}

func TestAlpha(t *testing.T) {
	assert.Equal(t, uint8(153), Alpha(TabBlue, 0.6).A)
	assert.Equal(t, uint8(255), Alpha(TabBlue, 2).A)
	assert.Equal(t, uint8(0), Alpha(TabBlue, -1).A)
	assert.Equal(t, TabBlue.R, Alpha(TabBlue, 0.3).R)
}

func TestNewDefaultTableStyle(t *testing.T) {
	plain := NewDefaultTableStyle(false)
	assert.Equal(t, "StyleRounded", plain.Name)
	assert.Empty(t, plain.Color.Row)

	colored := NewDefaultTableStyle(true)
	assert.NotEmpty(t, colored.Color.Row)
}
