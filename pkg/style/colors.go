package style

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Chart colors, matching the usual matplotlib names.
var (
	Blue    = drawing.ColorFromHex("0000ff")
	Red     = drawing.ColorFromHex("ff0000")
	Green   = drawing.ColorFromHex("008000")
	SkyBlue = drawing.ColorFromHex("87ceeb")
	Gray    = drawing.ColorFromHex("b0b0b0")

	TabBlue = drawing.ColorFromHex("1f77b4")
	TabRed  = drawing.ColorFromHex("d62728")
)

// Tab10 is the ten color qualitative palette used for categorical series.
var Tab10 = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
	drawing.ColorFromHex("e377c2"),
	drawing.ColorFromHex("7f7f7f"),
	drawing.ColorFromHex("bcbd22"),
	drawing.ColorFromHex("17becf"),
}

// SeriesColor returns the palette color of the i-th series, cycling through Tab10.
func SeriesColor(i int) drawing.Color {
	if i < 0 {
		i = -i
	}
	return Tab10[i%len(Tab10)]
}

// Alpha converts an opacity in [0, 1] to the alpha channel of a color.
func Alpha(c drawing.Color, opacity float64) drawing.Color {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return c.WithAlpha(uint8(opacity*255 + 0.5))
}
