package style

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewDefaultTableStyle returns the rounded table style used when printing tables
// to a terminal. withColor adds the alternating row colors.
func NewDefaultTableStyle(withColor bool) *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
	}

	if withColor {
		style.Color = table.ColorOptionsYellowWhiteOnBlack
		style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
		style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	}
	return &style
}
