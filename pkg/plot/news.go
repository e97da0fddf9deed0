package plot

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/newsalpha/newsplot/pkg/dataframe"
	"github.com/newsalpha/newsplot/pkg/style"
	"github.com/newsalpha/newsplot/pkg/types"
)

// PublicationFrequency plots the number of rows per calendar day of dateColumn.
//
// Unlike StockData, a date that cannot be parsed is returned as an error.
func (p *Plotter) PublicationFrequency(df *dataframe.Table, dateColumn string) error {
	const title = "Publication Frequency Over Time"

	if _, err := df.ToDatetime(dateColumn, "", dataframe.Raise); err != nil {
		return err
	}

	perDay, err := df.CountByDate(dateColumn)
	if err != nil {
		return err
	}

	series := chart.TimeSeries{
		Name: "Publications per Day",
		Style: chart.Style{
			StrokeColor: style.Green,
			StrokeWidth: 2.0,
			DotColor:    style.Green,
			DotWidth:    4.0,
		},
	}
	for _, c := range perDay {
		series.XValues = append(series.XValues, c.Date)
		series.YValues = append(series.YValues, float64(c.Count))
	}

	grid := gridStyle(0.6, true)
	ch := p.newChart(title, sizeFrequency)
	ch.XAxis = dateAxis("Date", &grid)
	ch.YAxis = chart.YAxis{
		Name:           "Number of Articles",
		GridMajorStyle: grid,
		ValueFormatter: chart.IntValueFormatter,
	}
	addTimeSeries(&ch, series)
	legend(&ch)

	log.Debugf("plotting publication frequency of %d days", len(perDay))
	return p.Show(title, ch)
}

// TopPublisherBars returns the bars of the first topN entries of counts.
// counts is expected to be sorted already, it is not sorted here.
func TopPublisherBars(counts types.Counts, topN int) []chart.Value {
	head := counts.Head(TopN(topN))
	bars := make([]chart.Value, len(head))
	for i, c := range head {
		bars[i] = chart.Value{
			Label: c.Key,
			Value: float64(c.Count),
			Style: chart.Style{
				FillColor:   style.SkyBlue,
				StrokeColor: style.SkyBlue,
				StrokeWidth: 1.0,
			},
		}
	}
	return bars
}

// TopPublishers plots the first topN publishers of counts as vertical bars.
func (p *Plotter) TopPublishers(counts types.Counts, topN int) error {
	topN = TopN(topN)
	title := fmt.Sprintf("Top %d Publishers by Number of Articles", topN)

	bars := TopPublisherBars(counts, topN)

	var max float64
	for _, b := range bars {
		max = math.Max(max, b.Value)
	}
	if max == 0 {
		max = 1
	}

	width, height := p.scaled(sizeTopN)
	ch := chart.BarChart{
		Title:  title,
		Width:  width,
		Height: height,
		DPI:    p.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 60},
		},
		BarWidth: 40,
		XAxis: chart.Style{
			TextRotationDegrees: 45.0,
		},
		YAxis: chart.YAxis{
			Name:           "Number of Articles",
			Range:          &chart.ContinuousRange{Min: 0, Max: max},
			ValueFormatter: chart.IntValueFormatter,
		},
		Bars: bars,
	}

	return p.Show(title, ch)
}

// SentimentPercentages returns the sentiment composition of the topN most
// frequent publishers. Every row of the result sums to one. Sentiment categories
// are taken from the whole table, so a category none of the selected publishers
// has is kept as an all zero column.
func SentimentPercentages(df *dataframe.Table, publisherColumn, sentimentColumn string, topN int) (*dataframe.Crosstab, error) {
	counts, err := df.ValueCounts(publisherColumn)
	if err != nil {
		return nil, err
	}

	ct, err := df.Crosstab(publisherColumn, sentimentColumn)
	if err != nil {
		return nil, err
	}

	top := counts.Head(TopN(topN)).Keys()
	return ct.SelectRows(top).Normalize(), nil
}

// SentimentByPublisher plots the sentiment composition of the topN most
// frequent publishers as stacked bars, one segment color per sentiment category.
func (p *Plotter) SentimentByPublisher(df *dataframe.Table, publisherColumn, sentimentColumn string, topN int) error {
	title := fmt.Sprintf("Sentiment Distribution for Top %d Publishers", TopN(topN))

	pct, err := SentimentPercentages(df, publisherColumn, sentimentColumn, topN)
	if err != nil {
		return err
	}

	colors := make([]drawing.Color, len(pct.Columns))
	for j := range pct.Columns {
		colors[j] = style.SeriesColor(j)
	}

	bars := make([]chart.StackedBar, len(pct.Rows))
	for i, publisher := range pct.Rows {
		row := pct.Row(i)
		bar := chart.StackedBar{Name: publisher}
		for j, sentiment := range pct.Columns {
			bar.Values = append(bar.Values, chart.Value{
				Label: sentiment,
				Value: row[j],
				Style: chart.Style{
					FillColor:   colors[j],
					StrokeColor: colors[j],
					StrokeWidth: 1.0,
				},
			})
		}
		bars[i] = bar
	}

	width, height := p.scaled(sizeSentiment)
	ch := chart.StackedBarChart{
		Title:  title,
		Width:  width,
		Height: height,
		DPI:    p.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 160, Bottom: 40},
		},
		YAxis: chart.Style{
			FontColor: chart.DefaultTextColor,
		},
		Bars:     bars,
		Elements: []chart.Renderable{categoryLegend("Sentiment", pct.Columns, colors)},
	}

	log.Debugf("plotting sentiment of %d publishers over %d categories", len(pct.Rows), len(pct.Columns))
	return p.Show(title, ch)
}

// categoryLegend draws a color swatch and label per category on the right of the canvas.
func categoryLegend(title string, labels []string, colors []drawing.Color) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		text := chart.Style{
			Font:      defaults.GetFont(),
			FontSize:  9.0,
			FontColor: chart.DefaultTextColor,
		}
		text.WriteTextOptionsToRenderer(r)

		const swatch, spacing = 10, 6
		left := canvas.Right + 15
		top := canvas.Top
		if title != "" {
			r.Text(title, left, top+swatch)
			top += swatch + spacing
		}
		for i, label := range labels {
			box := chart.Box{Top: top, Left: left, Right: left + swatch, Bottom: top + swatch}
			chart.Draw.Box(r, box, chart.Style{
				FillColor:   colors[i],
				StrokeColor: colors[i],
				StrokeWidth: 1.0,
			})

			text.WriteTextOptionsToRenderer(r)
			r.Text(label, left+swatch+spacing, top+swatch)
			top += swatch + spacing
		}
	}
}

// TopN returns topN, or DefaultTopN when topN is not positive.
func TopN(topN int) int {
	if topN <= 0 {
		return DefaultTopN
	}
	return topN
}
