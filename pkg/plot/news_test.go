package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/newsalpha/newsplot/pkg/dataframe"
	"github.com/newsalpha/newsplot/pkg/datatype/floats"
	"github.com/newsalpha/newsplot/pkg/types"
)

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func TestPublicationFrequency(t *testing.T) {
	p, display := newTestPlotter()
	df := dataframe.MustNew(dataframe.NewStringColumn("date",
		"2020-06-05 10:30:54",
		"2020-06-05 11:00:00",
		"2020-06-03 09:00:00",
		"2020-06-05 23:59:59",
	))

	require.NoError(t, p.PublicationFrequency(df, "date"))

	ch := lastChart(t, display)
	assert.Equal(t, "Publication Frequency Over Time", ch.Title)
	assert.Equal(t, "Number of Articles", ch.YAxis.Name)

	series, ok := ch.Series[0].(chart.TimeSeries)
	require.True(t, ok)
	assert.Equal(t, "Publications per Day", series.Name)
	assert.Equal(t, []float64{1, 3}, series.YValues)
	assert.NotZero(t, series.Style.DotWidth, "the line is marked")

	render(t, ch)
}

func TestPublicationFrequencyEmpty(t *testing.T) {
	p, display := newTestPlotter()
	df := dataframe.MustNew(dataframe.NewStringColumn("date"))

	require.NoError(t, p.PublicationFrequency(df, "date"))

	ch := lastChart(t, display)
	require.Len(t, ch.Series, 1)
	_, ok := ch.Series[0].(*EmptySeries)
	assert.True(t, ok, "zero points")

	render(t, ch)
}

func TestPublicationFrequencyRaisesBadDates(t *testing.T) {
	p, display := newTestPlotter()
	df := dataframe.MustNew(dataframe.NewStringColumn("date", "2020-06-05", "yesterday"))

	err := p.PublicationFrequency(df, "date")
	assert.ErrorIs(t, err, dataframe.ErrParseTime)
	assert.Empty(t, display.Figures)
}

func publisherCounts(n int) types.Counts {
	counts := make(types.Counts, n)
	for i := range counts {
		counts[i] = types.Count{Key: string(rune('A' + i)), Count: 100 - i*10}
	}
	return counts
}

func TestTopPublisherBars(t *testing.T) {
	t.Run("N beyond the entries", func(t *testing.T) {
		bars := TopPublisherBars(publisherCounts(5), 10)
		assert.Len(t, bars, 5)
	})

	t.Run("first N entries", func(t *testing.T) {
		bars := TopPublisherBars(publisherCounts(10), 3)
		require.Len(t, bars, 3)
		assert.Equal(t, "A", bars[0].Label)
		assert.Equal(t, "B", bars[1].Label)
		assert.Equal(t, "C", bars[2].Label)
		assert.Equal(t, 80.0, bars[2].Value)
	})

	t.Run("input order is kept", func(t *testing.T) {
		counts := types.Counts{{Key: "small", Count: 1}, {Key: "big", Count: 50}}
		bars := TopPublisherBars(counts, 0)
		assert.Equal(t, "small", bars[0].Label)
	})
}

func TestTopPublishers(t *testing.T) {
	p, display := newTestPlotter()
	require.NoError(t, p.TopPublishers(publisherCounts(5), 10))

	fig := display.Last()
	bc, ok := fig.(chart.BarChart)
	require.True(t, ok)
	assert.Equal(t, "Top 10 Publishers by Number of Articles", bc.Title)
	assert.Len(t, bc.Bars, 5)

	render(t, bc)
}

func newsTable() *dataframe.Table {
	var publishers, sentiments []string
	add := func(publisher, sentiment string, n int) {
		publishers = append(publishers, repeat(publisher, n)...)
		sentiments = append(sentiments, repeat(sentiment, n)...)
	}
	add("Zacks", "positive", 25)
	add("Zacks", "neutral", 15)
	add("Zacks", "negative", 10)
	add("Benzinga", "positive", 10)
	add("Benzinga", "neutral", 20)
	add("Motley Fool", "positive", 5)
	add("Motley Fool", "neutral", 15)
	add("Accesswire", "mixed", 5)

	return dataframe.MustNew(
		dataframe.NewStringColumn("publisher", publishers...),
		dataframe.NewStringColumn("sentiment", sentiments...),
	)
}

func TestSentimentPercentages(t *testing.T) {
	pct, err := SentimentPercentages(newsTable(), "publisher", "sentiment", 3)
	require.NoError(t, err)

	// Zacks:50 Benzinga:30 Motley Fool:20 Accesswire:5, the rows are ordered by name
	assert.Equal(t, []string{"Benzinga", "Motley Fool", "Zacks"}, pct.Rows)

	for i, publisher := range pct.Rows {
		assert.InDelta(t, 1.0, pct.Row(i).Sum(), 1e-9, publisher)
	}

	assert.InDelta(t, 0.5, pct.At("Zacks", "positive"), 1e-9)
	assert.InDelta(t, 0.2, pct.At("Zacks", "negative"), 1e-9)
	assert.Equal(t, 0.0, pct.At("Motley Fool", "negative"))
	assert.InDelta(t, 2.0/3.0, pct.At("Benzinga", "neutral"), 1e-9)
}

func TestSentimentAbsentCategory(t *testing.T) {
	pct, err := SentimentPercentages(newsTable(), "publisher", "sentiment", 3)
	require.NoError(t, err)

	// only Accesswire has mixed articles, the column stays as all zero segments
	assert.Equal(t, []string{"mixed", "negative", "neutral", "positive"}, pct.Columns)
	assert.Equal(t, floats.New(0, 0, 0), pct.Column(0))
}

func TestSentimentByPublisher(t *testing.T) {
	p, display := newTestPlotter()
	require.NoError(t, p.SentimentByPublisher(newsTable(), "publisher", "sentiment", 0))

	fig := display.Last()
	sbc, ok := fig.(chart.StackedBarChart)
	require.True(t, ok)
	assert.Equal(t, "Sentiment Distribution for Top 10 Publishers", sbc.Title)
	require.Len(t, sbc.Bars, 4)

	for _, bar := range sbc.Bars {
		require.Len(t, bar.Values, 4, bar.Name)

		var sum float64
		for j, v := range bar.Values {
			sum += v.Value
			// segments of the same category share a color
			assert.Equal(t, sbc.Bars[0].Values[j].Style.FillColor, v.Style.FillColor)
			assert.Equal(t, sbc.Bars[0].Values[j].Label, v.Label)
		}
		assert.InDelta(t, 1.0, sum, 1e-9, bar.Name)
	}

	render(t, sbc)
}

func TestSentimentMissingColumn(t *testing.T) {
	p, _ := newTestPlotter()
	err := p.SentimentByPublisher(newsTable(), "publisher", "label", 3)
	assert.ErrorIs(t, err, dataframe.ErrColumnNotFound)
}
