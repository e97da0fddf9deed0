package plot

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/newsalpha/newsplot/pkg/style"
	"github.com/newsalpha/newsplot/pkg/types"
)

const (
	CorrelationSeriesName = "Correlation"
	PValueSeriesName      = "P-value"
)

// CorrelationAnalysis builds a chart with one bar per symbol for the correlation
// coefficient on the left axis and a dashed line of p-values on the right axis.
//
// The chart is returned instead of shown so that the caller can customize it
// before handing it to a Displayer.
func (p *Plotter) CorrelationAnalysis(record types.CorrelationRecord, title string) *chart.Chart {
	if title == "" {
		title = DefaultCorrelationTitle
	}

	correlationColor := style.Alpha(style.TabBlue, 0.6)

	n := len(record)
	xs := make([]float64, n)
	for i := range record {
		xs[i] = float64(i)
	}

	ch := p.newChart(title, sizeCorrelation)
	ch.XAxis = chart.XAxis{
		Name:      "Stocks",
		Ticks:     symbolTicks(record),
		Range:     &chart.ContinuousRange{Min: -0.5, Max: math.Max(float64(n), 1) - 0.5},
		TickStyle: chart.Style{TextRotationDegrees: 45.0},
	}
	ch.YAxis = chart.YAxis{
		Name:      "Correlation",
		NameStyle: chart.Style{FontColor: style.TabBlue},
		Style:     chart.Style{FontColor: style.TabBlue},
	}
	ch.YAxisSecondary = chart.YAxis{
		Name:      "P-value",
		NameStyle: chart.Style{FontColor: style.TabRed},
		Style:     chart.Style{FontColor: style.TabRed},
	}

	correlationStyle := chart.Style{
		FillColor:   correlationColor,
		StrokeColor: correlationColor,
		StrokeWidth: 1.0,
	}
	pValueStyle := dashedLineStyle(style.TabRed)
	pValueStyle.DotColor = style.TabRed
	pValueStyle.DotWidth = 5.0

	if n == 0 {
		ch.YAxis.Range = &chart.ContinuousRange{Min: -1, Max: 1}
		ch.YAxisSecondary.Range = &chart.ContinuousRange{Min: 0, Max: 1}
		ch.Series = []chart.Series{
			&EmptySeries{Name: CorrelationSeriesName, Style: correlationStyle},
			&EmptySeries{Name: PValueSeriesName, Style: pValueStyle, YAxis: chart.YAxisSecondary},
		}
		legend(&ch)
		return &ch
	}

	correlations := record.Correlations()
	pValues := record.PValues()

	ch.YAxis.Range = paddedRange(correlations, true)
	ch.YAxisSecondary.Range = paddedRange(pValues, false)

	ch.Series = []chart.Series{
		chart.HistogramSeries{
			Name:  CorrelationSeriesName,
			Style: correlationStyle,
			YAxis: chart.YAxisPrimary,
			InnerSeries: chart.ContinuousSeries{
				Name:    CorrelationSeriesName,
				XValues: xs,
				YValues: correlations,
			},
		},
		chart.ContinuousSeries{
			Name:    PValueSeriesName,
			Style:   pValueStyle,
			YAxis:   chart.YAxisSecondary,
			XValues: xs,
			YValues: pValues,
		},
	}
	legend(&ch)

	log.Debugf("built correlation chart of %d symbols", n)
	return &ch
}

// symbolTicks labels the bar of every symbol at its index. go-chart spans the
// x axis from the first to the last tick, so unlabeled ticks half a bar outside
// the first and last bars keep both bars whole.
func symbolTicks(record types.CorrelationRecord) []chart.Tick {
	n := len(record)
	if n == 0 {
		return nil
	}

	ticks := make([]chart.Tick, 0, n+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i, c := range record {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: c.Symbol})
	}
	return append(ticks, chart.Tick{Value: float64(n) - 0.5})
}

// paddedRange spans the finite values of ys, extended by 10%. withZero keeps
// zero inside the range so that bars grow from the axis.
func paddedRange(ys []float64, withZero bool) *chart.ContinuousRange {
	min, max := math.Inf(1), math.Inf(-1)
	if withZero {
		min, max = 0, 0
	}
	for _, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		min = math.Min(min, y)
		max = math.Max(max, y)
	}

	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}

	pad := (max - min) * 0.1
	if pad == 0 {
		pad = 1
	}
	return &chart.ContinuousRange{Min: min - pad, Max: max + pad}
}
