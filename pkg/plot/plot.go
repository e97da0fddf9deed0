package plot

import (
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/newsalpha/newsplot/pkg/datatype/floats"
	"github.com/newsalpha/newsplot/pkg/style"
	"github.com/newsalpha/newsplot/pkg/util"
)

var log = logrus.WithField("component", "plot")

const (
	DefaultDateColumn       = "date"
	DefaultStockValueColumn = "stock_value"
	DefaultStockTitle       = "Stock Value Over Time"
	DefaultTopN             = 10
	DefaultCorrelationTitle = "Correlation Analysis"

	// ReturnsDateColumn is the x column of the returns chart.
	ReturnsDateColumn = "Date"
)

var ErrNoDisplay = errors.New("no display configured")

// Figure is a chart that can be rendered, e.g. chart.Chart, chart.BarChart or chart.StackedBarChart.
type Figure interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Displayer shows a rendered figure to the user.
type Displayer interface {
	Show(name string, fig Figure) error
}

type Config struct {
	// DPI of the rendered figures, go-chart's default when zero.
	DPI float64 `json:"dpi,omitempty" yaml:"dpi,omitempty"`

	// Scale multiplies the default size of every figure, 1 when zero.
	Scale float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// Plotter renders the charts and hands them to its Displayer.
type Plotter struct {
	Config

	display Displayer
}

func New(display Displayer, config Config) *Plotter {
	return &Plotter{Config: config, display: display}
}

type size struct {
	width, height int
}

var (
	sizeStock       = size{1000, 600}
	sizeFrequency   = size{1200, 600}
	sizeTopN        = size{1000, 600}
	sizeSentiment   = size{1200, 600}
	sizeReturns     = size{1200, 600}
	sizeCorrelation = size{1200, 600}
	sizeTechnical   = size{1400, 700}
)

func (p *Plotter) scaled(s size) (int, int) {
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	return int(float64(s.width) * scale), int(float64(s.height) * scale)
}

// newChart returns a fresh chart, every helper draws on its own.
func (p *Plotter) newChart(title string, s size) chart.Chart {
	width, height := p.scaled(s)
	return chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		DPI:    p.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
	}
}

// Show hands fig to the display under a file friendly name derived from title.
func (p *Plotter) Show(title string, fig Figure) error {
	if p.display == nil {
		return ErrNoDisplay
	}

	name := util.Slugify(title)
	log.Debugf("showing figure %s", name)
	return p.display.Show(name, fig)
}

func gridStyle(opacity float64, dashed bool) chart.Style {
	s := chart.Style{
		StrokeColor: style.Alpha(style.Gray, opacity),
		StrokeWidth: 1.0,
	}
	if dashed {
		s.StrokeDashArray = []float64{5.0, 3.0}
	}
	return s
}

// dateAxis is an x axis of dates with rotated labels.
func dateAxis(name string, grid *chart.Style) chart.XAxis {
	axis := chart.XAxis{
		Name:           name,
		ValueFormatter: chart.TimeDateValueFormatter,
		TickStyle:      chart.Style{TextRotationDegrees: 45.0},
	}
	if grid != nil {
		axis.GridMajorStyle = *grid
	}
	return axis
}

func lineStyle(color drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: color,
		StrokeWidth: 2.0,
	}
}

func dashedLineStyle(color drawing.Color) chart.Style {
	s := lineStyle(color)
	s.StrokeDashArray = []float64{6.0, 4.0}
	return s
}

// timeSeries builds a time series, skipping the points whose value is NaN.
func timeSeries(name string, xs []time.Time, ys floats.Slice, s chart.Style) chart.TimeSeries {
	series := chart.TimeSeries{Name: name, Style: s}
	for i, y := range ys {
		if math.IsNaN(y) {
			continue
		}
		series.XValues = append(series.XValues, xs[i])
		series.YValues = append(series.YValues, y)
	}
	return series
}

// hline is a horizontal line at y spanning xs.
func hline(name string, xs []time.Time, y float64, s chart.Style) chart.TimeSeries {
	if len(xs) == 0 {
		return chart.TimeSeries{Name: name, Style: s}
	}
	return chart.TimeSeries{
		Name:    name,
		Style:   s,
		XValues: []time.Time{xs[0], xs[len(xs)-1]},
		YValues: []float64{y, y},
	}
}

// fitTimeRanges gives an axis a fixed range when the points cannot span one,
// go-chart refuses to render a zero width range. A y range set by the caller is kept.
func fitTimeRanges(ch *chart.Chart, xs []time.Time, ys []float64) {
	if len(xs) == 0 {
		ch.XAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
		ch.XAxis.ValueFormatter = chart.IntValueFormatter
		if ch.YAxis.Range == nil {
			ch.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
		}
		return
	}

	first, last := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x.Before(first) {
			first = x
		}
		if x.After(last) {
			last = x
		}
	}
	if first.Equal(last) {
		x := chart.TimeToFloat64(first)
		day := float64(24 * time.Hour)
		ch.XAxis.Range = &chart.ContinuousRange{Min: x - day, Max: x + day}
	}

	if ch.YAxis.Range != nil {
		return
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		if math.IsNaN(y) {
			continue
		}
		min = math.Min(min, y)
		max = math.Max(max, y)
	}
	if min == max {
		ch.YAxis.Range = &chart.ContinuousRange{Min: min - 1, Max: max + 1}
	}
}

// seriesPoints collects the points of the time series of ch, histogram bars included.
func seriesPoints(ch *chart.Chart) (xs []time.Time, ys []float64) {
	for _, s := range ch.Series {
		var ts chart.TimeSeries
		switch v := s.(type) {
		case chart.TimeSeries:
			ts = v
		case chart.HistogramSeries:
			ts, _ = v.InnerSeries.(chart.TimeSeries)
		default:
			continue
		}

		xs = append(xs, ts.XValues...)
		ys = append(ys, ts.YValues...)
	}
	return xs, ys
}

// addTimeSeries appends series to the chart, or a placeholder when it has no points.
func addTimeSeries(ch *chart.Chart, series chart.TimeSeries) {
	if len(series.XValues) == 0 {
		ch.Series = append(ch.Series, &EmptySeries{Name: series.Name, Style: series.Style, YAxis: series.YAxis})
	} else {
		ch.Series = append(ch.Series, series)
	}
	fitTimeRanges(ch, series.XValues, series.YValues)
}

func legend(ch *chart.Chart) {
	ch.Elements = []chart.Renderable{chart.LegendLeft(ch)}
}
