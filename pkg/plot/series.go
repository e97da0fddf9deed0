package plot

import (
	"github.com/wcharczuk/go-chart/v2"
)

var (
	_ chart.Series = &EmptySeries{}
)

// EmptySeries is a series without points. It keeps its legend entry and axis
// so that a chart of an empty table still renders.
type EmptySeries struct {
	Name  string
	Style chart.Style
	YAxis chart.YAxisType
}

// Implement chart.Series interface for EmptySeries.
func (es *EmptySeries) GetName() string {
	return es.Name
}

func (es *EmptySeries) GetStyle() chart.Style {
	return es.Style
}

func (es *EmptySeries) GetYAxis() chart.YAxisType {
	return es.YAxis
}

func (es *EmptySeries) Validate() error {
	return nil
}

func (es *EmptySeries) Render(r chart.Renderer, b chart.Box, xRange, yRange chart.Range, style chart.Style) {
}
