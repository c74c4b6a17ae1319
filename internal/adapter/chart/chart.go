// Package chart renders measurement series to PNG line charts.
package chart

import (
	"bytes"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"weightbot/internal/domain"
)

// Renderer draws a dated line chart with one dot per measurement.
type Renderer struct{}

var _ domain.ChartRenderer = (*Renderer)(nil)

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderSeries renders the points as a PNG. At least two points are
// required; a single dot makes no evolution chart.
func (r *Renderer) RenderSeries(title string, points []domain.SeriesPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("chart needs at least 2 points, got %d", len(points))
	}

	xs := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Date
		ys[i], _ = p.Value.Float64()
	}

	graph := chart.Chart{
		Title:  title,
		Width:  800,
		Height: 480,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("02/01"),
		},
		YAxis: chart.YAxis{
			Name: "kg",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 2,
					DotWidth:    4,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
