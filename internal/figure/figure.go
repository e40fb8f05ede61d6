// Package figure renders charts to embeddable SVG markup.
package figure

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/frameprof/frameprof/internal/stats"
)

// NoFigureMessage is the placeholder shown when a chart cannot be built
// from the data.
const NoFigureMessage = `<span>&#9888;</span> No figure is generated because the column is empty`

// Size is a figure size in pixels, width then height.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when no explicit figure size is configured.
var DefaultSize = Size{Width: 700, Height: 300}

func (s Size) orDefault() Size {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSize
	}
	return s
}

// BarSVG renders a bar chart of counts with one bar per label. Empty input
// degrades to the no-figure placeholder.
func BarSVG(title string, labels []string, counts []int, yscale string, size Size) string {
	if len(labels) == 0 || len(labels) != len(counts) {
		return NoFigureMessage
	}
	size = size.orDefault()
	bars := make([]chart.Value, len(labels))
	for i, label := range labels {
		bars[i] = chart.Value{Label: label, Value: float64(counts[i])}
	}
	graph := chart.BarChart{
		Title:    title,
		Width:    size.Width,
		Height:   size.Height,
		BarWidth: barWidth(size.Width, len(bars)),
		Bars:     bars,
		YAxis:    yAxis(yscale),
	}
	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return NoFigureMessage
	}
	return buf.String()
}

// HistogramSVG buckets the values into nbins bins and renders the counts as
// a bar chart. NaN values are ignored.
func HistogramSVG(title string, values []float64, nbins int, yscale string, size Size) string {
	nonNaN := 0
	for _, v := range values {
		if v == v {
			nonNaN++
		}
	}
	if nonNaN == 0 {
		return NoFigureMessage
	}
	counts, edges := stats.Histogram(values, nbins)
	labels := make([]string, len(counts))
	for i := range counts {
		center := (edges[i] + edges[i+1]) / 2
		labels[i] = fmt.Sprintf("%.4g", center)
	}
	return BarSVG(title, labels, counts, yscale, size)
}

// TimelineSVG renders one value per temporal bucket label as a bar chart.
// Buckets whose value is NaN (e.g. a period with only null cells) are
// skipped.
func TimelineSVG(title string, labels []string, values []float64, yscale string, size Size) string {
	if len(labels) == 0 || len(labels) != len(values) {
		return NoFigureMessage
	}
	size = size.orDefault()
	var bars []chart.Value
	for i, label := range labels {
		if values[i] != values[i] {
			continue
		}
		bars = append(bars, chart.Value{Label: label, Value: values[i]})
	}
	if len(bars) == 0 {
		return NoFigureMessage
	}
	axis := chart.YAxis{Name: "value"}
	if yscale == "log" {
		axis.Range = &chart.LogarithmicRange{}
	}
	graph := chart.BarChart{
		Title:    title,
		Width:    size.Width,
		Height:   size.Height,
		BarWidth: barWidth(size.Width, len(bars)),
		Bars:     bars,
		YAxis:    axis,
	}
	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return NoFigureMessage
	}
	return buf.String()
}

// yAxis maps the resolved y-scale onto the chart axis. The symlog scale has
// no direct axis support; it falls back to a linear axis and keeps the
// chosen scale in the caption only.
func yAxis(yscale string) chart.YAxis {
	axis := chart.YAxis{Name: "count"}
	if yscale == "log" {
		axis.Range = &chart.LogarithmicRange{}
	}
	return axis
}

func barWidth(chartWidth, n int) int {
	if n == 0 {
		return 1
	}
	w := chartWidth / (2 * n)
	if w < 1 {
		w = 1
	}
	if w > 60 {
		w = 60
	}
	return w
}
