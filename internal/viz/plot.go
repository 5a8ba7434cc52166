package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/kinwave/internal/wave"
)

const (
	PlotTitle  = "Kinematic Wave Equation"
	XAxisLabel = "Distance (m)"
	YAxisLabel = "Water depth (m)"
)

type PlotOptions struct {
	Width  int
	Height int
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 70, Height: 12}
}

// Plot draws depth against distance. The x axis spans the profile coordinates.
func Plot(p *wave.Profile, opts PlotOptions) string {
	if p == nil || p.Len() == 0 {
		return ""
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultPlotOptions()
	}

	data := p.Depth
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(2),
		asciigraph.Caption(PlotTitle),
	)

	var b strings.Builder
	b.WriteString(YAxisLabel + "\n")
	b.WriteString(graph + "\n")
	b.WriteString(xAxis(graph, opts.Width, p.Length()))
	return b.String()
}

// xAxis aligns the distance range under the plotted area of graph, which is
// width columns wide since asciigraph interpolates the series to that width.
func xAxis(graph string, width int, length float64) string {
	offset := axisOffset(graph)
	left := "0"
	right := fmt.Sprintf("%.0f", length)
	label := XAxisLabel

	gap := width - len(left) - len(right) - len(label)
	if gap < 2 {
		return strings.Repeat(" ", offset) + left + " .. " + right + "  " + label + "\n"
	}
	l := gap / 2
	return strings.Repeat(" ", offset) + left + strings.Repeat(" ", l) + label + strings.Repeat(" ", gap-l) + right + "\n"
}

// axisOffset returns the column where the series starts, just past the y
// axis of the first row. Rows are trimmed on the right, so only the prefix
// is reliable.
func axisOffset(graph string) int {
	first := graph
	if i := strings.IndexByte(graph, '\n'); i >= 0 {
		first = graph[:i]
	}
	for i, r := range []rune(first) {
		if r == '┤' || r == '┼' {
			return i + 1
		}
	}
	return 0
}
