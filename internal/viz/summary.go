package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/kinwave/internal/metrics"
	"github.com/san-kum/kinwave/internal/wave"
)

// Summary renders the parameters, cell count and metric values of a solve.
func Summary(p wave.Params, prof *wave.Profile, values map[string]float64) string {
	var b strings.Builder

	b.WriteString(Title.Render(PlotTitle) + "\n")
	b.WriteString(Separator(40) + "\n")

	rows := [][2]string{
		{"length", fmt.Sprintf("%g m", p.Length)},
		{"spacing", fmt.Sprintf("%g m", p.Spacing)},
		{"time step", fmt.Sprintf("%g s", p.TimeStep)},
		{"upstream", fmt.Sprintf("h=%g m  q=%g m3/s", p.UpstreamDepth, p.UpstreamDischarge)},
		{"downstream", fmt.Sprintf("h=%g m  q=%g m3/s", p.DownstreamDepth, p.DownstreamDischarge)},
	}
	if prof != nil {
		rows = append(rows, [2]string{"cells", fmt.Sprintf("%d", prof.Len())})
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n", MetricLabel.Render(fmt.Sprintf("%-12s", r[0])), MetricValue.Render(r[1])))
	}

	if len(values) > 0 {
		b.WriteString("\n")
		for _, name := range metrics.Names(values) {
			b.WriteString(fmt.Sprintf("%s %s\n", MetricLabel.Render(fmt.Sprintf("%-14s", name)), MetricValue.Render(fmt.Sprintf("%.6f", values[name]))))
		}
	}

	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}
