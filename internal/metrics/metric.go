package metrics

import (
	"sort"

	"github.com/san-kum/kinwave/internal/wave"
)

// Metric accumulates a scalar over the cells of a profile.
type Metric interface {
	Name() string
	Observe(x, depth, discharge float64)
	Value() float64
	Reset()
}

// Default returns the metrics reported after every solve.
func Default() []Metric {
	return []Metric{
		NewMax("depth_max", Depth),
		NewMin("depth_min", Depth),
		NewMean("depth_mean", Depth),
		NewMax("discharge_max", Discharge),
		NewMin("discharge_min", Discharge),
		NewWetFraction(0),
	}
}

// Evaluate resets each metric, feeds it every cell and collects the values.
func Evaluate(p *wave.Profile, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for i := 0; i < p.Len(); i++ {
			m.Observe(p.Coordinates[i], p.Depth[i], p.Discharge[i])
		}
		out[m.Name()] = m.Value()
	}
	return out
}

// Names returns the keys of values in sorted order.
func Names(values map[string]float64) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
