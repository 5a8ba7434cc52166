package config

import "math"

const (
	KeyLength              = "length"
	KeySpacing             = "spacing"
	KeyTimeStep            = "time_step"
	KeyUpstreamDepth       = "upstream_depth"
	KeyUpstreamDischarge   = "upstream_discharge"
	KeyDownstreamDepth     = "downstream_depth"
	KeyDownstreamDischarge = "downstream_discharge"
)

// Range describes the interactive control of one parameter.
type Range struct {
	Key     string
	Label   string
	Min     float64
	Max     float64
	Default float64
	Step    float64
}

// Ranges holds the controls in display order.
var Ranges = []Range{
	{KeyLength, "Length of river (m)", 1000, 10000, DefaultLength, 100},
	{KeySpacing, "Grid spacing (m)", 10, 500, DefaultSpacing, 10},
	{KeyTimeStep, "Time step (s)", 60, 3600, DefaultTimeStep, 60},
	{KeyUpstreamDepth, "Initial water depth at upstream boundary (m)", 0.0, 2.0, DefaultUpstreamDepth, 0.1},
	{KeyUpstreamDischarge, "Initial discharge at upstream boundary (m3/s)", 0.0, 2000.0, DefaultUpstreamDischarge, 1.0},
	{KeyDownstreamDepth, "Water depth at downstream boundary (m)", 0.0, 2.0, DefaultDownstreamDepth, 0.1},
	{KeyDownstreamDischarge, "Discharge at downstream boundary (m3/s)", 0.0, 1000.0, DefaultDownstreamDischarge, 1.0},
}

func GetRange(key string) (Range, bool) {
	for _, r := range Ranges {
		if r.Key == key {
			return r, true
		}
	}
	return Range{}, false
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Snap rounds v to the nearest step counted from Min and clamps it.
func (r Range) Snap(v float64) float64 {
	if r.Step <= 0 {
		return r.Clamp(v)
	}
	n := math.Round((v - r.Min) / r.Step)
	// keep one-decimal steps free of 0.30000000000000004 style noise
	snapped := math.Round((r.Min+n*r.Step)*1e9) / 1e9
	return r.Clamp(snapped)
}

// Nudge moves v by the given number of steps.
func (r Range) Nudge(v float64, steps int) float64 {
	return r.Snap(v + float64(steps)*r.Step)
}
