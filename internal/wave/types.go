package wave

import "math"

// Params holds the discretization and boundary values of a single solve.
type Params struct {
	Length   float64 // reach length (m)
	Spacing  float64 // grid spacing (m)
	TimeStep float64 // time step (s)

	UpstreamDepth       float64 // m
	UpstreamDischarge   float64 // m3/s
	DownstreamDepth     float64 // m
	DownstreamDischarge float64 // m3/s
}

// Ratio returns timeStep/spacing, the factor applied to every update.
func (p Params) Ratio() float64 {
	return p.TimeStep / p.Spacing
}

// MaxCells bounds the grid size accepted by Solve.
const MaxCells = 10_000_000

// CellCount returns floor(length/spacing). It does not validate its inputs;
// ratios beyond the int range give an undefined result.
func CellCount(length, spacing float64) int {
	return int(math.Floor(length / spacing))
}

// Profile is the result of a solve. All three slices have the same length.
type Profile struct {
	Coordinates []float64
	Depth       []float64
	Discharge   []float64
}

func (p *Profile) Len() int {
	return len(p.Coordinates)
}

// Length returns the distance covered by the coordinates.
func (p *Profile) Length() float64 {
	if len(p.Coordinates) == 0 {
		return 0
	}
	return p.Coordinates[len(p.Coordinates)-1]
}

func (p *Profile) Clone() *Profile {
	c := &Profile{
		Coordinates: make([]float64, len(p.Coordinates)),
		Depth:       make([]float64, len(p.Depth)),
		Discharge:   make([]float64, len(p.Discharge)),
	}
	copy(c.Coordinates, p.Coordinates)
	copy(c.Depth, p.Depth)
	copy(c.Discharge, p.Discharge)
	return c
}

// Linspace returns n evenly spaced values over [start, stop]. The last value
// is pinned to stop. For n == 1 it returns []float64{start}.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
