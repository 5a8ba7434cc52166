package wave

import (
	"fmt"
	"math"
)

// exponent of the power-law closure between depth and discharge.
const exponent = 5.0 / 3.0

// Solve runs one explicit pass from the upstream to the downstream boundary.
// On error no profile is returned.
func Solve(p Params) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := CellCount(p.Length, p.Spacing)
	prof := &Profile{
		Coordinates: Linspace(0, p.Length, n),
		Depth:       make([]float64, n),
		Discharge:   make([]float64, n),
	}
	h, q := prof.Depth, prof.Discharge

	h[0] = p.UpstreamDepth
	q[0] = p.UpstreamDischarge

	r := p.Ratio()
	for i := 1; i < n; i++ {
		// h[i] still holds its initial zero here.
		up, err := power(h[i-1], i-1)
		if err != nil {
			return nil, err
		}
		cur, err := power(h[i], i)
		if err != nil {
			return nil, err
		}
		q[i] = q[i-1] + r*(up-cur)
		h[i] = h[i-1] + r*(q[i-1]-q[i])

		if i == n-1 {
			q[i] = p.DownstreamDischarge
			h[i] = p.DownstreamDepth
		}
	}

	return prof, nil
}

// Validate reports whether p describes a grid of at least one cell with
// finite boundary values.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"length", p.Length},
		{"spacing", p.Spacing},
		{"time step", p.TimeStep},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidDiscretization, f.name)
		}
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidDiscretization, f.name, f.v)
		}
	}
	cells := p.Length / p.Spacing
	if cells < 1 {
		return fmt.Errorf("%w: spacing %g exceeds length %g", ErrInvalidDiscretization, p.Spacing, p.Length)
	}
	if math.IsInf(cells, 0) || math.Floor(cells) > MaxCells {
		return fmt.Errorf("%w: length %g over spacing %g exceeds %d cells", ErrInvalidDiscretization, p.Length, p.Spacing, MaxCells)
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"upstream depth", p.UpstreamDepth},
		{"upstream discharge", p.UpstreamDischarge},
		{"downstream depth", p.DownstreamDepth},
		{"downstream discharge", p.DownstreamDischarge},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidInput, f.name)
		}
	}
	return nil
}

func power(depth float64, cell int) (float64, error) {
	if depth < 0 || math.IsNaN(depth) {
		return 0, &CellError{Cell: cell, Depth: depth, Wrapped: ErrInvalidInput}
	}
	return math.Pow(depth, exponent), nil
}
