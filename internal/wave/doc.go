// Package wave computes a single-step kinematic wave profile along a river reach.
//
// The reach is split into cells of equal spacing and a depth/discharge pair is
// marched from the upstream boundary to the downstream one:
//
//   - [Params]: the seven scalars describing the grid and both boundaries
//   - [Profile]: coordinates, depth and discharge per cell
//   - [Solve]: the explicit finite-difference pass
//
// # Example
//
//	p := wave.Params{Length: 1000, Spacing: 100, TimeStep: 60, UpstreamDepth: 1}
//	profile, err := wave.Solve(p)
//
// # Recurrence
//
// For every interior cell the discharge is advanced from the previous cell
// using the 5/3 power of depth, and the depth is then advanced from the
// discharge change. The discharge update reads the depth slot of the cell being
// computed before that slot is written, so it always sees the zero placeholder.
// The last cell is computed and then replaced by the downstream boundary values.
//
// Solve is a pure function; it holds no state between calls and is safe to call
// from multiple goroutines.
package wave
