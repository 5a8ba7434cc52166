package wave

import (
	"errors"
	"fmt"
)

// Domain errors for profile computation.
var (
	// ErrInvalidDiscretization indicates a grid that cannot hold a single cell.
	ErrInvalidDiscretization = errors.New("wave: invalid discretization")

	// ErrInvalidInput indicates a value the recurrence cannot evaluate in the reals.
	ErrInvalidInput = errors.New("wave: invalid input")
)

// CellError wraps an error with the cell that triggered it.
type CellError struct {
	Cell    int
	Depth   float64
	Wrapped error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%v: depth %g at cell %d feeds a 5/3 power", e.Wrapped, e.Depth, e.Cell)
}

func (e *CellError) Unwrap() error {
	return e.Wrapped
}
