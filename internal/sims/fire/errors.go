package fire

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGridSize     = errors.New("grid size must be positive")
	ErrInvalidBurnDuration = errors.New("burn duration must be positive")
	ErrInvalidTimeSteps    = errors.New("time steps must be positive")
	ErrInvalidSpreadProb   = errors.New("base spread probability must be in (0, 1]")
	ErrInvalidHumidity     = errors.New("humidity must be in [0, 100]")
	ErrInvalidWindSpeed    = errors.New("wind speed must be non-negative")
	ErrNonFinite           = errors.New("parameter must be a finite number")
	ErrFieldSize           = errors.New("field dimensions do not match grid size")
	ErrOutOfBounds         = errors.New("cell outside grid")
)

// FieldSizeError reports a matrix whose shape does not match the grid.
type FieldSizeError struct {
	Field string
	Want  int
	Rows  int
	// Row is the first ragged row, or -1 when the row count itself is wrong.
	Row  int
	Cols int
}

func (e *FieldSizeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: got %d rows, want %d", e.Field, e.Rows, e.Want)
	}
	return fmt.Sprintf("%s: row %d has %d columns, want %d", e.Field, e.Row, e.Cols, e.Want)
}

func (e *FieldSizeError) Unwrap() error { return ErrFieldSize }

// OutOfBoundsError reports an ignition request outside the grid.
type OutOfBoundsError struct {
	Point Point
	Size  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("ignite (%d,%d): outside %dx%d grid", e.Point.Row, e.Point.Col, e.Size, e.Size)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

func checkMatrix(name string, m [][]float64, n int) error {
	if len(m) != n {
		return &FieldSizeError{Field: name, Want: n, Rows: len(m), Row: -1}
	}
	for r, row := range m {
		if len(row) != n {
			return &FieldSizeError{Field: name, Want: n, Rows: len(m), Row: r, Cols: len(row)}
		}
	}
	return nil
}
