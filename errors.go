package qtree

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a point lies outside the tree's
	// bounding rectangle.
	ErrOutOfBounds = errors.New("point out of bounds")

	// ErrDuplicatePoint is returned when a point is tolerant-equal to one
	// already stored. The stored payload is kept.
	ErrDuplicatePoint = errors.New("duplicate point")

	// ErrDegenerateSubdivision is returned when placing a point would need a
	// quadrant narrower than the coordinate type can represent.
	ErrDegenerateSubdivision = errors.New("degenerate subdivision")
)

// PointError records a rejected insert.
//
// The underlying sentinel can be matched with errors.Is.
type PointError[C Coordinate] struct {
	X, Y C
	Err  error
}

func (e *PointError[C]) Error() string {
	return fmt.Sprintf("insert [%v,%v]: %v", e.X, e.Y, e.Err)
}

func (e *PointError[C]) Unwrap() error { return e.Err }
