package point

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for point construction, access and parsing.
var (
	// ErrEmptyPoint indicates a point with zero coordinates.
	ErrEmptyPoint = errors.New("point: point must have at least one coordinate")

	// ErrDimensionMismatch indicates two points (or a point set) with differing arity.
	ErrDimensionMismatch = errors.New("point: dimension mismatch")

	// ErrAxisOutOfRange indicates a coordinate axis outside [0, Dim()).
	ErrAxisOutOfRange = errors.New("point: axis out of range")

	// ErrMalformedLine indicates an input line that is not a comma-separated
	// list of non-negative integers.
	ErrMalformedLine = errors.New("point: malformed line")
)

// Point is an immutable tuple of non-negative integer coordinates.
// Callers must not modify a Point after handing it to the engine; New copies
// its input so the usual construction path never aliases caller memory.
type Point []uint64

// New returns a Point holding a private copy of coords.
func New(coords ...uint64) Point {
	p := make(Point, len(coords))
	copy(p, coords)

	return p
}

// Dim returns the number of axes of p.
func (p Point) Dim() int { return len(p) }

// Coord returns the coordinate of p along axis.
func (p Point) Coord(axis int) (uint64, error) {
	if axis < 0 || axis >= len(p) {
		return 0, fmt.Errorf("%w: axis %d, dim %d", ErrAxisOutOfRange, axis, len(p))
	}

	return p[axis], nil
}

// String renders p in the same comma-separated form Read accepts.
func (p Point) String() string {
	buf := make([]byte, 0, len(p)*4)
	for i, c := range p {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, c, 10)
	}

	return string(buf)
}

// Validate checks that points is a uniform-arity point set and returns that arity.
// An empty slice is valid and reports dimension 0.
func Validate(points []Point) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}
	dim := points[0].Dim()
	if dim == 0 {
		return 0, fmt.Errorf("%w: index 0", ErrEmptyPoint)
	}
	for i, p := range points[1:] {
		if p.Dim() != dim {
			return 0, fmt.Errorf("%w: index %d has %d axes, want %d", ErrDimensionMismatch, i+1, p.Dim(), dim)
		}
	}

	return dim, nil
}
