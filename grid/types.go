// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/liftgrid.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyShape indicates a shape with zero dimensions.
	ErrEmptyShape = errors.New("grid: shape must have at least one extent")
	// ErrNonPositiveExtent indicates an extent < 1.
	ErrNonPositiveExtent = errors.New("grid: all extents must be positive")
	// ErrNonRectangular indicates offset vectors of differing lengths.
	ErrNonRectangular = errors.New("grid: all offset vectors must have the same length")
	// ErrDimensionMismatch indicates a coordinate or offset whose
	// dimensionality differs from the shape's.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)

// Shape is the extent of a D-dimensional grid, one positive integer per
// axis. It is immutable once constructed; all methods are read-only.
type Shape struct {
	extents []int
	strides []int
	size    int
}

// Offsets is an ordered list of integer displacement vectors, each
// defining one (possibly long-range) neighbor direction per pixel.
// It is immutable once constructed.
type Offsets struct {
	vectors [][]int
	dims    int
}
