package grid

// NewShape constructs a Shape from the given extents.
// It deep-copies the input and precomputes row-major strides.
// Returns ErrEmptyShape if no extents are given,
// ErrNonPositiveExtent if any extent is < 1.
// Complexity: O(D) time and memory.
func NewShape(extents ...int) (Shape, error) {
	if len(extents) == 0 {
		return Shape{}, ErrEmptyShape
	}
	for _, e := range extents {
		if e < 1 {
			return Shape{}, ErrNonPositiveExtent
		}
	}
	// Deep copy to prevent external mutation.
	ext := make([]int, len(extents))
	copy(ext, extents)

	// Row-major strides: the last axis varies fastest.
	strides := make([]int, len(ext))
	strides[len(ext)-1] = 1
	for d := len(ext) - 2; d >= 0; d-- {
		strides[d] = strides[d+1] * ext[d+1]
	}

	return Shape{
		extents: ext,
		strides: strides,
		size:    strides[0] * ext[0],
	}, nil
}

// Dims returns the number of axes D.
// Complexity: O(1).
func (s Shape) Dims() int { return len(s.extents) }

// Size returns the total number of grid cells, ∏ extents.
// Complexity: O(1).
func (s Shape) Size() int { return s.size }

// Extent returns the extent along axis d.
// Complexity: O(1).
func (s Shape) Extent(d int) int { return s.extents[d] }

// Extents returns a copy of all extents.
// Complexity: O(D).
func (s Shape) Extents() []int {
	out := make([]int, len(s.extents))
	copy(out, s.extents)

	return out
}

// Strides returns a copy of the row-major strides; Index(coord) equals
// the dot product of coord and Strides().
// Complexity: O(D).
func (s Shape) Strides() []int {
	out := make([]int, len(s.strides))
	copy(out, s.strides)

	return out
}

// InBounds reports whether coord lies within [0, extent) on every axis.
// A coordinate of the wrong dimensionality is out of bounds.
// Complexity: O(D).
func (s Shape) InBounds(coord []int) bool {
	if len(coord) != len(s.extents) {
		return false
	}
	for d, c := range coord {
		if c < 0 || c >= s.extents[d] {
			return false
		}
	}

	return true
}

// Index maps a coordinate to its row-major linear index.
// The caller must ensure coord is in bounds; Index performs no check.
// Complexity: O(D).
func (s Shape) Index(coord []int) int {
	idx := 0
	for d, c := range coord {
		idx += c * s.strides[d]
	}

	return idx
}

// Coordinate converts a row-major linear index back to a fresh
// coordinate slice.
// Complexity: O(D).
func (s Shape) Coordinate(idx int) []int {
	out := make([]int, len(s.extents))
	s.CoordinateInto(idx, out)

	return out
}

// CoordinateInto converts a row-major linear index into the provided
// coordinate buffer, which must have length D. Allocation-free.
// Complexity: O(D).
func (s Shape) CoordinateInto(idx int, out []int) {
	for d := range s.extents {
		out[d] = idx / s.strides[d]
		idx -= out[d] * s.strides[d]
	}
}
