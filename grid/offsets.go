package grid

// NewOffsets constructs an Offsets list from the given displacement
// vectors. It deep-copies the input to ensure immutability.
// Returns ErrNonRectangular if the vectors have differing lengths,
// ErrEmptyShape if a vector has zero length.
// An empty vector list is valid and yields zero offsets.
// Complexity: O(N×D) time and memory.
func NewOffsets(vectors [][]int) (Offsets, error) {
	if len(vectors) == 0 {
		return Offsets{}, nil
	}
	dims := len(vectors[0])
	if dims == 0 {
		return Offsets{}, ErrEmptyShape
	}
	vs := make([][]int, len(vectors))
	for i, v := range vectors {
		if len(v) != dims {
			return Offsets{}, ErrNonRectangular
		}
		vs[i] = make([]int, dims)
		copy(vs[i], v)
	}

	return Offsets{vectors: vs, dims: dims}, nil
}

// Len returns the number of offset vectors N.
// Complexity: O(1).
func (o Offsets) Len() int { return len(o.vectors) }

// Dims returns the dimensionality D of the vectors (0 when empty).
// Complexity: O(1).
func (o Offsets) Dims() int { return o.dims }

// At returns the i-th displacement vector. The returned slice is the
// internal storage and must not be mutated.
// Complexity: O(1).
func (o Offsets) At(i int) []int { return o.vectors[i] }

// LinearDeltas returns, per offset, the signed row-major index shift it
// induces under shape: for an in-bounds partner q = p + offset,
// Index(q) == Index(p) + delta. The shift is only meaningful after an
// InBounds check on q.
// Returns ErrDimensionMismatch if the dimensionalities differ.
// Complexity: O(N×D).
func (o Offsets) LinearDeltas(shape Shape) ([]int, error) {
	if o.Len() > 0 && o.dims != shape.Dims() {
		return nil, ErrDimensionMismatch
	}
	deltas := make([]int, o.Len())
	for i, v := range o.vectors {
		d := 0
		for axis, step := range v {
			d += step * shape.strides[axis]
		}
		deltas[i] = d
	}

	return deltas, nil
}

// AxisSteps returns the D unit displacement vectors (+1 along each
// axis), the direct grid-neighbor directions used by agreement walks
// and connected-component passes.
// Complexity: O(D²) time and memory.
func AxisSteps(dims int) Offsets {
	vs := make([][]int, dims)
	for d := 0; d < dims; d++ {
		vs[d] = make([]int, dims)
		vs[d][d] = 1
	}

	return Offsets{vectors: vs, dims: dims}
}
