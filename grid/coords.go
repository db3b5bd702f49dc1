package grid

// Iterator walks every coordinate of a shape in row-major order (last
// axis fastest) without materializing the coordinate list. The linear
// index of the current coordinate increases by exactly one per step,
// so callers may maintain a parallel counter instead of calling Index.
//
// Usage:
//
//	it := grid.NewIterator(shape)
//	for it.Next() {
//		coord := it.Coord() // valid until the next call to Next
//	}
type Iterator struct {
	shape Shape
	coord []int
	first bool
	done  bool
}

// NewIterator returns an Iterator positioned before the first
// coordinate of shape.
// Complexity: O(D) memory.
func NewIterator(shape Shape) *Iterator {
	return &Iterator{
		shape: shape,
		coord: make([]int, shape.Dims()),
		first: true,
	}
}

// Next advances to the next coordinate and reports whether one exists.
// Complexity: amortized O(1), worst-case O(D).
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	if it.first {
		it.first = false

		return true
	}
	// Row-major increment with carry, last axis fastest.
	for d := it.shape.Dims() - 1; d >= 0; d-- {
		it.coord[d]++
		if it.coord[d] < it.shape.extents[d] {
			return true
		}
		it.coord[d] = 0
	}
	it.done = true

	return false
}

// Coord returns the current coordinate. The slice is reused by Next;
// callers needing a stable copy must copy it themselves.
// Complexity: O(1).
func (it *Iterator) Coord() []int { return it.coord }

// Reset repositions the iterator before the first coordinate.
// Complexity: O(D).
func (it *Iterator) Reset() {
	for d := range it.coord {
		it.coord[d] = 0
	}
	it.first = true
	it.done = false
}
