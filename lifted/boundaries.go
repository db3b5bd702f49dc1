package lifted

import (
	"fmt"

	"github.com/katalvlaran/liftgrid/grid"
)

// ExtractBoundaries derives, from a ground-truth labeling, a boolean
// tensor of logical shape `shape × offsets` marking which offset edges
// cross a label boundary: entry (p, o) is true iff the partner
// q = p + offset[o] is in bounds and gt(p) ≠ gt(q). Out-of-range
// entries keep their zero value (false). The input is never mutated.
//
// Used to build supervised training weights; not part of the
// optimization loop.
//
// Errors:
//   - grid.ErrDimensionMismatch: offset dimensionality ≠ shape's.
//   - ErrLabelingShape: len(gt) ≠ shape.Size().
//
// Complexity: O(S·N·D) time, O(S·N) memory.
func ExtractBoundaries(shape grid.Shape, offsets grid.Offsets, gt []uint64) ([]bool, error) {
	deltas, err := offsets.LinearDeltas(shape)
	if err != nil {
		return nil, err
	}
	if len(gt) != shape.Size() {
		return nil, fmt.Errorf("%w: got %d, grid %v has %d",
			ErrLabelingShape, len(gt), shape.Extents(), shape.Size())
	}

	var (
		nOffsets = offsets.Len()
		out      = make([]bool, shape.Size()*nOffsets)
		q        = make([]int, shape.Dims())
		it       = grid.NewIterator(shape)
		pIdx     = 0
	)
	for it.Next() {
		p := it.Coord()
		labelP := gt[pIdx]
		for oi := 0; oi < nOffsets; oi++ {
			off := offsets.At(oi)
			for d := range q {
				q[d] = p[d] + off[d]
			}
			if !shape.InBounds(q) {
				continue
			}
			out[pIdx*nOffsets+oi] = labelP != gt[pIdx+deltas[oi]]
		}
		pIdx++
	}

	return out, nil
}
