package lifted

import (
	"fmt"

	"github.com/katalvlaran/liftgrid/grid"
	"github.com/katalvlaran/liftgrid/ufd"
)

// ConnectedComponents relabels a grid labeling so that every output
// label covers exactly one spatially connected region of one input
// label, over direct (unit-step) grid adjacency. Output labels are
// dense in [0, K); K is returned alongside. Two partitions inducing
// the same pixel-pair relation yield identical output regardless of
// their absolute input label values.
//
// Errors:
//   - ErrLabelingShape: len(labels) ≠ shape.Size().
//
// Complexity: O(S·D) time, O(S) memory.
func ConnectedComponents(shape grid.Shape, labels []uint64) ([]uint64, int, error) {
	if len(labels) != shape.Size() {
		return nil, 0, fmt.Errorf("%w: got %d, grid %v has %d",
			ErrLabelingShape, len(labels), shape.Extents(), shape.Size())
	}

	// 1. Merge equal-label direct neighbors.
	var (
		uf      = ufd.New(shape.Size())
		strides = shape.Strides()
		it      = grid.NewIterator(shape)
		pIdx    = 0
	)
	for it.Next() {
		p := it.Coord()
		for d := 0; d < shape.Dims(); d++ {
			if p[d]+1 >= shape.Extent(d) {
				continue
			}
			qIdx := pIdx + strides[d]
			if labels[pIdx] == labels[qIdx] {
				uf.Merge(pIdx, qIdx)
			}
		}
		pIdx++
	}

	// 2. Emit dense component ids.
	var (
		toDense = uf.DenseRelabeling()
		out     = make([]uint64, shape.Size())
	)
	for i := range out {
		out[i] = uint64(toDense[uf.Find(i)])
	}

	return out, uf.NumberOfClasses(), nil
}
