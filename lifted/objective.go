package lifted

import (
	"fmt"

	"github.com/katalvlaran/liftgrid/grid"
	"github.com/katalvlaran/liftgrid/multicut"
)

// Objective is a pixel-wise lifted multicut objective: one scalar cut
// cost per (pixel, offset) pair over a fixed grid shape. The cost of a
// labeling is the sum of weights of all in-bounds (pixel, partner)
// pairs carrying different labels.
//
// An Objective is immutable after construction and safe for concurrent
// reads. Weights are stored flat in row-major order with the offset
// index as the fastest-varying axis: weight(p, o) = weights[p·N + o].
type Objective struct {
	shape   grid.Shape
	offsets grid.Offsets
	weights []float64
	// deltas[o] is the row-major index shift of offset o; a partner's
	// linear index is pixelIdx + deltas[o] once bounds-checked.
	deltas []int
}

// NewObjective constructs an Objective from a grid shape, an offset
// set and a flat weight tensor of logical shape `shape × offsets`.
// Inputs are deep-copied; the Objective never aliases caller memory.
//
// Errors:
//   - grid.ErrDimensionMismatch: offset dimensionality ≠ shape's.
//   - ErrWeightsShape: len(weights) ≠ shape.Size() × offsets.Len().
//
// Complexity: O(S·N) time and memory.
func NewObjective(shape grid.Shape, offsets grid.Offsets, weights []float64) (*Objective, error) {
	deltas, err := offsets.LinearDeltas(shape)
	if err != nil {
		return nil, err
	}
	if want := shape.Size() * offsets.Len(); len(weights) != want {
		return nil, fmt.Errorf("%w: got %d, want %d×%d=%d",
			ErrWeightsShape, len(weights), shape.Size(), offsets.Len(), want)
	}
	ws := make([]float64, len(weights))
	copy(ws, weights)

	return &Objective{
		shape:   shape,
		offsets: offsets,
		weights: ws,
		deltas:  deltas,
	}, nil
}

// Shape returns the grid shape.
func (o *Objective) Shape() grid.Shape { return o.shape }

// Offsets returns the offset set.
func (o *Objective) Offsets() grid.Offsets { return o.offsets }

// NumVariables returns the number of pixels, ∏ shape.
func (o *Objective) NumVariables() int { return o.shape.Size() }

// NumOffsets returns the offset count N.
func (o *Objective) NumOffsets() int { return o.offsets.Len() }

// Weight returns the cut cost of (pixel, offset) by linear pixel index
// and offset index.
func (o *Objective) Weight(pixelIdx, offsetIdx int) float64 {
	return o.weights[pixelIdx*o.offsets.Len()+offsetIdx]
}

// checkLabeling validates a grid labeling's length, wrapping
// ErrLabelingShape with the concrete dimensions.
func (o *Objective) checkLabeling(labels []uint64) error {
	if len(labels) != o.shape.Size() {
		return fmt.Errorf("%w: got %d, grid %v has %d",
			ErrLabelingShape, len(labels), o.shape.Extents(), o.shape.Size())
	}

	return nil
}

// Evaluate returns the objective value of labels: for every pixel p
// and offset o whose partner q is in bounds, weight(p, o) is added iff
// label(p) ≠ label(q). Each (p, o) pair is visited exactly once; the
// function does not deduplicate (p, q) against (q, p) — the caller
// chooses a symmetric or intentionally directed offset set.
//
// Returns ErrLabelingShape before any traversal on length mismatch.
// Complexity: O(S·N·D).
func (o *Objective) Evaluate(labels []uint64) (float64, error) {
	if err := o.checkLabeling(labels); err != nil {
		return 0, err
	}

	var (
		total    float64
		nOffsets = o.offsets.Len()
		q        = make([]int, o.shape.Dims())
		it       = grid.NewIterator(o.shape)
		pIdx     = 0
	)
	for it.Next() {
		p := it.Coord()
		labelP := labels[pIdx]
		for oi := 0; oi < nOffsets; oi++ {
			off := o.offsets.At(oi)
			for d := range q {
				q[d] = p[d] + off[d]
			}
			// Out-of-range partners contribute zero cost.
			if !o.shape.InBounds(q) {
				continue
			}
			if labelP != labels[pIdx+o.deltas[oi]] {
				total += o.weights[pIdx*nOffsets+oi]
			}
		}
		pIdx++
	}

	return total, nil
}

// Optimize materializes the full, uncontracted pixel graph — every
// pixel a node, every in-bounds (pixel, offset-partner) pair an edge
// with its tensor weight — seeds it with initial, solves via factory
// and returns the optimized grid labeling. With verbose set, solver
// progress is reported through a log-backed observer.
//
// Shape mismatches are reported before any graph work; solver failures
// propagate unchanged.
// Complexity: O(S·N·D) build plus the solver's own cost.
func (o *Objective) Optimize(factory multicut.Factory, initial []uint64, verbose bool) ([]uint64, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	if err := o.checkLabeling(initial); err != nil {
		return nil, err
	}

	// 1. Build the full lifted graph over all pixels.
	var (
		g        = multicut.NewGraph(o.shape.Size())
		nOffsets = o.offsets.Len()
		q        = make([]int, o.shape.Dims())
		it       = grid.NewIterator(o.shape)
		pIdx     = 0
	)
	for it.Next() {
		p := it.Coord()
		for oi := 0; oi < nOffsets; oi++ {
			off := o.offsets.At(oi)
			for d := range q {
				q[d] = p[d] + off[d]
			}
			if !o.shape.InBounds(q) {
				continue
			}
			if err := g.AddCost(pIdx, pIdx+o.deltas[oi], o.weights[pIdx*nOffsets+oi]); err != nil {
				return nil, err
			}
		}
		pIdx++
	}

	// 2. Seed node labels from the initial grid labeling.
	nodeLabels := make([]uint64, len(initial))
	copy(nodeLabels, initial)

	// 3. Solve; the solver mutates nodeLabels in place.
	solver, err := factory.Create(g)
	if err != nil {
		return nil, err
	}
	var obs multicut.Observer
	if verbose {
		obs = multicut.NewLogObserver(nil)
	}
	if err = solver.Optimize(nodeLabels, obs); err != nil {
		return nil, err
	}

	// 4. The node order is the grid's row-major order, so the node
	//    labeling already is the grid labeling.
	return nodeLabels, nil
}
