package lifted

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/liftgrid/grid"
	"github.com/katalvlaran/liftgrid/multicut"
	"github.com/katalvlaran/liftgrid/ufd"
)

// Fusion combines candidate labelings of one grid into a labeling of
// equal or lower objective value. Grid-adjacent pixels on which every
// candidate agrees are contracted into classes, the objective is
// projected onto the class graph, the contracted problem is solved by
// the external factory, and the solution is accepted only when it
// strictly beats the best input.
//
// A Fusion borrows its Objective read-only and does not own it; the
// Objective must outlive the Fusion. The embedded union-find is
// exclusive scratch state, reset at the start of every fuse call, so
// one Fusion instance must not run concurrent fuse calls. Distinct
// Fusion instances may share one Objective and one Factory freely.
type Fusion struct {
	obj     *Objective
	factory multicut.Factory
	uf      *ufd.UFD
	strides []int
}

// NewFusion constructs a Fusion over obj delegating contracted solves
// to factory.
// Returns ErrNilObjective or ErrNilFactory on missing collaborators.
// Complexity: O(S) memory for the union-find scratch.
func NewFusion(obj *Objective, factory multicut.Factory) (*Fusion, error) {
	if obj == nil {
		return nil, ErrNilObjective
	}
	if factory == nil {
		return nil, ErrNilFactory
	}

	return &Fusion{
		obj:     obj,
		factory: factory,
		uf:      ufd.New(obj.NumVariables()),
		strides: obj.Shape().Strides(),
	}, nil
}

// mergeAgreeing walks every direct grid edge (unit step along each
// axis) and merges the endpoint classes whenever agree reports that
// all candidates keep the pair together. Linear indices of axis
// neighbors follow from the row-major strides, mirroring Evaluate's
// traversal order.
func (f *Fusion) mergeAgreeing(agree func(pIdx, qIdx int) bool) {
	var (
		shape = f.obj.Shape()
		it    = grid.NewIterator(shape)
		pIdx  = 0
	)
	for it.Next() {
		p := it.Coord()
		for d := 0; d < shape.Dims(); d++ {
			if p[d]+1 >= shape.Extent(d) {
				continue
			}
			qIdx := pIdx + f.strides[d]
			if agree(pIdx, qIdx) {
				f.uf.Merge(pIdx, qIdx)
			}
		}
		pIdx++
	}
}

// solveContracted builds the dense contracted graph from the current
// union-find state, projects the lifted objective onto it, solves it
// through the factory and returns:
//
//   - classOf: dense class index per pixel (the “arena of classes”),
//   - classLabels: the solver's labeling of the K classes,
//   - energy: the contracted objective value of classLabels, which by
//     construction equals the original objective restricted to
//     cross-class edges.
//
// Complexity: O(S·(N+D)·D) build plus the solve.
func (f *Fusion) solveContracted() (classOf []int, classLabels []uint64, energy float64, err error) {
	// 1. Dense class arena: representative → [0, K), then per pixel.
	var (
		shape   = f.obj.Shape()
		k       = f.uf.NumberOfClasses()
		toDense = f.uf.DenseRelabeling()
	)
	classOf = make([]int, shape.Size())
	for i := range classOf {
		classOf[i] = toDense[f.uf.Find(i)]
	}

	// 2. Structural edges: every surviving direct grid boundary.
	cc := multicut.NewGraph(k)
	it := grid.NewIterator(shape)
	pIdx := 0
	for it.Next() {
		p := it.Coord()
		for d := 0; d < shape.Dims(); d++ {
			if p[d]+1 >= shape.Extent(d) {
				continue
			}
			qIdx := pIdx + f.strides[d]
			if classOf[pIdx] != classOf[qIdx] {
				if err = cc.InsertEdge(classOf[pIdx], classOf[qIdx]); err != nil {
					return nil, nil, 0, err
				}
			}
		}
		pIdx++
	}

	// 3. Project the lifted objective: sum each pixel-level weight onto
	//    the contracted edge between its endpoint classes. Intra-class
	//    pairs vanish, which is exactly why the contracted optimum can
	//    never lose to an input that respects the same merges.
	var (
		nOffsets = f.obj.NumOffsets()
		q        = make([]int, shape.Dims())
	)
	it.Reset()
	pIdx = 0
	for it.Next() {
		p := it.Coord()
		for oi := 0; oi < nOffsets; oi++ {
			off := f.obj.Offsets().At(oi)
			for d := range q {
				q[d] = p[d] + off[d]
			}
			if !shape.InBounds(q) {
				continue
			}
			qIdx := pIdx + f.obj.deltas[oi]
			if classOf[pIdx] != classOf[qIdx] {
				if err = cc.AddCost(classOf[pIdx], classOf[qIdx], f.obj.Weight(pIdx, oi)); err != nil {
					return nil, nil, 0, err
				}
			}
		}
		pIdx++
	}

	// 4. Solve the contracted problem; solver failures propagate.
	solver, err := f.factory.Create(cc)
	if err != nil {
		return nil, nil, 0, err
	}
	classLabels = make([]uint64, k)
	if err = solver.Optimize(classLabels, nil); err != nil {
		return nil, nil, 0, err
	}
	if energy, err = cc.EvaluateNodeLabeling(classLabels); err != nil {
		return nil, nil, 0, err
	}

	return classOf, classLabels, energy, nil
}

// expand maps the contracted class labeling back onto the grid.
func expand(classOf []int, classLabels []uint64) []uint64 {
	out := make([]uint64, len(classOf))
	for i, c := range classOf {
		out[i] = classLabels[c]
	}

	return out
}

// Fuse combines two candidate labelings. Direct grid neighbors merge
// iff both candidates agree on the pair; the contracted problem is
// solved and its solution accepted only when its cost strictly beats
// min(cost(a), cost(b)). Otherwise the cheaper input is returned
// unchanged, ties broken toward a. The result is always a fresh slice.
//
// Returns ErrLabelingShape before any work on length mismatch; solver
// failures propagate unchanged.
// Complexity: O(S·(N+P)·D) plus the contracted solve.
func (f *Fusion) Fuse(a, b []uint64) ([]uint64, error) {
	if err := f.obj.checkLabeling(a); err != nil {
		return nil, err
	}
	if err := f.obj.checkLabeling(b); err != nil {
		return nil, err
	}

	// 1. Contract everything both candidates keep together.
	f.uf.Reset()
	f.mergeAgreeing(func(p, q int) bool {
		return a[p] == a[q] && b[p] == b[q]
	})

	// 2. Solve the contracted problem.
	classOf, classLabels, energy, err := f.solveContracted()
	if err != nil {
		return nil, err
	}

	// 3. Strict improvement over the best input, else fall back.
	costA, err := f.obj.Evaluate(a)
	if err != nil {
		return nil, err
	}
	costB, err := f.obj.Evaluate(b)
	if err != nil {
		return nil, err
	}
	if energy < min(costA, costB) {
		return expand(classOf, classLabels), nil
	}

	out := make([]uint64, len(a))
	if costA <= costB {
		copy(out, a)
	} else {
		copy(out, b)
	}

	return out, nil
}

// FuseMany generalizes Fuse to any number of proposals: direct grid
// neighbors merge iff every proposal agrees on the pair, and the
// fallback baseline is the cheapest proposal (lowest index on ties),
// found by re-evaluating each proposal from scratch. Zero proposals
// are rejected before any scanning.
//
// Returns ErrNoProposals or ErrProposalShape before any work; solver
// failures propagate unchanged.
// Complexity: O(S·(N·P+D·P)) plus the contracted solve.
func (f *Fusion) FuseMany(proposals [][]uint64) ([]uint64, error) {
	if len(proposals) == 0 {
		return nil, ErrNoProposals
	}
	size := f.obj.NumVariables()
	for i, p := range proposals {
		if len(p) != size {
			return nil, fmt.Errorf("%w: proposal %d has %d elements, grid has %d",
				ErrProposalShape, i, len(p), size)
		}
	}

	// 1. Contract everything all proposals keep together.
	f.uf.Reset()
	f.mergeAgreeing(func(p, q int) bool {
		for _, labels := range proposals {
			if labels[p] != labels[q] {
				return false
			}
		}

		return true
	})

	// 2. Solve the contracted problem.
	classOf, classLabels, energy, err := f.solveContracted()
	if err != nil {
		return nil, err
	}

	// 3. Best-of-inputs baseline: linear rescan of every proposal.
	costs := make([]float64, len(proposals))
	for i, p := range proposals {
		if costs[i], err = f.obj.Evaluate(p); err != nil {
			return nil, err
		}
	}
	best := floats.MinIdx(costs)
	if energy < costs[best] {
		return expand(classOf, classLabels), nil
	}

	out := make([]uint64, size)
	copy(out, proposals[best])

	return out, nil
}
