package multicut

import (
	"container/heap"

	"github.com/katalvlaran/liftgrid/ufd"
)

// GreedyAdditiveOptions configures the greedy additive edge contraction
// solver.
//
// Fields:
//   - StopBelow — contraction stops once the best aggregated edge cost
//     is ≤ StopBelow. The default of 0 contracts exactly the strictly
//     positive aggregated edges, the standard stopping rule for
//     multicut energies where positive costs reward merging.
type GreedyAdditiveOptions struct {
	StopBelow float64
}

// DefaultGreedyAdditiveOptions returns the standard settings:
// StopBelow = 0.
func DefaultGreedyAdditiveOptions() GreedyAdditiveOptions {
	return GreedyAdditiveOptions{StopBelow: 0}
}

// GreedyAdditiveFactory builds greedy additive edge contraction
// solvers. It is stateless and safe for concurrent use.
type GreedyAdditiveFactory struct {
	opts GreedyAdditiveOptions
}

// NewGreedyAdditiveFactory returns a Factory producing greedy additive
// edge contraction solvers with the given options.
func NewGreedyAdditiveFactory(opts GreedyAdditiveOptions) *GreedyAdditiveFactory {
	return &GreedyAdditiveFactory{opts: opts}
}

// Create binds a new solver instance to g.
// Returns ErrNilGraph if g is nil.
func (f *GreedyAdditiveFactory) Create(g *Graph) (Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &greedyAdditive{g: g, opts: f.opts}, nil
}

// gaecItem is one heap entry: a candidate contraction of the clusters
// rooted at u and v, valid only while both remain roots and the
// aggregated cost between them still equals cost.
type gaecItem struct {
	u, v int
	cost float64
}

// gaecHeap is a max-heap of contraction candidates. Ties on cost are
// broken toward the canonically smaller node pair, keeping the merge
// order deterministic.
type gaecHeap []gaecItem

func (h gaecHeap) Len() int { return len(h) }

func (h gaecHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost > h[j].cost
	}
	if h[i].u != h[j].u {
		return h[i].u < h[j].u
	}

	return h[i].v < h[j].v
}

func (h gaecHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *gaecHeap) Push(x any) { *h = append(*h, x.(gaecItem)) }

func (h *gaecHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// greedyAdditive implements greedy additive edge contraction (GAEC):
// repeatedly contract the cluster pair with the largest aggregated
// cost while that cost exceeds the stopping threshold, summing the
// costs of parallel edges created by each contraction.
//
// Stale heap entries are invalidated lazily: an entry is applied only
// if both endpoints are still cluster roots and the live aggregated
// cost between them matches the entry.
type greedyAdditive struct {
	g    *Graph
	opts GreedyAdditiveOptions
}

// Optimize runs the contraction to completion and writes the resulting
// clustering into labels as dense ids [0, K). The incoming labels are
// a seed by contract; GAEC always starts from singletons, so the seed
// values are ignored.
// Returns ErrLabelingLength if len(labels) != NumNodes().
// Complexity: O(E log E) heap operations. Memory: O(V + E).
func (s *greedyAdditive) Optimize(labels []uint64, obs Observer) error {
	n := s.g.NumNodes()
	if len(labels) != n {
		return ErrLabelingLength
	}

	// 1. Cluster adjacency with aggregated costs, seeded from g.
	//    adj[a][b] is live only while a and b are both roots.
	adj := make([]map[int]float64, n)
	for i := range adj {
		adj[i] = make(map[int]float64)
	}
	// Energy of the all-singleton clustering: every edge is cut.
	energy := 0.0
	edges := s.g.Edges()
	h := make(gaecHeap, 0, len(edges))
	for _, e := range edges {
		adj[e.U][e.V] = e.Cost
		adj[e.V][e.U] = e.Cost
		h = append(h, gaecItem{u: e.U, v: e.V, cost: e.Cost})
		energy += e.Cost
	}
	heap.Init(&h)

	// 2. Contract while the best aggregated cost beats the threshold.
	clusters := ufd.New(n)
	step := 0
	for h.Len() > 0 {
		item := heap.Pop(&h).(gaecItem)

		// Lazy invalidation: skip entries outdated by earlier merges.
		if clusters.Find(item.u) != item.u || clusters.Find(item.v) != item.v {
			continue
		}
		if live, ok := adj[item.u][item.v]; !ok || live != item.cost {
			continue
		}
		if item.cost <= s.opts.StopBelow {
			break
		}

		// 3. Merge the two clusters; r survives as root, o dissolves.
		clusters.Merge(item.u, item.v)
		r := clusters.Find(item.u)
		o := item.u
		if o == r {
			o = item.v
		}
		delete(adj[r], o)
		delete(adj[o], r)

		// 4. Re-aggregate o's neighborhood onto r, pushing refreshed
		//    candidates; old entries die via the liveness check above.
		for nb, c := range adj[o] {
			merged := adj[r][nb] + c
			adj[r][nb] = merged
			adj[nb][r] = merged
			delete(adj[nb], o)
			heap.Push(&h, gaecItem{u: min(r, nb), v: max(r, nb), cost: merged})
		}
		adj[o] = nil

		// The contracted pair is no longer cut.
		energy -= item.cost

		step++
		if obs != nil && !obs.Visit(step, energy) {
			break
		}
	}

	// 5. Emit the clustering as dense labels.
	toDense := clusters.DenseRelabeling()
	for i := range labels {
		labels[i] = uint64(toDense[clusters.Find(i)])
	}

	return nil
}
