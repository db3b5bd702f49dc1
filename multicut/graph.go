package multicut

import "sort"

// edgeKey stores an undirected edge once, under its canonical
// (smaller, larger) endpoint order.
type edgeKey struct {
	u, v int
}

func canonical(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}

	return edgeKey{u: u, v: v}
}

// Edge is one undirected edge with its aggregated cost.
type Edge struct {
	U, V int
	Cost float64
}

// Graph is an undirected general graph over dense node ids [0, n)
// whose edges carry an aggregated scalar cost. Parallel edges are
// collapsed: repeated AddCost calls for one node pair accumulate into
// a single edge. Self-loops are ignored, matching a partition
// objective in which a node is always in its own class.
//
// Graph is not safe for concurrent mutation; a fully built Graph is
// safe for concurrent reads.
type Graph struct {
	numNodes int
	costs    map[edgeKey]float64
}

// NewGraph constructs an empty Graph with numNodes nodes.
// Complexity: O(1).
func NewGraph(numNodes int) *Graph {
	return &Graph{
		numNodes: numNodes,
		costs:    make(map[edgeKey]float64),
	}
}

// NumNodes returns the node count fixed at construction.
// Complexity: O(1).
func (g *Graph) NumNodes() int { return g.numNodes }

// NumEdges returns the number of distinct node pairs carrying an edge.
// Complexity: O(1).
func (g *Graph) NumEdges() int { return len(g.costs) }

// checkNodes validates that both endpoints lie in [0, numNodes).
func (g *Graph) checkNodes(u, v int) error {
	if u < 0 || u >= g.numNodes || v < 0 || v >= g.numNodes {
		return ErrNodeRange
	}

	return nil
}

// InsertEdge ensures an edge between u and v exists, with zero cost if
// it is new. Idempotent; self-loops are ignored.
// Returns ErrNodeRange if an endpoint is out of range.
// Complexity: O(1) expected.
func (g *Graph) InsertEdge(u, v int) error {
	if err := g.checkNodes(u, v); err != nil {
		return err
	}
	if u == v {
		return nil
	}
	key := canonical(u, v)
	if _, ok := g.costs[key]; !ok {
		g.costs[key] = 0
	}

	return nil
}

// AddCost accumulates cost onto the edge between u and v, inserting the
// edge if absent. Repeated calls for the same pair sum their costs.
// Self-loops are ignored.
// Returns ErrNodeRange if an endpoint is out of range.
// Complexity: O(1) expected.
func (g *Graph) AddCost(u, v int, cost float64) error {
	if err := g.checkNodes(u, v); err != nil {
		return err
	}
	if u == v {
		return nil
	}
	g.costs[canonical(u, v)] += cost

	return nil
}

// Cost returns the aggregated cost of the edge between u and v and
// whether such an edge exists.
// Complexity: O(1) expected.
func (g *Graph) Cost(u, v int) (float64, bool) {
	c, ok := g.costs[canonical(u, v)]

	return c, ok
}

// Edges returns all edges in canonical order: ascending by smaller
// endpoint, then by larger endpoint. Deterministic for a given build
// history.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.costs))
	for key, c := range g.costs {
		out = append(out, Edge{U: key.u, V: key.v, Cost: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// EvaluateNodeLabeling returns the total cost of all edges whose
// endpoints carry different labels.
// Returns ErrLabelingLength if len(labels) != NumNodes().
// Complexity: O(E).
func (g *Graph) EvaluateNodeLabeling(labels []uint64) (float64, error) {
	if len(labels) != g.numNodes {
		return 0, ErrLabelingLength
	}
	total := 0.0
	for key, c := range g.costs {
		if labels[key.u] != labels[key.v] {
			total += c
		}
	}

	return total, nil
}
