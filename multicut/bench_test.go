package multicut_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/liftgrid/multicut"
)

// BenchmarkGreedyAdditive measures greedy additive edge contraction on
// a random graph with 2,000 nodes and ~10,000 signed edges.
// Complexity: O(E log E)
func BenchmarkGreedyAdditive(b *testing.B) {
	const (
		nodes = 2000
		edges = 10000
	)
	rng := rand.New(rand.NewSource(42))
	g := multicut.NewGraph(nodes)
	for i := 0; i < edges; i++ {
		u := rng.Intn(nodes)
		v := rng.Intn(nodes)
		if err := g.AddCost(u, v, rng.Float64()*2-1); err != nil {
			b.Fatalf("setup AddCost failed: %v", err)
		}
	}
	factory := multicut.NewGreedyAdditiveFactory(multicut.DefaultGreedyAdditiveOptions())
	labels := make([]uint64, nodes)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		solver, err := factory.Create(g)
		if err != nil {
			b.Fatalf("Create failed: %v", err)
		}
		if err = solver.Optimize(labels, nil); err != nil {
			b.Fatalf("Optimize failed: %v", err)
		}
	}
}
