package lifted_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/liftgrid/grid"
	"github.com/katalvlaran/liftgrid/lifted"
	"github.com/katalvlaran/liftgrid/multicut"
)

// benchObjective builds a 64×64 objective with four offsets (two
// direct, two long-range) and deterministic random signed weights.
func benchObjective(b *testing.B) (*lifted.Objective, grid.Shape) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))

	shape, err := grid.NewShape(64, 64)
	if err != nil {
		b.Fatalf("setup NewShape failed: %v", err)
	}
	offs, err := grid.NewOffsets([][]int{{0, 1}, {1, 0}, {0, 4}, {4, 0}})
	if err != nil {
		b.Fatalf("setup NewOffsets failed: %v", err)
	}
	weights := make([]float64, shape.Size()*offs.Len())
	for i := range weights {
		weights[i] = rng.Float64()*2 - 1
	}
	obj, err := lifted.NewObjective(shape, offs, weights)
	if err != nil {
		b.Fatalf("setup NewObjective failed: %v", err)
	}

	return obj, shape
}

// BenchmarkObjectiveEvaluate measures a full labeling evaluation on a
// 64×64 grid with four offsets.
// Complexity: O(S·N·D)
func BenchmarkObjectiveEvaluate(b *testing.B) {
	obj, shape := benchObjective(b)
	rng := rand.New(rand.NewSource(1))
	labels := make([]uint64, shape.Size())
	for i := range labels {
		labels[i] = rng.Uint64() % 8
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := obj.Evaluate(labels); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}

// BenchmarkFuse measures a pairwise fusion move on a 64×64 grid,
// including contraction, projection and the greedy contracted solve.
func BenchmarkFuse(b *testing.B) {
	obj, shape := benchObjective(b)
	factory := multicut.NewGreedyAdditiveFactory(multicut.DefaultGreedyAdditiveOptions())
	fusion, err := lifted.NewFusion(obj, factory)
	if err != nil {
		b.Fatalf("setup NewFusion failed: %v", err)
	}

	rng := rand.New(rand.NewSource(2))
	labelsA := make([]uint64, shape.Size())
	labelsB := make([]uint64, shape.Size())
	for i := range labelsA {
		labelsA[i] = rng.Uint64() % 4
		labelsB[i] = rng.Uint64() % 4
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = fusion.Fuse(labelsA, labelsB); err != nil {
			b.Fatalf("Fuse failed: %v", err)
		}
	}
}

// BenchmarkExtractBoundaries measures boundary extraction on the same
// 64×64 configuration.
func BenchmarkExtractBoundaries(b *testing.B) {
	obj, shape := benchObjective(b)
	rng := rand.New(rand.NewSource(3))
	gt := make([]uint64, shape.Size())
	for i := range gt {
		gt[i] = rng.Uint64() % 8
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lifted.ExtractBoundaries(shape, obj.Offsets(), gt); err != nil {
			b.Fatalf("ExtractBoundaries failed: %v", err)
		}
	}
}
