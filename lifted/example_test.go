package lifted_test

import (
	"fmt"

	"github.com/katalvlaran/liftgrid/grid"
	"github.com/katalvlaran/liftgrid/lifted"
	"github.com/katalvlaran/liftgrid/multicut"
)

// ExampleFusion_Fuse fuses a row split with a column split of a 2×2
// grid under unit cut costs. The two proposals agree on no adjacent
// pixel pair, so the contracted problem is the full problem — and its
// optimum, the single-segment partition, cuts nothing.
func ExampleFusion_Fuse() {
	shape, _ := grid.NewShape(2, 2)
	offsets, _ := grid.NewOffsets([][]int{{0, 1}, {1, 0}})
	weights := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	obj, _ := lifted.NewObjective(shape, offsets, weights)
	factory := multicut.NewGreedyAdditiveFactory(multicut.DefaultGreedyAdditiveOptions())
	fusion, _ := lifted.NewFusion(obj, factory)

	a := []uint64{0, 0, 1, 1} // rows
	b := []uint64{0, 1, 0, 1} // columns

	costA, _ := obj.Evaluate(a)
	costB, _ := obj.Evaluate(b)

	fused, _ := fusion.Fuse(a, b)
	fusedCost, _ := obj.Evaluate(fused)

	fmt.Println("cost(rows):", costA)
	fmt.Println("cost(columns):", costB)
	fmt.Println("cost(fused):", fusedCost)
	// Output:
	// cost(rows): 2
	// cost(columns): 2
	// cost(fused): 0
}

// ExampleExtractBoundaries marks which offset edges of a ground-truth
// labeling cross a label boundary.
func ExampleExtractBoundaries() {
	shape, _ := grid.NewShape(2, 2)
	offsets, _ := grid.NewOffsets([][]int{{1, 0}})
	gt := []uint64{0, 0, 1, 1} // rows

	mask, _ := lifted.ExtractBoundaries(shape, offsets, gt)
	fmt.Println(mask)
	// Output:
	// [true true false false]
}
