// Package liftgrid scores and improves segmentations of images and
// volumes with pixel-wise lifted multicut objectives and fusion moves.
//
// 🚀 What is liftgrid?
//
//	A library for combinatorial segmentation energies on regular grids:
//		• Grid primitives: D-dimensional shapes, row-major index math, offset sets
//		• Lifted objectives: per-pixel, per-offset cut costs over long-range neighborhoods
//		• Fusion moves: merge candidate segmentations into one of equal or lower cost
//		• Multicut graphs: dense general graphs with accumulating edge costs
//		• Solvers: a pluggable solver contract + greedy additive edge contraction
//		• Boundary extraction: supervised training masks from ground-truth labels
//
// ✨ Why choose liftgrid?
//
//   - Dimension-generic – one code path serves 2-D images and 3-D volumes alike
//   - Monotone by construction – a fusion move never returns a costlier labeling
//   - Pluggable solving – bring your own multicut solver through a small Factory seam
//   - Pure Go – no cgo, deterministic given identical inputs and solver behavior
//
// Everything is organized under four subpackages:
//
//	grid/     — shapes, offsets, coordinate ↔ linear index mapping, traversal
//	ufd/      — union-find with reset, class counting and dense relabeling
//	multicut/ — general weighted graph, solver contract, greedy reference solver
//	lifted/   — the pixel-wise objective, fusion moves and boundary extraction
//
// Quick ASCII example (2×2 grid, offsets (0,1) and (1,0), unit weights):
//
//	A = 0 0     B = 0 1     fuse(A, B) = 0 0
//	    1 1         0 1                  0 0
//
//	Both inputs cost 2.0; an optimal solve of the contracted problem
//	finds the zero-cost single-segment partition, so the fusion accepts it.
//
// Dive into lifted/ for the core API and multicut/ to plug in a solver.
//
//	go get github.com/katalvlaran/liftgrid
package liftgrid
