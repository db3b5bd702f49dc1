// Package lifted implements pixel-wise lifted multicut objectives over
// regular grids, fusion moves that combine candidate segmentations,
// and boundary extraction for supervised training weights.
//
// What:
//
//   - Objective holds one cut cost per (pixel, offset) pair, where the
//     offsets may reach far beyond the direct grid neighborhood
//     (“lifted” edges). Evaluate scores any labeling; Optimize
//     materializes the full pixel graph and delegates to a
//     multicut.Factory.
//   - Fusion merges two or more candidate labelings: pixels on which
//     every candidate agrees are contracted away, the objective is
//     projected onto the much smaller class graph, the contracted
//     problem is solved, and the result is accepted only on strict
//     improvement over the best input. A fusion move therefore never
//     returns a labeling costlier than its best input.
//   - ExtractBoundaries marks, per (pixel, offset), whether the
//     ground-truth labels across that edge differ.
//   - ConnectedComponents splits a labeling into spatially connected
//     regions over direct grid adjacency.
//
// Why:
//
//   - Solving the full pixel-level lifted multicut is intractable;
//     fusing proposals over the contracted graph is the standard
//     monotone local-search step in large-scale segmentation.
//
// Complexity (S = grid size, N = offset count, D = dimensions):
//
//   - Evaluate / ExtractBoundaries: O(S·N·D).
//   - Fuse / FuseMany: O(S·(N+P)·D) build plus the contracted solve,
//     P = number of proposals.
//   - Optimize: O(S·N·D) build plus the full solve.
//
// Errors:
//
//   - ErrNilObjective, ErrNilFactory: missing collaborators.
//   - ErrWeightsShape: weight count ≠ grid size × offset count.
//   - ErrLabelingShape: labeling length ≠ grid size.
//   - ErrNoProposals: FuseMany called with zero proposals.
//   - ErrProposalShape: a proposal's length ≠ grid size.
//
// Out-of-range offset partners are never errors: they contribute zero
// cost and no edge, uniformly across every operation.
//
// Concurrency: an Objective is read-only after construction and may be
// shared freely; it must outlive every Fusion referencing it. A Fusion
// owns mutable scratch state and must not run concurrent fuse calls.
package lifted
