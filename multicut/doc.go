// Package multicut provides a general weighted graph for multicut
// objectives, the solver contract used to optimize them, and a greedy
// additive edge contraction reference solver.
//
// What:
//
//   - Graph is an undirected graph over dense node ids [0, n) whose
//     edges carry an aggregated cost: repeated AddCost calls for one
//     node pair accumulate. EvaluateNodeLabeling scores a labeling as
//     the total cost of edges whose endpoints carry different labels.
//   - Solver and Factory form the seam to external combinatorial
//     solvers: a Factory builds one Solver per problem instance, and
//     Optimize runs to completion, mutating the node labeling in
//     place. An optional Observer receives progress and may request an
//     early stop; a nil Observer is a safe no-op path.
//   - GreedyAdditiveFactory produces the reference solver: greedy
//     additive edge contraction, which repeatedly contracts the edge
//     with the largest positive aggregated cost until none remains.
//
// Why:
//
//   - Lifted objectives over pixel grids are projected onto such
//     graphs, both in full form (every pixel a node) and in contracted
//     form (every agreement class a node); one graph type serves both.
//   - The Factory seam keeps the combinatorial solve replaceable:
//     plug in an exact or specialized heuristic solver unchanged.
//
// Complexity:
//
//   - AddCost / InsertEdge / Cost: O(1) expected.
//   - EvaluateNodeLabeling: O(E).
//   - Greedy additive edge contraction: O(E log E) pushes with lazy
//     invalidation; memory O(V + E).
//
// Errors:
//
//   - ErrNilGraph: a Factory was handed a nil graph.
//   - ErrNodeRange: an edge endpoint lies outside [0, n).
//   - ErrLabelingLength: a node labeling's length differs from n.
package multicut
