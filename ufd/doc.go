// Package ufd implements a union-find (disjoint-set) structure over a
// fixed element range [0, n), tuned for repeated contraction passes.
//
// What:
//
//   - UFD tracks a partition of n elements into disjoint classes with
//     Find (path compression) and Merge (union by rank).
//   - Reset returns every element to its own singleton class without
//     reallocating, so one instance serves many contraction rounds.
//   - NumberOfClasses is maintained incrementally; DenseRelabeling
//     produces a bijection from class representatives to [0, K).
//
// Why:
//
//   - Fusion moves: contract grid pixels that agree across candidate
//     segmentations, then index compact per-class storage densely.
//   - Connected components: merge equal-label neighbors, then read
//     component ids straight from the dense relabeling.
//
// Complexity:
//
//   - Find / Merge: amortized near-O(1) (inverse Ackermann).
//   - Reset / DenseRelabeling: O(n).
//
// A UFD is exclusive mutable state: it must not be shared across
// concurrent users.
package ufd
