// Package paths reconstructs provenance paths from the forest of a cleanly
// terminated differentiation run.
//
// What
//
//   - Inner: the provenance chain of one produced word — parent links
//     walked from the word back to its seed, returned in root-to-node
//     order. Every side-A chain starts at the run's first seed, every
//     side-B chain at the second.
//   - Outer: the bridge paths joining the two seeds. For every pair of one
//     side-A node and one side-B node whose inner chains share at least one
//     term, each distinct shared term yields its own fused path:
//
//	seqA[0..=i] ++ reverse(seqB[0..j])
//
//     where i and j are the first indexes of the shared term in the A and B
//     chains. B's prefix stops before the shared term, so the fused path
//     runs seedA → … → shared → … → seedB. Exact duplicates across all
//     pairs are removed.
//
// Determinism
//
//	Node pairs enumerate in forest insertion order, shared terms in
//	side-A chain order, and deduplication keeps the first occurrence, so
//	the result sequence is reproducible for a given forest.
//
// Complexity (N = forest nodes, L = max level)
//
//   - Inner: O(L)
//   - Outer: O(N_A · N_B · L) pairwise chain comparison; forests come from
//     terminated runs, whose level caps are small in practice
//
// Errors
//
//   - ErrForestNil   if the forest pointer is nil.
//   - ErrUnknownNode if the node was never recorded in the forest.
package paths
