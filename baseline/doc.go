// Package baseline provides the graph shortest-path baseline that
// differentiation scores are compared against: unweighted breadth-first
// distance between two terms, following definition edges.
//
// What
//
//   - Search explores terms in non-decreasing hop distance from a start
//     term, following term → definition-token edges, and returns visit
//     order, per-term depth and parent links.
//   - Distance reconstructs the fewest-hop definition path between two
//     terms, or reports that none exists.
//
// Determinism
//
//	Definition tokens are stored in definition order and the queue is
//	FIFO, so visit order, depths and parents are fully reproducible.
//
// Complexity (T = reachable terms, D = definition length)
//
//   - Time:   O(Σ D) over reached terms
//   - Memory: O(T)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrEmptyTerm       if a term normalizes to the empty string.
//   - ErrNoPath          if the target is unreachable from the start.
//   - ErrOptionViolation if an invalid Option is supplied.
package baseline
