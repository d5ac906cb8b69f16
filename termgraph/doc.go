// Package termgraph provides the definition graph and the ordered multiset
// that every differentiation run is built on.
//
// What
//
//   - Normalize: canonical term form (lower-cased, trimmed); idempotent.
//   - Graph: immutable-after-build mapping Term → ordered definition tokens.
//   - Expand: one term → its definition tokens, with a self-loop fallback
//     ([term]) for unknown or empty definitions, so expansion never stalls
//     on missing vocabulary.
//   - Multiset: Term → count with a stable first-seen insertion order, plus
//     ExpandMultiset, the count-preserving one-level expansion step.
//
// Why
//
//	Differentiation runs classify every produced word and assign it a
//	provenance parent under "first producer wins" semantics. Both decisions
//	are order-sensitive: if iteration followed Go's randomized map order,
//	provenance forests (and therefore reconstructed paths) would differ
//	between runs even though scores would not. Multiset makes the iteration
//	order an explicit part of the data structure — the order terms were
//	first added — so every downstream result is reproducible.
//
// Determinism
//
//	Graph.Terms, Multiset.Terms and ExpandMultiset all iterate in
//	first-seen order. No exported operation of this package observes map
//	hash order.
//
// Concurrency
//
//	Build the Graph fully, then share it: all read operations (Has,
//	Definition, Expand, ExpandMultiset) are safe for concurrent use once no
//	more Define calls are made. Multiset is not safe for concurrent
//	mutation; runs keep their multisets private.
//
// Complexity (T = terms, D = definition length, N = distinct multiset terms)
//
//   - Define / Expand / Count:  O(1) amortized (plus O(D) token copy)
//   - ExpandMultiset:           O(Σ D) over the source terms
//   - Clone / Terms:            O(N)
//
// Errors
//
//   - ErrEmptyTerm      if a term normalizes to the empty string.
//   - ErrDuplicateTerm  if a term is defined twice.
//   - Negative multiset counts are an implementation defect and panic.
package termgraph
