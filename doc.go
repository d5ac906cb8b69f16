// Package lexidiff is a deterministic engine for comparing two vocabulary
// terms by repeated expansion through a term→definition graph, tracking
// which produced words cancel against each other under three increasingly
// selective cancellation policies.
//
// 🚀 What is lexidiff?
//
//	A level-indexed fixed-point computation over a definition graph:
//		• termgraph/ — the definition graph, term normalization, and the
//		  ordered multiset that drives one-level expansion
//		• diff/      — the three differentiation modes: Great (merged
//		  vocabulary, discovers the level cap), Weak (any repetition
//		  cancels) and Strong (only cross-side repetition cancels)
//		• paths/     — provenance-path reconstruction: inner chains from a
//		  seed to a produced word, and outer bridges joining the two seeds
//		  through a shared intermediate
//		• baseline/  — unweighted shortest-path distance between two terms,
//		  for comparison against differentiation scores
//		• loader/    — plain-text and YAML definition-graph loading
//		• batch/     — worker-pool evaluation of many seed pairs against a
//		  shared read-only graph
//
// ✨ Why choose lexidiff?
//
//   - Reproducible by construction – every iteration order is an explicit
//     first-seen order, never a map hash order; scores, statuses and
//     provenance forests are bit-identical across runs
//   - Pure algorithm core – runs mutate nothing outside their own state;
//     a single graph serves any number of concurrent runs
//   - Honest termination – a run either terminates at a level or reports
//     Exhausted with a diagnostic, it never spins past its cap
//
// Quick sketch (seeds "money" and "business"):
//
//	money    → business debt
//	business → money trade
//
//	Great differentiation merges both vocabularies and finds the level at
//	which expansion stops producing anything new; Weak and Strong then
//	replay the expansion per side under that cap and score every cancelled
//	word by the level it was cancelled at.
//
// See each subpackage's doc.go for algorithms, complexity and error
// contracts.
//
//	go get github.com/katalvlaran/lexidiff
package lexidiff
