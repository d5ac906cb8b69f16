// Package diff implements the differentiation engine: repeated expansion of
// two seed terms through a definition graph, with cancellation of repeated
// words under three increasingly selective policies.
//
// What
//
//   - Great (GD): a single merged-vocabulary run over both seeds. Every word
//     ever produced lives in one shared uncanceled/repeated partition; the
//     run stops at the first level whose expansion yields no surviving new
//     words. Its termination level is the natural cap for the per-side runs.
//   - Run with Weak policy (WD): per-side level expansion where a word
//     cancels as soon as its cumulative count across *all* levels and *both*
//     sides exceeds one — any repetition anywhere cancels.
//   - Run with Strong policy (SD): per-side level expansion where a word on
//     one side cancels only if the opposite side ever produced it —
//     same-side repetition never cancels.
//
// Both Run policies are recomputed from the full level history at every
// level: a word may retroactively cancel in an earlier level once a later
// level satisfies the global condition. A run terminates the moment any
// tracked uncanceled set U[level,side] becomes empty, and scores every
// cancelled word by the level it was produced at:
//
//	score = Σ over (level, side, term) in R of level · count
//
// Provenance
//
//	During expansion each produced word records its first producer as its
//	parent ("first producer wins", ties broken by the stable first-produced
//	order of the expansion — never map hash order). The resulting Forest,
//	one tree per side rooted at its seed, is returned on clean termination
//	and feeds the paths package. Exhausted runs return no forest.
//
// Termination
//
//	Every run is bounded by its level cap (WithMaxLevel, default
//	DefaultMaxLevel). A run that reaches the cap without any U emptying
//	reports StatusExhausted together with a Diagnostic naming the level
//	with the fewest uncancelled terms — never an error, never an unbounded
//	loop.
//
// Determinism
//
//	For fixed (seedA, seedB, graph, cap, policy) the Score, Status, Level
//	and Forest are bit-identical across runs. All iteration is first-seen
//	order via termgraph.Multiset.
//
// Concurrency
//
//	Runs are pure functions of their inputs against a read-only graph; any
//	number may execute concurrently over the same Graph.
//
// Complexity (L = levels, W = distinct words per level)
//
//   - Expansion:     O(Σ definition lengths) per level
//   - Policy sweep:  O(L·W) per level (full-history recompute), O(L²·W)
//     per run — acceptable because observed caps are small
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrEmptySeed       if a seed normalizes to the empty string.
//   - ErrUnknownPolicy   if the Policy value is out of range.
//   - ErrOptionViolation if an invalid Option is supplied (e.g. negative cap).
package diff
