// Package batch evaluates many seed pairs against one shared, read-only
// definition graph on a fixed-size worker pool.
//
// Each pair is evaluated independently: Great discovers the level cap,
// Weak and Strong runs consume it, and the unweighted shortest-path
// baseline distance is computed alongside for comparison. Runs are pure
// CPU-bound functions with no shared mutable state, so the pool is the
// only coordination needed; the worker count bounds in-flight evaluations.
//
// Outcomes are returned in input order regardless of completion order, so
// batch output is as reproducible as the single-pair engine. Per-pair
// failures (e.g. a blank seed) are carried in Outcome.Err rather than
// aborting the batch; only invalid arguments or context cancellation fail
// Evaluate itself.
//
// Progress logs go to an optional slog.Logger; counters and run durations
// register with an optional Prometheus registerer. Both default to off.
package batch
