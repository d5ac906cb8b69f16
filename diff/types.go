// Package diff defines options, statuses and error sentinels for
// differentiation runs.
package diff

import (
	"errors"
	"fmt"
)

// DefaultMaxLevel is the safety ceiling applied when no explicit cap is
// given. Normal operation overrides it with the level Great discovers.
const DefaultMaxLevel = 10000

// Sentinel errors for run construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("diff: graph is nil")

	// ErrEmptySeed is returned when a seed normalizes to the empty string.
	ErrEmptySeed = errors.New("diff: empty seed term")

	// ErrUnknownPolicy is returned for a Policy value out of range.
	ErrUnknownPolicy = errors.New("diff: unknown policy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("diff: invalid option supplied")
)

// Side identifies which of the two seeds a level multiset belongs to.
type Side int

const (
	// SideA is the side rooted at the first seed.
	SideA Side = iota

	// SideB is the side rooted at the second seed.
	SideB
)

// String returns "A" or "B".
func (s Side) String() string {
	if s == SideA {
		return "A"
	}

	return "B"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideA {
		return SideB
	}

	return SideA
}

// Policy selects the cancellation semantics of a Run.
//
//   - Weak   — a word cancels once its cumulative count over all levels and
//     both sides exceeds one: any repetition anywhere cancels.
//   - Strong — a word on one side cancels only if the opposite side ever
//     produced it; same-side repetition never cancels.
type Policy int

const (
	// Weak cancels on any global repetition.
	Weak Policy = iota

	// Strong cancels on cross-side overlap only.
	Strong
)

// String returns "weak" or "strong".
func (p Policy) String() string {
	switch p {
	case Weak:
		return "weak"
	case Strong:
		return "strong"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// valid reports whether p is a known policy.
func (p Policy) valid() bool { return p == Weak || p == Strong }

// Status is the terminal state of a Run.
type Status int

const (
	// StatusTerminated means some uncanceled set emptied at Result.Level.
	StatusTerminated Status = iota

	// StatusExhausted means the level cap was reached with every tracked
	// uncanceled set still non-empty.
	StatusExhausted
)

// String returns "terminated" or "exhausted".
func (st Status) String() string {
	if st == StatusTerminated {
		return "terminated"
	}

	return "exhausted"
}

// Diagnostic identifies, for an exhausted run, the level with the fewest
// uncancelled terms — the closest the run came to terminating.
type Diagnostic struct {
	// Level is the level in [1, cap] minimizing |U[level,A]| + |U[level,B]|
	// (ties resolved to the lowest level). With a zero cap it is 0.
	Level int

	// Remaining is that minimal count of distinct uncancelled terms.
	Remaining int
}

// Result is the outcome of a differentiation Run.
type Result struct {
	// Policy the run was executed under.
	Policy Policy

	// Status distinguishes clean termination from cap exhaustion.
	Status Status

	// Level is the termination level, or the cap when exhausted.
	Level int

	// Score is Σ level·count over every cancelled (level, side, term).
	// Non-negative and deterministic for fixed inputs.
	Score int

	// Diagnostic is non-nil only when Status == StatusExhausted.
	Diagnostic *Diagnostic

	// Forest is the provenance forest, non-nil only on clean termination;
	// path reconstruction on an incomplete run would be meaningless.
	Forest *Forest
}

// GreatResult is the outcome of a Great (merged-vocabulary) run.
type GreatResult struct {
	// Level is the first level whose expansion produced no surviving new
	// words, or the cap if none did.
	Level int

	// Trace holds one human-readable line per level, for audit only.
	Trace []string
}

// Option configures a run via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation on invocation.
type Option func(*runOptions)

type runOptions struct {
	maxLevel int
	err      error
}

func defaultOptions() runOptions {
	return runOptions{maxLevel: DefaultMaxLevel}
}

// WithMaxLevel caps the number of expansion levels.
//
//	n >= 0: run levels 0..n
//	n < 0:  invalid option → ErrOptionViolation
//
// Zero is legal: only level 0 is evaluated (identical seeds terminate
// there; anything else exhausts).
func WithMaxLevel(n int) Option {
	return func(o *runOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLevel cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxLevel = n
	}
}
