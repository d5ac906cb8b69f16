package diff

import (
	"github.com/katalvlaran/lexidiff/termgraph"
)

// Run executes one differentiation run of seedA against seedB under the
// given policy, applying any number of functional Options.
//
// The run seeds E[0,A]={seedA:1} and E[0,B]={seedB:1}, then alternates
// one-level expansion with a full-history policy sweep until some
// uncanceled set empties (StatusTerminated) or the level cap is reached
// (StatusExhausted, with Diagnostic and no Forest).
//
// Returns ErrGraphNil, ErrEmptySeed, ErrUnknownPolicy or
// ErrOptionViolation for invalid input; a completed run never fails.
func Run(g *termgraph.Graph, seedA, seedB string, policy Policy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !policy.valid() {
		return nil, ErrUnknownPolicy
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	a, b := termgraph.Normalize(seedA), termgraph.Normalize(seedB)
	if a == "" || b == "" {
		return nil, ErrEmptySeed
	}

	r := &runner{graph: g, policy: policy, forest: newForest(a, b)}

	// Level 0: one copy of each seed on its own side.
	ea := termgraph.NewMultiset()
	ea.Add(a, 1)
	eb := termgraph.NewMultiset()
	eb.Add(b, 1)
	r.hist.push(newLevelState(ea, eb))
	r.hist.sweep(policy)
	if r.hist.anyEmpty() {
		return r.terminated(0), nil
	}

	for level := 1; level <= o.maxLevel; level++ {
		r.advance(level)
		r.hist.sweep(policy)
		if r.hist.anyEmpty() {
			return r.terminated(level), nil
		}
	}

	return r.exhausted(o.maxLevel), nil
}

// runner bundles the mutable state of one run. It lives only for the
// duration of the Run call and shares nothing between runs.
type runner struct {
	graph  *termgraph.Graph
	policy Policy
	hist   history
	forest *Forest
}

// advance expands both sides one level and records first-producer-wins
// provenance parents in first-produced order.
func (r *runner) advance(level int) {
	prev := r.hist.levels[level-1]
	var next [2]*termgraph.Multiset
	for s := 0; s < 2; s++ {
		side := Side(s)
		next[s] = r.graph.ExpandMultisetFunc(prev.e[s], func(src, produced string) {
			r.forest.record(
				Node{Level: level, Side: side, Term: produced},
				Node{Level: level - 1, Side: side, Term: src},
			)
		})
	}
	r.hist.push(newLevelState(next[SideA], next[SideB]))
}

func (r *runner) terminated(level int) *Result {
	return &Result{
		Policy: r.policy,
		Status: StatusTerminated,
		Level:  level,
		Score:  r.hist.score(),
		Forest: r.forest,
	}
}

func (r *runner) exhausted(cap int) *Result {
	return &Result{
		Policy:     r.policy,
		Status:     StatusExhausted,
		Level:      cap,
		Score:      r.hist.score(),
		Diagnostic: r.hist.diagnostic(),
	}
}
