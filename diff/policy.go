package diff

import "github.com/katalvlaran/lexidiff/termgraph"

// levelState holds the three per-side multisets of one level:
// E (everything expanded), U (not yet cancelled), R (cancelled and scored).
// U ∪ R always repartitions E; U only shrinks, R only grows.
type levelState struct {
	e [2]*termgraph.Multiset
	u [2]*termgraph.Multiset
	r [2]*termgraph.Multiset
}

func newLevelState(ea, eb *termgraph.Multiset) *levelState {
	return &levelState{
		e: [2]*termgraph.Multiset{ea, eb},
		u: [2]*termgraph.Multiset{ea.Clone(), eb.Clone()},
		r: [2]*termgraph.Multiset{termgraph.NewMultiset(), termgraph.NewMultiset()},
	}
}

// history is the full level record of a run. Policy sweeps recompute their
// cancellation condition from the entire history every level, because a
// word may retroactively cancel in an earlier level once a later level
// satisfies the global condition.
type history struct {
	levels []*levelState
}

func (h *history) push(ls *levelState) { h.levels = append(h.levels, ls) }

// sweep applies the policy's cancellation condition to every uncanceled
// set in the history. Policy validity is checked at run entry.
func (h *history) sweep(p Policy) {
	if p == Weak {
		h.sweepWeak()
		return
	}
	h.sweepStrong()
}

// sweepWeak cancels any word whose cumulative count over all levels and
// both sides exceeds one.
func (h *history) sweepWeak() {
	global := make(map[string]int)
	for _, ls := range h.levels {
		for s := 0; s < 2; s++ {
			for _, t := range ls.e[s].Terms() {
				global[t] += ls.e[s].Count(t)
			}
		}
	}
	for _, ls := range h.levels {
		for s := 0; s < 2; s++ {
			for _, t := range ls.u[s].Terms() {
				if global[t] > 1 {
					ls.r[s].Add(t, ls.u[s].RemoveAll(t))
				}
			}
		}
	}
}

// sweepStrong cancels a word on one side only if the opposite side ever
// produced it. Same-side repetition never cancels under this policy.
func (h *history) sweepStrong() {
	// opposite[s] accumulates everything the side facing s produced.
	var opposite [2]map[string]int
	opposite[SideA] = make(map[string]int)
	opposite[SideB] = make(map[string]int)
	for _, ls := range h.levels {
		for s := 0; s < 2; s++ {
			opp := Side(s).Opposite()
			for _, t := range ls.e[s].Terms() {
				opposite[opp][t] += ls.e[s].Count(t)
			}
		}
	}
	for _, ls := range h.levels {
		for s := 0; s < 2; s++ {
			for _, t := range ls.u[s].Terms() {
				if opposite[s][t] > 0 {
					ls.r[s].Add(t, ls.u[s].RemoveAll(t))
				}
			}
		}
	}
}

// anyEmpty reports whether any tracked uncanceled set has emptied — the
// run's termination condition.
func (h *history) anyEmpty() bool {
	for _, ls := range h.levels {
		for s := 0; s < 2; s++ {
			if ls.u[s].Empty() {
				return true
			}
		}
	}

	return false
}

// score sums level·count over every cancelled entry.
func (h *history) score() int {
	total := 0
	for level, ls := range h.levels {
		for s := 0; s < 2; s++ {
			total += level * ls.r[s].Total()
		}
	}

	return total
}

// diagnostic locates the level in [1, cap] with the fewest distinct
// uncancelled terms, ties resolved to the lowest level. With a zero cap
// only level 0 exists and is reported as-is.
func (h *history) diagnostic() *Diagnostic {
	best := Diagnostic{Level: 0, Remaining: h.levels[0].u[SideA].Len() + h.levels[0].u[SideB].Len()}
	for level := 1; level < len(h.levels); level++ {
		ls := h.levels[level]
		if n := ls.u[SideA].Len() + ls.u[SideB].Len(); level == 1 || n < best.Remaining {
			best = Diagnostic{Level: level, Remaining: n}
		}
	}

	return &best
}
