package diff

import (
	"fmt"

	"github.com/katalvlaran/lexidiff/termgraph"
)

// Great runs the merged-vocabulary differentiation of seedA against seedB:
// both seeds share one uncanceled/repeated partition with no side
// distinction. Each level expands the words that newly survived the
// previous level; a produced word that was ever seen before (or repeats
// within the level's fresh batch) moves to the repeated set, anything else
// joins the uncanceled set.
//
// The run stops at the first level whose expansion leaves no surviving new
// words — identical seeds collapse at level 0, a valid degenerate
// termination — or at the cap. The returned Level is the conventional cap
// for subsequent Weak/Strong runs over the same pair; Trace is diagnostic
// text only.
//
// Returns ErrGraphNil, ErrEmptySeed or ErrOptionViolation for invalid input.
func Great(g *termgraph.Graph, seedA, seedB string, opts ...Option) (*GreatResult, error) {
	if g == nil {
		return nil, ErrGraphNil
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

	gd := &greatRun{
		graph:      g,
		repeated:   make(map[string]bool),
		uncanceled: make(map[string]bool),
	}

	// Level 0: insert seedA, then seedB.
	gd.insert(a)
	gd.insert(b)
	fresh := gd.closeLevel(0, 2)
	if len(fresh) == 0 {
		return &GreatResult{Level: 0, Trace: gd.trace}, nil
	}

	for level := 1; level <= o.maxLevel; level++ {
		produced := 0
		for _, t := range fresh {
			for _, tok := range gd.graph.Expand(t) {
				gd.insert(tok)
				produced++
			}
		}
		fresh = gd.closeLevel(level, produced)
		if len(fresh) == 0 {
			return &GreatResult{Level: level, Trace: gd.trace}, nil
		}
	}

	gd.trace = append(gd.trace, fmt.Sprintf("level cap %d reached without fixed point", o.maxLevel))

	return &GreatResult{Level: o.maxLevel, Trace: gd.trace}, nil
}

// greatRun is the mutable state of one Great run.
type greatRun struct {
	graph      *termgraph.Graph
	repeated   map[string]bool
	uncanceled map[string]bool
	batch      []string // words first added to uncanceled during the open level
	trace      []string
}

// insert classifies one produced word: anything seen before (repeated,
// still uncanceled, or earlier in this level's fresh batch) moves to the
// repeated set; a genuinely new word joins the uncanceled set and the
// level's fresh batch.
func (gd *greatRun) insert(w string) {
	if gd.repeated[w] || gd.uncanceled[w] {
		delete(gd.uncanceled, w)
		gd.repeated[w] = true

		return
	}
	gd.uncanceled[w] = true
	gd.batch = append(gd.batch, w)
}

// closeLevel ends the current level: the surviving fresh words (added this
// level and not cancelled by a later duplicate within it) become the next
// level's expansion queue. An empty survivor list is the fixed point.
func (gd *greatRun) closeLevel(level, produced int) []string {
	survivors := make([]string, 0, len(gd.batch))
	for _, w := range gd.batch {
		if gd.uncanceled[w] {
			survivors = append(survivors, w)
		}
	}
	gd.batch = nil
	gd.trace = append(gd.trace, fmt.Sprintf(
		"level %d: produced %d, new %d, repeated %d, uncanceled %d",
		level, produced, len(survivors), len(gd.repeated), len(gd.uncanceled),
	))

	return survivors
}
