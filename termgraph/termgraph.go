package termgraph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyTerm is returned when a term normalizes to the empty string.
	ErrEmptyTerm = errors.New("termgraph: empty term")

	// ErrDuplicateTerm is returned when a term is defined twice.
	ErrDuplicateTerm = errors.New("termgraph: duplicate term definition")
)

// Normalize returns the canonical form of a raw term: surrounding
// whitespace trimmed, letters lower-cased. Normalize is idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Graph maps a normalized term to the ordered tokens of its definition.
//
// Build the graph with Define, then treat it as read-only: every lookup
// method is safe for concurrent use once construction is finished.
type Graph struct {
	defs  map[string][]string
	order []string // terms in definition order, for deterministic Terms()
}

// NewGraph returns an empty definition graph.
func NewGraph() *Graph {
	return &Graph{defs: make(map[string][]string)}
}

// Define records the definition of term as the given tokens, all
// normalized. Tokens that normalize to the empty string are dropped.
// Returns ErrEmptyTerm if the term itself normalizes to "", or
// ErrDuplicateTerm if the term already has a definition.
func (g *Graph) Define(term string, tokens ...string) error {
	t := Normalize(term)
	if t == "" {
		return fmt.Errorf("%w: %q", ErrEmptyTerm, term)
	}
	if _, dup := g.defs[t]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateTerm, t)
	}
	def := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n := Normalize(tok); n != "" {
			def = append(def, n)
		}
	}
	g.defs[t] = def
	g.order = append(g.order, t)

	return nil
}

// Has reports whether term (normalized) carries a definition.
func (g *Graph) Has(term string) bool {
	_, ok := g.defs[Normalize(term)]
	return ok
}

// Definition returns the stored tokens for term and whether the term is
// defined. The returned slice must not be mutated.
func (g *Graph) Definition(term string) ([]string, bool) {
	def, ok := g.defs[Normalize(term)]
	return def, ok
}

// Expand returns the definition tokens of term, or the single-element
// self-loop [term] when the term is unknown or its definition is empty.
// Expansion therefore never stalls: every term produces at least one word.
func (g *Graph) Expand(term string) []string {
	t := Normalize(term)
	if def, ok := g.defs[t]; ok && len(def) > 0 {
		return def
	}

	return []string{t}
}

// Len returns the number of defined terms.
func (g *Graph) Len() int { return len(g.defs) }

// Terms returns all defined terms in definition order.
func (g *Graph) Terms() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// ExpandMultiset advances m one level: every (term, count) pair contributes
// count to each token of term's expansion. The result accumulates in
// first-produced order (source terms in m's insertion order, tokens in
// definition order), so downstream consumers observe a stable sequence.
// The total count is preserved per source term times its fan-out.
func (g *Graph) ExpandMultiset(m *Multiset) *Multiset {
	return g.ExpandMultisetFunc(m, nil)
}

// ExpandMultisetFunc is ExpandMultiset with a per-occurrence callback:
// visit(source, produced) fires once for every token occurrence, in the
// same stable first-produced order the result accumulates in. A nil visit
// is allowed. Differentiation runs use the callback to record
// first-producer-wins provenance parents.
func (g *Graph) ExpandMultisetFunc(m *Multiset, visit func(source, produced string)) *Multiset {
	out := NewMultiset()
	for _, src := range m.Terms() {
		c := m.Count(src)
		for _, tok := range g.Expand(src) {
			out.Add(tok, c)
			if visit != nil {
				visit(src, tok)
			}
		}
	}

	return out
}
