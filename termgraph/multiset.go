package termgraph

import "fmt"

// Multiset is a Term → count mapping that remembers the order terms were
// first added. All iteration happens in that first-seen order, never in
// map hash order, so any computation driven by a Multiset is reproducible.
//
// Counts are always non-negative; a negative count is an implementation
// defect and panics immediately rather than being absorbed.
type Multiset struct {
	counts  map[string]int
	order   []string
	inOrder map[string]bool
}

// NewMultiset returns an empty multiset.
func NewMultiset() *Multiset {
	return &Multiset{
		counts:  make(map[string]int),
		inOrder: make(map[string]bool),
	}
}

// Add increases term's count by n. Adding zero is a no-op; a negative n
// panics (counts are constructed to be monotonically non-negative).
func (m *Multiset) Add(term string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("termgraph: negative multiset count %d for %q", n, term))
	}
	if n == 0 {
		return
	}
	if !m.inOrder[term] {
		m.inOrder[term] = true
		m.order = append(m.order, term)
	}
	m.counts[term] += n
}

// Count returns term's count (zero when absent).
func (m *Multiset) Count(term string) int { return m.counts[term] }

// RemoveAll removes term entirely and returns the count it held.
func (m *Multiset) RemoveAll(term string) int {
	c := m.counts[term]
	delete(m.counts, term)

	return c
}

// Len returns the number of distinct terms with a positive count.
func (m *Multiset) Len() int { return len(m.counts) }

// Empty reports whether no term holds a positive count.
func (m *Multiset) Empty() bool { return len(m.counts) == 0 }

// Total returns the sum of all counts.
func (m *Multiset) Total() int {
	t := 0
	for _, c := range m.counts {
		t += c
	}

	return t
}

// Terms returns the distinct terms with positive counts, in first-seen
// order. Removed terms do not appear.
func (m *Multiset) Terms() []string {
	out := make([]string, 0, len(m.counts))
	for _, t := range m.order {
		if _, live := m.counts[t]; live {
			out = append(out, t)
		}
	}

	return out
}

// Clone returns an independent copy preserving counts and insertion order.
func (m *Multiset) Clone() *Multiset {
	c := &Multiset{
		counts:  make(map[string]int, len(m.counts)),
		order:   make([]string, len(m.order)),
		inOrder: make(map[string]bool, len(m.inOrder)),
	}
	for t, n := range m.counts {
		c.counts[t] = n
	}
	copy(c.order, m.order)
	for t := range m.inOrder {
		c.inOrder[t] = true
	}

	return c
}
