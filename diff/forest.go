package diff

// Node addresses a single produced word: which level, which side, which term.
type Node struct {
	Level int
	Side  Side
	Term  string
}

// Forest is the provenance forest of a run: two trees, one per side, each
// rooted at its seed. Every node points at its first producer on the
// previous level; the two level-0 seed nodes have no parent.
//
// Forest retains the order nodes were first recorded in, so enumeration is
// reproducible across runs and implementations.
type Forest struct {
	seedA, seedB string
	parents      map[Node]Node
	known        map[Node]bool
	order        []Node
}

func newForest(seedA, seedB string) *Forest {
	f := &Forest{
		seedA:   seedA,
		seedB:   seedB,
		parents: make(map[Node]Node),
		known:   make(map[Node]bool),
	}
	f.recordRoot(Node{Level: 0, Side: SideA, Term: seedA})
	f.recordRoot(Node{Level: 0, Side: SideB, Term: seedB})

	return f
}

// recordRoot registers a level-0 seed node without a parent.
func (f *Forest) recordRoot(n Node) {
	if f.known[n] {
		return
	}
	f.known[n] = true
	f.order = append(f.order, n)
}

// record registers child with its producer. First producer wins: later
// producers of the same (level, side, term) are ignored.
func (f *Forest) record(child, parent Node) {
	if f.known[child] {
		return
	}
	f.known[child] = true
	f.parents[child] = parent
	f.order = append(f.order, child)
}

// SeedA returns the normalized seed of side A.
func (f *Forest) SeedA() string { return f.seedA }

// SeedB returns the normalized seed of side B.
func (f *Forest) SeedB() string { return f.seedB }

// Contains reports whether n was ever produced.
func (f *Forest) Contains(n Node) bool { return f.known[n] }

// Parent returns n's recorded producer. ok is false for the two level-0
// seed roots and for nodes that were never produced.
func (f *Forest) Parent(n Node) (parent Node, ok bool) {
	parent, ok = f.parents[n]
	return parent, ok
}

// Nodes returns every recorded node in first-recorded order, the two seed
// roots first.
func (f *Forest) Nodes() []Node {
	out := make([]Node, len(f.order))
	copy(out, f.order)

	return out
}

// Len returns the number of recorded nodes.
func (f *Forest) Len() int { return len(f.order) }
