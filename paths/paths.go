package paths

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lexidiff/diff"
)

// Sentinel errors for path reconstruction.
var (
	// ErrForestNil is returned if a nil forest pointer is passed.
	ErrForestNil = errors.New("paths: forest is nil")

	// ErrUnknownNode is returned when the node was never recorded.
	ErrUnknownNode = errors.New("paths: node not in forest")
)

// Inner returns the provenance chain of n in root-to-node order: the seed
// first, n's term last. The chain has n.Level+1 terms.
func Inner(f *diff.Forest, n diff.Node) ([]string, error) {
	if f == nil {
		return nil, ErrForestNil
	}
	if !f.Contains(n) {
		return nil, fmt.Errorf("%w: %s/%q at level %d", ErrUnknownNode, n.Side, n.Term, n.Level)
	}

	chain := make([]string, n.Level+1)
	cur := n
	for {
		chain[cur.Level] = cur.Term
		parent, ok := f.Parent(cur)
		if !ok {
			break
		}
		cur = parent
	}

	return chain, nil
}

// Outer returns every distinct fused bridge path of the forest: for each
// (side-A node, side-B node) pair and each term their inner chains share,
// seqA up to and including the shared term, followed by seqB's prefix
// before it in reverse. Exact-sequence duplicates are removed; the
// remaining order is the stable enumeration order described in the package
// documentation.
func Outer(f *diff.Forest) ([][]string, error) {
	if f == nil {
		return nil, ErrForestNil
	}

	var nodesA, nodesB []diff.Node
	for _, n := range f.Nodes() {
		if n.Side == diff.SideA {
			nodesA = append(nodesA, n)
		} else {
			nodesB = append(nodesB, n)
		}
	}

	// Inner chains are re-walked per node pair below; cache them once.
	chains := make(map[diff.Node][]string, f.Len())
	chainOf := func(n diff.Node) []string {
		if c, ok := chains[n]; ok {
			return c
		}
		c, _ := Inner(f, n) // n comes from f.Nodes(), lookup cannot fail
		chains[n] = c

		return c
	}

	var out [][]string
	seen := make(map[string]bool)
	for _, na := range nodesA {
		seqA := chainOf(na)
		for _, nb := range nodesB {
			for _, fused := range fuse(seqA, chainOf(nb)) {
				key := strings.Join(fused, "\x1f")
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, fused)
			}
		}
	}

	return out, nil
}

// fuse returns one fused path per distinct term shared by seqA and seqB,
// in order of the term's first appearance in seqA.
func fuse(seqA, seqB []string) [][]string {
	firstB := make(map[string]int, len(seqB))
	for j := len(seqB) - 1; j >= 0; j-- {
		firstB[seqB[j]] = j
	}

	var fused [][]string
	done := make(map[string]bool)
	for i, term := range seqA {
		if done[term] {
			continue // only the first index in seqA counts
		}
		done[term] = true
		j, shared := firstB[term]
		if !shared {
			continue
		}
		path := make([]string, 0, i+1+j)
		path = append(path, seqA[:i+1]...)
		for k := j - 1; k >= 0; k-- {
			path = append(path, seqB[k])
		}
		fused = append(fused, path)
	}

	return fused
}
