package baseline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lexidiff/termgraph"
)

// Sentinel errors for baseline search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("baseline: graph is nil")

	// ErrEmptyTerm is returned when a term normalizes to the empty string.
	ErrEmptyTerm = errors.New("baseline: empty term")

	// ErrNoPath is returned when the target is unreachable.
	ErrNoPath = errors.New("baseline: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("baseline: invalid option supplied")
)

// Option configures Search via functional arguments.
type Option func(*options)

type options struct {
	maxDepth int
	err      error
}

// WithMaxDepth stops exploring beyond the given hop depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// Result holds the outcome of a baseline Search:
//   - Order: terms visited, in visit sequence.
//   - Depth: map from term to its hop distance from the start.
//   - Parent: map from term to its predecessor in the search tree.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// queueItem pairs a term with its hop depth.
type queueItem struct {
	term  string
	depth int
}

// Search runs breadth-first search over definition edges from the start
// term. Unknown terms self-loop, which the visited set absorbs, so the
// search always terminates.
func Search(g *termgraph.Graph, from string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start := termgraph.Normalize(from)
	if start == "" {
		return nil, ErrEmptyTerm
	}

	res := &Result{
		Depth:  make(map[string]int),
		Parent: make(map[string]string),
	}
	res.Depth[start] = 0

	queue := []queueItem{{term: start, depth: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.term)

		next := item.depth + 1
		if o.maxDepth > 0 && next > o.maxDepth {
			continue
		}
		for _, tok := range g.Expand(item.term) {
			if _, seen := res.Depth[tok]; seen {
				continue
			}
			res.Depth[tok] = next
			res.Parent[tok] = item.term
			queue = append(queue, queueItem{term: tok, depth: next})
		}
	}

	return res, nil
}

// PathTo reconstructs the start-to-dest term path. Returns ErrNoPath if
// dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	d := termgraph.Normalize(dest)
	if _, ok := r.Depth[d]; !ok {
		return nil, fmt.Errorf("%w: to %q", ErrNoPath, d)
	}
	path := make([]string, 0, r.Depth[d]+1)
	for cur := d; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Distance returns the fewest-hop definition path from one term to another
// together with its hop count. Returns ErrNoPath when to is unreachable.
func Distance(g *termgraph.Graph, from, to string) (int, []string, error) {
	res, err := Search(g, from)
	if err != nil {
		return 0, nil, err
	}
	path, err := res.PathTo(to)
	if err != nil {
		return 0, nil, err
	}

	return len(path) - 1, path, nil
}
