package baseline_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lexidiff/baseline"
	"github.com/katalvlaran/lexidiff/termgraph"
)

func chainGraph(t *testing.T) *termgraph.Graph {
	t.Helper()
	g := termgraph.NewGraph()
	// money → business → trade; money → debt (dead end, self-loops)
	for _, def := range [][]string{
		{"money", "business", "debt"},
		{"business", "money", "trade"},
		{"trade", "market"},
	} {
		if err := g.Define(def[0], def[1:]...); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestSearch_Errors verifies invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	if _, err := baseline.Search(nil, "x"); !errors.Is(err, baseline.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := chainGraph(t)
	if _, err := baseline.Search(g, "   "); !errors.Is(err, baseline.ErrEmptyTerm) {
		t.Errorf("blank term: want ErrEmptyTerm, got %v", err)
	}
	if _, err := baseline.Search(g, "money", baseline.WithMaxDepth(-1)); !errors.Is(err, baseline.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestSearch_OrderAndDepths verifies deterministic layering over definition
// edges.
func TestSearch_OrderAndDepths(t *testing.T) {
	g := chainGraph(t)
	res, err := baseline.Search(g, "money")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"money", "business", "debt", "trade", "market"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for term, depth := range map[string]int{"money": 0, "business": 1, "debt": 1, "trade": 2, "market": 3} {
		if got := res.Depth[term]; got != depth {
			t.Errorf("Depth[%s] = %d; want %d", term, got, depth)
		}
	}
}

// TestSearch_MaxDepth limits exploration.
func TestSearch_MaxDepth(t *testing.T) {
	g := chainGraph(t)
	res, err := baseline.Search(g, "money", baseline.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"money", "business", "debt"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestDistance covers reachable, unreachable and identical terms.
func TestDistance(t *testing.T) {
	g := chainGraph(t)

	hops, path, err := baseline.Distance(g, "money", "market")
	if err != nil {
		t.Fatal(err)
	}
	if hops != 3 {
		t.Errorf("hops = %d; want 3", hops)
	}
	if want := []string{"money", "business", "trade", "market"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}

	if _, _, err = baseline.Distance(g, "market", "money"); !errors.Is(err, baseline.ErrNoPath) {
		t.Errorf("unreachable: want ErrNoPath, got %v", err)
	}

	hops, path, err = baseline.Distance(g, "Money", "money")
	if err != nil {
		t.Fatal(err)
	}
	if hops != 0 || !reflect.DeepEqual(path, []string{"money"}) {
		t.Errorf("identical terms: hops=%d path=%v; want 0 [money]", hops, path)
	}
}

// TestSearch_UnknownTermSelfLoop: a start term outside the vocabulary
// visits only itself.
func TestSearch_UnknownTermSelfLoop(t *testing.T) {
	g := chainGraph(t)
	res, err := baseline.Search(g, "unicorn")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"unicorn"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}
