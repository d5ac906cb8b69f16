package diff_test

import (
	"fmt"

	"github.com/katalvlaran/lexidiff/diff"
	"github.com/katalvlaran/lexidiff/termgraph"
)

// ExampleGreat shows the merged-vocabulary run discovering the level cap
// for a small circular vocabulary.
func ExampleGreat() {
	g := termgraph.NewGraph()
	_ = g.Define("money", "business", "debt")
	_ = g.Define("business", "money", "trade")

	gd, err := diff.Great(g, "money", "business")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cap:", gd.Level)
	for _, line := range gd.Trace {
		fmt.Println(line)
	}
	// Output:
	// cap: 2
	// level 0: produced 2, new 2, repeated 0, uncanceled 2
	// level 1: produced 4, new 2, repeated 2, uncanceled 2
	// level 2: produced 2, new 0, repeated 4, uncanceled 0
}

// ExampleRun differentiates the fixture pair under both per-side policies,
// capped by the level Great discovered.
func ExampleRun() {
	g := termgraph.NewGraph()
	_ = g.Define("money", "business", "debt")
	_ = g.Define("business", "money", "trade")

	gd, _ := diff.Great(g, "money", "business")
	for _, p := range []diff.Policy{diff.Weak, diff.Strong} {
		res, err := diff.Run(g, "money", "business", p, diff.WithMaxLevel(gd.Level))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %s at level %d, score %d\n", p, res.Status, res.Level, res.Score)
	}
	// Output:
	// weak: terminated at level 1, score 2
	// strong: terminated at level 1, score 2
}
