package termgraph_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lexidiff/termgraph"
)

// BenchmarkExpandMultiset_Dense expands a multiset over a random dense
// vocabulary (V terms, D tokens per definition).
func BenchmarkExpandMultiset_Dense(b *testing.B) {
	const V = 2000
	const D = 8

	rnd := rand.New(rand.NewSource(42))
	g := termgraph.NewGraph()
	for i := 0; i < V; i++ {
		tokens := make([]string, D)
		for j := range tokens {
			tokens[j] = fmt.Sprintf("t%d", rnd.Intn(V))
		}
		_ = g.Define(fmt.Sprintf("t%d", i), tokens...)
	}

	seed := termgraph.NewMultiset()
	for i := 0; i < 100; i++ {
		seed.Add(fmt.Sprintf("t%d", i), 1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(V * D))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.ExpandMultiset(seed)
	}
}

// BenchmarkMultiset_AddRemove measures the bookkeeping cost of the ordered
// multiset alone.
func BenchmarkMultiset_AddRemove(b *testing.B) {
	const N = 1000
	terms := make([]string, N)
	for i := range terms {
		terms[i] = fmt.Sprintf("w%d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m := termgraph.NewMultiset()
		for _, t := range terms {
			m.Add(t, 2)
		}
		for _, t := range terms {
			_ = m.RemoveAll(t)
		}
	}
}
