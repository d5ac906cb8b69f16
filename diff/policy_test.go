package diff

import (
	"testing"

	"github.com/katalvlaran/lexidiff/termgraph"
)

func ms(pairs ...interface{}) *termgraph.Multiset {
	m := termgraph.NewMultiset()
	for i := 0; i < len(pairs); i += 2 {
		m.Add(pairs[i].(string), pairs[i+1].(int))
	}

	return m
}

// TestSweepWeak_GlobalRepetition verifies a word cancels everywhere once its
// cumulative count across levels and sides exceeds one.
func TestSweepWeak_GlobalRepetition(t *testing.T) {
	h := &history{}
	h.push(newLevelState(ms("money", 1), ms("business", 1)))
	h.sweep(Weak)
	if h.anyEmpty() {
		t.Fatal("no repetition yet: nothing may cancel at level 0")
	}

	h.push(newLevelState(ms("business", 1, "debt", 1), ms("money", 1, "trade", 1)))
	h.sweep(Weak)

	// money and business now occur twice globally: cancelled at every level.
	if got := h.levels[0].u[SideA].Count("money"); got != 0 {
		t.Errorf("U[0,A] money = %d; want 0 (retroactive cancellation)", got)
	}
	if got := h.levels[0].r[SideA].Count("money"); got != 1 {
		t.Errorf("R[0,A] money = %d; want 1", got)
	}
	if got := h.levels[1].r[SideA].Count("business"); got != 1 {
		t.Errorf("R[1,A] business = %d; want 1", got)
	}
	// debt and trade are globally unique and must survive.
	if got := h.levels[1].u[SideA].Count("debt"); got != 1 {
		t.Errorf("U[1,A] debt = %d; want 1", got)
	}
	if got := h.levels[1].u[SideB].Count("trade"); got != 1 {
		t.Errorf("U[1,B] trade = %d; want 1", got)
	}
	if got, want := h.score(), 2; got != want {
		t.Errorf("score = %d; want %d", got, want)
	}
}

// TestSweepStrong_CrossSideOnly verifies same-side repetition never cancels
// under the strong policy.
func TestSweepStrong_CrossSideOnly(t *testing.T) {
	h := &history{}
	h.push(newLevelState(ms("a", 1), ms("b", 1)))
	h.push(newLevelState(ms("t", 2), ms("b", 1)))
	h.push(newLevelState(ms("t", 2), ms("b", 1)))
	h.sweep(Strong)

	// t repeats heavily on side A alone: it must stay uncancelled.
	for level := 1; level <= 2; level++ {
		if got := h.levels[level].u[SideA].Count("t"); got != 2 {
			t.Errorf("U[%d,A] t = %d; want 2 (same-side repetition is not cancellation)", level, got)
		}
	}
	// b repeats on side B alone: equally untouched.
	if got := h.levels[2].u[SideB].Count("b"); got != 1 {
		t.Errorf("U[2,B] b = %d; want 1", got)
	}
	if h.anyEmpty() {
		t.Error("nothing crossed sides: no set may empty")
	}
	if got := h.score(); got != 0 {
		t.Errorf("score = %d; want 0", got)
	}
}

// TestSweepStrong_Overlap verifies cross-side overlap cancels on both sides.
func TestSweepStrong_Overlap(t *testing.T) {
	h := &history{}
	h.push(newLevelState(ms("x", 1), ms("y", 1)))
	h.push(newLevelState(ms("shared", 1), ms("shared", 1, "y2", 1)))
	h.sweep(Strong)

	if got := h.levels[1].u[SideA].Count("shared"); got != 0 {
		t.Errorf("U[1,A] shared = %d; want 0", got)
	}
	if got := h.levels[1].r[SideB].Count("shared"); got != 1 {
		t.Errorf("R[1,B] shared = %d; want 1", got)
	}
	if !h.anyEmpty() {
		t.Error("U[1,A] emptied: anyEmpty must report true")
	}
	// shared cancelled at level 1 on both sides: 1·1 + 1·1.
	if got, want := h.score(), 2; got != want {
		t.Errorf("score = %d; want %d", got, want)
	}
}

// TestSweep_Monotone verifies a second sweep never resurrects cancelled
// words nor cancels survivors absent new evidence.
func TestSweep_Monotone(t *testing.T) {
	for _, p := range []Policy{Weak, Strong} {
		h := &history{}
		h.push(newLevelState(ms("w", 1), ms("w", 1)))
		h.push(newLevelState(ms("u1", 1), ms("u2", 1)))
		h.sweep(p)

		snapshotR := h.levels[0].r[SideA].Count("w")
		snapshotU := h.levels[1].u[SideA].Count("u1")
		h.sweep(p)
		if got := h.levels[0].r[SideA].Count("w"); got != snapshotR {
			t.Errorf("%v: repeated count changed on idempotent re-sweep: %d → %d", p, snapshotR, got)
		}
		if got := h.levels[0].u[SideA].Count("w"); got != 0 {
			t.Errorf("%v: cancelled word returned to U", p)
		}
		if got := h.levels[1].u[SideA].Count("u1"); got != snapshotU {
			t.Errorf("%v: survivor count changed on re-sweep: %d → %d", p, snapshotU, got)
		}
	}
}

// TestDiagnostic_MinLevel verifies the exhausted diagnostic picks the level
// with the fewest uncancelled terms, lowest level on ties.
func TestDiagnostic_MinLevel(t *testing.T) {
	h := &history{}
	h.push(newLevelState(ms("a", 1), ms("b", 1)))
	h.push(newLevelState(ms("a1", 1, "a2", 1), ms("b1", 1)))       // 3 remaining
	h.push(newLevelState(ms("a3", 1), ms("b2", 1)))                // 2 remaining
	h.push(newLevelState(ms("a4", 1), ms("b3", 1)))                // 2 remaining (tie → level 2 wins)
	h.push(newLevelState(ms("a5", 1, "a6", 1), ms("b4", 1, "b5", 1))) // 4 remaining

	d := h.diagnostic()
	if d.Level != 2 || d.Remaining != 2 {
		t.Errorf("diagnostic = %+v; want {Level:2 Remaining:2}", *d)
	}
}

// TestDiagnostic_ZeroCap covers the degenerate single-level history.
func TestDiagnostic_ZeroCap(t *testing.T) {
	h := &history{}
	h.push(newLevelState(ms("a", 1), ms("b", 1)))
	d := h.diagnostic()
	if d.Level != 0 || d.Remaining != 2 {
		t.Errorf("diagnostic = %+v; want {Level:0 Remaining:2}", *d)
	}
}
