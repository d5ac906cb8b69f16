package paths

import (
	"reflect"
	"testing"
)

// TestFuse_SingleShared covers the canonical bridge fixture.
func TestFuse_SingleShared(t *testing.T) {
	got := fuse([]string{"a", "x", "c"}, []string{"b", "y", "c"})
	want := [][]string{{"a", "x", "c", "y", "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fuse = %v; want %v", got, want)
	}
}

// TestFuse_MultipleShared: one node pair yields one fused path per distinct
// shared term, in seqA order.
func TestFuse_MultipleShared(t *testing.T) {
	got := fuse([]string{"a", "s1", "s2"}, []string{"b", "s1", "s2"})
	want := [][]string{
		{"a", "s1", "b"},             // shared s1: i=1, j=1
		{"a", "s1", "s2", "s1", "b"}, // shared s2: i=2, j=2
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fuse = %v; want %v", got, want)
	}
}

// TestFuse_FirstIndexWins: repeated terms use only their first index on
// either side.
func TestFuse_FirstIndexWins(t *testing.T) {
	got := fuse([]string{"a", "s", "s"}, []string{"b", "s", "s"})
	want := [][]string{{"a", "s", "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fuse = %v; want %v", got, want)
	}
}

// TestFuse_NoOverlap yields nothing.
func TestFuse_NoOverlap(t *testing.T) {
	if got := fuse([]string{"a", "x"}, []string{"b", "y"}); got != nil {
		t.Errorf("fuse = %v; want nil", got)
	}
}

// TestFuse_SharedAtRoots: identical seeds fuse to the two-seed bridge.
func TestFuse_SharedAtRoots(t *testing.T) {
	got := fuse([]string{"cat"}, []string{"cat"})
	want := [][]string{{"cat"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fuse = %v; want %v", got, want)
	}
}
