package boundary

import (
	"testing"
)

// TestStitch tests ring reassembly from way fragments
func TestStitch(t *testing.T) {
	tests := []struct {
		name        string
		chains      []NodeChain
		expectIDs   [][]int64 // accepted in either direction
		expectClose []bool
	}{
		{
			name:        "Two fragments joined at shared endpoint",
			chains:      []NodeChain{chainOf(1, 2, 3), chainOf(3, 4, 5)},
			expectIDs:   [][]int64{{1, 2, 3, 4, 5}},
			expectClose: []bool{false},
		},
		{
			name:        "Closed ring from two fragments",
			chains:      []NodeChain{chainOf(1, 2, 3), chainOf(3, 4, 1)},
			expectIDs:   [][]int64{{3, 4, 1, 2, 3}},
			expectClose: []bool{true},
		},
		{
			name:        "Reversed fragment is flipped on append",
			chains:      []NodeChain{chainOf(1, 2, 3), chainOf(5, 4, 3)},
			expectIDs:   [][]int64{{1, 2, 3, 4, 5}},
			expectClose: []bool{false},
		},
		{
			name:        "Fragment prepended on its first id",
			chains:      []NodeChain{chainOf(3, 4, 5), chainOf(3, 2, 1)},
			expectIDs:   [][]int64{{1, 2, 3, 4, 5}},
			expectClose: []bool{false},
		},
		{
			name: "Square from four shuffled, mixed-direction edges",
			chains: []NodeChain{
				chainOf(1, 2),
				chainOf(4, 3),
				chainOf(4, 1),
				chainOf(2, 3),
			},
			expectIDs:   [][]int64{{2, 3, 4, 1, 2}},
			expectClose: []bool{true},
		},
		{
			name: "Two disjoint rings",
			chains: []NodeChain{
				chainOf(1, 2, 3),
				chainOf(10, 11, 12),
				chainOf(3, 1),
				chainOf(12, 10),
			},
			expectIDs:   [][]int64{{3, 1, 2, 3}, {12, 10, 11, 12}},
			expectClose: []bool{true, true},
		},
		{
			name:        "Closed single way untouched",
			chains:      []NodeChain{chainOf(1, 2, 3, 1)},
			expectIDs:   [][]int64{{1, 2, 3, 1}},
			expectClose: []bool{true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Stitch(tt.chains)

			if len(result) != len(tt.expectIDs) {
				t.Fatalf("expected %d chains, got %d: %v", len(tt.expectIDs), len(result), result)
			}
			for i, chain := range result {
				got := chain.IDs()
				if !equalIDs(got, tt.expectIDs[i]) && !equalIDs(got, reversedIDs(tt.expectIDs[i])) {
					t.Errorf("chain %d: got %v, want %v (either direction)", i, got, tt.expectIDs[i])
				}
				if chain.Closed() != tt.expectClose[i] {
					t.Errorf("chain %d: Closed() = %v, want %v", i, chain.Closed(), tt.expectClose[i])
				}
			}
		})
	}
}

// TestStitchClosedRingCoversEachPointOnce tests the closing id is the only repeat
func TestStitchClosedRingCoversEachPointOnce(t *testing.T) {
	result := Stitch([]NodeChain{chainOf(1, 2, 3), chainOf(3, 4, 1)})
	if len(result) != 1 {
		t.Fatalf("expected one ring, got %d", len(result))
	}
	ring := result[0]
	if !ring.Closed() {
		t.Fatal("expected closed ring")
	}

	seen := map[int64]int{}
	for _, p := range ring[:len(ring)-1] {
		seen[p.ID]++
	}
	for _, id := range []int64{1, 2, 3, 4} {
		if seen[id] != 1 {
			t.Errorf("point %d appears %d times, want 1", id, seen[id])
		}
	}
	if len(seen) != 4 {
		t.Errorf("unexpected points in ring: %v", seen)
	}
}

// TestStitchIdempotent tests that maximal chains are returned unchanged
func TestStitchIdempotent(t *testing.T) {
	input := []NodeChain{
		chainOf(1, 2, 3),
		chainOf(3, 4, 1),
		chainOf(7, 8, 9),
		chainOf(20, 21, 22, 20),
	}

	first := Stitch(input)
	second := Stitch(first)

	if len(first) != len(second) {
		t.Fatalf("expected %d chains, got %d", len(first), len(second))
	}
	for i := range first {
		if !equalIDs(first[i].IDs(), second[i].IDs()) {
			t.Errorf("chain %d changed: %v -> %v", i, first[i].IDs(), second[i].IDs())
		}
	}
}

// TestStitchDegenerate tests empty and single-point chains pass through
func TestStitchDegenerate(t *testing.T) {
	input := []NodeChain{
		{},
		chainOf(5),
		chainOf(5, 6),
	}

	result := Stitch(input)

	if len(result) != 3 {
		t.Fatalf("expected 3 chains, got %d", len(result))
	}
	if len(result[0]) != 0 {
		t.Errorf("empty chain changed: %v", result[0].IDs())
	}
	if !equalIDs(result[1].IDs(), []int64{5}) {
		t.Errorf("single point chain changed: %v", result[1].IDs())
	}
	if !equalIDs(result[2].IDs(), []int64{5, 6}) {
		t.Errorf("two point chain changed: %v", result[2].IDs())
	}
	if len(Stitch(nil)) != 0 {
		t.Error("stitching nothing should produce nothing")
	}
}

// TestStitchJunctionTieBreak tests determinism when three fragments meet
func TestStitchJunctionTieBreak(t *testing.T) {
	input := []NodeChain{
		chainOf(1, 2),
		chainOf(2, 3),
		chainOf(2, 4),
	}

	a := Stitch(input)
	b := Stitch(input)

	if len(a) != 2 {
		t.Fatalf("expected the junction to leave 2 chains, got %d", len(a))
	}
	// first pool entry touching id 2 wins
	if !equalIDs(a[0].IDs(), []int64{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", a[0].IDs())
	}
	for i := range a {
		if !equalIDs(a[i].IDs(), b[i].IDs()) {
			t.Errorf("non-deterministic result at %d: %v vs %v", i, a[i].IDs(), b[i].IDs())
		}
	}
}

func TestStitchDoesNotModifyInput(t *testing.T) {
	a := chainOf(1, 2, 3)
	b := chainOf(5, 4, 3)

	Stitch([]NodeChain{a, b})

	if !equalIDs(a.IDs(), []int64{1, 2, 3}) || !equalIDs(b.IDs(), []int64{5, 4, 3}) {
		t.Errorf("input chains were modified: %v %v", a.IDs(), b.IDs())
	}
}
