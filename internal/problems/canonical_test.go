package problems

import (
	"testing"

	"github.com/gomill/millsolve/internal/mill"
)

func TestSolveCanonicalFormFirstOccurrence(t *testing.T) {
	var empty mill.Board

	var stoneAt0 mill.Board
	stoneAt0.PlaceStone(2, 0, mill.White)

	// Rotating an outer-ring stone by two positions is a valid symmetry
	// generator (only even-position rotations preserve the cross-ring
	// adjacency structure), so stoneAt0 and stoneAt2 share a canonical form.
	var stoneAt2 mill.Board
	stoneAt2.PlaceStone(2, 2, mill.White)

	lines := []string{
		empty.EncodeText(),
		stoneAt0.EncodeText(),
		stoneAt2.EncodeText(),
		stoneAt0.EncodeText(),
	}
	got, err := SolveCanonicalForm(lines)
	if err != nil {
		t.Fatalf("SolveCanonicalForm: %v", err)
	}
	want := []int{1, 2, 2, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %d, want %d", i+1, got[i], want[i])
		}
	}
}

func TestSolveCanonicalFormRejectsBadLine(t *testing.T) {
	if _, err := SolveCanonicalForm([]string{"too-short"}); err == nil {
		t.Fatal("expected an error for a malformed line")
	}
}
