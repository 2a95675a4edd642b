package problems

import (
	"testing"

	"github.com/gomill/millsolve/internal/mill"
)

func TestSolveMoveTripleCountsSlidesAndCaptures(t *testing.T) {
	var b mill.Board
	// White at outer(0),(1) hold two of line {7,0,1}; outer(6) is a free
	// stone whose only mill-closing slide is onto outer(7). Black has two
	// stones, neither in a mill.
	b.PlaceStone(2, 0, mill.White)
	b.PlaceStone(2, 1, mill.White)
	b.PlaceStone(2, 6, mill.White)
	b.PlaceStone(1, 2, mill.Black)
	b.PlaceStone(1, 4, mill.Black)

	lines := []string{b.EncodeText()}
	got, err := SolveMoveTriple(lines)
	if err != nil {
		t.Fatalf("SolveMoveTriple: %v", err)
	}

	legalPlies, millPlies, capturable := got[0][0], got[0][1], got[0][2]
	if legalPlies != 6 {
		t.Errorf("legalPlies = %d, want 6 (slides only, no jump since only slides are counted)", legalPlies)
	}
	if millPlies != 1 {
		t.Errorf("millPlies = %d, want 1 (only outer(6)->outer(7) closes the mill)", millPlies)
	}
	if capturable != 2 {
		t.Errorf("capturable = %d, want 2 (neither Black stone is in a mill)", capturable)
	}
}

func TestSolveMoveTripleRejectsBadLine(t *testing.T) {
	if _, err := SolveMoveTriple([]string{"nope"}); err == nil {
		t.Fatal("expected an error for a malformed line")
	}
}
