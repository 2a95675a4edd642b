package problems

import (
	"testing"

	"github.com/gomill/millsolve/internal/mill"
	"github.com/gomill/millsolve/internal/tableset"
)

func TestClassifyMapsMembership(t *testing.T) {
	won := tableset.NewMemSet(8)
	lost := tableset.NewMemSet(8)
	defer won.Close()
	defer lost.Close()

	var wonBoard mill.Board
	wonBoard.PlaceStone(0, 1, mill.White)
	won.Insert(wonBoard.Canonicalize())

	var lostBoard mill.Board
	lostBoard.PlaceStone(2, 6, mill.Black)
	lost.Insert(lostBoard.Canonicalize())

	var unknownBoard mill.Board
	unknownBoard.PlaceStone(1, 1, mill.White)
	unknownBoard.PlaceStone(1, 2, mill.Black)

	lines := []string{wonBoard.EncodeText(), lostBoard.EncodeText(), unknownBoard.EncodeText()}
	got, err := Classify(lines, won, lost)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	want := []int{2, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %d, want %d", i+1, got[i], want[i])
		}
	}
}

func TestClassifyRejectsBadLine(t *testing.T) {
	won := tableset.NewMemSet(4)
	lost := tableset.NewMemSet(4)
	defer won.Close()
	defer lost.Close()
	if _, err := Classify([]string{"bad"}, won, lost); err == nil {
		t.Fatal("expected an error for a malformed line")
	}
}
