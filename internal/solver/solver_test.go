package solver

import (
	"testing"

	"github.com/gomill/millsolve/internal/mill"
	"github.com/gomill/millsolve/internal/tableset"
)

// TestClassifyUnknownForEmptyBoard checks the "neither established"
// fallback (spec §4.8) on a board that cannot appear in either set.
func TestClassifyUnknownForEmptyBoard(t *testing.T) {
	won := tableset.NewMemSet(16)
	lost := tableset.NewMemSet(16)
	defer won.Close()
	defer lost.Close()

	var b mill.Board
	got, err := Classify(b, won, lost)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got != 1 {
		t.Fatalf("Classify(empty) = %d, want 1 (unknown)", got)
	}
}

// TestClassifyReflectsMembership exercises the 2/0/1 mapping directly
// against canonical set membership, independent of a full solve.
func TestClassifyReflectsMembership(t *testing.T) {
	won := tableset.NewMemSet(16)
	lost := tableset.NewMemSet(16)
	defer won.Close()
	defer lost.Close()

	var wonBoard mill.Board
	wonBoard.PlaceStone(0, 0, mill.White)
	won.Insert(wonBoard.Canonicalize())

	var lostBoard mill.Board
	lostBoard.PlaceStone(1, 3, mill.Black)
	lost.Insert(lostBoard.Canonicalize())

	if got, _ := Classify(wonBoard, won, lost); got != 2 {
		t.Fatalf("Classify(wonBoard) = %d, want 2", got)
	}
	if got, _ := Classify(lostBoard, won, lost); got != 0 {
		t.Fatalf("Classify(lostBoard) = %d, want 0", got)
	}
}

// TestFullSolveAtThreeStones cross-checks the reference counts from
// spec §8 / original_source's unit_tests.rs: at max_stones=3 the
// complete retrograde computation yields |WON| = 140621 and
// |LOST| = 28736. This touches every package in the solve path and
// takes real wall-clock time, so it only runs under `go test` (not
// `go test -short`).
func TestFullSolveAtThreeStones(t *testing.T) {
	if testing.Short() {
		t.Skip("full retrograde solve is expensive; skipped in -short mode")
	}

	result, err := Solve(Options{MaxStones: 3})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	defer result.Close()

	if got := result.Won.Len(); got != 140621 {
		t.Errorf("|WON| = %d, want 140621", got)
	}
	if got := result.Lost.Len(); got != 28736 {
		t.Errorf("|LOST| = %d, want 28736", got)
	}
}

// TestShardedSolveMatchesSingleThreaded cross-checks the Shards>1 path
// against the single-threaded one at a small stone budget, where both
// finish quickly.
func TestShardedSolveMatchesSingleThreaded(t *testing.T) {
	if testing.Short() {
		t.Skip("skipped in -short mode")
	}

	single, err := Solve(Options{MaxStones: 3})
	if err != nil {
		t.Fatalf("Solve(single): %v", err)
	}
	defer single.Close()

	sharded, err := Solve(Options{MaxStones: 3, Shards: 4})
	if err != nil {
		t.Fatalf("Solve(sharded): %v", err)
	}
	defer sharded.Close()

	if single.Won.Len() != sharded.Won.Len() {
		t.Errorf("won count mismatch: single=%d sharded=%d", single.Won.Len(), sharded.Won.Len())
	}
	if single.Lost.Len() != sharded.Lost.Len() {
		t.Errorf("lost count mismatch: single=%d sharded=%d", single.Lost.Len(), sharded.Lost.Len())
	}
}
