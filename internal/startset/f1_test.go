package startset

import (
	"testing"

	"github.com/gomill/millsolve/internal/mill"
)

func TestBuildF1Invariants(t *testing.T) {
	const max = 3
	count := 0
	BuildF1(max, func(b mill.Board) {
		count++
		if err := b.Validate(max); err != nil {
			t.Fatalf("F1 board fails Validate: %v", err)
		}
		if b.Count(mill.Black) != 2 {
			t.Fatalf("F1 board at max=%d should have exactly 2 Black stones, got %d: %s", max, b.Count(mill.Black), b.EncodeText())
		}
		hasMill := false
		for r := 0; r < mill.NumRings; r++ {
			for p := 0; p < mill.NumPositions; p++ {
				if b.Get(r, p) == mill.StateWhite && b.InAnyMill(r, p, mill.White) {
					hasMill = true
				}
			}
		}
		if !hasMill {
			t.Fatalf("F1 board should contain at least one White mill: %s", b.EncodeText())
		}
		if b != b.Canonicalize() {
			t.Fatalf("BuildF1 must insert canonical forms, got a non-canonical board: %s", b.EncodeText())
		}
	})
	if count == 0 {
		t.Fatalf("BuildF1 inserted nothing")
	}
}
