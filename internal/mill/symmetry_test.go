package mill

import "testing"

func TestCanonicalizeIdempotent(t *testing.T) {
	b, err := DecodeText("BBEEEEEBEEEEWEWWBWWEEEBE")
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	c1 := b.Canonicalize()
	c2 := c1.Canonicalize()
	if c1 != c2 {
		t.Fatalf("canon(canon(b)) != canon(b): %+v vs %+v", c2, c1)
	}
	if !c1.IsCanonical() {
		t.Fatalf("c1 should report IsCanonical")
	}
}

func TestCanonicalizeInvariantUnderRotation(t *testing.T) {
	var b Board
	b.PlaceStone(2, 0, White)
	b.PlaceStone(2, 2, White)
	b.PlaceStone(1, 5, Black)

	want := b.Canonicalize()
	rotated := Board{Rings: [NumRings]uint16{
		rotateRingLeft(b.Rings[0], 2),
		rotateRingLeft(b.Rings[1], 2),
		rotateRingLeft(b.Rings[2], 2),
	}}
	if got := rotated.Canonicalize(); got != want {
		t.Fatalf("canon(rotate(b)) = %+v, want %+v", got, want)
	}

	mirrored := Board{Rings: [NumRings]uint16{
		mirrorRing(b.Rings[0]),
		mirrorRing(b.Rings[1]),
		mirrorRing(b.Rings[2]),
	}}
	if got := mirrored.Canonicalize(); got != want {
		t.Fatalf("canon(mirror(b)) = %+v, want %+v", got, want)
	}

	swapped := b
	swapped.Rings[0], swapped.Rings[2] = swapped.Rings[2], swapped.Rings[0]
	if got := swapped.Canonicalize(); got != want {
		t.Fatalf("canon(ringSwap(b)) = %+v, want %+v", got, want)
	}
}

// TestCanonicalizeDistinctOrbits mirrors spec scenario 5: three
// consecutive outer-ring stones at {0,1,2} form a different orbit from
// three at {0,1,7}, since the former is a straight rotation/mirror
// family distinct from the latter's.
func TestCanonicalizeDistinctOrbits(t *testing.T) {
	var a, b Board
	a.PlaceStone(2, 0, White)
	a.PlaceStone(2, 1, White)
	a.PlaceStone(2, 2, White)

	b.PlaceStone(2, 0, White)
	b.PlaceStone(2, 1, White)
	b.PlaceStone(2, 7, White)

	if a.Canonicalize() == b.Canonicalize() {
		t.Fatalf("expected distinct canonical forms for non-equivalent placements")
	}
}

func TestCanonicalizeCollapsesRotationOrbit(t *testing.T) {
	var a, b Board
	a.PlaceStone(2, 0, White)
	a.PlaceStone(2, 1, White)
	a.PlaceStone(2, 2, White)

	b.PlaceStone(2, 2, White)
	b.PlaceStone(2, 3, White)
	b.PlaceStone(2, 4, White)

	if a.Canonicalize() != b.Canonicalize() {
		t.Fatalf("expected equal canonical forms for a rotated placement")
	}
}
