package mill

// rotateRingLeft rotates one ring word left by n positions, i.e. a
// left-shift of 2*n bits with wraparound — left because position order
// starts at the LSB (spec §4.2). Only even n (0, 2, 4, 6) are valid
// symmetry generators: the board's cross-ring adjacency exists only at
// even positions, so any rotation that is a symmetry must map even
// positions to even positions.
func rotateRingLeft(word uint16, n int) uint16 {
	shift := uint(n*2) % 16
	if shift == 0 {
		return word
	}
	return (word << shift) | (word >> (16 - shift))
}

// mirrorPermutation maps position p to its image under the vertical-axis
// mirror: position 0 (top-middle) is fixed, and the remaining seven
// positions reverse order around the ring.
var mirrorPermutation = [NumPositions]int{0, 7, 6, 5, 4, 3, 2, 1}

// mirrorRing applies mirrorPermutation to every 2-bit slot of word.
func mirrorRing(word uint16) uint16 {
	var out uint16
	for p := 0; p < NumPositions; p++ {
		v := (word >> uint(p*2)) & 0b11
		out |= v << uint(mirrorPermutation[p]*2)
	}
	return out
}

// Canonicalize returns the lexicographically maximal image of b under the
// order-16 symmetry group: ring-swap (R0<->R2) x 4 rotations x mirror.
// Images are enumerated deterministically per spec §4.2: for each of the
// two ring-swap states, iterate the four rotations, and at each rotation
// consider both the image and its mirror.
func (b Board) Canonicalize() Board {
	best := b
	for _, swapped := range [2]bool{false, true} {
		base := b
		if swapped {
			base.Rings[0], base.Rings[2] = base.Rings[2], base.Rings[0]
		}
		for _, step := range [4]int{0, 2, 4, 6} {
			rotated := Board{Rings: [NumRings]uint16{
				rotateRingLeft(base.Rings[0], step),
				rotateRingLeft(base.Rings[1], step),
				rotateRingLeft(base.Rings[2], step),
			}}
			if Less(best, rotated) {
				best = rotated
			}
			mirrored := Board{Rings: [NumRings]uint16{
				mirrorRing(rotated.Rings[0]),
				mirrorRing(rotated.Rings[1]),
				mirrorRing(rotated.Rings[2]),
			}}
			if Less(best, mirrored) {
				best = mirrored
			}
		}
	}
	return best
}

// IsCanonical reports whether b is already its own canonical form.
func (b Board) IsCanonical() bool {
	return b == b.Canonicalize()
}
