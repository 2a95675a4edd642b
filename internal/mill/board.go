package mill

import "fmt"

const (
	// NumRings is the number of concentric rings (inner, middle, outer).
	NumRings = 3
	// NumPositions is the number of positions per ring.
	NumPositions = 8
	// MaxCells is the total number of cells on the board.
	MaxCells = NumRings * NumPositions
)

// Board is a Nine Men's Morris position: three rings of 8 cells, each cell
// a 2-bit slot (Empty=0b00, White=0b01, Black=0b10). It is a trivially
// copyable 48-bit value — pass by value, compare with ==, use as a map key.
//
// Position order within a ring word is LSB = position 0.
type Board struct {
	Rings [NumRings]uint16
}

// Get returns the state of (ring, pos). Panics via ErrIndex-wrapped error
// semantics are not used here for the hot path; callers that accept
// caller-controlled indices should use GetChecked.
func (b Board) Get(ring, pos int) CellState {
	v := (b.Rings[ring] >> uint(pos*2)) & 0b11
	return CellState(v)
}

// GetChecked is Get with bounds checking, for boundary-facing code.
func (b Board) GetChecked(ring, pos int) (CellState, error) {
	if ring < 0 || ring >= NumRings || pos < 0 || pos >= NumPositions {
		return Empty, fmt.Errorf("%w: ring=%d pos=%d", ErrIndex, ring, pos)
	}
	return b.Get(ring, pos), nil
}

// Set places state onto (ring, pos). The pre/post-condition from spec §4.1
// holds: the target cell must have been Empty iff state != Empty — i.e.
// Set only ever transitions Empty->stone or stone->Empty, never
// stone->stone or Empty->Empty. Violations return ErrStateInvariant and
// leave the Board unmodified.
func (b *Board) Set(ring, pos int, state CellState) error {
	if ring < 0 || ring >= NumRings || pos < 0 || pos >= NumPositions {
		return fmt.Errorf("%w: ring=%d pos=%d", ErrIndex, ring, pos)
	}
	if state == forbidden || state > StateBlack {
		return fmt.Errorf("%w: invalid state %d", ErrStateInvariant, state)
	}
	cur := b.Get(ring, pos)
	wasEmpty := cur == Empty
	wantsEmpty := state == Empty
	if wasEmpty == wantsEmpty {
		return fmt.Errorf("%w: Set(ring=%d,pos=%d,%v) on cell already in state %v", ErrStateInvariant, ring, pos, state, cur)
	}
	shift := uint(pos * 2)
	b.Rings[ring] = (b.Rings[ring] &^ (0b11 << shift)) | (uint16(state) << shift)
	return nil
}

// forceSet bypasses the Set pre/post-condition. Used internally by move
// generators and start-set construction, which build up boards cell by
// cell in ways Set's invariant would reject (e.g. overwriting a scratch
// cell during backup/restore).
func (b *Board) forceSet(ring, pos int, state CellState) {
	shift := uint(pos * 2)
	b.Rings[ring] = (b.Rings[ring] &^ (0b11 << shift)) | (uint16(state) << shift)
}

// PlaceStone sets (ring,pos) to colour c without Set's pre/post-condition
// check. Exported for the movegen and startset packages, which mutate
// scratch boards cell-by-cell under their own backup/restore discipline
// rather than Set's single-transition contract.
func (b *Board) PlaceStone(ring, pos int, c Color) {
	b.forceSet(ring, pos, stateForColor(c))
}

// RemoveStone clears (ring,pos) to Empty without Set's pre/post-condition
// check. See PlaceStone.
func (b *Board) RemoveStone(ring, pos int) {
	b.forceSet(ring, pos, Empty)
}

// IsEmpty reports whether (ring, pos) holds no stone.
func (b Board) IsEmpty(ring, pos int) bool {
	return b.Get(ring, pos) == Empty
}

// Count returns the number of cells occupied by colour.
func (b Board) Count(c Color) int {
	want := stateForColor(c)
	n := 0
	for r := 0; r < NumRings; r++ {
		word := b.Rings[r]
		for p := 0; p < NumPositions; p++ {
			if CellState((word>>uint(p*2))&0b11) == want {
				n++
			}
		}
	}
	return n
}

// TotalCount returns count(White) + count(Black).
func (b Board) TotalCount() int {
	return b.Count(White) + b.Count(Black)
}

// InvertColours swaps White<->Black cell-wise and returns the result as a
// new value; b is left unmodified.
func (b Board) InvertColours() Board {
	var out Board
	for r := 0; r < NumRings; r++ {
		word := b.Rings[r]
		var inverted uint16
		for p := 0; p < NumPositions; p++ {
			shift := uint(p * 2)
			v := CellState((word >> shift) & 0b11)
			switch v {
			case StateWhite:
				inverted |= uint16(StateBlack) << shift
			case StateBlack:
				inverted |= uint16(StateWhite) << shift
			}
		}
		out.Rings[r] = inverted
	}
	return out
}

// Validate checks the board-level invariants from spec §3: no forbidden
// code, and the stone count does not exceed maxStones per side.
func (b Board) Validate(maxStones int) error {
	for r := 0; r < NumRings; r++ {
		word := b.Rings[r]
		for p := 0; p < NumPositions; p++ {
			if CellState((word>>uint(p*2))&0b11) == forbidden {
				return fmt.Errorf("%w: forbidden code at ring=%d pos=%d", ErrStateInvariant, r, p)
			}
		}
	}
	if b.Count(White) > maxStones || b.Count(Black) > maxStones {
		return fmt.Errorf("%w: stone count exceeds max_stones=%d", ErrStateInvariant, maxStones)
	}
	return nil
}

// Less defines the total order used by canonicalization: inner ring is
// most significant, compared as unsigned 16-bit words.
func Less(a, b Board) bool {
	if a.Rings[0] != b.Rings[0] {
		return a.Rings[0] < b.Rings[0]
	}
	if a.Rings[1] != b.Rings[1] {
		return a.Rings[1] < b.Rings[1]
	}
	return a.Rings[2] < b.Rings[2]
}

// Key packs the board into a single 48-bit value suitable for hashing and
// use as a set key (ring 0 in the low bits, ring 2 in the high bits).
func (b Board) Key() uint64 {
	return uint64(b.Rings[0]) | uint64(b.Rings[1])<<16 | uint64(b.Rings[2])<<32
}

// FromKey reconstructs a Board from a value produced by Key.
func FromKey(k uint64) Board {
	return Board{Rings: [NumRings]uint16{
		uint16(k),
		uint16(k >> 16),
		uint16(k >> 32),
	}}
}

// String returns a multi-line debug rendering of the board. This is a
// developer/test aid (like board.Position.String in the teacher), not the
// human-readable terminal board drawing that is explicitly out of scope.
func (b Board) String() string {
	s := ""
	for r := NumRings - 1; r >= 0; r-- {
		s += fmt.Sprintf("ring%d: ", r)
		for p := 0; p < NumPositions; p++ {
			s += b.Get(r, p).String() + " "
		}
		s += "\n"
	}
	return s
}
