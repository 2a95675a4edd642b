package mill

// MillMode selects which lines mill_count_through considers for a query
// position, per spec §4.3.
type MillMode int

const (
	// OnRingOnly considers only the ring-internal lines through the
	// position; used when the caller already knows the position carries
	// no cross-ring line (an odd position).
	OnRingOnly MillMode = iota
	// OnAndAcrossRings additionally considers the cross-ring line when
	// the position is even.
	OnAndAcrossRings
)

type cell struct{ ring, pos int }

// line is one fixed 3-cell mill line.
type line [3]cell

// ringLines holds the 12 ring-internal lines (4 per ring, centred on each
// of the ring's four even/spoke positions) and crossLines holds the 4
// spoke lines connecting all three rings at a shared even position.
//
// Note on topology: the board's cross-ring adjacency (§3) exists only at
// even positions, so a line spanning rings can only be centred on — and
// can only pass through — an even position; a ring-internal line is
// therefore the one centred on that same even position, not an odd one.
// This matches the reference engine's field layout (see
// game/state/representation.rs's classic A1..G7 numbering, where every
// mill is either one ring's side or one of the four spokes through the
// board's centre) and is the construction this package implements.
var ringLines [NumRings][4]line
var crossLines [4]line

// ringLineIndices[ring][pos] gives the indices into ringLines[ring] of
// every ring-internal line through pos. An even (spoke) position is the
// centre of exactly one such line; an odd (corner) position is the shared
// endpoint of the two lines centred on its neighbouring spokes, so it
// carries two (see efficient_state.rs:366-398, which sums both).
var ringLineIndices [NumRings][NumPositions][]int

// crossIndexOfPos[pos] gives the index into crossLines for an even pos;
// undefined (and unused) for odd pos.
var crossIndexOfPos [NumPositions]int

func init() {
	for r := 0; r < NumRings; r++ {
		for i, center := range []int{0, 2, 4, 6} {
			a := (center + NumPositions - 1) % NumPositions
			b := center
			c := (center + 1) % NumPositions
			ringLines[r][i] = line{{r, a}, {r, b}, {r, c}}
			ringLineIndices[r][a] = append(ringLineIndices[r][a], i)
			ringLineIndices[r][b] = append(ringLineIndices[r][b], i)
			ringLineIndices[r][c] = append(ringLineIndices[r][c], i)
		}
	}
	for i, pos := range []int{0, 2, 4, 6} {
		crossLines[i] = line{{0, pos}, {1, pos}, {2, pos}}
		crossIndexOfPos[pos] = i
	}
}

// lineIsColor reports whether every cell of ln holds the given colour.
func (b Board) lineIsColor(ln line, want CellState) bool {
	for _, c := range ln {
		if b.Get(c.ring, c.pos) != want {
			return false
		}
	}
	return true
}

// MillCountThrough returns the number of mills through (ring,pos) occupied
// entirely by colour c. A corner position lies on two ring-internal lines
// at once, so this can return 2 purely from ring lines; an even position
// additionally counting its cross-ring line can also reach 2. mode
// determines whether the cross-ring line is considered at all.
func (b Board) MillCountThrough(ring, pos int, c Color, mode MillMode) int {
	want := stateForColor(c)
	n := 0
	for _, idx := range ringLineIndices[ring][pos] {
		if b.lineIsColor(ringLines[ring][idx], want) {
			n++
		}
	}
	if mode == OnAndAcrossRings && pos%2 == 0 {
		cl := crossLines[crossIndexOfPos[pos]]
		if b.lineIsColor(cl, want) {
			n++
		}
	}
	return n
}

// InAnyMill reports whether (ring,pos), which must hold colour c, is part
// of at least one mill of c's colour.
func (b Board) InAnyMill(ring, pos int, c Color) bool {
	return b.MillCountThrough(ring, pos, c, OnAndAcrossRings) > 0
}

// AllOwnStonesInMills reports whether every cell occupied by c is part of
// at least one mill — the condition under which spec §4.4's capture
// policy lifts mill-protection and any opposing stone becomes takeable.
func (b Board) AllOwnStonesInMills(c Color) bool {
	want := stateForColor(c)
	for r := 0; r < NumRings; r++ {
		word := b.Rings[r]
		for p := 0; p < NumPositions; p++ {
			if CellState((word>>uint(p*2))&0b11) == want {
				if !b.InAnyMill(r, p, c) {
					return false
				}
			}
		}
	}
	return true
}

// CaptureTargets returns every (ring,pos) cell holding colour c that is a
// legal capture target under the policy of spec §4.4: stones in a mill
// are protected unless every one of c's stones is in a mill, in which
// case all are takeable.
func (b Board) CaptureTargets(c Color) []CellRef {
	want := stateForColor(c)
	allInMills := b.AllOwnStonesInMills(c)
	var targets []CellRef
	for r := 0; r < NumRings; r++ {
		word := b.Rings[r]
		for p := 0; p < NumPositions; p++ {
			if CellState((word>>uint(p*2))&0b11) != want {
				continue
			}
			if allInMills || !b.InAnyMill(r, p, c) {
				targets = append(targets, CellRef{r, p})
			}
		}
	}
	return targets
}

// CellRef is an exported (ring,pos) pair for callers outside this package.
type CellRef struct {
	Ring, Pos int
}
