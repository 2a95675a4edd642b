package startset

import "github.com/gomill/millsolve/internal/mill"

// BuildF2 enumerates family F2 of spec §4.6: every placement of k Black
// stones (4 <= k <= max) together with a White "enclosure" covering all
// of Black's empty slide destinations, so Black has no legal move — plus
// every way of distributing the remaining White budget across the
// leftover empty cells. Three-or-fewer Black stones are excluded because
// Black could jump instead of being enclosed.
func BuildF2(max int, insert func(mill.Board)) {
	all := mill.AllCells()
	cells := all[:]

	for k := 4; k <= max; k++ {
		var b mill.Board
		forEachCombination(&b, cells, 0, k, mill.Black, func() {
			enclosure := enclosureOf(b)
			remaining := max
			if len(enclosure) > remaining {
				return
			}
			for _, c := range enclosure {
				b.PlaceStone(c.Ring, c.Pos, mill.White)
			}

			leftoverBudget := remaining - len(enclosure)
			leftoverCells := b.EmptyCells()
			for extra := 0; extra <= leftoverBudget; extra++ {
				forEachCombination(&b, leftoverCells, 0, extra, mill.White, func() {
					insert(b.Canonicalize())
				})
			}

			for _, c := range enclosure {
				b.RemoveStone(c.Ring, c.Pos)
			}
		})
	}
}

// enclosureOf returns, for a board holding only Black stones, the set of
// every empty cell adjacent to a Black stone — the White placement
// required to block all of Black's slide destinations. The memoisation
// the reference engine performs (computing this once per Black placement
// rather than once per downstream extension) falls out naturally here:
// the caller computes it exactly once per forEachCombination leaf, before
// its extension loop reuses it.
func enclosureOf(b mill.Board) []mill.CellRef {
	seen := make(map[mill.CellRef]bool)
	var out []mill.CellRef
	for _, cell := range mill.AllCells() {
		if b.Get(cell.Ring, cell.Pos) != mill.StateBlack {
			continue
		}
		for _, nb := range mill.Neighbors(cell.Ring, cell.Pos) {
			if !b.IsEmpty(nb.Ring, nb.Pos) {
				continue
			}
			key := mill.CellRef{Ring: nb.Ring, Pos: nb.Pos}
			if !seen[key] {
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	return out
}
