package startset

import "github.com/gomill/millsolve/internal/mill"

// forEachCombination enumerates every size-k subset of cells (in index
// order, start..len(cells)), placing c on each chosen cell of b before
// invoking leaf and removing it again on the way back out — the same
// backup/restore-by-recursion shape movegen's generators use, applied
// here to combination enumeration instead of a move sequence. This
// mirrors the reference engine's distribute_stones_and_add recursive
// placement helper.
func forEachCombination(b *mill.Board, cells []mill.CellRef, start, k int, c mill.Color, leaf func()) {
	if k == 0 {
		leaf()
		return
	}
	for i := start; i <= len(cells)-k; i++ {
		cell := cells[i]
		b.PlaceStone(cell.Ring, cell.Pos, c)
		forEachCombination(b, cells, i+1, k-1, c, leaf)
		b.RemoveStone(cell.Ring, cell.Pos)
	}
}
