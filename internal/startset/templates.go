// Package startset builds the Retrograde Solver's seed queue: the
// canonical forms of every position where White has already won on the
// move by Black (spec §4.6), split into families F1 (Black reduced below
// three stones) and F2 (Black has no legal move).
package startset

import "github.com/gomill/millsolve/internal/mill"

// millTemplates returns the three non-equivalent White mill placements
// that canonicalization's orbit collapses the rest of the mill lines
// into: one ring-internal line on the outer ring (representing the
// ring-swap-equivalent inner/outer orientation class), one ring-internal
// line on the middle ring (its own orbit, since the middle ring is fixed
// by ring-swap), and one cross-ring line (spec §4.6, last paragraph).
func millTemplates() [3][3]mill.CellRef {
	return [3][3]mill.CellRef{
		{{Ring: 2, Pos: 7}, {Ring: 2, Pos: 0}, {Ring: 2, Pos: 1}},
		{{Ring: 1, Pos: 7}, {Ring: 1, Pos: 0}, {Ring: 1, Pos: 1}},
		{{Ring: 0, Pos: 0}, {Ring: 1, Pos: 0}, {Ring: 2, Pos: 0}},
	}
}
