package startset

import "github.com/gomill/millsolve/internal/mill"

// BuildF1 enumerates family F1 of spec §4.6: every board with one White
// mill placed in one of the three non-equivalent templates, two Black
// stones placed anywhere else, plus 0..(max-3) additional White stones
// on the remaining empty cells. Each resulting board is canonicalised
// and passed to insert; duplicate canonical forms across templates and
// placements are the caller's (the solver's seed set's) concern, not
// this function's — it simply emits every construction.
func BuildF1(max int, insert func(mill.Board)) {
	for _, tmpl := range millTemplates() {
		var base mill.Board
		for _, c := range tmpl {
			base.PlaceStone(c.Ring, c.Pos, mill.White)
		}

		afterMill := base.EmptyCells()
		forEachCombination(&base, afterMill, 0, 2, mill.Black, func() {
			extendable := base.EmptyCells()
			for k := 0; k <= max-3; k++ {
				forEachCombination(&base, extendable, 0, k, mill.White, func() {
					insert(base.Canonicalize())
				})
			}
		})
	}
}
