package movegen

import "github.com/gomill/millsolve/internal/mill"

// Predecessors enumerates every Board B′ such that a legal forward ply by
// c from B′ yields b (spec §4.5). maxStones bounds the un-capture
// reconstruction below: a restored opposing stone must not push that
// side's count above the configured maximum.
func Predecessors(b mill.Board, c mill.Color, maxStones int) []mill.Board {
	jumping := b.Count(c) == 3
	opp := c.Other()
	var out []mill.Board

	for r := 0; r < mill.NumRings; r++ {
		for p := 0; p < mill.NumPositions; p++ {
			if b.Get(r, p) != stateOf(c) {
				continue
			}
			dest := mill.CellRef{Ring: r, Pos: p}

			// A forward ply landing on dest may have closed a mill; that
			// is determined directly on b, the board the ply produced —
			// not on the reconstructed source cell (see DESIGN.md).
			closesMill := b.InAnyMill(dest.Ring, dest.Pos, c)

			sources := reverseOrigins(b, dest, jumping)
			for _, src := range sources {
				base := b
				base.RemoveStone(dest.Ring, dest.Pos)
				base.PlaceStone(src.Ring, src.Pos, c)

				if !closesMill {
					out = append(out, base)
					continue
				}
				out = append(out, reconstructCaptures(base, dest, opp, maxStones)...)
			}
		}
	}
	return out
}

// reverseOrigins returns every cell the mover could have come from: the
// empty ring/cross-ring neighbours of dest, or — when c has exactly three
// stones — every empty cell on the board (jump reversal).
func reverseOrigins(b mill.Board, dest mill.CellRef, jumping bool) []mill.CellRef {
	var origins []mill.CellRef
	if jumping {
		for r := 0; r < mill.NumRings; r++ {
			for p := 0; p < mill.NumPositions; p++ {
				if b.IsEmpty(r, p) {
					origins = append(origins, mill.CellRef{Ring: r, Pos: p})
				}
			}
		}
		return origins
	}
	for _, nb := range mill.Neighbors(dest.Ring, dest.Pos) {
		if b.IsEmpty(nb.Ring, nb.Pos) {
			origins = append(origins, mill.CellRef{Ring: nb.Ring, Pos: nb.Pos})
		}
	}
	return origins
}

// reconstructCaptures restores the one opposing stone a mill-closing ply
// would have captured, per the rule stated in spec §4.5/§9(a): the
// restored stone may land on any empty cell except vacatedDest, provided
// it would itself be a legal forward capture target on the resulting
// board — i.e. either not in a mill, or every opp stone is in a mill.
func reconstructCaptures(base mill.Board, vacatedDest mill.CellRef, opp mill.Color, maxStones int) []mill.Board {
	if base.Count(opp)+1 > maxStones {
		return nil
	}
	var out []mill.Board
	for r := 0; r < mill.NumRings; r++ {
		for p := 0; p < mill.NumPositions; p++ {
			if r == vacatedDest.Ring && p == vacatedDest.Pos {
				continue
			}
			if !base.IsEmpty(r, p) {
				continue
			}
			candidate := base
			candidate.PlaceStone(r, p, opp)
			allInMills := candidate.AllOwnStonesInMills(opp)
			inMill := candidate.InAnyMill(r, p, opp)
			if allInMills || !inMill {
				out = append(out, candidate)
			}
		}
	}
	return out
}
