package movegen

import "github.com/gomill/millsolve/internal/mill"

// BaseMove is one slide or jump before capture-choice materialisation:
// the (source, dest) pair, and whether landing on dest closes a new mill
// for the mover.
type BaseMove struct {
	Source, Dest mill.CellRef
	ClosesMill   bool
}

// GenerateBaseMoves enumerates every (source,dest) pair available to c on
// b: a slide to an adjacent empty cell, or — when c has exactly three
// stones on the board — a jump to any empty cell (spec §4.4).
func GenerateBaseMoves(b mill.Board, c mill.Color) []BaseMove {
	jumping := b.Count(c) == 3
	var moves []BaseMove
	for r := 0; r < mill.NumRings; r++ {
		for p := 0; p < mill.NumPositions; p++ {
			if state := b.Get(r, p); state != stateOf(c) {
				continue
			}
			src := mill.CellRef{Ring: r, Pos: p}
			if jumping {
				for dr := 0; dr < mill.NumRings; dr++ {
					for dp := 0; dp < mill.NumPositions; dp++ {
						if !b.IsEmpty(dr, dp) {
							continue
						}
						moves = append(moves, makeBaseMove(b, c, src, mill.CellRef{Ring: dr, Pos: dp}))
					}
				}
				continue
			}
			for _, nb := range mill.Neighbors(r, p) {
				if !b.IsEmpty(nb.Ring, nb.Pos) {
					continue
				}
				moves = append(moves, makeBaseMove(b, c, src, mill.CellRef{Ring: nb.Ring, Pos: nb.Pos}))
			}
		}
	}
	return moves
}

// GenerateSlideMoves enumerates only the ring/cross-ring adjacency slides
// available to c on b, ignoring the three-stone jump rule. This is the
// move set Problem 5's move-triple reports over (efficient_state.rs's
// get_move_triple has no jump branch), as distinct from GenerateBaseMoves
// which also covers the jump phase for actual play.
func GenerateSlideMoves(b mill.Board, c mill.Color) []BaseMove {
	var moves []BaseMove
	for r := 0; r < mill.NumRings; r++ {
		for p := 0; p < mill.NumPositions; p++ {
			if b.Get(r, p) != stateOf(c) {
				continue
			}
			src := mill.CellRef{Ring: r, Pos: p}
			for _, nb := range mill.Neighbors(r, p) {
				if !b.IsEmpty(nb.Ring, nb.Pos) {
					continue
				}
				moves = append(moves, makeBaseMove(b, c, src, mill.CellRef{Ring: nb.Ring, Pos: nb.Pos}))
			}
		}
	}
	return moves
}

// makeBaseMove simulates src->dest on a scratch copy of b (Board is a
// trivially copyable value, so "backup" is just letting b's copy go out
// of scope) to determine whether dest closes a mill for c.
func makeBaseMove(b mill.Board, c mill.Color, src, dest mill.CellRef) BaseMove {
	b.RemoveStone(src.Ring, src.Pos)
	b.PlaceStone(dest.Ring, dest.Pos, c)
	closes := b.InAnyMill(dest.Ring, dest.Pos, c)
	return BaseMove{Source: src, Dest: dest, ClosesMill: closes}
}

// Successors returns every Board reachable from b in one ply by c,
// including one distinct board per legal capture-target choice for each
// mill-closing base move (spec §4.4's capture policy).
func Successors(b mill.Board, c mill.Color) []mill.Board {
	bases := GenerateBaseMoves(b, c)
	var out []mill.Board
	for _, bm := range bases {
		next := b
		next.RemoveStone(bm.Source.Ring, bm.Source.Pos)
		next.PlaceStone(bm.Dest.Ring, bm.Dest.Pos, c)
		if !bm.ClosesMill {
			out = append(out, next)
			continue
		}
		for _, target := range next.CaptureTargets(c.Other()) {
			captured := next
			captured.RemoveStone(target.Ring, target.Pos)
			out = append(out, captured)
		}
	}
	return out
}

func stateOf(c mill.Color) mill.CellState {
	if c == mill.White {
		return mill.StateWhite
	}
	return mill.StateBlack
}
