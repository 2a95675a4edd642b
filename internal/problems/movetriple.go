package problems

import (
	"fmt"

	"github.com/gomill/millsolve/internal/mill"
	"github.com/gomill/millsolve/internal/movegen"
)

// SolveMoveTriple implements Problem 5: for each line (a White-to-move
// board), report three integers — the number of legal White slides, how
// many of those close a White mill, and how many Black stones White
// could capture next (spec §6's capture-policy definition, independent
// of any specific move: all non-mill Black stones, or every Black stone
// if all of them are already in mills). Jumps (the three-stone flying
// rule) are outside this count: the reference get_move_triple only ever
// walks ring/cross-ring adjacency.
func SolveMoveTriple(lines []string) ([][3]int, error) {
	out := make([][3]int, len(lines))
	for i, line := range lines {
		b, err := mill.DecodeText(line)
		if err != nil {
			return nil, fmt.Errorf("problems: line %d: %w", i+1, err)
		}
		moves := movegen.GenerateSlideMoves(b, mill.White)
		millClosing := 0
		for _, m := range moves {
			if m.ClosesMill {
				millClosing++
			}
		}
		capturable := len(b.CaptureTargets(mill.Black))
		out[i] = [3]int{len(moves), millClosing, capturable}
	}
	return out, nil
}
