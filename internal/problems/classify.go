package problems

import (
	"fmt"

	"github.com/gomill/millsolve/internal/mill"
	"github.com/gomill/millsolve/internal/tableset"
)

// Classify implements the endgame-classification problem of spec §6,
// §4.8: for each line (an encoded board), decode and canonicalize it and
// report 2 (WON for White-to-move), 0 (LOST), or 1 (neither set has it —
// treated as DRAW/unknown) against the solver's computed won/lost sets.
func Classify(lines []string, won, lost tableset.CanonicalSet) ([]int, error) {
	out := make([]int, len(lines))
	for i, line := range lines {
		b, err := mill.DecodeText(line)
		if err != nil {
			return nil, fmt.Errorf("problems: line %d: %w", i+1, err)
		}
		canon := b.Canonicalize()
		if ok, err := won.Has(canon); err != nil {
			return nil, fmt.Errorf("problems: line %d: won lookup: %w", i+1, err)
		} else if ok {
			out[i] = 2
			continue
		}
		if ok, err := lost.Has(canon); err != nil {
			return nil, fmt.Errorf("problems: line %d: lost lookup: %w", i+1, err)
		} else if ok {
			out[i] = 0
			continue
		}
		out[i] = 1
	}
	return out, nil
}
