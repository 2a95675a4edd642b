// Package problems implements the three external-interface problems of
// spec §6 as pure functions over line slices — no file I/O, no flags.
// cmd/millsolve is the only place that touches a filesystem; it reads
// lines, calls into this package, and writes the returned lines back out.
package problems

import (
	"fmt"

	"github.com/gomill/millsolve/internal/mill"
)

// SolveCanonicalForm implements Problem 4: for each input line (a
// 24-character encoded board), report the 1-based index of the first
// earlier line whose canonical form matches, or the line's own 1-based
// index if no earlier line matches.
func SolveCanonicalForm(lines []string) ([]int, error) {
	seen := make(map[uint64]int, len(lines))
	out := make([]int, len(lines))
	for i, line := range lines {
		b, err := mill.DecodeText(line)
		if err != nil {
			return nil, fmt.Errorf("problems: line %d: %w", i+1, err)
		}
		key := b.Canonicalize().Key()
		lineNum := i + 1
		if first, ok := seen[key]; ok {
			out[i] = first
			continue
		}
		seen[key] = lineNum
		out[i] = lineNum
	}
	return out, nil
}
