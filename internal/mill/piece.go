// Package mill implements the Nine Men's Morris board representation:
// compact ring encoding, symmetry canonicalization, and mill detection.
package mill

// Color identifies a player's stones. White and Black are interchangeable
// by colour-inversion (Board.InvertColours).
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// CellState is the 2-bit value stored per cell: Empty, White, or Black.
// The fourth code (0b11) is forbidden and must never appear on a Board.
type CellState uint8

const (
	Empty      CellState = 0
	StateWhite CellState = 1
	StateBlack CellState = 2
	forbidden  CellState = 3
)

// String returns the single-character text form of the state ({E, W, B}).
func (s CellState) String() string {
	switch s {
	case Empty:
		return "E"
	case StateWhite:
		return "W"
	case StateBlack:
		return "B"
	default:
		return "?"
	}
}

// stateForColor returns the CellState a given side's stone occupies.
func stateForColor(c Color) CellState {
	if c == White {
		return StateWhite
	}
	return StateBlack
}
