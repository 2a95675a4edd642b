package mill

import "fmt"

// TextLength is the fixed length of the external text encoding.
const TextLength = MaxCells

// EncodeText renders b as a 24-character string over {E,W,B}. Order: outer
// ring (2) positions 7..0, then middle ring (1) positions 7..0, then inner
// ring (0) positions 7..0 (spec §6). This is not the order Less compares
// in: Less treats the inner ring as most significant.
func (b Board) EncodeText() string {
	buf := make([]byte, 0, TextLength)
	for r := 2; r >= 0; r-- {
		for p := 7; p >= 0; p-- {
			buf = append(buf, textChar(b.Get(r, p)))
		}
	}
	return string(buf)
}

func textChar(s CellState) byte {
	switch s {
	case Empty:
		return 'E'
	case StateWhite:
		return 'W'
	case StateBlack:
		return 'B'
	default:
		return '?'
	}
}

func charState(c byte) (CellState, bool) {
	switch c {
	case 'E':
		return Empty, true
	case 'W':
		return StateWhite, true
	case 'B':
		return StateBlack, true
	default:
		return Empty, false
	}
}

// DecodeText parses a 24-character board string produced by EncodeText.
// Decoding fails with ErrEncoding on any length other than 24 or any
// character outside {E,W,B}.
func DecodeText(s string) (Board, error) {
	if len(s) != TextLength {
		return Board{}, fmt.Errorf("%w: want length %d, got %d", ErrEncoding, TextLength, len(s))
	}
	var b Board
	i := 0
	for r := 2; r >= 0; r-- {
		for p := 7; p >= 0; p-- {
			st, ok := charState(s[i])
			if !ok {
				return Board{}, fmt.Errorf("%w: invalid character %q at index %d", ErrEncoding, s[i], i)
			}
			b.forceSet(r, p, st)
			i++
		}
	}
	return b, nil
}
