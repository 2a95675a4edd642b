// Package tableset provides the CanonicalSet abstraction the retrograde
// solver uses to accumulate WON/LOST canonical
// boards: an in-memory open-addressing table sized for tens of millions
// of 48-bit keys, or an optional disk-backed table for runs where that
// would exceed available memory.
package tableset

import "github.com/gomill/millsolve/internal/mill"

// CanonicalSet holds canonical boards with insert-only, never-evict
// membership semantics (spec §4.7's invariant: a board is inserted at
// most once per set).
type CanonicalSet interface {
	// Insert adds b if absent and reports whether it was newly added.
	Insert(b mill.Board) (bool, error)
	// Has reports whether b is a member.
	Has(b mill.Board) (bool, error)
	// Len reports the current member count.
	Len() int
	// Close releases any resources the set holds.
	Close() error
}
