package mill

import "errors"

// Sentinel errors per the error taxonomy: encoding errors are surfaced to
// the caller (who decides whether to skip a line or terminate); invariant
// and index errors are programmer errors that abort the current operation
// and are never recovered inside the engine.
var (
	// ErrEncoding marks a malformed text-encoded board: wrong length or an
	// invalid character.
	ErrEncoding = errors.New("mill: encoding error")

	// ErrStateInvariant marks an attempt to produce or store a cell value
	// outside {Empty, White, Black}, or a Set call whose pre/post-condition
	// (target was Empty iff state != Empty) does not hold.
	ErrStateInvariant = errors.New("mill: state invariant violation")

	// ErrIndex marks a ring or position index presented to the encoding
	// layer that is out of range (ring >= 3 or pos >= 8).
	ErrIndex = errors.New("mill: index out of range")
)
