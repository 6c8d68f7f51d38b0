// Package ctl: unit-header layout constants and sentinel errors.
package ctl

import "errors"

// Unit-header layout. The header occupies two leading bytes:
//
//	byte 0: nr<<7 | rjmp<<6 | id (low 6 bits)
//	byte 1: size (1..255 elements covered by the unit)
//
// followed by the row jump (variable-int, present only when the rjmp bit is
// set, which in turn requires nr) and the initial column delta ucol
// (variable-int, or fixed-width little-endian when the stream was produced
// with full column indices — a stream-level property, not a per-unit one).
const (
	// HeadNewRowBit marks the unit as the first of a new row.
	HeadNewRowBit = 0x80

	// HeadRowJmpBit marks a row jump greater than one; the jump value
	// follows the two header bytes as a variable-int.
	HeadRowJmpBit = 0x40

	// HeadIDMask extracts the pattern id from the first header byte.
	HeadIDMask = 0x3f

	// MaxPatternID is the largest pattern id representable in the header.
	// Id 0 is reserved for plain (unpatterned) delta units.
	MaxPatternID = HeadIDMask

	// MaxUnitSize is the largest element count a single unit may cover.
	MaxUnitSize = 255
)

// Sentinel errors for ctl stream decoding.
var (
	// ErrTruncated indicates the stream ended inside a unit.
	ErrTruncated = errors.New("ctl: truncated stream")

	// ErrBadUnitSize indicates a header with a zero element count.
	ErrBadUnitSize = errors.New("ctl: unit size must be at least 1")

	// ErrOrphanRowJmp indicates a row-jump bit without the new-row bit.
	ErrOrphanRowJmp = errors.New("ctl: row jump without new-row flag")
)

// Internal panic messages (programmer errors; no magic strings inline).
const (
	panicFinalized     = "ctl: Builder used after Finalize"
	panicBadFixedWidth = "ctl: fixed-int width must be 1, 2, 4 or 8"
	panicBadPatternID  = "ctl: pattern id exceeds MaxPatternID"
	panicBadSize       = "ctl: unit size out of range [1, MaxUnitSize]"
	panicBadRowJmp     = "ctl: row jump requires the new-row flag"
)
