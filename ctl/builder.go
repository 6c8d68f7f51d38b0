// Package ctl - append-only builder for the packed control stream.
//
// Purpose:
//   - Owns the growable ctl byte vector of one partition.
//   - Emits unit headers, variable-length integers and aligned fixed-width
//     integers exactly as the SpMV-side reader expects them.
//
// Policy & Contracts:
//   - Append* methods never fail on valid arguments; invalid arguments
//     (fixed-int width not in {1,2,4,8}, pattern id > MaxPatternID, size
//     outside [1,MaxUnitSize]) are programmer errors and panic.
//   - Finalize hands out the packed bytes exactly once; any use of the
//     builder afterwards panics.
package ctl

// Builder accumulates the ctl byte stream for one partition.
// The zero value is not usable; construct with NewBuilder.
type Builder struct {
	buf       []byte
	finalized bool
}

// NewBuilder returns a Builder with capacity for sizeHint bytes.
// A zero or negative hint falls back to a small default.
//
// Complexity: O(1) plus one allocation.
func NewBuilder(sizeHint int) *Builder {
	const defaultHint = 1024
	if sizeHint <= 0 {
		sizeHint = defaultHint
	}

	return &Builder{buf: make([]byte, 0, sizeHint)}
}

// Len reports the current stream length in bytes, alignment pads included.
//
// Complexity: O(1).
func (b *Builder) Len() int {
	b.check()

	return len(b.buf)
}

// AppendVariableInt writes v using 7 payload bits per byte, little-endian,
// with 0x80 as the continuation bit. A value below 128 occupies one byte.
//
// Complexity: O(log v).
func (b *Builder) AppendVariableInt(v uint64) {
	b.check()
	for v >= 0x80 {
		b.buf = append(b.buf, byte(v)|0x80)
		v >>= 7
	}
	b.buf = append(b.buf, byte(v))
}

// AppendFixedInt pads the stream to nrBytes alignment with literal zero
// bytes, then writes v as nrBytes little-endian bytes. nrBytes must be one
// of 1, 2, 4 or 8; anything else panics.
//
// Complexity: O(nrBytes).
func (b *Builder) AppendFixedInt(v uint64, nrBytes int) {
	b.check()
	switch nrBytes {
	case 1, 2, 4, 8:
	default:
		panic(panicBadFixedWidth)
	}

	b.align(nrBytes)
	for i := 0; i < nrBytes; i++ {
		b.buf = append(b.buf, byte(v))
		v >>= 8
	}
}

// AppendCtlHead emits one unit header:
//
//	byte 0: nr|rjmp|id, byte 1: size,
//	then rowjmp (variable-int, only when nr && rowjmp > 1),
//	then ucol (variable-int, or fixed-width ucolSize bytes when fullColind).
//
// Whether ucol is variable or fixed is a stream-level agreement between the
// producer and the kernel (fullColind must be the same for every unit of a
// stream). id must not exceed MaxPatternID, size must lie in
// [1, MaxUnitSize], and a rowjmp above 1 requires nr; violations panic.
//
// Complexity: O(1) amortized.
func (b *Builder) AppendCtlHead(nr bool, rowjmp uint64, id uint8, size uint8,
	ucol uint64, ucolSize int, fullColind bool) {
	b.check()
	if id > MaxPatternID {
		panic(panicBadPatternID)
	}
	if size == 0 {
		panic(panicBadSize)
	}
	if rowjmp > 1 && !nr {
		panic(panicBadRowJmp)
	}

	head := id
	if nr {
		head |= HeadNewRowBit
	}
	if nr && rowjmp > 1 {
		head |= HeadRowJmpBit
	}
	b.buf = append(b.buf, head, size)

	if head&HeadRowJmpBit != 0 {
		b.AppendVariableInt(rowjmp)
	}

	if fullColind {
		b.AppendFixedInt(ucol, ucolSize)
	} else {
		b.AppendVariableInt(ucol)
	}
}

// Finalize shrinks the stream to its exact size and hands out ownership of
// the packed bytes. The builder is invalidated; further use panics.
//
// Complexity: O(n) for the final copy when capacity exceeds length.
func (b *Builder) Finalize() []byte {
	b.check()
	b.finalized = true

	out := b.buf
	if cap(out) > len(out) {
		out = append(make([]byte, 0, len(b.buf)), b.buf...)
	}
	b.buf = nil

	return out
}

// align pads the stream with zero bytes up to the next multiple of boundary.
// Pad bytes count toward the stream length.
func (b *Builder) align(boundary int) {
	for len(b.buf)%boundary != 0 {
		b.buf = append(b.buf, 0)
	}
}

// check guards every public method against use-after-Finalize.
func (b *Builder) check() {
	if b.finalized {
		panic(panicFinalized)
	}
}
