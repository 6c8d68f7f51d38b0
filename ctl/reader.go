// Package ctl - unit decoder matching the Builder's layout.
//
// The Reader exists for the verification decoder in csxmat and for tests;
// the production consumer of ctl streams is the (external) SpMV kernel.
package ctl

// UnitHead is one decoded unit header, row jump and ucol included.
type UnitHead struct {
	NewRow bool   // unit starts a new row
	RowJmp uint64 // rows advanced when NewRow (always >= 1 when NewRow)
	ID     uint8  // pattern id; 0 = plain delta unit
	Size   uint8  // elements covered by the unit, 1..255
	UCol   uint64 // initial column delta from the previous unit
}

// Reader walks a finalized ctl stream unit by unit. fullColind and ucolSize
// mirror the producer-side arguments of AppendCtlHead: they are stream-level
// properties, so the Reader carries them instead of every unit.
type Reader struct {
	buf        []byte
	pos        int
	fullColind bool
	ucolSize   int
}

// NewReader wraps a finalized ctl stream. When fullColind is set, ucol
// fields are decoded as ucolSize-byte aligned little-endian integers;
// otherwise as variable-ints. Widths other than 1, 2, 4 or 8 panic.
func NewReader(buf []byte, fullColind bool, ucolSize int) *Reader {
	switch ucolSize {
	case 1, 2, 4, 8:
	default:
		panic(panicBadFixedWidth)
	}

	return &Reader{buf: buf, fullColind: fullColind, ucolSize: ucolSize}
}

// More reports whether at least one more byte remains.
func (r *Reader) More() bool {
	return r.pos < len(r.buf)
}

// Pos reports the current byte offset into the stream.
func (r *Reader) Pos() int {
	return r.pos
}

// ReadVariableInt decodes one variable-length integer at the cursor.
func (r *Reader) ReadVariableInt() (uint64, error) {
	var v uint64
	var shift uint
	for {
		if r.pos >= len(r.buf) {
			return 0, ErrTruncated
		}
		c := r.buf[r.pos]
		r.pos++
		v |= uint64(c&0x7f) << shift
		if c < 0x80 {
			return v, nil
		}
		shift += 7
	}
}

// ReadFixedInt skips the alignment pad the builder emitted, then decodes
// nrBytes little-endian bytes.
func (r *Reader) ReadFixedInt(nrBytes int) (uint64, error) {
	for r.pos%nrBytes != 0 {
		if r.pos >= len(r.buf) {
			return 0, ErrTruncated
		}
		r.pos++
	}
	if r.pos+nrBytes > len(r.buf) {
		return 0, ErrTruncated
	}

	var v uint64
	for i := nrBytes - 1; i >= 0; i-- {
		v = v<<8 | uint64(r.buf[r.pos+i])
	}
	r.pos += nrBytes

	return v, nil
}

// ReadUnitHead decodes the next unit: header bytes, optional row jump and
// the initial column delta.
func (r *Reader) ReadUnitHead() (UnitHead, error) {
	var h UnitHead
	if r.pos+2 > len(r.buf) {
		return h, ErrTruncated
	}

	b0 := r.buf[r.pos]
	h.NewRow = b0&HeadNewRowBit != 0
	h.ID = b0 & HeadIDMask
	h.Size = r.buf[r.pos+1]
	r.pos += 2
	if h.Size == 0 {
		return h, ErrBadUnitSize
	}

	hasJmp := b0&HeadRowJmpBit != 0
	if hasJmp && !h.NewRow {
		return h, ErrOrphanRowJmp
	}
	if h.NewRow {
		h.RowJmp = 1
	}
	if hasJmp {
		jmp, err := r.ReadVariableInt()
		if err != nil {
			return h, err
		}
		h.RowJmp = jmp
	}

	var (
		ucol uint64
		err  error
	)
	if r.fullColind {
		ucol, err = r.ReadFixedInt(r.ucolSize)
	} else {
		ucol, err = r.ReadVariableInt()
	}
	if err != nil {
		return h, err
	}
	h.UCol = ucol

	return h, nil
}
