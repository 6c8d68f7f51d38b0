// Package partition - filling a partition from a sorted coordinate stream.
package partition

// CoordSource streams coordinate triples in row-major order with strictly
// increasing columns within a row. Peek exposes the next triple without
// consuming it, so a consumer can stop at a row boundary and leave the
// remainder to the next consumer (the nnz-balanced partitioner relies on
// this).
type CoordSource interface {
	// Peek returns the next triple without consuming it; ok is false when
	// the stream is exhausted.
	Peek() (c CooElem, ok bool)

	// Next consumes and returns the next triple.
	Next() (c CooElem, ok bool)
}

// SliceSource adapts a coordinate slice to CoordSource.
type SliceSource struct {
	elems []CooElem
	pos   int
}

// NewSliceSource wraps elems without copying; the slice must stay
// untouched while the source is in use.
func NewSliceSource(elems []CooElem) *SliceSource {
	return &SliceSource{elems: elems}
}

// Peek implements CoordSource.
func (s *SliceSource) Peek() (CooElem, bool) {
	if s.pos >= len(s.elems) {
		return CooElem{}, false
	}

	return s.elems[s.pos], true
}

// Next implements CoordSource.
func (s *SliceSource) Next() (CooElem, bool) {
	c, ok := s.Peek()
	if ok {
		s.pos++
	}

	return c, ok
}

// Remaining reports how many triples have not been consumed yet.
func (s *SliceSource) Remaining() int {
	return len(s.elems) - s.pos
}

// SetElems consumes src until it is exhausted or, when limit > 0, until
// the element count reaches limit at a row boundary. Rows in the stream
// are global (firstRow names the first one); stored rows are re-based to
// the partition-local 1-based coordinate system. On success the partition
// holds the consumed elements in HORIZONTAL order and the consumed count
// is returned, also recorded as the nonzero count.
//
// nrElemsHint and nrRowsHint size the builder's allocations; when
// nrRowsHint > 0 the final rowptr is padded with empty rows to exactly
// nrRowsHint entries.
//
// Errors: ErrUnsortedInput for a row or column regression,
// ErrColOutOfRange for a column outside [1, Cols()].
//
// Complexity: O(consumed).
func (p *Partition) SetElems(src CoordSource, firstRow, limit, nrElemsHint, nrRowsHint int) (int, error) {
	bld := NewBuilder(p, nrRowsHint, nrElemsHint)
	rowPrev := firstRow
	colPrev := 0

	for {
		c, ok := src.Peek()
		if !ok {
			break
		}
		if c.Row != rowPrev {
			if c.Row < rowPrev {
				return 0, ErrUnsortedInput
			}
			if limit > 0 && bld.ElemsCnt() >= limit {
				break
			}
			bld.NewRow(c.Row - rowPrev)
			rowPrev = c.Row
			colPrev = 0
		}
		if c.Col <= colPrev {
			return 0, ErrUnsortedInput
		}
		if c.Col < 1 || c.Col > p.nrCols {
			return 0, ErrColOutOfRange
		}
		colPrev = c.Col

		src.Next()
		bld.AppendElem(Elem{Row: c.Row - firstRow + 1, Col: c.Col, Val: c.Val})
	}

	cnt := bld.ElemsCnt()
	bld.Finalize(nrRowsHint)
	p.order = Horizontal
	p.nrNzeros = cnt

	return cnt, nil
}

// ShrinkRows trims the slab's declared row count to the rows actually
// present (LogicalRows). The partitioner calls it after a limited
// SetElems, when the slab's extent is only known once the cut is made.
func (p *Partition) ShrinkRows() {
	p.nrRows = p.LogicalRows()
}

// setRowsFromElems rebuilds the partition from an already-sorted,
// partition-local element buffer (patterns preserved). Internal: callers
// guarantee sortedness, so violations panic.
func (p *Partition) setRowsFromElems(buf []Elem, rowptrSize, nrElemsHint int) {
	bld := NewBuilder(p, rowptrSize, nrElemsHint)
	rowPrev := 1
	for i := range buf {
		e := &buf[i]
		if e.Row != rowPrev {
			if e.Row < rowPrev {
				panic(panicRowRange)
			}
			bld.NewRow(e.Row - rowPrev)
			rowPrev = e.Row
		}
		bld.AppendElem(*e)
	}
	bld.Finalize(rowptrSize)
}
