// Package preprocess - cutting the input stream into per-worker slabs and
// adapting CSR arrays to the coordinate-stream boundary.
package preprocess

import "github.com/sparsekit/csx/partition"

// Split cuts a sorted coordinate stream into nrParts horizontal slabs of
// approximately equal nonzero count. Cuts land on row boundaries: each
// slab's budget is the remaining nonzeros divided by the remaining slabs,
// re-balanced after every cut. The final slab absorbs the remainder and
// any trailing empty rows.
//
// Complexity: O(nnz).
func Split(src partition.CoordSource, nrRows, nrCols, nrNzeros, nrParts int) ([]*partition.Partition, error) {
	if nrRows <= 0 || nrCols <= 0 || nrNzeros < 0 || nrParts <= 0 {
		return nil, ErrBadShape
	}

	parts := make([]*partition.Partition, 0, nrParts)
	rowStart := 0
	cnt := 0

	for i := 0; i < nrParts; i++ {
		remaining := nrRows - rowStart
		if remaining <= 0 {
			remaining = 1 // degenerate: more workers than rows with content
		}
		p, err := partition.New(remaining, nrCols, rowStart)
		if err != nil {
			return nil, err
		}

		last := i == nrParts-1
		limit := 0
		hint := 0
		if !last {
			limit = (nrNzeros - cnt) / (nrParts - i)
		} else {
			hint = remaining + 1 // pad trailing empty rows into the final slab
		}

		n, err := p.SetElems(src, rowStart+1, limit, limit, hint)
		if err != nil {
			return nil, err
		}
		if !last {
			p.ShrinkRows()
		}

		cnt += n
		rowStart += p.Rows()
		parts = append(parts, p)
	}

	return parts, nil
}

// SplitSym cuts a sorted lower-triangle-plus-diagonal stream into
// symmetric slabs balanced by stored element count (lower plus diagonal),
// the way the symmetric loader balances threads. The matrix must be
// square. Row advancement follows the diagonal: every slab owns as many
// rows as diagonal entries it consumed.
func SplitSym(src partition.CoordSource, nrRows, nrCols, nrStored, nrParts int) ([]*partition.SymPartition, error) {
	if nrRows <= 0 || nrCols <= 0 || nrStored < 0 || nrParts <= 0 {
		return nil, ErrBadShape
	}
	if nrRows != nrCols {
		return nil, ErrNotSquare
	}

	parts := make([]*partition.SymPartition, 0, nrParts)
	rowStart := 0
	cnt := 0

	for i := 0; i < nrParts; i++ {
		remaining := nrRows - rowStart
		if remaining <= 0 {
			remaining = 1
		}
		s, err := partition.NewSym(remaining, nrCols, rowStart)
		if err != nil {
			return nil, err
		}

		last := i == nrParts-1
		limit := 0
		hint := 0
		if !last {
			limit = (nrStored - cnt) / (nrParts - i)
		} else {
			hint = remaining + 1
		}

		n, err := s.SetElems(src, rowStart+1, limit, limit, hint)
		if err != nil {
			return nil, err
		}
		if !last {
			s.Lower().ShrinkRows()
		}

		cnt += n
		rowStart += s.DiagonalLen()
		parts = append(parts, s)
	}

	return parts, nil
}

// CSRSource streams a CSR matrix as sorted one-based coordinates. Both
// zero- and one-based CSR index conventions are accepted; the stream is
// always one-based.
type CSRSource struct {
	rowptr []int
	colind []int
	values []float64
	base   int // 0 or 1, the CSR arrays' own convention
	row    int // current 0-based row
	pos    int // cursor into colind/values
}

// NewCSRSource wraps CSR arrays without copying. rowptr has one entry per
// row plus one; oneBased names the convention colind and rowptr use.
func NewCSRSource(rowptr, colind []int, values []float64, oneBased bool) *CSRSource {
	base := 0
	if oneBased {
		base = 1
	}

	return &CSRSource{rowptr: rowptr, colind: colind, values: values, base: base}
}

// Peek implements partition.CoordSource.
func (s *CSRSource) Peek() (partition.CooElem, bool) {
	for s.row < len(s.rowptr)-1 && s.pos >= s.rowptr[s.row+1]-s.base {
		s.row++
	}
	if s.pos >= len(s.colind) {
		return partition.CooElem{}, false
	}

	return partition.CooElem{
		Row: s.row + 1,
		Col: s.colind[s.pos] - s.base + 1,
		Val: s.values[s.pos],
	}, true
}

// Next implements partition.CoordSource.
func (s *CSRSource) Next() (partition.CooElem, bool) {
	c, ok := s.Peek()
	if ok {
		s.pos++
	}

	return c, ok
}
