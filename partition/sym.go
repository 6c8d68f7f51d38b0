// Package partition - symmetric partitions: dense diagonal plus the
// strictly-lower triangle, with the m1/m2 split.
//
// For symmetric SpMV each slab stores its lower triangle once and its
// diagonal as a plain vector. The lower triangle splits into m1 (columns
// strictly before the slab's first row — "remote" contributions to other
// threads' output) and m2 (columns within the slab's own row range), each
// encoded independently. MergeMatrix is the exact inverse of DivideMatrix
// and exists for verification.
package partition

// SymPartition owns one symmetric slab.
//
// Lifecycle:
//
//	LOADED --DivideMatrix--> SPLIT --(encode m1, m2)--> SPLIT_ENCODED
//	SPLIT / SPLIT_ENCODED --MergeMatrix--> MERGED
type SymPartition struct {
	diagonal []float64
	lower    *Partition
	m1, m2   *Partition
	state    SymLifecycle
}

// SymLifecycle enumerates the symmetric partition's states.
type SymLifecycle int

const (
	// SymLoaded - the lower triangle and diagonal are filled; no split yet.
	SymLoaded SymLifecycle = iota

	// SymSplit - the lower triangle has been divided into m1 and m2.
	SymSplit

	// SymSplitEncoded - m1 and m2 carry encoded patterns.
	SymSplitEncoded

	// SymMerged - m1 and m2 have been merged back into the lower triangle.
	SymMerged
)

// NewSym constructs an empty symmetric slab of nrRows rows over an n×n
// matrix. The matrix must be square (nrCols == full dimension).
func NewSym(nrRows, nrCols, rowStart int) (*SymPartition, error) {
	lower, err := New(nrRows, nrCols, rowStart)
	if err != nil {
		return nil, err
	}

	return &SymPartition{
		lower: lower,
		state: SymLoaded,
	}, nil
}

// Lower returns the strictly-lower-triangle partition.
func (s *SymPartition) Lower() *Partition { return s.lower }

// M1 returns the remote sub-partition (nil before DivideMatrix).
func (s *SymPartition) M1() *Partition { return s.m1 }

// M2 returns the local sub-partition (nil before DivideMatrix).
func (s *SymPartition) M2() *Partition { return s.m2 }

// Diagonal returns the dense diagonal values, indexed by row - rowStart.
func (s *SymPartition) Diagonal() []float64 { return s.diagonal }

// State returns the current lifecycle state.
func (s *SymPartition) State() SymLifecycle { return s.state }

// MarkEncoded transitions SPLIT -> SPLIT_ENCODED once m1 and m2 have been
// run through the pattern engine.
func (s *SymPartition) MarkEncoded() error {
	if s.state != SymSplit {
		return ErrSymState
	}
	s.state = SymSplitEncoded

	return nil
}

// SetElems consumes src like (*Partition).SetElems, but routes each triple
// by position: strictly-lower elements go to the lower triangle, diagonal
// elements to the diagonal vector, and strictly-upper elements are
// dropped (the mirror of a lower element). The consumed count (lower +
// diagonal) is returned; when limit > 0 consumption stops once that count
// is reached at a row boundary.
func (s *SymPartition) SetElems(src CoordSource, firstRow, limit, nrElemsHint, nrRowsHint int) (int, error) {
	p := s.lower
	bld := NewBuilder(p, nrRowsHint, nrElemsHint)
	s.diagonal = make([]float64, 0, nrRowsHint)
	rowPrev := firstRow
	lowRowPrev := 1 // last local row that received a lower element
	colPrev := 0
	taken := 0

	for {
		c, ok := src.Peek()
		if !ok {
			break
		}
		if c.Row != rowPrev {
			if c.Row < rowPrev {
				return 0, ErrUnsortedInput
			}
			if limit > 0 && taken >= limit {
				break
			}
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

		localRow := c.Row - firstRow + 1
		switch {
		case c.Row > c.Col: // strictly lower
			if localRow != lowRowPrev {
				bld.NewRow(localRow - lowRowPrev)
				lowRowPrev = localRow
			}
			bld.AppendElem(Elem{Row: localRow, Col: c.Col, Val: c.Val})
			taken++
		case c.Row == c.Col:
			s.diagonal = append(s.diagonal, c.Val)
			taken++
		default: // strictly upper: mirrored elsewhere, nothing to store
		}
	}

	bld.Finalize(nrRowsHint)
	p.order = Horizontal
	p.nrNzeros = len(p.elems)

	return taken, nil
}

// DiagonalLen returns the diagonal vector length.
func (s *SymPartition) DiagonalLen() int { return len(s.diagonal) }

// DivideMatrix splits the lower triangle into m1 (col < rowStart + 1) and
// m2 (the rest) in one forward pass, emitting new-row markers relative to
// each builder's own high-water mark. Valid only in the LOADED state.
func (s *SymPartition) DivideMatrix() error {
	if s.state != SymLoaded {
		return ErrSymState
	}

	matrix := s.lower
	nrRows := matrix.LogicalRows()
	boundary := matrix.rowStart + 1

	m1, err := New(max(nrRows, 1), matrix.nrCols, matrix.rowStart)
	if err != nil {
		return err
	}
	m2, err := New(max(nrRows, 1), matrix.nrCols, matrix.rowStart)
	if err != nil {
		return err
	}

	bld1 := NewBuilder(m1, nrRows+1, matrix.ElemsLen())
	bld2 := NewBuilder(m2, nrRows+1, matrix.ElemsLen())
	rows1, rows2 := 0, 0

	for i := 0; i < nrRows; i++ {
		for j := matrix.rowptr[i]; j < matrix.rowptr[i+1]; j++ {
			e := matrix.elems[j]
			e.Row = i + 1
			if e.Col < boundary {
				if rows1 < i {
					bld1.NewRow(i - rows1)
					rows1 = i
				}
				bld1.AppendElem(e)
			} else {
				if rows2 < i {
					bld2.NewRow(i - rows2)
					rows2 = i
				}
				bld2.AppendElem(e)
			}
		}
	}

	bld1.Finalize(0)
	bld2.Finalize(0)
	m1.nrNzeros = len(m1.elems)
	m2.nrNzeros = len(m2.elems)
	m1.nrRows = m1.LogicalRows()
	m2.nrRows = m2.LogicalRows()

	s.m1, s.m2 = m1, m2
	s.state = SymSplit

	return nil
}

// MergeMatrix rebuilds the lower triangle by concatenating m1's and m2's
// rows in order; the diagonal is untouched. Valid after DivideMatrix
// (encoded or not); primarily a verification inverse.
func (s *SymPartition) MergeMatrix() error {
	if s.state != SymSplit && s.state != SymSplitEncoded {
		return ErrSymState
	}

	matrix := s.lower
	nrRows := matrix.LogicalRows()

	merged, err := New(matrix.nrRows, matrix.nrCols, matrix.rowStart)
	if err != nil {
		return err
	}
	bld := NewBuilder(merged, nrRows+1, matrix.ElemsLen())

	for i := 0; i < nrRows; i++ {
		if s.m1.LogicalRows() > i {
			for j := s.m1.rowptr[i]; j < s.m1.rowptr[i+1]; j++ {
				e := s.m1.elems[j]
				e.Row = i + 1
				bld.AppendElem(e)
			}
		}
		if s.m2.LogicalRows() > i {
			for j := s.m2.rowptr[i]; j < s.m2.rowptr[i+1]; j++ {
				e := s.m2.elems[j]
				e.Row = i + 1
				bld.AppendElem(e)
			}
		}
		bld.NewRow(1)
	}

	bld.Finalize(0)
	merged.nrNzeros = matrix.nrNzeros
	merged.order = matrix.order

	s.lower = merged
	s.m1, s.m2 = nil, nil
	s.state = SymMerged

	return nil
}
