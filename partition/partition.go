// Package partition - the Partition container and its read surface.
//
// Purpose:
//   - Owns the packed element array and rowptr prefix sums of one slab.
//   - All mutation goes through SetElems, Transform, the Builder, or
//     window put-back; the read surface here is allocation-free.
//
// Invariants (enforced by construction, checked by tests):
//   - rowptr is non-decreasing and rowptr[len-1] == len(elems).
//   - Columns are strictly increasing within each logical row.
//   - order names the coordinate system elems/rowptr are expressed in.
package partition

// Partition is one horizontal slab of a sparse matrix in CSR-like form.
// The zero value is not usable; construct with New.
type Partition struct {
	nrRows   int // rows of this slab (in the original matrix)
	nrCols   int // full matrix width
	nrNzeros int // nonzeros of this slab
	rowStart int // first row of this slab in the original matrix, 0-based

	order  IterOrder
	elems  []Elem
	rowptr []int

	elemsMapped bool // elems borrows a window of a parent partition
	nrDeltas    int  // pattern descriptors currently encoded
}

// New constructs an empty HORIZONTAL partition of the given shape.
// nrRows and nrCols must be positive.
//
// Complexity: O(1); storage is allocated by SetElems.
func New(nrRows, nrCols, rowStart int) (*Partition, error) {
	if nrRows <= 0 || nrCols <= 0 || rowStart < 0 {
		return nil, ErrBadShape
	}

	return &Partition{
		nrRows:   nrRows,
		nrCols:   nrCols,
		rowStart: rowStart,
		order:    Horizontal,
		rowptr:   []int{0},
	}, nil
}

// Rows returns the slab's row count in the original matrix.
func (p *Partition) Rows() int { return p.nrRows }

// Cols returns the full matrix width.
func (p *Partition) Cols() int { return p.nrCols }

// Nonzeros returns the slab's nonzero count (scalar elements plus all
// elements covered by pattern descriptors).
func (p *Partition) Nonzeros() int { return p.nrNzeros }

// RowStart returns the slab's first row in the original matrix, 0-based.
func (p *Partition) RowStart() int { return p.rowStart }

// Order returns the iteration order the element array is expressed in.
func (p *Partition) Order() IterOrder { return p.order }

// ElemsLen returns the length of the packed element array. With patterns
// encoded this is smaller than Nonzeros.
func (p *Partition) ElemsLen() int { return len(p.elems) }

// LogicalRows returns the row count of the current iteration order's
// coordinate system: len(rowptr) - 1.
func (p *Partition) LogicalRows() int { return len(p.rowptr) - 1 }

// RowPtr returns the element index where logical row i begins.
func (p *Partition) RowPtr(i int) int {
	if i < 0 || i >= len(p.rowptr) {
		panic(panicRowRange)
	}

	return p.rowptr[i]
}

// Row returns the element slice of logical row i. The slice aliases the
// partition's storage; callers may mutate element values but must preserve
// the sort invariant.
func (p *Partition) Row(i int) []Elem {
	if i < 0 || i >= p.LogicalRows() {
		panic(panicRowRange)
	}

	return p.elems[p.rowptr[i]:p.rowptr[i+1]]
}

// Elem returns the element at packed index idx.
func (p *Partition) Elem(idx int) *Elem {
	if idx < 0 || idx >= len(p.elems) {
		panic(panicElemRange)
	}

	return &p.elems[idx]
}

// Mapped reports whether the element array borrows a parent's storage
// (zero-copy window).
func (p *Partition) Mapped() bool { return p.elemsMapped }

// NrDeltas returns the number of pattern descriptors currently encoded in
// the partition.
func (p *Partition) NrDeltas() int { return p.nrDeltas }

// AddNrDeltas adjusts the encoded-descriptor counter; the pattern engine
// calls it once per rewrite pass.
func (p *Partition) AddNrDeltas(nr int) { p.nrDeltas += nr }

// SetNonzeros overrides the nonzero count. The loaders use it when a slab
// is cut from a larger stream and the count is only known afterwards.
func (p *Partition) SetNonzeros(nnz int) { p.nrNzeros = nnz }

// SetRowStart overrides the slab's first-row offset.
func (p *Partition) SetRowStart(rs int) { p.rowStart = rs }

// FindNewRowptrSize returns the rowptr length Transform(t) must produce:
// the logical row count of t's coordinate system plus one.
func (p *Partition) FindNewRowptrSize(t IterOrder) int {
	switch {
	case t == Horizontal || t == None:
		return p.nrRows + 1
	case t == Vertical:
		return p.nrCols + 1
	case t == Diagonal || t == RevDiagonal:
		return p.nrRows + p.nrCols + 1
	case t.IsBlockRow():
		return p.nrRows/t.BlockAlign() + 2
	case t.IsBlockCol():
		return p.nrCols/t.BlockAlign() + 2
	default:
		panic(panicBadOrder)
	}
}
