// Package partition - single-producer append builder for Partition storage.
//
// The Builder is the only way element and rowptr storage is (re)built: the
// loaders, Transform, the pattern engine's row rewriter and the symmetric
// split all drive one. Finalize consumes the builder and installs the new
// storage into the partition, copying into the borrowed backing when the
// partition is a mapped window.
package partition

// Builder accumulates elements and row boundaries for one partition.
// Obtain with NewBuilder; a Builder must be finalized exactly once.
type Builder struct {
	p      *Partition
	elems  []Elem
	rowptr []int
	done   bool
}

// NewBuilder starts rebuilding p's storage. nrRowsHint and nrElemsHint are
// capacity guesses; zero is fine.
//
// Complexity: O(1) plus the hinted allocations.
func NewBuilder(p *Partition, nrRowsHint, nrElemsHint int) *Builder {
	if nrRowsHint < 1 {
		nrRowsHint = 1
	}
	rowptr := make([]int, 1, nrRowsHint+1)
	rowptr[0] = 0

	return &Builder{
		p:      p,
		elems:  make([]Elem, 0, nrElemsHint),
		rowptr: rowptr,
	}
}

// AppendElem appends one element to the current row.
func (b *Builder) AppendElem(e Elem) {
	b.elems = append(b.elems, e)
}

// ElemsCnt returns the number of elements appended so far.
func (b *Builder) ElemsCnt() int {
	return len(b.elems)
}

// NewRow closes the current row and opens a new one rdiff rows further
// down, appending rdiff copies of the current element count to rowptr
// (intervening rows are empty).
func (b *Builder) NewRow(rdiff int) {
	cnt := len(b.elems)
	for i := 0; i < rdiff; i++ {
		b.rowptr = append(b.rowptr, cnt)
	}
}

// Finalize closes the last row, optionally pads rowptr with empty rows up
// to rowptrSize entries (0 skips padding), and installs the storage into
// the partition. A mapped partition's new elements are copied into its
// borrowed backing, which must not grow.
func (b *Builder) Finalize(rowptrSize int) {
	if b.done {
		panic("partition: Builder finalized twice")
	}
	b.done = true

	cnt := len(b.elems)
	if b.rowptr[len(b.rowptr)-1] != cnt {
		b.NewRow(1)
	}
	for rowptrSize > 0 && len(b.rowptr) < rowptrSize {
		b.rowptr = append(b.rowptr, cnt)
	}

	if b.p.elemsMapped {
		if cnt > len(b.p.elems) {
			panic(panicMappedGrow)
		}
		copy(b.p.elems[:cnt], b.elems)
		b.p.elems = b.p.elems[:cnt]
	} else {
		b.p.elems = b.elems
	}
	b.p.rowptr = b.rowptr
	b.elems, b.rowptr = nil, nil
}
