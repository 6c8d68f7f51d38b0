// Package partition - sub-partition windows for the sampling driver.
//
// GetWindow hands out a zero-copy view for statistics gathering;
// ExtractWindow copies the rows out so they can be rewritten; PutWindow
// splices a (possibly re-encoded, possibly shrunken) window back into its
// parent, leaving every element outside the window range untouched.
package partition

// GetWindow returns a zero-copy view over length logical rows starting at
// rs. The view borrows the parent's element storage (Mapped() reports
// true); transforming it and transforming it back permutes only the
// covered span. length is clamped to the parent's logical end.
//
// Complexity: O(length) for the rebased rowptr copy.
func (p *Partition) GetWindow(rs, length int) *Partition {
	if rs < 0 || rs >= p.LogicalRows() {
		panic(panicRowRange)
	}
	if rs+length > p.LogicalRows() {
		length = p.LogicalRows() - rs
	}

	es := p.rowptr[rs]
	ee := p.rowptr[rs+length]
	rowptr := make([]int, length+1)
	for i := range rowptr {
		rowptr[i] = p.rowptr[rs+i] - es
	}

	return &Partition{
		nrRows:      length,
		nrCols:      p.nrCols,
		nrNzeros:    ee - es,
		rowStart:    p.rowStart + rs,
		order:       p.order,
		elems:       p.elems[es:ee],
		rowptr:      rowptr,
		elemsMapped: true,
	}
}

// ExtractWindow returns a copy of length logical rows starting at rs. The
// copy owns its storage, so the caller may grow or shrink it freely before
// splicing it back with PutWindow. length is clamped like GetWindow.
//
// Complexity: O(elements in the window).
func (p *Partition) ExtractWindow(rs, length int) *Partition {
	if rs < 0 || rs >= p.LogicalRows() {
		panic(panicRowRange)
	}
	if rs+length > p.LogicalRows() {
		length = p.LogicalRows() - rs
	}

	w := &Partition{
		nrRows:   length,
		nrCols:   p.nrCols,
		rowStart: p.rowStart + rs,
		order:    p.order,
		rowptr:   []int{0},
	}

	bld := NewBuilder(w, length+1, p.rowptr[rs+length]-p.rowptr[rs])
	rowPrev := 1
	end := p.PointsEnd(rs + length)
	for it := p.PointsBegin(rs); !it.Equal(end); it.Inc() {
		e := it.At()
		e.Row -= rs // re-base to window-local rows
		if e.Row != rowPrev {
			bld.NewRow(e.Row - rowPrev)
			rowPrev = e.Row
		}
		bld.AppendElem(e)
	}
	bld.Finalize(length + 1)
	w.nrNzeros = countNonzeros(w)

	return w
}

// PutWindow splices window w back into the parent at the rows it was taken
// from. The window must be in the parent's iteration order (a mismatch is
// a programmer error and panics) and must still cover the same logical row
// count. Elements outside the window's row range are untouched; tail
// rowptr entries are shifted by the window's size delta.
//
// Complexity: O(len(parent elems)).
func (p *Partition) PutWindow(w *Partition) {
	if w.order != p.order {
		panic(panicWindowType)
	}
	rs := w.rowStart - p.rowStart
	wlen := w.LogicalRows()
	if rs < 0 || rs+wlen > p.LogicalRows() {
		panic(panicWindowShape)
	}

	es := p.rowptr[rs]
	oldEnd := p.rowptr[rs+wlen]
	wcnt := len(w.elems)

	out := make([]Elem, 0, len(p.elems)-(oldEnd-es)+wcnt)
	out = append(out, p.elems[:es]...)
	out = append(out, w.elems...)
	out = append(out, p.elems[oldEnd:]...)
	p.elems = out

	for i := 0; i <= wlen; i++ {
		p.rowptr[rs+i] = es + w.rowptr[i]
	}
	delta := wcnt - (oldEnd - es)
	for i := rs + wlen + 1; i < len(p.rowptr); i++ {
		p.rowptr[i] += delta
	}
}

// countNonzeros sums scalar elements and pattern sizes.
func countNonzeros(p *Partition) int {
	nnz := 0
	for i := range p.elems {
		if pat := p.elems[i].Pattern; pat != nil {
			nnz += pat.Size()
		} else {
			nnz++
		}
	}

	return nnz
}
