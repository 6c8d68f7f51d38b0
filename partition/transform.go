// Package partition - lossless geometric transform between iteration
// orders.
//
// Policy & Contracts:
//   - Transform(t) is a no-op when the partition is already in t.
//   - The element multiset is preserved exactly; only coordinates and the
//     storage order change.
//   - Intra-family transforms ({HORIZONTAL, BLOCK_ROW_k} or
//     {VERTICAL, BLOCK_COL_k}) only permute elements within groups of
//     lcm(old_align, new_align) source rows, so the re-sort runs on those
//     bounded groups; cross-family transforms sort globally.
package partition

import "sort"

// Transform rewrites the partition into iteration order t: every element
// is remapped through the composite coordinate transform, the buffer is
// re-sorted, and storage is rebuilt with rowptr sized to
// FindNewRowptrSize(t).
//
// Complexity: O(n log n) for cross-family transforms; intra-family
// transforms sort only within lcm-sized row groups.
func (p *Partition) Transform(t IterOrder) {
	if t == None || p.order == t {
		return
	}

	fn := TransformFnBetween(p.order, t, p.nrRows, p.nrCols)
	buf := make([]Elem, 0, len(p.elems))
	end := p.PointsEnd(0)
	for it := p.PointsBegin(0); !it.Equal(end); it.Inc() {
		e := it.At()
		if fn != nil {
			c := e.Coo()
			fn(&c)
			e.Row, e.Col = c.Row, c.Col
		}
		buf = append(buf, e)
	}

	if sameFamily(p.order, t) {
		// Group size in source rows: lcm of both alignments, expressed in
		// multiples of the source alignment.
		k := lcm(p.order.BlockAlign(), t.BlockAlign()) / p.order.BlockAlign()
		start := 0
		for i := k; i < p.LogicalRows(); i += k {
			grpEnd := start + (p.rowptr[i] - p.rowptr[i-k])
			sortElems(buf[start:grpEnd])
			start = grpEnd
		}
		sortElems(buf[start:])
	} else {
		sortElems(buf)
	}

	p.setRowsFromElems(buf, p.FindNewRowptrSize(t), len(buf))
	p.order = t
}

// sortElems orders a buffer by (row, col); coordinates are unique, so no
// stability is needed.
func sortElems(buf []Elem) {
	sort.Slice(buf, func(i, j int) bool {
		if buf[i].Row != buf[j].Row {
			return buf[i].Row < buf[j].Row
		}

		return buf[i].Col < buf[j].Col
	})
}

// gcd is the classic Euclid reduction.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm of two positive alignments.
func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
