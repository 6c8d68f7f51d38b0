// Package partition - the point iterator over a partition's elements.
package partition

// PointIter walks a partition's elements in storage order, reconstructing
// each element's logical row from rowptr and skipping empty rows. Two
// iterators are equal iff partition, row index and element index all
// match.
//
// The iterator never clones pattern descriptors: the Elem it yields shares
// the stored descriptor, which is immutable by contract.
type PointIter struct {
	p       *Partition
	rowIdx  int
	elemIdx int
}

// PointsBegin returns an iterator positioned at the first element of
// logical row ridx (or the first non-empty row after it).
func (p *Partition) PointsBegin(ridx int) PointIter {
	if ridx < 0 || ridx >= len(p.rowptr) {
		panic(panicRowRange)
	}
	for ridx+1 < len(p.rowptr) && p.rowptr[ridx] == p.rowptr[ridx+1] {
		ridx++
	}

	return PointIter{p: p, rowIdx: ridx, elemIdx: p.rowptr[ridx]}
}

// PointsEnd returns the past-the-end iterator for logical rows [0, ridx);
// a zero ridx means the end of the whole partition. Like PointsBegin, the
// position normalizes across empty rows, so the two meet even when the
// range ends in an empty span.
func (p *Partition) PointsEnd(ridx int) PointIter {
	if ridx == 0 {
		ridx = p.LogicalRows()
	}
	if ridx < 0 || ridx >= len(p.rowptr) {
		panic(panicRowRange)
	}
	for ridx+1 < len(p.rowptr) && p.rowptr[ridx] == p.rowptr[ridx+1] {
		ridx++
	}

	return PointIter{p: p, rowIdx: ridx, elemIdx: p.rowptr[ridx]}
}

// Equal reports iterator equality over all three fields.
func (it PointIter) Equal(other PointIter) bool {
	return it.p == other.p && it.rowIdx == other.rowIdx && it.elemIdx == other.elemIdx
}

// Inc advances to the next element, skipping empty rows.
func (it *PointIter) Inc() {
	if it.elemIdx >= len(it.p.elems) {
		panic(panicElemRange)
	}
	it.elemIdx++
	for it.rowIdx+1 < len(it.p.rowptr) && it.p.rowptr[it.rowIdx+1] == it.elemIdx {
		it.rowIdx++
	}
}

// At returns the current element by value, with Row set to the 1-based
// logical row of the partition's current iteration order. The pattern
// pointer (if any) is shared, not cloned.
func (it PointIter) At() Elem {
	e := it.p.elems[it.elemIdx]
	e.Row = it.rowIdx + 1

	return e
}
