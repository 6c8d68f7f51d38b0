// Package csxmat - the verification decoder: ctl + values back to the
// coordinate multiset.
package csxmat

import (
	"github.com/sparsekit/csx/ctl"
	"github.com/sparsekit/csx/partition"
)

// Decode expands a blob into partition-local one-based coordinates, in
// emission order. Pattern units are reversed through the pattern's own
// coordinate system exactly as the encoder laid them out; the result is
// multiset-equal to the pre-encoding elements (order may differ).
func Decode(b *Blob) ([]partition.CooElem, error) {
	r := ctl.NewReader(b.Ctl, b.FullColind, b.UColSize)
	out := make([]partition.CooElem, 0, b.Nnz)
	vi := 0

	row := 0 // 1-based once the first new-row unit arrives
	lastCol := 0

	for r.More() {
		h, err := r.ReadUnitHead()
		if err != nil {
			return nil, err
		}
		if h.NewRow {
			row += int(h.RowJmp)
			lastCol = 0
		}

		col := lastCol + int(h.UCol)
		if h.ID == 0 {
			if vi+int(h.Size) > len(b.Values) {
				return nil, ErrValueCount
			}
			out = append(out, partition.CooElem{Row: row, Col: col, Val: b.Values[vi]})
			vi++
			for k := 1; k < int(h.Size); k++ {
				d, err := r.ReadVariableInt()
				if err != nil {
					return nil, err
				}
				col += int(d)
				out = append(out, partition.CooElem{Row: row, Col: col, Val: b.Values[vi]})
				vi++
			}
			lastCol = col

			continue
		}

		if int(h.ID) > len(b.Patterns) {
			return nil, ErrBadPatternID
		}
		key := b.Patterns[h.ID-1]
		if vi+int(h.Size) > len(b.Values) {
			return nil, ErrValueCount
		}

		// Anchor in horizontal space; generate in the pattern's own space;
		// map every generated coordinate back.
		fwd := partition.TransformFnBetween(partition.Horizontal, key.Kind, b.NrRows, b.NrCols)
		rev := partition.TransformFnBetween(key.Kind, partition.Horizontal, b.NrRows, b.NrCols)

		anchor := partition.CooElem{Row: row, Col: col}
		if fwd != nil {
			fwd(&anchor)
		}
		pat := partition.NewPattern(int(h.Size), key.Delta, key.Kind)
		for _, c := range pat.Generate(anchor) {
			if rev != nil {
				rev(&c)
			}
			c.Val = b.Values[vi]
			vi++
			out = append(out, c)
		}

		if key.Kind == partition.Horizontal {
			lastCol = col + pat.ColSpan()
		} else {
			lastCol = col
		}
	}

	if vi != len(b.Values) {
		return nil, ErrValueCount
	}

	return out, nil
}

// DecodeSym expands a symmetric blob: the merged lower triangle (m1 rows
// then m2 rows) plus the diagonal as explicit coordinates.
func DecodeSym(b *SymBlob) ([]partition.CooElem, error) {
	m1, err := Decode(b.M1)
	if err != nil {
		return nil, err
	}
	m2, err := Decode(b.M2)
	if err != nil {
		return nil, err
	}

	out := make([]partition.CooElem, 0, len(m1)+len(m2)+len(b.Diagonal))
	out = append(out, m1...)
	out = append(out, m2...)
	for i, v := range b.Diagonal {
		d := b.RowStart + i + 1
		out = append(out, partition.CooElem{Row: i + 1, Col: d, Val: v})
	}

	return out, nil
}
