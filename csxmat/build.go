// Package csxmat - serializing an encoded partition into its CSX blob.
//
// Unit emission walks the final HORIZONTAL form row by row. Each pattern
// descriptor becomes one unit; stretches of scalar elements become plain
// units of up to 255 elements whose payload carries the remaining column
// deltas. The first unit of every non-empty row sets the new-row flag,
// with the jump emitted when empty rows were skipped.
package csxmat

import (
	"github.com/sparsekit/csx/ctl"
	"github.com/sparsekit/csx/partition"
)

// Build serializes p, which must be in HORIZONTAL order (the pattern
// engine's final state).
//
// Complexity: O(len(elems) + nnz).
func Build(p *partition.Partition, opts Options) (*Blob, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if p.Order() != partition.Horizontal {
		return nil, ErrNotHorizontal
	}

	blob := &Blob{
		RowStart:   p.RowStart(),
		NrRows:     p.Rows(),
		NrCols:     p.Cols(),
		Nnz:        p.Nonzeros(),
		FullColind: opts.FullColind,
		UColSize:   opts.UColSize,
	}

	bld := ctl.NewBuilder(p.ElemsLen() * 3)
	values := make([]float64, 0, p.Nonzeros())
	// One entry per partition row; rows past the stored content (possible
	// when nothing was encoded into the trailing rows) resolve to the
	// stream end below.
	rowptr := make([]int, p.Rows())
	ids := make(map[PatternKey]uint8)

	prevRow := 0 // 1-based last row that emitted a unit; 0 before any
	for i := 0; i < p.LogicalRows() && i < len(rowptr); i++ {
		rowptr[i] = bld.Len()
		row := p.Row(i)
		if len(row) == 0 {
			continue
		}

		newRow := true
		rowjmp := uint64(i + 1 - prevRow)
		prevRow = i + 1
		lastCol := 0

		for j := 0; j < len(row); {
			if pat := row[j].Pattern; pat != nil {
				if pat.Size() > ctl.MaxUnitSize {
					return nil, ErrUnitTooLong
				}
				key := PatternKey{Kind: pat.Kind(), Delta: pat.Delta()}
				id, ok := ids[key]
				if !ok {
					if len(blob.Patterns) >= ctl.MaxPatternID {
						return nil, ErrTooManyPatterns
					}
					blob.Patterns = append(blob.Patterns, key)
					id = uint8(len(blob.Patterns))
					ids[key] = id
				}

				bld.AppendCtlHead(newRow, rowjmp, id, uint8(pat.Size()),
					uint64(row[j].Col-lastCol), opts.UColSize, opts.FullColind)
				values = append(values, row[j].Vals...)
				lastCol = unitEndCol(&row[j])
				j++
			} else {
				start := j
				for j < len(row) && row[j].Pattern == nil && j-start < ctl.MaxUnitSize {
					j++
				}
				bld.AppendCtlHead(newRow, rowjmp, 0, uint8(j-start),
					uint64(row[start].Col-lastCol), opts.UColSize, opts.FullColind)
				for k := start + 1; k < j; k++ {
					bld.AppendVariableInt(uint64(row[k].Col - row[k-1].Col))
				}
				for k := start; k < j; k++ {
					values = append(values, row[k].Val)
				}
				lastCol = row[j-1].Col
			}
			newRow = false
			rowjmp = 0
		}
	}

	if len(values) != p.Nonzeros() {
		return nil, ErrValueCount
	}

	for i := p.LogicalRows(); i < len(rowptr); i++ {
		rowptr[i] = bld.Len()
	}

	blob.Ctl = bld.Finalize()
	blob.Values = values
	blob.RowPtr = rowptr

	return blob, nil
}

// BuildSym serializes a divided symmetric partition: the diagonal is
// copied dense, m1 and m2 serialize independently.
func BuildSym(s *partition.SymPartition, opts Options) (*SymBlob, error) {
	if s.State() != partition.SymSplit && s.State() != partition.SymSplitEncoded {
		return nil, ErrSymState
	}

	m1, err := Build(s.M1(), opts)
	if err != nil {
		return nil, err
	}
	m2, err := Build(s.M2(), opts)
	if err != nil {
		return nil, err
	}

	return &SymBlob{
		Diagonal: append([]float64(nil), s.Diagonal()...),
		M1:       m1,
		M2:       m2,
		RowStart: s.Lower().RowStart(),
		NrRows:   s.Lower().Rows(),
	}, nil
}

// unitEndCol is the column the next unit's delta is measured from: the
// last covered column for horizontal-geometry patterns, the anchor for
// every other kind (whose remaining elements live on other rows).
func unitEndCol(e *partition.Elem) int {
	if e.Pattern.Kind() == partition.Horizontal {
		return e.Col + e.Pattern.ColSpan()
	}

	return e.Col
}
