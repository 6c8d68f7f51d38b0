// Package partition - per-partition encoding statistics report.
package partition

import (
	"fmt"
	"strings"
)

// EncodeStats summarizes the pattern descriptors a partition carries after
// encoding: counts per kind, pattern density and kind transitions per row.
type EncodeStats struct {
	PerKind          [NrOrders]int // descriptors per iteration order; index None counts scalars
	NrPatterns       int           // total descriptors
	PatternNnz       int           // nonzeros covered by descriptors
	Transitions      int           // kind/size changes while walking rows
	RowsWithPatterns int           // rows carrying at least one descriptor
}

// EncodeStats walks every row once and tallies the encoded patterns.
//
// Complexity: O(len(elems)).
func (p *Partition) EncodeStats() EncodeStats {
	var st EncodeStats
	st.RowsWithPatterns = p.LogicalRows()

	for i := 0; i < p.LogicalRows(); i++ {
		row := p.Row(i)
		before := st.NrPatterns

		prevKind := None
		prevSize := 0
		if len(row) > 0 && row[0].Pattern != nil {
			prevKind = row[0].Pattern.Kind()
			prevSize = row[0].Pattern.Size()
		}

		for j := range row {
			if pat := row[j].Pattern; pat != nil {
				st.NrPatterns++
				st.PatternNnz += pat.Size()
				st.PerKind[pat.Kind()]++
				if pat.Kind() != prevKind || (prevSize != 0 && pat.Size() != prevSize) {
					st.Transitions++
				}
				prevKind, prevSize = pat.Kind(), pat.Size()
			} else {
				st.PerKind[None]++
				if prevKind != None {
					st.Transitions++
				}
				prevKind = None
			}
		}

		if st.NrPatterns == before {
			st.RowsWithPatterns--
		}
	}

	return st
}

// String renders the non-empty kinds plus the density averages.
func (s EncodeStats) String() string {
	var b strings.Builder
	encodedKinds := 0
	for t := Horizontal; t < NrOrders; t++ {
		if s.PerKind[t] > 0 {
			encodedKinds++
			fmt.Fprintf(&b, "%s: %d\n", t, s.PerKind[t])
		}
	}

	if s.NrPatterns == 0 || s.RowsWithPatterns == 0 {
		b.WriteString("no patterns encoded\n")

		return b.String()
	}

	fmt.Fprintf(&b,
		"encoded kinds = %d, avg patterns/row = %.2f, avg nonzeros/pattern = %.2f, avg transitions/row = %.2f\n",
		encodedKinds,
		float64(s.NrPatterns)/float64(s.RowsWithPatterns),
		float64(s.PatternNnz)/float64(s.NrPatterns),
		float64(s.Transitions)/float64(s.RowsWithPatterns))

	return b.String()
}
