package drle_test

import (
	"fmt"

	"github.com/sparsekit/csx/drle"
	"github.com/sparsekit/csx/partition"
)

// ExampleManager_EncodeAll encodes a matrix carrying one dense diagonal
// and one horizontal run: the diagonal wins the first round, the leftover
// horizontal elements stay scalar.
//
// Matrix (6×6):
//
//	d . . . . .
//	. d h h h h
//	. . d . . .
//	. . . d . .
//	. . . . d .
//	. . . . . d
func ExampleManager_EncodeAll() {
	coords := make([]partition.CooElem, 0, 10)
	for i := 1; i <= 6; i++ {
		coords = append(coords, partition.CooElem{Row: i, Col: i, Val: 1})
		if i == 2 {
			for c := 3; c <= 6; c++ {
				coords = append(coords, partition.CooElem{Row: 2, Col: c, Val: 2})
			}
		}
	}

	p, _ := partition.New(6, 6, 0)
	_, _ = p.SetElems(partition.NewSliceSource(coords), 1, 0, len(coords), 7)

	opts := drle.DefaultOptions()
	opts.Kinds = []partition.IterOrder{partition.Horizontal, partition.Diagonal}
	m, _ := drle.NewManager(p, opts)
	m.EncodeAll()

	for i := 0; i < p.ElemsLen(); i++ {
		e := p.Elem(i)
		if e.Pattern != nil {
			fmt.Printf("pattern %s size=%d delta=%d at col %d\n",
				e.Pattern.Kind(), e.Pattern.Size(), e.Pattern.Delta(), e.Col)

			continue
		}
		fmt.Printf("scalar at col %d\n", e.Col)
	}
	// Output:
	// pattern DIAGONAL size=6 delta=1 at col 1
	// scalar at col 3
	// scalar at col 4
	// scalar at col 5
	// scalar at col 6
}
