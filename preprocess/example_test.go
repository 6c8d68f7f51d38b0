package preprocess_test

import (
	"fmt"

	"github.com/sparsekit/csx/partition"
	"github.com/sparsekit/csx/preprocess"
)

// ExamplePreprocess runs the whole pipeline on a small banded matrix with
// two workers and prints the fused descriptor's shape.
func ExamplePreprocess() {
	const n = 16
	coords := make([]partition.CooElem, 0, 3*n)
	for r := 1; r <= n; r++ {
		for c := r - 1; c <= r+1; c++ {
			if c >= 1 && c <= n {
				coords = append(coords, partition.CooElem{Row: r, Col: c, Val: 1})
			}
		}
	}

	cfg := preprocess.DefaultConfig()
	cfg.CPUs = []int{0, 1}

	m, err := preprocess.Preprocess(
		partition.NewSliceSource(coords), n, n, len(coords), cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("partitions:", len(m.Blobs))
	fmt.Println("rows:", m.Blobs[0].NrRows+m.Blobs[1].NrRows)
	fmt.Println("nnz:", m.Nnz)
	// Output:
	// partitions: 2
	// rows: 16
	// nnz: 46
}
