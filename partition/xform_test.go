// Package partition_test - unit tests for the pure coordinate transforms.
package partition_test

import (
	"testing"

	"github.com/sparsekit/csx/partition"
	"github.com/stretchr/testify/require"
)

// allKinds lists every non-sentinel iteration order.
func allKinds() []partition.IterOrder {
	kinds := make([]partition.IterOrder, 0, int(partition.NrOrders)-1)
	for t := partition.Horizontal; t < partition.NrOrders; t++ {
		kinds = append(kinds, t)
	}

	return kinds
}

// TestForwardInverseRoundTrip checks that inverse(forward(c)) == c for
// every kind over a full small grid.
func TestForwardInverseRoundTrip(t *testing.T) {
	const nrRows, nrCols = 7, 9
	for _, kind := range allKinds() {
		fwd := partition.TransformFnBetween(partition.Horizontal, kind, nrRows, nrCols)
		rev := partition.TransformFnBetween(kind, partition.Horizontal, nrRows, nrCols)

		for r := 1; r <= nrRows; r++ {
			for c := 1; c <= nrCols; c++ {
				coo := partition.CooElem{Row: r, Col: c}
				if fwd != nil {
					fwd(&coo)
				}
				if rev != nil {
					rev(&coo)
				}
				require.Equal(t, partition.CooElem{Row: r, Col: c}, coo,
					"kind %s at (%d,%d)", kind, r, c)
			}
		}
	}
}

// TestForwardInjective checks that no two source coordinates collide in
// any kind's coordinate system.
func TestForwardInjective(t *testing.T) {
	const nrRows, nrCols = 6, 6
	for _, kind := range allKinds() {
		fwd := partition.TransformFnBetween(partition.Horizontal, kind, nrRows, nrCols)
		seen := make(map[partition.CooElem]bool)
		for r := 1; r <= nrRows; r++ {
			for c := 1; c <= nrCols; c++ {
				coo := partition.CooElem{Row: r, Col: c}
				if fwd != nil {
					fwd(&coo)
				}
				require.False(t, seen[coo], "kind %s collides at (%d,%d)", kind, r, c)
				seen[coo] = true
			}
		}
	}
}

// TestVerticalSwap pins the vertical map to a plain swap.
func TestVerticalSwap(t *testing.T) {
	fn := partition.TransformFnBetween(partition.Horizontal, partition.Vertical, 4, 4)
	coo := partition.CooElem{Row: 2, Col: 3}
	fn(&coo)
	require.Equal(t, partition.CooElem{Row: 3, Col: 2}, coo)
}

// TestDiagonalMap pins the diagonal formulas: the main diagonal lands on
// logical row nrows with columns equal to the original row.
func TestDiagonalMap(t *testing.T) {
	const nrRows = 5
	fn := partition.TransformFnBetween(partition.Horizontal, partition.Diagonal, nrRows, 5)
	for i := 1; i <= nrRows; i++ {
		coo := partition.CooElem{Row: i, Col: i}
		fn(&coo)
		require.Equal(t, nrRows, coo.Row)
		require.Equal(t, i, coo.Col)
	}
}

// TestBlockRowMap pins the 2-row block fold: a 2×2 block starting at (1,1)
// becomes four consecutive columns of logical row 1.
func TestBlockRowMap(t *testing.T) {
	fn := partition.TransformFnBetween(partition.Horizontal, partition.BlockRow2, 4, 4)
	got := make([]partition.CooElem, 0, 4)
	for _, src := range []partition.CooElem{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	} {
		fn(&src)
		got = append(got, src)
	}

	require.ElementsMatch(t, []partition.CooElem{
		{Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 1, Col: 2}, {Row: 1, Col: 4},
	}, got)
}

// TestComposedTransform checks any-to-any composition against going
// through horizontal explicitly.
func TestComposedTransform(t *testing.T) {
	const nrRows, nrCols = 8, 8
	from, to := partition.Diagonal, partition.BlockCol3

	direct := partition.TransformFnBetween(from, to, nrRows, nrCols)
	rev := partition.TransformFnBetween(from, partition.Horizontal, nrRows, nrCols)
	fwd := partition.TransformFnBetween(partition.Horizontal, to, nrRows, nrCols)

	// Walk source coordinates expressed in `from` space by generating them
	// from horizontal space first.
	enter := partition.TransformFnBetween(partition.Horizontal, from, nrRows, nrCols)
	for r := 1; r <= nrRows; r++ {
		for c := 1; c <= nrCols; c++ {
			src := partition.CooElem{Row: r, Col: c}
			enter(&src)

			a, b := src, src
			direct(&a)
			rev(&b)
			fwd(&b)
			require.Equal(t, b, a)
		}
	}
}

// TestIterOrderHelpers covers names, alignment and family parsing.
func TestIterOrderHelpers(t *testing.T) {
	require.Equal(t, "HORIZONTAL", partition.Horizontal.String())
	require.Equal(t, "BLOCK_R3", partition.BlockRow3.String())
	require.Equal(t, "BLOCK_C8", partition.BlockCol8.String())

	require.Equal(t, 1, partition.Horizontal.BlockAlign())
	require.Equal(t, 4, partition.BlockRow4.BlockAlign())
	require.Equal(t, 7, partition.BlockCol7.BlockAlign())

	require.True(t, partition.BlockRow2.IsBlockRow())
	require.False(t, partition.BlockRow2.IsBlockCol())
	require.True(t, partition.BlockCol2.IsBlock())

	got, err := partition.ParseIterOrder(3)
	require.NoError(t, err)
	require.Equal(t, partition.Diagonal, got)

	_, err = partition.ParseIterOrder(99)
	require.Error(t, err)

	require.Equal(t, partition.BlockRow5, partition.BlockRow(5))
	require.Equal(t, partition.BlockCol2, partition.BlockCol(2))
}
