// Package partition_test - unit and property tests for the Partition
// container: construction, transforms and the §8 invariants over the
// pattern-free baseline.
package partition_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/sparsekit/csx/partition"
	"github.com/stretchr/testify/require"
)

// buildPartition loads coords into a fresh partition of the given shape.
func buildPartition(t *testing.T, nrRows, nrCols int, coords []partition.CooElem) *partition.Partition {
	t.Helper()
	p, err := partition.New(nrRows, nrCols, 0)
	require.NoError(t, err)

	n, err := p.SetElems(partition.NewSliceSource(coords), 1, 0, len(coords), nrRows+1)
	require.NoError(t, err)
	require.Equal(t, len(coords), n)

	return p
}

// randomCoords generates a deterministic sparse coordinate set in
// row-major strictly-sorted order.
func randomCoords(seed int64, nrRows, nrCols int, density float64) []partition.CooElem {
	rng := rand.New(rand.NewSource(seed))
	coords := make([]partition.CooElem, 0, int(float64(nrRows*nrCols)*density)+1)
	for r := 1; r <= nrRows; r++ {
		for c := 1; c <= nrCols; c++ {
			if rng.Float64() < density {
				coords = append(coords, partition.CooElem{Row: r, Col: c, Val: rng.Float64()})
			}
		}
	}

	return coords
}

// collectCoords walks the partition and returns its element multiset in
// the current coordinate system, sorted for comparison.
func collectCoords(p *partition.Partition) []partition.CooElem {
	out := make([]partition.CooElem, 0, p.ElemsLen())
	end := p.PointsEnd(0)
	for it := p.PointsBegin(0); !it.Equal(end); it.Inc() {
		e := it.At()
		out = append(out, e.Coo())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}

// TestNewBadShape rejects non-positive dimensions.
func TestNewBadShape(t *testing.T) {
	_, err := partition.New(0, 5, 0)
	require.ErrorIs(t, err, partition.ErrBadShape)

	_, err = partition.New(5, 0, 0)
	require.ErrorIs(t, err, partition.ErrBadShape)

	_, err = partition.New(5, 5, -1)
	require.ErrorIs(t, err, partition.ErrBadShape)
}

// TestSetElemsBasic loads a tiny matrix and checks rowptr prefix sums and
// element order.
func TestSetElemsBasic(t *testing.T) {
	p := buildPartition(t, 3, 4, []partition.CooElem{
		{Row: 1, Col: 1, Val: 1}, {Row: 1, Col: 3, Val: 2},
		{Row: 2, Col: 2, Val: 3},
		{Row: 3, Col: 4, Val: 4},
	})

	require.Equal(t, partition.Horizontal, p.Order())
	require.Equal(t, 4, p.ElemsLen())
	require.Equal(t, 4, p.Nonzeros())
	require.Equal(t, 3, p.LogicalRows())
	require.Equal(t, 0, p.RowPtr(0))
	require.Equal(t, 2, p.RowPtr(1))
	require.Equal(t, 3, p.RowPtr(2))
	require.Equal(t, 4, p.RowPtr(3))
}

// TestSetElemsEmptyRows checks the rdiff fill for skipped rows.
func TestSetElemsEmptyRows(t *testing.T) {
	p := buildPartition(t, 5, 3, []partition.CooElem{
		{Row: 1, Col: 1, Val: 1},
		{Row: 4, Col: 2, Val: 2}, // rows 2 and 3 are empty
	})

	require.Equal(t, 5, p.LogicalRows())
	require.Equal(t, []int{0, 1, 1, 1, 2, 2},
		[]int{p.RowPtr(0), p.RowPtr(1), p.RowPtr(2), p.RowPtr(3), p.RowPtr(4), p.RowPtr(5)})
}

// TestSetElemsLimit stops at a row boundary once the limit is reached and
// leaves the remainder in the source.
func TestSetElemsLimit(t *testing.T) {
	coords := []partition.CooElem{
		{Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 1},
		{Row: 3, Col: 3},
	}
	src := partition.NewSliceSource(coords)

	p, err := partition.New(3, 3, 0)
	require.NoError(t, err)

	n, err := p.SetElems(src, 1, 2, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 2, n) // stopped before row 2

	next, ok := src.Peek()
	require.True(t, ok)
	require.Equal(t, 2, next.Row)

	p.ShrinkRows()
	require.Equal(t, 1, p.Rows())
}

// TestSetElemsUnsorted rejects row and column regressions.
func TestSetElemsUnsorted(t *testing.T) {
	p, err := partition.New(3, 3, 0)
	require.NoError(t, err)
	_, err = p.SetElems(partition.NewSliceSource([]partition.CooElem{
		{Row: 2, Col: 1}, {Row: 1, Col: 1},
	}), 1, 0, 0, 0)
	require.ErrorIs(t, err, partition.ErrUnsortedInput)

	p, err = partition.New(3, 3, 0)
	require.NoError(t, err)
	_, err = p.SetElems(partition.NewSliceSource([]partition.CooElem{
		{Row: 1, Col: 2}, {Row: 1, Col: 1},
	}), 1, 0, 0, 0)
	require.ErrorIs(t, err, partition.ErrUnsortedInput)
}

// TestSetElemsColOutOfRange rejects columns outside the matrix width.
func TestSetElemsColOutOfRange(t *testing.T) {
	p, err := partition.New(2, 3, 0)
	require.NoError(t, err)
	_, err = p.SetElems(partition.NewSliceSource([]partition.CooElem{
		{Row: 1, Col: 4},
	}), 1, 0, 0, 0)
	require.ErrorIs(t, err, partition.ErrColOutOfRange)
}

// TestEmptyPartition checks that all operations tolerate zero nonzeros.
func TestEmptyPartition(t *testing.T) {
	p := buildPartition(t, 4, 4, nil)
	require.Equal(t, 0, p.ElemsLen())

	for _, kind := range allKinds() {
		p.Transform(kind)
		require.Equal(t, kind, p.Order())
		require.Equal(t, 0, p.ElemsLen())
		require.Equal(t, p.ElemsLen(), p.RowPtr(p.LogicalRows()))
		p.Transform(partition.Horizontal)
	}
}

// TestTransformRoundTrip is §8 property 1: Transform(a); Transform(b);
// Transform(HORIZONTAL) preserves the element multiset, for every ordered
// pair of kinds.
func TestTransformRoundTrip(t *testing.T) {
	coords := randomCoords(42, 12, 10, 0.3)
	baseline := buildPartition(t, 12, 10, coords)
	want := collectCoords(baseline)

	for _, a := range allKinds() {
		for _, b := range allKinds() {
			p := buildPartition(t, 12, 10, coords)
			p.Transform(a)
			p.Transform(b)
			p.Transform(partition.Horizontal)
			require.Equal(t, want, collectCoords(p), "kinds %s -> %s", a, b)
		}
	}
}

// TestTransformSortInvariant is §8 property 2: after any Transform every
// row's columns are strictly increasing.
func TestTransformSortInvariant(t *testing.T) {
	coords := randomCoords(7, 16, 16, 0.25)
	for _, kind := range allKinds() {
		p := buildPartition(t, 16, 16, coords)
		p.Transform(kind)

		for i := 0; i < p.LogicalRows(); i++ {
			row := p.Row(i)
			for j := 1; j < len(row); j++ {
				require.Greater(t, row[j].Col, row[j-1].Col,
					"kind %s row %d", kind, i)
			}
		}
	}
}

// TestTransformRowptrPrefix is §8 property 3: the final rowptr entry
// always equals the element count, and rowptr has the length
// FindNewRowptrSize demands.
func TestTransformRowptrPrefix(t *testing.T) {
	coords := randomCoords(3, 10, 14, 0.2)
	for _, kind := range allKinds() {
		p := buildPartition(t, 10, 14, coords)
		p.Transform(kind)

		require.Equal(t, p.FindNewRowptrSize(kind), p.LogicalRows()+1, "kind %s", kind)
		require.Equal(t, p.ElemsLen(), p.RowPtr(p.LogicalRows()), "kind %s", kind)
		for i := 1; i <= p.LogicalRows(); i++ {
			require.GreaterOrEqual(t, p.RowPtr(i), p.RowPtr(i-1))
		}
	}
}

// TestFindNewRowptrSize pins the per-kind formulas.
func TestFindNewRowptrSize(t *testing.T) {
	p, err := partition.New(10, 14, 0)
	require.NoError(t, err)

	require.Equal(t, 11, p.FindNewRowptrSize(partition.Horizontal))
	require.Equal(t, 15, p.FindNewRowptrSize(partition.Vertical))
	require.Equal(t, 25, p.FindNewRowptrSize(partition.Diagonal))
	require.Equal(t, 25, p.FindNewRowptrSize(partition.RevDiagonal))
	require.Equal(t, 10/3+2, p.FindNewRowptrSize(partition.BlockRow3))
	require.Equal(t, 14/4+2, p.FindNewRowptrSize(partition.BlockCol4))
}

// TestPointIterEquality covers the three-field equality contract and
// empty-row skipping.
func TestPointIterEquality(t *testing.T) {
	p := buildPartition(t, 4, 4, []partition.CooElem{
		{Row: 2, Col: 1, Val: 1}, // row 1 empty
		{Row: 4, Col: 2, Val: 2}, // row 3 empty
	})

	it := p.PointsBegin(0)
	require.Equal(t, 2, it.At().Row) // skipped the empty first row

	other := p.PointsBegin(0)
	require.True(t, it.Equal(other))

	it.Inc()
	require.False(t, it.Equal(other))
	require.Equal(t, 4, it.At().Row)

	it.Inc()
	require.True(t, it.Equal(p.PointsEnd(0)))
}

// TestSingleRowTransforms: a single-row slab transforms to every kind and
// back without loss.
func TestSingleRowTransforms(t *testing.T) {
	coords := []partition.CooElem{
		{Row: 1, Col: 1, Val: 1}, {Row: 1, Col: 3, Val: 2}, {Row: 1, Col: 7, Val: 3},
	}
	want := collectCoords(buildPartition(t, 1, 8, coords))

	for _, kind := range allKinds() {
		p := buildPartition(t, 1, 8, coords)
		p.Transform(kind)
		p.Transform(partition.Horizontal)
		require.Equal(t, want, collectCoords(p), "kind %s", kind)
	}
}
