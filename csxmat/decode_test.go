// Package csxmat_test - decoder tests, §8 property 6 (multiset round
// trip through every kind) included.
package csxmat_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/sparsekit/csx/csxmat"
	"github.com/sparsekit/csx/partition"
	"github.com/stretchr/testify/require"
)

// sortCoords orders coordinates for multiset comparison.
func sortCoords(coords []partition.CooElem) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}

		return coords[i].Col < coords[j].Col
	})
}

// roundTrip encodes coords with the given kinds, serializes, decodes and
// compares the multiset.
func roundTrip(t *testing.T, nrRows, nrCols int, coords []partition.CooElem, kinds ...partition.IterOrder) {
	t.Helper()
	p := loadPartition(t, nrRows, nrCols, coords)
	encode(t, p, kinds...)

	blob, err := csxmat.Build(p, csxmat.DefaultOptions())
	require.NoError(t, err)

	got, err := csxmat.Decode(blob)
	require.NoError(t, err)
	require.Len(t, got, len(coords))

	want := append([]partition.CooElem(nil), coords...)
	sortCoords(want)
	sortCoords(got)
	require.Equal(t, want, got)
}

// TestDecodeRoundTripPerKind is §8 property 6 driven through each kind
// separately over a structured matrix (diagonal + runs + blocks + noise).
func TestDecodeRoundTripPerKind(t *testing.T) {
	const n = 24
	coords := make([]partition.CooElem, 0)
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			keep := r == c || // diagonal
				(r == 3 && c >= 5 && c <= 16) || // horizontal run
				(c == 7 && r >= 10 && r <= 20) || // vertical run
				(r >= 17 && r <= 20 && c >= 17 && c <= 20) || // 4×4 block
				(r*13+c*7)%23 == 0 // noise
			if keep {
				coords = append(coords, partition.CooElem{
					Row: r, Col: c, Val: float64(r*1000 + c),
				})
			}
		}
	}

	for _, kind := range []partition.IterOrder{
		partition.Horizontal, partition.Vertical, partition.Diagonal,
		partition.RevDiagonal, partition.BlockRow2, partition.BlockRow4,
		partition.BlockCol2, partition.BlockCol3,
	} {
		roundTrip(t, n, n, coords, kind)
	}
}

// TestDecodeRoundTripAllKinds is property 6 with the full EncodeAll loop
// free to pick any kind sequence.
func TestDecodeRoundTripAllKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	coords := make([]partition.CooElem, 0)
	for r := 1; r <= 40; r++ {
		c := 1
		for c <= 40 {
			if rng.Float64() < 0.2 {
				runLen := 1 + rng.Intn(8)
				for i := 0; i < runLen && c <= 40; i++ {
					coords = append(coords, partition.CooElem{
						Row: r, Col: c, Val: rng.Float64(),
					})
					c++
				}
			}
			c += 1 + rng.Intn(4)
		}
	}

	p := loadPartition(t, 40, 40, coords)
	encode(t, p) // nil kinds: every meaningful kind admitted
	require.Equal(t, partition.Horizontal, p.Order())

	blob, err := csxmat.Build(p, csxmat.DefaultOptions())
	require.NoError(t, err)

	got, err := csxmat.Decode(blob)
	require.NoError(t, err)

	want := append([]partition.CooElem(nil), coords...)
	sortCoords(want)
	sortCoords(got)
	require.Equal(t, want, got)
}

// TestDecodeScalarsOnly: a pattern-free blob decodes in emission order.
func TestDecodeScalarsOnly(t *testing.T) {
	coords := []partition.CooElem{
		{Row: 1, Col: 4, Val: 1},
		{Row: 2, Col: 1, Val: 2}, {Row: 2, Col: 9, Val: 3},
	}
	p := loadPartition(t, 2, 9, coords)
	blob, err := csxmat.Build(p, csxmat.DefaultOptions())
	require.NoError(t, err)

	got, err := csxmat.Decode(blob)
	require.NoError(t, err)
	require.Equal(t, coords, got)
}

// TestDecodeBadPatternID rejects ids beyond the table.
func TestDecodeBadPatternID(t *testing.T) {
	p := loadPartition(t, 1, 6, []partition.CooElem{{Row: 1, Col: 2, Val: 1}})
	blob, err := csxmat.Build(p, csxmat.DefaultOptions())
	require.NoError(t, err)

	// Corrupt the unit header's id bits.
	blob.Ctl[0] |= 0x05
	_, err = csxmat.Decode(blob)
	require.ErrorIs(t, err, csxmat.ErrBadPatternID)
}

// TestSymBlobRoundTrip: divide, serialize, decode — the merged multiset
// matches the lower triangle plus diagonal.
func TestSymBlobRoundTrip(t *testing.T) {
	coords := []partition.CooElem{
		{Row: 3, Col: 1, Val: 31}, {Row: 3, Col: 3, Val: 33},
		{Row: 4, Col: 2, Val: 42}, {Row: 4, Col: 3, Val: 43}, {Row: 4, Col: 4, Val: 44},
	}
	s, err := partition.NewSym(2, 4, 2)
	require.NoError(t, err)
	_, err = s.SetElems(partition.NewSliceSource(coords), 3, 0, len(coords), 3)
	require.NoError(t, err)

	_, err = csxmat.BuildSym(s, csxmat.DefaultOptions())
	require.ErrorIs(t, err, csxmat.ErrSymState) // not divided yet

	require.NoError(t, s.DivideMatrix())
	blob, err := csxmat.BuildSym(s, csxmat.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, []float64{33, 44}, blob.Diagonal)
	require.Equal(t, 2, blob.NrRows)
	require.Equal(t, 2, blob.RowStart)

	got, err := csxmat.DecodeSym(blob)
	require.NoError(t, err)

	// Lower-triangle elements in partition-local rows, then the diagonal.
	want := []partition.CooElem{
		{Row: 1, Col: 1, Val: 31},
		{Row: 2, Col: 2, Val: 42}, {Row: 2, Col: 3, Val: 43},
		{Row: 1, Col: 3, Val: 33}, {Row: 2, Col: 4, Val: 44},
	}
	sortCoords(want)
	sortCoords(got)
	require.Equal(t, want, got)
}
