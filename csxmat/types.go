// Package csxmat: blob types, serialization options and sentinel errors.
package csxmat

import (
	"errors"

	"github.com/sparsekit/csx/partition"
)

// Sentinel errors for blob construction and decoding.
var (
	// ErrNotHorizontal indicates a partition serialized in a non-horizontal
	// iteration order; Build requires the encoder's final HORIZONTAL form.
	ErrNotHorizontal = errors.New("csxmat: partition must be horizontal")

	// ErrTooManyPatterns indicates more distinct (kind, delta) pairs than
	// the 6-bit unit header can address.
	ErrTooManyPatterns = errors.New("csxmat: pattern table exceeds header id space")

	// ErrUnitTooLong indicates a pattern descriptor larger than a unit can
	// carry.
	ErrUnitTooLong = errors.New("csxmat: pattern exceeds unit size limit")

	// ErrBadPatternID indicates a decoded unit referencing an id outside
	// the blob's pattern table.
	ErrBadPatternID = errors.New("csxmat: unit references unknown pattern id")

	// ErrValueCount indicates a mismatch between ctl-implied and stored
	// value counts.
	ErrValueCount = errors.New("csxmat: value array does not match ctl stream")

	// ErrSymState indicates a symmetric blob built from a partition that
	// was never divided.
	ErrSymState = errors.New("csxmat: symmetric partition must be split first")
)

// Serialization defaults.
const (
	// DefaultUColSize is the fixed width used for full column indices.
	DefaultUColSize = 4
)

// Options configures blob serialization.
//
// Fields:
//
//	FullColind - store every unit's initial column delta fixed-width
//	             instead of variable-int (kernels that prefer aligned
//	             loads set this).
//	UColSize   - the fixed width in bytes (1, 2, 4 or 8) when FullColind.
type Options struct {
	FullColind bool
	UColSize   int
}

// DefaultOptions returns the variable-int configuration.
func DefaultOptions() Options {
	return Options{UColSize: DefaultUColSize}
}

// Validate checks the width field.
func (o *Options) Validate() error {
	switch o.UColSize {
	case 1, 2, 4, 8:
		return nil
	default:
		return errors.New("csxmat: ucol size must be 1, 2, 4 or 8")
	}
}

// PatternKey identifies one pattern-table entry: every descriptor of the
// same kind and delta shares one unit header id (sizes vary per unit).
type PatternKey struct {
	Kind  partition.IterOrder
	Delta int
}

// Blob is one partition's CSX output.
type Blob struct {
	Ctl      []byte       // packed control stream
	Values   []float64    // all values in emission order
	RowPtr   []int        // per partition row: starting ctl offset
	Patterns []PatternKey // unit id i+1 -> Patterns[i]

	RowStart int // slab's first row in the original matrix, 0-based
	NrRows   int
	NrCols   int
	Nnz      int

	FullColind bool
	UColSize   int
}

// Size returns the blob's memory footprint in bytes: ctl plus values.
func (b *Blob) Size() int {
	return len(b.Ctl) + 8*len(b.Values)
}

// SymBlob is one symmetric partition's CSX output.
type SymBlob struct {
	Diagonal []float64
	M1       *Blob
	M2       *Blob

	RowStart int
	NrRows   int
}

// Size sums both sub-blobs and the diagonal.
func (b *SymBlob) Size() int {
	return b.M1.Size() + b.M2.Size() + 8*len(b.Diagonal)
}
