// Package partition: core element types, pattern descriptors and sentinel
// errors.
package partition

import "errors"

// Sentinel errors for partition construction and mutation.
var (
	// ErrBadShape indicates non-positive row or column dimensions.
	ErrBadShape = errors.New("partition: invalid shape")

	// ErrUnsortedInput indicates a coordinate stream that is not row-major
	// sorted with strictly increasing columns within a row.
	ErrUnsortedInput = errors.New("partition: unsorted coordinate stream")

	// ErrColOutOfRange indicates a coordinate column outside [1, nrCols].
	ErrColOutOfRange = errors.New("partition: column out of range")

	// ErrSymState indicates a symmetric-partition operation invoked in the
	// wrong lifecycle state (see SymLifecycle).
	ErrSymState = errors.New("partition: symmetric partition in wrong state")
)

// Internal panic messages (programmer errors).
const (
	panicRowRange    = "partition: row index out of range"
	panicElemRange   = "partition: element index out of range"
	panicWindowType  = "partition: window/parent iteration order mismatch"
	panicWindowShape = "partition: window does not match its parent range"
	panicPatternSize = "partition: pattern size must be positive"
	panicBadOrder    = "partition: unknown iteration order"
	panicMappedGrow  = "partition: mapped window grew beyond its backing"
)

// CooElem is one coordinate triple. Rows and columns are one-based; which
// coordinate system they live in depends on context (the owning
// partition's iteration order, or a pattern's own order).
type CooElem struct {
	Row int
	Col int
	Val float64
}

// Elem is one stored element of a Partition. Exactly one of the two value
// forms is active:
//
//	Pattern == nil: Val is the scalar value, Vals is nil.
//	Pattern != nil: this element starts an encoded run; Vals holds the
//	                Pattern.Size() values in emission order and Val is
//	                meaningless.
//
// InPattern and PatternStart are iterator bookkeeping for walking
// patterned rows.
type Elem struct {
	Row int
	Col int
	Val float64

	Pattern      *Pattern
	Vals         []float64
	InPattern    bool
	PatternStart bool
}

// Coo returns the element's coordinate triple.
func (e *Elem) Coo() CooElem {
	return CooElem{Row: e.Row, Col: e.Col, Val: e.Val}
}

// IsPattern reports whether the element starts an encoded run.
func (e *Elem) IsPattern() bool {
	return e.Pattern != nil
}

// MakeElem builds a scalar Elem from a coordinate triple, clearing any
// pattern state of the destination slot.
func MakeElem(c CooElem) Elem {
	return Elem{Row: c.Row, Col: c.Col, Val: c.Val}
}

// Pattern is an immutable DeltaRLE descriptor: size elements laid out at
// stride delta in kind's coordinate system, starting at the element that
// carries the descriptor. Descriptors are shared by reference and never
// mutated after construction; iterators hand them out without cloning.
type Pattern struct {
	size  int
	delta int
	kind  IterOrder
}

// NewPattern constructs a descriptor. A non-positive size or delta is a
// programmer error and panics.
func NewPattern(size, delta int, kind IterOrder) *Pattern {
	if size <= 0 || delta <= 0 {
		panic(panicPatternSize)
	}

	return &Pattern{size: size, delta: delta, kind: kind}
}

// Size returns the number of elements the descriptor covers.
func (p *Pattern) Size() int { return p.size }

// Delta returns the stride between successive elements, in the pattern's
// own coordinate system.
func (p *Pattern) Delta() int { return p.delta }

// Kind returns the iteration order the pattern is expressed in.
func (p *Pattern) Kind() IterOrder { return p.kind }

// ColSpan returns the column distance from the first to the last element
// in the pattern's own coordinate system: delta * (size - 1).
func (p *Pattern) ColSpan() int {
	return p.delta * (p.size - 1)
}

// Generate yields the pattern's size coordinates given its starting
// element, all expressed in the pattern's own coordinate system: the row is
// constant and the column advances by delta per step. Values are not
// filled in.
func (p *Pattern) Generate(start CooElem) []CooElem {
	out := make([]CooElem, p.size)
	for i := 0; i < p.size; i++ {
		out[i] = CooElem{Row: start.Row, Col: start.Col + i*p.delta}
	}

	return out
}
