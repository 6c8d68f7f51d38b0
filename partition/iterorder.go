// Package partition - the closed IterOrder enumeration and its helpers.
//
// The integer values are part of the configuration surface: XFORM_CONF and
// ENCODE_DELTAS identify kinds by these ids, so the ordering is fixed:
// None=0, Horizontal=1, Vertical=2, Diagonal=3, RevDiagonal=4,
// BlockRow1..8=5..12, BlockCol1..8=13..20.
package partition

import (
	"fmt"
	"strconv"
)

// IterOrder names one iteration order of a partition's element array.
type IterOrder int

// The closed set of iteration orders. BlockRow1/BlockCol1 exist so that
// the ids line up with the configuration surface; the pattern engine only
// ever proposes block kinds with alignment >= 2.
const (
	None IterOrder = iota
	Horizontal
	Vertical
	Diagonal
	RevDiagonal
	BlockRow1
	BlockRow2
	BlockRow3
	BlockRow4
	BlockRow5
	BlockRow6
	BlockRow7
	BlockRow8
	BlockCol1
	BlockCol2
	BlockCol3
	BlockCol4
	BlockCol5
	BlockCol6
	BlockCol7
	BlockCol8

	// NrOrders is the number of enum values, None included. Usable as the
	// length of per-kind lookup tables.
	NrOrders
)

// orderNames indexes String() by enum value.
var orderNames = [NrOrders]string{
	"NONE", "HORIZONTAL", "VERTICAL", "DIAGONAL", "REV_DIAGONAL",
	"BLOCK_R1", "BLOCK_R2", "BLOCK_R3", "BLOCK_R4",
	"BLOCK_R5", "BLOCK_R6", "BLOCK_R7", "BLOCK_R8",
	"BLOCK_C1", "BLOCK_C2", "BLOCK_C3", "BLOCK_C4",
	"BLOCK_C5", "BLOCK_C6", "BLOCK_C7", "BLOCK_C8",
}

// String returns the canonical kind name.
func (t IterOrder) String() string {
	if t < 0 || t >= NrOrders {
		return "IterOrder(" + strconv.Itoa(int(t)) + ")"
	}

	return orderNames[t]
}

// Valid reports whether t is one of the enumerated values.
func (t IterOrder) Valid() bool {
	return t >= None && t < NrOrders
}

// IsBlockRow reports whether t is one of the row-block kinds.
func (t IterOrder) IsBlockRow() bool {
	return t >= BlockRow1 && t <= BlockRow8
}

// IsBlockCol reports whether t is one of the column-block kinds.
func (t IterOrder) IsBlockCol() bool {
	return t >= BlockCol1 && t <= BlockCol8
}

// IsBlock reports whether t is any block kind.
func (t IterOrder) IsBlock() bool {
	return t.IsBlockRow() || t.IsBlockCol()
}

// BlockAlign returns the block height (row blocks) or width (column
// blocks) of t, and 1 for every non-block kind. The alignment drives both
// the block-candidate statistics rule and the family-local sort in
// Transform.
func (t IterOrder) BlockAlign() int {
	switch {
	case t.IsBlockRow():
		return int(t-BlockRow1) + 1
	case t.IsBlockCol():
		return int(t-BlockCol1) + 1
	default:
		return 1
	}
}

// BlockRow returns the row-block kind of alignment k in [1,8]; anything
// else panics.
func BlockRow(k int) IterOrder {
	if k < 1 || k > 8 {
		panic(panicBadOrder)
	}

	return BlockRow1 + IterOrder(k-1)
}

// BlockCol returns the column-block kind of alignment k in [1,8]; anything
// else panics.
func BlockCol(k int) IterOrder {
	if k < 1 || k > 8 {
		panic(panicBadOrder)
	}

	return BlockCol1 + IterOrder(k-1)
}

// sameFamily reports whether a and b belong to one sort family:
// {Horizontal, BlockRow*} or {Vertical, BlockCol*}. Intra-family
// transforms preserve the rough element ordering, so Transform may sort
// locally instead of globally.
func sameFamily(a, b IterOrder) bool {
	rowFam := func(t IterOrder) bool { return t == Horizontal || t.IsBlockRow() }
	colFam := func(t IterOrder) bool { return t == Vertical || t.IsBlockCol() }

	return (rowFam(a) && rowFam(b)) || (colFam(a) && colFam(b))
}

// ParseIterOrder maps a configuration id to its IterOrder.
func ParseIterOrder(id int) (IterOrder, error) {
	t := IterOrder(id)
	if !t.Valid() {
		return None, fmt.Errorf("partition: unknown iteration order id %d", id)
	}

	return t, nil
}
