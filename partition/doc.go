// Package partition provides the in-core mutable representation of one
// horizontal slab of a sparse matrix, the unit of work of the CSX encoder.
//
// A Partition is a CSR-like container: a packed element array plus a
// row-pointer prefix-sum array, both expressed in the coordinate system of
// the partition's current iteration order. The package provides:
//
//   - IterOrder — the closed set of iteration orders (horizontal, vertical,
//     diagonal, reverse-diagonal, row/column blocks of height 1..8) and the
//     pure coordinate transforms between them.
//   - Partition — construction from a sorted coordinate stream (SetElems),
//     lossless geometric Transform between orders, sub-window extraction
//     and put-back, and a point iterator that walks patterned rows.
//   - Pattern — the immutable DeltaRLE descriptor attached to an element
//     that starts an encoded run, with a generator for its coordinates.
//   - SymPartition — the symmetric variant: a dense diagonal vector plus
//     the strictly-lower triangle, splittable into the "remote" (m1) and
//     local (m2) sub-partitions and mergeable back.
//
// Elements and rows are one-based throughout, matching the coordinate
// streams produced by the loaders. Caller-facing input violations
// (unsorted streams) surface as sentinel errors; internal invariant
// breaches are programmer errors and panic.
package partition
