// Package csxmat serializes fully encoded partitions into per-partition
// CSX blobs and decodes them back for verification.
//
// A Blob is what the (external) kernel code generator consumes: the packed
// ctl control stream, the values in emission order, one ctl offset per
// partition row for row-parallel kernels, and the pattern table mapping
// unit header ids back to (kind, delta) descriptors. The symmetric variant
// carries the dense diagonal plus one blob each for the m1 ("remote") and
// m2 (local) sub-partitions.
//
// Decode is the package's own consumer: it expands a blob back to the
// coordinate multiset, reversing the pattern geometry through the same
// transform functions the encoder used. It exists so that the encoding
// pipeline is verifiable end to end without the SpMV runtime.
package csxmat
