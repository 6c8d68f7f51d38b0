// Package ctl builds the packed CSX control stream.
//
// The ctl stream is a byte array consumed by the SpMV kernels: a sequence
// of units, each carrying a small bit-packed header (new-row flag, pattern
// id, element count, initial column delta) followed, for plain units, by
// the remaining column deltas as variable-length integers.
//
// The package provides:
//
//   - Builder — an append-only stream writer with AppendCtlHead,
//     AppendVariableInt and AppendFixedInt (with explicit zero-byte
//     alignment pads), finalized into the packed byte slice.
//   - Reader — the matching unit decoder, used by the verification decoder
//     in csxmat and by tests. The header layout is internal to this module:
//     only the producer and the consumer here must agree.
//
// Integers are encoded either variable-length (7 payload bits per byte,
// little-endian, continuation bit 0x80) or fixed-width (1/2/4/8 bytes,
// little-endian, aligned to their own width).
package ctl
