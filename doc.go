// Package csx is a sparse-matrix-vector multiplication preprocessing engine
// built around the Compressed Sparse eXtended (CSX) storage format.
//
// 🚀 What is csx?
//
//	A library that discovers recurring geometric substructures inside a
//	sparse matrix — horizontal, vertical and diagonal runs, dense blocks —
//	and rewrites each per-thread slab of the matrix into a compact byte
//	stream plus a value array tuned for multi-core execution:
//
//	  • partition/  — the mutable in-core representation of one slab, with
//	    lossless geometric transforms between iteration orders, windows,
//	    and the symmetric diagonal split
//	  • drle/       — the delta run-length statistics engine that decides
//	    which substructures to encode, and the row rewriter that encodes them
//	  • ctl/        — the packed control-stream builder (variable-length
//	    integers, unit headers, alignment pads)
//	  • csxmat/     — the per-partition CSX blob serializer and its
//	    verification decoder
//	  • preprocess/ — environment configuration, nnz-balanced partitioning
//	    and the parallel per-worker pipeline that fuses the final matrix
//
// ✨ Why csx?
//
//   - Deterministic — fixed inputs and parameters always produce the same
//     encoding, sampling included
//   - Embarrassingly parallel — one worker per partition, no shared
//     mutable state during discovery or encoding
//   - Pure Go core — the only platform-specific code is optional CPU
//     pinning for the preprocessing workers
//
// Input parsing (Matrix Market files), SpMV kernels and kernel code
// generation are external collaborators: this module produces and consumes
// the data structures they exchange, nothing more.
//
// Dive into the package documentation of partition, drle, ctl, csxmat and
// preprocess for the full contracts, and the Example functions in each
// package's example_test.go for runnable demos.
package csx
