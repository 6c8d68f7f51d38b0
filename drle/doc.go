// Package drle is the delta run-length pattern engine of the CSX encoder.
//
// For each candidate iteration order the engine transforms the partition,
// walks every row, delta-encodes the column values of unpatterned element
// stretches and run-length encodes the delta sequence. Runs at least
// MinLimit long feed per-(kind, delta) frequency statistics; block kinds
// use a stricter rule that only counts runs forming at least two aligned
// block rows. The kind maximizing the encodable nonzero count wins, the
// rows are rewritten replacing runs with pattern descriptors, the kind is
// retired, and the loop repeats until no kind qualifies.
//
// The engine is deterministic: fixed input and options always produce the
// same encoding, Bernoulli window sampling included (the sampler is seeded
// from a constant).
//
// Entry points:
//
//   - Manager.EncodeAll — the stats → choose → rewrite loop.
//   - Manager.Encode — one rewrite pass for an explicit kind.
//   - Manager.EncodeSerial — bypass statistics and encode explicit
//     per-kind delta lists (the ENCODE_DELTAS path).
//
// On large partitions the manager can gather statistics from sampled row
// windows only, then encode the full partition window by window with the
// decisions so derived (see Options.WindowSize).
package drle
