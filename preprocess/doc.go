// Package preprocess orchestrates the CSX encoding pipeline: it cuts a
// sorted coordinate stream into per-worker partitions of approximately
// equal nonzero count, runs the pattern engine and the blob serializer on
// each partition in parallel — one OS-pinned worker per configured CPU —
// and fuses the results into the multi-threaded matrix descriptor the
// SpMV runtime consumes.
//
// Configuration comes from the environment (explicit setters work too):
//
//	MT_CONF       - comma-separated CPU id list (default 0,1,2,3)
//	XFORM_CONF    - comma-separated IterOrder ids the engine may pick
//	WINDOW_SIZE   - sampling window size in rows (0 disables sampling)
//	SAMPLES       - maximum number of sampled windows
//	SAMPLING_PROB - Bernoulli window probability (0 = stride selection)
//	SPLIT_BLOCKS  - split over-long runs into several descriptors
//	ENCODE_DELTAS - explicit per-kind delta lists <d1,d2,...><...> that
//	                bypass statistics entirely
//
// Workers share no mutable state: each owns its partition end to end and
// the only synchronization is the final join. On Linux each worker pins
// itself to its CPU before touching its partition, so the pages it
// allocates stay local under first-touch NUMA policy.
package preprocess
