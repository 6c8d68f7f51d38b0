// Package preprocess: configuration, matrix descriptors and sentinel
// errors.
package preprocess

import (
	"errors"

	"github.com/sparsekit/csx/csxmat"
	"github.com/sparsekit/csx/drle"
	"github.com/sparsekit/csx/partition"
)

// Sentinel errors for configuration and orchestration.
var (
	// ErrBadConfig indicates an unparseable or out-of-range configuration
	// value (environment or setter). Fatal at startup by policy.
	ErrBadConfig = errors.New("preprocess: invalid configuration")

	// ErrBadShape indicates non-positive matrix dimensions or a negative
	// nonzero count.
	ErrBadShape = errors.New("preprocess: invalid matrix shape")

	// ErrNotSquare indicates a symmetric preprocess over a non-square
	// matrix.
	ErrNotSquare = errors.New("preprocess: symmetric matrix must be square")
)

// Environment variable names.
const (
	EnvMTConf       = "MT_CONF"
	EnvXformConf    = "XFORM_CONF"
	EnvWindowSize   = "WINDOW_SIZE"
	EnvSamples      = "SAMPLES"
	EnvSamplingProb = "SAMPLING_PROB"
	EnvSplitBlocks  = "SPLIT_BLOCKS"
	EnvEncodeDeltas = "ENCODE_DELTAS"
)

// DefaultCPUs is the MT_CONF fallback.
var DefaultCPUs = []int{0, 1, 2, 3}

// Config is the explicit process-wide configuration threaded through the
// entry points; there is no global state.
//
// Fields:
//
//	CPUs         - one worker per entry, pinned to that CPU id.
//	Kinds        - iteration orders the engine may pick; nil admits every
//	               meaningful kind.
//	WindowSize   - statistics sampling window (rows); 0 disables sampling.
//	SamplesMax   - cap on sampled windows under Bernoulli selection.
//	SamplingProb - Bernoulli probability; 0 selects windows at stride.
//	SplitBlocks  - split over-long runs into several descriptors.
//	EncodeDeltas - explicit per-kind delta lists, positionally matched to
//	               Kinds; non-nil bypasses statistics (ENCODE_DELTAS).
type Config struct {
	CPUs         []int
	Kinds        []partition.IterOrder
	WindowSize   int
	SamplesMax   int
	SamplingProb float64
	SplitBlocks  bool
	EncodeDeltas [][]int
}

// DefaultConfig mirrors the documented environment defaults.
func DefaultConfig() Config {
	return Config{
		CPUs:       append([]int(nil), DefaultCPUs...),
		SamplesMax: drle.DefaultSamplesMax,
	}
}

// Validate checks the combination; every violation returns ErrBadConfig.
func (c *Config) Validate() error {
	if len(c.CPUs) == 0 {
		return ErrBadConfig
	}
	for _, cpu := range c.CPUs {
		if cpu < 0 {
			return ErrBadConfig
		}
	}
	if c.WindowSize < 0 || c.SamplesMax < 0 {
		return ErrBadConfig
	}
	if c.SamplingProb < 0 || c.SamplingProb > 1 {
		return ErrBadConfig
	}
	for _, k := range c.Kinds {
		if !k.Valid() || k == partition.None {
			return ErrBadConfig
		}
	}
	if c.EncodeDeltas != nil && len(c.EncodeDeltas) != len(c.Kinds) {
		return ErrBadConfig
	}

	return nil
}

// engineOptions translates the process config into per-worker engine
// options.
func (c *Config) engineOptions() drle.Options {
	opts := drle.DefaultOptions()
	opts.WindowSize = c.WindowSize
	if c.SamplesMax > 0 {
		opts.SamplesMax = c.SamplesMax
	}
	opts.SamplingProb = c.SamplingProb
	opts.SplitBlocks = c.SplitBlocks
	opts.Kinds = c.Kinds

	return opts
}

// Matrix is the fused multi-threaded descriptor: one CSX blob per worker
// plus the global shape.
type Matrix struct {
	Blobs []*csxmat.Blob
	CPUs  []int

	NrRows int
	NrCols int
	Nnz    int
}

// Size sums the per-partition blob footprints in bytes.
func (m *Matrix) Size() int {
	total := 0
	for _, b := range m.Blobs {
		total += b.Size()
	}

	return total
}

// SymMatrix is the symmetric counterpart of Matrix.
type SymMatrix struct {
	Blobs []*csxmat.SymBlob
	CPUs  []int

	NrRows int
	Nnz    int
}

// Size sums the per-partition symmetric blob footprints in bytes.
func (m *SymMatrix) Size() int {
	total := 0
	for _, b := range m.Blobs {
		total += b.Size()
	}

	return total
}
