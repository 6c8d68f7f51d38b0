// Package drle: configuration options, statistics records and sentinel
// errors.
package drle

import (
	"errors"

	"github.com/sparsekit/csx/partition"
)

// Sentinel errors for the pattern engine.
var (
	// ErrBadOptions indicates an invalid Options combination.
	ErrBadOptions = errors.New("drle: invalid options combination")

	// ErrKindCount indicates EncodeSerial received mismatched kind and
	// delta-list lengths.
	ErrKindCount = errors.New("drle: kinds and delta lists differ in length")
)

// Internal panic messages (programmer errors).
const (
	panicValuesDesync = "drle: value cursor out of sync with encoded row"
	panicNoPrevElem   = "drle: block annex with no previous element"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMinLimit is the minimum run length eligible to become a
	// pattern descriptor.
	DefaultMinLimit = 4

	// DefaultMaxLimit is the maximum descriptor length (one unit carries at
	// most 255 elements; the default keeps one slot of headroom).
	DefaultMaxLimit = 254

	// DefaultMinPerc is the minimum fraction of the partition's nonzeros a
	// (kind, delta) pair must contribute to be kept after the stats pass.
	DefaultMinPerc = 0.1

	// DefaultSamplesMax caps the number of sampled windows when Bernoulli
	// sampling is active.
	DefaultSamplesMax = int(^uint(0) >> 1)
)

// Options configures a Manager.
//
// Fields:
//
//	MinLimit     - minimum run length for a descriptor (default 4).
//	MaxLimit     - maximum descriptor length (default 254).
//	MinPerc      - minimum nnz fraction to keep a (kind, delta) (default 0.1).
//	WindowSize   - sampling window size in rows; 0 disables sampling.
//	SamplesMax   - maximum sampled windows (Bernoulli mode).
//	SamplingProb - Bernoulli window probability; 0 selects windows at a
//	               deterministic WindowSize stride.
//	SplitBlocks  - split runs longer than MaxLimit into several
//	               descriptors instead of capping at one.
//	Kinds        - the iteration orders the engine may pick; nil means
//	               every kind except the degenerate 1-aligned blocks.
type Options struct {
	MinLimit     int
	MaxLimit     int
	MinPerc      float64
	WindowSize   int
	SamplesMax   int
	SamplingProb float64
	SplitBlocks  bool
	Kinds        []partition.IterOrder
}

// DefaultOptions returns Options pre-populated with the engine defaults.
func DefaultOptions() Options {
	return Options{
		MinLimit:   DefaultMinLimit,
		MaxLimit:   DefaultMaxLimit,
		MinPerc:    DefaultMinPerc,
		SamplesMax: DefaultSamplesMax,
	}
}

// Validate checks that the option fields hold a usable combination.
// Every violation returns ErrBadOptions.
func (o *Options) Validate() error {
	if o.MinLimit < 2 {
		return ErrBadOptions
	}
	if o.MaxLimit < o.MinLimit || o.MaxLimit > 255 {
		return ErrBadOptions
	}
	if o.MinPerc < 0 || o.MinPerc >= 1 {
		return ErrBadOptions
	}
	if o.WindowSize < 0 || o.SamplesMax < 0 {
		return ErrBadOptions
	}
	if o.SamplingProb < 0 || o.SamplingProb > 1 {
		return ErrBadOptions
	}
	for _, k := range o.Kinds {
		if !k.Valid() || k == partition.None {
			return ErrBadOptions
		}
	}

	return nil
}

// allowedKinds resolves the allow-list: an explicit list is taken as-is,
// nil expands to every kind with a meaningful geometry (1-aligned blocks
// duplicate plain horizontal/vertical runs and are skipped).
func (o *Options) allowedKinds() []partition.IterOrder {
	if o.Kinds != nil {
		return o.Kinds
	}

	kinds := make([]partition.IterOrder, 0, int(partition.NrOrders))
	for t := partition.Horizontal; t < partition.NrOrders; t++ {
		if t.IsBlock() && t.BlockAlign() < 2 {
			continue
		}
		kinds = append(kinds, t)
	}

	return kinds
}

// StatRec accumulates the footprint of one (kind, delta) candidate.
type StatRec struct {
	Nnz       int // nonzeros coverable by descriptors of this delta
	NPatterns int // candidate runs observed
}

// Stats maps delta values to their records for one iteration order.
type Stats map[int]StatRec
