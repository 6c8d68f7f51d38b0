// Package drle - the encoding Manager: per-partition state of the
// stats → choose → rewrite loop.
package drle

import (
	"math/rand"

	"github.com/sparsekit/csx/partition"
)

// samplerSeed keeps Bernoulli window selection deterministic across runs;
// the engine has no other source of randomness.
const samplerSeed = 42

// Manager drives pattern discovery and encoding for one partition. A
// Manager is single-goroutine state: the orchestrator creates one per
// worker.
type Manager struct {
	p    *partition.Partition
	opts Options

	stats          map[partition.IterOrder]Stats
	deltasToEncode map[partition.IterOrder]map[int]bool
	ignore         [partition.NrOrders]bool

	rng *rand.Rand

	// rewrite scratch, reused across rows
	xsBuf   []int
	vsBuf   []float64
	emitted int
}

// NewManager validates opts and binds a Manager to p. Kinds outside the
// allow-list start ignored; EncodeAll retires further kinds as it encodes
// them.
func NewManager(p *partition.Partition, opts Options) (*Manager, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		p:              p,
		opts:           opts,
		stats:          make(map[partition.IterOrder]Stats),
		deltasToEncode: make(map[partition.IterOrder]map[int]bool),
		rng:            rand.New(rand.NewSource(samplerSeed)),
	}
	for t := partition.None; t < partition.NrOrders; t++ {
		m.ignore[t] = true
	}
	for _, t := range opts.allowedKinds() {
		m.ignore[t] = false
	}

	return m, nil
}

// Partition returns the partition the manager is bound to.
func (m *Manager) Partition() *partition.Partition { return m.p }

// AddIgnore retires a kind from further consideration.
func (m *Manager) AddIgnore(t partition.IterOrder) {
	m.ignore[t] = true
}

// RemoveIgnore re-admits a kind.
func (m *Manager) RemoveIgnore(t partition.IterOrder) {
	m.ignore[t] = false
}

// Stats returns the statistics gathered for kind t by the last
// GenAllStats round (nil if the kind was ignored or no nonzeros were
// scanned; an empty map if no delta passed the filter).
func (m *Manager) Stats(t partition.IterOrder) Stats {
	return m.stats[t]
}

// DeltasToEncode returns the delta set kept for kind t after filtering.
func (m *Manager) DeltasToEncode(t partition.IterOrder) map[int]bool {
	return m.deltasToEncode[t]
}
