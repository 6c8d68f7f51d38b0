// Package drle - the sampling window driver.
//
// On large partitions statistics are gathered from sampled row windows
// only (zero-copy GetWindow views), while the encoding pass still covers
// the whole partition: consecutive windows are extracted, rewritten in the
// chosen kind and spliced back, so the full slab ends up encoded with the
// sampled decisions.
package drle

import (
	"math/rand"

	"github.com/sparsekit/csx/partition"
)

// selectWindows picks the sampled window starts for the statistics pass,
// or nil when sampling is off (WindowSize 0, or the partition fits in one
// window). With SamplingProb 0 every WindowSize-stride window is taken;
// otherwise windows are kept by a Bernoulli draw, capped at SamplesMax.
// The RNG is re-seeded per call, so selection is identical every round.
func (m *Manager) selectWindows() []int {
	ws := m.opts.WindowSize
	rows := m.p.LogicalRows()
	if ws <= 0 || rows <= ws {
		return nil
	}

	starts := make([]int, 0, rows/ws+1)
	if m.opts.SamplingProb == 0 {
		for rs := 0; rs < rows; rs += ws {
			starts = append(starts, rs)
		}

		return starts
	}

	m.rng = rand.New(rand.NewSource(samplerSeed))
	for rs := 0; rs < rows && len(starts) < m.opts.SamplesMax; rs += ws {
		if m.rng.Float64() < m.opts.SamplingProb {
			starts = append(starts, rs)
		}
	}
	if len(starts) == 0 {
		// Degenerate draw: fall back to the first window so the stats pass
		// always sees something.
		starts = append(starts, 0)
	}

	return starts
}

// encodeWindowed rewrites the whole partition in kind t, one window at a
// time: extract, transform, rewrite, transform back, splice. The put-back
// verifies the window returned in the parent's iteration order.
func (m *Manager) encodeWindowed(t partition.IterOrder) {
	ws := m.opts.WindowSize
	parentOrder := m.p.Order()

	for rs := 0; rs < m.p.LogicalRows(); rs += ws {
		w := m.p.ExtractWindow(rs, ws)
		w.Transform(t)
		m.rewrite(t, w)
		w.Transform(parentOrder)
		m.p.PutWindow(w)
	}
}
