// Package drle - the statistics pass: per-kind delta frequency gathering,
// the aligned block-candidate rule, filtering and kind selection.
//
// Policy & Contracts:
//   - Statistics only ever read the partition; the element array is
//     left in horizontal order (the stats pass transforms to the
//     candidate kind and back to Horizontal).
//   - Block kinds count only delta-1 runs, aligned to the block height and
//     at least two block rows long, so that everything counted is actually
//     emittable by the encoder under the same thresholds.
package drle

import "github.com/sparsekit/csx/partition"

// updateStats flushes one stretch of column values into stats. For block
// kinds the stricter block rule applies. xs is consumed (reset by the
// caller).
func (m *Manager) updateStats(t partition.IterOrder, xs []int, stats Stats) {
	if len(xs) == 0 {
		return
	}
	if align := t.BlockAlign(); t.IsBlock() && align > 1 {
		m.updateStatsBlock(xs, stats, align)

		return
	}

	for _, r := range rleEncode(deltaEncode(xs)) {
		if r.freq >= m.opts.MinLimit {
			rec := stats[r.val]
			rec.Nnz += r.freq
			rec.NPatterns++
			stats[r.val] = rec
		}
	}
}

// updateStatsBlock applies the aligned-block candidate rule. unitStart
// tracks the absolute column of each run's first element; a delta-1 run
// qualifies when, after dropping the misaligned front, it still covers at
// least two full block rows. Only whole block rows are counted.
func (m *Manager) updateStatsBlock(xs []int, stats Stats, align int) {
	// A descriptor must hold at least two block rows; if the unit size
	// limit cannot, nothing counted here would be emittable.
	if 2*align > m.opts.MaxLimit {
		return
	}

	unitStart := 0
	for _, r := range rleEncode(deltaEncode(xs)) {
		unitStart += r.val
		if r.val == 1 {
			// The run annexes the element just before it unless it starts
			// the row at column 1.
			nrElem := r.freq
			skipFront := 0
			if unitStart != 1 {
				nrElem++
				skipFront = (unitStart - 2) % align
			}
			if nrElem > skipFront {
				nrElem -= skipFront
			} else {
				nrElem = 0
			}

			if nrElem/align >= 2 {
				rec := stats[1]
				rec.Nnz += (nrElem / align) * align
				rec.NPatterns++
				stats[1] = rec
			}
		}
		unitStart += r.val * (r.freq - 1)
	}
}

// generateStats walks every row of p (already transformed to kind t),
// accumulating unpatterned stretches and flushing them at pattern
// boundaries and row ends.
func (m *Manager) generateStats(t partition.IterOrder, p *partition.Partition) Stats {
	stats := make(Stats)
	xs := make([]int, 0, 64)

	for i := 0; i < p.LogicalRows(); i++ {
		row := p.Row(i)
		for j := range row {
			if row[j].Pattern == nil {
				xs = append(xs, row[j].Col)

				continue
			}
			m.updateStats(t, xs, stats)
			xs = xs[:0]
		}
		m.updateStats(t, xs, stats)
		xs = xs[:0]
	}

	return stats
}

// GenAllStats gathers and filters statistics for every non-ignored kind.
// With sampling active the statistics come from the sampled windows only.
// Deltas contributing less than MinPerc of the scanned nonzeros are
// dropped; survivors populate the per-kind encode sets.
func (m *Manager) GenAllStats() {
	m.stats = make(map[partition.IterOrder]Stats)
	m.deltasToEncode = make(map[partition.IterOrder]map[int]bool)

	windows := m.selectWindows()

	for t := partition.Horizontal; t < partition.NrOrders; t++ {
		if m.ignore[t] {
			continue
		}

		var (
			stats   Stats
			scanned int
		)
		if windows == nil {
			m.p.Transform(t)
			stats = m.generateStats(t, m.p)
			m.p.Transform(partition.Horizontal)
			scanned = m.p.Nonzeros()
		} else {
			stats = make(Stats)
			for _, ws := range windows {
				w := m.p.GetWindow(ws, m.opts.WindowSize)
				w.Transform(t)
				for delta, rec := range m.generateStats(t, w) {
					acc := stats[delta]
					acc.Nnz += rec.Nnz
					acc.NPatterns += rec.NPatterns
					stats[delta] = acc
				}
				w.Transform(partition.Horizontal)
				scanned += w.Nonzeros()
			}
		}

		if scanned == 0 {
			continue
		}
		for delta, rec := range stats {
			if float64(rec.Nnz)/float64(scanned) < m.opts.MinPerc {
				delete(stats, delta)

				continue
			}
			if m.deltasToEncode[t] == nil {
				m.deltasToEncode[t] = make(map[int]bool)
			}
			m.deltasToEncode[t][delta] = true
		}
		m.stats[t] = stats
	}
}

// TypeNnz sums the encodable nonzeros recorded for kind t.
func (m *Manager) TypeNnz(t partition.IterOrder) int {
	total := 0
	for _, rec := range m.stats[t] {
		total += rec.Nnz
	}

	return total
}

// ChooseKind picks the kind maximizing TypeNnz; ties break toward the
// lower enum value, and None is returned when nothing scored.
func (m *Manager) ChooseKind() partition.IterOrder {
	best := partition.None
	bestNnz := 0
	for t := partition.Horizontal; t < partition.NrOrders; t++ {
		if nnz := m.TypeNnz(t); nnz > bestNnz {
			bestNnz = nnz
			best = t
		}
	}

	return best
}
