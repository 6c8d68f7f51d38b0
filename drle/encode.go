// Package drle - the encoding pass: rewriting rows into mixed streams of
// scalar elements and DeltaRLE pattern descriptors.
//
// Policy & Contracts:
//   - Only deltas that survived the statistics filter (or were given
//     explicitly via EncodeSerial) are encoded.
//   - A run longer than MaxLimit either splits into near-equal descriptors
//     (SplitBlocks) or caps at one descriptor with the tail emitted as
//     scalars.
//   - Encoding preserves the nonzero multiset exactly; the element array
//     shrinks as runs collapse into descriptors.
package drle

import "github.com/sparsekit/csx/partition"

// EncodeAll runs the stats → choose → rewrite loop until no kind
// qualifies. Each encoded kind is retired before the next round, and the
// partition always returns to HORIZONTAL between rounds.
func (m *Manager) EncodeAll() {
	for {
		m.GenAllStats()
		t := m.ChooseKind()
		if t == partition.None {
			return
		}
		m.Encode(t)
	}
}

// Encode rewrites the partition in kind t using the current encode sets,
// then transforms back and retires t. Passing None lets the manager choose
// from the gathered statistics; if nothing qualifies, Encode is a no-op.
func (m *Manager) Encode(t partition.IterOrder) {
	if t == partition.None {
		if t = m.ChooseKind(); t == partition.None {
			return
		}
	}

	emittedBefore := m.emitted
	if m.opts.WindowSize > 0 && m.p.LogicalRows() > m.opts.WindowSize {
		m.encodeWindowed(t)
	} else {
		old := m.p.Order()
		m.p.Transform(t)
		m.rewrite(t, m.p)
		m.p.Transform(old)
	}
	m.p.AddNrDeltas(m.emitted - emittedBefore)

	m.AddIgnore(t)
}

// EncodeSerial bypasses statistics: kinds[i] is encoded with exactly the
// deltas in deltas[i], in the order given. This is the ENCODE_DELTAS path.
func (m *Manager) EncodeSerial(kinds []partition.IterOrder, deltas [][]int) error {
	if len(kinds) != len(deltas) {
		return ErrKindCount
	}
	for _, t := range kinds {
		if !t.Valid() || t == partition.None {
			return ErrBadOptions
		}
	}

	for i, t := range kinds {
		set := make(map[int]bool, len(deltas[i]))
		for _, d := range deltas[i] {
			set[d] = true
		}
		m.deltasToEncode[t] = set
		m.Encode(t)
	}

	return nil
}

// rewrite re-encodes every row of p (already in kind t) in place.
func (m *Manager) rewrite(t partition.IterOrder, p *partition.Partition) {
	nrRows := p.LogicalRows()
	bld := partition.NewBuilder(p, nrRows+1, p.ElemsLen())

	newrow := make([]partition.Elem, 0, 64)
	for i := 0; i < nrRows; i++ {
		newrow = m.encodeRow(t, p.Row(i), newrow[:0])
		for j := range newrow {
			bld.AppendElem(newrow[j])
		}
		bld.NewRow(1)
	}
	bld.Finalize(p.FindNewRowptrSize(t))
}

// encodeRow gathers unpatterned stretches and flushes them through
// doEncode, copying already-patterned elements through untouched.
func (m *Manager) encodeRow(t partition.IterOrder, row []partition.Elem, newrow []partition.Elem) []partition.Elem {
	xs := m.xsBuf[:0]
	vs := m.vsBuf[:0]

	for i := range row {
		if row[i].Pattern == nil {
			xs = append(xs, row[i].Col)
			vs = append(vs, row[i].Val)

			continue
		}
		if len(xs) > 0 {
			newrow = m.doEncode(t, xs, vs, newrow)
			xs, vs = xs[:0], vs[:0]
		}
		newrow = append(newrow, row[i])
	}
	if len(xs) > 0 {
		newrow = m.doEncode(t, xs, vs, newrow)
	}

	m.xsBuf, m.vsBuf = xs[:0], vs[:0]

	return newrow
}

// doEncode rewrites one stretch. Block kinds take the aligned path.
func (m *Manager) doEncode(t partition.IterOrder, xs []int, vs []float64, newrow []partition.Elem) []partition.Elem {
	if t.IsBlock() && t.BlockAlign() > 1 {
		return m.doEncodeBlock(t, xs, vs, newrow)
	}

	enc := m.deltasToEncode[t]
	col := 0
	vi := 0

	for _, r := range rleEncode(deltaEncode(xs)) {
		freq := r.freq
		if enc[r.val] && freq >= m.opts.MinLimit {
			for _, sz := range m.runChunks(freq) {
				col += r.val
				newrow = append(newrow, partition.Elem{
					Col:          col,
					Pattern:      partition.NewPattern(sz, r.val, t),
					Vals:         append([]float64(nil), vs[vi:vi+sz]...),
					InPattern:    true,
					PatternStart: true,
				})
				m.emitted++
				vi += sz
				col += r.val * (sz - 1)
				freq -= sz
			}
		}

		for i := 0; i < freq; i++ {
			col += r.val
			newrow = append(newrow, partition.Elem{Col: col, Val: vs[vi]})
			vi++
		}
	}

	if vi != len(vs) {
		panic(panicValuesDesync)
	}

	return newrow
}

// runChunks sizes the descriptors one run becomes. A run within MaxLimit
// is one descriptor; longer runs split near-equally under SplitBlocks, or
// cap at a single MaxLimit descriptor otherwise (the caller emits the
// leftover as scalars).
func (m *Manager) runChunks(freq int) []int {
	maxLimit := m.opts.MaxLimit
	if freq <= maxLimit {
		return []int{freq}
	}
	if !m.opts.SplitBlocks {
		return []int{maxLimit}
	}

	n := (freq + maxLimit - 1) / maxLimit
	base := freq / n
	if base < m.opts.MinLimit {
		return []int{maxLimit}
	}

	sizes := make([]int, n)
	rem := freq % n
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}

	return sizes
}

// doEncodeBlock rewrites one stretch for a block kind. Only delta-1 runs
// form blocks; the run annexes the element immediately before it (unless
// it starts at column 1), drops the misaligned front and back, and emits
// one descriptor per aligned segment.
func (m *Manager) doEncodeBlock(t partition.IterOrder, xs []int, vs []float64, newrow []partition.Elem) []partition.Elem {
	enc := m.deltasToEncode[t]
	align := t.BlockAlign()
	col := 0
	vi := 0

	for _, r := range rleEncode(deltaEncode(xs)) {
		col += r.val

		var skipFront, nrElem int
		if col == 1 {
			skipFront = 0
			nrElem = r.freq
		} else {
			skipFront = (col - 2) % align
			nrElem = r.freq + 1
		}
		if nrElem > skipFront {
			nrElem -= skipFront
		} else {
			nrElem = 0
		}
		skipBack := nrElem % align
		nrElem -= skipBack

		if r.val == 1 && enc[1] && nrElem >= 2*align && 2*align <= m.opts.MaxLimit {
			rleStart := col
			if col != 1 {
				// Annex the element emitted just before this run; it is
				// always a scalar of the current stretch (a delta-1 run
				// cannot open a stretch away from column 1).
				rleStart = col - 1
				if len(newrow) == 0 {
					panic(panicNoPrevElem)
				}
				newrow = newrow[:len(newrow)-1]
				vi--
			}

			for i := 0; i < skipFront; i++ {
				newrow = append(newrow, partition.Elem{Col: rleStart + i, Val: vs[vi]})
				vi++
			}

			// Descriptor capacity aligned down to whole block-row pairs.
			maxAligned := (m.opts.MaxLimit / (2 * align)) * (2 * align)
			nrBlocks := nrElem / maxAligned
			nrElemBlock := nrElem
			if maxAligned < nrElemBlock {
				nrElemBlock = maxAligned
			}
			switch {
			case nrBlocks == 0:
				nrBlocks = 1
			case !m.opts.SplitBlocks:
				nrBlocks = 1
				skipBack += nrElem - nrElemBlock
			default:
				skipBack += nrElem - nrElemBlock*nrBlocks
			}

			for i := 0; i < nrBlocks; i++ {
				newrow = append(newrow, partition.Elem{
					Col:          rleStart + skipFront + i*nrElemBlock,
					Pattern:      partition.NewPattern(nrElemBlock, 1, t),
					Vals:         append([]float64(nil), vs[vi:vi+nrElemBlock]...),
					InPattern:    true,
					PatternStart: true,
				})
				m.emitted++
				vi += nrElemBlock
			}

			for i := 0; i < skipBack; i++ {
				newrow = append(newrow, partition.Elem{
					Col: rleStart + skipFront + nrElemBlock*nrBlocks + i,
					Val: vs[vi],
				})
				vi++
			}
		} else {
			for i := 0; i < r.freq; i++ {
				newrow = append(newrow, partition.Elem{Col: col + i*r.val, Val: vs[vi]})
				vi++
			}
		}

		col += r.val * (r.freq - 1)
	}

	if vi != len(vs) {
		panic(panicValuesDesync)
	}

	return newrow
}
