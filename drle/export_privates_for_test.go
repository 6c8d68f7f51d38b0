// White-box access for tests. Kept separate so the production surface
// stays minimal.
package drle

import "github.com/sparsekit/csx/partition"

// DeltaEncodeForTest exposes deltaEncode.
func DeltaEncodeForTest(xs []int) []int { return deltaEncode(xs) }

// RLEForTest exposes rleEncode as (val, freq) pairs.
func RLEForTest(xs []int) [][2]int {
	out := make([][2]int, 0)
	for _, r := range rleEncode(xs) {
		out = append(out, [2]int{r.val, r.freq})
	}

	return out
}

// RunChunksForTest exposes the descriptor split policy.
func (m *Manager) RunChunksForTest(freq int) []int { return m.runChunks(freq) }

// UpdateStatsForTest exposes one stats flush.
func (m *Manager) UpdateStatsForTest(t partition.IterOrder, xs []int, stats Stats) {
	m.updateStats(t, xs, stats)
}

// SelectWindowsForTest exposes the sampling window selection.
func (m *Manager) SelectWindowsForTest() []int { return m.selectWindows() }
