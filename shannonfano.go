package prefixcode

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// BuildShannonFanoTree builds a prefix tree from the given frequency
// table by Shannon-Fano top-down partitioning: the symbols are sorted
// by frequency descending and recursively split into two partitions of
// near-equal cumulative weight.
//
// The table must not be empty; Compress guards this before calling.
func BuildShannonFanoTree(ft FrequencyTable) *Node {
	assert.Assertf(len(ft) > 0, "BuildShannonFanoTree: empty frequency table")

	pairs := make(byWeight, 0, len(ft))
	for sym, freq := range ft {
		pairs = append(pairs, symbolAndWeight{sym, freq})
	}
	pairs.Sort()
	return buildShannonFano(pairs)
}

func buildShannonFano(pairs []symbolAndWeight) *Node {
	if len(pairs) == 1 {
		return &Node{Symbol: pairs[0].symbol, Weight: pairs[0].weight}
	}

	split := splitIndex(pairs)
	left := buildShannonFano(pairs[:split])
	right := buildShannonFano(pairs[split:])
	return &Node{Weight: left.Weight + right.Weight, Left: left, Right: right}
}

// splitIndex scans the candidate split points left to right and returns
// the first index whose left partition's cumulative weight comes
// closest to half the total.  Comparing |2*cumulative - total| avoids
// fractional arithmetic.  The result is clamped to [1, n-1] so both
// partitions are non-empty.
func splitIndex(pairs []symbolAndWeight) int {
	total := 0
	for _, p := range pairs {
		total += p.weight
	}

	best := 1
	bestDiff := -1
	cumulative := 0
	for i, p := range pairs {
		cumulative += p.weight
		diff := 2*cumulative - total
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			bestDiff = diff
			best = i + 1
		}
	}

	if best > len(pairs)-1 {
		best = len(pairs) - 1
	}
	return best
}

// type symbolAndWeight + type byWeight {{{

type symbolAndWeight struct {
	symbol Symbol
	weight int
}

// byWeight sorts by weight descending, ties by symbol ascending.
type byWeight []symbolAndWeight

func (list byWeight) Sort() {
	sort.Sort(list)
}

func (list byWeight) Len() int {
	return len(list)
}

func (list byWeight) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byWeight) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.weight != b.weight {
		return a.weight > b.weight
	}
	return a.symbol < b.symbol
}

var _ sort.Interface = byWeight(nil)

// }}}
