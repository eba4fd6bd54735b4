package priming

import (
	"github.com/katalvlaran/snakebox/canonical"
	"github.com/katalvlaran/snakebox/snake"
)

// Prefix tables of the default strategy. Short seeds re-enter easily and
// skip prefixes altogether; long seeds in high dimensions need many
// re-entry points because their tails saturate the cube.
var (
	standardRatios = []float64{0.98, 0.95, 0.9, 0.85, 0.8, 0.75, 0.7}

	highDimRatios = []float64{
		0.999, 0.99, 0.98, 0.97, 0.95, 0.93, 0.9, 0.87, 0.85,
		0.8, 0.75, 0.7, 0.65, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1,
	}

	// lastResortLengths are tried when not one candidate was viable.
	lastResortLengths = []int{100, 50, 20, 10, 5}

	// backtrackRatios and backtrackLengths generate re-entry prefixes when
	// a high-dimension frontier runs dry mid-search.
	backtrackRatios  = []float64{0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1, 0.05}
	backtrackLengths = []int{1000, 500, 200, 100, 50, 20, 10}
)

// minSeedLengthForPrefixes gates prefix generation; shorter seeds keep
// enough open space to extend as-is.
const minSeedLengthForPrefixes = 100

// DefaultSeedStrategy reproduces the prefix schedule of the extension
// engine: nothing for seeds up to length 100, ratio-based prefixes for
// longer seeds, plus fixed offsets and fractions in high dimensions.
// Ratio candidates come first, then the fixed ones, without duplicates;
// full-length and non-positive candidates are dropped.
func DefaultSeedStrategy(seedLength, dimension int) []int {
	if seedLength <= minSeedLengthForPrefixes {
		return nil
	}

	ratios := standardRatios
	var fixed []int
	if dimension >= DefaultHighDimThreshold {
		ratios = highDimRatios
		fixed = []int{
			seedLength - 1, seedLength - 10, seedLength - 50, seedLength - 100,
			seedLength - 500, seedLength - 1000, seedLength / 2, seedLength / 4,
		}
	}

	seen := make(map[int]bool, len(ratios)+len(fixed))
	lengths := make([]int, 0, len(ratios)+len(fixed))
	add := func(n int) {
		if n > 0 && n < seedLength && !seen[n] {
			seen[n] = true
			lengths = append(lengths, n)
		}
	}
	for _, r := range ratios {
		add(int(float64(seedLength) * r))
	}
	for _, n := range fixed {
		add(n)
	}

	return lengths
}

// legalExtensionDims returns the canonical legal dimensions of seq with
// the increment's new dimension (dimension-1) forced in, everything at or
// above dimension dropped. Seeds reinterpreted from a lower cube are not
// canonical prefixes of the new dimension, so the newest coordinate must
// be offered explicitly.
func legalExtensionDims(seq []int, dimension int) []int {
	legal := canonical.LegalNextDimensions(seq)
	newDim := dimension - 1

	out := legal[:0:0]
	hasNew := false
	for _, d := range legal {
		if d >= dimension {
			continue
		}
		if d == newDim {
			hasNew = true
		}
		out = append(out, d)
	}
	if !hasNew && newDim >= 0 {
		out = append(out, newDim)
	}

	return out
}

// canExtendAny reports whether node can grow along any of its legal
// extension dimensions.
func canExtendAny(node *snake.Node, dimension int) bool {
	for _, d := range legalExtensionDims(node.Sequence(), dimension) {
		if node.CanExtend(d) {
			return true
		}
	}

	return false
}
