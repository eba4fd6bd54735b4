package search

import (
	"sort"

	"github.com/katalvlaran/snakebox/fitness"
	"github.com/katalvlaran/snakebox/snake"
)

// estimateNodeBytes returns the advisory footprint of one frontier node:
// one machine word per bitmap word, one per transition, plus the fixed
// overhead. All nodes of a level share dimension and length, so the first
// node stands in for the whole frontier.
func estimateNodeBytes(n *snake.Node, overheadBytes int) int64 {
	words := (int64(1)<<uint(n.Dimension()) + 63) / 64

	return words*WordBytes + int64(n.Length())*TransitionBytes + int64(overheadBytes)
}

// PruneByFitness cuts a frontier down to an advisory byte budget. When the
// estimated footprint fits, the frontier passes through untouched.
// Otherwise nodes are scored once, stably sorted by score descending and
// truncated to however many the budget allows; the stable sort preserves
// insertion order among equal scores, keeping the sequential and parallel
// engines aligned. A budget smaller than a single node empties the
// frontier, which ends the search at that level.
//
// The priming engine shares this cut, so both search styles trim frontiers
// identically.
func PruneByFitness(frontier []*snake.Node, memoryLimitBytes int64, overheadBytes int, ev fitness.Evaluator) []*snake.Node {
	if len(frontier) == 0 {
		return frontier
	}

	perNode := estimateNodeBytes(frontier[0], overheadBytes)
	if int64(len(frontier))*perNode <= memoryLimitBytes {
		return frontier
	}

	keep := int(memoryLimitBytes / perNode)
	if keep >= len(frontier) {
		return frontier
	}

	scores := make([]float64, len(frontier))
	for i, n := range frontier {
		scores[i] = ev.Score(n)
	}
	order := make([]int, len(frontier))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	pruned := make([]*snake.Node, keep)
	for i := 0; i < keep; i++ {
		pruned[i] = frontier[order[i]]
	}

	return pruned
}

func pruneFrontier(frontier []*snake.Node, o Options) []*snake.Node {
	return PruneByFitness(frontier, o.MemoryLimitBytes, o.NodeOverheadBytes, o.Evaluator)
}
