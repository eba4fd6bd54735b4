package priming

import (
	"fmt"
	"time"

	"github.com/katalvlaran/snakebox/fitness"
	"github.com/katalvlaran/snakebox/search"
	"github.com/katalvlaran/snakebox/snake"
	"github.com/katalvlaran/snakebox/transitions"
)

// Prime extends a known snake into targetDimension one dimension at a
// time. Each increment reinterprets the current snake inside the next
// larger cube, where the unused coordinate leaves half the cube open, and
// runs a seeded breadth-first search for a strictly longer snake. The
// increments stop at the first dimension where no extension is found; the
// best snake reached so far is always returned, at worst the seed itself.
// A failed extension is a result, not an error.
//
// The seed's own dimension is one more than its largest transition. A seed
// already at or above targetDimension comes back unchanged.
func Prime(seed []int, targetDimension int, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if targetDimension < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTarget, targetDimension)
	}

	currentDim := transitions.Dimension(seed)
	if _, err := snake.NewNode(seed, currentDim); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeed, err)
	}

	var (
		start    = time.Now()
		current  = append([]int{}, seed...)
		levels   int
		explored int
		extended bool
	)
	for currentDim < targetDimension {
		inc := extendOnce(current, currentDim+1, o)
		levels += inc.levels
		explored += inc.explored

		if inc.best == nil {
			break // this increment found nothing longer, keep what we have
		}
		current = inc.best
		currentDim++
		extended = true
	}

	return &Result{
		Sequence:      current,
		Dimension:     currentDim,
		Length:        len(current),
		SeedLength:    len(seed),
		Extended:      extended,
		Levels:        levels,
		NodesExplored: explored,
		Elapsed:       time.Since(start),
	}, nil
}

type increment struct {
	best     []int // nil when nothing longer than the seed was found
	levels   int
	explored int
}

// extendOnce runs one seeded breadth-first increment inside dimension.
// The frontier starts from the reinterpreted seed plus every viable prefix
// the strategy names, expands through the legal dimensions with the new
// coordinate forced in, and keeps the first strictly longer child as best.
func extendOnce(seed []int, dimension int, o Options) increment {
	seedNode, err := snake.NewNode(seed, dimension)
	if err != nil {
		return increment{}
	}
	seedLen := len(seed)
	highDim := dimension >= o.HighDimThreshold

	candidates := []*snake.Node{seedNode}
	for _, plen := range o.Seeds(seedLen, dimension) {
		if plen <= 0 || plen >= seedLen {
			continue
		}
		if pn, perr := snake.NewNode(seed[:plen], dimension); perr == nil {
			candidates = append(candidates, pn)
		}
	}

	// Keep candidates that can grow right away. High dimensions also admit
	// stuck candidates with enough open vertices; deep search sometimes
	// frees them through a prefix re-entry.
	frontier := candidates[:0:0]
	for _, n := range candidates {
		if canExtendAny(n, dimension) || (highDim && n.Fitness() > 100) {
			frontier = append(frontier, n)
		}
	}
	if len(frontier) == 0 {
		for _, plen := range lastResortLengths {
			if plen >= seedLen {
				continue
			}
			pn, perr := snake.NewNode(seed[:plen], dimension)
			if perr != nil {
				continue
			}
			if canExtendAny(pn, dimension) {
				frontier = append(frontier, pn)
				break
			}
		}
	}
	if len(frontier) == 0 {
		frontier = []*snake.Node{seedNode}
	}

	var (
		best      = seedNode
		maxLen    = seedLen
		patience  = o.stallPatience(dimension)
		maxLevels = o.maxLevels(dimension)
		memLimit  = o.memoryLimit(dimension)
		levels    int
		explored  int
		stall     int
	)
	for len(frontier) > 0 && levels < maxLevels {
		next := make([]*snake.Node, 0, len(frontier))
		for _, node := range frontier {
			for _, d := range legalExtensionDims(node.Sequence(), dimension) {
				if !node.CanExtend(d) {
					continue
				}
				child, cerr := node.CreateChild(d)
				if cerr != nil {
					continue
				}
				explored++
				next = append(next, child)
				if child.Length() > maxLen {
					maxLen = child.Length()
					best = child
					stall = 0
					if o.OnBest != nil {
						o.OnBest(dimension, maxLen, child.Sequence())
					}
				} else {
					stall++
				}
			}
		}

		if len(next) == 0 {
			if !highDim {
				break
			}
			next = backtrackPrefixes(best, dimension)
			if len(next) == 0 {
				break
			}
		}

		frontier = search.PruneByFitness(next, memLimit, o.NodeOverheadBytes, fitness.Simple{})
		levels++
		if o.OnLevel != nil {
			o.OnLevel(dimension, levels, len(frontier), maxLen)
		}

		if stall > patience {
			if maxLen > seedLen {
				break
			}
			if levels > 1000 {
				if highDim && levels < 5000 {
					stall = 0 // keep digging before the first improvement
				} else {
					break
				}
			}
		}
	}

	if maxLen <= seedLen {
		return increment{levels: levels, explored: explored}
	}

	return increment{best: best.Sequence(), levels: levels, explored: explored}
}

// backtrackPrefixes rebuilds a frontier from prefixes of the best snake
// after a high-dimension frontier runs dry. Ratio prefixes are tried
// first, then fixed short lengths; the first prefix that can extend wins.
func backtrackPrefixes(best *snake.Node, dimension int) []*snake.Node {
	if best == nil || best.Length() <= 10 {
		return nil
	}

	seq := best.Sequence()
	tried := make(map[int]bool, len(backtrackRatios)+len(backtrackLengths))

	try := func(plen int) *snake.Node {
		if plen < 1 || plen >= len(seq) || tried[plen] {
			return nil
		}
		tried[plen] = true
		pn, err := snake.NewNode(seq[:plen], dimension)
		if err != nil {
			return nil
		}
		if canExtendAny(pn, dimension) {
			return pn
		}

		return nil
	}

	for _, r := range backtrackRatios {
		plen := int(float64(len(seq)) * r)
		if plen < 1 {
			plen = 1
		}
		if pn := try(plen); pn != nil {
			return []*snake.Node{pn}
		}
	}
	for _, plen := range backtrackLengths {
		if pn := try(plen); pn != nil {
			return []*snake.Node{pn}
		}
	}

	return nil
}
