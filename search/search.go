package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/snakebox/canonical"
	"github.com/katalvlaran/snakebox/snake"
)

// Search runs a level-synchronous breadth-first search for a long snake in
// Q_dimension, starting from the empty sequence at vertex 0. Every level
// expands the whole frontier through the canonical legal dimensions, keeps
// the first strictly longer child as the best answer so far, and cuts the
// frontier by fitness whenever its estimated footprint exceeds the memory
// budget. The search ends when the frontier empties or MaxLevels is hit;
// running out of frontier is the normal way to finish, not an error.
//
// The returned sequence is always in canonical form and always a valid
// snake: extensions are restricted to canonical legal dimensions and to
// targets the occupancy bitmap leaves open.
func Search(dimension int, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if dimension < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, dimension)
	}

	root, err := snake.NewNode(nil, dimension)
	if err != nil {
		return nil, err
	}

	var (
		start    = time.Now()
		frontier = []*snake.Node{root}
		best     *snake.Node
		levels   int
		explored int
	)
	for len(frontier) > 0 {
		if o.MaxLevels > 0 && levels >= o.MaxLevels {
			break
		}

		next := make([]*snake.Node, 0, len(frontier))
		for _, node := range frontier {
			seq := node.Sequence()
			for _, dim := range canonical.LegalNextDimensions(seq) {
				if !node.CanExtend(dim) {
					continue
				}
				child, cerr := node.CreateChild(dim)
				if cerr != nil {
					continue // a blocked extension is control flow here
				}
				explored++
				next = append(next, child)
				if best == nil || child.Length() > best.Length() {
					best = child
					if o.OnBest != nil {
						o.OnBest(child.Length(), child.Sequence())
					}
				}
			}
		}

		frontier = pruneFrontier(next, o)
		levels++
		if o.OnLevel != nil {
			o.OnLevel(levels, len(frontier), bestLength(best))
		}
	}

	return resultFrom(best, dimension, levels, explored, time.Since(start)), nil
}

func bestLength(best *snake.Node) int {
	if best == nil {
		return 0
	}

	return best.Length()
}
