package search

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/snakebox/canonical"
	"github.com/katalvlaran/snakebox/snake"
)

// SearchParallel is Search with the per-level expansion fanned out over
// Workers goroutines. Each level the frontier is split into contiguous
// chunks, one goroutine expands each chunk into a private child slice, and
// the chunks are concatenated back in order, so pruning sees the same
// frontier order as the sequential engine. The shared best record is
// guarded by a mutex; workers take it only for strictly longer candidates.
//
// Length and validity of the answer match Search. Among several longest
// snakes of equal length the winner depends on goroutine timing.
func SearchParallel(dimension int, opts ...Option) (*Result, error) {
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
		levels   int
		explored int

		mu      sync.Mutex
		best    *snake.Node
		bestLen int
	)
	for len(frontier) > 0 {
		if o.MaxLevels > 0 && levels >= o.MaxLevels {
			break
		}

		chunks := splitChunks(frontier, o.Workers)
		expanded := make([][]*snake.Node, len(chunks))

		var g errgroup.Group
		for i, chunk := range chunks {
			i, chunk := i, chunk
			g.Go(func() error {
				local := make([]*snake.Node, 0, len(chunk))
				localBest := 0 // a stale floor only costs an extra lock
				for _, node := range chunk {
					seq := node.Sequence()
					for _, dim := range canonical.LegalNextDimensions(seq) {
						if !node.CanExtend(dim) {
							continue
						}
						child, cerr := node.CreateChild(dim)
						if cerr != nil {
							continue
						}
						local = append(local, child)
						if child.Length() > localBest {
							mu.Lock()
							if best == nil || child.Length() > best.Length() {
								best = child
								bestLen = child.Length()
								if o.OnBest != nil {
									o.OnBest(child.Length(), child.Sequence())
								}
							}
							localBest = bestLen
							mu.Unlock()
						}
					}
				}
				expanded[i] = local

				return nil
			})
		}
		_ = g.Wait() // workers never return errors, blocked moves are skipped

		next := frontier[:0:0]
		for _, part := range expanded {
			explored += len(part)
			next = append(next, part...)
		}

		frontier = pruneFrontier(next, o)
		levels++
		if o.OnLevel != nil {
			mu.Lock()
			length := bestLen
			mu.Unlock()
			o.OnLevel(levels, len(frontier), length)
		}
	}

	return resultFrom(best, dimension, levels, explored, time.Since(start)), nil
}

// splitChunks slices frontier into at most workers contiguous pieces of
// near-equal size. Never returns an empty chunk.
func splitChunks(frontier []*snake.Node, workers int) [][]*snake.Node {
	if workers > len(frontier) {
		workers = len(frontier)
	}
	chunks := make([][]*snake.Node, 0, workers)
	size := (len(frontier) + workers - 1) / workers
	for lo := 0; lo < len(frontier); lo += size {
		hi := lo + size
		if hi > len(frontier) {
			hi = len(frontier)
		}
		chunks = append(chunks, frontier[lo:hi])
	}

	return chunks
}
