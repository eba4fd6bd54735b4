package search

import (
	"errors"
	"time"

	"github.com/katalvlaran/snakebox/fitness"
	"github.com/katalvlaran/snakebox/snake"
)

var (
	// ErrDimension is returned when Search is asked for a cube of
	// dimension < 1.
	ErrDimension = errors.New("search: dimension must be >= 1")

	// ErrOptionViolation is returned when a functional option received an
	// out-of-range value.
	ErrOptionViolation = errors.New("search: option violation")
)

// Byte-accounting constants for the frontier size estimate. Each bitmap
// word and each transition entry costs one machine word; NodeOverheadBytes
// covers headers, slices and map residue around the node itself.
const (
	WordBytes       = 8
	TransitionBytes = 8

	// DefaultMemoryLimitBytes caps the frontier at 18 GiB before pruning.
	DefaultMemoryLimitBytes = 18 << 30

	// DefaultNodeOverheadBytes is the advisory fixed cost per node.
	DefaultNodeOverheadBytes = 200

	// DefaultWorkers is the goroutine count used by SearchParallel.
	DefaultWorkers = 10
)

// Options bundles every tunable of the breadth-first engines. Construct
// with DefaultOptions and refine through With* options; invalid values are
// recorded and surfaced as ErrOptionViolation when the search starts.
type Options struct {
	// MemoryLimitBytes is the advisory frontier budget; when the estimated
	// frontier size exceeds it, the frontier is sorted by score and cut.
	MemoryLimitBytes int64

	// NodeOverheadBytes is the fixed per-node cost added to the estimate.
	NodeOverheadBytes int

	// MaxLevels stops the search after that many levels; 0 means no cap.
	MaxLevels int

	// Workers is the goroutine count for SearchParallel; the sequential
	// Search ignores it.
	Workers int

	// Evaluator scores nodes when the frontier must be cut. Defaults to
	// fitness.Simple.
	Evaluator fitness.Evaluator

	// OnLevel, when non-nil, is called after each completed level with the
	// level number, the post-prune frontier size and the best length so far.
	OnLevel func(level, frontierSize, bestLength int)

	// OnBest, when non-nil, is called whenever a strictly longer snake is
	// found. SearchParallel invokes it under the engine's lock; keep it
	// cheap.
	OnBest func(length int, seq []int)

	err error // first recorded violation
}

// DefaultOptions returns the engine defaults used throughout the module.
func DefaultOptions() Options {
	return Options{
		MemoryLimitBytes:  DefaultMemoryLimitBytes,
		NodeOverheadBytes: DefaultNodeOverheadBytes,
		MaxLevels:         0,
		Workers:           DefaultWorkers,
		Evaluator:         fitness.Simple{},
	}
}

// Option mutates Options; invalid values record an ErrOptionViolation.
type Option func(*Options)

// WithMemoryLimit sets the advisory frontier budget in bytes. Values < 1
// are a violation.
func WithMemoryLimit(bytes int64) Option {
	return func(o *Options) {
		if bytes < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.MemoryLimitBytes = bytes
	}
}

// WithNodeOverhead sets the fixed per-node byte cost. Negative values are
// a violation.
func WithNodeOverhead(bytes int) Option {
	return func(o *Options) {
		if bytes < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.NodeOverheadBytes = bytes
	}
}

// WithMaxLevels caps the number of expanded levels; 0 disables the cap.
// Negative values are a violation.
func WithMaxLevels(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxLevels = n
	}
}

// WithWorkers sets the goroutine count for SearchParallel. Values < 1 are
// a violation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.Workers = n
	}
}

// WithEvaluator swaps the pruning score. A nil evaluator is a violation.
func WithEvaluator(ev fitness.Evaluator) Option {
	return func(o *Options) {
		if ev == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Evaluator = ev
	}
}

// WithOnLevel installs a per-level progress hook.
func WithOnLevel(fn func(level, frontierSize, bestLength int)) Option {
	return func(o *Options) { o.OnLevel = fn }
}

// WithOnBest installs a new-best-snake hook.
func WithOnBest(fn func(length int, seq []int)) Option {
	return func(o *Options) { o.OnBest = fn }
}

// Result is the outcome of a search run. Sequence is nil only in the
// degenerate case where not a single extension of the empty snake
// succeeded, which cannot happen for dimension >= 1.
type Result struct {
	Sequence      []int
	Dimension     int
	Length        int
	Levels        int
	NodesExplored int
	Elapsed       time.Duration
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

func resultFrom(best *snake.Node, dimension, levels, nodes int, elapsed time.Duration) *Result {
	r := &Result{
		Dimension:     dimension,
		Levels:        levels,
		NodesExplored: nodes,
		Elapsed:       elapsed,
	}
	if best != nil {
		r.Sequence = best.Sequence()
		r.Length = best.Length()
	}

	return r
}
