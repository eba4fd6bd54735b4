package priming

import (
	"errors"
	"time"
)

var (
	// ErrTarget is returned when Prime is asked for a target dimension < 1.
	ErrTarget = errors.New("priming: target dimension must be >= 1")

	// ErrSeed is returned when the seed sequence cannot form a node in its
	// own dimension (negative transitions).
	ErrSeed = errors.New("priming: invalid seed sequence")

	// ErrOptionViolation is returned when a functional option received an
	// out-of-range value.
	ErrOptionViolation = errors.New("priming: option violation")
)

// Defaults of the extension engine. High-dimension cubes get larger caps
// and more patience because viable extension points are sparse there.
const (
	DefaultMaxLevels        = 50000
	DefaultMaxLevelsHighDim = 200000

	DefaultStallPatience        = 2000
	DefaultStallPatienceHighDim = 5000

	// DefaultHighDimThreshold is the dimension at which the engine switches
	// to the aggressive high-dimension behavior.
	DefaultHighDimThreshold = 14

	// DefaultMemoryLimitBytes matches the search engine budget.
	DefaultMemoryLimitBytes = 18 << 30

	// HighDimMemoryCapBytes caps the doubled high-dimension budget.
	HighDimMemoryCapBytes = 50 << 30

	DefaultNodeOverheadBytes = 200
)

// SeedStrategy produces candidate prefix lengths for a seed of the given
// length in the given dimension, longest first. The engine starts from the
// full seed and adds every viable prefix the strategy names, so a stuck
// seed can be re-entered at an earlier vertex.
type SeedStrategy func(seedLength, dimension int) []int

// Options bundles the tunables of the extension engine.
type Options struct {
	// MaxLevels caps the levels per single dimension increment; 0 picks
	// the dimension-dependent default.
	MaxLevels int

	// StallPatience is how many consecutive non-improving children are
	// tolerated before the stall logic engages; 0 picks the default.
	StallPatience int

	// HighDimThreshold is the dimension at which high-dimension behavior
	// starts.
	HighDimThreshold int

	// MemoryLimitBytes is the advisory frontier budget. High-dimension
	// increments double it up to HighDimMemoryCapBytes.
	MemoryLimitBytes int64

	// NodeOverheadBytes is the fixed per-node cost in the estimate.
	NodeOverheadBytes int

	// Seeds picks the prefix lengths tried alongside the full seed.
	// Defaults to DefaultSeedStrategy.
	Seeds SeedStrategy

	// OnLevel, when non-nil, is called after each level of each increment
	// with the working dimension, level number, frontier size and best
	// length so far.
	OnLevel func(dimension, level, frontierSize, bestLength int)

	// OnBest, when non-nil, is called for every strictly longer snake.
	OnBest func(dimension, length int, seq []int)

	err error
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		HighDimThreshold:  DefaultHighDimThreshold,
		MemoryLimitBytes:  DefaultMemoryLimitBytes,
		NodeOverheadBytes: DefaultNodeOverheadBytes,
		Seeds:             DefaultSeedStrategy,
	}
}

// Option mutates Options; invalid values record an ErrOptionViolation.
type Option func(*Options)

// WithMaxLevels caps the levels per dimension increment. Negative values
// are a violation; 0 restores the dimension-dependent default.
func WithMaxLevels(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxLevels = n
	}
}

// WithStallPatience sets the non-improvement tolerance. Negative values
// are a violation; 0 restores the dimension-dependent default.
func WithStallPatience(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.StallPatience = n
	}
}

// WithHighDimThreshold moves the high-dimension switch. Values < 2 are a
// violation.
func WithHighDimThreshold(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = ErrOptionViolation
			return
		}
		o.HighDimThreshold = n
	}
}

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

// WithSeedStrategy swaps the prefix candidate generator. A nil strategy is
// a violation.
func WithSeedStrategy(s SeedStrategy) Option {
	return func(o *Options) {
		if s == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Seeds = s
	}
}

// WithOnLevel installs a per-level progress hook.
func WithOnLevel(fn func(dimension, level, frontierSize, bestLength int)) Option {
	return func(o *Options) { o.OnLevel = fn }
}

// WithOnBest installs a new-best-snake hook.
func WithOnBest(fn func(dimension, length int, seq []int)) Option {
	return func(o *Options) { o.OnBest = fn }
}

// Result reports the outcome of a priming run. Extended false with a nil
// error means every attempted increment was searched without finding a
// longer snake; Sequence then still holds the best snake reached, which is
// at worst the original seed.
type Result struct {
	Sequence      []int
	Dimension     int
	Length        int
	SeedLength    int
	Extended      bool
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

// maxLevels resolves the per-increment level cap for a working dimension.
func (o Options) maxLevels(dimension int) int {
	if o.MaxLevels > 0 {
		return o.MaxLevels
	}
	if dimension >= o.HighDimThreshold {
		return DefaultMaxLevelsHighDim
	}

	return DefaultMaxLevels
}

func (o Options) stallPatience(dimension int) int {
	if o.StallPatience > 0 {
		return o.StallPatience
	}
	if dimension >= o.HighDimThreshold {
		return DefaultStallPatienceHighDim
	}

	return DefaultStallPatience
}

// memoryLimit doubles the budget for high-dimension increments, capped.
func (o Options) memoryLimit(dimension int) int64 {
	if dimension < o.HighDimThreshold {
		return o.MemoryLimitBytes
	}
	limit := o.MemoryLimitBytes * 2
	if limit > HighDimMemoryCapBytes {
		limit = HighDimMemoryCapBytes
	}

	return limit
}
