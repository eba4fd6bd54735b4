package solve

import (
	"errors"
	"time"

	"github.com/katalvlaran/snakebox/priming"
	"github.com/katalvlaran/snakebox/records"
	"github.com/katalvlaran/snakebox/search"
)

var (
	// ErrDimension is returned for dimension < 1.
	ErrDimension = errors.New("solve: dimension must be >= 1")

	// ErrOptionViolation is returned when a functional option received an
	// out-of-range value.
	ErrOptionViolation = errors.New("solve: option violation")
)

// Method names how an Outcome was produced.
type Method string

const (
	MethodKnown   Method = "known"
	MethodSearch  Method = "search"
	MethodPriming Method = "priming"
	MethodFailed  Method = "failed"
)

// DefaultDirectSearchMaxDim is the largest dimension attempted by direct
// search before the dispatcher switches to priming.
const DefaultDirectSearchMaxDim = 8

// Options bundles the dispatcher tunables.
type Options struct {
	// UseKnown serves recorded sequences without searching when the table
	// has one for the requested dimension.
	UseKnown bool

	// Records is the injected record table; defaults to records.Default().
	Records records.Table

	// DirectSearchMaxDim bounds the direct-search regime.
	DirectSearchMaxDim int

	// Search is passed through to the direct-search engine.
	Search []search.Option

	// Priming is passed through to the priming engine.
	Priming []priming.Option

	err error
}

// DefaultOptions returns the dispatcher defaults.
func DefaultOptions() Options {
	return Options{
		UseKnown:           true,
		Records:            records.Default(),
		DirectSearchMaxDim: DefaultDirectSearchMaxDim,
	}
}

// Option mutates Options; invalid values record an ErrOptionViolation.
type Option func(*Options)

// WithoutKnown forces a fresh computation even when the table has an
// answer.
func WithoutKnown() Option {
	return func(o *Options) { o.UseKnown = false }
}

// WithRecords injects a record table. A nil table is a violation.
func WithRecords(t records.Table) Option {
	return func(o *Options) {
		if t == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Records = t
	}
}

// WithDirectSearchMaxDim moves the direct-search/priming boundary. Values
// < 1 are a violation.
func WithDirectSearchMaxDim(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.DirectSearchMaxDim = n
	}
}

// WithSearchOptions forwards options to the direct-search engine.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// WithPrimingOptions forwards options to the priming engine.
func WithPrimingOptions(opts ...priming.Option) Option {
	return func(o *Options) { o.Priming = append(o.Priming, opts...) }
}

// Outcome is the dispatcher's answer. Method reports which strategy
// produced the sequence; MethodFailed comes with a zero length and no
// error, mirroring the engines' "nothing found" convention. SeedDimension
// and SeedLength are set for priming outcomes only.
type Outcome struct {
	Sequence      []int
	Dimension     int
	Length        int
	Method        Method
	Valid         bool
	SeedDimension int
	SeedLength    int
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
