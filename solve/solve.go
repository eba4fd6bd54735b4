// Package solve picks the right snake-finding strategy per dimension:
// recorded sequences when the table has them, direct breadth-first search
// in small cubes, priming from the nearest recorded snake above the
// direct-search range, and direct search again as the last resort.
package solve

import (
	"fmt"
	"time"

	"github.com/katalvlaran/snakebox/priming"
	"github.com/katalvlaran/snakebox/search"
	"github.com/katalvlaran/snakebox/snake"
)

// Solve produces the best snake it can for Q_dimension. Strategy order:
//
//  1. A recorded sequence, when the table carries one and UseKnown holds.
//  2. Direct search for dimension <= DirectSearchMaxDim.
//  3. Priming from the nearest lower recorded sequence. Priming answers
//     even without an extension; the seed itself is a valid lower bound.
//  4. Direct search as the last resort.
//
// The Outcome's Valid flag is the strict Hamming validator's verdict on
// the final sequence; strategies that come up empty yield MethodFailed
// with a nil error.
func Solve(dimension int, opts ...Option) (*Outcome, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if dimension < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, dimension)
	}

	start := time.Now()

	if o.UseKnown {
		if seq, length, ok := o.Records.Snake(dimension); ok {
			valid, _ := snake.ValidateTransitions(seq, dimension)

			return &Outcome{
				Sequence:  seq,
				Dimension: dimension,
				Length:    length,
				Method:    MethodKnown,
				Valid:     valid,
				Elapsed:   time.Since(start),
			}, nil
		}
	}

	if dimension <= o.DirectSearchMaxDim {
		if out := direct(dimension, o, start); out != nil {
			return out, nil
		}
	}

	if dimension > o.DirectSearchMaxDim {
		if out := primed(dimension, o, start); out != nil {
			return out, nil
		}
	}

	if out := direct(dimension, o, start); out != nil {
		return out, nil
	}

	return &Outcome{
		Dimension: dimension,
		Method:    MethodFailed,
		Elapsed:   time.Since(start),
	}, nil
}

// direct runs the breadth-first engine; nil when it found nothing.
func direct(dimension int, o Options, start time.Time) *Outcome {
	res, err := search.Search(dimension, o.Search...)
	if err != nil || res.Length == 0 {
		return nil
	}

	valid, _ := snake.ValidateTransitions(res.Sequence, dimension)

	return &Outcome{
		Sequence:  res.Sequence,
		Dimension: dimension,
		Length:    res.Length,
		Method:    MethodSearch,
		Valid:     valid,
		Elapsed:   time.Since(start),
	}
}

// primed extends the nearest lower recorded sequence up to dimension; nil
// when the table has no usable seed or the engine errored.
func primed(dimension int, o Options, start time.Time) *Outcome {
	var (
		seed    []int
		seedDim int
	)
	for lower := dimension - 1; lower >= 1; lower-- {
		if seq, _, ok := o.Records.Snake(lower); ok {
			seed = seq
			seedDim = lower
			break
		}
	}
	if seed == nil {
		return nil
	}

	res, err := priming.Prime(seed, dimension, o.Priming...)
	if err != nil {
		return nil
	}

	// An unextended seed still answers; inside Q_dimension it is a valid
	// lower bound.
	valid, _ := snake.ValidateTransitions(res.Sequence, dimension)

	return &Outcome{
		Sequence:      res.Sequence,
		Dimension:     dimension,
		Length:        res.Length,
		Method:        MethodPriming,
		Valid:         valid,
		SeedDimension: seedDim,
		SeedLength:    res.SeedLength,
		Elapsed:       time.Since(start),
	}
}
