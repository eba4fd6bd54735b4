package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snakebox/canonical"
	"github.com/katalvlaran/snakebox/search"
	"github.com/katalvlaran/snakebox/snake"
)

//----------------------------------------------------------------------------//
// Option Tests
//----------------------------------------------------------------------------//

func TestSearch_OptionViolations(t *testing.T) {
	cases := []struct {
		name string
		opt  search.Option
	}{
		{"memory limit zero", search.WithMemoryLimit(0)},
		{"negative overhead", search.WithNodeOverhead(-1)},
		{"negative levels", search.WithMaxLevels(-1)},
		{"zero workers", search.WithWorkers(0)},
		{"nil evaluator", search.WithEvaluator(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := search.Search(3, tc.opt)
			require.ErrorIs(t, err, search.ErrOptionViolation)
		})
	}
}

func TestSearch_DimensionError(t *testing.T) {
	_, err := search.Search(0)
	require.ErrorIs(t, err, search.ErrDimension)

	_, err = search.Search(-2)
	require.ErrorIs(t, err, search.ErrDimension)
}

//----------------------------------------------------------------------------//
// Engine Tests
//----------------------------------------------------------------------------//

func TestSearch_FindsOptimumInQ3(t *testing.T) {
	res, err := search.Search(3)
	require.NoError(t, err)

	// The frontier fits the default budget, so the run is exhaustive over
	// canonical representatives and must hit the Q3 optimum.
	require.Equal(t, 4, res.Length)
	require.Len(t, res.Sequence, 4)
	require.Equal(t, 3, res.Dimension)
	require.Positive(t, res.NodesExplored)
	require.Positive(t, res.Levels)

	require.True(t, canonical.IsCanonical(res.Sequence))
	ok, reason := snake.ValidateTransitions(res.Sequence, 3)
	require.True(t, ok, reason)
}

func TestSearch_FindsOptimumInQ4(t *testing.T) {
	res, err := search.Search(4)
	require.NoError(t, err)

	require.Equal(t, 7, res.Length)
	require.True(t, canonical.IsCanonical(res.Sequence))
	ok, reason := snake.ValidateTransitions(res.Sequence, 4)
	require.True(t, ok, reason)
}

func TestSearch_MaxLevelsCapsLength(t *testing.T) {
	res, err := search.Search(4, search.WithMaxLevels(2))
	require.NoError(t, err)

	// Level k holds snakes of length k, so two levels yield length 2.
	require.Equal(t, 2, res.Length)
	require.Equal(t, 2, res.Levels)
}

func TestSearch_TightBudgetStillValid(t *testing.T) {
	// Room for a handful of nodes per level at most; the answer may fall
	// short of the optimum but must stay a canonical valid snake.
	res, err := search.Search(4,
		search.WithMemoryLimit(4096),
		search.WithNodeOverhead(200),
	)
	require.NoError(t, err)

	require.Positive(t, res.Length)
	require.True(t, canonical.IsCanonical(res.Sequence))
	ok, reason := snake.ValidateTransitions(res.Sequence, 4)
	require.True(t, ok, reason)
}

//----------------------------------------------------------------------------//
// Hook Tests
//----------------------------------------------------------------------------//

func TestSearch_Hooks(t *testing.T) {
	var bestSeen []int
	var levelCalls int
	lastFrontier := -1

	res, err := search.Search(3,
		search.WithOnBest(func(length int, seq []int) {
			bestSeen = append(bestSeen, length)
			require.Len(t, seq, length)
		}),
		search.WithOnLevel(func(level, frontierSize, bestLength int) {
			levelCalls++
			require.Equal(t, levelCalls, level)
			lastFrontier = frontierSize
		}),
	)
	require.NoError(t, err)

	// Each new best is strictly longer than the previous one.
	require.NotEmpty(t, bestSeen)
	for i := 1; i < len(bestSeen); i++ {
		require.Greater(t, bestSeen[i], bestSeen[i-1])
	}
	require.Equal(t, res.Length, bestSeen[len(bestSeen)-1])

	require.Equal(t, res.Levels, levelCalls)
	require.Zero(t, lastFrontier) // the final level exhausts the frontier
}
