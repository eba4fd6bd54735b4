package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snakebox/canonical"
	"github.com/katalvlaran/snakebox/search"
	"github.com/katalvlaran/snakebox/snake"
)

//----------------------------------------------------------------------------//
// Parallel Engine Tests
//----------------------------------------------------------------------------//

func TestSearchParallel_MatchesSequentialLength(t *testing.T) {
	for _, dim := range []int{3, 4, 5} {
		seq, err := search.Search(dim)
		require.NoError(t, err)

		par, perr := search.SearchParallel(dim, search.WithWorkers(4))
		require.NoError(t, perr)

		// The winning sequence may differ between runs, its length may not.
		require.Equal(t, seq.Length, par.Length, "dimension %d", dim)
		require.Equal(t, seq.NodesExplored, par.NodesExplored, "dimension %d", dim)

		require.True(t, canonical.IsCanonical(par.Sequence))
		ok, reason := snake.ValidateTransitions(par.Sequence, dim)
		require.True(t, ok, reason)
	}
}

func TestSearchParallel_SingleWorker(t *testing.T) {
	res, err := search.SearchParallel(3, search.WithWorkers(1))
	require.NoError(t, err)
	require.Equal(t, 4, res.Length)
}

func TestSearchParallel_MoreWorkersThanNodes(t *testing.T) {
	// The first level has a single node; chunking must tolerate a worker
	// count far above the frontier size.
	res, err := search.SearchParallel(3, search.WithWorkers(64))
	require.NoError(t, err)
	require.Equal(t, 4, res.Length)
}

func TestSearchParallel_DimensionError(t *testing.T) {
	_, err := search.SearchParallel(0)
	require.ErrorIs(t, err, search.ErrDimension)
}

func TestSearchParallel_PruningStaysDeterministic(t *testing.T) {
	// Chunk-ordered concatenation means the pruned frontier, and with it
	// the final length, is identical across repeated runs.
	first, err := search.SearchParallel(5,
		search.WithWorkers(3),
		search.WithMemoryLimit(1<<14),
	)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, aerr := search.SearchParallel(5,
			search.WithWorkers(3),
			search.WithMemoryLimit(1<<14),
		)
		require.NoError(t, aerr)
		require.Equal(t, first.Length, again.Length)
		require.Equal(t, first.NodesExplored, again.NodesExplored)
	}
}
