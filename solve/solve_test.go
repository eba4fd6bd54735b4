package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snakebox/records"
	"github.com/katalvlaran/snakebox/search"
	"github.com/katalvlaran/snakebox/solve"
)

//----------------------------------------------------------------------------//
// Argument Tests
//----------------------------------------------------------------------------//

func TestSolve_Errors(t *testing.T) {
	_, err := solve.Solve(0)
	require.ErrorIs(t, err, solve.ErrDimension)

	_, err = solve.Solve(3, solve.WithRecords(nil))
	require.ErrorIs(t, err, solve.ErrOptionViolation)

	_, err = solve.Solve(3, solve.WithDirectSearchMaxDim(0))
	require.ErrorIs(t, err, solve.ErrOptionViolation)
}

//----------------------------------------------------------------------------//
// Strategy Tests
//----------------------------------------------------------------------------//

func TestSolve_ServesKnownRecord(t *testing.T) {
	out, err := solve.Solve(4)
	require.NoError(t, err)

	require.Equal(t, solve.MethodKnown, out.Method)
	require.Equal(t, 7, out.Length)
	require.Equal(t, []int{0, 1, 2, 0, 3, 1, 0}, out.Sequence)
	require.True(t, out.Valid)
}

func TestSolve_KnownRecordIsReValidated(t *testing.T) {
	// A corrupt table entry must surface as Valid=false, not as a fresh
	// search.
	bogus := records.Table{3: {Sequence: []int{0, 0}, Length: 2}}

	out, err := solve.Solve(3, solve.WithRecords(bogus))
	require.NoError(t, err)

	require.Equal(t, solve.MethodKnown, out.Method)
	require.False(t, out.Valid)
}

func TestSolve_DirectSearchWhenUnknown(t *testing.T) {
	out, err := solve.Solve(3, solve.WithoutKnown())
	require.NoError(t, err)

	require.Equal(t, solve.MethodSearch, out.Method)
	require.Equal(t, 4, out.Length)
	require.True(t, out.Valid)
}

func TestSolve_PrimesFromNearestLowerRecord(t *testing.T) {
	// Only Q3 has a recorded sequence, and direct search is capped below
	// the request, so the dispatcher must prime 3 -> 4.
	table := records.Table{3: {Sequence: []int{0, 1, 2, 0}, Length: 4}}

	out, err := solve.Solve(4,
		solve.WithRecords(table),
		solve.WithDirectSearchMaxDim(3),
	)
	require.NoError(t, err)

	require.Equal(t, solve.MethodPriming, out.Method)
	require.Equal(t, 4, out.Dimension)
	require.Equal(t, 7, out.Length)
	require.Equal(t, 3, out.SeedDimension)
	require.Equal(t, 4, out.SeedLength)
	require.True(t, out.Valid)
}

func TestSolve_FallsBackToDirectWithoutSeed(t *testing.T) {
	// An empty table leaves priming nothing to start from; the last-resort
	// direct search still answers.
	out, err := solve.Solve(4,
		solve.WithRecords(records.Table{}),
		solve.WithDirectSearchMaxDim(3),
	)
	require.NoError(t, err)

	require.Equal(t, solve.MethodSearch, out.Method)
	require.Equal(t, 7, out.Length)
	require.True(t, out.Valid)
}

func TestSolve_ForwardsSearchOptions(t *testing.T) {
	out, err := solve.Solve(3,
		solve.WithoutKnown(),
		solve.WithSearchOptions(search.WithMaxLevels(2)),
	)
	require.NoError(t, err)

	require.Equal(t, solve.MethodSearch, out.Method)
	require.Equal(t, 2, out.Length)
}
