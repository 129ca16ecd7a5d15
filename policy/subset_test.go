package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/initram2002/random-quiz-regolamentari-c11/internal/randutil"
	"github.com/initram2002/random-quiz-regolamentari-c11/source"
	"github.com/initram2002/random-quiz-regolamentari-c11/types"
)

func TestSubsetCoverage_Name(t *testing.T) {
	require.Equal(t, "subset_coverage", NewSubsetCoverage().Name())
}

func TestSubsetCoverage_SmallSpace(t *testing.T) {
	space := mustSpace(t, []types.Partition{
		{Number: 1, Min: 1, Max: 5},
		{Number: 2, Min: 6, Max: 10},
		{Number: 3, Min: 11, Max: 15},
	})

	picks, err := NewSubsetCoverage().Select(randutil.NewSeeded(42), space, types.NewIDSet(), 5)
	require.NoError(t, err)
	require.Len(t, picks, 5)

	t.Run("phase 1 covers every partition exactly once", func(t *testing.T) {
		covered := make(map[int]struct{}, 3)
		for _, pick := range picks[:3] {
			covered[pick.Partition.Number] = struct{}{}
		}
		require.Len(t, covered, 3)
	})

	t.Run("extension picks use distinct partitions", func(t *testing.T) {
		require.NotEqual(t, picks[3].Partition.Number, picks[4].Partition.Number)
	})

	t.Run("all IDs distinct and in their partition", func(t *testing.T) {
		seen := types.NewIDSet()
		for _, pick := range picks {
			require.False(t, seen.Has(pick.ID))
			seen.Add(pick.ID)
			require.True(t, pick.Partition.Contains(pick.ID))
		}
	})
}

func TestSubsetCoverage_FieldRuleMap(t *testing.T) {
	space := mustSpace(t, source.FieldRules())
	excluded := source.PreviousQuizIDs()

	for _, seed := range []int64{1, 7, 42, 1234} {
		picks, err := NewSubsetCoverage().Select(randutil.NewSeeded(seed), space, excluded, 20)
		require.NoError(t, err)
		require.Len(t, picks, 20)

		covered := make(map[int]struct{}, 17)
		seenIDs := types.NewIDSet()
		for _, pick := range picks {
			require.False(t, excluded.Has(pick.ID), "seed %d selected excluded ID %d", seed, pick.ID)
			require.False(t, seenIDs.Has(pick.ID), "seed %d selected ID %d twice", seed, pick.ID)
			seenIDs.Add(pick.ID)
			covered[pick.Partition.Number] = struct{}{}
		}
		require.Len(t, covered, 17, "seed %d missed a mandatory rule", seed)

		// The 3 extension picks come from 3 mutually distinct partitions.
		extension := make(map[int]struct{}, 3)
		for _, pick := range picks[17:] {
			extension[pick.Partition.Number] = struct{}{}
		}
		require.Len(t, extension, 3)
	}
}

func TestSubsetCoverage_Deterministic(t *testing.T) {
	space := mustSpace(t, source.FieldRules())
	excluded := source.PreviousQuizIDs()

	first, err := NewSubsetCoverage().Select(randutil.NewSeeded(42), space, excluded, 20)
	require.NoError(t, err)

	second, err := NewSubsetCoverage().Select(randutil.NewSeeded(42), space, excluded, 20)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSubsetCoverage_ExhaustedPartition(t *testing.T) {
	space := mustSpace(t, []types.Partition{
		{Number: 1, Min: 1, Max: 3},
		{Number: 2, Min: 4, Max: 10},
	})

	// Partition 1's range is entirely excluded.
	_, err := NewSubsetCoverage().Select(randutil.NewSeeded(1), space, types.NewIDSet(1, 2, 3), 2)

	var exhausted *types.ExhaustedPartitionError
	require.True(t, errors.As(err, &exhausted))
	require.Equal(t, 1, exhausted.Partition.Number)
}

func TestSubsetCoverage_InsufficientPartitions(t *testing.T) {
	// Single-ID partitions: phase 1 drains every pool, leaving nothing for
	// the extension phase.
	space := mustSpace(t, []types.Partition{
		{Number: 1, Min: 1, Max: 1},
		{Number: 2, Min: 2, Max: 2},
		{Number: 3, Min: 3, Max: 3},
	})

	_, err := NewSubsetCoverage().Select(randutil.NewSeeded(1), space, types.NewIDSet(), 5)

	var insufficient *types.InsufficientPartitionsError
	require.True(t, errors.As(err, &insufficient))
	require.Equal(t, 2, insufficient.Required)
	require.Equal(t, 0, insufficient.Eligible)
}

func TestSubsetCoverage_BatchTooSmall(t *testing.T) {
	space := mustSpace(t, []types.Partition{
		{Number: 1, Min: 1, Max: 5},
		{Number: 2, Min: 6, Max: 10},
		{Number: 3, Min: 11, Max: 15},
	})

	_, err := NewSubsetCoverage().Select(randutil.NewSeeded(1), space, types.NewIDSet(), 2)
	require.ErrorIs(t, err, types.ErrBatchTooSmall)
}

func TestSubsetCoverage_AdjacencyPreference(t *testing.T) {
	space := mustSpace(t, []types.Partition{
		{Number: 1, Min: 1, Max: 5},
		{Number: 2, Min: 6, Max: 10},
	})
	// 3 is excluded, so 2 and 4 are dispreferred in partition 1.
	excluded := types.NewIDSet(3)

	for seed := int64(0); seed < 50; seed++ {
		picks, err := NewSubsetCoverage().Select(randutil.NewSeeded(seed), space, excluded, 2)
		require.NoError(t, err)

		for _, pick := range picks {
			if pick.Partition.Number == 1 {
				require.Contains(t, []int{1, 5}, pick.ID,
					"seed %d drew an adjacent ID despite non-adjacent candidates", seed)
			}
		}
	}
}

func TestSubsetCoverage_AdjacencyFallback(t *testing.T) {
	// Pool is {2, 4}, both adjacent to the excluded 3: the preference must
	// fall back to the unfiltered pool instead of failing.
	space := mustSpace(t, []types.Partition{{Number: 1, Min: 2, Max: 4}})
	capture := newCaptureMetrics()

	pol := NewSubsetCoverage(WithMetrics(capture))
	picks, err := pol.Select(randutil.NewSeeded(9), space, types.NewIDSet(3), 1)

	require.NoError(t, err)
	require.Len(t, picks, 1)
	require.Contains(t, []int{2, 4}, picks[0].ID)
	require.Positive(t, capture.fallbacks)
}
