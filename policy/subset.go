package policy

import (
	"fmt"

	"github.com/initram2002/random-quiz-regolamentari-c11/types"
)

// SubsetCoverage implements the subset-coverage-plus-extension policy.
//
// Phase 1 visits every partition of the space in randomized order and draws
// one ID from each partition's available pool. Phase 2 appends extension
// picks drawn from distinct partitions that still have eligible IDs. Both
// phases apply a soft adjacency-avoidance preference that steers draws away
// from IDs numerically adjacent to excluded ones.
type SubsetCoverage struct {
	settings
}

var _ types.CoveragePolicy = (*SubsetCoverage)(nil)

// NewSubsetCoverage creates a new subset-coverage policy.
//
// Unlike FullCoverage, this policy enumerates each partition's available
// pool directly instead of rejection sampling, so a mandatory partition
// with no eligible ID fails fast with ExhaustedPartitionError.
//
// The number of extension picks is size minus the partition count; with the
// standard 17-rule restricted map and a batch of 20 that yields 3 extras.
//
// Parameters:
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *SubsetCoverage: Initialized subset-coverage policy
//
// Example:
//
//	pol := policy.NewSubsetCoverage()
//	sampler, err := quiz.New(&cfg, src, pol)
func NewSubsetCoverage(opts ...Option) *SubsetCoverage {
	s := &SubsetCoverage{settings: defaultSettings()}
	for _, opt := range opts {
		opt(&s.settings)
	}

	return s
}

// Name returns the policy identifier used in logs and metric labels.
func (s *SubsetCoverage) Name() string {
	return "subset_coverage"
}

// Select draws size picks with one per partition plus diversified extras.
//
// The algorithm:
//  1. Visit the partitions in randomized order; for each, compute its
//     available pool (range − exclusions − already selected). An empty pool
//     is fatal. Apply the adjacency-avoidance preference and draw one ID.
//  2. Determine which partitions still have a non-empty pool; randomly
//     choose size−len(partitions) distinct qualifying partitions and draw
//     one additional ID from each.
//
// The returned picks are in draw order: the leading len(partitions) picks
// cover every partition exactly once.
//
// Parameters:
//   - rng: Randomness source for this run
//   - space: Validated partition space (the restricted mandatory set)
//   - excluded: Question IDs that must never be selected
//   - size: Total number of picks to produce
//
// Returns:
//   - []types.Pick: Exactly size picks
//   - error: ErrBatchTooSmall, *ExhaustedPartitionError naming the exhausted
//     partition, or *InsufficientPartitionsError for the extension phase
func (s *SubsetCoverage) Select(rng types.Rand, space *types.Space, excluded types.IDSet, size int) ([]types.Pick, error) {
	partitions := space.Partitions()
	extras := size - len(partitions)
	if extras < 0 {
		return nil, fmt.Errorf("%w: size %d, partitions %d", types.ErrBatchTooSmall, size, len(partitions))
	}

	adjacent := adjacentIDs(space, excluded)
	picks := make([]types.Pick, 0, size)
	selected := make(types.IDSet, size)

	// Phase 1: one pick per partition, randomized visit order.
	for _, idx := range rng.Perm(len(partitions)) {
		partition := partitions[idx]

		pool := availableIDs(partition, excluded, selected)
		s.metrics.RecordPartitionPoolSize(partition.DisplayLabel(), len(pool))
		if len(pool) == 0 {
			s.logger.Error("mandatory partition exhausted", "partition", partition.DisplayLabel())
			return nil, &types.ExhaustedPartitionError{Partition: partition}
		}

		picks = append(picks, s.draw(rng, partition, pool, adjacent))
		selected.Add(picks[len(picks)-1].ID)
	}

	// Phase 2: extension picks from distinct partitions with remaining IDs.
	eligible := make([]types.Partition, 0, len(partitions))
	for _, partition := range partitions {
		if len(availableIDs(partition, excluded, selected)) > 0 {
			eligible = append(eligible, partition)
		}
	}
	if len(eligible) < extras {
		s.logger.Error("not enough partitions for extension picks",
			"required", extras, "eligible", len(eligible))
		return nil, &types.InsufficientPartitionsError{Required: extras, Eligible: len(eligible)}
	}

	for _, idx := range rng.Perm(len(eligible))[:extras] {
		partition := eligible[idx]

		pool := availableIDs(partition, excluded, selected)
		picks = append(picks, s.draw(rng, partition, pool, adjacent))
		selected.Add(picks[len(picks)-1].ID)
	}

	s.logger.Debug("subset coverage selection complete", "picks", len(picks), "extras", extras)

	return picks, nil
}

// draw applies the adjacency preference to a non-empty pool and picks one
// ID uniformly from the (possibly narrowed) result.
func (s *SubsetCoverage) draw(rng types.Rand, partition types.Partition, pool []int, adjacent types.IDSet) types.Pick {
	narrowed, fellBack := preferNonAdjacent(pool, adjacent)
	if fellBack {
		s.metrics.RecordAdjacencyFallback(partition.DisplayLabel())
		s.logger.Debug("adjacency preference emptied pool, using unfiltered pool",
			"partition", partition.DisplayLabel(), "pool", len(pool))
	}

	id := drawFrom(rng, narrowed)
	s.metrics.RecordDrawAttempt(s.Name(), true)

	return types.Pick{Partition: partition, ID: id}
}
