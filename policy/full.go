package policy

import (
	"fmt"

	"github.com/initram2002/random-quiz-regolamentari-c11/types"
)

// FullCoverage implements the full-coverage-plus-extra coverage policy.
//
// Every partition of the space is mandatory: the leading picks cover each
// partition exactly once, and any remaining slots may reuse partitions
// freely. Candidates are drawn by rejection sampling over the whole ID
// space, bounded by a configurable attempt ceiling.
type FullCoverage struct {
	settings
}

var _ types.CoveragePolicy = (*FullCoverage)(nil)

// NewFullCoverage creates a new full-coverage policy.
//
// The policy repeatedly draws a uniformly random ID from the whole valid
// space and rejects candidates that are excluded, already selected, or
// (while mandatory coverage is incomplete) belong to an already-used
// partition. Rejection sampling is acceptable here because the valid space
// is small and rejection probability stays low.
//
// Parameters:
//   - opts: Optional configuration (WithMaxAttempts, WithLogger, WithMetrics)
//
// Returns:
//   - *FullCoverage: Initialized full-coverage policy
//
// Example:
//
//	pol := policy.NewFullCoverage(policy.WithMaxAttempts(50000))
//	sampler, err := quiz.New(&cfg, src, pol)
func NewFullCoverage(opts ...Option) *FullCoverage {
	f := &FullCoverage{settings: defaultSettings()}
	for _, opt := range opts {
		opt(&f.settings)
	}

	return f
}

// Name returns the policy identifier used in logs and metric labels.
func (f *FullCoverage) Name() string {
	return "full_coverage"
}

// Select draws size picks covering every partition of the space.
//
// The algorithm:
//  1. Draw a uniformly random ID from [space.MinID, space.MaxID]
//  2. Reject if excluded or already selected
//  3. Resolve the owning partition; while fewer picks than partitions have
//     been accepted, reject if that partition was already used
//  4. Accept; repeat until size picks or the attempt ceiling is hit
//
// The returned picks are in acceptance order: the leading len(partitions)
// picks use pairwise distinct partitions.
//
// Parameters:
//   - rng: Randomness source for this run
//   - space: Validated partition space
//   - excluded: Question IDs that must never be selected
//   - size: Total number of picks to produce
//
// Returns:
//   - []types.Pick: Exactly size picks
//   - error: ErrBatchTooSmall if size cannot cover every partition,
//     *ExhaustedSpaceError if the attempt ceiling is reached
func (f *FullCoverage) Select(rng types.Rand, space *types.Space, excluded types.IDSet, size int) ([]types.Pick, error) {
	mandatory := space.Len()
	if size < mandatory {
		return nil, fmt.Errorf("%w: size %d, partitions %d", types.ErrBatchTooSmall, size, mandatory)
	}

	picks := make([]types.Pick, 0, size)
	selected := make(types.IDSet, size)
	usedPartitions := make(map[int]struct{}, mandatory)

	attempts := 0
	for len(picks) < size {
		if attempts >= f.maxAttempts {
			f.logger.Error("draw ceiling reached", "attempts", attempts, "picked", len(picks))
			return nil, &types.ExhaustedSpaceError{Attempts: attempts}
		}
		attempts++

		id := space.MinID() + rng.IntN(space.Size())

		if excluded.Has(id) {
			f.reject(id, "excluded")
			continue
		}
		if selected.Has(id) {
			f.reject(id, "duplicate")
			continue
		}

		partition, err := space.Resolve(id)
		if err != nil {
			// Unreachable for a validated gap-free space.
			return nil, fmt.Errorf("resolve candidate: %w", err)
		}

		if _, used := usedPartitions[partition.Number]; used && len(picks) < mandatory {
			f.reject(id, "partition_used")
			continue
		}

		picks = append(picks, types.Pick{Partition: partition, ID: id})
		selected.Add(id)
		usedPartitions[partition.Number] = struct{}{}
		f.metrics.RecordDrawAttempt(f.Name(), true)
	}

	f.logger.Debug("full coverage selection complete", "picks", len(picks), "attempts", attempts)

	return picks, nil
}

func (f *FullCoverage) reject(id int, reason string) {
	f.metrics.RecordDrawAttempt(f.Name(), false)
	f.metrics.RecordRejection(f.Name(), reason)
	f.logger.Debug("candidate rejected", "id", id, "reason", reason)
}
