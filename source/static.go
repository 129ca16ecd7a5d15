package source

import (
	"context"
	"sync"

	"github.com/initram2002/random-quiz-regolamentari-c11/types"
)

// Static implements a partition source with a fixed list of partitions.
type Static struct {
	mu         sync.RWMutex
	partitions []types.Partition
}

var _ types.PartitionSource = (*Static)(nil)

// NewStatic creates a new static partition source.
//
// The source returns a fixed list of partitions that never changes.
// Useful for testing and scenarios where the partition map is known at
// startup.
//
// Parameters:
//   - partitions: Fixed partition map
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	partitions := []types.Partition{
//	    {Number: 1, Min: 1, Max: 5},
//	    {Number: 2, Min: 6, Max: 10},
//	}
//	src := source.NewStatic(partitions)
//	sampler, err := quiz.New(&cfg, src, policy.NewFullCoverage())
//	if err != nil { /* handle */ }
func NewStatic(partitions []types.Partition) *Static {
	return &Static{
		partitions: partitions,
	}
}

// ListPartitions returns the static partition map.
//
// Returns:
//   - []types.Partition: The fixed list of partitions
//   - error: Always nil (never fails)
func (s *Static) ListPartitions(_ context.Context) ([]types.Partition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.Partition, len(s.partitions))
	copy(result, s.partitions)

	return result, nil
}

// Update replaces the partition map.
//
// This allows the static source to simulate partition map changes, which
// is useful for testing map refresh scenarios.
//
// Parameters:
//   - partitions: New partition map
func (s *Static) Update(partitions []types.Partition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.partitions = make([]types.Partition, len(partitions))
	copy(s.partitions, partitions)
}
