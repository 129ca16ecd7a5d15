package types

import "context"

// PartitionSource provides the partition map for a sampling run.
//
// Implementations can load the map from various backends:
//   - Static: fixed list known at startup
//   - File: YAML partition map documents
//   - Custom: any partition discovery logic
//
// The Sampler calls ListPartitions once per Generate invocation.
type PartitionSource interface {
	// ListPartitions returns all partitions of the question ID space.
	//
	// Implementations should:
	//   - Return consistent results for the same backend state
	//   - Handle context cancellation gracefully
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []Partition: Partition map (order is not significant)
	//   - error: Load error (nil on success)
	ListPartitions(ctx context.Context) ([]Partition, error)
}
