package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
//
// This interface composes smaller, domain-focused interfaces for better
// modularity.
type MetricsCollector interface {
	SamplerMetrics
	PolicyMetrics
}

// SamplerMetrics defines metrics for sampler-level operations.
type SamplerMetrics interface {
	// RecordGenerationDuration records the time taken for one sampling run.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - policy: Coverage policy name
	RecordGenerationDuration(duration float64, policy string)

	// RecordGenerationResult records a sampling run outcome (success or failure).
	//
	// Parameters:
	//   - policy: Coverage policy name
	//   - success: true if the run produced a selection, false otherwise
	RecordGenerationResult(policy string, success bool)

	// RecordSelectionSize records the number of picks in a completed selection.
	RecordSelectionSize(count int)
}

// PolicyMetrics defines metrics for coverage policy draw operations.
type PolicyMetrics interface {
	// RecordDrawAttempt records a single candidate draw (accepted or rejected).
	//
	// Parameters:
	//   - policy: Coverage policy name
	//   - accepted: true if the candidate was accepted into the selection
	RecordDrawAttempt(policy string, accepted bool)

	// RecordRejection records a rejected candidate by reason.
	//
	// Parameters:
	//   - policy: Coverage policy name
	//   - reason: Rejection reason ("excluded", "duplicate", "partition_used")
	RecordRejection(policy string, reason string)

	// RecordAdjacencyFallback records an adjacency-avoidance preference that
	// emptied its pool and fell back to the unfiltered pool.
	//
	// Parameters:
	//   - partition: Display label of the affected partition
	RecordAdjacencyFallback(partition string)

	// RecordPartitionPoolSize records the available pool size observed for a
	// partition before drawing (gauge metric).
	//
	// Parameters:
	//   - partition: Display label of the partition
	//   - size: Number of eligible question IDs
	RecordPartitionPoolSize(partition string, size int)
}
