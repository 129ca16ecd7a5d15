package quiz

import "github.com/initram2002/random-quiz-regolamentari-c11/types"

// Sentinel errors returned by the Sampler.
//
// Re-exported from the types subpackage so callers can use errors.Is
// against the root package without importing types directly.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidSpace is returned when the partition map fails validation.
	ErrInvalidSpace = types.ErrInvalidSpace

	// ErrPartitionSourceRequired is returned when the partition source is nil.
	ErrPartitionSourceRequired = types.ErrPartitionSourceRequired

	// ErrCoveragePolicyRequired is returned when the coverage policy is nil.
	ErrCoveragePolicyRequired = types.ErrCoveragePolicyRequired

	// ErrBatchTooSmall is returned when the batch size cannot cover every
	// mandatory partition at least once.
	ErrBatchTooSmall = types.ErrBatchTooSmall
)
