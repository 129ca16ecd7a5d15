package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the quiz sampling library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components should use these sentinels for known error
// conditions and wrap external errors with context using
// fmt.Errorf("%s: %w", msg, err).
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidSpace is returned when the partition map fails validation
	// (empty, overlapping, gapped, or inverted intervals).
	ErrInvalidSpace = errors.New("invalid partition space")

	// ErrPartitionSourceRequired is returned when the partition source is nil.
	ErrPartitionSourceRequired = errors.New("partition source is required")

	// ErrCoveragePolicyRequired is returned when the coverage policy is nil.
	ErrCoveragePolicyRequired = errors.New("coverage policy is required")

	// ErrBatchTooSmall is returned when the requested batch size cannot
	// cover every mandatory partition at least once.
	ErrBatchTooSmall = errors.New("batch size smaller than mandatory partition count")
)

// OutOfRangeError indicates a question ID that belongs to no declared
// partition. This signals malformed caller input or a malformed partition
// map, not a runtime condition to retry.
type OutOfRangeError struct {
	// ID is the offending question ID.
	ID int

	// Min and Max delimit the valid ID space.
	Min int
	Max int
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("question ID %d out of range: must be between %d and %d", e.ID, e.Min, e.Max)
}

// ExhaustedPartitionError indicates a mandatory partition with no eligible
// question ID left after removing excluded and already-selected IDs. Fatal
// for the current run; not retried internally.
type ExhaustedPartitionError struct {
	// Partition is the exhausted partition.
	Partition Partition
}

// Error implements the error interface.
func (e *ExhaustedPartitionError) Error() string {
	return fmt.Sprintf("partition %s exhausted: no eligible question ID left in [%d, %d]",
		e.Partition.DisplayLabel(), e.Partition.Min, e.Partition.Max)
}

// InsufficientPartitionsError indicates that fewer partitions than required
// still have eligible question IDs for the extension phase. Fatal for the
// current run.
type InsufficientPartitionsError struct {
	// Required is the number of extension-eligible partitions needed.
	Required int

	// Eligible is the number of partitions that still have eligible IDs.
	Eligible int
}

// Error implements the error interface.
func (e *InsufficientPartitionsError) Error() string {
	return fmt.Sprintf("insufficient partitions for extension: need %d with eligible question IDs, have %d",
		e.Required, e.Eligible)
}

// ExhaustedSpaceError indicates that the rejection-sampling loop failed to
// find an acceptable candidate within its attempt ceiling. This happens when
// the exclusion set plus prior selections densely cover the ID space.
type ExhaustedSpaceError struct {
	// Attempts is the number of draws made before giving up.
	Attempts int
}

// Error implements the error interface.
func (e *ExhaustedSpaceError) Error() string {
	return fmt.Sprintf("no acceptable question ID found after %d draws: ID space exhausted", e.Attempts)
}
