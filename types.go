package quiz

import "github.com/initram2002/random-quiz-regolamentari-c11/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the
// library's core types and interfaces. It uses type aliases to re-export
// definitions from the `types` subpackage, which contains the actual
// implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `quiz`
// package, while still providing a convenient `quiz.Partition`,
// `quiz.Selection`, etc. for users.
type (
	Partition = types.Partition
	Space     = types.Space
	Pick      = types.Pick
	Selection = types.Selection
	IDSet     = types.IDSet
)

// Re-export interfaces from the internal types package for convenience.
type (
	CoveragePolicy   = types.CoveragePolicy
	PartitionSource  = types.PartitionSource
	Rand             = types.Rand
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export error types from the internal types package.
type (
	OutOfRangeError             = types.OutOfRangeError
	ExhaustedPartitionError     = types.ExhaustedPartitionError
	InsufficientPartitionsError = types.InsufficientPartitionsError
	ExhaustedSpaceError         = types.ExhaustedSpaceError
)

// NewIDSet creates an IDSet from the given IDs.
func NewIDSet(ids ...int) IDSet {
	return types.NewIDSet(ids...)
}

// NewSpace builds a validated Space from the given partitions.
func NewSpace(partitions []Partition) (*Space, error) {
	return types.NewSpace(partitions)
}
