// Package types provides core type definitions and interfaces for the quiz
// sampling library.
//
// This package contains shared types that are used across multiple packages
// in the library. By keeping these types in a separate package, we avoid
// import cycles between the main quiz package and its internal
// implementations.
//
// Key types:
//   - Partition: Labeled interval of the question ID space
//   - Space: Validated disjoint partition set with ID resolution
//   - Pick/Selection: Ordered batch of chosen (partition, ID) pairs
//   - IDSet: Exclusion and duplicate-tracking sets
//   - CoveragePolicy: Pluggable batch coverage rules
//   - Rand: Injected randomness source
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
