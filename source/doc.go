// Package source provides built-in partition source implementations.
//
// Partition sources supply the partition map for sampling runs.
// The package includes:
//
//   - Static: Fixed list of partitions
//   - File: YAML partition map documents with an optional exclusion list
//   - Rules/FieldRules: The built-in Regole map for the refereeing quiz
//
// Custom sources can be implemented by satisfying the types.PartitionSource
// interface.
package source
