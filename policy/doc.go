// Package policy provides built-in coverage policy implementations.
//
// Coverage policies determine how a batch of question IDs is distributed
// across partitions. The package includes two built-in policies:
//
//   - FullCoverage: one ID per partition among the leading slots, remaining
//     slots unconstrained, via bounded rejection sampling
//   - SubsetCoverage: one ID per partition in randomized order, then a fixed
//     number of extension picks from distinct partitions, with an
//     adjacency-avoidance preference near excluded IDs
//
// # Policy Selection Guide
//
// FullCoverage:
//   - Use when the whole partition map (including cross-cutting regulatory
//     partitions) must appear in the batch
//   - Single extra slot may reuse any partition
//   - Fails with ExhaustedSpaceError when the exclusion set densely covers
//     the ID space
//
// SubsetCoverage:
//   - Use when sampling is restricted to a subset of the partition map
//   - Extension picks come from distinct partitions that still have
//     eligible IDs
//   - Fails fast with ExhaustedPartitionError when a mandatory partition
//     has no eligible ID left
//
// Custom policies can be implemented by satisfying the types.CoveragePolicy
// interface.
package policy
