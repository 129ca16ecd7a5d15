package types

// CoveragePolicy selects a batch of question IDs from a partition space
// under non-repetition and partition-coverage constraints.
//
// Policies implement different coverage rules:
//   - FullCoverage: one ID per partition plus unconstrained extra slots
//   - SubsetCoverage: one ID per partition plus diversified extension picks
//   - Custom: user-defined coverage rules
//
// Policy implementations should:
//   - Be deterministic with respect to the injected Rand
//   - Never select an excluded ID or the same ID twice
//   - Return picks in constraint order (the caller shuffles before output)
//   - Be stateless across runs (no side effects)
type CoveragePolicy interface {
	// Name returns a short identifier for the policy, used in logs and
	// metric labels.
	Name() string

	// Select draws a batch of picks satisfying the policy's coverage rules.
	//
	// The returned picks are in internal constraint order, not display
	// order. On error no partial selection is returned.
	//
	// Parameters:
	//   - rng: Randomness source for this run
	//   - space: Validated partition space; every partition is mandatory
	//   - excluded: Question IDs that must never be selected (IDs outside
	//     the space are ignored)
	//   - size: Total number of picks to produce
	//
	// Returns:
	//   - []Pick: Exactly size picks with pairwise distinct IDs
	//   - error: *ExhaustedPartitionError, *InsufficientPartitionsError,
	//     *ExhaustedSpaceError, or ErrBatchTooSmall
	Select(rng Rand, space *Space, excluded IDSet, size int) ([]Pick, error)
}
