package types

// Rand is the randomness source injected into every sampling run.
//
// The interface is satisfied by *math/rand/v2.Rand. Implementations must
// not rely on hidden global RNG state so that concurrent or sequential
// runs in the same process do not interfere with each other's
// reproducibility.
type Rand interface {
	// IntN returns a uniformly random int in [0, n). Panics if n <= 0.
	IntN(n int) int

	// Shuffle pseudo-randomizes the order of n elements using the given
	// swap function.
	Shuffle(n int, swap func(i, j int))

	// Perm returns a pseudo-random permutation of the integers [0, n).
	Perm(n int) []int
}
