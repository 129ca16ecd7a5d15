package testing

import "github.com/initram2002/random-quiz-regolamentari-c11/types"

// Sequence is a scripted types.Rand for deterministic tests.
//
// IntN returns the scripted values in order (reduced modulo n), cycling
// when the script runs out. Shuffle is inert and Perm returns the identity
// permutation, so a policy's pre-shuffle constraint order is preserved and
// can be asserted on directly.
type Sequence struct {
	values []int
	pos    int
}

var _ types.Rand = (*Sequence)(nil)

// NewSequence creates a scripted randomness source.
//
// Parameters:
//   - values: Draw script consumed by IntN (empty script always yields 0)
//
// Returns:
//   - *Sequence: Scripted source with inert shuffling
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next scripted value reduced modulo n.
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("testing: IntN called with non-positive n")
	}
	if len(s.values) == 0 {
		return 0
	}

	v := s.values[s.pos%len(s.values)]
	s.pos++

	return v % n
}

// Shuffle leaves the order unchanged.
func (s *Sequence) Shuffle(_ /* n */ int, _ /* swap */ func(i, j int)) {}

// Perm returns the identity permutation of [0, n).
func (s *Sequence) Perm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	return perm
}
