package types

// IDSet is a set of question IDs, used for exclusion sets and duplicate
// tracking during a sampling run.
type IDSet map[int]struct{}

// NewIDSet creates an IDSet from the given IDs.
//
// Parameters:
//   - ids: Question IDs to include (duplicates are collapsed)
//
// Returns:
//   - IDSet: Set containing every given ID
func NewIDSet(ids ...int) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// Has reports whether the given ID is a member of the set.
func (s IDSet) Has(id int) bool {
	_, ok := s[id]

	return ok
}

// Add inserts the given ID into the set.
func (s IDSet) Add(id int) {
	s[id] = struct{}{}
}

// Len returns the number of IDs in the set.
func (s IDSet) Len() int {
	return len(s)
}
