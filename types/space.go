package types

import (
	"fmt"
	"sort"
)

// Space is a validated, immutable set of disjoint partitions covering a
// contiguous question ID range.
//
// A Space is constructed once per sampling run from the caller-supplied
// partition map and is read-only afterwards. It resolves question IDs to
// their owning partition by interval membership.
type Space struct {
	partitions []Partition
	min        int
	max        int
}

// NewSpace builds a Space from the given partitions.
//
// Validation rules:
//   - At least one partition must be provided
//   - Every interval must be non-empty (Min <= Max)
//   - Partition numbers must be unique
//   - Sorted by Min, intervals must be disjoint and gap-free
//
// The input slice is copied; the caller may reuse it afterwards.
//
// Parameters:
//   - partitions: Partition map in any order
//
// Returns:
//   - *Space: Validated space covering [MinID, MaxID]
//   - error: Validation error wrapping ErrInvalidSpace
func NewSpace(partitions []Partition) (*Space, error) {
	if len(partitions) == 0 {
		return nil, fmt.Errorf("%w: no partitions", ErrInvalidSpace)
	}

	sorted := make([]Partition, len(partitions))
	copy(sorted, partitions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	numbers := make(map[int]struct{}, len(sorted))
	for i, p := range sorted {
		if p.Max < p.Min {
			return nil, fmt.Errorf("%w: partition %d has inverted interval [%d, %d]",
				ErrInvalidSpace, p.Number, p.Min, p.Max)
		}
		if _, dup := numbers[p.Number]; dup {
			return nil, fmt.Errorf("%w: duplicate partition number %d", ErrInvalidSpace, p.Number)
		}
		numbers[p.Number] = struct{}{}

		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		if p.Min <= prev.Max {
			return nil, fmt.Errorf("%w: partition %d overlaps partition %d",
				ErrInvalidSpace, p.Number, prev.Number)
		}
		if p.Min != prev.Max+1 {
			return nil, fmt.Errorf("%w: gap between partition %d and partition %d (IDs %d-%d unowned)",
				ErrInvalidSpace, prev.Number, p.Number, prev.Max+1, p.Min-1)
		}
	}

	return &Space{
		partitions: sorted,
		min:        sorted[0].Min,
		max:        sorted[len(sorted)-1].Max,
	}, nil
}

// Resolve maps a question ID to its owning partition.
//
// Parameters:
//   - id: Question ID to resolve
//
// Returns:
//   - Partition: Owning partition
//   - error: *OutOfRangeError if no partition contains the ID
func (s *Space) Resolve(id int) (Partition, error) {
	for _, p := range s.partitions {
		if p.Contains(id) {
			return p, nil
		}
	}

	return Partition{}, &OutOfRangeError{ID: id, Min: s.min, Max: s.max}
}

// Contains reports whether the given question ID belongs to the space.
func (s *Space) Contains(id int) bool {
	return id >= s.min && id <= s.max
}

// Partitions returns a copy of the partitions sorted by interval lower bound.
func (s *Space) Partitions() []Partition {
	result := make([]Partition, len(s.partitions))
	copy(result, s.partitions)

	return result
}

// Len returns the number of partitions in the space.
func (s *Space) Len() int {
	return len(s.partitions)
}

// MinID returns the smallest valid question ID.
func (s *Space) MinID() int {
	return s.min
}

// MaxID returns the largest valid question ID.
func (s *Space) MaxID() int {
	return s.max
}

// Size returns the total number of valid question IDs.
func (s *Space) Size() int {
	return s.max - s.min + 1
}
