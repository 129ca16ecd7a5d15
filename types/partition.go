package types

import "strconv"

// Partition represents a labeled interval of the question ID space.
//
// A partition owns a contiguous, closed integer interval [Min, Max] of
// valid question IDs. Partitions are disjoint and their union forms the
// full valid ID space. In the refereeing quiz domain a partition maps to
// a Rule (Regola) of a regulatory text.
type Partition struct {
	// Number identifies the partition (e.g., rule number 1-19).
	Number int `yaml:"number" json:"number"`

	// Label is an optional symbolic display label overriding the bare
	// number (e.g., "Regola ASS" for the association bylaws partition).
	Label string `yaml:"label,omitempty" json:"label,omitempty"`

	// Min is the smallest question ID owned by this partition (inclusive).
	Min int `yaml:"min" json:"min"`

	// Max is the largest question ID owned by this partition (inclusive).
	Max int `yaml:"max" json:"max"`
}

// Contains reports whether the given question ID belongs to this partition.
func (p Partition) Contains(id int) bool {
	return id >= p.Min && id <= p.Max
}

// Size returns the number of question IDs owned by this partition.
//
// Returns:
//   - int: Interval width (0 if the interval is inverted)
func (p Partition) Size() int {
	if p.Max < p.Min {
		return 0
	}

	return p.Max - p.Min + 1
}

// DisplayLabel returns the label to print for this partition.
//
// Most partitions use their bare number; designated exceptions carry a
// symbolic label set in the Label field.
//
// Returns:
//   - string: Label if set, otherwise the decimal partition number
func (p Partition) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}

	return strconv.Itoa(p.Number)
}

// Compare orders partitions by their interval lower bound, breaking ties
// by partition number.
//
// Returns:
//   - int: -1 if p < q, 0 if equal, +1 if p > q
func (p Partition) Compare(q Partition) int {
	if p.Min != q.Min {
		if p.Min < q.Min {
			return -1
		}

		return 1
	}
	if p.Number == q.Number {
		return 0
	}
	if p.Number < q.Number {
		return -1
	}

	return 1
}
