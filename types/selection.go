package types

import (
	"fmt"
	"strings"
)

// Pick is one selected (partition, question ID) pair.
type Pick struct {
	// Partition is the partition the question ID was drawn from.
	Partition Partition `json:"partition"`

	// ID is the selected question ID.
	ID int `json:"id"`
}

// Line renders the pick in the canonical output format "<label>: <id>".
func (p Pick) Line() string {
	return fmt.Sprintf("%s: %d", p.Partition.DisplayLabel(), p.ID)
}

// Selection is the ordered batch of picks produced by one sampling run.
//
// Invariant: all IDs are mutually distinct and none belongs to the
// exclusion set supplied to the run.
type Selection []Pick

// IDs returns the selected question IDs in selection order.
func (s Selection) IDs() []int {
	ids := make([]int, len(s))
	for i, p := range s {
		ids[i] = p.ID
	}

	return ids
}

// Lines renders one output line per pick, in selection order.
//
// Returns:
//   - []string: Lines formatted as "<label>: <id>"
func (s Selection) Lines() []string {
	lines := make([]string, len(s))
	for i, p := range s {
		lines[i] = p.Line()
	}

	return lines
}

// FlatIDs renders the selected IDs as a bracketed comma-separated list in
// selection order, e.g. "[37, 51, 630]".
//
// This is a best-effort secondary rendering for pasting into the next
// run's exclusion list.
func (s Selection) FlatIDs() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = fmt.Sprintf("%d", p.ID)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
