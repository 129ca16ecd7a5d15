package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/initram2002/random-quiz-regolamentari-c11/types"
)

// fileDocument is the on-disk YAML layout for a partition map.
type fileDocument struct {
	Partitions []types.Partition `yaml:"partitions"`
	Exclusions []int             `yaml:"exclusions"`
}

// File implements a partition source backed by a YAML document.
//
// The document carries the partition map and, optionally, the exclusion
// list of previously used question IDs:
//
//	partitions:
//	  - number: 1
//	    label: "Regola 1"
//	    min: 1
//	    max: 43
//	  - number: 2
//	    label: "Regola 2"
//	    min: 44
//	    max: 66
//	exclusions: [37, 51, 630]
type File struct {
	partitions []types.Partition
	exclusions types.IDSet
}

var _ types.PartitionSource = (*File)(nil)

// NewFile loads a partition map document from the given path.
//
// Parameters:
//   - path: Path to the YAML document
//
// Returns:
//   - *File: Loaded source
//   - error: Read or parse failure, or a document with no partitions
func NewFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read partition map: %w", err)
	}

	return ParseFile(data)
}

// ParseFile parses a partition map document from raw YAML bytes.
//
// Parameters:
//   - data: YAML document contents
//
// Returns:
//   - *File: Parsed source
//   - error: Parse failure or a document with no partitions
func ParseFile(data []byte) (*File, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse partition map: %w", err)
	}
	if len(doc.Partitions) == 0 {
		return nil, fmt.Errorf("parse partition map: %w", types.ErrInvalidSpace)
	}

	return &File{
		partitions: doc.Partitions,
		exclusions: types.NewIDSet(doc.Exclusions...),
	}, nil
}

// ListPartitions returns the partition map loaded from the document.
//
// Returns:
//   - []types.Partition: Partitions as declared in the document
//   - error: Always nil (never fails)
func (f *File) ListPartitions(_ context.Context) ([]types.Partition, error) {
	result := make([]types.Partition, len(f.partitions))
	copy(result, f.partitions)

	return result, nil
}

// Exclusions returns the exclusion set declared in the document.
//
// Returns:
//   - types.IDSet: Excluded question IDs (empty set if none declared)
func (f *File) Exclusions() types.IDSet {
	result := make(types.IDSet, f.exclusions.Len())
	for id := range f.exclusions {
		result.Add(id)
	}

	return result
}
