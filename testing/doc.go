// Package testing provides test utilities for the quiz sampling library.
//
// This package offers helpers for deterministic sampling tests. It follows
// Go's convention of providing testing utilities in a dedicated package
// (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: types.Logger that writes to testing.T
//   - NewSequence: scripted types.Rand with inert shuffling, for asserting
//     on a policy's pre-shuffle constraint order
//
// Example usage:
//
//	import (
//	    "testing"
//	    quiztest "github.com/initram2002/random-quiz-regolamentari-c11/testing"
//	)
//
//	func TestMyPolicy(t *testing.T) {
//	    rng := quiztest.NewSequence(0, 3, 1)
//	    logger := quiztest.NewTestLogger(t)
//	    // Use rng and logger in your tests
//	}
package testing
