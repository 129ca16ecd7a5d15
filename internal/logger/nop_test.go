package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/initram2002/random-quiz-regolamentari-c11/types"
)

func TestNopLogger(t *testing.T) {
	log := NewNop()

	// Verify it implements the interface
	var _ types.Logger = log

	// All methods should be callable without panicking
	require.NotPanics(t, func() {
		log.Debug("test message", "key", "value")
		log.Info("test message", "key", "value")
		log.Warn("test message", "key", "value")
		log.Error("test message", "key", "value")
		log.Fatal("test message", "key", "value") // Should NOT exit
	})
}

func TestNopLogger_NoSideEffects(t *testing.T) {
	log := NewNop()

	// Should handle nil and empty arguments
	require.NotPanics(t, func() {
		log.Debug("")
		log.Info("msg", nil)
		log.Warn("msg", "dangling-key")
	})
}
