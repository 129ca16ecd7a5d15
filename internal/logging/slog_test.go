package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/initram2002/random-quiz-regolamentari-c11/types"
)

func TestSlogLogger_ImplementsInterface(t *testing.T) {
	var _ types.Logger = (*SlogLogger)(nil)
}

func TestSlogLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := NewSlog(slog.New(handler))

	log.Debug("candidate rejected", "id", 37, "reason", "excluded")
	log.Info("selection complete", "picks", 20)
	log.Warn("pool narrowed", "partition", "Regola ASS")
	log.Error("run failed", "attempts", 10000)

	out := buf.String()
	require.Contains(t, out, "candidate rejected")
	require.Contains(t, out, "id=37")
	require.Contains(t, out, "reason=excluded")
	require.Contains(t, out, "selection complete")
	require.Contains(t, out, "picks=20")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
}

func TestNewSlogDefault(t *testing.T) {
	log := NewSlogDefault()

	require.NotNil(t, log)
	require.NotPanics(t, func() {
		log.Debug("default logger message")
	})
}
