package quiz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 20, cfg.BatchSize)
	require.Nil(t, cfg.Seed)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("rejects zero batch size", func(t *testing.T) {
		cfg := Config{BatchSize: 0}
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects negative batch size", func(t *testing.T) {
		cfg := Config{BatchSize: -5}
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("accepts seeded config", func(t *testing.T) {
		cfg := Config{BatchSize: 20, Seed: SeedValue(42)}
		require.NoError(t, cfg.Validate())
	})
}

func TestSeedValue(t *testing.T) {
	seed := SeedValue(42)

	require.NotNil(t, seed)
	require.Equal(t, int64(42), *seed)
}
