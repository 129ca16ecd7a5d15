package quiz

import "fmt"

// DefaultBatchSize is the standard quiz battery size: one question per
// partition of the full 19-rule map plus one extra slot.
const DefaultBatchSize = 20

// Config is the configuration for the Sampler.
type Config struct {
	// BatchSize is the total number of questions selected per run.
	BatchSize int `yaml:"batchSize"`

	// Seed is the optional deterministic seed for the run's randomness
	// source. When nil, each run seeds itself from system entropy. Two runs
	// with the same seed, partition map, and exclusion set select the same
	// question IDs.
	Seed *int64 `yaml:"seed,omitempty"`
}

// DefaultConfig returns a configuration with standard values.
//
// Returns:
//   - Config: BatchSize 20, entropy-seeded randomness
func DefaultConfig() Config {
	return Config{
		BatchSize: DefaultBatchSize,
	}
}

// SeedValue returns a pointer to the given seed for use in Config.Seed.
//
// Parameters:
//   - seed: Deterministic seed value
//
// Returns:
//   - *int64: Pointer suitable for Config.Seed
func SeedValue(seed int64) *int64 {
	return &seed
}

// Validate checks the configuration for invalid values.
//
// Returns:
//   - error: Error wrapping ErrInvalidConfig, or nil when valid
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidConfig, c.BatchSize)
	}

	return nil
}
