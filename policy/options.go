package policy

import (
	"github.com/initram2002/random-quiz-regolamentari-c11/internal/logger"
	"github.com/initram2002/random-quiz-regolamentari-c11/internal/metrics"
	"github.com/initram2002/random-quiz-regolamentari-c11/types"
)

// DefaultMaxAttempts is the default draw ceiling for rejection-sampling
// policies. Generous for the intended problem size (~700 IDs, 20 picks)
// while still guaranteeing termination near exclusion saturation.
const DefaultMaxAttempts = 10000

func defaultSettings() settings {
	return settings{
		maxAttempts: DefaultMaxAttempts,
		logger:      logger.NewNop(),
		metrics:     metrics.NewNop(),
	}
}

// Option configures a coverage policy.
type Option func(*settings)

// settings holds optional policy configuration shared by the built-in
// policies.
type settings struct {
	maxAttempts int
	logger      types.Logger
	metrics     types.MetricsCollector
}

// WithMaxAttempts sets the draw ceiling for rejection-sampling policies.
//
// The ceiling bounds the otherwise unbounded accept/reject loop: when no
// acceptable candidate is found within maxAttempts draws the policy fails
// with ExhaustedSpaceError instead of looping forever. Only FullCoverage
// consults this value.
//
// Parameters:
//   - n: Maximum number of candidate draws per run (default: 10000)
//
// Returns:
//   - Option: Configuration option
func WithMaxAttempts(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithLogger sets a logger for policy-level draw diagnostics.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets a metrics collector for draw attempts, rejections, pool
// sizes, and adjacency fallbacks.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Configuration option
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(s *settings) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}
