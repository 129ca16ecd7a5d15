package quiz

// Option configures a Sampler with optional dependencies.
type Option func(*samplerOptions)

// samplerOptions holds optional Sampler configuration.
type samplerOptions struct {
	logger  Logger
	metrics MetricsCollector
	rand    Rand
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	sampler, err := quiz.New(&cfg, src, pol, quiz.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *samplerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "quiz")
//	sampler, err := quiz.New(&cfg, src, pol, quiz.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *samplerOptions) {
		o.metrics = metrics
	}
}

// WithRand sets a fixed randomness source used for every run.
//
// This overrides per-run seeding from Config.Seed and is intended for
// tests that script or reuse a source across runs. Production callers
// should prefer Config.Seed.
//
// Parameters:
//   - rng: Rand implementation
//
// Returns:
//   - Option: Functional option for New
func WithRand(rng Rand) Option {
	return func(o *samplerOptions) {
		o.rand = rng
	}
}
