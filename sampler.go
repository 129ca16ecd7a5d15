package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/initram2002/random-quiz-regolamentari-c11/internal/logger"
	"github.com/initram2002/random-quiz-regolamentari-c11/internal/metrics"
	"github.com/initram2002/random-quiz-regolamentari-c11/internal/randutil"
)

// Sampler selects constrained quiz question batches from a partitioned
// question ID space.
//
// A Sampler is safe to reuse across runs: every Generate invocation builds
// its own randomness source (unless overridden via WithRand) and mutates no
// shared state.
type Sampler struct {
	cfg     Config
	source  PartitionSource
	policy  CoveragePolicy
	logger  Logger
	metrics MetricsCollector
	rand    Rand
}

// New creates a new Sampler.
//
// Parameters:
//   - cfg: Sampler configuration (validated; see Config.Validate)
//   - src: Partition source providing the partition map
//   - pol: Coverage policy governing batch composition
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithRand)
//
// Returns:
//   - *Sampler: Initialized sampler
//   - error: ErrInvalidConfig, ErrPartitionSourceRequired, or
//     ErrCoveragePolicyRequired
//
// Example:
//
//	cfg := quiz.DefaultConfig()
//	src := source.NewStatic(source.Rules())
//	sampler, err := quiz.New(&cfg, src, policy.NewFullCoverage())
func New(cfg *Config, src PartitionSource, pol CoveragePolicy, opts ...Option) (*Sampler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrPartitionSourceRequired
	}
	if pol == nil {
		return nil, ErrCoveragePolicyRequired
	}

	options := samplerOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Sampler{
		cfg:     *cfg,
		source:  src,
		policy:  pol,
		logger:  options.logger,
		metrics: options.metrics,
		rand:    options.rand,
	}, nil
}

// Generate runs one sampling invocation and returns the finalized
// selection.
//
// The run loads the partition map, validates it into a Space, delegates
// batch composition to the coverage policy, and shuffles the result so
// partition-coverage order is not exposed. On any error no partial
// selection is returned.
//
// Parameters:
//   - ctx: Context for partition source cancellation
//   - excluded: Question IDs that must never be selected (nil means none;
//     IDs outside the valid space are ignored)
//
// Returns:
//   - Selection: Shuffled batch of exactly Config.BatchSize picks
//   - error: Space validation or policy error (see policy package)
func (s *Sampler) Generate(ctx context.Context, excluded IDSet) (Selection, error) {
	runID := uuid.NewString()
	if excluded == nil {
		excluded = IDSet{}
	}

	rng, err := s.runRand()
	if err != nil {
		return nil, fmt.Errorf("initialize randomness source: %w", err)
	}

	partitions, err := s.source.ListPartitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partitions: %w", err)
	}

	space, err := NewSpace(partitions)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("sampling run started",
		"run_id", runID,
		"policy", s.policy.Name(),
		"partitions", space.Len(),
		"space_size", space.Size(),
		"excluded", excluded.Len(),
		"batch_size", s.cfg.BatchSize,
	)

	start := time.Now()
	picks, err := s.policy.Select(rng, space, excluded, s.cfg.BatchSize)
	s.metrics.RecordGenerationDuration(time.Since(start).Seconds(), s.policy.Name())
	s.metrics.RecordGenerationResult(s.policy.Name(), err == nil)
	if err != nil {
		s.logger.Error("sampling run failed", "run_id", runID, "error", err)
		return nil, err
	}

	// Hide the policy's constraint order from the output.
	rng.Shuffle(len(picks), func(i, j int) {
		picks[i], picks[j] = picks[j], picks[i]
	})

	s.metrics.RecordSelectionSize(len(picks))
	s.logger.Info("sampling run complete",
		"run_id", runID,
		"policy", s.policy.Name(),
		"picks", len(picks),
		"duration", time.Since(start),
	)

	return Selection(picks), nil
}

// runRand returns the randomness source for one run: the fixed source when
// WithRand was supplied, a seeded source when Config.Seed is set, and an
// entropy-seeded source otherwise.
func (s *Sampler) runRand() (Rand, error) {
	if s.rand != nil {
		return s.rand, nil
	}
	if s.cfg.Seed != nil {
		return randutil.NewSeeded(*s.cfg.Seed), nil
	}

	return randutil.NewEntropy()
}
