// Package quiz provides a Go library for constrained sampling of quiz
// question batches from a partitioned question ID space.
//
// The sampler selects a fixed-size batch of question IDs subject to
// non-repetition and per-partition-coverage constraints, for use as a
// weekly quiz question set. Question IDs map to partitions (the Regole of
// the refereeing regulatory texts) by interval membership; IDs used in
// previous quizzes form an exclusion set that is never selected again.
//
// # Quick Start
//
// Basic usage with the built-in partition map:
//
//	import (
//	    quiz "github.com/initram2002/random-quiz-regolamentari-c11"
//	    "github.com/initram2002/random-quiz-regolamentari-c11/policy"
//	    "github.com/initram2002/random-quiz-regolamentari-c11/source"
//	)
//
//	cfg := quiz.DefaultConfig()
//	cfg.Seed = quiz.SeedValue(42)
//
//	src := source.NewStatic(source.Rules())
//	sampler, err := quiz.New(&cfg, src, policy.NewFullCoverage())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	selection, err := sampler.Generate(ctx, source.PreviousQuizIDs())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range selection.Lines() {
//	    fmt.Println(line)
//	}
//
// # Key Features
//
//   - Coverage policies: full coverage plus one extra slot, or subset
//     coverage plus diversified extension picks
//   - Exclusion sets: previously used IDs are never selected again
//   - Injected randomness: deterministic runs under a fixed seed, system
//     entropy otherwise; no hidden global RNG state
//   - Bounded termination: rejection sampling is capped by an attempt
//     ceiling instead of looping forever near exclusion saturation
//   - Fatal errors abort the run with no partial output
//
// # Architecture
//
// One Generate invocation runs to completion synchronously:
//
//	ListPartitions → NewSpace → policy.Select → shuffle → Selection
//
// The coverage policy receives the validated space, the exclusion set, and
// the run's randomness source; the sampler shuffles the policy's picks so
// partition-coverage order is not exposed in the output.
//
// # Advanced Usage
//
// Custom policy configuration with options:
//
//	import (
//	    quiz "github.com/initram2002/random-quiz-regolamentari-c11"
//	    "github.com/initram2002/random-quiz-regolamentari-c11/policy"
//	)
//
//	pol := policy.NewSubsetCoverage(
//	    policy.WithMetrics(collector),
//	)
//
//	sampler, err := quiz.New(&cfg, src, pol,
//	    quiz.WithLogger(logger),
//	    quiz.WithMetrics(collector),
//	)
//
// See the examples/ directory for complete working examples.
package quiz
