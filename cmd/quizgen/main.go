// Command quizgen generates a constrained quiz question batch.
//
// By default it runs subset coverage over the 17 Regole del Giuoco del
// Calcio with the built-in exclusion list of the three previous quizzes,
// printing one "<label>: <id>" line per question followed by the flat ID
// list for the next run's exclusions.
//
// Usage:
//
//	quizgen [-seed N] [-mode full|subset] [-config partitions.yaml] [-verbose]
//
// On a fatal sampling error quizgen exits non-zero without printing any
// question lines.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	quiz "github.com/initram2002/random-quiz-regolamentari-c11"
	"github.com/initram2002/random-quiz-regolamentari-c11/internal/logging"
	"github.com/initram2002/random-quiz-regolamentari-c11/policy"
	"github.com/initram2002/random-quiz-regolamentari-c11/source"
)

func main() {
	var (
		seed       = flag.Int64("seed", 0, "deterministic seed (omit for system entropy)")
		mode       = flag.String("mode", "subset", "coverage mode: full (19 rules + 1 extra) or subset (17 rules + 3 extras)")
		configPath = flag.String("config", "", "optional YAML partition map with exclusions")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := quiz.DefaultConfig()
	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if seedSet {
		cfg.Seed = quiz.SeedValue(*seed)
	}

	src, excluded, err := buildInputs(*mode, *configPath)
	if err != nil {
		logger.Error("invalid inputs", "error", err)
		os.Exit(2)
	}

	var pol quiz.CoveragePolicy
	switch *mode {
	case "full":
		pol = policy.NewFullCoverage(policy.WithLogger(logger))
	case "subset":
		pol = policy.NewSubsetCoverage(policy.WithLogger(logger))
	default:
		logger.Error("unknown mode", "mode", *mode)
		os.Exit(2)
	}

	sampler, err := quiz.New(&cfg, src, pol, quiz.WithLogger(logger))
	if err != nil {
		logger.Error("initialize sampler", "error", err)
		os.Exit(2)
	}

	selection, err := sampler.Generate(context.Background(), excluded)
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	for _, line := range selection.Lines() {
		fmt.Println(line)
	}

	// Secondary rendering for the next run's exclusion list; best-effort,
	// never aborts a successful run.
	printFlatIDs(selection)
}

// buildInputs resolves the partition source and exclusion set from the
// config file when given, or from the built-in rule map otherwise.
func buildInputs(mode, configPath string) (quiz.PartitionSource, quiz.IDSet, error) {
	if configPath != "" {
		file, err := source.NewFile(configPath)
		if err != nil {
			return nil, nil, err
		}

		return file, file.Exclusions(), nil
	}

	partitions := source.FieldRules()
	if mode == "full" {
		partitions = source.Rules()
	}

	return source.NewStatic(partitions), source.PreviousQuizIDs(), nil
}

// printFlatIDs writes the bracketed flat ID list, swallowing any render
// panic so a formatting failure cannot abort an otherwise successful run.
func printFlatIDs(selection quiz.Selection) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "flat ID list unavailable:", r)
		}
	}()

	fmt.Println()
	fmt.Println(selection.FlatIDs())
}
