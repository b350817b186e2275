// Copyright 2025 go-fxrsqrt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command rsqrtcheck generates reference vectors, evaluates them with the
// fx estimator on each dispatch level and reports the accuracy.
//
// Usage:
//
//	rsqrtcheck [-config check.toml] [-seed N] [-count N] [-levels both]
//	           [-workers N] [-json] [-header vectors.h] [-v]
//	rsqrtcheck -write-config check.toml
//
// It exits 1 when a level misses the accuracy bound and 2 on other errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/ajroetker/go-fxrsqrt/fx"
	"github.com/ajroetker/go-fxrsqrt/fx/accuracy"
	"github.com/ajroetker/go-fxrsqrt/internal/logging"
)

var errCheckFailed = errors.New("accuracy check failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errCheckFailed):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "rsqrtcheck: %v\n", err)
		os.Exit(2)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rsqrtcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	defaults := defaultConfig()
	configPath := fs.String("config", "", "TOML config file")
	writeConfig := fs.String("write-config", "", "write an example config to this path and exit")
	seed := fs.Int64("seed", defaults.Seed, "MT19937 seed for the random vectors")
	count := fs.Int("count", defaults.Count, "number of random vectors")
	workers := fs.Int("workers", defaults.Workers, "parallel workers, 0 for GOMAXPROCS")
	levels := fs.String("levels", defaults.Levels, "native, software or both")
	jsonOut := fs.Bool("json", defaults.JSON, "print the report as JSON")
	header := fs.String("header", defaults.Header, "write the vectors to this C header")
	verbose := fs.Bool("v", defaults.Verbose, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *writeConfig != "" {
		return writeExampleConfig(*writeConfig)
	}

	cfg := defaults
	if *configPath != "" {
		var err error
		if cfg, err = loadConfigFile(*configPath); err != nil {
			return err
		}
	}
	// Flags given on the command line win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "count":
			cfg.Count = *count
		case "workers":
			cfg.Workers = *workers
		case "levels":
			cfg.Levels = *levels
		case "json":
			cfg.JSON = *jsonOut
		case "header":
			cfg.Header = *header
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if cfg.Verbose {
		logLevel = slog.LevelDebug
	}
	log := logging.New(stderr, logLevel, false).WithSeed(cfg.Seed)

	return check(ctx, cfg, log, stdout)
}

func check(ctx context.Context, cfg Config, log *logging.Logger, stdout io.Writer) error {
	levels, err := cfg.levels()
	if err != nil {
		return err
	}

	vectors := accuracy.Generate(cfg.Seed, cfg.Count)
	inputs := accuracy.Inputs(vectors)
	log.Debug("generated vectors", "count", len(vectors), "active", fx.CurrentName())

	if cfg.Header != "" {
		if err := writeHeader(cfg.Header, vectors); err != nil {
			return err
		}
		log.Info("wrote header", "path", cfg.Header, "vectors", len(vectors))
	}

	results := make([]result, 0, len(levels))
	estimates := make([]uint32, len(inputs))
	for _, level := range levels {
		llog := log.WithDispatch(level.String())
		start := time.Now()
		if err := fx.NewEstimator(level).ParallelEstimate(ctx, estimates, inputs, cfg.Workers); err != nil {
			return fmt.Errorf("estimate on %s: %w", level, err)
		}
		elapsed := time.Since(start)

		report := accuracy.Check(vectors, estimates)
		report.Level = level.String()
		results = append(results, newResult(report, elapsed))

		llog.Info("checked",
			"vectors", report.Count,
			"max_relative_error", report.MaxRelativeError,
			"worst_input", report.WorstInput,
			"high_range_violations", report.HighRangeViolations,
			"elapsed", elapsed)
		for _, s := range report.Flagged {
			llog.Debug("flagged", "input", s.Input, "estimate", s.Estimate, "answer", s.Answer, "percent", s.Percent)
		}
	}

	log.Debug("done", "summary", summary(results))

	if cfg.JSON {
		err = accuracy.WriteJSON(stdout, results)
	} else {
		err = writeTextReport(stdout, results)
	}
	if err != nil {
		return err
	}

	for _, r := range results {
		if !r.Passed {
			return errCheckFailed
		}
	}
	return nil
}

func writeHeader(path string, vectors []accuracy.Vector) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create header: %w", err)
	}
	if err := accuracy.WriteCHeader(f, vectors); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	return f.Close()
}
