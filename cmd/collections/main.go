package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"

	"collections/internal/scenario"
)

func main() {
	var (
		logLevel      string
		logJSON       bool
		stopOnFailure bool
	)
	flag.StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	flag.BoolVar(&logJSON, "log-json", false, "emit logs as JSON")
	flag.BoolVar(&stopOnFailure, "stop-on-failure", false, "stop after the first failing scenario")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scenario.yaml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	level, err := parseLevel(logLevel)
	if err != nil {
		fmt.Fprintln(flag.CommandLine.Output(), err)
		flag.Usage()
		os.Exit(2)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "collections",
		Level:      level,
		JSONFormat: logJSON,
		Output:     os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := run(ctx, logger, flag.Args(), stopOnFailure)
	if failed > 0 {
		logger.Error("scenarios failed", "failed", failed, "total", flag.NArg())
		stop()
		os.Exit(1)
	}
	logger.Info("all scenarios passed", "total", flag.NArg())
}

func parseLevel(s string) (hclog.Level, error) {
	level := hclog.LevelFromString(s)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// run executes each scenario file and returns how many failed.
func run(ctx context.Context, logger hclog.Logger, paths []string, stopOnFailure bool) int {
	failed := 0
	for _, path := range paths {
		if err := runFile(ctx, logger, path); err != nil {
			logger.Error("scenario failed", "path", path, "error", err)
			failed++
			if stopOnFailure {
				break
			}
		}
	}
	return failed
}

func runFile(ctx context.Context, logger hclog.Logger, path string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	report, err := s.Run(ctx, logger)
	if err != nil {
		return err
	}
	logger.Info("scenario passed", "name", report.Name, "steps", report.Steps)
	return nil
}
