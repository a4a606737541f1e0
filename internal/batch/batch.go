package batch

// Package batch provides batch processing of text files for language detection.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// ProcessFiles detects the language of every non-blank line in the given
// files with the given configuration.
func ProcessFiles(ctx context.Context, paths []string, config *Config) (*Result, error) {
	files, err := discoverTextFiles(paths, config.Recursive, config.IncludePatterns, config.ExcludePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to discover input files: %w", err)
	}

	if len(files) == 0 {
		return nil, errors.New("no input files found")
	}

	inputs, failed, err := readInputs(files, config.ContinueOnError)
	if err != nil {
		return nil, err
	}

	pl, err := buildPipeline(config)
	if err != nil {
		return nil, fmt.Errorf("failed to build detection pipeline: %w", err)
	}
	defer func() {
		if err := pl.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing pipeline: %v\n", err)
		}
	}()

	startTime := time.Now()
	items, err := detectInputs(ctx, pl, inputs, config)
	duration := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("batch processing failed: %w", err)
	}

	workers := config.Workers
	if workers <= 0 {
		workers = pl.Config().Workers
	}

	return &Result{
		Items:       items,
		Files:       files,
		Failed:      failed,
		Duration:    duration,
		WorkerCount: workers,
	}, nil
}
