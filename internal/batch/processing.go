package batch

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/MeKo-Tech/langid/internal/pipeline"
)

// input is one non-blank line read from a file, with its 1-based line number.
type input struct {
	file string
	line int
	text string
}

// readInputs reads the non-blank lines of each file. With continueOnError
// set, unreadable files are recorded and skipped instead of aborting.
func readInputs(files []string, continueOnError bool) ([]input, []string, error) {
	var inputs []input
	var failed []string

	for _, file := range files {
		lines, err := readLines(file)
		if err != nil {
			if !continueOnError {
				return nil, nil, err
			}
			slog.Warn("skipping unreadable file", "file", file, "error", err)
			failed = append(failed, file)
			continue
		}
		inputs = append(inputs, lines...)
	}

	return inputs, failed, nil
}

// readLines reads one file into per-line inputs, skipping blank lines.
func readLines(path string) ([]input, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from CLI arguments
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var inputs []input
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		inputs = append(inputs, input{file: path, line: lineNo, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return inputs, nil
}

// detectInputs runs the detection pipeline over all inputs and tags each
// result with its origin. Results below minConfidence keep their metadata
// but are easy to filter downstream.
func detectInputs(ctx context.Context, pl *pipeline.Pipeline, inputs []input, config *Config) ([]Item, error) {
	texts := make([]string, len(inputs))
	for i, in := range inputs {
		texts[i] = in.text
	}

	results, err := pl.DetectBatchWithOptions(ctx, texts, pipeline.DetectOptions{
		Method:   config.Method,
		Cleaning: config.Cleaning,
	})
	if err != nil {
		return nil, err
	}

	items := make([]Item, len(results))
	for i, res := range results {
		if config.MinConfidence > 0 && res.Confidence < config.MinConfidence {
			res.Code = "unknown"
			res.Language = "Unknown"
			res.Family = "Unknown"
			res.IsEnglish = false
		}
		items[i] = Item{File: inputs[i].file, Line: inputs[i].line, Result: res}
	}

	return items, nil
}
