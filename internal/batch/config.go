package batch

import (
	"fmt"
	"os"
	"time"

	"github.com/MeKo-Tech/langid/internal/pipeline"
	"github.com/MeKo-Tech/langid/internal/textnorm"
)

// Config holds all configuration for batch file processing.
type Config struct {
	// Detection settings
	Method        string
	Cleaning      *textnorm.Options
	MinConfidence float64

	// Pipeline settings
	Pipeline pipeline.Config

	// Output settings
	Format     string
	OutputFile string

	// Parallel processing settings
	Workers int

	// File discovery settings
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string

	// Progress settings
	Quiet           bool
	ShowStats       bool
	ContinueOnError bool
}

// Item is one detected line of input, tagged with its origin.
type Item struct {
	File   string           `json:"file"`
	Line   int              `json:"line"`
	Result *pipeline.Result `json:"result"`
}

// Result holds the result of batch processing.
type Result struct {
	Items       []Item
	Files       []string
	Failed      []string
	Duration    time.Duration
	WorkerCount int
}

// FormatResults formats the batch processing results in the specified format.
func (r *Result) FormatResults(format string) (string, error) {
	return formatBatchResults(r.Items, format)
}

// SaveResults saves the formatted results to a file or stdout.
func (r *Result) SaveResults(format, outputFile string, quiet bool) error {
	output, err := r.FormatResults(format)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0o600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !quiet {
			_, _ = fmt.Fprintf(os.Stdout, "Results written to %s\n", outputFile)
		}
	} else {
		_, _ = fmt.Fprint(os.Stdout, output)
	}

	return nil
}

// PrintStats prints processing statistics.
func (r *Result) PrintStats(quiet bool) {
	if quiet {
		return
	}

	detected := 0
	for _, item := range r.Items {
		if item.Result != nil && item.Result.Code != "unknown" {
			detected++
		}
	}

	throughput := 0.0
	if r.Duration > 0 {
		throughput = float64(len(r.Items)) / r.Duration.Seconds()
	}

	_, _ = fmt.Fprintf(os.Stdout, "\nProcessing Statistics:\n")
	_, _ = fmt.Fprintf(os.Stdout, "  Files: %d\n", len(r.Files))
	_, _ = fmt.Fprintf(os.Stdout, "  Failed files: %d\n", len(r.Failed))
	_, _ = fmt.Fprintf(os.Stdout, "  Texts: %d\n", len(r.Items))
	_, _ = fmt.Fprintf(os.Stdout, "  Detected: %d\n", detected)
	_, _ = fmt.Fprintf(os.Stdout, "  Workers: %d\n", r.WorkerCount)
	_, _ = fmt.Fprintf(os.Stdout, "  Duration: %v\n", r.Duration.Round(time.Millisecond))
	_, _ = fmt.Fprintf(os.Stdout, "  Throughput: %.1f texts/sec\n", throughput)
}
