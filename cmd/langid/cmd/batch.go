package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/langid/internal/batch"
	"github.com/MeKo-Tech/langid/internal/config"
)

// batchCmd represents the batch command for parallel file processing.
var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Detect languages for text files in parallel",
	Long: `Detect the language of every non-blank line in the given text files.
Directories are scanned for matching files, and lines are processed in
parallel by a worker pool.

Examples:
  langid batch notes.txt
  langid batch inputs/ --recursive --workers 8
  langid batch a.txt b.txt --format json --output results.json
  langid batch inputs/ --include "*.txt" --exclude "draft*"`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runBatchCommand,
}

// configToBatchConfig maps centralized configuration to batch.Config.
// CLI flags override config file values.
func configToBatchConfig(cfg *config.Config, cmd *cobra.Command) *batch.Config {
	batchConfig := &batch.Config{
		Pipeline: cfg.ToPipelineConfig(),
	}

	batchConfig.Method, _ = cmd.Flags().GetString("method")
	batchConfig.Cleaning = cleaningFromFlags(cmd)
	batchConfig.MinConfidence, _ = cmd.Flags().GetFloat64("min-confidence")

	batchConfig.Format = cfg.Output.Format
	if cmd.Flags().Changed("format") {
		batchConfig.Format, _ = cmd.Flags().GetString("format")
	}

	batchConfig.OutputFile = cfg.Output.File
	if cmd.Flags().Changed("output") {
		batchConfig.OutputFile, _ = cmd.Flags().GetString("output")
	}

	batchConfig.Workers = cfg.Batch.Workers
	if cmd.Flags().Changed("workers") {
		batchConfig.Workers, _ = cmd.Flags().GetInt("workers")
	}

	batchConfig.ContinueOnError = cfg.Batch.ContinueOnError
	if cmd.Flags().Changed("continue-on-error") {
		batchConfig.ContinueOnError, _ = cmd.Flags().GetBool("continue-on-error")
	}

	// File discovery and progress settings are CLI-only
	batchConfig.Recursive, _ = cmd.Flags().GetBool("recursive")
	batchConfig.IncludePatterns, _ = cmd.Flags().GetStringSlice("include")
	batchConfig.ExcludePatterns, _ = cmd.Flags().GetStringSlice("exclude")
	batchConfig.Quiet, _ = cmd.Flags().GetBool("quiet")
	batchConfig.ShowStats, _ = cmd.Flags().GetBool("stats")

	return batchConfig
}

func runBatchCommand(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	batchConfig := configToBatchConfig(cfg, cmd)

	if !batchConfig.Quiet {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Processing %d path(s)...\n", len(args))
	}

	result, err := batch.ProcessFiles(context.Background(), args, batchConfig)
	if err != nil {
		return fmt.Errorf("batch processing failed: %w", err)
	}

	if err := result.SaveResults(batchConfig.Format, batchConfig.OutputFile, batchConfig.Quiet); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	if batchConfig.ShowStats {
		result.PrintStats(batchConfig.Quiet)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Detection flags (shared semantics with the text command)
	batchCmd.Flags().StringP("method", "m", "", "use a single detection method (lingua, whatlang, heuristic, onnx)")
	batchCmd.Flags().Bool("advanced-clean", false, "use the advanced cleaning pipeline")
	batchCmd.Flags().Bool("remove-punctuation", true, "remove punctuation during advanced cleaning")
	batchCmd.Flags().Bool("remove-numbers", false, "remove digits during advanced cleaning")
	batchCmd.Flags().Bool("remove-special", false, "remove non-alphanumeric characters during advanced cleaning")
	batchCmd.Flags().Float64("min-confidence", 0.0, "report results below this confidence as unknown (0.0-1.0)")

	// Output flags
	batchCmd.Flags().StringP("format", "f", "text", "output format: text, json, csv")
	batchCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	// Parallel processing flags
	batchCmd.Flags().IntP("workers", "w", 0, fmt.Sprintf("number of parallel workers (default: %d)", runtime.NumCPU()))
	batchCmd.Flags().Bool("continue-on-error", false, "skip unreadable files instead of aborting")

	// File discovery flags
	batchCmd.Flags().BoolP("recursive", "r", false, "recursively scan directories")
	batchCmd.Flags().StringSlice("include", []string{"*.txt"}, "file patterns to include")
	batchCmd.Flags().StringSlice("exclude", []string{}, "file patterns to exclude")

	// Progress and monitoring flags
	batchCmd.Flags().Bool("quiet", false, "suppress progress output")
	batchCmd.Flags().Bool("stats", false, "show processing statistics")
}
