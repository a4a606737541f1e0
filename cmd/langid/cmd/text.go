package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/langid/internal/pipeline"
	"github.com/MeKo-Tech/langid/internal/textnorm"
)

// textCmd represents the text command for single-text detection.
var textCmd = &cobra.Command{
	Use:   "text [text]",
	Short: "Detect the language of a text",
	Long: `Detect the language of a single text using the ensemble of detection
back-ends, or a single back-end selected with --method.

The text is taken from the arguments, or from stdin when no arguments are
given.

Examples:
  langid text "Der schnelle braune Fuchs"
  langid text --method lingua "Bonjour tout le monde"
  echo "Hola mundo" | langid text --format json
  langid text --advanced-clean --show-signals "Visit https://example.com s'il vous plaît"`,
	SilenceUsage: true,
	RunE:         runTextCommand,
}

func runTextCommand(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	cfg := GetConfig()

	pl, err := buildPipelineFromFlags(cmd)
	if err != nil {
		return fmt.Errorf("failed to build detection pipeline: %w", err)
	}
	defer func() { _ = pl.Close() }()

	method, _ := cmd.Flags().GetString("method")
	res, err := pl.DetectWithOptions(context.Background(), text, pipeline.DetectOptions{
		Method:   method,
		Cleaning: cleaningFromFlags(cmd),
	})
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}

	showSignals := cfg.Output.ShowSignals
	if cmd.Flags().Changed("show-signals") {
		showSignals, _ = cmd.Flags().GetBool("show-signals")
	}
	if !showSignals {
		res.Signals = nil
	}

	output, err := formatResult(res, format, showSignals)
	if err != nil {
		return err
	}

	outputFile := cfg.Output.File
	if cmd.Flags().Changed("output") {
		outputFile, _ = cmd.Flags().GetString("output")
	}
	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(output), 0o600)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

// buildPipelineFromFlags builds a pipeline from the centralized config with
// CLI flag overrides.
func buildPipelineFromFlags(cmd *cobra.Command) (*pipeline.Pipeline, error) {
	cfg := GetConfig()
	pCfg := cfg.ToPipelineConfig()

	builder := pipeline.NewBuilder().
		WithWeights(pCfg.Weights).
		WithWeightsFile(pCfg.WeightsFile).
		WithCleaning(pCfg.Cleaning).
		WithModel(pCfg.Model).
		WithModelEnabled(pCfg.ModelEnabled).
		WithMethods(pCfg.Methods...).
		WithWorkers(pCfg.Workers)

	if cmd.Flags().Changed("model") {
		modelPath, _ := cmd.Flags().GetString("model")
		model := pCfg.Model
		model.ModelPath = modelPath
		builder = builder.WithModel(model)
	}

	return builder.Build()
}

// cleaningFromFlags maps cleaning flags onto normalizer options, or nil when
// none were set so the pipeline's configured defaults apply.
func cleaningFromFlags(cmd *cobra.Command) *textnorm.Options {
	changed := false
	for _, name := range []string{"advanced-clean", "remove-punctuation", "remove-numbers", "remove-special"} {
		if cmd.Flags().Changed(name) {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	opts := textnorm.DefaultOptions()
	opts.Advanced, _ = cmd.Flags().GetBool("advanced-clean")
	if cmd.Flags().Changed("remove-punctuation") {
		opts.RemovePunctuation, _ = cmd.Flags().GetBool("remove-punctuation")
	}
	opts.RemoveNumbers, _ = cmd.Flags().GetBool("remove-numbers")
	opts.RemoveSpecialChars, _ = cmd.Flags().GetBool("remove-special")
	return &opts
}

// formatResult renders a single detection result.
func formatResult(res *pipeline.Result, format string, showSignals bool) (string, error) {
	if format == "json" {
		bts, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return "", err
		}
		return string(bts) + "\n", nil
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf("Language: %s (%s)\n", res.Language, res.Code))
	out.WriteString(fmt.Sprintf("Family: %s\n", res.Family))
	out.WriteString(fmt.Sprintf("Confidence: %s\n", pipeline.FormatConfidence(res.Confidence)))
	out.WriteString(fmt.Sprintf("Method: %s\n", res.Method))
	if showSignals && len(res.Signals) > 0 {
		out.WriteString("Signals:\n")
		for name, sig := range res.Signals {
			out.WriteString(fmt.Sprintf("  %s: %s (%s)\n", name, sig.Code, pipeline.FormatConfidence(sig.Confidence)))
		}
	}
	return out.String(), nil
}

func init() {
	rootCmd.AddCommand(textCmd)

	textCmd.Flags().StringP("method", "m", "", "use a single detection method (lingua, whatlang, heuristic, onnx)")
	textCmd.Flags().Bool("advanced-clean", false, "use the advanced cleaning pipeline")
	textCmd.Flags().Bool("remove-punctuation", true, "remove punctuation during advanced cleaning")
	textCmd.Flags().Bool("remove-numbers", false, "remove digits during advanced cleaning")
	textCmd.Flags().Bool("remove-special", false, "remove non-alphanumeric characters during advanced cleaning")
	textCmd.Flags().Bool("show-signals", false, "include per-method signals in the output")
	textCmd.Flags().StringP("format", "f", "text", "output format: text, json")
	textCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	textCmd.Flags().String("model", "", "override ONNX model path")
}
