package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// methodsCmd lists the registered detection methods.
var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List available detection methods",
	Long: `List the detection methods registered with the current configuration.

The ONNX back-end only appears when a model is configured and loadable.

Examples:
  langid methods
  langid methods --format json`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pl, err := buildPipelineFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("failed to build detection pipeline: %w", err)
		}
		defer func() { _ = pl.Close() }()

		methods := pl.Methods()

		format, _ := cmd.Flags().GetString("format")
		if format == "json" {
			bts, err := json.MarshalIndent(struct {
				Methods []string `json:"methods"`
				Count   int      `json:"count"`
			}{methods, len(methods)}, "", "  ")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(bts))
			return nil
		}

		for _, m := range methods {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)

	methodsCmd.Flags().StringP("format", "f", "text", "output format: text, json")
	methodsCmd.Flags().String("model", "", "override ONNX model path")
}
