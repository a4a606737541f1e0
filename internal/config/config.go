package config

import (
	"fmt"
	"strings"

	"github.com/MeKo-Tech/langid/internal/aggregate"
	"github.com/MeKo-Tech/langid/internal/detector"
	"github.com/MeKo-Tech/langid/internal/models"
	"github.com/MeKo-Tech/langid/internal/pipeline"
	"github.com/MeKo-Tech/langid/internal/server"
	"github.com/MeKo-Tech/langid/internal/textnorm"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Pipeline: PipelineConfig{
			Weights: aggregate.DefaultWeights(),
			Cleaning: CleaningConfig{
				Advanced:           false,
				RemovePunctuation:  true,
				RemoveNumbers:      false,
				RemoveSpecialChars: false,
			},
			Model: ModelConfig{
				Enabled:    false,
				FeatureDim: 0, // adapter default
			},
			Workers: 0, // pipeline default (NumCPU)
		},
		Output: OutputConfig{
			Format:              "text",
			ConfidencePrecision: 2,
			ShowSignals:         false,
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORSOrigin:      "*",
			MaxBodyKB:       512,
			TimeoutSec:      30,
			ShutdownTimeout: 10,
		},
		Batch: BatchConfig{
			Workers:         4,
			ContinueOnError: false,
		},
	}
}

// validLogLevels are the accepted log_level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validOutputFormats are the accepted output.format values.
var validOutputFormats = map[string]bool{
	"text": true,
	"json": true,
	"csv":  true,
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q (expected debug, info, warn, or error)", c.LogLevel)
	}

	if err := aggregate.Weights(c.Pipeline.Weights).Validate(); err != nil {
		return fmt.Errorf("invalid pipeline.weights: %w", err)
	}
	if c.Pipeline.Workers < 0 {
		return fmt.Errorf("pipeline.workers must not be negative, got %d", c.Pipeline.Workers)
	}
	if c.Pipeline.Model.FeatureDim < 0 {
		return fmt.Errorf("pipeline.model.feature_dim must not be negative, got %d", c.Pipeline.Model.FeatureDim)
	}

	if c.Output.Format != "" && !validOutputFormats[strings.ToLower(c.Output.Format)] {
		return fmt.Errorf("invalid output.format %q (expected text, json, or csv)", c.Output.Format)
	}
	if c.Output.ConfidencePrecision < 0 || c.Output.ConfidencePrecision > 10 {
		return fmt.Errorf("output.confidence_precision must be between 0 and 10, got %d", c.Output.ConfidencePrecision)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.MaxBodyKB < 0 {
		return fmt.Errorf("server.max_body_kb must not be negative, got %d", c.Server.MaxBodyKB)
	}
	if c.Server.TimeoutSec < 0 {
		return fmt.Errorf("server.timeout_sec must not be negative, got %d", c.Server.TimeoutSec)
	}

	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must not be negative, got %d", c.Batch.Workers)
	}

	return nil
}

// ToPipelineConfig converts the file layer into the pipeline's runtime config.
func (c *Config) ToPipelineConfig() pipeline.Config {
	cfg := pipeline.DefaultConfig()
	if len(c.Pipeline.Weights) > 0 {
		cfg.Weights = cfg.Weights.Merge(aggregate.Weights(c.Pipeline.Weights))
	}
	cfg.WeightsFile = c.Pipeline.WeightsFile
	cfg.Methods = c.Pipeline.Methods
	cfg.Cleaning = textnorm.Options{
		Advanced:           c.Pipeline.Cleaning.Advanced,
		RemovePunctuation:  c.Pipeline.Cleaning.RemovePunctuation,
		RemoveNumbers:      c.Pipeline.Cleaning.RemoveNumbers,
		RemoveSpecialChars: c.Pipeline.Cleaning.RemoveSpecialChars,
	}
	modelPath := c.Pipeline.Model.Path
	if modelPath == "" && c.Pipeline.Model.Enabled {
		modelPath = models.ClassifierModelPath("")
	}
	labelsPath := c.Pipeline.Model.LabelsPath
	if labelsPath == "" {
		labelsPath = models.LabelsPathFor(modelPath)
	}
	cfg.Model = detector.ONNXConfig{
		ModelPath:   modelPath,
		LabelsPath:  labelsPath,
		LibraryPath: c.Pipeline.Model.LibraryPath,
		FeatureDim:  c.Pipeline.Model.FeatureDim,
	}
	cfg.ModelEnabled = c.Pipeline.Model.Enabled
	if c.Pipeline.Workers > 0 {
		cfg.Workers = c.Pipeline.Workers
	}
	return cfg
}

// ToServerConfig converts the file layer into the HTTP server's config.
func (c *Config) ToServerConfig() server.Config {
	return server.Config{
		Host:           c.Server.Host,
		Port:           c.Server.Port,
		CORSOrigin:     c.Server.CORSOrigin,
		MaxBodyKB:      c.Server.MaxBodyKB,
		TimeoutSec:     c.Server.TimeoutSec,
		PipelineConfig: c.ToPipelineConfig(),
	}
}
