package batch

import (
	"github.com/MeKo-Tech/langid/internal/pipeline"
)

// buildPipeline builds the detection pipeline from the batch configuration.
func buildPipeline(config *Config) (*pipeline.Pipeline, error) {
	builder := pipeline.NewBuilder().
		WithWeights(config.Pipeline.Weights).
		WithWeightsFile(config.Pipeline.WeightsFile).
		WithCleaning(config.Pipeline.Cleaning).
		WithModel(config.Pipeline.Model).
		WithModelEnabled(config.Pipeline.ModelEnabled).
		WithMethods(config.Pipeline.Methods...)

	if config.Workers > 0 {
		builder = builder.WithWorkers(config.Workers)
	} else if config.Pipeline.Workers > 0 {
		builder = builder.WithWorkers(config.Pipeline.Workers)
	}

	return builder.Build()
}
