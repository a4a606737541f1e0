package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/langid/internal/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Verbose)
	assert.NotEmpty(t, cfg.Pipeline.Weights)
	assert.True(t, cfg.Pipeline.Cleaning.RemovePunctuation)
	assert.False(t, cfg.Pipeline.Model.Enabled)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Batch.Workers)
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: "log_level",
		},
		{
			name:    "log level is case insensitive",
			mutate:  func(c *Config) { c.LogLevel = "DEBUG" },
			wantErr: "",
		},
		{
			name:    "weight above one",
			mutate:  func(c *Config) { c.Pipeline.Weights = map[string]float64{"lingua": 1.5} },
			wantErr: "pipeline.weights",
		},
		{
			name:    "weight of zero",
			mutate:  func(c *Config) { c.Pipeline.Weights = map[string]float64{"lingua": 0} },
			wantErr: "pipeline.weights",
		},
		{
			name:    "negative pipeline workers",
			mutate:  func(c *Config) { c.Pipeline.Workers = -1 },
			wantErr: "pipeline.workers",
		},
		{
			name: "model enabled with path",
			mutate: func(c *Config) {
				c.Pipeline.Model.Enabled = true
				c.Pipeline.Model.Path = "/models/langid.onnx"
			},
			wantErr: "",
		},
		{
			name:    "negative feature dim",
			mutate:  func(c *Config) { c.Pipeline.Model.FeatureDim = -1 },
			wantErr: "feature_dim",
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "output.format",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "negative batch workers",
			mutate:  func(c *Config) { c.Batch.Workers = -2 },
			wantErr: "batch.workers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestToPipelineConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pipeline.Weights = map[string]float64{"heuristic": 0.35}
	cfg.Pipeline.Cleaning.Advanced = true
	cfg.Pipeline.Cleaning.RemoveNumbers = true
	cfg.Pipeline.Model.Path = "/models/langid.onnx"
	cfg.Pipeline.Model.Enabled = true
	cfg.Pipeline.Workers = 7

	pc := cfg.ToPipelineConfig()

	// Overrides merge onto the built-in table rather than replacing it.
	assert.InDelta(t, 0.35, pc.Weights["heuristic"], 1e-9)
	assert.Contains(t, pc.Weights, "lingua")
	assert.True(t, pc.Cleaning.Advanced)
	assert.True(t, pc.Cleaning.RemoveNumbers)
	assert.Equal(t, "/models/langid.onnx", pc.Model.ModelPath)
	assert.Equal(t, filepath.Join("/models", models.ClassifierLabels), pc.Model.LabelsPath)
	assert.True(t, pc.ModelEnabled)
	assert.Equal(t, 7, pc.Workers)
}

func TestToPipelineConfigZeroWorkersKeepsDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pipeline.Workers = 0

	pc := cfg.ToPipelineConfig()
	assert.Positive(t, pc.Workers)
}

func TestToServerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 9090
	cfg.Server.CORSOrigin = "https://example.com"

	sc := cfg.ToServerConfig()

	assert.Equal(t, "0.0.0.0", sc.Host)
	assert.Equal(t, 9090, sc.Port)
	assert.Equal(t, "https://example.com", sc.CORSOrigin)
	assert.NotEmpty(t, sc.PipelineConfig.Weights)
}
