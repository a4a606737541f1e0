package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveModelsDir(t *testing.T) {
	t.Setenv(EnvModelsDir, "")
	assert.Equal(t, DefaultModelsDir, ResolveModelsDir(""))
	assert.Equal(t, "/opt/models", ResolveModelsDir("/opt/models"))
}

func TestResolveModelsDirEnvOverride(t *testing.T) {
	t.Setenv(EnvModelsDir, "/env/models")
	assert.Equal(t, "/env/models", ResolveModelsDir(""))

	// Explicit directory wins over the environment.
	assert.Equal(t, "/opt/models", ResolveModelsDir("/opt/models"))
}

func TestClassifierPaths(t *testing.T) {
	t.Setenv(EnvModelsDir, "")
	assert.Equal(t, filepath.Join("models", ClassifierModel), ClassifierModelPath(""))
	assert.Equal(t, filepath.Join("/opt/m", ClassifierLabels), ClassifierLabelsPath("/opt/m"))
}

func TestLabelsPathFor(t *testing.T) {
	assert.Empty(t, LabelsPathFor(""))
	assert.Equal(t,
		filepath.Join("/opt/m", ClassifierLabels),
		LabelsPathFor(filepath.Join("/opt/m", "custom.onnx")))
}
