package models

import (
	"os"
	"path/filepath"
)

// Model file name constants to avoid typos and ensure consistency.
const (
	// ClassifierModel is the bundled trigram language classifier.
	ClassifierModel = "langid_classifier.onnx"

	// ClassifierLabels is the index-aligned language code list for the
	// classifier output.
	ClassifierLabels = "langid_labels.json"
)

// DefaultModelsDir is the default models directory.
const DefaultModelsDir = "models"

// EnvModelsDir is the environment variable for models directory override.
const EnvModelsDir = "LANGID_MODELS_DIR"

// ResolveModelsDir returns modelsDir if non-empty, otherwise the environment
// override, otherwise the default directory.
func ResolveModelsDir(modelsDir string) string {
	if modelsDir != "" {
		return modelsDir
	}
	if envDir := os.Getenv(EnvModelsDir); envDir != "" {
		return envDir
	}
	return DefaultModelsDir
}

// ClassifierModelPath returns the classifier model path under modelsDir.
func ClassifierModelPath(modelsDir string) string {
	return filepath.Join(ResolveModelsDir(modelsDir), ClassifierModel)
}

// ClassifierLabelsPath returns the classifier labels path under modelsDir.
func ClassifierLabelsPath(modelsDir string) string {
	return filepath.Join(ResolveModelsDir(modelsDir), ClassifierLabels)
}

// LabelsPathFor derives the labels path that sits next to a model file.
func LabelsPathFor(modelPath string) string {
	if modelPath == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(modelPath), ClassifierLabels)
}
