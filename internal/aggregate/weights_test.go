package aggregate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWeightsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadWeights(t *testing.T) {
	path := writeWeightsFile(t, "weights:\n  lingua: 0.5\n  whatlang: 0.25\n")

	w, err := LoadWeights(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, w.Of("lingua"))
	assert.Equal(t, 0.25, w.Of("whatlang"))
	assert.Equal(t, DefaultWeight, w.Of("heuristic"))
}

func TestLoadWeights_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"out of range weight", "weights:\n  lingua: 1.5\n"},
		{"zero weight", "weights:\n  lingua: 0\n"},
		{"empty table", "weights: {}\n"},
		{"not yaml", "{{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeWeightsFile(t, tt.content)
			_, err := LoadWeights(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadWeights_MissingFile(t *testing.T) {
	_, err := LoadWeights(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
