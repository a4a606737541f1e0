package aggregate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MeKo-Tech/langid/internal/detector"
)

// DefaultWeight is assigned to methods absent from the weight table, so
// novel adapters participate in the vote without a code change.
const DefaultWeight = 0.1

// Weights maps a method name to its voting weight in (0,1].
type Weights map[string]float64

// DefaultWeights returns the built-in weight table.
func DefaultWeights() Weights {
	return Weights{
		detector.MethodLingua:    0.4,
		detector.MethodWhatlang:  0.3,
		detector.MethodHeuristic: 0.2,
		detector.MethodONNX:      0.4,
	}
}

// Of returns the weight for a method, falling back to DefaultWeight for
// unlisted methods.
func (w Weights) Of(method string) float64 {
	if v, ok := w[method]; ok && v > 0 {
		return v
	}
	return DefaultWeight
}

// Validate checks every listed weight lies in (0,1].
func (w Weights) Validate() error {
	for method, v := range w {
		if v <= 0 || v > 1 {
			return fmt.Errorf("weight for method %q must be in (0,1], got %v", method, v)
		}
	}
	return nil
}

// weightsFile is the on-disk shape of a weight table.
type weightsFile struct {
	Weights map[string]float64 `yaml:"weights"`
}

// LoadWeights reads a weight table from a YAML file of the form
//
//	weights:
//	  lingua: 0.4
//	  whatlang: 0.3
//
// Methods not listed keep the default weight.
func LoadWeights(path string) (Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights file: %w", err)
	}
	var f weightsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse weights file %s: %w", path, err)
	}
	if len(f.Weights) == 0 {
		return nil, fmt.Errorf("weights file %s lists no weights", path)
	}
	w := Weights(f.Weights)
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Merge overlays other onto a copy of w, returning the result.
func (w Weights) Merge(other Weights) Weights {
	merged := make(Weights, len(w)+len(other))
	for k, v := range w {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
