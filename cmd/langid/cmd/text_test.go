package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/langid/internal/detector"
	"github.com/MeKo-Tech/langid/internal/pipeline"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		Text:        "bonjour tout le monde",
		CleanedText: "bonjour tout le monde",
		Code:        "fr",
		Language:    "French",
		Family:      "Romance",
		Confidence:  0.87,
		Method:      "lingua",
		Signals: map[string]detector.Signal{
			"lingua":   {Method: "lingua", Code: "fr", Confidence: 0.9},
			"whatlang": {Method: "whatlang", Code: "fr", Confidence: 0.8},
		},
	}
}

func TestFormatResult_Text(t *testing.T) {
	out, err := formatResult(sampleResult(), "text", false)
	require.NoError(t, err)

	assert.Contains(t, out, "Language: French (fr)")
	assert.Contains(t, out, "Family: Romance")
	assert.Contains(t, out, "Confidence: 87.00%")
	assert.Contains(t, out, "Method: lingua")
	assert.NotContains(t, out, "Signals:")
}

func TestFormatResult_TextWithSignals(t *testing.T) {
	out, err := formatResult(sampleResult(), "text", true)
	require.NoError(t, err)

	assert.Contains(t, out, "Signals:")
	assert.Contains(t, out, "lingua: fr (90.00%)")
	assert.Contains(t, out, "whatlang: fr (80.00%)")
}

func TestFormatResult_JSON(t *testing.T) {
	out, err := formatResult(sampleResult(), "json", true)
	require.NoError(t, err)

	var decoded pipeline.Result
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "fr", decoded.Code)
	assert.InDelta(t, 0.87, decoded.Confidence, 1e-9)
	assert.Len(t, decoded.Signals, 2)
}

func TestCleaningFromFlags_NoFlagsReturnsNil(t *testing.T) {
	cmd := textCmd
	// A fresh flag set has no changed flags.
	assert.Nil(t, cleaningFromFlags(cmd))
}
