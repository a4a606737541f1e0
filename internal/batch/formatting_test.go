package batch

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/langid/internal/pipeline"
)

func sampleItems() []Item {
	return []Item{
		{
			File: "a.txt",
			Line: 1,
			Result: &pipeline.Result{
				Text: "hello world", Code: "en", Language: "English",
				Family: "Germanic", IsEnglish: true, Confidence: 0.92, Method: "ensemble",
			},
		},
		{
			File: "a.txt",
			Line: 3,
			Result: &pipeline.Result{
				Text: "bonjour le monde", Code: "fr", Language: "French",
				Family: "Romance", Confidence: 0.81, Method: "ensemble",
			},
		},
		{
			File: "b.txt",
			Line: 1,
			Result: &pipeline.Result{
				Text: "???", Code: "unknown", Language: "Unknown",
				Family: "Unknown", Confidence: 0, Method: "none",
			},
		},
	}
}

func TestFormatText(t *testing.T) {
	out, err := formatText(sampleItems())
	require.NoError(t, err)

	assert.Contains(t, out, "# a.txt")
	assert.Contains(t, out, "# b.txt")
	assert.Contains(t, out, "1: English (en, 92.00%) hello world")
	assert.Contains(t, out, "3: French (fr, 81.00%) bonjour le monde")
}

func TestFormatJSON(t *testing.T) {
	out, err := formatJSON(sampleItems())
	require.NoError(t, err)

	var decoded struct {
		Texts []Item `json:"texts"`
		Count int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 3, decoded.Count)
	require.Len(t, decoded.Texts, 3)
	assert.Equal(t, "en", decoded.Texts[0].Result.Code)
	assert.Equal(t, 3, decoded.Texts[1].Line)
}

func TestFormatCSV(t *testing.T) {
	out, err := formatCSV(sampleItems())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "file,line,text,language_code,language,family,confidence,method", lines[0])
	assert.Contains(t, lines[1], "a.txt,1,hello world,en,English,Germanic,0.920,ensemble")
}

func TestFormatBatchResults_DefaultsToText(t *testing.T) {
	out, err := formatBatchResults(sampleItems(), "unknown-format")
	require.NoError(t, err)
	assert.Contains(t, out, "# a.txt")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly ten", truncate("exactly ten", 11))

	long := strings.Repeat("x", 100)
	got := truncate(long, 60)
	assert.Len(t, []rune(got), 60)
	assert.True(t, strings.HasSuffix(got, "..."))
}
