package pipeline

import (
	"fmt"

	"github.com/MeKo-Tech/langid/internal/detector"
	"github.com/MeKo-Tech/langid/internal/langmeta"
)

// Result is the externally visible outcome of one detection call.
type Result struct {
	Text        string                     `json:"text"`
	CleanedText string                     `json:"cleaned_text,omitempty"`
	Code        string                     `json:"language_code"`
	Language    string                     `json:"language"`
	Family      string                     `json:"language_family"`
	IsEnglish   bool                       `json:"is_english"`
	Confidence  float64                    `json:"confidence"`
	Method      string                     `json:"method"`
	Signals     map[string]detector.Signal `json:"all_results,omitempty"`
	Processing  ProcessingInfo             `json:"processing"`
}

// ProcessingInfo carries per-call timing.
type ProcessingInfo struct {
	TotalNs int64 `json:"total_ns"`
}

// FormatConfidence renders a confidence value as a percentage string.
func FormatConfidence(confidence float64) string {
	return fmt.Sprintf("%.2f%%", confidence*100)
}

// emptyResult is the fixed terminal result for empty or whitespace-only
// input: no cleaning performed, no adapters invoked.
func emptyResult(text string) *Result {
	return &Result{
		Text:       text,
		Code:       detector.CodeUnknown,
		Language:   "Unknown",
		Family:     "Unknown",
		IsEnglish:  false,
		Confidence: 0,
		Method:     "none",
	}
}

// resolve fills in the metadata fields derived from the language code.
func (r *Result) resolve() {
	r.Language = langmeta.Name(r.Code)
	r.Family = langmeta.Family(r.Code)
	r.IsEnglish = langmeta.IsEnglish(r.Code)
}
