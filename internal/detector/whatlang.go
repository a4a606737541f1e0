package detector

import (
	"context"

	wlg "github.com/abadojack/whatlanggo"
)

// MethodWhatlang is the registered name of the whatlanggo trigram adapter.
const MethodWhatlang = "whatlang"

// whatlangFallbackConfidence caps the confidence reported when the trigram
// result is unreliable and the adapter falls back to the heuristic.
const whatlangFallbackConfidence = 0.6

// WhatlangAdapter wraps the whatlanggo trigram detector. When whatlanggo
// deems its own result unreliable, the adapter falls back internally to the
// script heuristic at reduced confidence rather than failing outright.
type WhatlangAdapter struct {
	fallback *HeuristicAdapter
}

// NewWhatlangAdapter returns the whatlang back-end.
func NewWhatlangAdapter() *WhatlangAdapter {
	return &WhatlangAdapter{fallback: NewHeuristicAdapter()}
}

// Name implements Adapter.
func (w *WhatlangAdapter) Name() string { return MethodWhatlang }

// Detect implements Adapter.
func (w *WhatlangAdapter) Detect(ctx context.Context, text string) Signal {
	info := wlg.Detect(text)
	code := info.Lang.Iso6391()

	if code != "" && info.IsReliable() {
		conf := info.Confidence
		if conf > 1 {
			conf = 1
		}
		return Signal{Method: MethodWhatlang, Code: code, Confidence: conf}
	}

	// Unreliable trigram result: try the heuristic before giving up.
	fb := w.fallback.Detect(ctx, text)
	if fb.Failed() {
		return failure(MethodWhatlang)
	}
	conf := fb.Confidence
	if conf > whatlangFallbackConfidence {
		conf = whatlangFallbackConfidence
	}
	return Signal{Method: MethodWhatlang, Code: fb.Code, Confidence: conf}
}
