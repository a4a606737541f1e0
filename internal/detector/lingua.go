package detector

import (
	"context"
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// MethodLingua is the registered name of the lingua statistical adapter.
const MethodLingua = "lingua"

// LinguaAdapter wraps the lingua-go n-gram detector. The underlying model
// set is built once at construction and is safe for concurrent use.
type LinguaAdapter struct {
	detector lingua.LanguageDetector
}

// NewLinguaAdapter builds the lingua back-end over all supported languages.
func NewLinguaAdapter() *LinguaAdapter {
	return &LinguaAdapter{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Name implements Adapter.
func (l *LinguaAdapter) Name() string { return MethodLingua }

// Detect implements Adapter. The most confident language wins; text lingua
// cannot classify yields the sentinel signal.
func (l *LinguaAdapter) Detect(_ context.Context, text string) Signal {
	values := l.detector.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 {
		return failure(MethodLingua)
	}

	best := values[0]
	for _, cv := range values[1:] {
		if cv.Value() > best.Value() {
			best = cv
		}
	}
	if best.Value() <= 0 {
		return failure(MethodLingua)
	}

	code := strings.ToLower(best.Language().IsoCode639_1().String())
	if len(code) != 2 {
		return failure(MethodLingua)
	}
	conf := best.Value()
	if conf > 1 {
		conf = 1
	}
	return Signal{Method: MethodLingua, Code: code, Confidence: conf}
}
