// Package aggregate reduces the per-method detection signals of one call
// into a single verdict via weighted voting. Vote count is the primary
// ranking key and the weighted confidence sum the secondary one: a language
// chosen by more methods beats a single very confident vote. This consensus
// bias is deliberate.
package aggregate

import (
	"github.com/MeKo-Tech/langid/internal/detector"
)

// MethodNone is reported when no method contributed a usable vote.
const MethodNone = "none"

// MethodCombined is the defensive fallback when the winning language cannot
// be attributed to a single method.
const MethodCombined = "combined"

// Verdict is the aggregator's combined decision.
type Verdict struct {
	Code       string  `json:"language_code"`
	Confidence float64 `json:"confidence"`
	Method     string  `json:"method"`
}

// languageScore accumulates the votes for one language.
type languageScore struct {
	count    int
	weighted float64
}

// Aggregate combines signals into one verdict. Signals must be in adapter
// registration order; that order fixes both the tie-break between languages
// with identical (count, weightedSum) pairs and the contributing-method
// attribution. An empty or all-failed signal set yields the unknown verdict.
func Aggregate(signals []detector.Signal, weights Weights) Verdict {
	if len(signals) == 0 {
		return Verdict{Code: detector.CodeUnknown, Confidence: 0, Method: MethodNone}
	}

	scores := make(map[string]*languageScore, len(signals))
	order := make([]string, 0, len(signals))
	totalWeight := 0.0

	for _, sig := range signals {
		weight := weights.Of(sig.Method)
		totalWeight += weight

		code := sig.Code
		if code == "" {
			code = detector.CodeUnknown
		}
		s, ok := scores[code]
		if !ok {
			s = &languageScore{}
			scores[code] = s
			order = append(order, code)
		}
		s.count++
		s.weighted += clamp01(sig.Confidence) * weight
	}

	// Winner by lexicographic (count, weightedSum); strict comparison keeps
	// the first-seen language on exact ties, which is deterministic because
	// signals arrive in registration order.
	winner := order[0]
	for _, code := range order[1:] {
		s, w := scores[code], scores[winner]
		if s.count > w.count || (s.count == w.count && s.weighted > w.weighted) {
			winner = code
		}
	}

	if winner == detector.CodeUnknown {
		return Verdict{Code: detector.CodeUnknown, Confidence: 0, Method: MethodNone}
	}

	// Normalize by the weights of every participating method, not just the
	// winners: disagreement suppresses confidence.
	confidence := 0.0
	if totalWeight > 0 {
		confidence = clamp01(scores[winner].weighted / totalWeight)
	}

	return Verdict{
		Code:       winner,
		Confidence: confidence,
		Method:     contributingMethod(signals, winner),
	}
}

// contributingMethod returns the first method, in registration order, whose
// vote matches the winning language.
func contributingMethod(signals []detector.Signal, winner string) string {
	for _, sig := range signals {
		if sig.Code == winner {
			return sig.Method
		}
	}
	return MethodCombined
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
