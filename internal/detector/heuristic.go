package detector

import (
	"context"
	"unicode"
)

// MethodHeuristic is the registered name of the script/diacritic adapter.
const MethodHeuristic = "heuristic"

// HeuristicAdapter is a dependency-free back-end using script membership and
// diacritic counts. It is weak on short Latin-script text but cheap and
// always available, so it acts as the ensemble's floor.
type HeuristicAdapter struct{}

// NewHeuristicAdapter returns the heuristic back-end.
func NewHeuristicAdapter() *HeuristicAdapter { return &HeuristicAdapter{} }

// Name implements Adapter.
func (h *HeuristicAdapter) Name() string { return MethodHeuristic }

// Detect implements Adapter. It never fails; inconclusive text yields the
// sentinel signal.
func (h *HeuristicAdapter) Detect(_ context.Context, text string) Signal {
	code, conf := classifyScript(text)
	if code == "" {
		return failure(MethodHeuristic)
	}
	return Signal{Method: MethodHeuristic, Code: code, Confidence: conf}
}

// classifyScript returns a lowercase language code and confidence, or ""
// when the text gives no usable evidence.
func classifyScript(s string) (string, float64) {
	if s == "" {
		return "", 0
	}
	var letters, ascii, han, kana, hangul, cyrillic, arabic, hebrew, greek, thai, devanagari int
	var german, french, spanish int
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
		}
		switch {
		case r <= 0x007F:
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				ascii++
			}
		case unicode.Is(unicode.Han, r):
			han++
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			kana++
		case unicode.Is(unicode.Hangul, r):
			hangul++
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case unicode.Is(unicode.Arabic, r):
			arabic++
		case unicode.Is(unicode.Hebrew, r):
			hebrew++
		case unicode.Is(unicode.Greek, r):
			greek++
		case unicode.Is(unicode.Thai, r):
			thai++
		case unicode.Is(unicode.Devanagari, r):
			devanagari++
		case r >= 0x00C0 && r <= 0x017F: // Latin-1 supplements + extensions
			// Diacritics hints
			switch r {
			case 'ä', 'ö', 'ü', 'Ä', 'Ö', 'Ü', 'ß':
				german++
			case 'è', 'ê', 'à', 'ù', 'ç', 'È', 'À', 'Ç':
				french++
			case 'á', 'í', 'ó', 'ú', 'ñ', 'Á', 'Í', 'Ó', 'Ú', 'Ñ':
				spanish++
			}
		}
	}
	if letters == 0 {
		return "", 0
	}

	// Any Japanese kana outweighs Han: Japanese text mixes both scripts.
	if kana > 0 {
		return "ja", scriptConfidence(kana+han, letters)
	}
	if han > 0 {
		return "zh", scriptConfidence(han, letters)
	}
	if hangul > 0 {
		return "ko", scriptConfidence(hangul, letters)
	}
	if cyrillic > 0 {
		return "ru", scriptConfidence(cyrillic, letters)
	}
	if arabic > 0 {
		return "ar", scriptConfidence(arabic, letters)
	}
	if hebrew > 0 {
		return "he", scriptConfidence(hebrew, letters)
	}
	if greek > 0 {
		return "el", scriptConfidence(greek, letters)
	}
	if thai > 0 {
		return "th", scriptConfidence(thai, letters)
	}
	if devanagari > 0 {
		return "hi", scriptConfidence(devanagari, letters)
	}

	// Latin-script text: diacritic hints, then a high-ASCII-ratio English guess.
	if german > french && german > spanish {
		return "de", 0.6
	}
	if french > german && french > spanish {
		return "fr", 0.6
	}
	if spanish > german && spanish > french {
		return "es", 0.6
	}
	if ascii > 0 && ascii*100/letters > 80 {
		return "en", 0.5
	}
	return "", 0
}

// scriptConfidence scales confidence by how much of the text sits in the
// decisive script, floored so a positive script hit is never reported weaker
// than a diacritic hint.
func scriptConfidence(hits, letters int) float64 {
	ratio := float64(hits) / float64(letters)
	if ratio > 1 {
		ratio = 1
	}
	conf := 0.5 + 0.4*ratio
	if conf > 0.9 {
		conf = 0.9
	}
	return conf
}
