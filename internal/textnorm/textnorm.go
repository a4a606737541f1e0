package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Options controls the advanced cleaning pipeline.
type Options struct {
	Advanced           bool
	RemovePunctuation  bool
	RemoveNumbers      bool
	RemoveSpecialChars bool
}

// DefaultOptions returns the default cleaning options: basic cleaning only,
// with punctuation removal enabled should the advanced pipeline be selected.
func DefaultOptions() Options {
	return Options{
		Advanced:           false,
		RemovePunctuation:  true,
		RemoveNumbers:      false,
		RemoveSpecialChars: false,
	}
}

var (
	urlRe     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailRe   = regexp.MustCompile(`\S+@\S+`)
	htmlTagRe = regexp.MustCompile(`<[^>]*>`)
	digitsRe  = regexp.MustCompile(`\d+`)
	specialRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	spacesRe  = regexp.MustCompile(`\s+`)
)

// ASCII punctuation set, matching the classic string.punctuation range.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Clean performs basic text normalization: strip URLs and email-like tokens,
// collapse whitespace runs, trim. It never fails and is idempotent.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = urlRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = spacesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CleanWithOptions runs either the basic or the advanced pipeline, depending
// on opts.Advanced. The advanced pipeline applies its steps in a fixed order:
// Unicode NFKC normalization, URL strip, email strip, HTML tag strip, then the
// optional punctuation/digit/special-character strips, then whitespace
// collapse and trim. Digit and symbol stripping must run after URL and email
// stripping so that characters embedded in stripped tokens are not counted.
func CleanWithOptions(text string, opts Options) string {
	if !opts.Advanced {
		return Clean(text)
	}
	return AdvancedClean(text, opts.RemovePunctuation, opts.RemoveNumbers, opts.RemoveSpecialChars)
}

// AdvancedClean runs the extended cleaning pipeline.
func AdvancedClean(text string, removePunct, removeNums, removeSpecial bool) string {
	if text == "" {
		return ""
	}

	text = norm.NFKC.String(text)
	text = urlRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = htmlTagRe.ReplaceAllString(text, "")

	if removePunct {
		text = RemovePunctuation(text)
	}
	if removeNums {
		text = RemoveNumbers(text)
	}
	if removeSpecial {
		text = RemoveSpecialChars(text)
	}

	text = spacesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// RemovePunctuation strips ASCII punctuation characters.
func RemovePunctuation(text string) string {
	if text == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r < 128 && strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, text)
}

// RemoveNumbers strips digit runs.
func RemoveNumbers(text string) string {
	if text == "" {
		return ""
	}
	return digitsRe.ReplaceAllString(text, "")
}

// RemoveSpecialChars keeps only ASCII letters, digits, and whitespace.
func RemoveSpecialChars(text string) string {
	if text == "" {
		return ""
	}
	return specialRe.ReplaceAllString(text, "")
}
