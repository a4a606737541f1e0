// Package langmeta resolves language codes to display names and language
// families. All lookups are pure functions over static tables fixed at
// compile time; resolution never fails, unrecognized codes degrade to a
// tagged placeholder.
package langmeta

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CodeUnknown is the sentinel language code produced by failed detections.
const CodeUnknown = "unknown"

var languageNames = map[string]string{
	"af": "Afrikaans",
	"ar": "Arabic",
	"bg": "Bulgarian",
	"bn": "Bengali",
	"ca": "Catalan",
	"cs": "Czech",
	"cy": "Welsh",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"et": "Estonian",
	"fa": "Persian",
	"fi": "Finnish",
	"fr": "French",
	"gu": "Gujarati",
	"he": "Hebrew",
	"hi": "Hindi",
	"hr": "Croatian",
	"hu": "Hungarian",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"kn": "Kannada",
	"ko": "Korean",
	"lt": "Lithuanian",
	"lv": "Latvian",
	"mk": "Macedonian",
	"ml": "Malayalam",
	"mr": "Marathi",
	"ne": "Nepali",
	"nl": "Dutch",
	"no": "Norwegian",
	"pa": "Punjabi",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sk": "Slovak",
	"sl": "Slovenian",
	"so": "Somali",
	"sq": "Albanian",
	"sv": "Swedish",
	"sw": "Swahili",
	"ta": "Tamil",
	"te": "Telugu",
	"th": "Thai",
	"tl": "Tagalog",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"ur": "Urdu",
	"vi": "Vietnamese",
}

var languageFamilies = map[string]string{
	// Germanic
	"en": "Germanic",
	"de": "Germanic",
	"nl": "Germanic",
	"sv": "Germanic",
	"no": "Germanic",
	"da": "Germanic",
	// Romance
	"es": "Romance",
	"fr": "Romance",
	"it": "Romance",
	"pt": "Romance",
	"ro": "Romance",
	// Slavic
	"ru": "Slavic",
	"uk": "Slavic",
	"pl": "Slavic",
	"cs": "Slavic",
	"bg": "Slavic",
	// Indo-Aryan
	"hi": "Indo-Aryan",
	"bn": "Indo-Aryan",
	"pa": "Indo-Aryan",
	"gu": "Indo-Aryan",
	// East Asian
	"zh": "Sino-Tibetan",
	"ja": "Japonic",
	"ko": "Koreanic",
	// Others
	"ar": "Semitic",
	"he": "Semitic",
	"fi": "Uralic",
	"hu": "Uralic",
	"tr": "Turkic",
	"th": "Tai-Kadai",
	"vi": "Austroasiatic",
}

// Name returns the English display name for a language code. Chinese variant
// codes (zh, zh-cn, zh-tw) all resolve to the same name. Codes outside the
// static table are tried against the CLDR display-name data; anything still
// unresolved yields a placeholder containing the original code.
func Name(code string) string {
	lower := strings.ToLower(code)
	switch lower {
	case CodeUnknown, "":
		return "Unknown"
	case "zh", "zh-cn", "zh-tw":
		return "Chinese"
	}
	if name, ok := languageNames[lower]; ok {
		return name
	}
	if tag, err := language.Parse(lower); err == nil {
		if name := display.English.Languages().Name(tag); name != "" && !strings.EqualFold(name, lower) {
			return name
		}
	}
	return fmt.Sprintf("Unknown (%s)", code)
}

// Family returns the language family for a code. The region suffix is
// stripped before lookup, so "pt-br" resolves through "pt". Codes without a
// known family resolve to "Other"; the unknown sentinel resolves to "Unknown".
func Family(code string) string {
	lower := strings.ToLower(code)
	if lower == CodeUnknown || lower == "" {
		return "Unknown"
	}
	base, _, _ := strings.Cut(lower, "-")
	if family, ok := languageFamilies[base]; ok {
		return family
	}
	return "Other"
}

// IsEnglish reports whether the code denotes English.
func IsEnglish(code string) bool {
	return strings.ToLower(code) == "en"
}
