package langmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"en", "English"},
		{"EN", "English"},
		{"fr", "French"},
		{"de", "German"},
		{"ja", "Japanese"},
		{"unknown", "Unknown"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, Name(tt.code))
		})
	}
}

func TestName_ChineseVariants(t *testing.T) {
	// All Chinese variant codes resolve to the same display name.
	assert.Equal(t, "Chinese", Name("zh"))
	assert.Equal(t, "Chinese", Name("zh-cn"))
	assert.Equal(t, "Chinese", Name("zh-tw"))
	assert.Equal(t, "Chinese", Name("ZH-CN"))
}

func TestName_UnresolvedCodePlaceholder(t *testing.T) {
	got := Name("xx-unknown-code")
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "xx-unknown-code")
}

func TestName_DisplayFallback(t *testing.T) {
	// "is" is absent from the static table but known to the CLDR data.
	assert.Equal(t, "Icelandic", Name("is"))
}

func TestFamily(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"en", "Germanic"},
		{"de", "Germanic"},
		{"fr", "Romance"},
		{"pt-br", "Romance"},
		{"zh-cn", "Sino-Tibetan"},
		{"zh", "Sino-Tibetan"},
		{"ja", "Japonic"},
		{"ru", "Slavic"},
		{"ar", "Semitic"},
		{"fi", "Uralic"},
		{"xy", "Other"},
		{"unknown", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, Family(tt.code))
		})
	}
}

func TestIsEnglish(t *testing.T) {
	assert.True(t, IsEnglish("en"))
	assert.True(t, IsEnglish("EN"))
	assert.False(t, IsEnglish("en-us")) // region-qualified codes are not the bare code
	assert.False(t, IsEnglish("fr"))
	assert.False(t, IsEnglish("unknown"))
}
