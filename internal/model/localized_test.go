package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedText_Value(t *testing.T) {
	tests := []struct {
		name     string
		text     LocalizedText
		lang     Locale
		expected string
	}{
		{
			name:     "english variant for en",
			text:     LocalizedText{EN: "Golf Courses", ES: "Campos de Golf"},
			lang:     LocaleEN,
			expected: "Golf Courses",
		},
		{
			name:     "spanish variant for es",
			text:     LocalizedText{EN: "Golf Courses", ES: "Campos de Golf"},
			lang:     LocaleES,
			expected: "Campos de Golf",
		},
		{
			name:     "es falls back to english when missing",
			text:     LocalizedText{EN: "Golf Courses"},
			lang:     LocaleES,
			expected: "Golf Courses",
		},
		{
			name:     "unknown locale falls back to english",
			text:     LocalizedText{EN: "Golf Courses", ES: "Campos de Golf"},
			lang:     Locale("fr"),
			expected: "Golf Courses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.text.Value(tt.lang))
		})
	}
}

func TestLocalizedList_Value(t *testing.T) {
	full := LocalizedList{EN: []string{"Spa", "Pool"}, ES: []string{"Spa", "Piscina"}}
	enOnly := LocalizedList{EN: []string{"Spa", "Pool"}}

	assert.Equal(t, []string{"Spa", "Pool"}, full.Value(LocaleEN))
	assert.Equal(t, []string{"Spa", "Piscina"}, full.Value(LocaleES))
	assert.Equal(t, []string{"Spa", "Pool"}, enOnly.Value(LocaleES))
}

func TestIsValidLocale(t *testing.T) {
	assert.True(t, IsValidLocale(LocaleEN))
	assert.True(t, IsValidLocale(LocaleES))
	assert.False(t, IsValidLocale(Locale("fr")))
	assert.False(t, IsValidLocale(Locale("")))
	assert.False(t, IsValidLocale(Locale("EN")))
}
