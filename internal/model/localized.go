package model

// Locale is a supported site language code
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// Locales is the closed set of locales the site is published in
var Locales = []Locale{LocaleEN, LocaleES}

// IsValidLocale reports whether l is one of the supported locales
func IsValidLocale(l Locale) bool {
	for _, known := range Locales {
		if l == known {
			return true
		}
	}
	return false
}

// LocalizedText holds a piece of copy in every supported language.
// The English variant is mandatory; Spanish is optional and falls back to English.
type LocalizedText struct {
	EN string `json:"en"`
	ES string `json:"es,omitempty"`
}

// Value returns the text for the requested locale, falling back to English
// when the localized variant is absent
func (t LocalizedText) Value(lang Locale) string {
	if lang == LocaleES && t.ES != "" {
		return t.ES
	}
	return t.EN
}

// LocalizedList is the list-valued counterpart of LocalizedText
type LocalizedList struct {
	EN []string `json:"en"`
	ES []string `json:"es,omitempty"`
}

// Value returns the list for the requested locale, falling back to English
func (l LocalizedList) Value(lang Locale) []string {
	if lang == LocaleES && len(l.ES) > 0 {
		return l.ES
	}
	return l.EN
}
