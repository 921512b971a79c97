// Package locale maps (key, language) to display strings. Translations are
// compiled in; a missing key falls back to the default language and finally
// to a bracketed placeholder so a gap is visible instead of fatal.
package locale

import (
	"fmt"
	"log/slog"
)

type Bundle struct {
	defaultLang  string
	translations map[string]map[string]string
}

// NewBundle builds a bundle for the supported languages. Languages without a
// compiled-in table are served from the default language.
func NewBundle(defaultLang string, supported []string) *Bundle {
	b := &Bundle{
		defaultLang:  defaultLang,
		translations: make(map[string]map[string]string),
	}
	for _, code := range supported {
		table, ok := translations[code]
		if !ok {
			slog.Warn("locale: no translation table for language", "lang", code)
			continue
		}
		b.translations[code] = table
	}
	return b
}

// T returns the display string for key in lang.
func (b *Bundle) T(lang, key string) string {
	if table, ok := b.translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if table, ok := b.translations[b.defaultLang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	slog.Warn("locale: missing translation key", "key", key, "lang", lang)
	return "[" + key + "]"
}

// F is T followed by Sprintf for templated strings.
func (b *Bundle) F(lang, key string, args ...any) string {
	return fmt.Sprintf(b.T(lang, key), args...)
}

// LanguageName returns the native display name for a language code.
func LanguageName(code string) string {
	names := map[string]string{
		"en": "English",
		"bn": "বাংলা",
		"ta": "தமிழ்",
	}
	if name, ok := names[code]; ok {
		return name
	}
	return code
}
