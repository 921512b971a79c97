package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTFallsBackToDefaultLanguage(t *testing.T) {
	b := NewBundle("en", []string{"en", "bn"})

	// Translated in Bengali.
	assert.Equal(t, translations["bn"]["main_menu"], b.T("bn", "main_menu"))
	// Not translated in Bengali, served in English.
	assert.Equal(t, translations["en"]["goal_deadline_question"], b.T("bn", "goal_deadline_question"))
}

func TestTUnknownKeyIsVisiblePlaceholder(t *testing.T) {
	b := NewBundle("en", []string{"en"})
	assert.Equal(t, "[no_such_key]", b.T("en", "no_such_key"))
}

func TestF(t *testing.T) {
	b := NewBundle("en", []string{"en"})
	got := b.F("en", "expenses_summary", 3, 42.5, "USD")
	assert.Contains(t, got, "3")
	assert.Contains(t, got, "42.50")
}

func TestEveryMenuKeyExistsInEnglish(t *testing.T) {
	keys := []string{
		"main_menu", "menu_set_goal", "menu_log_expense", "menu_ask_advice",
		"menu_view_expenses", "menu_profile", "menu_change_language",
		"back_to_menu", "confirm_yes", "confirm_no", "error_generic", "help_hint",
	}
	for _, key := range keys {
		assert.Contains(t, translations["en"], key)
	}
}

func TestTranslationsDoNotInventKeys(t *testing.T) {
	// Every non-English key must exist in the English reference table.
	for lang, table := range translations {
		if lang == "en" {
			continue
		}
		for key := range table {
			_, ok := translations["en"][key]
			assert.True(t, ok, "key %q in %q missing from English table", key, lang)
		}
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "বাংলা", LanguageName("bn"))
	assert.Equal(t, "my", LanguageName("my"))
	assert.False(t, strings.Contains(LanguageName("ta"), "["))
}
