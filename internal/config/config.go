package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	SupabaseURL   string
	SupabaseKey   string

	OpenAIKey     string
	OpenAIModel   string
	OpenAITimeout time.Duration

	DefaultLanguage    string
	SupportedLanguages []string
}

func LoadConfig() (*Config, error) {
	// A .env file is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseKey:     os.Getenv("SUPABASE_KEY"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getenvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeout:   15 * time.Second,
		DefaultLanguage: getenvDefault("DEFAULT_LANGUAGE", "en"),
	}

	if raw := os.Getenv("OPENAI_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid OPENAI_TIMEOUT %q: %w", raw, err)
		}
		cfg.OpenAITimeout = d
	}

	for _, code := range strings.Split(getenvDefault("SUPPORTED_LANGUAGES", "en,bn,ta"), ",") {
		if code = strings.TrimSpace(code); code != "" {
			cfg.SupportedLanguages = append(cfg.SupportedLanguages, code)
		}
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("missing TELEGRAM_TOKEN environment variable")
	}
	if !cfg.IsSupported(cfg.DefaultLanguage) {
		return nil, fmt.Errorf("default language %q not in SUPPORTED_LANGUAGES", cfg.DefaultLanguage)
	}

	return cfg, nil
}

// IsSupported reports whether code is one of the configured languages.
func (c *Config) IsSupported(code string) bool {
	for _, l := range c.SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
