package main

import (
	"log/slog"
	"os"

	"github.com/reach-sg/reach-bot/internal/advisor"
	"github.com/reach-sg/reach-bot/internal/bot"
	"github.com/reach-sg/reach-bot/internal/config"
	"github.com/reach-sg/reach-bot/internal/locale"
	"github.com/reach-sg/reach-bot/internal/repository"
	"github.com/reach-sg/reach-bot/internal/service"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	repo, err := repository.NewSupabaseRepository(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		slog.Error("repository init failed", "err", err)
		os.Exit(1)
	}

	svc := service.NewAssistant(repo, cfg.DefaultLanguage)
	texts := locale.NewBundle(cfg.DefaultLanguage, cfg.SupportedLanguages)

	var adv advisor.Client
	if cfg.OpenAIKey != "" {
		adv = advisor.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAITimeout)
	} else {
		slog.Warn("no OpenAI key set, using static advisor")
		adv = advisor.NewStatic()
	}

	b, err := bot.New(cfg, svc, adv, texts)
	if err != nil {
		slog.Error("bot init failed", "err", err)
		os.Exit(1)
	}

	if err := b.Start(); err != nil {
		slog.Error("bot stopped", "err", err)
		os.Exit(1)
	}
}
