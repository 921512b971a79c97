// Package bot is the Telegram transport: it normalizes updates into events,
// serializes them per user, and routes them to the dialogue engine or the
// idle-state handlers.
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/reach-sg/reach-bot/internal/advisor"
	"github.com/reach-sg/reach-bot/internal/charts"
	"github.com/reach-sg/reach-bot/internal/config"
	"github.com/reach-sg/reach-bot/internal/flow"
	"github.com/reach-sg/reach-bot/internal/locale"
	"github.com/reach-sg/reach-bot/internal/service"
	"github.com/reach-sg/reach-bot/internal/session"
)

// telegramClient is the slice of the Telegram API the bot uses. Satisfied by
// *tgbotapi.BotAPI.
type telegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type Bot struct {
	api      telegramClient
	svc      *service.Assistant
	advisor  advisor.Client
	texts    *locale.Bundle
	charts   *charts.Generator
	sessions *session.Manager
	flows    map[session.FlowID]flow.Handler
	cfg      *config.Config
}

func New(cfg *config.Config, svc *service.Assistant, adv advisor.Client, texts *locale.Bundle) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("telegram api: %w", err)
	}

	return &Bot{
		api:      api,
		svc:      svc,
		advisor:  adv,
		texts:    texts,
		charts:   charts.NewGenerator(),
		sessions: session.NewManager(),
		flows: map[session.FlowID]flow.Handler{
			session.FlowOnboarding: flow.NewOnboarding(texts, svc),
			session.FlowGoal:       flow.NewGoalSetting(texts, svc, adv),
		},
		cfg: cfg,
	}, nil
}

// Start runs the bot in long polling mode. Updates are handled concurrently;
// the session manager serializes turns per user.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	slog.Info("bot: long polling started")

	for update := range updates {
		go func(update tgbotapi.Update) {
			if err := b.handleUpdate(context.Background(), update); err != nil {
				slog.Error("bot: update failed", "err", err)
			}
		}(update)
	}

	return nil
}

// HandleWebhook is the entry point for webhook deployments.
func (b *Bot) HandleWebhook(ctx context.Context, body []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return fmt.Errorf("decode update: %w", err)
	}
	return b.handleUpdate(ctx, update)
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) (err error) {
	var (
		userID, chatID int64
		ev             flow.Event
		command        *tgbotapi.Message
	)

	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		if cb.Message == nil {
			return nil
		}
		userID = cb.From.ID
		chatID = cb.Message.Chat.ID
		ev = flow.Event{Kind: flow.EventCallback, Tag: cb.Data}

		// Ack immediately so the client drops its loading indicator.
		if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			slog.Warn("bot: callback ack failed", "err", err)
		}

	case update.Message != nil && update.Message.From != nil:
		userID = update.Message.From.ID
		chatID = update.Message.Chat.ID
		if update.Message.IsCommand() {
			command = update.Message
		} else {
			ev = flow.Event{Kind: flow.EventText, Text: update.Message.Text}
		}

	default:
		return nil
	}

	sess, release := b.sessions.Acquire(userID)
	defer release()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("bot: handler panicked", "user", userID, "panic", r)
			sess.LeaveFlow()
			sess.Expecting = session.ExpectingNothing
			b.sendText(chatID, b.texts.T(sess.Language, "error_generic"))
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	sess.ChatID = chatID
	if sess.Language == "" {
		sess.Language = b.svc.Language(ctx, userID)
	}

	if command != nil {
		return b.handleCommand(ctx, sess, command.Command())
	}
	return b.route(ctx, sess, ev)
}
