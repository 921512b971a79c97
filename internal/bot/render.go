package bot

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/reach-sg/reach-bot/internal/flow"
	"github.com/reach-sg/reach-bot/internal/locale"
	"github.com/reach-sg/reach-bot/internal/session"
)

// send delivers a flow response: the optional notice as its own message,
// then the prompt with its inline keyboard. A terminal response with no
// buttons of its own gets a follow-up menu so the user is never stranded.
func (b *Bot) send(sess *session.Session, resp flow.Response) error {
	if resp.Notice != "" {
		b.sendText(sess.ChatID, resp.Notice)
	}

	msg := tgbotapi.NewMessage(sess.ChatID, resp.Text)
	if len(resp.Buttons) > 0 {
		msg.ReplyMarkup = inlineKeyboard(resp.Buttons)
	}
	if _, err := b.api.Send(msg); err != nil {
		return err
	}

	if len(resp.Buttons) == 0 && sess.ActiveFlow == "" && sess.Expecting == session.ExpectingNothing {
		return b.sendMenu(sess)
	}
	return nil
}

func (b *Bot) sendText(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		slog.Error("bot: send failed", "chat", chatID, "err", err)
	}
}

func (b *Bot) sendPhoto(chatID int64, name string, png []byte) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: png})
	if _, err := b.api.Send(photo); err != nil {
		slog.Error("bot: photo send failed", "chat", chatID, "err", err)
	}
}

func inlineKeyboard(rows [][]flow.Button) tgbotapi.InlineKeyboardMarkup {
	keyboardRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Tag))
		}
		keyboardRows = append(keyboardRows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboardRows...)
}

func backButtonRow(texts *locale.Bundle, lang string) []flow.Button {
	return []flow.Button{{Label: texts.T(lang, "back_to_menu"), Tag: flow.TagBackToMenu}}
}
