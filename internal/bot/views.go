package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/reach-sg/reach-bot/internal/flow"
	"github.com/reach-sg/reach-bot/internal/locale"
	"github.com/reach-sg/reach-bot/internal/model"
	"github.com/reach-sg/reach-bot/internal/session"
)

func (b *Bot) sendMenu(sess *session.Session) error {
	lang := sess.Language
	return b.send(sess, flow.Response{
		Text: b.texts.T(lang, "main_menu"),
		Buttons: [][]flow.Button{
			{
				{Label: b.texts.T(lang, "menu_set_goal"), Tag: "menu_set_goal"},
				{Label: b.texts.T(lang, "menu_log_expense"), Tag: "menu_log_expense"},
			},
			{
				{Label: b.texts.T(lang, "menu_ask_advice"), Tag: "menu_ask_advice"},
				{Label: b.texts.T(lang, "menu_view_expenses"), Tag: "menu_view_expenses"},
			},
			{
				{Label: b.texts.T(lang, "menu_profile"), Tag: "menu_profile"},
				{Label: b.texts.T(lang, "menu_change_language"), Tag: "menu_change_language"},
			},
		},
	})
}

func (b *Bot) sendLanguageMenu(sess *session.Session, textKey string) error {
	rows := make([][]flow.Button, 0, len(b.cfg.SupportedLanguages))
	for _, code := range b.cfg.SupportedLanguages {
		rows = append(rows, []flow.Button{{
			Label: locale.LanguageName(code),
			Tag:   "set_lang_" + code,
		}})
	}
	return b.send(sess, flow.Response{
		Text:    b.texts.T(sess.Language, textKey),
		Buttons: rows,
	})
}

func (b *Bot) sendAdviceMenu(sess *session.Session) error {
	lang := sess.Language
	return b.send(sess, flow.Response{
		Text: b.texts.T(lang, "advice_category_prompt"),
		Buttons: [][]flow.Button{
			{{Label: b.texts.T(lang, "advice_category_savings"), Tag: "advice_savings"}},
			{{Label: b.texts.T(lang, "advice_category_debt"), Tag: "advice_debt"}},
			{{Label: b.texts.T(lang, "advice_category_remittance"), Tag: "advice_remittance"}},
			{{Label: b.texts.T(lang, "advice_category_budget"), Tag: "advice_budget"}},
			{{Label: b.texts.T(lang, "advice_category_custom"), Tag: "advice_custom"}},
			backButtonRow(b.texts, lang),
		},
	})
}

func (b *Bot) sendAdvice(ctx context.Context, sess *session.Session, question string) error {
	lang := sess.Language
	b.sendText(sess.ChatID, b.texts.T(lang, "ai_thinking"))

	answer := b.advisor.Advice(ctx, b.advicePrompt(ctx, sess, question), lang)
	return b.send(sess, flow.Response{
		Text: answer,
		Buttons: [][]flow.Button{
			{{Label: b.texts.T(lang, "ask_another"), Tag: "ask_another"}},
			backButtonRow(b.texts, lang),
		},
	})
}

// advicePrompt frames the question with what is known about the user so the
// answer fits their situation.
func (b *Bot) advicePrompt(ctx context.Context, sess *session.Session, question string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Question: %s\n", question)

	doc := b.svc.UserDoc(ctx, sess.UserID)
	if p := doc.Profile; p != nil {
		fmt.Fprintf(&sb, "User profile: income %s, main goal %s, debt %s, family %s\n",
			b.texts.T("en", "income_option_"+p.Income),
			b.texts.T("en", "goal_option_"+p.Goal),
			b.texts.T("en", "debt_option_"+p.Debt),
			b.texts.T("en", "family_option_"+p.Family))
	}
	if goal, ok := b.svc.LatestGoal(ctx, sess.UserID); ok {
		fmt.Fprintf(&sb, "Active goal: %s of %.2f by %s\n",
			goal.Type, goal.Amount, goal.Deadline.Format("2006-01-02"))
	}
	return sb.String()
}

func (b *Bot) sendProfileView(ctx context.Context, sess *session.Session) error {
	lang := sess.Language

	profile := b.svc.UserDoc(ctx, sess.UserID).Profile
	if profile == nil {
		return b.send(sess, flow.Response{
			Text: b.texts.T(lang, "profile_not_found"),
			Buttons: [][]flow.Button{
				{{Label: b.texts.T(lang, "update_profile"), Tag: "start_onboarding"}},
				backButtonRow(b.texts, lang),
			},
		})
	}

	return b.send(sess, flow.Response{
		Text: b.texts.F(lang, "profile_display",
			b.texts.T(lang, "income_option_"+profile.Income),
			b.texts.T(lang, "goal_option_"+profile.Goal),
			b.texts.T(lang, "debt_option_"+profile.Debt),
			b.texts.T(lang, "family_option_"+profile.Family)),
		Buttons: [][]flow.Button{
			{{Label: b.texts.T(lang, "update_profile"), Tag: "start_onboarding"}},
			backButtonRow(b.texts, lang),
		},
	})
}

func (b *Bot) sendGoalView(ctx context.Context, sess *session.Session) error {
	lang := sess.Language

	goal, ok := b.svc.LatestGoal(ctx, sess.UserID)
	if !ok {
		return b.send(sess, flow.Response{
			Text: b.texts.T(lang, "no_goals"),
			Buttons: [][]flow.Button{
				{{Label: b.texts.T(lang, "menu_set_goal"), Tag: "menu_set_goal"}},
				backButtonRow(b.texts, lang),
			},
		})
	}

	percent := 0.0
	if goal.Amount > 0 {
		percent = goal.Progress / goal.Amount * 100
		if percent > 100 {
			percent = 100
		}
	}

	var details []string
	details = append(details, progressBar(percent))
	details = append(details, b.texts.T(lang, motivationKey(percent, goal.Completed)))

	if daysLeft := int(time.Until(goal.Deadline).Hours() / 24); daysLeft > 0 {
		details = append(details, b.texts.F(lang, "days_left", daysLeft))
	} else {
		details = append(details, b.texts.T(lang, "deadline_reached"))
	}

	if len(goal.Steps) > 0 {
		details = append(details, b.texts.F(lang, "current_focus", goal.Steps[0]))
		var steps strings.Builder
		steps.WriteString(b.texts.T(lang, "progress_steps_header"))
		for i, step := range goal.Steps {
			fmt.Fprintf(&steps, "\n%d. %s", i+1, step)
		}
		details = append(details, steps.String())
	}

	return b.send(sess, flow.Response{
		Text: b.texts.F(lang, "goal_display",
			b.texts.T(lang, "goal_type_"+goal.Type),
			goal.Amount,
			goal.Deadline.Format("02 Jan 2006"),
			goal.Progress,
			percent,
			strings.Join(details, "\n\n")),
		Buttons: [][]flow.Button{
			{{Label: b.texts.T(lang, "update_progress"), Tag: "update_goal_progress"}},
			{{Label: b.texts.T(lang, "share_with_family"), Tag: "share_goal_with_family"}},
			backButtonRow(b.texts, lang),
		},
	})
}

func (b *Bot) sendGoalShare(ctx context.Context, sess *session.Session) error {
	lang := sess.Language

	goal, ok := b.svc.LatestGoal(ctx, sess.UserID)
	if !ok {
		return b.send(sess, flow.Response{Text: b.texts.T(lang, "no_goals")})
	}

	b.sendText(sess.ChatID, b.texts.T(lang, "share_with_family_text"))
	b.sendText(sess.ChatID, b.texts.F(lang, "share_goal_message",
		b.texts.T(lang, "goal_type_"+goal.Type),
		goal.Amount,
		goal.Deadline.Format("02 Jan 2006")))

	return b.send(sess, flow.Response{
		Text:    b.texts.T(lang, "share_message_instructions"),
		Buttons: [][]flow.Button{backButtonRow(b.texts, lang)},
	})
}

func (b *Bot) sendExpensesView(ctx context.Context, sess *session.Session) error {
	lang := sess.Language

	summary := b.svc.Summarize(ctx, sess.UserID)
	if summary.Count == 0 {
		return b.send(sess, flow.Response{
			Text: b.texts.T(lang, "no_expenses"),
			Buttons: [][]flow.Button{
				{{Label: b.texts.T(lang, "log_expense"), Tag: "menu_log_expense"}},
				backButtonRow(b.texts, lang),
			},
		})
	}

	var sb strings.Builder
	sb.WriteString(b.texts.F(lang, "expenses_summary", summary.Count, summary.Total, summary.Currency))

	sb.WriteString("\n\n" + b.texts.T(lang, "expenses_by_category"))
	for _, category := range sortedCategories(summary.ByCategory) {
		fmt.Fprintf(&sb, "\n• %s: %.2f", category, summary.ByCategory[category])
	}

	sb.WriteString("\n\n" + b.texts.T(lang, "recent_expenses"))
	for _, e := range summary.Recent {
		fmt.Fprintf(&sb, "\n• %.2f %s — %s", e.Amount, e.Currency, expenseLabel(e))
	}

	if png, err := b.charts.SpendingBars(summary.ByCategory, summary.Currency); err != nil {
		slog.Error("bot: spending chart failed", "user", sess.UserID, "err", err)
	} else if png != nil {
		b.sendPhoto(sess.ChatID, "expenses.png", png)
	}

	// The split is only worth a second picture once there is a split.
	if len(summary.ByCategory) > 1 {
		if png, err := b.charts.CategoryPie(summary.ByCategory, summary.Currency); err != nil {
			slog.Error("bot: category chart failed", "user", sess.UserID, "err", err)
		} else if png != nil {
			b.sendPhoto(sess.ChatID, "categories.png", png)
		}
	}

	return b.send(sess, flow.Response{
		Text: sb.String(),
		Buttons: [][]flow.Button{
			{{Label: b.texts.T(lang, "log_another_expense"), Tag: "log_another_expense"}},
			backButtonRow(b.texts, lang),
		},
	})
}

func expenseLabel(e model.Expense) string {
	if e.Description != "" {
		return e.Description
	}
	if e.Category != "" {
		return e.Category
	}
	return "-"
}

func sortedCategories(byCategory map[string]float64) []string {
	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return byCategory[names[i]] > byCategory[names[j]]
	})
	return names
}

// progressBar renders percent as a ten-cell bar.
func progressBar(percent float64) string {
	filled := int(percent / 10)
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("▓", filled) + strings.Repeat("░", 10-filled) + fmt.Sprintf(" %.0f%%", percent)
}

func motivationKey(percent float64, completed bool) string {
	switch {
	case completed || percent >= 100:
		return "motivation_done"
	case percent >= 75:
		return "motivation_final"
	case percent >= 50:
		return "motivation_half"
	case percent >= 25:
		return "motivation_quarter"
	default:
		return "motivation_start"
	}
}
