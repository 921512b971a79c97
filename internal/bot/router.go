package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/reach-sg/reach-bot/internal/advisor"
	"github.com/reach-sg/reach-bot/internal/flow"
	"github.com/reach-sg/reach-bot/internal/session"
)

// route dispatches one normalized event. Precedence: the menu escape first,
// then the active flow (which owns every event while set), then the idle
// handlers.
func (b *Bot) route(ctx context.Context, sess *session.Session, ev flow.Event) error {
	if ev.Kind == flow.EventCallback && ev.Tag == flow.TagBackToMenu {
		sess.LeaveFlow()
		sess.Expecting = session.ExpectingNothing
		return b.sendMenu(sess)
	}

	if sess.ActiveFlow != "" {
		handler, ok := b.flows[sess.ActiveFlow]
		if !ok {
			slog.Error("bot: no handler for active flow", "flow", sess.ActiveFlow)
			sess.LeaveFlow()
			return b.sendMenu(sess)
		}

		resp, err := handler.Handle(ctx, sess, ev)
		if err != nil {
			// Flow defects abort the flow; the user lands back on the menu.
			slog.Error("bot: flow aborted", "flow", handler.ID(), "state", sess.FlowState, "err", err)
			sess.LeaveFlow()
			b.sendText(sess.ChatID, b.texts.T(sess.Language, "error_generic"))
			return b.sendMenu(sess)
		}
		return b.send(sess, resp)
	}

	if ev.Kind == flow.EventCallback {
		return b.routeIdleCallback(ctx, sess, ev.Tag)
	}
	return b.routeIdleText(ctx, sess, ev.Text)
}

func (b *Bot) routeIdleCallback(ctx context.Context, sess *session.Session, tag string) error {
	lang := sess.Language

	switch {
	case strings.HasPrefix(tag, "set_lang_"):
		return b.selectLanguage(ctx, sess, strings.TrimPrefix(tag, "set_lang_"))

	case tag == "start_onboarding":
		return b.startFlow(ctx, sess, session.FlowOnboarding)

	case tag == "menu_set_goal":
		return b.startFlow(ctx, sess, session.FlowGoal)

	case tag == "menu_log_expense" || tag == "log_another_expense":
		sess.Expecting = session.ExpectingExpense
		return b.send(sess, flow.Response{
			Text:    b.texts.T(lang, "enter_expense"),
			Buttons: [][]flow.Button{backButtonRow(b.texts, lang)},
		})

	case tag == "menu_ask_advice" || tag == "ask_another":
		return b.sendAdviceMenu(sess)

	case tag == "advice_custom":
		sess.Expecting = session.ExpectingAdviceQuestion
		return b.send(sess, flow.Response{
			Text:    b.texts.T(lang, "enter_advice_question"),
			Buttons: [][]flow.Button{backButtonRow(b.texts, lang)},
		})

	case strings.HasPrefix(tag, "advice_"):
		questionKey, ok := adviceQuestions[strings.TrimPrefix(tag, "advice_")]
		if !ok {
			questionKey = "advice_question_general"
		}
		return b.sendAdvice(ctx, sess, b.texts.T(lang, questionKey))

	case tag == "menu_view_expenses":
		return b.sendExpensesView(ctx, sess)

	case tag == "menu_profile":
		return b.sendProfileView(ctx, sess)

	case tag == "menu_change_language":
		return b.sendLanguageMenu(sess, "select_language_prompt")

	case tag == "view_goal":
		return b.sendGoalView(ctx, sess)

	case tag == "update_goal_progress":
		return b.send(sess, flow.Response{Text: b.texts.T(lang, "progress_update_soon")})

	case tag == "share_goal_with_family":
		return b.sendGoalShare(ctx, sess)
	}

	slog.Warn("bot: unrouted callback", "user", sess.UserID, "tag", tag)
	return b.sendMenu(sess)
}

func (b *Bot) routeIdleText(ctx context.Context, sess *session.Session, text string) error {
	switch sess.Expecting {
	case session.ExpectingExpense:
		return b.handleExpenseText(ctx, sess, text)
	case session.ExpectingAdviceQuestion:
		sess.Expecting = session.ExpectingNothing
		return b.sendAdvice(ctx, sess, text)
	}

	b.sendText(sess.ChatID, b.texts.T(sess.Language, "help_hint"))
	return b.sendMenu(sess)
}

// adviceQuestions maps category tag suffixes to their canned questions.
var adviceQuestions = map[string]string{
	"savings":    "advice_question_savings",
	"debt":       "advice_question_debt",
	"remittance": "advice_question_remittance",
	"budget":     "advice_question_budget",
}

func (b *Bot) handleExpenseText(ctx context.Context, sess *session.Session, text string) error {
	lang := sess.Language

	expense, err := b.advisor.ParseExpense(ctx, text, lang)
	if err != nil {
		if !errors.Is(err, advisor.ErrUnparseableExpense) {
			slog.Error("bot: expense parse failed", "user", sess.UserID, "err", err)
		}
		// Still expecting: the user can simply rephrase.
		return b.send(sess, flow.Response{
			Text:    b.texts.T(lang, "expense_parse_error"),
			Buttons: [][]flow.Button{backButtonRow(b.texts, lang)},
		})
	}

	sess.Expecting = session.ExpectingNothing
	saved := b.svc.AppendExpense(ctx, sess.UserID, expense)

	return b.send(sess, flow.Response{
		Text: b.texts.F(lang, "expense_saved", saved.Amount, saved.Currency, saved.Description, saved.Category),
		Buttons: [][]flow.Button{
			{{Label: b.texts.T(lang, "log_another_expense"), Tag: "log_another_expense"}},
			backButtonRow(b.texts, lang),
		},
	})
}

// Commands interrupt whatever is in progress; /cancel additionally names what
// it cancelled.
func (b *Bot) handleCommand(ctx context.Context, sess *session.Session, cmd string) error {
	lang := sess.Language

	if cmd == "cancel" {
		switch sess.ActiveFlow {
		case session.FlowOnboarding:
			b.sendText(sess.ChatID, b.texts.T(lang, "onboarding_cancelled"))
		case session.FlowGoal:
			b.sendText(sess.ChatID, b.texts.T(lang, "goal_cancelled"))
		}
		sess.LeaveFlow()
		sess.Expecting = session.ExpectingNothing
		return b.sendMenu(sess)
	}

	sess.LeaveFlow()
	sess.Expecting = session.ExpectingNothing

	switch cmd {
	case "start":
		return b.sendLanguageMenu(sess, "welcome")
	case "menu":
		return b.sendMenu(sess)
	case "profile":
		return b.sendProfileView(ctx, sess)
	case "goal":
		return b.startFlow(ctx, sess, session.FlowGoal)
	case "view_goal":
		return b.sendGoalView(ctx, sess)
	case "log":
		sess.Expecting = session.ExpectingExpense
		return b.send(sess, flow.Response{
			Text:    b.texts.T(lang, "enter_expense"),
			Buttons: [][]flow.Button{backButtonRow(b.texts, lang)},
		})
	case "view_expenses":
		return b.sendExpensesView(ctx, sess)
	case "ask":
		return b.sendAdviceMenu(sess)
	}

	b.sendText(sess.ChatID, b.texts.T(lang, "help_hint"))
	return b.sendMenu(sess)
}

func (b *Bot) startFlow(ctx context.Context, sess *session.Session, id session.FlowID) error {
	return b.send(sess, b.flows[id].Start(ctx, sess))
}

func (b *Bot) selectLanguage(ctx context.Context, sess *session.Session, code string) error {
	if !b.cfg.IsSupported(code) {
		slog.Warn("bot: unsupported language selected", "user", sess.UserID, "code", code)
		return b.sendMenu(sess)
	}

	b.svc.SetLanguage(ctx, sess.UserID, code)
	sess.Language = code
	b.sendText(sess.ChatID, b.texts.T(code, "language_selected"))

	// First-time users go straight into profile setup.
	if b.svc.UserDoc(ctx, sess.UserID).Profile == nil {
		return b.startFlow(ctx, sess, session.FlowOnboarding)
	}
	return b.sendMenu(sess)
}
