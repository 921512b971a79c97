package flow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reach-sg/reach-bot/internal/locale"
	"github.com/reach-sg/reach-bot/internal/model"
	"github.com/reach-sg/reach-bot/internal/service"
	"github.com/reach-sg/reach-bot/internal/session"
)

// Onboarding states: a linear chain ending in a confirmation.
const (
	StateProfileIncome  session.StateID = "profile_income"
	StateProfileGoal    session.StateID = "profile_goal"
	StateProfileDebt    session.StateID = "profile_debt"
	StateProfileFamily  session.StateID = "profile_family"
	StateProfileConfirm session.StateID = "profile_confirm"
)

// Onboarding collects the user's profile: income bracket, primary goal,
// debt level and family support. Confirmation overwrites any existing
// profile wholesale.
type Onboarding struct {
	texts *locale.Bundle
	svc   *service.Assistant
}

func NewOnboarding(texts *locale.Bundle, svc *service.Assistant) *Onboarding {
	return &Onboarding{texts: texts, svc: svc}
}

func (o *Onboarding) ID() session.FlowID { return session.FlowOnboarding }

func (o *Onboarding) Start(ctx context.Context, sess *session.Session) Response {
	sess.ClearScratch(session.FlowOnboarding)
	sess.EnterFlow(session.FlowOnboarding, StateProfileIncome)
	return o.incomePrompt(sess.Language)
}

func (o *Onboarding) Handle(ctx context.Context, sess *session.Session, ev Event) (Response, error) {
	lang := sess.Language

	if ev.Kind != EventCallback {
		// Onboarding is button-driven; free text re-prompts the current state.
		return o.prompt(sess)
	}

	switch sess.FlowState {
	case StateProfileIncome:
		if n, ok := optionIndex(ev.Tag, "income_", 5); ok {
			sess.SetScratch(session.FlowOnboarding, "income", n)
			sess.SetState(StateProfileGoal)
			return o.goalPrompt(lang), nil
		}
	case StateProfileGoal:
		if n, ok := optionIndex(ev.Tag, "goal_", 4); ok {
			sess.SetScratch(session.FlowOnboarding, "goal", n)
			sess.SetState(StateProfileDebt)
			return o.debtPrompt(lang), nil
		}
	case StateProfileDebt:
		if n, ok := optionIndex(ev.Tag, "debt_", 3); ok {
			sess.SetScratch(session.FlowOnboarding, "debt", n)
			sess.SetState(StateProfileFamily)
			return o.familyPrompt(lang), nil
		}
	case StateProfileFamily:
		if n, ok := optionIndex(ev.Tag, "family_", 3); ok {
			sess.SetScratch(session.FlowOnboarding, "family", n)
			sess.SetState(StateProfileConfirm)
			return o.confirmPrompt(sess)
		}
	case StateProfileConfirm:
		switch ev.Tag {
		case "confirm_yes":
			return o.commit(ctx, sess)
		case "confirm_no":
			sess.ClearScratch(session.FlowOnboarding)
			sess.SetState(StateProfileIncome)
			resp := o.incomePrompt(lang)
			resp.Text = o.texts.T(lang, "profile_restart") + "\n\n" + resp.Text
			return resp, nil
		}
	default:
		return Response{}, fmt.Errorf("onboarding: unknown state %q", sess.FlowState)
	}

	// Recognized state, unrecognized tag: re-prompt without advancing.
	slog.Warn("onboarding: unexpected tag for state", "state", sess.FlowState, "tag", ev.Tag)
	return o.prompt(sess)
}

func (o *Onboarding) commit(ctx context.Context, sess *session.Session) (Response, error) {
	var profile model.Profile
	fields := []struct {
		key string
		dst *string
	}{
		{"income", &profile.Income},
		{"goal", &profile.Goal},
		{"debt", &profile.Debt},
		{"family", &profile.Family},
	}
	for _, f := range fields {
		v, err := sess.RequireScratch(session.FlowOnboarding, f.key)
		if err != nil {
			return Response{}, err
		}
		*f.dst = v
	}

	o.svc.SaveProfile(ctx, sess.UserID, profile)
	lang := sess.Language
	sess.LeaveFlow()
	return Response{Text: o.texts.T(lang, "profile_saved")}, nil
}

// prompt re-renders the current state, used after invalid input.
func (o *Onboarding) prompt(sess *session.Session) (Response, error) {
	switch sess.FlowState {
	case StateProfileIncome:
		return o.incomePrompt(sess.Language), nil
	case StateProfileGoal:
		return o.goalPrompt(sess.Language), nil
	case StateProfileDebt:
		return o.debtPrompt(sess.Language), nil
	case StateProfileFamily:
		return o.familyPrompt(sess.Language), nil
	case StateProfileConfirm:
		return o.confirmPrompt(sess)
	default:
		return Response{}, fmt.Errorf("onboarding: unknown state %q", sess.FlowState)
	}
}

func (o *Onboarding) incomePrompt(lang string) Response {
	return Response{
		Text:    o.texts.T(lang, "income_question"),
		Buttons: append(optionRows(o.texts, lang, "income_option_", "income_", 5), backRow(o.texts, lang)),
	}
}

func (o *Onboarding) goalPrompt(lang string) Response {
	return Response{
		Text:    o.texts.T(lang, "goal_question"),
		Buttons: append(optionRows(o.texts, lang, "goal_option_", "goal_", 4), backRow(o.texts, lang)),
	}
}

func (o *Onboarding) debtPrompt(lang string) Response {
	return Response{
		Text:    o.texts.T(lang, "debt_question"),
		Buttons: append(optionRows(o.texts, lang, "debt_option_", "debt_", 3), backRow(o.texts, lang)),
	}
}

func (o *Onboarding) familyPrompt(lang string) Response {
	return Response{
		Text:    o.texts.T(lang, "family_question"),
		Buttons: append(optionRows(o.texts, lang, "family_option_", "family_", 3), backRow(o.texts, lang)),
	}
}

func (o *Onboarding) confirmPrompt(sess *session.Session) (Response, error) {
	lang := sess.Language
	var labels [4]string
	for i, f := range []struct{ key, optionKey string }{
		{"income", "income_option_"},
		{"goal", "goal_option_"},
		{"debt", "debt_option_"},
		{"family", "family_option_"},
	} {
		v, err := sess.RequireScratch(session.FlowOnboarding, f.key)
		if err != nil {
			return Response{}, err
		}
		labels[i] = o.texts.T(lang, f.optionKey+v)
	}

	return Response{
		Text:    o.texts.F(lang, "profile_summary", labels[0], labels[1], labels[2], labels[3]),
		Buttons: [][]Button{yesNoRow(o.texts, lang, "confirm_yes", "confirm_no")},
	}, nil
}

// optionIndex extracts the numeric suffix of tags like "income_3" and checks
// it is within 1..max.
func optionIndex(tag, prefix string, max int) (string, bool) {
	if !strings.HasPrefix(tag, prefix) {
		return "", false
	}
	n := strings.TrimPrefix(tag, prefix)
	if len(n) != 1 || n[0] < '1' || int(n[0]-'0') > max {
		return "", false
	}
	return n, true
}

// optionRows renders numbered options one per row.
func optionRows(texts *locale.Bundle, lang, labelPrefix, tagPrefix string, count int) [][]Button {
	rows := make([][]Button, 0, count)
	for i := 1; i <= count; i++ {
		rows = append(rows, []Button{{
			Label: texts.T(lang, fmt.Sprintf("%s%d", labelPrefix, i)),
			Tag:   fmt.Sprintf("%s%d", tagPrefix, i),
		}})
	}
	return rows
}
