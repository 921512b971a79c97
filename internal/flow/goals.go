package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/reach-sg/reach-bot/internal/advisor"
	"github.com/reach-sg/reach-bot/internal/locale"
	"github.com/reach-sg/reach-bot/internal/model"
	"github.com/reach-sg/reach-bot/internal/service"
	"github.com/reach-sg/reach-bot/internal/session"
)

// Goal-setting states: three assessment questions, then the goal itself.
const (
	StateGoalIncome   session.StateID = "goal_income"
	StateGoalFamily   session.StateID = "goal_family"
	StateGoalSpending session.StateID = "goal_spending"
	StateGoalType     session.StateID = "goal_type"
	StateGoalAmount   session.StateID = "goal_amount"
	StateGoalDeadline session.StateID = "goal_deadline"
	StateGoalSteps    session.StateID = "goal_steps"
	StateGoalConfirm  session.StateID = "goal_confirm"
)

// GoalSetting walks the user from a short situation assessment to a saved
// goal with a deadline and a step plan. Assessment answers feed the advisory
// adapter; when it yields nothing the flow degrades to a fixed type menu.
type GoalSetting struct {
	texts   *locale.Bundle
	svc     *service.Assistant
	advisor advisor.Client
}

func NewGoalSetting(texts *locale.Bundle, svc *service.Assistant, adv advisor.Client) *GoalSetting {
	return &GoalSetting{texts: texts, svc: svc, advisor: adv}
}

func (g *GoalSetting) ID() session.FlowID { return session.FlowGoal }

func (g *GoalSetting) Start(ctx context.Context, sess *session.Session) Response {
	sess.ClearScratch(session.FlowGoal)
	sess.EnterFlow(session.FlowGoal, StateGoalIncome)
	return g.incomePrompt(sess.Language)
}

func (g *GoalSetting) Handle(ctx context.Context, sess *session.Session, ev Event) (Response, error) {
	switch sess.FlowState {
	case StateGoalIncome:
		return g.handleIncome(sess, ev)
	case StateGoalFamily:
		return g.handleFamily(sess, ev)
	case StateGoalSpending:
		return g.handleSpending(ctx, sess, ev)
	case StateGoalType:
		return g.handleType(sess, ev)
	case StateGoalAmount:
		return g.handleAmount(sess, ev)
	case StateGoalDeadline:
		return g.handleDeadline(sess, ev)
	case StateGoalSteps:
		return g.handleSteps(sess, ev)
	case StateGoalConfirm:
		return g.handleConfirm(ctx, sess, ev)
	default:
		return Response{}, fmt.Errorf("goal flow: unknown state %q", sess.FlowState)
	}
}

// --- assessment states ---

func (g *GoalSetting) handleIncome(sess *session.Session, ev Event) (Response, error) {
	lang := sess.Language
	n, ok := optionIndex(ev.Tag, "income_", 5)
	if ev.Kind != EventCallback || !ok {
		return g.incomePrompt(lang), nil
	}
	sess.SetScratch(session.FlowGoal, "income_level", n)
	sess.SetScratch(session.FlowGoal, "income_text", g.texts.T(lang, "income_option_"+n))
	sess.SetState(StateGoalFamily)

	// Low earners get phrasing that acknowledges a tight budget.
	questionKey := "family_question_high_income"
	if n <= "2" {
		questionKey = "family_question_low_income"
	}
	return Response{
		Text:    g.texts.T(lang, questionKey),
		Buttons: append(optionRows(g.texts, lang, "family_needs_option_", "family_needs_", 4), backRow(g.texts, lang)),
	}, nil
}

func (g *GoalSetting) handleFamily(sess *session.Session, ev Event) (Response, error) {
	lang := sess.Language
	n, ok := optionIndex(ev.Tag, "family_needs_", 4)
	if ev.Kind != EventCallback || !ok {
		return g.familyPrompt(sess)
	}
	sess.SetScratch(session.FlowGoal, "family_needs", n)
	sess.SetScratch(session.FlowGoal, "family_text", g.texts.T(lang, "family_needs_option_"+n))
	sess.SetState(StateGoalSpending)

	text := g.texts.T(lang, "spending_question")
	switch n {
	case "3":
		text = g.texts.T(lang, "spending_context_remittance") + "\n\n" + text
	case "4":
		text = g.texts.T(lang, "spending_context_education") + "\n\n" + text
	}
	return Response{
		Text:    text,
		Buttons: append(optionRows(g.texts, lang, "spending_option_", "spending_", 4), backRow(g.texts, lang)),
	}, nil
}

func (g *GoalSetting) handleSpending(ctx context.Context, sess *session.Session, ev Event) (Response, error) {
	lang := sess.Language
	n, ok := optionIndex(ev.Tag, "spending_", 4)
	if ev.Kind != EventCallback || !ok {
		return g.spendingPrompt(sess)
	}
	sess.SetScratch(session.FlowGoal, "spending_text", g.texts.T(lang, "spending_option_"+n))
	sess.SetState(StateGoalType)

	resp, err := g.typePrompt(ctx, sess)
	if err != nil {
		return Response{}, err
	}
	resp.Notice = g.texts.T(lang, "generating_goals")
	return resp, nil
}

// typePrompt asks the advisor for personalized suggestions; an empty answer
// degrades to the fixed type menu.
func (g *GoalSetting) typePrompt(ctx context.Context, sess *session.Session) (Response, error) {
	lang := sess.Language

	income, _ := sess.Scratch(session.FlowGoal, "income_text")
	family, _ := sess.Scratch(session.FlowGoal, "family_text")
	situation, _ := sess.Scratch(session.FlowGoal, "spending_text")
	suggestions := g.advisor.GoalSuggestions(ctx, advisor.SuggestionContext{
		Income:      income,
		FamilyNeeds: family,
		Situation:   situation,
		Language:    lang,
	})
	if len(suggestions) == 0 {
		sess.SetScratch(session.FlowGoal, "suggestions", "")
		return g.fixedTypeMenu(lang), nil
	}

	raw, err := json.Marshal(suggestions)
	if err != nil {
		return Response{}, fmt.Errorf("goal flow: encode suggestions: %w", err)
	}
	sess.SetScratch(session.FlowGoal, "suggestions", string(raw))

	rows := make([][]Button, 0, len(suggestions)+2)
	for i, s := range suggestions {
		rows = append(rows, []Button{{
			Label: typeEmoji(goalTypeFromText(s.Goal+" "+s.Description)) + " " + s.Goal,
			Tag:   fmt.Sprintf("goal_sugg_%d", i),
		}})
	}
	rows = append(rows, []Button{{Label: g.texts.T(lang, "custom_goal_option"), Tag: "goal_custom"}})
	rows = append(rows, backRow(g.texts, lang))

	return Response{
		Text:    g.texts.T(lang, "goal_suggestions_prompt") + "\n\n" + g.texts.T(lang, "goal_behavioral_context"),
		Buttons: rows,
	}, nil
}

func (g *GoalSetting) fixedTypeMenu(lang string) Response {
	return Response{
		Text: g.texts.T(lang, "family_goal_question"),
		Buttons: [][]Button{
			{{Label: g.texts.T(lang, "family_goal_savings"), Tag: "goal_type_" + model.GoalSavings}},
			{{Label: g.texts.T(lang, "family_goal_remittance"), Tag: "goal_type_" + model.GoalRemittance}},
			{{Label: g.texts.T(lang, "family_goal_education"), Tag: "goal_type_" + model.GoalEducation}},
			{{Label: g.texts.T(lang, "family_goal_health"), Tag: "goal_type_" + model.GoalHealth}},
			backRow(g.texts, lang),
		},
	}
}

// --- goal definition states ---

func (g *GoalSetting) handleType(sess *session.Session, ev Event) (Response, error) {
	lang := sess.Language
	if ev.Kind != EventCallback {
		return g.fixedTypeMenu(lang), nil
	}

	switch {
	case strings.HasPrefix(ev.Tag, "goal_sugg_"):
		i, err := strconv.Atoi(strings.TrimPrefix(ev.Tag, "goal_sugg_"))
		if err != nil {
			return g.fixedTypeMenu(lang), nil
		}
		// A stale keyboard can deliver a suggestion tag after the advisor fell
		// back to the fixed menu; absent or unreadable suggestions degrade the
		// same way an out-of-range index does.
		var suggestions []model.GoalSuggestion
		if raw, ok := sess.Scratch(session.FlowGoal, "suggestions"); ok && raw != "" {
			if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
				slog.Warn("goal flow: unreadable suggestions scratch", "err", err)
				suggestions = nil
			}
		}
		if i < 0 || i >= len(suggestions) {
			slog.Warn("goal flow: suggestion index out of range", "index", i, "count", len(suggestions))
			return g.fixedTypeMenu(lang), nil
		}
		s := suggestions[i]
		goalType := goalTypeFromText(s.Goal + " " + s.Description)
		sess.SetScratch(session.FlowGoal, "type", goalType)
		sess.SetScratch(session.FlowGoal, "name", s.Goal)
		sess.SetScratch(session.FlowGoal, "rationale", s.Rationale)
		sess.SetState(StateGoalAmount)

		resp := g.amountPrompt(lang, goalType)
		if s.Rationale != "" {
			resp.Text = g.texts.T(lang, "goal_rationale_prefix") + " " + s.Rationale + "\n\n" + resp.Text
		}
		return resp, nil

	case ev.Tag == "goal_custom":
		return g.fixedTypeMenu(lang), nil

	case strings.HasPrefix(ev.Tag, "goal_type_"):
		goalType := strings.TrimPrefix(ev.Tag, "goal_type_")
		switch goalType {
		case model.GoalSavings, model.GoalRemittance, model.GoalEducation, model.GoalHealth, model.GoalOther:
		default:
			return g.fixedTypeMenu(lang), nil
		}
		sess.SetScratch(session.FlowGoal, "type", goalType)
		sess.SetScratch(session.FlowGoal, "name", g.texts.T(lang, "goal_type_"+goalType))
		sess.SetState(StateGoalAmount)
		return g.amountPrompt(lang, goalType), nil
	}

	slog.Warn("goal flow: unexpected tag for type state", "tag", ev.Tag)
	return g.fixedTypeMenu(lang), nil
}

func (g *GoalSetting) handleAmount(sess *session.Session, ev Event) (Response, error) {
	lang := sess.Language
	goalType, err := sess.RequireScratch(session.FlowGoal, "type")
	if err != nil {
		return Response{}, err
	}
	if ev.Kind != EventText {
		return g.amountPrompt(lang, goalType), nil
	}

	amount, err := ParseAmount(ev.Text)
	if err != nil {
		resp := g.amountPrompt(lang, goalType)
		resp.Text = g.texts.T(lang, "invalid_amount")
		return resp, nil
	}
	sess.SetScratch(session.FlowGoal, "amount", amount.String())
	sess.SetState(StateGoalDeadline)
	return g.deadlinePrompt(sess, amount)
}

// deadlinePrompt offers shorter horizons to small goals and low earners.
func (g *GoalSetting) deadlinePrompt(sess *session.Session, amount decimal.Decimal) (Response, error) {
	lang := sess.Language
	level, err := sess.RequireScratch(session.FlowGoal, "income_level")
	if err != nil {
		return Response{}, err
	}

	type option struct{ labelKey, months string }
	options := []option{
		{"deadline_1month", "1"},
		{"deadline_3months", "3"},
		{"deadline_6months", "6"},
		{"deadline_1year", "12"},
	}
	if amount.LessThan(decimal.NewFromInt(500)) || level <= "2" {
		options = []option{
			{"deadline_next_payday", "0.5"},
			{"deadline_1month", "1"},
			{"deadline_3months", "3"},
		}
	}

	rows := make([][]Button, 0, len(options)+1)
	for _, o := range options {
		rows = append(rows, []Button{{
			Label: g.texts.T(lang, o.labelKey),
			Tag:   "deadline_" + o.months,
		}})
	}
	rows = append(rows, backRow(g.texts, lang))

	return Response{
		Text:    g.texts.T(lang, "goal_deadline_question"),
		Buttons: rows,
	}, nil
}

func (g *GoalSetting) handleDeadline(sess *session.Session, ev Event) (Response, error) {
	lang := sess.Language
	if ev.Kind != EventCallback || !strings.HasPrefix(ev.Tag, "deadline_") {
		amount, err := g.scratchAmount(sess)
		if err != nil {
			return Response{}, err
		}
		return g.deadlinePrompt(sess, amount)
	}

	months, err := strconv.ParseFloat(strings.TrimPrefix(ev.Tag, "deadline_"), 64)
	if err != nil || months <= 0 {
		amount, aerr := g.scratchAmount(sess)
		if aerr != nil {
			return Response{}, aerr
		}
		return g.deadlinePrompt(sess, amount)
	}

	amount, err := g.scratchAmount(sess)
	if err != nil {
		return Response{}, err
	}
	goalType, err := sess.RequireScratch(session.FlowGoal, "type")
	if err != nil {
		return Response{}, err
	}

	deadline := DeadlineDate(time.Now(), months)
	sess.SetScratch(session.FlowGoal, "deadline", deadline.Format(time.RFC3339))
	sess.SetScratch(session.FlowGoal, "deadline_months", strconv.FormatFloat(months, 'f', -1, 64))

	steps := Milestones(goalType, amount, months)
	sess.SetScratch(session.FlowGoal, "steps", strings.Join(steps, "\n"))
	sess.SetState(StateGoalSteps)

	return Response{
		Text:    g.texts.F(lang, "goal_steps_question", numberedList(steps)),
		Buttons: [][]Button{yesNoRow(g.texts, lang, "steps_yes", "steps_no")},
	}, nil
}

func (g *GoalSetting) handleSteps(sess *session.Session, ev Event) (Response, error) {
	lang := sess.Language

	if ev.Kind == EventText {
		steps := splitSteps(ev.Text)
		if len(steps) == 0 {
			return Response{Text: g.texts.T(lang, "invalid_steps")}, nil
		}
		sess.SetScratch(session.FlowGoal, "steps", strings.Join(steps, "\n"))
		sess.SetState(StateGoalConfirm)
		return g.confirmPrompt(sess)
	}

	switch ev.Tag {
	case "steps_yes":
		sess.SetState(StateGoalConfirm)
		return g.confirmPrompt(sess)
	case "steps_no":
		return Response{Text: g.texts.T(lang, "enter_custom_steps")}, nil
	}

	steps, err := sess.RequireScratch(session.FlowGoal, "steps")
	if err != nil {
		return Response{}, err
	}
	return Response{
		Text:    g.texts.F(lang, "goal_steps_question", numberedList(strings.Split(steps, "\n"))),
		Buttons: [][]Button{yesNoRow(g.texts, lang, "steps_yes", "steps_no")},
	}, nil
}

func (g *GoalSetting) handleConfirm(ctx context.Context, sess *session.Session, ev Event) (Response, error) {
	lang := sess.Language
	if ev.Kind != EventCallback {
		return g.confirmPrompt(sess)
	}

	switch ev.Tag {
	case "goal_confirm_yes":
		goal, err := g.buildGoal(sess)
		if err != nil {
			return Response{}, err
		}
		if _, err := g.svc.AppendGoal(ctx, sess.UserID, goal); err != nil {
			return Response{}, err
		}
		sess.LeaveFlow()
		return Response{Text: g.texts.T(lang, "goal_saved")}, nil

	case "goal_confirm_no":
		resp := g.Start(ctx, sess)
		resp.Text = g.texts.T(lang, "goal_restart") + "\n\n" + resp.Text
		return resp, nil
	}

	return g.confirmPrompt(sess)
}

func (g *GoalSetting) confirmPrompt(sess *session.Session) (Response, error) {
	lang := sess.Language
	goal, err := g.buildGoal(sess)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Text: g.texts.F(lang, "goal_summary",
			g.texts.T(lang, "goal_type_"+goal.Type),
			goal.Amount,
			goal.Deadline.Format("02 Jan 2006"),
			numberedList(goal.Steps)),
		Buttons: [][]Button{yesNoRow(g.texts, lang, "goal_confirm_yes", "goal_confirm_no")},
	}, nil
}

// buildGoal assembles the pending goal from scratch. Every key must be
// present; a gap means a state was skipped.
func (g *GoalSetting) buildGoal(sess *session.Session) (model.Goal, error) {
	goalType, err := sess.RequireScratch(session.FlowGoal, "type")
	if err != nil {
		return model.Goal{}, err
	}
	amount, err := g.scratchAmount(sess)
	if err != nil {
		return model.Goal{}, err
	}
	rawDeadline, err := sess.RequireScratch(session.FlowGoal, "deadline")
	if err != nil {
		return model.Goal{}, err
	}
	deadline, err := time.Parse(time.RFC3339, rawDeadline)
	if err != nil {
		return model.Goal{}, fmt.Errorf("goal flow: bad deadline scratch %q: %w", rawDeadline, err)
	}
	rawSteps, err := sess.RequireScratch(session.FlowGoal, "steps")
	if err != nil {
		return model.Goal{}, err
	}

	f, _ := amount.Float64()
	return model.Goal{
		Type:     goalType,
		Amount:   f,
		Deadline: deadline,
		Steps:    strings.Split(rawSteps, "\n"),
	}, nil
}

func (g *GoalSetting) scratchAmount(sess *session.Session) (decimal.Decimal, error) {
	raw, err := sess.RequireScratch(session.FlowGoal, "amount")
	if err != nil {
		return decimal.Decimal{}, err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("goal flow: bad amount scratch %q: %w", raw, err)
	}
	return amount, nil
}

// --- prompts ---

func (g *GoalSetting) incomePrompt(lang string) Response {
	return Response{
		Text:    g.texts.T(lang, "income_question_behavioral"),
		Buttons: append(optionRows(g.texts, lang, "income_option_", "income_", 5), backRow(g.texts, lang)),
	}
}

func (g *GoalSetting) familyPrompt(sess *session.Session) (Response, error) {
	lang := sess.Language
	level, err := sess.RequireScratch(session.FlowGoal, "income_level")
	if err != nil {
		return Response{}, err
	}
	questionKey := "family_question_high_income"
	if level <= "2" {
		questionKey = "family_question_low_income"
	}
	return Response{
		Text:    g.texts.T(lang, questionKey),
		Buttons: append(optionRows(g.texts, lang, "family_needs_option_", "family_needs_", 4), backRow(g.texts, lang)),
	}, nil
}

func (g *GoalSetting) spendingPrompt(sess *session.Session) (Response, error) {
	lang := sess.Language
	return Response{
		Text:    g.texts.T(lang, "spending_question"),
		Buttons: append(optionRows(g.texts, lang, "spending_option_", "spending_", 4), backRow(g.texts, lang)),
	}, nil
}

func (g *GoalSetting) amountPrompt(lang, goalType string) Response {
	return Response{
		Text:    g.texts.T(lang, "goal_amount_question_"+goalType),
		Buttons: [][]Button{backRow(g.texts, lang)},
	}
}

// --- helpers ---

func numberedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return strings.TrimRight(b.String(), "\n")
}

func splitSteps(text string) []string {
	var steps []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}

// goalTypeFromText classifies a free-form suggestion name by keyword.
func goalTypeFromText(text string) string {
	text = strings.ToLower(text)
	switch {
	case containsAny(text, "send", "home", "remit", "family abroad"):
		return model.GoalRemittance
	case containsAny(text, "school", "education", "study", "course", "tuition"):
		return model.GoalEducation
	case containsAny(text, "health", "medical", "doctor", "hospital"):
		return model.GoalHealth
	case containsAny(text, "save", "saving", "emergency", "fund"):
		return model.GoalSavings
	default:
		return model.GoalOther
	}
}

func typeEmoji(goalType string) string {
	switch goalType {
	case model.GoalSavings:
		return "💰"
	case model.GoalRemittance:
		return "🏠"
	case model.GoalEducation:
		return "📚"
	case model.GoalHealth:
		return "❤️"
	default:
		return "🎯"
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
