package bot

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reach-sg/reach-bot/internal/advisor"
	"github.com/reach-sg/reach-bot/internal/charts"
	"github.com/reach-sg/reach-bot/internal/config"
	"github.com/reach-sg/reach-bot/internal/flow"
	"github.com/reach-sg/reach-bot/internal/locale"
	"github.com/reach-sg/reach-bot/internal/model"
	"github.com/reach-sg/reach-bot/internal/repository"
	"github.com/reach-sg/reach-bot/internal/service"
	"github.com/reach-sg/reach-bot/internal/session"
)

// fakeClient records everything the bot sends.
type fakeClient struct {
	sent []tgbotapi.Chattable
}

func (f *fakeClient) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeClient) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeClient) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	ch := make(chan tgbotapi.Update)
	close(ch)
	return ch
}

// messages returns the text messages sent so far, in order.
func (f *fakeClient) messages() []tgbotapi.MessageConfig {
	var msgs []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

func (f *fakeClient) photos() []tgbotapi.PhotoConfig {
	var photos []tgbotapi.PhotoConfig
	for _, c := range f.sent {
		if p, ok := c.(tgbotapi.PhotoConfig); ok {
			photos = append(photos, p)
		}
	}
	return photos
}

func (f *fakeClient) lastMessage(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	msgs := f.messages()
	require.NotEmpty(t, msgs)
	return msgs[len(msgs)-1]
}

type memRepo struct {
	docs map[int64]*model.UserDoc
}

func newMemRepo() *memRepo {
	return &memRepo{docs: make(map[int64]*model.UserDoc)}
}

func (r *memRepo) GetUser(ctx context.Context, userID int64) (*model.UserDoc, error) {
	doc, ok := r.docs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return doc, nil
}

func (r *memRepo) MergeUser(ctx context.Context, userID int64, patch model.UserPatch) error {
	doc, ok := r.docs[userID]
	if !ok {
		doc = model.DefaultUserDoc(userID, "en")
		r.docs[userID] = doc
	}
	patch.Apply(doc)
	return nil
}

type fakeAdvisor struct {
	advice   string
	expense  model.Expense
	parseErr error
}

func (f *fakeAdvisor) GoalSuggestions(ctx context.Context, sc advisor.SuggestionContext) []model.GoalSuggestion {
	return nil
}

func (f *fakeAdvisor) Advice(ctx context.Context, prompt, language string) string {
	if f.advice == "" {
		return advisor.FallbackAdvice
	}
	return f.advice
}

func (f *fakeAdvisor) ParseExpense(ctx context.Context, text, language string) (model.Expense, error) {
	if f.parseErr != nil {
		return model.Expense{}, f.parseErr
	}
	return f.expense, nil
}

type botFixture struct {
	bot    *Bot
	client *fakeClient
	repo   *memRepo
	adv    *fakeAdvisor
	texts  *locale.Bundle
}

func newBotFixture() *botFixture {
	cfg := &config.Config{
		TelegramToken:      "test-token",
		DefaultLanguage:    "en",
		SupportedLanguages: []string{"en", "bn", "ta"},
	}
	repo := newMemRepo()
	svc := service.NewAssistant(repo, cfg.DefaultLanguage)
	texts := locale.NewBundle(cfg.DefaultLanguage, cfg.SupportedLanguages)
	adv := &fakeAdvisor{}
	client := &fakeClient{}

	return &botFixture{
		bot: &Bot{
			api:      client,
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
		},
		client: client,
		repo:   repo,
		adv:    adv,
		texts:  texts,
	}
}

func callbackUpdate(userID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: userID},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: userID}},
		Data:    data,
	}}
}

func textUpdate(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: userID},
		Text: text,
	}}
}

func commandUpdate(userID int64, command string) tgbotapi.Update {
	u := textUpdate(userID, command)
	u.Message.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(command)}}
	return u
}

func (f *botFixture) handle(t *testing.T, u tgbotapi.Update) {
	t.Helper()
	require.NoError(t, f.bot.handleUpdate(context.Background(), u))
}

func (f *botFixture) session(userID int64) *session.Session {
	sess, release := f.bot.sessions.Acquire(userID)
	release()
	return sess
}

func TestBackToMenuAlwaysEscapes(t *testing.T) {
	f := newBotFixture()

	f.handle(t, callbackUpdate(1, "menu_set_goal"))
	require.Equal(t, session.FlowGoal, f.session(1).ActiveFlow)

	f.handle(t, callbackUpdate(1, flow.TagBackToMenu))
	assert.Empty(t, f.session(1).ActiveFlow)
	assert.Equal(t, f.texts.T("en", "main_menu"), f.client.lastMessage(t).Text)

	// Pressing it again while idle is a no-op that re-renders the menu.
	f.handle(t, callbackUpdate(1, flow.TagBackToMenu))
	assert.Empty(t, f.session(1).ActiveFlow)
	assert.Equal(t, f.texts.T("en", "main_menu"), f.client.lastMessage(t).Text)
}

func TestActiveFlowOwnsSharedTags(t *testing.T) {
	f := newBotFixture()

	// income_2 inside the goal flow advances the goal assessment.
	f.handle(t, callbackUpdate(1, "menu_set_goal"))
	f.handle(t, callbackUpdate(1, "income_2"))
	assert.Equal(t, f.texts.T("en", "family_question_low_income"), f.client.lastMessage(t).Text)

	// The same tag inside onboarding advances onboarding instead.
	f.handle(t, callbackUpdate(1, flow.TagBackToMenu))
	f.handle(t, callbackUpdate(1, "start_onboarding"))
	f.handle(t, callbackUpdate(1, "income_2"))
	assert.Equal(t, f.texts.T("en", "goal_question"), f.client.lastMessage(t).Text)
}

func TestExpenseLogging(t *testing.T) {
	f := newBotFixture()
	f.adv.expense = model.Expense{Amount: 12.5, Currency: "USD", Category: "food", Description: "lunch"}

	f.handle(t, callbackUpdate(1, "menu_log_expense"))
	require.Equal(t, session.ExpectingExpense, f.session(1).Expecting)

	f.handle(t, textUpdate(1, "12.50 lunch"))
	assert.Equal(t, session.ExpectingNothing, f.session(1).Expecting)
	assert.Contains(t, f.client.lastMessage(t).Text, "12.50")
	assert.Contains(t, f.client.lastMessage(t).Text, "lunch")

	require.NotNil(t, f.repo.docs[1])
	require.Len(t, f.repo.docs[1].Expenses, 1)
	assert.NotEmpty(t, f.repo.docs[1].Expenses[0].ID)
}

func TestUnparseableExpenseKeepsExpecting(t *testing.T) {
	f := newBotFixture()
	f.adv.parseErr = advisor.ErrUnparseableExpense

	f.handle(t, callbackUpdate(1, "menu_log_expense"))
	f.handle(t, textUpdate(1, "mumble"))

	assert.Equal(t, session.ExpectingExpense, f.session(1).Expecting, "the user can simply rephrase")
	assert.Equal(t, f.texts.T("en", "expense_parse_error"), f.client.lastMessage(t).Text)
	assert.Nil(t, f.repo.docs[1], "no record is created from unparseable text")

	// A rephrase goes through.
	f.adv.parseErr = nil
	f.adv.expense = model.Expense{Amount: 10, Currency: "USD", Category: "food"}
	f.handle(t, textUpdate(1, "10 groceries"))
	require.NotNil(t, f.repo.docs[1])
	assert.Len(t, f.repo.docs[1].Expenses, 1)
}

func TestExpenseViewSendsCharts(t *testing.T) {
	f := newBotFixture()
	f.repo.docs[1] = &model.UserDoc{
		UserID:   1,
		Language: "en",
		Expenses: []model.Expense{
			{ID: "e1", Amount: 30, Currency: "USD", Category: "food"},
			{ID: "e2", Amount: 70, Currency: "USD", Category: "transport"},
		},
	}

	f.handle(t, callbackUpdate(1, "menu_view_expenses"))

	assert.Contains(t, f.client.lastMessage(t).Text, "food")
	assert.Len(t, f.client.photos(), 2, "bar chart plus category split")
}

func TestExpenseViewSingleCategorySkipsPie(t *testing.T) {
	f := newBotFixture()
	f.repo.docs[1] = &model.UserDoc{
		UserID:   1,
		Language: "en",
		Expenses: []model.Expense{{ID: "e1", Amount: 30, Currency: "USD", Category: "food"}},
	}

	f.handle(t, callbackUpdate(1, "menu_view_expenses"))

	assert.Len(t, f.client.photos(), 1, "one category has no split to picture")
}

func TestAdviceCategoryFlow(t *testing.T) {
	f := newBotFixture()
	f.adv.advice = "Set aside $20 every payday."

	f.handle(t, callbackUpdate(1, "menu_ask_advice"))
	assert.Equal(t, f.texts.T("en", "advice_category_prompt"), f.client.lastMessage(t).Text)

	f.handle(t, callbackUpdate(1, "advice_savings"))
	msgs := f.client.messages()
	require.GreaterOrEqual(t, len(msgs), 2)
	assert.Equal(t, f.texts.T("en", "ai_thinking"), msgs[len(msgs)-2].Text)
	assert.Equal(t, "Set aside $20 every payday.", msgs[len(msgs)-1].Text)
}

func TestCustomAdviceQuestion(t *testing.T) {
	f := newBotFixture()
	f.adv.advice = "Here's what I'd do."

	f.handle(t, callbackUpdate(1, "advice_custom"))
	require.Equal(t, session.ExpectingAdviceQuestion, f.session(1).Expecting)

	f.handle(t, textUpdate(1, "how do I stop impulse buying?"))
	assert.Equal(t, session.ExpectingNothing, f.session(1).Expecting)
	assert.Equal(t, "Here's what I'd do.", f.client.lastMessage(t).Text)
}

func TestLanguageSelectionStartsOnboardingForNewUsers(t *testing.T) {
	f := newBotFixture()

	f.handle(t, callbackUpdate(1, "set_lang_bn"))

	sess := f.session(1)
	assert.Equal(t, "bn", sess.Language)
	assert.Equal(t, session.FlowOnboarding, sess.ActiveFlow, "new users go straight into profile setup")
	assert.Equal(t, "bn", f.repo.docs[1].Language)
}

func TestLanguageSelectionReturningUserGetsMenu(t *testing.T) {
	f := newBotFixture()
	f.repo.docs[1] = &model.UserDoc{
		UserID:   1,
		Language: "en",
		Profile:  &model.Profile{Income: "2", Goal: "1", Debt: "1", Family: "1"},
	}

	f.handle(t, callbackUpdate(1, "set_lang_ta"))
	assert.Empty(t, f.session(1).ActiveFlow)
	assert.Equal(t, f.texts.T("ta", "main_menu"), f.client.lastMessage(t).Text)
}

func TestCancelCommandNamesTheFlow(t *testing.T) {
	f := newBotFixture()

	f.handle(t, callbackUpdate(1, "menu_set_goal"))
	f.handle(t, commandUpdate(1, "/cancel"))

	assert.Empty(t, f.session(1).ActiveFlow)
	msgs := f.client.messages()
	require.GreaterOrEqual(t, len(msgs), 2)
	assert.Equal(t, f.texts.T("en", "goal_cancelled"), msgs[len(msgs)-2].Text)
	assert.Equal(t, f.texts.T("en", "main_menu"), msgs[len(msgs)-1].Text)
}

func TestIdleTextGetsHelpAndMenu(t *testing.T) {
	f := newBotFixture()

	f.handle(t, textUpdate(1, "hello there"))
	msgs := f.client.messages()
	require.GreaterOrEqual(t, len(msgs), 2)
	assert.Equal(t, f.texts.T("en", "help_hint"), msgs[len(msgs)-2].Text)
	assert.Equal(t, f.texts.T("en", "main_menu"), msgs[len(msgs)-1].Text)
}

func TestGoalCommandStartsFlow(t *testing.T) {
	f := newBotFixture()

	f.handle(t, commandUpdate(1, "/goal"))
	assert.Equal(t, session.FlowGoal, f.session(1).ActiveFlow)
	assert.Equal(t, f.texts.T("en", "income_question_behavioral"), f.client.lastMessage(t).Text)
}

func TestViewGoalWithoutGoals(t *testing.T) {
	f := newBotFixture()

	f.handle(t, commandUpdate(1, "/view_goal"))
	assert.Equal(t, f.texts.T("en", "no_goals"), f.client.lastMessage(t).Text)
}

func TestFlowDefectAbortsToMenu(t *testing.T) {
	f := newBotFixture()

	// Force an impossible state; the next event must not wedge the session.
	sess := f.session(1)
	sess.EnterFlow(session.FlowGoal, "no_such_state")

	f.handle(t, callbackUpdate(1, "income_2"))

	assert.Empty(t, f.session(1).ActiveFlow)
	assert.Equal(t, f.texts.T("en", "main_menu"), f.client.lastMessage(t).Text)
}
