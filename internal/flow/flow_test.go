package flow

import (
	"context"

	"github.com/reach-sg/reach-bot/internal/advisor"
	"github.com/reach-sg/reach-bot/internal/locale"
	"github.com/reach-sg/reach-bot/internal/model"
	"github.com/reach-sg/reach-bot/internal/repository"
	"github.com/reach-sg/reach-bot/internal/service"
	"github.com/reach-sg/reach-bot/internal/session"
)

// memRepo is an in-memory Repository for exercising flows end to end.
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

// fakeAdvisor returns whatever it was configured with.
type fakeAdvisor struct {
	suggestions []model.GoalSuggestion
}

func (f *fakeAdvisor) GoalSuggestions(ctx context.Context, sc advisor.SuggestionContext) []model.GoalSuggestion {
	return f.suggestions
}

func (f *fakeAdvisor) Advice(ctx context.Context, prompt, language string) string {
	return advisor.FallbackAdvice
}

func (f *fakeAdvisor) ParseExpense(ctx context.Context, text, language string) (model.Expense, error) {
	return model.Expense{}, advisor.ErrUnparseableExpense
}

type fixture struct {
	repo  *memRepo
	svc   *service.Assistant
	texts *locale.Bundle
	sess  *session.Session
}

func newFixture() *fixture {
	repo := newMemRepo()
	return &fixture{
		repo:  repo,
		svc:   service.NewAssistant(repo, "en"),
		texts: locale.NewBundle("en", []string{"en"}),
		sess:  &session.Session{UserID: 7, ChatID: 7, Language: "en"},
	}
}

func press(tag string) Event {
	return Event{Kind: EventCallback, Tag: tag}
}

func typed(text string) Event {
	return Event{Kind: EventText, Text: text}
}

// buttonTags flattens a keyboard into its tags, in order.
func buttonTags(rows [][]Button) []string {
	var tags []string
	for _, row := range rows {
		for _, btn := range row {
			tags = append(tags, btn.Tag)
		}
	}
	return tags
}
