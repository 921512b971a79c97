// Package service implements the operations the bot performs against the
// document store: language preference, profile, goals and expenses. Store
// failures are non-fatal here: reads fall back to the default document and
// writes are best-effort, both logged.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/reach-sg/reach-bot/internal/model"
	"github.com/reach-sg/reach-bot/internal/repository"
)

type Assistant struct {
	repo        repository.Repository
	defaultLang string
}

func NewAssistant(repo repository.Repository, defaultLang string) *Assistant {
	return &Assistant{
		repo:        repo,
		defaultLang: defaultLang,
	}
}

// UserDoc returns the user's document, falling back to the documented default
// structure when the user is unknown or the store is unreachable.
func (s *Assistant) UserDoc(ctx context.Context, userID int64) *model.UserDoc {
	doc, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Error("service: user read failed, using default document", "user", userID, "err", err)
		}
		return model.DefaultUserDoc(userID, s.defaultLang)
	}
	if doc.Language == "" {
		doc.Language = s.defaultLang
	}
	return doc
}

// Language returns the user's stored language preference or the default.
func (s *Assistant) Language(ctx context.Context, userID int64) string {
	return s.UserDoc(ctx, userID).Language
}

// SetLanguage stores the user's language preference.
func (s *Assistant) SetLanguage(ctx context.Context, userID int64, code string) {
	s.merge(ctx, userID, model.UserPatch{Language: &code})
}

// SaveProfile overwrites the user's profile wholesale.
func (s *Assistant) SaveProfile(ctx context.Context, userID int64, profile model.Profile) {
	s.merge(ctx, userID, model.UserPatch{Profile: &profile})
}

// AppendGoal validates and appends a goal to the user's goal list.
func (s *Assistant) AppendGoal(ctx context.Context, userID int64, goal model.Goal) (model.Goal, error) {
	if goal.Amount <= 0 {
		return goal, fmt.Errorf("goal amount must be positive, got %v", goal.Amount)
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}
	if !goal.Deadline.After(goal.CreatedAt) {
		return goal, fmt.Errorf("goal deadline %s is not after creation time", goal.Deadline.Format("2006-01-02"))
	}
	goal.GenerateID()

	goals := append(s.UserDoc(ctx, userID).Goals, goal)
	s.merge(ctx, userID, model.UserPatch{Goals: &goals})
	return goal, nil
}

// LatestGoal returns the most recently created goal, or false.
func (s *Assistant) LatestGoal(ctx context.Context, userID int64) (model.Goal, bool) {
	goals := s.UserDoc(ctx, userID).Goals
	if len(goals) == 0 {
		return model.Goal{}, false
	}
	return goals[len(goals)-1], true
}

// AppendExpense appends an expense to the user's expense list.
func (s *Assistant) AppendExpense(ctx context.Context, userID int64, expense model.Expense) model.Expense {
	if expense.Timestamp.IsZero() {
		expense.Timestamp = time.Now()
	}
	expense.GenerateID()

	expenses := append(s.UserDoc(ctx, userID).Expenses, expense)
	s.merge(ctx, userID, model.UserPatch{Expenses: &expenses})
	return expense
}

// ExpenseSummary aggregates the user's expenses for display.
type ExpenseSummary struct {
	Count      int
	Total      float64
	Currency   string
	ByCategory map[string]float64
	Recent     []model.Expense
}

// Summarize builds the expense view: total, per-category breakdown and the
// last five entries, newest first.
func (s *Assistant) Summarize(ctx context.Context, userID int64) ExpenseSummary {
	expenses := s.UserDoc(ctx, userID).Expenses

	summary := ExpenseSummary{
		Count:      len(expenses),
		ByCategory: make(map[string]float64),
	}
	for _, e := range expenses {
		summary.Total += e.Amount
		category := e.Category
		if category == "" {
			category = "other"
		}
		summary.ByCategory[category] += e.Amount
	}
	if len(expenses) > 0 {
		summary.Currency = expenses[0].Currency
	}

	for i := len(expenses) - 1; i >= 0 && len(summary.Recent) < 5; i-- {
		summary.Recent = append(summary.Recent, expenses[i])
	}
	return summary
}

// merge applies a best-effort write: failures are logged, not retried.
func (s *Assistant) merge(ctx context.Context, userID int64, patch model.UserPatch) {
	if err := s.repo.MergeUser(ctx, userID, patch); err != nil {
		slog.Error("service: user write failed", "user", userID, "err", err)
	}
}
