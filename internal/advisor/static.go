package advisor

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/reach-sg/reach-bot/internal/model"
)

// Static is a keyless Client for local development: fixed suggestions, canned
// advice and a keyword expense parser. Selected by the entry points when no
// API key is configured.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (s *Static) GoalSuggestions(ctx context.Context, sc SuggestionContext) []model.GoalSuggestion {
	return []model.GoalSuggestion{
		{Goal: "Emergency Savings", Description: "Create a safety net for unexpected expenses", Rationale: "Reduces stress and provides security"},
		{Goal: "Send Money Home", Description: "Regular remittance to support family", Rationale: "Strengthens family bonds and fulfills responsibilities"},
		{Goal: "Education Fund", Description: "Save for family education expenses", Rationale: "Invests in future opportunities"},
	}
}

func (s *Static) Advice(ctx context.Context, prompt, language string) string {
	return "Save a small fixed amount every payday, before spending on anything else. Even $10 a week builds a safety net over time."
}

var amountPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

func (s *Static) ParseExpense(ctx context.Context, text, language string) (model.Expense, error) {
	match := amountPattern.FindString(text)
	if match == "" {
		return model.Expense{}, ErrUnparseableExpense
	}
	amount, err := strconv.ParseFloat(match, 64)
	if err != nil || amount <= 0 {
		return model.Expense{}, ErrUnparseableExpense
	}

	expense := model.Expense{
		Amount:      amount,
		Currency:    "USD",
		Category:    "other",
		Description: text,
	}
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, "eur", "€"):
		expense.Currency = "EUR"
	case containsAny(lower, "sgd"):
		expense.Currency = "SGD"
	}
	switch {
	case containsAny(lower, "food", "eat", "meal", "lunch", "dinner", "grocery"):
		expense.Category = "food"
	case containsAny(lower, "bus", "train", "taxi", "transport", "mrt"):
		expense.Category = "transport"
	case containsAny(lower, "rent", "room", "housing"):
		expense.Category = "housing"
	case containsAny(lower, "remit", "send home", "transfer"):
		expense.Category = "remittance"
	case containsAny(lower, "doctor", "medicine", "clinic", "hospital"):
		expense.Category = "health"
	}
	return expense, nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
