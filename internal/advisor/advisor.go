// Package advisor wraps the language-model collaborator. Every operation has
// the same failure contract: transport errors, timeouts and malformed output
// are logged and converted to a documented fallback value, never propagated
// to the dialogue layer.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/reach-sg/reach-bot/internal/model"
)

// ErrUnparseableExpense is returned by ParseExpense when the text could not
// be understood. The caller renders a "could not understand" message and must
// not create an expense record.
var ErrUnparseableExpense = errors.New("could not parse expense text")

// FallbackAdvice is the fixed apology returned when advice generation fails.
const FallbackAdvice = "Sorry, I couldn't generate advice right now. Please try again later."

// SuggestionContext carries the assessment answers used to personalize goal
// suggestions.
type SuggestionContext struct {
	Income      string
	FamilyNeeds string
	Situation   string
	Language    string
}

// Client is the adapter interface the dialogue layer depends on.
type Client interface {
	// GoalSuggestions returns 3-4 personalized goals, or nil on any failure.
	// Callers interpret nil/empty as "use the fixed category menu".
	GoalSuggestions(ctx context.Context, sc SuggestionContext) []model.GoalSuggestion
	// Advice returns free-text advice, or FallbackAdvice on any failure.
	Advice(ctx context.Context, prompt, language string) string
	// ParseExpense extracts an expense record from free text, or returns
	// ErrUnparseableExpense.
	ParseExpense(ctx context.Context, text, language string) (model.Expense, error)
}

// OpenAI is the production Client backed by the chat-completions API.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAI(apiKey, model string, timeout time.Duration) *OpenAI {
	return &OpenAI{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

func (a *OpenAI) GoalSuggestions(ctx context.Context, sc SuggestionContext) []model.GoalSuggestion {
	user := fmt.Sprintf("Income: %s\nFamily needs: %s\nCurrent situation: %s", sc.Income, sc.FamilyNeeds, sc.Situation)
	raw, err := a.completeJSON(ctx, fmt.Sprintf(suggestionsSystemPrompt, sc.Language), user)
	if err != nil {
		slog.Error("advisor: goal suggestions failed, falling back to fixed menu", "err", err)
		return nil
	}

	suggestions, err := decodeSuggestions(raw)
	if err != nil {
		slog.Error("advisor: malformed goal suggestions, falling back to fixed menu", "err", err, "raw", raw)
		return nil
	}
	return suggestions
}

func (a *OpenAI) Advice(ctx context.Context, prompt, language string) string {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(adviceSystemPrompt, language)},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		slog.Error("advisor: advice generation failed", "err", err)
		return FallbackAdvice
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		slog.Error("advisor: advice response empty")
		return FallbackAdvice
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func (a *OpenAI) ParseExpense(ctx context.Context, text, language string) (model.Expense, error) {
	raw, err := a.completeJSON(ctx, fmt.Sprintf(expenseSystemPrompt, language), text)
	if err != nil {
		slog.Error("advisor: expense parse call failed", "err", err)
		return model.Expense{}, ErrUnparseableExpense
	}

	var parsed struct {
		Amount      float64 `json:"amount"`
		Currency    string  `json:"currency"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		Error       string  `json:"error"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		slog.Error("advisor: malformed expense JSON", "err", err, "raw", raw)
		return model.Expense{}, ErrUnparseableExpense
	}
	if parsed.Error != "" || parsed.Amount <= 0 {
		return model.Expense{}, ErrUnparseableExpense
	}

	expense := model.Expense{
		Amount:      parsed.Amount,
		Currency:    parsed.Currency,
		Category:    parsed.Category,
		Description: parsed.Description,
	}
	if expense.Currency == "" {
		expense.Currency = "USD"
	}
	if expense.Category == "" {
		expense.Category = "other"
	}
	return expense, nil
}

// completeJSON runs a single JSON-mode completion under the adapter timeout.
func (a *OpenAI) completeJSON(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("response has no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// decodeSuggestions accepts either a bare JSON array or {"goals": [...]},
// which models produce interchangeably in JSON mode.
func decodeSuggestions(raw string) ([]model.GoalSuggestion, error) {
	var wrapped struct {
		Goals []model.GoalSuggestion `json:"goals"`
	}
	var suggestions []model.GoalSuggestion

	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil && len(wrapped.Goals) > 0 {
		suggestions = wrapped.Goals
	} else if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil, fmt.Errorf("neither object nor array form: %w", err)
	}

	valid := suggestions[:0]
	for _, s := range suggestions {
		if strings.TrimSpace(s.Goal) != "" {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no usable suggestions in response")
	}
	if len(valid) > 4 {
		valid = valid[:4]
	}
	return valid, nil
}
