// Webhook entry point for serverless deployments behind an API gateway.
package main

import (
	"context"

	"github.com/reach-sg/reach-bot/internal/advisor"
	"github.com/reach-sg/reach-bot/internal/bot"
	"github.com/reach-sg/reach-bot/internal/config"
	"github.com/reach-sg/reach-bot/internal/locale"
	"github.com/reach-sg/reach-bot/internal/repository"
	"github.com/reach-sg/reach-bot/internal/service"
)

// Request is the API gateway invocation payload.
type Request struct {
	Body string `json:"body"`
}

// Response is the API gateway reply.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers,omitempty"`
}

func Handler(ctx context.Context, request Request) (*Response, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return errorResponse(err)
	}

	repo, err := repository.NewSupabaseRepository(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		return errorResponse(err)
	}

	svc := service.NewAssistant(repo, cfg.DefaultLanguage)
	texts := locale.NewBundle(cfg.DefaultLanguage, cfg.SupportedLanguages)

	var adv advisor.Client
	if cfg.OpenAIKey != "" {
		adv = advisor.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAITimeout)
	} else {
		adv = advisor.NewStatic()
	}

	b, err := bot.New(cfg, svc, adv, texts)
	if err != nil {
		return errorResponse(err)
	}

	if err := b.HandleWebhook(ctx, []byte(request.Body)); err != nil {
		return errorResponse(err)
	}

	return &Response{
		StatusCode: 200,
		Body:       "",
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func errorResponse(err error) (*Response, error) {
	return &Response{
		StatusCode: 500,
		Body:       err.Error(),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func main() {
	// Entry point for local smoke testing only; production invokes Handler.
}
