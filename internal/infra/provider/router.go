package provider

import (
	"context"
	"log/slog"

	"x402-gateway/internal/pkg/config"
	"x402-gateway/internal/pkg/errs"
	"x402-gateway/internal/usecase"
)

const (
	ModelGPT4Turbo   = "gpt-4-turbo-preview"
	ModelGPT35Turbo  = "gpt-3.5-turbo"
	ModelClaude3Opus = "claude-3-opus-20240229"
)

type route struct {
	provider usecase.CompletionProvider
	missing  string
}

// Router dispatches a gateway model key to the upstream that serves it. Keys
// whose upstream has no credentials resolve to a not-configured error.
type Router struct {
	routes map[string]route
}

func NewRouter(cfg config.ProviderConfig) *Router {
	var openai, claudeOpus, gpt35 usecase.CompletionProvider

	if cfg.OpenAIAPIKey != "" {
		openai = NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, ModelGPT4Turbo, cfg.Timeout)
		gpt35 = NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, ModelGPT35Turbo, cfg.Timeout)
		slog.Info("OpenAI initialized")
	}
	if cfg.AnthropicAPIKey != "" {
		claudeOpus = NewAnthropic(cfg.AnthropicBaseURL, cfg.AnthropicAPIKey, ModelClaude3Opus, cfg.Timeout)
		slog.Info("Anthropic initialized")
	}

	return &Router{
		routes: map[string]route{
			"gpt4":    {provider: openai, missing: "OpenAI API key not configured"},
			"gpt-3.5": {provider: gpt35, missing: "OpenAI API key not configured"},
			"claude":  {provider: claudeOpus, missing: "Anthropic API key not configured"},
		},
	}
}

func (r *Router) Complete(ctx context.Context, req usecase.CompletionRequest) (*usecase.Completion, error) {
	rt, ok := r.routes[req.Model]
	if !ok {
		return nil, errs.Mark(errs.Newf("Unsupported model: %s", req.Model), errs.ErrUnsupportedModel)
	}
	if rt.provider == nil {
		return nil, errs.Mark(errs.New(rt.missing), errs.ErrProviderNotConfigured)
	}

	out, err := rt.provider.Complete(ctx, req)
	if err != nil {
		slog.Error("AI routing failed", slog.String("model", req.Model), slog.String("error", err.Error()))
		return nil, err
	}
	return out, nil
}
