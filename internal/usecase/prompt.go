//go:generate mockgen -source=prompt.go -destination=../../tests/mock/usecase/mock_prompt.go -package=usecasemock

package usecase

import (
	"context"
	"log/slog"
	"time"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/pkg/clock"
	"x402-gateway/internal/pkg/errs"
)

const (
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
)

type PromptInput struct {
	Prompt      string
	MaxTokens   *int
	Temperature *float64
}

type PromptResult struct {
	Completion
	Latency   time.Duration
	Timestamp time.Time
}

type PromptUseCase interface {
	Complete(ctx context.Context, model string, in PromptInput) (*PromptResult, error)
}

type promptUseCaseImpl struct {
	pricing  payment.PricingTable
	provider CompletionProvider
	clock    clock.Clock
}

func NewPromptUseCase(pricing payment.PricingTable, provider CompletionProvider, clock clock.Clock) PromptUseCase {
	return &promptUseCaseImpl{
		pricing:  pricing,
		provider: provider,
		clock:    clock,
	}
}

func (p *promptUseCaseImpl) Complete(ctx context.Context, model string, in PromptInput) (*PromptResult, error) {
	entry, err := p.pricing.GetPrice(model)
	if err != nil {
		return nil, err
	}

	requested := 0
	if in.MaxTokens != nil {
		requested = *in.MaxTokens
	}
	temperature := DefaultTemperature
	if in.Temperature != nil {
		temperature = *in.Temperature
	}

	req := CompletionRequest{
		Model:       model,
		Prompt:      in.Prompt,
		MaxTokens:   entry.ClampTokens(requested, DefaultMaxTokens),
		Temperature: temperature,
	}

	slog.Info("Processing prompt", slog.String("model", model), slog.Int("max_tokens", req.MaxTokens))

	start := p.clock.Now()
	completion, err := p.provider.Complete(ctx, req)
	if err != nil {
		return nil, errs.Wrapf(err, "completion for %s failed", model)
	}

	return &PromptResult{
		Completion: *completion,
		Latency:    p.clock.Since(start),
		Timestamp:  p.clock.Now(),
	}, nil
}
