package provider

import (
	"context"
	"net/http"
	"time"

	"x402-gateway/internal/pkg/errs"
	"x402-gateway/internal/usecase"

	"github.com/go-resty/resty/v2"
)

const anthropicVersion = "2023-06-01"

type anthropicRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type Anthropic struct {
	client *resty.Client
	model  string
}

func NewAnthropic(baseURL, apiKey, model string, timeout time.Duration) *Anthropic {
	return &Anthropic{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("x-api-key", apiKey).
			SetHeader("anthropic-version", anthropicVersion).
			SetHeader("Content-Type", "application/json"),
		model: model,
	}
}

func (a *Anthropic) Complete(ctx context.Context, req usecase.CompletionRequest) (*usecase.Completion, error) {
	var out anthropicResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(anthropicRequest{
			Model:     a.model,
			MaxTokens: req.MaxTokens,
			Messages:  []chatMessage{{Role: "user", Content: req.Prompt}},
		}).
		SetResult(&out).
		Post("/v1/messages")
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "anthropic request failed"), errs.ErrProviderFailure)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errs.Mark(errs.Newf("anthropic returned status %d: %s", resp.StatusCode(), resp.String()), errs.ErrProviderFailure)
	}

	text := ""
	if len(out.Content) > 0 && out.Content[0].Type == "text" {
		text = out.Content[0].Text
	}

	return &usecase.Completion{
		Model:    req.Model,
		Response: text,
		Usage: usecase.Usage{
			PromptTokens:     out.Usage.InputTokens,
			CompletionTokens: out.Usage.OutputTokens,
			TotalTokens:      out.Usage.InputTokens + out.Usage.OutputTokens,
		},
	}, nil
}
