package provider

import (
	"context"
	"net/http"
	"time"

	"x402-gateway/internal/pkg/errs"
	"x402-gateway/internal/usecase"

	"github.com/go-resty/resty/v2"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// OpenAI calls the chat completions endpoint for a fixed upstream model.
type OpenAI struct {
	client *resty.Client
	model  string
}

func NewOpenAI(baseURL, apiKey, model string, timeout time.Duration) *OpenAI {
	return &OpenAI{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetAuthToken(apiKey).
			SetHeader("Content-Type", "application/json"),
		model: model,
	}
}

func (o *OpenAI) Complete(ctx context.Context, req usecase.CompletionRequest) (*usecase.Completion, error) {
	var out openAIResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(openAIRequest{
			Model:       o.model,
			Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		}).
		SetResult(&out).
		Post("/v1/chat/completions")
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "openai request failed"), errs.ErrProviderFailure)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errs.Mark(errs.Newf("openai returned status %d: %s", resp.StatusCode(), resp.String()), errs.ErrProviderFailure)
	}

	content := ""
	if len(out.Choices) > 0 {
		content = out.Choices[0].Message.Content
	}

	return &usecase.Completion{
		Model:    req.Model,
		Response: content,
		Usage: usecase.Usage{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		},
	}, nil
}
