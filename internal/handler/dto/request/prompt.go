package request

import "x402-gateway/internal/usecase"

type PromptRequest struct {
	Prompt      string   `json:"prompt"`
	MaxTokens   *int     `json:"maxTokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

func (r PromptRequest) ToInput() usecase.PromptInput {
	return usecase.PromptInput{
		Prompt:      r.Prompt,
		MaxTokens:   r.MaxTokens,
		Temperature: r.Temperature,
	}
}
