package response

import (
	"time"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/usecase"
)

type UsageResponse struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

type PaymentResponse struct {
	TxID      string `json:"txId"`
	Amount    uint64 `json:"amount"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

type PromptResponse struct {
	Model     string           `json:"model"`
	Response  string           `json:"response"`
	Usage     UsageResponse    `json:"usage"`
	Latency   int64            `json:"latency"` // ms
	Timestamp string           `json:"timestamp"`
	Payment   *PaymentResponse `json:"payment,omitempty"`
}

type PricingEntryResponse struct {
	BasePrice     uint64  `json:"basePrice"`
	USDEquivalent float64 `json:"usdEquivalent"`
	MaxTokens     int     `json:"maxTokens"`
	Description   string  `json:"description"`
}

type ModelsResponse struct {
	Models map[string]PricingEntryResponse `json:"models"`
}

func FromPromptResult(res *usecase.PromptResult, info *payment.Info) *PromptResponse {
	out := &PromptResponse{
		Model:    res.Model,
		Response: res.Response,
		Usage: UsageResponse{
			PromptTokens:     res.Usage.PromptTokens,
			CompletionTokens: res.Usage.CompletionTokens,
			TotalTokens:      res.Usage.TotalTokens,
		},
		Latency:   res.Latency.Milliseconds(),
		Timestamp: res.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if info != nil {
		out.Payment = &PaymentResponse{
			TxID:      info.TxID,
			Amount:    info.Amount,
			Sender:    info.Sender,
			Timestamp: info.Timestamp,
		}
	}
	return out
}

func FromPricingTable(table payment.PricingTable) *ModelsResponse {
	models := make(map[string]PricingEntryResponse, len(table))
	for key, e := range table {
		models[key] = PricingEntryResponse{
			BasePrice:     e.BasePrice,
			USDEquivalent: e.USDEquivalent.InexactFloat64(),
			MaxTokens:     e.MaxTokens,
			Description:   e.Description,
		}
	}
	return &ModelsResponse{Models: models}
}
