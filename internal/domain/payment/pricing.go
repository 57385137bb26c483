package payment

import (
	"sort"

	"x402-gateway/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ResourcePrefix is the protected route prefix; challenges point at ResourcePrefix/<model>.
const ResourcePrefix = "/v1/prompt"

type PricingEntry struct {
	BasePrice     uint64          `json:"basePrice"` // microSTX
	USDEquivalent decimal.Decimal `json:"usdEquivalent"`
	MaxTokens     int             `json:"maxTokens"`
	Description   string          `json:"description"`
}

type PricingTable map[string]PricingEntry

func DefaultPricing() PricingTable {
	return PricingTable{
		"gpt4": {
			BasePrice:     100000,
			USDEquivalent: decimal.RequireFromString("0.20"),
			MaxTokens:     2000,
			Description:   "GPT-4 Turbo - Most capable model",
		},
		"claude": {
			BasePrice:     120000,
			USDEquivalent: decimal.RequireFromString("0.24"),
			MaxTokens:     2000,
			Description:   "Claude 3 Opus - Advanced reasoning",
		},
		"gpt-3.5": {
			BasePrice:     20000,
			USDEquivalent: decimal.RequireFromString("0.04"),
			MaxTokens:     1500,
			Description:   "GPT-3.5 Turbo - Fast and efficient",
		},
		"gemini": {
			BasePrice:     50000,
			USDEquivalent: decimal.RequireFromString("0.10"),
			MaxTokens:     2000,
			Description:   "Gemini Pro - Google AI",
		},
	}
}

func (t PricingTable) GetPrice(model string) (PricingEntry, error) {
	entry, ok := t[model]
	if !ok {
		return PricingEntry{}, errs.Mark(errs.Newf("unknown model: %s", model), errs.ErrUnknownModel)
	}
	return entry, nil
}

// Models returns the keys in a stable order.
func (t PricingTable) Models() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ClampTokens caps a requested token count at the model ceiling. Zero or
// negative requests fall back to def, which is itself capped.
func (e PricingEntry) ClampTokens(requested, def int) int {
	n := requested
	if n <= 0 {
		n = def
	}
	if e.MaxTokens > 0 && n > e.MaxTokens {
		return e.MaxTokens
	}
	return n
}

func ResourcePath(model string) string {
	return ResourcePrefix + "/" + model
}
