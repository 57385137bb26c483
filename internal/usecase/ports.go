//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

package usecase

import (
	"context"
	"time"

	"x402-gateway/internal/domain/payment"
)

// NonceStore mints and tracks single-use challenge nonces. A missing record is
// treated as used and invalid.
type NonceStore interface {
	Generate(ctx context.Context) (string, error)
	IsUsed(ctx context.Context, nonce string) (bool, error)
	IsValid(ctx context.Context, nonce string) (bool, error)
	MarkUsed(ctx context.Context, nonce string) error
	// Consume marks the nonce used only if it exists, is unexpired and unused.
	// It reports whether this caller won the transition.
	Consume(ctx context.Context, nonce string) (bool, error)
	Cleanup(ctx context.Context) error
	Mode() string
}

type LedgerVerifier interface {
	VerifyTransaction(ctx context.Context, txID string) payment.VerificationResult
}

type ReceiptStore interface {
	Exists(ctx context.Context, txID string) (bool, error)
	Record(ctx context.Context, receipt payment.Receipt) error
}

type StatsSnapshot struct {
	Requests   uint64
	Challenges uint64
	Payments   uint64
	Rejections uint64
	Revenue    uint64 // microSTX
	StartedAt  time.Time
}

type StatsCollector interface {
	RecordRequest()
	RecordChallenge(model string)
	RecordAdmission(model string, amount uint64)
	RecordRejection(code payment.RejectCode)
	Snapshot() StatsSnapshot
}

type CompletionRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Completion struct {
	Model    string
	Response string
	Usage    Usage
}

type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}
