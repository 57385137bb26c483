package stacks

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

const (
	txStatusSuccess   = "success"
	txTypeTransfer    = "token_transfer"
	defaultTimeout    = 10 * time.Second
	defaultPoll       = 5 * time.Second
	breakerName       = "stacks-api"
	reasonFetchFailed = "Failed to fetch transaction"
	reasonNotTransfer = "Not a token transfer transaction"
)

var errNotFound = errs.New("transaction not found")

type Config struct {
	BaseURL      string
	Timeout      time.Duration
	PollInterval time.Duration
	// OnStateChange observes breaker transitions, e.g. for a gauge.
	OnStateChange func(name string, from, to gobreaker.State)
}

type tokenTransfer struct {
	RecipientAddress string `json:"recipient_address"`
	Amount           string `json:"amount"`
	Memo             string `json:"memo"`
}

type txResponse struct {
	TxID          string         `json:"tx_id"`
	TxStatus      string         `json:"tx_status"`
	TxType        string         `json:"tx_type"`
	SenderAddress string         `json:"sender_address"`
	BlockHeight   uint64         `json:"block_height"`
	BurnBlockTime int64          `json:"burn_block_time"`
	TokenTransfer *tokenTransfer `json:"token_transfer"`
}

// Verifier looks transactions up on a Stacks API node (Hiro /extended/v1/tx).
type Verifier struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
	poll    time.Duration
}

func NewVerifier(cfg Config) *Verifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = defaultPoll
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(0). // one lookup per request; the caller owns retries
		SetHeader("Accept", "application/json")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(name, from, to)
			}
		},
	})

	return &Verifier{
		client:  client,
		breaker: breaker,
		timeout: timeout,
		poll:    poll,
	}
}

func (v *Verifier) VerifyTransaction(ctx context.Context, txID string) payment.VerificationResult {
	slog.Info("Verifying transaction", slog.String("tx_id", txID))

	tx, err := v.fetch(ctx, txID)
	if err != nil {
		slog.Error("Transaction verification error", slog.String("tx_id", txID), slog.String("error", err.Error()))
		return payment.VerificationResult{Success: false, Error: reasonFetchFailed}
	}

	if tx.TxStatus != txStatusSuccess {
		return payment.VerificationResult{Success: false, Error: "Transaction status: " + tx.TxStatus}
	}

	if tx.TxType != txTypeTransfer || tx.TokenTransfer == nil {
		return payment.VerificationResult{Success: false, Error: reasonNotTransfer}
	}

	amount, err := strconv.ParseUint(tx.TokenTransfer.Amount, 10, 64)
	if err != nil {
		slog.Error("Unparseable transfer amount", slog.String("tx_id", txID), slog.String("amount", tx.TokenTransfer.Amount))
		return payment.VerificationResult{Success: false, Error: reasonFetchFailed}
	}

	slog.Info("Transaction verified",
		slog.String("tx_id", txID),
		slog.Uint64("amount", amount),
		slog.String("sender", tx.SenderAddress))

	return payment.VerificationResult{
		Success:     true,
		Amount:      amount,
		Recipient:   tx.TokenTransfer.RecipientAddress,
		Sender:      tx.SenderAddress,
		Timestamp:   tx.BurnBlockTime,
		BlockHeight: tx.BlockHeight,
	}
}

// WaitForConfirmation polls until the transaction verifies or maxWait runs out.
// Used by paying clients; the gate itself never waits.
func (v *Verifier) WaitForConfirmation(ctx context.Context, txID string, maxWait time.Duration) bool {
	deadline := time.Now().Add(maxWait)
	ticker := time.NewTicker(v.poll)
	defer ticker.Stop()

	for {
		if v.VerifyTransaction(ctx, txID).Success {
			return true
		}
		if !time.Now().Add(v.poll).Before(deadline) {
			return false
		}
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
}

// State reports the breaker state name.
func (v *Verifier) State() string {
	return v.breaker.State().String()
}

func (v *Verifier) fetch(ctx context.Context, txID string) (*txResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	// Only transport failures and 5xx count against the breaker.
	var notFound bool
	out, err := v.breaker.Execute(func() (interface{}, error) {
		var tx txResponse
		resp, err := v.client.R().
			SetContext(ctx).
			SetPathParam("txId", txID).
			SetResult(&tx).
			Get("/extended/v1/tx/{txId}")
		if err != nil {
			return nil, errs.Wrap(err, "stacks api request failed")
		}

		switch {
		case resp.StatusCode() == http.StatusOK:
			return &tx, nil
		case resp.StatusCode() >= http.StatusInternalServerError:
			return nil, errs.Newf("stacks api returned status %d", resp.StatusCode())
		default:
			notFound = true
			return nil, nil
		}
	})
	if err != nil {
		return nil, err
	}
	if notFound {
		return nil, errNotFound
	}
	return out.(*txResponse), nil
}
