// Package client is a Go SDK for the gateway's pay-per-call prompt API. It
// runs the full 402 flow: request, pay the challenge, wait for the ledger,
// retry with the proof.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultGatewayURL       = "http://localhost:3000"
	DefaultTimeout          = 30 * time.Second
	DefaultConfirmationWait = 60 * time.Second
)

var ErrPaymentUnconfirmed = errs.New("payment not confirmed before the wait budget ran out")

// Payer submits the STX transfer a challenge asks for and returns its txId.
type Payer interface {
	Pay(ctx context.Context, req payment.Requirements) (string, error)
}

// ConfirmationWaiter blocks until a transaction is confirmed or maxWait
// elapses. stacks.Verifier satisfies it.
type ConfirmationWaiter interface {
	WaitForConfirmation(ctx context.Context, txID string, maxWait time.Duration) bool
}

type Config struct {
	GatewayURL       string
	Timeout          time.Duration
	ConfirmationWait time.Duration
}

type PromptOptions struct {
	MaxTokens   *int
	Temperature *float64
}

type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

type PaymentReceipt struct {
	TxID      string `json:"txId"`
	Amount    uint64 `json:"amount"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

type Response struct {
	Model     string          `json:"model"`
	Response  string          `json:"response"`
	Usage     Usage           `json:"usage"`
	Payment   *PaymentReceipt `json:"payment,omitempty"`
	Latency   int64           `json:"latency"`
	Timestamp string          `json:"timestamp"`
}

type Model struct {
	BasePrice     uint64  `json:"basePrice"`
	USDEquivalent float64 `json:"usdEquivalent"`
	MaxTokens     int     `json:"maxTokens"`
	Description   string  `json:"description"`
}

// APIError is any non-2xx answer from the gateway. A 402 that could not be
// paid carries the challenge in Requirements.
type APIError struct {
	Status       int                   `json:"-"`
	Message      string                `json:"error"`
	Reason       string                `json:"reason,omitempty"`
	Detail       string                `json:"message,omitempty"`
	Requirements *payment.Requirements `json:"paymentRequirements,omitempty"`
}

func (e *APIError) Error() string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("gateway returned %d: %s: %s", e.Status, e.Message, e.Reason)
	case e.Detail != "":
		return fmt.Sprintf("gateway returned %d: %s: %s", e.Status, e.Message, e.Detail)
	case e.Status == http.StatusPaymentRequired:
		return "gateway returned 402: payment required"
	default:
		return fmt.Sprintf("gateway returned %d: %s", e.Status, e.Message)
	}
}

// IsRejected reports whether err is a 403 payment rejection.
func IsRejected(err error) bool {
	var apiErr *APIError
	return errs.As(err, &apiErr) && apiErr.Status == http.StatusForbidden
}

type promptBody struct {
	Prompt      string   `json:"prompt"`
	MaxTokens   *int     `json:"maxTokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

type Client struct {
	http    *resty.Client
	payer   Payer
	waiter  ConfirmationWaiter
	maxWait time.Duration
}

// New builds a client. With a nil payer a 402 is returned as *APIError; with
// a nil waiter the proof is sent right after payment.
func New(cfg Config, payer Payer, waiter ConfirmationWaiter) *Client {
	if cfg.GatewayURL == "" {
		cfg.GatewayURL = DefaultGatewayURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.ConfirmationWait <= 0 {
		cfg.ConfirmationWait = DefaultConfirmationWait
	}

	return &Client{
		http: resty.New().
			SetBaseURL(cfg.GatewayURL).
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json"),
		payer:   payer,
		waiter:  waiter,
		maxWait: cfg.ConfirmationWait,
	}
}

func (c *Client) Prompt(ctx context.Context, model, prompt string, opts PromptOptions) (*Response, error) {
	body := promptBody{Prompt: prompt, MaxTokens: opts.MaxTokens, Temperature: opts.Temperature}

	out, apiErr, err := c.post(ctx, model, body, "")
	if err != nil {
		return nil, err
	}
	if apiErr == nil {
		return out, nil
	}
	if apiErr.Status != http.StatusPaymentRequired || apiErr.Requirements == nil || c.payer == nil {
		return nil, apiErr
	}

	req := *apiErr.Requirements
	slog.Info("Payment required",
		slog.String("model", model),
		slog.String("amount", req.Amount),
		slog.String("asset", req.Asset),
		slog.String("network", req.Network))

	txID, err := c.payer.Pay(ctx, req)
	if err != nil {
		return nil, errs.Wrap(err, "payment failed")
	}
	slog.Info("Payment sent", slog.String("tx_id", txID))

	if c.waiter != nil && !c.waiter.WaitForConfirmation(ctx, txID, c.maxWait) {
		return nil, errs.Wrapf(ErrPaymentUnconfirmed, "tx %s", txID)
	}

	header, err := payment.Payload{PaymentRequirements: req, TxID: txID}.Encode()
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode payment proof")
	}

	out, apiErr, err = c.post(ctx, model, body, header)
	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		return nil, apiErr
	}
	return out, nil
}

func (c *Client) Models(ctx context.Context) (map[string]Model, error) {
	var out struct {
		Models map[string]Model `json:"models"`
	}
	apiErr := &APIError{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(apiErr).
		Get("/v1/prompt/models")
	if err != nil {
		return nil, errs.Wrap(err, "models request failed")
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return nil, apiErr
	}
	return out.Models, nil
}

func (c *Client) post(ctx context.Context, model string, body promptBody, proof string) (*Response, *APIError, error) {
	out := &Response{}
	apiErr := &APIError{}

	r := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(out).
		SetError(apiErr)
	if proof != "" {
		r.SetHeader(payment.HeaderName, proof)
	}

	resp, err := r.Post(payment.ResourcePath(model))
	if err != nil {
		return nil, nil, errs.Wrap(err, "prompt request failed")
	}
	if resp.IsError() {
		apiErr.Status = resp.StatusCode()
		return nil, apiErr, nil
	}
	return out, nil, nil
}
