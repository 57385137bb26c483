//go:build unit

package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/pkg/errs"
	"x402-gateway/pkg/client"
	"x402-gateway/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paidTx = "0xpaid"

// fakeGateway challenges unpaid calls and admits proofs carrying paidTx.
type fakeGateway struct {
	challenges atomic.Int32
	proofs     atomic.Int32
	lastBody   map[string]any
}

func (g *fakeGateway) server(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/v1/prompt/:model", func(c *gin.Context) {
		var body map[string]any
		_ = c.ShouldBindJSON(&body)
		g.lastBody = body

		header := c.GetHeader(payment.HeaderName)
		if header == "" {
			g.challenges.Add(1)
			req := builder.NewPaymentBuilder().With(func(b *builder.PaymentBuilder) {
				b.Model = c.Param("model")
				b.Nonce = "nonce-1"
			}).BuildRequirements()
			c.JSON(http.StatusPaymentRequired, gin.H{"paymentRequirements": req})
			return
		}

		g.proofs.Add(1)
		p, err := payment.DecodePayload(header)
		if err != nil || p.TxID != paidTx || p.PaymentRequirements.Nonce != "nonce-1" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Payment verification failed", "reason": "Transaction not found or pending"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"model":     c.Param("model"),
			"response":  "paid answer",
			"usage":     gin.H{"promptTokens": 1, "completionTokens": 2, "totalTokens": 3},
			"payment":   gin.H{"txId": p.TxID, "amount": 100000, "sender": builder.DefaultSender, "timestamp": 1717243200},
			"latency":   12,
			"timestamp": "2024-06-01T12:00:00Z",
		})
	})
	r.GET("/v1/prompt/models", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"models": gin.H{
			"gpt4": gin.H{"basePrice": 100000, "usdEquivalent": 0.2, "maxTokens": 2000, "description": "GPT-4 Turbo - Most capable model"},
		}})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type payerFunc func(ctx context.Context, req payment.Requirements) (string, error)

func (f payerFunc) Pay(ctx context.Context, req payment.Requirements) (string, error) {
	return f(ctx, req)
}

type waiterStub struct {
	confirmed bool
	waitedFor string
	maxWait   time.Duration
}

func (w *waiterStub) WaitForConfirmation(_ context.Context, txID string, maxWait time.Duration) bool {
	w.waitedFor = txID
	w.maxWait = maxWait
	return w.confirmed
}

func TestClient_Prompt(t *testing.T) {
	ctx := context.Background()

	t.Run("pays the challenge and retries with proof", func(t *testing.T) {
		gw := &fakeGateway{}
		srv := gw.server(t)

		var paid payment.Requirements
		payer := payerFunc(func(_ context.Context, req payment.Requirements) (string, error) {
			paid = req
			return paidTx, nil
		})
		waiter := &waiterStub{confirmed: true}
		c := client.New(client.Config{GatewayURL: srv.URL, ConfirmationWait: 30 * time.Second}, payer, waiter)

		maxTokens := 256
		out, err := c.Prompt(ctx, "gpt4", "hello", client.PromptOptions{MaxTokens: &maxTokens})
		require.NoError(t, err)

		assert.Equal(t, "paid answer", out.Response)
		require.NotNil(t, out.Payment)
		assert.Equal(t, paidTx, out.Payment.TxID)
		assert.Equal(t, "100000", paid.Amount)
		assert.Equal(t, "/v1/prompt/gpt4", paid.Resource)
		assert.Equal(t, paidTx, waiter.waitedFor)
		assert.Equal(t, 30*time.Second, waiter.maxWait)
		assert.Equal(t, int32(1), gw.challenges.Load())
		assert.Equal(t, int32(1), gw.proofs.Load())
		assert.Equal(t, map[string]any{"prompt": "hello", "maxTokens": float64(256)}, gw.lastBody)
	})

	t.Run("without a payer the challenge is returned", func(t *testing.T) {
		srv := (&fakeGateway{}).server(t)
		c := client.New(client.Config{GatewayURL: srv.URL}, nil, nil)

		_, err := c.Prompt(ctx, "claude", "hello", client.PromptOptions{})

		var apiErr *client.APIError
		require.True(t, errs.As(err, &apiErr), "got %v", err)
		assert.Equal(t, http.StatusPaymentRequired, apiErr.Status)
		require.NotNil(t, apiErr.Requirements)
		assert.Equal(t, "/v1/prompt/claude", apiErr.Requirements.Resource)
	})

	t.Run("unconfirmed payment is not submitted", func(t *testing.T) {
		gw := &fakeGateway{}
		srv := gw.server(t)
		payer := payerFunc(func(context.Context, payment.Requirements) (string, error) { return paidTx, nil })
		c := client.New(client.Config{GatewayURL: srv.URL}, payer, &waiterStub{confirmed: false})

		_, err := c.Prompt(ctx, "gpt4", "hello", client.PromptOptions{})

		assert.True(t, errs.Is(err, client.ErrPaymentUnconfirmed))
		assert.Equal(t, int32(0), gw.proofs.Load())
	})

	t.Run("payer failure", func(t *testing.T) {
		srv := (&fakeGateway{}).server(t)
		payer := payerFunc(func(context.Context, payment.Requirements) (string, error) {
			return "", errs.New("Payment cancelled by user")
		})
		c := client.New(client.Config{GatewayURL: srv.URL}, payer, nil)

		_, err := c.Prompt(ctx, "gpt4", "hello", client.PromptOptions{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Payment cancelled by user")
	})

	t.Run("rejected proof surfaces the reason", func(t *testing.T) {
		srv := (&fakeGateway{}).server(t)
		payer := payerFunc(func(context.Context, payment.Requirements) (string, error) { return "0xother", nil })
		c := client.New(client.Config{GatewayURL: srv.URL}, payer, nil)

		_, err := c.Prompt(ctx, "gpt4", "hello", client.PromptOptions{})

		assert.True(t, client.IsRejected(err))
		assert.Contains(t, err.Error(), "Transaction not found or pending")
	})
}

func TestClient_Models(t *testing.T) {
	srv := (&fakeGateway{}).server(t)
	c := client.New(client.Config{GatewayURL: srv.URL}, nil, nil)

	models, err := c.Models(context.Background())
	require.NoError(t, err)
	assert.Equal(t, client.Model{
		BasePrice:     100000,
		USDEquivalent: 0.2,
		MaxTokens:     2000,
		Description:   "GPT-4 Turbo - Most capable model",
	}, models["gpt4"])
}
