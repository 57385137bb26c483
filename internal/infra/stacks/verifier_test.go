//go:build unit

package stacks_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/infra/stacks"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	recipient = "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"
	sender    = "ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG"
)

// fakeNode serves /extended/v1/tx/:txId from a fixed table.
func fakeNode(t *testing.T, txs map[string]gin.H, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/extended/v1/tx/:txId", func(c *gin.Context) {
		if hits != nil {
			hits.Add(1)
		}
		id := c.Param("txId")
		if id == "0xboom" {
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream"})
			return
		}
		tx, ok := txs[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "could not find transaction by ID"})
			return
		}
		c.JSON(http.StatusOK, tx)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func transfer(status, txType, amount string) gin.H {
	return gin.H{
		"tx_id":           "0x01",
		"tx_status":       status,
		"tx_type":         txType,
		"sender_address":  sender,
		"block_height":    150123,
		"burn_block_time": 1717243200,
		"token_transfer": gin.H{
			"recipient_address": recipient,
			"amount":            amount,
			"memo":              "0x",
		},
	}
}

func TestVerifier_VerifyTransaction(t *testing.T) {
	srv := fakeNode(t, map[string]gin.H{
		"0xok":       transfer("success", "token_transfer", "100000"),
		"0xpending":  transfer("pending", "token_transfer", "100000"),
		"0xaborted":  transfer("abort_by_response", "token_transfer", "100000"),
		"0xcontract": transfer("success", "contract_call", "0"),
		"0xbadamt":   transfer("success", "token_transfer", "12.5"),
	}, nil)
	v := stacks.NewVerifier(stacks.Config{BaseURL: srv.URL, Timeout: time.Second})

	testCases := []struct {
		name     string
		txID     string
		expected payment.VerificationResult
	}{
		{
			name: "success: confirmed STX transfer",
			txID: "0xok",
			expected: payment.VerificationResult{
				Success:     true,
				Amount:      100000,
				Recipient:   recipient,
				Sender:      sender,
				Timestamp:   1717243200,
				BlockHeight: 150123,
			},
		},
		{
			name:     "error: pending status is reported verbatim",
			txID:     "0xpending",
			expected: payment.VerificationResult{Error: "Transaction status: pending"},
		},
		{
			name:     "error: aborted status is reported verbatim",
			txID:     "0xaborted",
			expected: payment.VerificationResult{Error: "Transaction status: abort_by_response"},
		},
		{
			name:     "error: not a transfer",
			txID:     "0xcontract",
			expected: payment.VerificationResult{Error: "Not a token transfer transaction"},
		},
		{
			name:     "error: unknown transaction",
			txID:     "0xmissing",
			expected: payment.VerificationResult{Error: "Failed to fetch transaction"},
		},
		{
			name:     "error: node failure",
			txID:     "0xboom",
			expected: payment.VerificationResult{Error: "Failed to fetch transaction"},
		},
		{
			name:     "error: non-integer amount",
			txID:     "0xbadamt",
			expected: payment.VerificationResult{Error: "Failed to fetch transaction"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := v.VerifyTransaction(context.Background(), tc.txID)
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("VerificationResult mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVerifier_Timeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/extended/v1/tx/:txId", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
		case <-time.After(2 * time.Second):
		}
		c.JSON(http.StatusOK, transfer("success", "token_transfer", "100000"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	v := stacks.NewVerifier(stacks.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	start := time.Now()
	result := v.VerifyTransaction(context.Background(), "0xslow")
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to fetch transaction", result.Error)
	assert.Less(t, time.Since(start), time.Second)
}

func TestVerifier_BreakerOpensOnUpstreamFailures(t *testing.T) {
	var hits atomic.Int32
	srv := fakeNode(t, map[string]gin.H{}, &hits)

	var opened atomic.Bool
	v := stacks.NewVerifier(stacks.Config{
		BaseURL: srv.URL,
		Timeout: time.Second,
		OnStateChange: func(_ string, _, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				opened.Store(true)
			}
		},
	})

	for range 5 {
		v.VerifyTransaction(context.Background(), "0xboom")
	}
	require.True(t, opened.Load())
	assert.Equal(t, "open", v.State())

	before := hits.Load()
	result := v.VerifyTransaction(context.Background(), "0xboom")
	assert.Equal(t, "Failed to fetch transaction", result.Error)
	assert.Equal(t, before, hits.Load(), "open breaker short-circuits the lookup")
}

func TestVerifier_NotFoundDoesNotTripBreaker(t *testing.T) {
	srv := fakeNode(t, map[string]gin.H{}, nil)
	v := stacks.NewVerifier(stacks.Config{BaseURL: srv.URL, Timeout: time.Second})

	for range 10 {
		v.VerifyTransaction(context.Background(), "0xmissing")
	}
	assert.Equal(t, "closed", v.State())
}

func TestVerifier_WaitForConfirmation(t *testing.T) {
	var hits atomic.Int32
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/extended/v1/tx/:txId", func(c *gin.Context) {
		status := "pending"
		if hits.Add(1) >= 3 {
			status = "success"
		}
		c.JSON(http.StatusOK, transfer(status, "token_transfer", "100000"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	t.Run("success: confirmed within budget", func(t *testing.T) {
		hits.Store(0)
		v := stacks.NewVerifier(stacks.Config{BaseURL: srv.URL, PollInterval: 10 * time.Millisecond})
		assert.True(t, v.WaitForConfirmation(context.Background(), "0xtx", time.Second))
		assert.Equal(t, int32(3), hits.Load())
	})

	t.Run("error: budget exhausted", func(t *testing.T) {
		hits.Store(-1000)
		v := stacks.NewVerifier(stacks.Config{BaseURL: srv.URL, PollInterval: 10 * time.Millisecond})
		assert.False(t, v.WaitForConfirmation(context.Background(), "0xtx", 50*time.Millisecond))
	})

	t.Run("error: context cancelled", func(t *testing.T) {
		hits.Store(-1000)
		v := stacks.NewVerifier(stacks.Config{BaseURL: srv.URL, PollInterval: 10 * time.Millisecond})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.False(t, v.WaitForConfirmation(ctx, "0xtx", time.Second))
	})
}
