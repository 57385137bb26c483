//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

const FakeAPIKey = "sk-e2e"

// FakeLedger serves the Stacks API transaction endpoint for registered txs.
type FakeLedger struct {
	srv *httptest.Server
	mu  sync.Mutex
	txs map[string]gin.H
}

func NewFakeLedger(t *testing.T) *FakeLedger {
	t.Helper()
	l := &FakeLedger{txs: map[string]gin.H{}}

	r := gin.New()
	r.GET("/extended/v1/tx/:txId", func(c *gin.Context) {
		l.mu.Lock()
		tx, ok := l.txs[c.Param("txId")]
		l.mu.Unlock()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "could not find transaction"})
			return
		}
		c.JSON(http.StatusOK, tx)
	})

	l.srv = httptest.NewServer(r)
	t.Cleanup(l.srv.Close)
	return l
}

func (l *FakeLedger) URL() string { return l.srv.URL }

// Confirm registers a successful STX transfer.
func (l *FakeLedger) Confirm(txID, sender, recipient string, amount uint64) {
	l.put(txID, "success", sender, recipient, amount)
}

func (l *FakeLedger) Pending(txID, sender, recipient string, amount uint64) {
	l.put(txID, "pending", sender, recipient, amount)
}

func (l *FakeLedger) put(txID, status, sender, recipient string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.txs[txID] = gin.H{
		"tx_id":           txID,
		"tx_status":       status,
		"tx_type":         "token_transfer",
		"sender_address":  sender,
		"block_height":    150000,
		"burn_block_time": 1717243200,
		"token_transfer": gin.H{
			"recipient_address": recipient,
			"amount":            strconv.FormatUint(amount, 10),
			"memo":              "",
		},
	}
}

// FakeProvider answers OpenAI chat completions with a fixed reply.
type FakeProvider struct {
	srv   *httptest.Server
	mu    sync.Mutex
	calls int
}

func NewFakeProvider(t *testing.T) *FakeProvider {
	t.Helper()
	p := &FakeProvider{}

	r := gin.New()
	r.POST("/v1/chat/completions", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer "+FakeAPIKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "bad key"}})
			return
		}
		p.mu.Lock()
		p.calls++
		p.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{
			"choices": []gin.H{{"message": gin.H{"role": "assistant", "content": "Stacks is a Bitcoin layer."}}},
			"usage":   gin.H{"prompt_tokens": 5, "completion_tokens": 6, "total_tokens": 11},
		})
	})

	p.srv = httptest.NewServer(r)
	t.Cleanup(p.srv.Close)
	return p
}

func (p *FakeProvider) URL() string { return p.srv.URL }

func (p *FakeProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
