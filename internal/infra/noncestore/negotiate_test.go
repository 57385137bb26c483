//go:build unit

package noncestore_test

import (
	"context"
	"testing"
	"time"

	"x402-gateway/internal/infra/noncestore"
	"x402-gateway/internal/pkg/clock"
	"x402-gateway/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiate(t *testing.T) {
	clk := clock.NewRealClock()
	base := config.NonceConfig{TTL: ttl, DialTimeout: 200 * time.Millisecond}

	t.Run("memory when REDIS_URL is empty", func(t *testing.T) {
		store := noncestore.Negotiate(context.Background(), base, clk)
		assert.Equal(t, noncestore.ModeMemory, store.Mode())
	})

	t.Run("memory when REDIS_URL cannot be parsed", func(t *testing.T) {
		cfg := base
		cfg.RedisURL = "http://not-redis"
		store := noncestore.Negotiate(context.Background(), cfg, clk)
		assert.Equal(t, noncestore.ModeMemory, store.Mode())
	})

	t.Run("memory when redis does not answer", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		addr := mr.Addr()
		mr.Close()

		cfg := base
		cfg.RedisURL = "redis://" + addr
		store := noncestore.Negotiate(context.Background(), cfg, clk)
		assert.Equal(t, noncestore.ModeMemory, store.Mode())
	})

	t.Run("redis when PING succeeds", func(t *testing.T) {
		mr := miniredis.RunT(t)

		cfg := base
		cfg.RedisURL = "redis://" + mr.Addr()
		store := noncestore.Negotiate(context.Background(), cfg, clk)
		require.Equal(t, noncestore.ModeRedis, store.Mode())

		nonce, err := store.Generate(context.Background())
		require.NoError(t, err)
		assert.True(t, mr.Exists("nonce:"+nonce))
		assert.NoError(t, store.Cleanup(context.Background()))
	})
}

func TestNewToken(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		tok, err := noncestore.NewToken()
		require.NoError(t, err)
		require.Len(t, tok, 64)
		_, dup := seen[tok]
		require.False(t, dup)
		seen[tok] = struct{}{}
	}

	assert.Len(t, noncestore.Fingerprint("abc"), 8)
	assert.Equal(t, noncestore.Fingerprint("abc"), noncestore.Fingerprint("abc"))
}
