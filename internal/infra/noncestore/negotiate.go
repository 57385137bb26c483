package noncestore

import (
	"context"
	"log/slog"
	"time"

	"x402-gateway/internal/pkg/clock"
	"x402-gateway/internal/pkg/config"
	"x402-gateway/internal/usecase"

	"github.com/redis/go-redis/v9"
)

const defaultDialTimeout = 2 * time.Second

// Negotiate picks the backing store once for the process lifetime: Redis when
// REDIS_URL is set and answers PING, otherwise the in-process store.
func Negotiate(ctx context.Context, cfg config.NonceConfig, clk clock.Clock) usecase.NonceStore {
	if cfg.RedisURL == "" {
		slog.Info("Redis not configured, using in-memory nonce storage")
		return NewMemoryStore(cfg.TTL, clk)
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Warn("Invalid REDIS_URL, using in-memory nonce storage", slog.String("error", err.Error()))
		return NewMemoryStore(cfg.TTL, clk)
	}
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	opts.DialTimeout = timeout

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		slog.Warn("Redis unavailable, using in-memory nonce storage", slog.String("error", err.Error()))
		return NewMemoryStore(cfg.TTL, clk)
	}

	slog.Info("Redis connected for nonce management", slog.String("addr", opts.Addr))
	return NewRedisStore(client, cfg.TTL, clk)
}
