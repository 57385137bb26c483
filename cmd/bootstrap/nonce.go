package bootstrap

import (
	"context"
	"log/slog"

	"x402-gateway/internal/infra/noncestore"
	"x402-gateway/internal/pkg/clock"
	"x402-gateway/internal/pkg/config"
	"x402-gateway/internal/usecase"

	"go.uber.org/fx"
)

var NonceModule = fx.Module("nonce",
	fx.Provide(
		NewNonceStore,
	),
)

// NewNonceStore negotiates the store mode once. The in-memory store gets a
// janitor for the lifetime of the app; either store is released on stop.
func NewNonceStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) usecase.NonceStore {
	store := noncestore.Negotiate(context.Background(), cfg.Nonce, clk)

	var stopJanitor context.CancelFunc
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			mem, ok := store.(*noncestore.MemoryStore)
			if !ok {
				return nil
			}
			var ctx context.Context
			ctx, stopJanitor = context.WithCancel(context.Background())
			go mem.Run(ctx, cfg.Nonce.SweepInterval)
			slog.Info("Nonce janitor started", slog.Duration("interval", cfg.Nonce.SweepInterval))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if stopJanitor != nil {
				stopJanitor()
			}
			return store.Cleanup(ctx)
		},
	})

	return store
}
