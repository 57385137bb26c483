package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"x402-gateway/internal/infra/db"
	"x402-gateway/internal/infra/repository"
	"x402-gateway/internal/pkg/config"
	"x402-gateway/internal/pkg/errs"
	"x402-gateway/internal/usecase"

	"go.uber.org/fx"
)

const dbConnectTimeout = 10 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewReceiptStore,
	),
)

// NewReceiptStore persists receipts in PostgreSQL when DATABASE_URL is set and
// keeps them in process otherwise.
func NewReceiptStore(lc fx.Lifecycle, cfg config.Config) (usecase.ReceiptStore, error) {
	if cfg.DB.URL == "" {
		slog.Info("DATABASE_URL not set, using in-memory receipt storage")
		return repository.NewMemoryReceiptRepository(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect receipt database")
	}

	repo := repository.NewReceiptRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		cleanup()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	slog.Info("PostgreSQL connected for receipt storage")
	return repo, nil
}
