package bootstrap

import (
	"x402-gateway/internal/infra/metrics"
	"x402-gateway/internal/infra/stacks"
	"x402-gateway/internal/pkg/config"
	"x402-gateway/internal/usecase"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		fx.Annotate(
			NewLedgerVerifier,
			fx.As(new(usecase.LedgerVerifier)),
		),
	),
)

func NewLedgerVerifier(cfg config.Config, collector *metrics.Collector) *stacks.Verifier {
	return stacks.NewVerifier(stacks.Config{
		BaseURL:       cfg.Stacks.BaseURL(),
		Timeout:       cfg.Stacks.LedgerTimeout,
		OnStateChange: collector.ObserveBreaker,
	})
}
