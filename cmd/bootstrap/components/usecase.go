package components

import (
	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/infra/provider"
	"x402-gateway/internal/pkg/clock"
	"x402-gateway/internal/pkg/config"
	"x402-gateway/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseProviderModule,
	fx.Provide(
		NewGateConfig,
		usecase.NewPaymentGate,
		usecase.NewPromptUseCase,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	payment.DefaultPricing,
)

var usecaseProviderModule = fx.Module("usecase/provider",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *provider.Router {
				return provider.NewRouter(cfg.Provider)
			},
			fx.As(new(usecase.CompletionProvider)),
		),
	),
)

func NewGateConfig(cfg config.Config) (usecase.GateConfig, error) {
	network, err := payment.ParseNetwork(cfg.Stacks.Network)
	if err != nil {
		return usecase.GateConfig{}, err
	}
	return usecase.GateConfig{
		Recipient:    cfg.Stacks.RecipientAddress,
		Network:      network,
		Asset:        payment.AssetSTX,
		ChallengeTTL: cfg.Nonce.TTL,
	}, nil
}
