package bootstrap

import (
	"x402-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	NonceModule,
	LedgerModule,
	DBModule,
	components.UseCaseModule,
	components.HandlerModule,
)
