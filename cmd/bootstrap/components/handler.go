package components

import (
	"x402-gateway/internal/handler"
	"x402-gateway/internal/handler/api"
	"x402-gateway/internal/handler/middleware"
	"x402-gateway/internal/infra/metrics"
	"x402-gateway/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPromptHandler,
		api.NewStatsHandler,
		middleware.NewPaymentMiddleware,
	),
	fx.Invoke(NewRouter),
)

type routerIn struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Logger   *middleware.Logger
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
	Payment  *middleware.PaymentMiddleware
	Prompt   *api.PromptHandler
	Stats    *api.StatsHandler
}

func NewRouter(in routerIn) {
	handler.NewRouter(in.Engine, handler.RouterParams{
		Config:   in.Config,
		Logger:   in.Logger,
		Metrics:  in.Metrics,
		Gatherer: in.Gatherer,
		Payment:  in.Payment,
		Prompt:   in.Prompt,
		Stats:    in.Stats,
	})
}
