package bootstrap

import (
	"x402-gateway/internal/infra/metrics"
	"x402-gateway/internal/pkg/clock"
	"x402-gateway/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		func(reg *prometheus.Registry, clk clock.Clock) *metrics.Collector {
			return metrics.NewCollector(reg, clk)
		},
		func(c *metrics.Collector) usecase.StatsCollector { return c },
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
