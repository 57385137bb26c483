package metrics

import (
	"strconv"
	"sync/atomic"
	"time"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/pkg/clock"
	"x402-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker"
)

const namespace = "x402"

// Collector counts gate activity in process for /v1/stats and exports the same
// figures to Prometheus on its own registry.
type Collector struct {
	requests   atomic.Uint64
	challenges atomic.Uint64
	payments   atomic.Uint64
	rejections atomic.Uint64
	revenue    atomic.Uint64
	startedAt  time.Time

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	challengesTotal *prometheus.CounterVec
	admissionsTotal *prometheus.CounterVec
	rejectionsTotal *prometheus.CounterVec
	revenueTotal    prometheus.Counter
	breakerState    *prometheus.GaugeVec
}

func NewCollector(reg prometheus.Registerer, clk clock.Clock) *Collector {
	c := &Collector{
		startedAt: clk.Now(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		challengesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_challenges_total",
				Help:      "Payment challenges issued",
			},
			[]string{"model"},
		),
		admissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_admissions_total",
				Help:      "Paid requests admitted",
			},
			[]string{"model"},
		),
		rejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_rejections_total",
				Help:      "Paid requests rejected by policy",
			},
			[]string{"code"},
		),
		revenueTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_revenue_microstx_total",
				Help:      "Verified revenue in microSTX",
			},
		),
		breakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_state",
				Help:      "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"circuit_name"},
		),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.challengesTotal,
		c.admissionsTotal,
		c.rejectionsTotal,
		c.revenueTotal,
		c.breakerState,
	)
	return c
}

func (c *Collector) RecordRequest() {
	c.requests.Add(1)
}

func (c *Collector) RecordChallenge(model string) {
	c.challenges.Add(1)
	c.challengesTotal.WithLabelValues(model).Inc()
}

func (c *Collector) RecordAdmission(model string, amount uint64) {
	c.payments.Add(1)
	c.revenue.Add(amount)
	c.admissionsTotal.WithLabelValues(model).Inc()
	c.revenueTotal.Add(float64(amount))
}

func (c *Collector) RecordRejection(code payment.RejectCode) {
	c.rejections.Add(1)
	c.rejectionsTotal.WithLabelValues(string(code)).Inc()
}

func (c *Collector) Snapshot() usecase.StatsSnapshot {
	return usecase.StatsSnapshot{
		Requests:   c.requests.Load(),
		Challenges: c.challenges.Load(),
		Payments:   c.payments.Load(),
		Rejections: c.rejections.Load(),
		Revenue:    c.revenue.Load(),
		StartedAt:  c.startedAt,
	}
}

// ObserveBreaker matches stacks.Config.OnStateChange.
func (c *Collector) ObserveBreaker(name string, _, to gobreaker.State) {
	state := float64(0)
	switch to {
	case gobreaker.StateOpen:
		state = 1
	case gobreaker.StateHalfOpen:
		state = 2
	case gobreaker.StateClosed:
		state = 0
	}
	c.breakerState.WithLabelValues(name).Set(state)
}

// Middleware counts every request and records its status and latency.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		c.RecordRequest()

		ctx.Next()

		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		c.httpRequests.WithLabelValues(
			ctx.Request.Method,
			endpoint,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
		c.httpDuration.WithLabelValues(
			ctx.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}
