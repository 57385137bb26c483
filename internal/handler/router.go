package handler

import (
	"net/http"

	"x402-gateway/internal/handler/api"
	"x402-gateway/internal/handler/middleware"
	"x402-gateway/internal/infra/metrics"
	"x402-gateway/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	Config   config.Config
	Logger   *middleware.Logger
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
	Payment  *middleware.PaymentMiddleware
	Prompt   *api.PromptHandler
	Stats    *api.StatsHandler
}

func NewRouter(engine *gin.Engine, p RouterParams) {
	setupMiddleware(engine, p)
	setupRoutes(engine, p)
}

func setupMiddleware(engine *gin.Engine, p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	engine.Use(p.Logger.LoggingMiddleware())
	engine.Use(p.Metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, p RouterParams) {
	engine.GET("/health", p.Stats.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/v1")
	{
		prompt := v1.Group("/prompt")
		addRoutes(prompt, []route{
			{Method: http.MethodGet, Path: "/models", Handler: p.Prompt.Models},
			{
				Method:  http.MethodPost,
				Path:    "/:model",
				Handler: p.Prompt.Complete,
				Mw:      []gin.HandlerFunc{p.Prompt.ValidatePrompt, p.Payment.RequirePayment("model")},
			},
		})

		addRoutes(v1, []route{
			{Method: http.MethodGet, Path: "/stats", Handler: p.Stats.Stats},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
