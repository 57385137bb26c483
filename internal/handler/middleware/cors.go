package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always lets browsers send the payment proof header, even
// when CORS_ALLOW_HEADERS is overridden without it.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := slices.Clone(cfg.AllowHeaders)
	if !slices.ContainsFunc(allowHeaders, func(h string) bool { return strings.EqualFold(h, payment.HeaderName) }) {
		allowHeaders = append(allowHeaders, payment.HeaderName)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "AllowHeaders", allowHeaders)
	return cors.New(corsCfg)
}
