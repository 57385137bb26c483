package middleware

import (
	"log/slog"
	"net/http"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the newest public error attached by AbortWithError.
// Anything else left on the context becomes a bare 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		slog.Error("unrendered handler error",
			slog.String("request_id", GetRequestID(c)),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", c.Errors.Last().Error()))
		c.JSON(http.StatusInternalServerError, httperr.Response{Error: "Internal server error"})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					slog.Any("panic", rec),
					slog.String("request_id", GetRequestID(c)),
					slog.String("path", c.Request.URL.Path),
					slog.Bool("payment_proof", c.GetHeader(payment.HeaderName) != ""))

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{Error: "Internal server error"})
			}
		}()
		c.Next()
	}
}
