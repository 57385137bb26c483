package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/handler/httperr"
	"x402-gateway/internal/pkg/errs"
	"x402-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxPaymentInfoKey = "payment_info"

// PaymentMiddleware turns a route into a pay-per-call resource. Requests
// without a proof get a 402 challenge; requests with one are admitted only
// after the gate accepts it.
type PaymentMiddleware struct {
	gate usecase.PaymentGate
}

func NewPaymentMiddleware(gate usecase.PaymentGate) *PaymentMiddleware {
	return &PaymentMiddleware{gate: gate}
}

// RequirePayment prices the request by the model named in the given path
// parameter.
func (m *PaymentMiddleware) RequirePayment(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		model := c.Param(param)
		header := c.GetHeader(payment.HeaderName)

		if header == "" {
			req, err := m.gate.IssueChallenge(c.Request.Context(), model)
			if err != nil {
				abortGateError(c, model, err)
				return
			}
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"paymentRequirements": req,
			})
			return
		}

		info, err := m.gate.Verify(c.Request.Context(), model, header)
		if err != nil {
			abortGateError(c, model, err)
			return
		}

		c.Set(ctxPaymentInfoKey, info)
		c.Next()
	}
}

func abortGateError(c *gin.Context, model string, err error) {
	if rej, ok := payment.AsRejection(err); ok {
		httperr.AbortWithError(c, http.StatusForbidden, err, "Payment verification failed", httperr.WithReason(rej.Reason))
		return
	}

	switch {
	case errs.Is(err, errs.ErrUnknownModel):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Model not found", httperr.WithMessage(fmt.Sprintf("Unknown model: %s", model)))
	default:
		slog.Error("Payment processing error",
			slog.String("model", model),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, 5)))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment processing error")
	}
}

func GetPaymentInfo(c *gin.Context) (*payment.Info, bool) {
	v, exists := c.Get(ctxPaymentInfoKey)
	if !exists {
		return nil, false
	}

	info, ok := v.(*payment.Info)
	return info, ok
}
