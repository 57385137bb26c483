package api

import (
	"log/slog"
	"net/http"

	"x402-gateway/internal/domain/payment"
	reqdto "x402-gateway/internal/handler/dto/request"
	resdto "x402-gateway/internal/handler/dto/response"
	"x402-gateway/internal/handler/httperr"
	"x402-gateway/internal/handler/middleware"
	"x402-gateway/internal/pkg/errs"
	"x402-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type PromptHandler struct {
	prompts usecase.PromptUseCase
	gate    usecase.PaymentGate
}

func NewPromptHandler(prompts usecase.PromptUseCase, gate usecase.PaymentGate) *PromptHandler {
	return &PromptHandler{
		prompts: prompts,
		gate:    gate,
	}
}

// ValidatePrompt runs ahead of the payment gate so an empty body never
// consumes a nonce. Unpaid requests pass straight through to the challenge.
func (h *PromptHandler) ValidatePrompt(c *gin.Context) {
	if c.GetHeader(payment.HeaderName) == "" {
		c.Next()
		return
	}

	var req reqdto.PromptRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil || req.Prompt == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, httperr.Response{Error: "Prompt is required"})
		return
	}
	c.Next()
}

// @Summary Run a paid prompt
// @Description Forwards the prompt to the model's upstream provider once the payment proof is accepted
// @Tags prompt
// @Accept json
// @Produce json
// @Param model path string true "Model key"
// @Param payment-signature header string false "base64 payment payload"
// @Param request body reqdto.PromptRequest true "Prompt request"
// @Success 200 {object} resdto.PromptResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} map[string]any
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /v1/prompt/{model} [post]
func (h *PromptHandler) Complete(c *gin.Context) {
	model := c.Param("model")

	var req reqdto.PromptRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Prompt is required")
		return
	}

	info, _ := middleware.GetPaymentInfo(c)

	res, err := h.prompts.Complete(c.Request.Context(), model, req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrUnknownModel):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Model not found")
		default:
			slog.Error("Prompt processing error",
				slog.String("model", model),
				slog.String("request_id", middleware.GetRequestID(c)),
				slog.String("error", err.Error()))
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process prompt",
				httperr.WithMessage(errs.Cause(err).Error()))
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromptResult(res, info))
}

// @Summary List models
// @Description Pricing for every model the gateway sells
// @Tags prompt
// @Produce json
// @Success 200 {object} resdto.ModelsResponse
// @Router /v1/prompt/models [get]
func (h *PromptHandler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPricingTable(h.gate.Pricing()))
}
