package api

import (
	"net/http"
	"time"

	resdto "x402-gateway/internal/handler/dto/response"
	"x402-gateway/internal/pkg/clock"
	"x402-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "StacksAI Gateway"
	ServiceVersion = "1.0.0"
)

type StatsHandler struct {
	stats usecase.StatsCollector
	clock clock.Clock
}

func NewStatsHandler(stats usecase.StatsCollector, clock clock.Clock) *StatsHandler {
	return &StatsHandler{
		stats: stats,
		clock: clock,
	}
}

// @Summary Gateway statistics
// @Tags ops
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Router /v1/stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromStatsSnapshot(h.stats.Snapshot(), h.clock.Now()))
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags ops
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func (h *StatsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:    "healthy",
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339Nano),
		Service:   ServiceName,
		Version:   ServiceVersion,
	})
}
