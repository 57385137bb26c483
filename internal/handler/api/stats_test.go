//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"x402-gateway/internal/handler/api"
	resdto "x402-gateway/internal/handler/dto/response"
	"x402-gateway/internal/pkg/clock"
	"x402-gateway/internal/usecase"
	"x402-gateway/tests/common/httptest"
	usecasemock "x402-gateway/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestStatsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(started.Add(90 * time.Second))
	stats := usecasemock.NewMockStatsCollector(ctrl)
	h := api.NewStatsHandler(stats, clk)

	r := gin.New()
	r.GET("/v1/stats", h.Stats)
	r.GET("/health", h.Health)

	t.Run("stats converts revenue to STX", func(t *testing.T) {
		stats.EXPECT().Snapshot().Return(usecase.StatsSnapshot{
			Requests:   10,
			Challenges: 4,
			Payments:   3,
			Rejections: 1,
			Revenue:    320000,
			StartedAt:  started,
		})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/v1/stats", nil, "")

		var got resdto.StatsResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, resdto.StatsResponse{
			Requests:   10,
			Payments:   3,
			Rejections: 1,
			Challenges: 4,
			Revenue:    resdto.RevenueResponse{MicroSTX: 320000, STX: 0.32},
			Uptime:     90,
		}, got)
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")

		var got resdto.HealthResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, resdto.HealthResponse{
			Status:    "healthy",
			Timestamp: "2024-06-01T12:01:30Z",
			Service:   "StacksAI Gateway",
			Version:   "1.0.0",
		}, got)
	})
}
