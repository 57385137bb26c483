package response

import (
	"time"

	"x402-gateway/internal/usecase"

	"github.com/shopspring/decimal"
)

const microSTXExponent = -6

type RevenueResponse struct {
	MicroSTX uint64  `json:"microSTX"`
	STX      float64 `json:"STX"`
}

type StatsResponse struct {
	Requests   uint64          `json:"requests"`
	Payments   uint64          `json:"payments"`
	Rejections uint64          `json:"rejections"`
	Challenges uint64          `json:"challenges"`
	Revenue    RevenueResponse `json:"revenue"`
	Uptime     float64         `json:"uptime"` // seconds
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

func FromStatsSnapshot(s usecase.StatsSnapshot, now time.Time) *StatsResponse {
	return &StatsResponse{
		Requests:   s.Requests,
		Payments:   s.Payments,
		Rejections: s.Rejections,
		Challenges: s.Challenges,
		Revenue: RevenueResponse{
			MicroSTX: s.Revenue,
			STX:      decimal.New(int64(s.Revenue), microSTXExponent).InexactFloat64(),
		},
		Uptime: now.Sub(s.StartedAt).Seconds(),
	}
}
