//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"x402-gateway/internal/domain/payment"
	"x402-gateway/internal/handler/middleware"
	"x402-gateway/internal/pkg/errs"
	"x402-gateway/tests/common/builder"
	"x402-gateway/tests/common/httptest"
	usecasemock "x402-gateway/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentMiddlewareTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockGate *usecasemock.MockPaymentGate
	admitted *payment.Info
}

func (s *PaymentMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGate = usecasemock.NewMockPaymentGate(s.mockCtrl)
	s.admitted = nil

	pm := middleware.NewPaymentMiddleware(s.mockGate)
	s.router.POST("/v1/prompt/:model", pm.RequirePayment("model"), func(c *gin.Context) {
		info, ok := middleware.GetPaymentInfo(c)
		s.Require().True(ok)
		s.admitted = info
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func (s *PaymentMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(PaymentMiddlewareTestSuite))
}

func (s *PaymentMiddlewareTestSuite) TestChallenge() {
	issued := builder.NewPaymentBuilder().BuildRequirements()
	s.mockGate.EXPECT().IssueChallenge(gomock.Any(), "gpt4").Return(&issued, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/v1/prompt/gpt4", nil, "")

	got := httptest.AssertChallenge(s.T(), rec)
	s.Equal(issued, got)
	s.Nil(s.admitted)
}

func (s *PaymentMiddlewareTestSuite) TestAdmit() {
	header := builder.NewPaymentBuilder().BuildHeader()
	info := &payment.Info{TxID: builder.DefaultTxID, Amount: 100000, Sender: builder.DefaultSender, Timestamp: 1717243200}
	s.mockGate.EXPECT().Verify(gomock.Any(), "gpt4", header).Return(info, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/v1/prompt/gpt4", nil, header)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(info, s.admitted)
}

func (s *PaymentMiddlewareTestSuite) TestErrors() {
	header := builder.NewPaymentBuilder().BuildHeader()

	testCases := []struct {
		name        string
		err         error
		expectCode  int
		expectError string
		expectBody  map[string]any
	}{
		{
			name:       "policy rejection renders 403 with reason",
			err:        payment.Reject(payment.RejectReplay, payment.ReasonReplay),
			expectCode: http.StatusForbidden,
			expectBody: map[string]any{
				"error":  "Payment verification failed",
				"reason": "Nonce already used (replay attack prevention)",
			},
		},
		{
			name:       "wrapped rejection is still a rejection",
			err:        errs.Wrap(payment.InsufficientPayment(100000, 99999), "verify"),
			expectCode: http.StatusForbidden,
			expectBody: map[string]any{
				"error":  "Payment verification failed",
				"reason": "Insufficient payment. Expected: 100000, Got: 99999",
			},
		},
		{
			name:       "store failure renders 500 without detail",
			err:        errs.Mark(errs.New("dial tcp: refused"), errs.ErrPaymentProcessing),
			expectCode: http.StatusInternalServerError,
			expectBody: map[string]any{"error": "Payment processing error"},
		},
		{
			name:       "unknown model renders 404",
			err:        errs.Mark(errs.New("unknown model: llama"), errs.ErrUnknownModel),
			expectCode: http.StatusNotFound,
			expectBody: map[string]any{"error": "Model not found", "message": "Unknown model: gpt4"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockGate.EXPECT().Verify(gomock.Any(), "gpt4", header).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/v1/prompt/gpt4", nil, header)

			s.Equal(tc.expectCode, rec.Code)
			var body map[string]any
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
			s.Equal(tc.expectBody, body)
			s.Nil(s.admitted)
		})
	}
}

func (s *PaymentMiddlewareTestSuite) TestChallengeStoreFailure() {
	s.mockGate.EXPECT().IssueChallenge(gomock.Any(), "gpt4").
		Return(nil, errs.Mark(errs.New("redis down"), errs.ErrPaymentProcessing)).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/v1/prompt/gpt4", nil, "")

	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Payment processing error")
}
