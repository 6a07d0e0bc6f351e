//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/infra/stripe"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/httptest"
	commandsmock "venue-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)

	h := api.NewWebhookHandler(s.mockCommands)
	s.router = gin.New()
	s.router.POST("/webhook", h.Receive)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestReceive() {
	payload := []byte(`{"id":"evt_1","type":"invoice.paid"}`)
	headers := map[string]string{stripe.SignatureHeader: "t=1,v1=abc"}

	s.Run("success: acknowledges an applied event", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), payload, "t=1,v1=abc").Return(payment.OutcomeApplied, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/webhook", payload, headers)

		var response map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(map[string]bool{"received": true}, response)
	})

	s.Run("success: a duplicate is acknowledged and flagged", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), payload, gomock.Any()).Return(payment.OutcomeDuplicate, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/webhook", payload, headers)

		var response map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response["duplicate"])
	})

	s.Run("success: skipped events are still acknowledged", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), payload, gomock.Any()).Return(payment.OutcomeSkipped, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/webhook", payload, headers)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a bad signature", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), payload, gomock.Any()).
			Return(payment.Outcome(""), errs.Mark(errs.New("no valid signature"), errs.ErrInvalidSignature))

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/webhook", payload, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid signature")
	})

	s.Run("error: 500 so the processor retries", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), payload, gomock.Any()).
			Return(payment.Outcome(""), errors.New("db down"))

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/webhook", payload, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Webhook processing failed")
	})

	s.Run("error: 413 on an oversized body without processing it", func() {
		big := bytes.Repeat([]byte("a"), int(stripe.MaxBodyBytes)+1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/webhook", big, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "Payload too large")
	})
}
