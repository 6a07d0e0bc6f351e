package api

import (
	"io"
	"log/slog"
	"net/http"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/infra/stripe"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	cmds commands.PaymentCommands
}

func NewWebhookHandler(cmds commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Payment processor webhook
// @Description Reconciles checkout, renewal and cancellation events. Any non-2xx makes the processor retry.
// @Tags webhook
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Processor signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, stripe.MaxBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Payload too large", nil)
		return
	}

	outcome, err := h.cmds.HandleWebhook(c.Request.Context(), payload, c.GetHeader(stripe.SignatureHeader))
	if err != nil {
		if errs.Is(err, errs.ErrInvalidSignature) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
			return
		}
		slog.Error("webhook processing failed", "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Webhook processing failed", nil)
		return
	}

	resp := gin.H{"received": true}
	if outcome == payment.OutcomeDuplicate {
		resp["duplicate"] = true
	}
	c.JSON(http.StatusOK, resp)
}
