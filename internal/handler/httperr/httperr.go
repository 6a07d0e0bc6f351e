package httperr

import (
	"fmt"
	"log/slog"
	"net/http"

	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	message string
}

// ordered: the first matching sentinel wins
var mappings = []mapping{
	{errs.ErrInsufficientCredits, http.StatusPaymentRequired, "Not enough credits for this booking"},
	{errs.ErrCapacityExceeded, http.StatusConflict, "This time slot no longer has enough free units"},
	{errs.ErrBookingAlreadyCancelled, http.StatusConflict, "This booking is already cancelled"},
	{errs.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency-Key was already used for a different request"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "This request is still being processed"},
	{errs.ErrBookingForbidden, http.StatusForbidden, "You cannot change this booking"},
	{errs.ErrPayAtVenueForbidden, http.StatusForbidden, "Only staff can book with payment at the venue"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrTierNotFound, http.StatusNotFound, "Membership tier not found"},
	{errs.ErrBookingInPast, http.StatusBadRequest, "This booking date has already passed"},
	{errs.ErrCreditsNotAllowed, http.StatusBadRequest, "Credits cannot be used for this station"},
	{errs.ErrInvalidCreditAmount, http.StatusBadRequest, "Invalid credit amount"},
	{errs.ErrInvalidSignature, http.StatusBadRequest, "Invalid signature"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid booking request"},
	{commands.ErrEmailTaken, http.StatusConflict, "Email is already registered"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired token"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{errs.ErrUpstreamFailure, http.StatusServiceUnavailable, "Service temporarily unavailable, please retry"},
	{errs.ErrDatabaseOperationFailed, http.StatusServiceUnavailable, "Service temporarily unavailable, please retry"},
	{errs.ErrIdempotencyCheckFailed, http.StatusServiceUnavailable, "Service temporarily unavailable, please retry"},
}

// Classify maps a usecase error to its status and user-facing message.
func Classify(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort renders err with its classified status.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

// PaidFailureDetail tells support which charge needs manual reconciliation.
type PaidFailureDetail struct {
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason"`
}

// AbortAfterPayment renders a failure for a request whose payment the
// processor already captured. The user is sent to support with the
// transaction id instead of being asked to retry.
func AbortAfterPayment(c *gin.Context, err error, transactionID string) {
	status, reason := Classify(err)
	slog.Error("payment captured but booking not saved",
		"transaction_id", transactionID, "status", status, "error", err.Error())
	msg := fmt.Sprintf("Payment successful but booking failed to save. Contact support with transaction ID %s", transactionID)
	AbortWithError(c, status, err, msg, PaidFailureDetail{TransactionID: transactionID, Reason: reason})
}
