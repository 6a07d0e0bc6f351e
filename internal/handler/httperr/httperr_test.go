//go:build unit

package httperr

import (
	"errors"
	"net/http"
	"testing"

	"venue-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"insufficient credits", errs.Mark(errors.New("insufficient credits"), errs.ErrInsufficientCredits), http.StatusPaymentRequired},
		{"capacity", errs.Mark(errs.New("no capacity at kart 14:00"), errs.ErrCapacityExceeded), http.StatusConflict},
		{"forbidden", errs.ErrBookingForbidden, http.StatusForbidden},
		{"not found", errs.Wrap(errs.ErrBookingNotFound, "cancel"), http.StatusNotFound},
		{"validation", errs.Mark(errors.New("invalid date"), errs.ErrDomainValidation), http.StatusBadRequest},
		{"upstream", errs.Mark(errors.New("dial tcp"), errs.ErrUpstreamFailure), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Classify(tt.err)

			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}
