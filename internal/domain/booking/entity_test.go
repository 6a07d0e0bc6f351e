//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/clock"
	"venue-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(now time.Time) *booking.Services {
	return &booking.Services{
		Clock:    clock.NewMockClock(now),
		Schedule: venue.NewSchedule(time.UTC, 10, 22),
	}
}

func validRequest() booking.Request {
	contact, _ := booking.NewContact("Dana Driver", "dana@example.com", "")
	return booking.Request{
		UserID:  uuid.New(),
		Date:    time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
		Hour:    14,
		Hours:   2,
		Station: equipment.StationKart,
		Drivers: 3,
		Contact: contact,
		Payment: booking.Credits{},
	}
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

	t.Run("success: credits booking records consumption", func(t *testing.T) {
		b, err := booking.NewBooking(newServices(now), validRequest())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, 6, b.CreditsConsumed())
		assert.Equal(t, 3, b.Units())
		assert.Equal(t, []int{14, 15}, b.CoveredHours())
		assert.False(t, b.IsEvent())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("success: venue payment consumes nothing", func(t *testing.T) {
		req := validRequest()
		req.Payment = booking.Venue{}
		b, err := booking.NewBooking(newServices(now), req)
		require.NoError(t, err)
		assert.Zero(t, b.CreditsConsumed())
	})

	t.Run("success: group package takes one unit", func(t *testing.T) {
		req := validRequest()
		req.Station = equipment.StationGroup
		req.Drivers = 12
		req.Payment = booking.Deposit{TransactionID: "tx_9"}
		b, err := booking.NewBooking(newServices(now), req)
		require.NoError(t, err)
		assert.Equal(t, 1, b.Units())
		assert.True(t, b.IsEvent())
	})

	t.Run("success: later today is still bookable", func(t *testing.T) {
		req := validRequest()
		req.Date = time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
		req.Hour = 13
		_, err := booking.NewBooking(newServices(now), req)
		require.NoError(t, err)
	})

	tests := []struct {
		name   string
		mutate func(*booking.Request)
		errIs  error
	}{
		{"unknown station", func(r *booking.Request) { r.Station = "boat" }, equipment.ErrInvalidStation},
		{"no drivers", func(r *booking.Request) { r.Drivers = 0 }, booking.ErrInvalidDrivers},
		{"more drivers than karts", func(r *booking.Request) { r.Drivers = 6 }, booking.ErrInvalidDrivers},
		{"zero hours", func(r *booking.Request) { r.Hours = 0 }, booking.ErrInvalidHours},
		{"four hours", func(r *booking.Request) { r.Hours = 4 }, booking.ErrInvalidHours},
		{"missing payment", func(r *booking.Request) { r.Payment = nil }, booking.ErrInvalidPaymentMethod},
		{"yesterday", func(r *booking.Request) { r.Date = time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC) }, booking.ErrDateInPast},
		{"runs past closing", func(r *booking.Request) { r.Hour = 21 }, venue.ErrOutsideHours},
		{"before opening", func(r *booking.Request) { r.Hour = 9; r.Hours = 1 }, venue.ErrOutsideHours},
		{"slot already started", func(r *booking.Request) {
			r.Date = time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
			r.Hour = 12
			r.Hours = 1
		}, booking.ErrSlotPassed},
		{"credits on group", func(r *booking.Request) { r.Station = equipment.StationGroup }, booking.ErrCreditsNotAllowed},
		{"deposit without reference", func(r *booking.Request) { r.Payment = booking.Deposit{} }, booking.ErrMissingPaymentRef},
		{"paypal without reference", func(r *booking.Request) { r.Payment = booking.PayPalFull{} }, booking.ErrMissingPaymentRef},
	}
	for _, tt := range tests {
		t.Run("error: "+tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := booking.NewBooking(newServices(now), req)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestBooking_Cancel(t *testing.T) {
	date := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)

	t.Run("full refund returns consumed credits", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(date).BuildDomain()

		refund, err := b.Cancel(newServices(date.AddDate(0, 0, -10)))
		require.NoError(t, err)

		assert.Equal(t, booking.PolicyFullRefund, refund.Policy)
		assert.Equal(t, map[equipment.Type]int{equipment.Kart: 2}, refund.Credits)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancelledAt())
	})

	t.Run("credit50 converts half the value", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(date).BuildDomain()

		refund, err := b.Cancel(newServices(date.AddDate(0, 0, -5)))
		require.NoError(t, err)
		assert.Equal(t, booking.PolicyCredit50, refund.Policy)
		assert.Equal(t, map[equipment.Type]int{equipment.Kart: 2}, refund.Credits)
	})

	t.Run("inside two days refunds nothing", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(date).BuildDomain()

		refund, err := b.Cancel(newServices(date.Add(-time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, booking.PolicyNoRefund, refund.Policy)
		assert.Empty(t, refund.Credits)
	})

	t.Run("same day is still cancellable", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(date).BuildDomain()
		_, err := b.Cancel(newServices(date.Add(20 * time.Hour)))
		require.NoError(t, err)
	})

	t.Run("venue payment is free to cancel", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(date).WithPayment(booking.TagVenue, "").BuildDomain()

		refund, err := b.Cancel(newServices(date))
		require.NoError(t, err)
		assert.Equal(t, booking.PolicyNoCharge, refund.Policy)
		assert.Empty(t, refund.Credits)
	})

	t.Run("error: already cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(date).AsCancelled().BuildDomain()
		_, err := b.Cancel(newServices(date.AddDate(0, 0, -10)))
		assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
	})

	t.Run("error: date has passed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(date).BuildDomain()
		_, err := b.Cancel(newServices(date.AddDate(0, 0, 1)))
		assert.ErrorIs(t, err, booking.ErrCancelAfterDatePassed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})
}

func TestValueObjects(t *testing.T) {
	t.Run("contact needs a name and one reachable channel", func(t *testing.T) {
		_, err := booking.NewContact("  Dana ", "", "+1 555 123 4567")
		require.NoError(t, err)

		for _, tc := range []struct{ name, email, phone string }{
			{"", "dana@example.com", ""},
			{"Dana", "", ""},
			{"Dana", "not-an-email", ""},
			{"Dana", "", "12"},
		} {
			_, err := booking.NewContact(tc.name, tc.email, tc.phone)
			assert.ErrorIs(t, err, booking.ErrInvalidContact)
		}
	})

	t.Run("notes are capped by rune count", func(t *testing.T) {
		_, err := booking.NewNotes(strings.Repeat("é", booking.MaxNotesLength))
		require.NoError(t, err)
		_, err = booking.NewNotes(strings.Repeat("a", booking.MaxNotesLength+1))
		assert.ErrorIs(t, err, booking.ErrNotesTooLong)
	})

	t.Run("payment method tags round-trip", func(t *testing.T) {
		for _, tag := range []booking.PaymentTag{booking.TagVenue, booking.TagCredits, booking.TagDeposit, booking.TagPayPalFull} {
			pm, err := booking.ParsePaymentMethod(string(tag), "ref")
			require.NoError(t, err)
			assert.Equal(t, tag, pm.Tag())
		}
		_, err := booking.ParsePaymentMethod("cash", "")
		assert.ErrorIs(t, err, booking.ErrInvalidPaymentMethod)
		assert.False(t, booking.IsPaid(booking.Venue{}))
		assert.True(t, booking.IsPaid(booking.Deposit{TransactionID: "x"}))
	})

	t.Run("only processor payments are charged before the booking exists", func(t *testing.T) {
		assert.True(t, booking.ChargedUpfront(booking.Deposit{TransactionID: "pi_1"}))
		assert.True(t, booking.ChargedUpfront(booking.PayPalFull{TransactionID: "PAYID-1"}))
		assert.False(t, booking.ChargedUpfront(booking.Credits{}))
		assert.False(t, booking.ChargedUpfront(booking.Venue{}))
	})
}
