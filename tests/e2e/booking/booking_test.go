//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/api"
	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/tests/common/authtest"
	"venue-booking/tests/common/dbtest"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/availability"
	creditsURL      = "/api/me/credits"
	historyURL      = "/api/me/credits/history"
)

type bookingSuite struct {
	e2e.SharedSuite
	customerID    uuid.UUID
	customerToken string
	adminToken    string
	date          string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.customerID = dbtest.CreateTestUser(s.T(), s.DB, "driver@example.com", string(user.RoleCustomer))
	dbtest.GrantCredits(s.T(), s.DB, s.customerID, "kart", 5)

	s.customerToken = authtest.LoginUser(s.T(), s.Router, "driver@example.com", dbtest.TestPassword)
	s.adminToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "staff@example.com", string(user.RoleAdmin))

	loc, err := time.LoadLocation(s.Config.Venue.TimeZone)
	require.NoError(s.T(), err)
	s.date = time.Now().In(loc).AddDate(0, 0, 10).Format("2006-01-02")
}

func (s *bookingSuite) request(drivers int, payment string) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Date:          s.date,
		Time:          "14:00",
		Hours:         1,
		Station:       "kart",
		Drivers:       drivers,
		Contact:       reqdto.ContactRequest{Name: "Dana Driver", Email: "dana@example.com"},
		PaymentMethod: payment,
	}
}

func (s *bookingSuite) create(token string, body reqdto.CreateBookingRequest, key string) (*resdto.BookingResponse, int) {
	headers := map[string]string{"Authorization": "Bearer " + token}
	if key != "" {
		headers[api.IdempotencyKeyHeader] = key
	}
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, body, headers)
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}
	var res resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return &res, w.Code
}

func (s *bookingSuite) balance() int {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, creditsURL, nil, s.customerToken)
	var res resdto.CreditsResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res.Credits["kart"]
}

func (s *bookingSuite) TestCreditsBookingLifecycle() {
	s.Run("book, replay, cancel and refund", func() {
		key := uuid.NewString()

		booked, status := s.create(s.customerToken, s.request(2, "credits"), key)
		require.Equal(s.T(), http.StatusCreated, status)
		s.Equal(2, booked.CreditsConsumed)
		s.Equal(3, s.balance())

		headers := map[string]string{"Authorization": "Bearer " + s.customerToken, api.IdempotencyKeyHeader: key}
		replay := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, s.request(2, "credits"), headers)
		var replayed resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), replay, http.StatusCreated, &replayed)
		s.Equal("true", replay.Header().Get(api.IdempotentReplayedHeader))
		s.Equal(booked.ID, replayed.ID)
		s.Equal(3, s.balance(), "a replay must not charge twice")

		reused := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, bookingsURL, s.request(1, "credits"), headers)
		httptest.AssertErrorResponse(s.T(), reused, http.StatusConflict, "Idempotency-Key")

		avail := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availabilityURL+"?station=kart&date="+s.date, nil, "")
		var day resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), avail, http.StatusOK, &day)
		for _, slot := range day.Slots {
			if slot.Time == "14:00" {
				s.Equal(2, slot.Booked)
				s.Equal(3, slot.Available)
			}
		}

		cancel := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+booked.ID+"/cancel", nil, s.customerToken)
		var cancelled resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), cancel, http.StatusOK, &cancelled)
		s.Equal("full_refund", cancelled.Policy)
		s.Equal(map[string]int{"kart": 2}, cancelled.Credits)
		s.Equal(5, s.balance())

		again := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+booked.ID+"/cancel", nil, s.customerToken)
		httptest.AssertErrorResponse(s.T(), again, http.StatusConflict, "already cancelled")

		hist := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, historyURL, nil, s.customerToken)
		var entries []resdto.CreditHistoryResponse
		httptest.AssertSuccessResponse(s.T(), hist, http.StatusOK, &entries)
		s.Len(entries, 2)
	})

	s.Run("insufficient credits leave the balance untouched", func() {
		req := s.request(5, "credits")
		req.Hours = 2

		_, status := s.create(s.customerToken, req, "")
		s.Equal(http.StatusPaymentRequired, status)
		s.Equal(5, s.balance())
		s.Equal(5, dbtest.CreditBalance(s.T(), s.DB, s.customerID, "kart"))
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "reservations"))
	})
}

func (s *bookingSuite) TestCapacityAndPermissions() {
	s.Run("pay at venue is staff only", func() {
		_, status := s.create(s.customerToken, s.request(1, "venue"), "")
		s.Equal(http.StatusForbidden, status)
	})

	s.Run("a full slot rejects further bookings", func() {
		_, status := s.create(s.adminToken, s.request(5, "venue"), "")
		require.Equal(s.T(), http.StatusCreated, status)

		_, status = s.create(s.customerToken, s.request(1, "credits"), "")
		s.Equal(http.StatusConflict, status)
		s.Equal(5, s.balance())
	})

	s.Run("other customers cannot see or cancel a booking", func() {
		booked, status := s.create(s.customerToken, s.request(1, "credits"), "")
		require.Equal(s.T(), http.StatusCreated, status)

		other := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other@example.com", string(user.RoleCustomer))

		get := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+booked.ID, nil, other)
		s.Equal(http.StatusNotFound, get.Code)

		cancel := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+booked.ID+"/cancel", nil, other)
		s.Equal(http.StatusForbidden, cancel.Code)

		sheet := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/bookings?date="+s.date, nil, s.adminToken)
		var day []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), sheet, http.StatusOK, &day)
		s.Len(day, 1)

		denied := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/bookings?date="+s.date, nil, other)
		s.Equal(http.StatusForbidden, denied.Code)
	})
}
