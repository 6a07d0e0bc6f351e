//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venue-booking/internal/domain/availability"
	"venue-booking/internal/domain/credit"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/handler/api"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/authtest"
	"venue-booking/tests/common/httptest"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAccountHandler_Credits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockAccountQueries(ctrl)
	userID := uuid.New()

	h := api.NewAccountHandler(q)
	router := gin.New()
	router.GET("/me/credits", authtest.AsActor(userID, user.RoleCustomer), h.Credits)
	router.GET("/anon/credits", h.Credits)

	t.Run("success: every equipment type is reported", func(t *testing.T) {
		q.EXPECT().GetBalances(gomock.Any(), userID).
			Return(credit.Balances{equipment.Kart: 4, equipment.Rig: 0, equipment.Motion: 1}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me/credits", nil, "")

		var response resdto.CreditsResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		assert.Equal(t, map[string]int{"kart": 4, "rig": 0, "motion": 1}, response.Credits)
	})

	t.Run("error: store failure is unavailable", func(t *testing.T) {
		q.EXPECT().GetBalances(gomock.Any(), userID).Return(nil, errs.ErrDatabaseOperationFailed)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me/credits", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})

	t.Run("error: 401 without an actor", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/anon/credits", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func TestAvailabilityHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockAvailabilityQueries(ctrl)
	sched := venue.NewSchedule(time.UTC, 10, 22)
	now := time.Date(2026, 2, 3, 15, 30, 0, 0, time.UTC)

	h := api.NewAvailabilityHandler(q, sched, clock.NewMockClock(now))
	router := gin.New()
	router.GET("/availability", h.Get)

	day := func(date time.Time) *availability.Day {
		return &availability.Day{
			Date:    date,
			Station: equipment.StationRig,
			Hours:   []availability.Hour{{Time: "10:00", Booked: 1, Available: 3, Total: 4, Passed: true}},
		}
	}

	t.Run("success: date defaults to today at the venue", func(t *testing.T) {
		today := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
		q.EXPECT().GetAvailability(gomock.Any(), today, equipment.StationRig).Return(day(today), nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/availability?station=rig", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		assert.Equal(t, "2026-02-03", response.Date)
		assert.Equal(t, []resdto.SlotResponse{{Time: "10:00", Booked: 1, Available: 3, Total: 4, Passed: true}}, response.Slots)
		assert.False(t, response.Demo)
	})

	t.Run("success: explicit date", func(t *testing.T) {
		date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
		q.EXPECT().GetAvailability(gomock.Any(), date, equipment.StationRig).Return(day(date), nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/availability?station=rig&date=2026-02-10", nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("error: 400 on bad input", func(t *testing.T) {
		cases := []struct {
			name, query, msg string
		}{
			{"bad date", "?station=rig&date=tomorrow", "Invalid date"},
			{"missing station", "", "Invalid station"},
			{"unknown station", "?station=boat", "Invalid station"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := httptest.PerformRequest(t, router, http.MethodGet, "/availability"+tc.query, nil, "")
				httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, tc.msg)
			})
		}
	})
}
