//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venue-booking/internal/domain/credit"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/membership"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/handler/api"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/validation"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/authtest"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/httptest"
	commandsmock "venue-booking/tests/mock/commands"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockBookings    *queriesmock.MockBookingQueries
	mockCredits     *commandsmock.MockCreditCommands
	mockMemberships *commandsmock.MockMembershipCommands
	clock           *clock.MockClock
	userID          uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.RegisterGin())
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCredits = commandsmock.NewMockCreditCommands(s.mockCtrl)
	s.mockMemberships = commandsmock.NewMockMembershipCommands(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	s.userID = uuid.New()

	h := api.NewAdminHandler(s.mockBookings, s.mockCredits, s.mockMemberships,
		venue.NewSchedule(time.UTC, 10, 22), s.clock)
	s.router = gin.New()
	g := s.router.Group("/admin", authtest.AsActor(uuid.New(), user.RoleAdmin))
	g.GET("/bookings", h.DayBookings)
	g.POST("/users/:id/credits", h.AdjustCredits)
	g.PUT("/users/:id/memberships", h.ActivateMembership)
	g.DELETE("/users/:id/memberships/:type", h.DeactivateMembership)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestDayBookings() {
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns the day sheet including cancellations", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithDate(date).BuildView(),
			builder.NewBookingBuilder().WithDate(date).AsCancelled().BuildView(),
		}
		s.mockBookings.EXPECT().ListBookingsByDate(gomock.Any(), date).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?date=2026-03-12", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 400 without a date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

func (s *AdminHandlerTestSuite) TestAdjustCredits() {
	url := "/admin/users/" + s.userID.String() + "/credits"

	s.Run("success: add mode increments the balance", func() {
		s.mockCredits.EXPECT().AddCredits(gomock.Any(), s.userID, equipment.Kart, 5, credit.SourceAdmin).Return(12, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"type": "kart", "amount": 5, "mode": "add"}, "")

		var response resdto.AdjustCreditsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.AdjustCreditsResponse{UserID: s.userID.String(), Type: "kart", Mode: "add", Balance: 12}, response)
	})

	s.Run("success: set mode corrects the balance without a renewal reset", func() {
		s.mockCredits.EXPECT().CorrectCredits(gomock.Any(), s.userID, equipment.Motion, 0, credit.SourceAdmin).Return(0, nil)
		s.mockCredits.EXPECT().SetCredits(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"type": "motion", "amount": 0, "mode": "set"}, "")

		var response resdto.AdjustCreditsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(0, response.Balance)
		s.Equal("set", response.Mode)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{"unknown type", map[string]any{"type": "boat", "amount": 1, "mode": "add"}},
			{"negative amount", map[string]any{"type": "kart", "amount": -1, "mode": "add"}},
			{"unknown mode", map[string]any{"type": "kart", "amount": 1, "mode": "double"}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 404 when the user does not exist", func() {
		s.mockCredits.EXPECT().AddCredits(gomock.Any(), s.userID, equipment.Rig, 1, credit.SourceAdmin).
			Return(0, errs.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"type": "rig", "amount": 1, "mode": "add"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *AdminHandlerTestSuite) TestMemberships() {
	url := "/admin/users/" + s.userID.String() + "/memberships"

	s.Run("success: period defaults to one month from now", func() {
		s.mockMemberships.EXPECT().
			ActivateOrUpdate(gomock.Any(), s.userID, membership.TierID("kart-pro"), "comp-2026-03", time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tier_id": "kart-pro", "subscription_ref": "comp-2026-03"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: explicit period end is a venue date", func() {
		s.mockMemberships.EXPECT().
			ActivateOrUpdate(gomock.Any(), s.userID, membership.TierID("rig-pro"), "sub_9", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)).
			Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"tier_id": "rig-pro", "subscription_ref": "sub_9", "period_end": "2026-06-01"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 on an unknown tier", func() {
		s.mockMemberships.EXPECT().ActivateOrUpdate(gomock.Any(), s.userID, membership.TierID("gold"), "comp-1", gomock.Any()).
			Return(errs.ErrTierNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tier_id": "gold", "subscription_ref": "comp-1"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Membership tier not found")
	})

	s.Run("error: 400 without a subscription reference", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"tier_id": "kart-pro"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("success: deactivate by equipment type", func() {
		s.mockMemberships.EXPECT().Deactivate(gomock.Any(), s.userID, equipment.Kart).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"/kart", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on an unknown membership type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"/boat", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid membership type")
	})
}
