//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/api"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/validation"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/authtest"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/common/testutil"
	commandsmock "venue-booking/tests/mock/commands"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.RegisterGin())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.router = gin.New()
	g := s.router.Group("/bookings", authtest.AsActor(s.userID, user.RoleCustomer))
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("/:id/cancel", h.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder().WithUser(s.userID)
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created with the stored booking", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), reqBody, s.userID, user.RoleCustomer, (*uuid.UUID)(nil)).
			Return(&commands.CreateBookingResult{BookingID: view.ID}, nil)
		s.mockQueries.EXPECT().GetBookingSystem(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID.String(), response.ID)
		s.Equal("kart", response.Station)
		s.Equal(2, response.CreditsConsumed)
		s.Equal("Dana Driver", response.Contact.Name)
		s.Empty(rec.Header().Get(api.IdempotentReplayedHeader))
	})

	s.Run("success: a replayed key is flagged in the header", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), reqBody, s.userID, user.RoleCustomer, &key).
			Return(&commands.CreateBookingResult{BookingID: view.ID, IsReplayed: true}, nil)
		s.mockQueries.EXPECT().GetBookingSystem(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{api.IdempotencyKeyHeader: key.String()})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.IdempotentReplayedHeader: "true"})
	})

	s.Run("error: 400 on a malformed Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{api.IdempotencyKeyHeader: "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "unknown station", mutate: testutil.Field("station", "boat")},
			{name: "off-hour time", mutate: testutil.Field("time", "14:30")},
			{name: "bad date", mutate: testutil.Field("date", "30/01/2026")},
			{name: "unknown payment method", mutate: testutil.Field("payment_method", "cash")},
			{name: "zero drivers", mutate: testutil.Field("drivers", 0)},
			{name: "four hours", mutate: testutil.Field("hours", 4)},
			{name: "missing contact", mutate: testutil.Field("contact", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"insufficient credits", errs.Mark(errs.New("short"), errs.ErrInsufficientCredits), http.StatusPaymentRequired, "Not enough credits"},
			{"capacity", errs.Mark(errs.New("full"), errs.ErrCapacityExceeded), http.StatusConflict, "no longer has enough free units"},
			{"key reused", errs.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency-Key was already used"},
			{"in progress", errs.ErrIdempotencyInProgress, http.StatusConflict, "still being processed"},
			{"pay at venue", errs.ErrPayAtVenueForbidden, http.StatusForbidden, "Only staff"},
			{"slot started", errs.Mark(errs.New("late"), errs.ErrBookingInPast), http.StatusBadRequest, "already passed"},
			{"database", errs.Mark(errs.New("conn reset"), errs.ErrDatabaseOperationFailed), http.StatusServiceUnavailable, "temporarily unavailable"},
			{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateBooking(gomock.Any(), reqBody, s.userID, user.RoleCustomer, (*uuid.UUID)(nil)).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCreate_PaidUpfront() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().WithUser(s.userID).
		WithPayment(booking.TagPayPalFull, "PAYID-7XK2").BuildCreateRequestDTO()

	s.Run("failure after capture points the user at support with the transaction id", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			reason         string
		}{
			{"capacity", errs.Mark(errs.New("full"), errs.ErrCapacityExceeded), http.StatusConflict, "no longer has enough free units"},
			{"database", errs.Mark(errs.New("conn reset"), errs.ErrDatabaseOperationFailed), http.StatusServiceUnavailable, "temporarily unavailable"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateBooking(gomock.Any(), reqBody, s.userID, user.RoleCustomer, (*uuid.UUID)(nil)).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus,
					"Payment successful but booking failed to save. Contact support with transaction ID PAYID-7XK2")
				var body struct {
					Detail httperr.PaidFailureDetail `json:"detail"`
				}
				s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
				s.Equal("PAYID-7XK2", body.Detail.TransactionID)
				s.Contains(body.Detail.Reason, tc.reason)
			})
		}
	})

	s.Run("a request still in flight keeps the retry message", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), reqBody, s.userID, user.RoleCustomer, (*uuid.UUID)(nil)).
			Return(nil, errs.ErrIdempotencyInProgress)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "still being processed")
	})

	s.Run("credits bookings keep the plain message", func() {
		credits := builder.NewBookingBuilder().WithUser(s.userID).BuildCreateRequestDTO()
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), credits, s.userID, user.RoleCustomer, (*uuid.UUID)(nil)).
			Return(nil, errs.Mark(errs.New("full"), errs.ErrCapacityExceeded))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, credits, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "This time slot no longer has enough free units")
	})
}

func (s *BookingHandlerTestSuite) TestListAndGet() {
	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithUser(s.userID).BuildView(),
		builder.NewBookingBuilder().WithUser(s.userID).AsCancelled().BuildView(),
	}

	s.Run("success: lists own bookings with the requested limit", func() {
		s.mockQueries.EXPECT().ListMyBookings(gomock.Any(), s.userID, 5).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=5", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("cancelled", response[1].Status)
	})

	s.Run("success: get returns one booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), views[0].ID, s.userID, user.RoleCustomer).Return(views[0], nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+views[0].ID.String(), nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: someone else's booking is not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id, s.userID, user.RoleCustomer).Return(nil, errs.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: reports the policy and refunded credits", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.userID, user.RoleCustomer).
			Return(&commands.CancelBookingResult{
				BookingID: id,
				Policy:    booking.PolicyFullRefund,
				Credits:   map[equipment.Type]int{equipment.Kart: 2},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("full_refund", response.Policy)
		s.Equal(map[string]int{"kart": 2}, response.Credits)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{"not found", errs.ErrBookingNotFound, http.StatusNotFound},
			{"forbidden", errs.ErrBookingForbidden, http.StatusForbidden},
			{"already cancelled", errs.ErrBookingAlreadyCancelled, http.StatusConflict},
			{"in the past", errs.ErrBookingInPast, http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.userID, user.RoleCustomer).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
