package api

import (
	"net/http"

	"venue-booking/internal/domain/credit"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/membership"
	"venue-booking/internal/domain/payment"
	"venue-booking/internal/domain/venue"
	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves staff routes; RequireAdmin guards the group.
type AdminHandler struct {
	bookings    queries.BookingQueries
	credits     commands.CreditCommands
	memberships commands.MembershipCommands
	schedule    venue.Schedule
	clock       clock.Clock
}

func NewAdminHandler(
	bookings queries.BookingQueries,
	credits commands.CreditCommands,
	memberships commands.MembershipCommands,
	schedule venue.Schedule,
	clock clock.Clock,
) *AdminHandler {
	return &AdminHandler{
		bookings:    bookings,
		credits:     credits,
		memberships: memberships,
		schedule:    schedule,
		clock:       clock,
	}
}

// @Summary Day sheet
// @Description Every booking on one venue date, cancelled ones included
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string true "Venue date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/bookings [get]
func (h *AdminHandler) DayBookings(c *gin.Context) {
	date, err := h.schedule.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	views, err := h.bookings.ListBookingsByDate(c.Request.Context(), date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Adjust credits
// @Description Add to one credit balance of a user, or move it to an exact value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.AdjustCreditsRequest true "Adjustment"
// @Success 200 {object} resdto.AdjustCreditsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id}/credits [post]
func (h *AdminHandler) AdjustCredits(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.AdjustCreditsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	t, err := equipment.NewType(req.Type)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid credit type", nil)
		return
	}

	var balance int
	if req.Mode == reqdto.CreditModeSet {
		balance, err = h.credits.CorrectCredits(c.Request.Context(), userID, t, req.Amount, credit.SourceAdmin)
	} else {
		balance, err = h.credits.AddCredits(c.Request.Context(), userID, t, req.Amount, credit.SourceAdmin)
	}
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AdjustCreditsResponse{
		UserID:  userID.String(),
		Type:    t.String(),
		Mode:    req.Mode,
		Balance: balance,
	})
}

// @Summary Grant membership
// @Description Activate or update a user's membership for the tier's equipment type
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.ActivateMembershipRequest true "Grant"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id}/memberships [put]
func (h *AdminHandler) ActivateMembership(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ActivateMembershipRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	periodEnd := payment.DefaultPeriodEnd(h.clock.Now())
	if req.PeriodEnd != "" {
		if periodEnd, err = h.schedule.ParseDate(req.PeriodEnd); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid period_end", nil)
			return
		}
	}

	err = h.memberships.ActivateOrUpdate(c.Request.Context(), userID, membership.TierID(req.TierID), req.SubscriptionRef, periodEnd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Revoke membership
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param type path string true "Equipment type"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id}/memberships/{type} [delete]
func (h *AdminHandler) DeactivateMembership(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	t, err := equipment.NewType(c.Param("type"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid membership type", nil)
		return
	}
	if err := h.memberships.Deactivate(c.Request.Context(), userID, t); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
