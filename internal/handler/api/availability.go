package api

import (
	"net/http"

	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/venue"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q        queries.AvailabilityQueries
	schedule venue.Schedule
	clock    clock.Clock
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, schedule venue.Schedule, clock clock.Clock) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, schedule: schedule, clock: clock}
}

// @Summary Slot availability
// @Description Per-hour free units for one station on one venue date. Defaults to today.
// @Tags availability
// @Produce json
// @Param date query string false "Venue date (YYYY-MM-DD)"
// @Param station query string true "Station"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	date := h.schedule.Today(h.clock.Now())
	if raw := c.Query("date"); raw != "" {
		parsed, err := h.schedule.ParseDate(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
			return
		}
		date = parsed
	}
	station, err := equipment.NewStation(c.Query("station"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid station", nil)
		return
	}

	day, err := h.q.GetAvailability(c.Request.Context(), date, station)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityDay(day))
}
