package api

import (
	"net/http"
	"strconv"

	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	q queries.AccountQueries
}

func NewAccountHandler(q queries.AccountQueries) *AccountHandler {
	return &AccountHandler{q: q}
}

// @Summary My credit balances
// @Description Balance per equipment type; missing types read as zero
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CreditsResponse
// @Router /api/me/credits [get]
func (h *AccountHandler) Credits(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	balances, err := h.q.GetBalances(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalances(balances))
}

// @Summary My credit history
// @Tags account
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} resdto.CreditHistoryResponse
// @Router /api/me/credits/history [get]
func (h *AccountHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := h.q.ListHistory(c.Request.Context(), userID, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCreditHistory(items))
}

// @Summary My memberships
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MembershipResponse
// @Router /api/me/memberships [get]
func (h *AccountHandler) Memberships(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	items, err := h.q.ListMemberships(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMemberships(items))
}
