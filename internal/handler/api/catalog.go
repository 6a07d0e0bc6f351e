package api

import (
	"net/http"

	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary Membership tiers
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.TierView
// @Router /api/tiers [get]
func (h *CatalogHandler) Tiers(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.ListTiers())
}

// @Summary Checkout configuration
// @Description Publishable key and price ids the frontend needs to open a checkout
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.StripeClientConfig
// @Router /stripe-config [get]
func (h *CatalogHandler) StripeConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.StripeConfig())
}
