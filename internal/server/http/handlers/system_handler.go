package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
	"github.com/polkiloo/gpsolutions/internal/pricing"
	"github.com/polkiloo/gpsolutions/internal/server/http/dto"
)

// SystemHandler serves catalog, analytics and health endpoints.
type SystemHandler struct {
	facade SystemFacade
}

// NewSystemHandler constructs SystemHandler.
func NewSystemHandler(facade SystemFacade) *SystemHandler {
	return &SystemHandler{facade: facade}
}

// Catalog handles GET /api/catalog.
func (h *SystemHandler) Catalog(c *gin.Context) {
	catalog := h.facade.Catalog()
	resp := dto.CatalogResponse{ProjectTypes: catalog.ProjectTypes, Topics: catalog.Topics}
	if resp.ProjectTypes == nil {
		resp.ProjectTypes = []string{}
	}
	if resp.Topics == nil {
		resp.Topics = []string{}
	}
	c.JSON(http.StatusOK, resp)
}

// Sales handles GET /api/admin/analytics/sales.
func (h *SystemHandler) Sales(c *gin.Context) {
	period, err := model.ParseSalesPeriod(c.Query("period"))
	if err != nil {
		writeError(c, err)
		return
	}

	buckets, err := h.facade.Sales(c.Request.Context(), period)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.SalesBucket, 0, len(buckets))
	for _, b := range buckets {
		resp = append(resp, dto.SalesBucket{
			Date:         b.Date,
			Amount:       b.Count,
			TotalRevenue: pricing.CentsToAmount(b.RevenueCents),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Health handles GET /healthz.
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.facade.Health(c.Request.Context()); err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusServiceUnavailable, "unavailable")
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
