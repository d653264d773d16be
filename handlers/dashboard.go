package handlers

import (
	"net/http"

	"agendly/services/reporting"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the store aggregates.
type DashboardHandler struct {
	Reporting reporting.ReportingService
}

func NewDashboardHandler(svc reporting.ReportingService) *DashboardHandler {
	return &DashboardHandler{Reporting: svc}
}

func (h *DashboardHandler) GetDashboardHandler(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}
	stats, err := h.Reporting.GetDashboard(c.Request.Context(), storeID)
	if err != nil {
		respondError(c, "load dashboard", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
