package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aureus/internal/services"
)

// DashboardHandler serves the read-only projections behind the dashboard
// and the chart.
type DashboardHandler struct {
	ledger services.LedgerServicer
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(ledger services.LedgerServicer) *DashboardHandler {
	return &DashboardHandler{ledger: ledger}
}

// Summary returns current-month totals
// @Summary     Dashboard summary
// @Description Get the current-month total, entry count, filtered category total, and the per-category totals the chart consumes
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       category query string false "Exact category name filter for the category total"
// @Success     200 {object} services.DashboardSummary "Dashboard projection"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.ledger.Summary(c.Query("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
