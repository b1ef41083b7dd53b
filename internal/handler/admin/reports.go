package admin

import (
	"net/http"

	"github.com/ashkanani/agency/internal/handler"
	"github.com/ashkanani/agency/internal/service"
)

// ReportsHandler serves derived console statistics.
type ReportsHandler struct {
	dashboard *service.DashboardService
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(dashboard *service.DashboardService) *ReportsHandler {
	return &ReportsHandler{dashboard: dashboard}
}

// GetDashboardStats handles GET /api/dashboard.
func (h *ReportsHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, stats)
}
