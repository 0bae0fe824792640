package http

import (
	"log/slog"
	"net/http"

	"github.com/urlopy/urlopy-backend-go/internal/domain/dashboard"
	"github.com/urlopy/urlopy-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Get implements DashboardHandler. An unusable ?year= falls back to the
// latest year with data, so it never fails validation.
func (h *DashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDashboard(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		slog.Error("Get dashboard error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
