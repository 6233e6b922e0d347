package api

import (
	"context"
	"net/http"

	service "github.com/okian/scoutboard/internal/app"
)

// DashboardDependencies defines the interface for full render passes.
type DashboardDependencies interface {
	Dashboard(ctx context.Context) service.Dashboard
}

// DashboardHandler serves the dashboard descriptors as JSON.
type DashboardHandler struct {
	deps DashboardDependencies
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps DashboardDependencies) *DashboardHandler {
	return &DashboardHandler{deps: deps}
}

// HandleGetDashboard handles GET /dashboard.json requests.
func (h *DashboardHandler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Dashboard(r.Context()))
}
