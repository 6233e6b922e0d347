package api

import (
	"context"
	"net/http"

	"github.com/okian/scoutboard/internal/domain/model"
)

// SummaryDependencies defines the interface for summary operations.
type SummaryDependencies interface {
	Summary(ctx context.Context) model.SummaryMetrics
	KPIs(ctx context.Context) []model.KPICard
}

// SummaryHandler handles summary requests.
type SummaryHandler struct {
	deps SummaryDependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps SummaryDependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// HandleGetSummary handles GET /summary requests.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	writeJSON(w, http.StatusOK, summaryResponse{
		Summary: h.deps.Summary(ctx),
		KPIs:    h.deps.KPIs(ctx),
	})
}
