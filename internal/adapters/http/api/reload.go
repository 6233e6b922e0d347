package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	service "github.com/okian/scoutboard/internal/app"
)

// ReloadDependencies defines the interface for snapshot reloads.
type ReloadDependencies interface {
	Reload(ctx context.Context) error
}

// ReloadHandler handles reload requests.
type ReloadHandler struct {
	deps ReloadDependencies
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(deps ReloadDependencies) *ReloadHandler {
	return &ReloadHandler{deps: deps}
}

// HandleReload handles POST /reload requests.
func (h *ReloadHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	err := h.deps.Reload(r.Context())
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, ackResponse{Status: "reloaded"})
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "not_started", err)
	default:
		writeError(w, http.StatusInternalServerError, "reload_failed", fmt.Errorf("%w: %w", ErrReload, err))
	}
}
