package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/scoutboard/internal/domain/model"
)

// PlayerCardDependencies defines the interface for single card lookups.
type PlayerCardDependencies interface {
	PlayerCard(ctx context.Context, id string) (model.PlayerCard, error)
}

// PlayerCardHandler handles single player card requests.
type PlayerCardHandler struct {
	deps PlayerCardDependencies
}

// NewPlayerCardHandler creates a new player card handler.
func NewPlayerCardHandler(deps PlayerCardDependencies) *PlayerCardHandler {
	return &PlayerCardHandler{deps: deps}
}

// HandleGetPlayerCard handles GET /players/{id}/card requests.
func (h *PlayerCardHandler) HandleGetPlayerCard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player_card"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: missing player id", ErrBadRequest))
		return
	}
	card, err := h.deps.PlayerCard(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, card)
	case isNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", err)
	case isInvalidRecord(err):
		writeError(w, http.StatusUnprocessableEntity, "invalid_record", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", fmt.Errorf("%s: %w", op, err))
	}
}
