package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/domain/model"
)

// CardsDependencies defines the interface for player card listing.
type CardsDependencies interface {
	PlayerCards(ctx context.Context) ([]model.PlayerCard, []service.SkippedRecord)
}

// CardsHandler handles player card listing requests.
type CardsHandler struct {
	deps     CardsDependencies
	maxLimit int
}

// NewCardsHandler creates a new cards handler.
func NewCardsHandler(deps CardsDependencies, maxLimit int) *CardsHandler {
	return &CardsHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetCards handles GET /players/cards?limit=N requests. Without a
// limit every valid card is returned.
func (h *CardsHandler) HandleGetCards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request",
				fmt.Errorf("%w: limit must be a positive integer", ErrBadRequest))
			return
		}
		if h.maxLimit > 0 && n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded",
				fmt.Errorf("%w: limit must not exceed %d", ErrLimitExceeded, h.maxLimit))
			return
		}
		limit = n
	}

	got, skipped := h.deps.PlayerCards(r.Context())
	if limit > 0 && len(got) > limit {
		got = got[:limit]
	}
	if got == nil {
		got = []model.PlayerCard{}
	}
	if skipped == nil {
		skipped = []service.SkippedRecord{}
	}
	writeJSON(w, http.StatusOK, cardsResponse{Cards: got, Skipped: skipped})
}
