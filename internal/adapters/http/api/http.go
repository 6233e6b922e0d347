// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/domain/model"
)

// Dependencies required by HTTP handlers. Each handler narrows this to the
// methods it calls.
type Dependencies interface {
	SummaryDependencies
	CardsDependencies
	PlayerCardDependencies
	DashboardDependencies
	ReloadDependencies
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	summaryHandler    *SummaryHandler
	cardsHandler      *CardsHandler
	playerCardHandler *PlayerCardHandler
	dashboardHandler  *DashboardHandler
	reloadHandler     *ReloadHandler
}

// NewServer creates a new API server with all handlers. maxLimit bounds the
// limit query parameter of /players/cards; 0 disables the bound.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		summaryHandler:    NewSummaryHandler(deps),
		cardsHandler:      NewCardsHandler(deps, maxLimit),
		playerCardHandler: NewPlayerCardHandler(deps),
		dashboardHandler:  NewDashboardHandler(deps),
		reloadHandler:     NewReloadHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/players/cards", MetricsMiddleware(s.cardsHandler.HandleGetCards, "player_cards"))
	mux.HandleFunc("/players/{id}/card", MetricsMiddleware(s.playerCardHandler.HandleGetPlayerCard, "player_card"))
	mux.HandleFunc("/dashboard.json", MetricsMiddleware(s.dashboardHandler.HandleGetDashboard, "dashboard_json"))
	mux.HandleFunc("/reload", MetricsMiddleware(s.reloadHandler.HandleReload, "reload"))
}

type summaryResponse struct {
	Summary model.SummaryMetrics `json:"summary"`
	KPIs    []model.KPICard      `json:"kpis"`
}

type cardsResponse struct {
	Cards   []model.PlayerCard      `json:"cards"`
	Skipped []service.SkippedRecord `json:"skipped"`
}

type ackResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, service.ErrNotFound)
}

// isInvalidRecord translates record validation errors to 422.
func isInvalidRecord(err error) bool {
	return errors.Is(err, model.ErrInvalidRecord)
}
