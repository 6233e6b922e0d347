// Package site serves the HTML dashboard and its static assets.
package site

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/pkg/logger"
)

// Error constants.
var (
	ErrRender = errors.New("dashboard render failed")
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// DashboardProvider runs one render pass.
type DashboardProvider interface {
	Dashboard(ctx context.Context) service.Dashboard
}

// FS returns an http.FileSystem rooted at the embedded static directory.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return http.FS(staticFS)
	}
	return http.FS(sub)
}

// Register attaches the dashboard page and the static assets to mux.
//
//	GET /dashboard  -> HTML page bound from one render pass
//	GET /static/... -> embedded assets (placeholder photo)
func Register(_ context.Context, mux *http.ServeMux, deps DashboardProvider) {
	if mux == nil {
		panic("mux is nil")
	}
	h := NewDashboardHandler(deps)
	mux.HandleFunc("/dashboard", h.HandleDashboard)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(FS())))
}

// DashboardHandler renders the HTML dashboard.
type DashboardHandler struct {
	deps DashboardProvider
	log  logger.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps DashboardProvider) *DashboardHandler {
	return &DashboardHandler{deps: deps, log: logger.Named("site")}
}

// HandleDashboard handles GET /dashboard requests.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	d := h.deps.Dashboard(r.Context())

	var buf bytes.Buffer
	if err := Render(&buf, d); err != nil {
		h.log.Error(r.Context(), "dashboard template failed", logger.String("render_id", d.RenderID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Render writes the dashboard page for d.
func Render(w io.Writer, d service.Dashboard) error {
	if err := dashboardTemplate.Execute(w, d); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}
