package handler

import (
	"log/slog"
	"net/http"

	"github.com/muzads/muzads/internal/model"
)

// DashboardHandler serves the authenticated dashboard shell: overview,
// campaign listing, and the creative library.
type DashboardHandler struct {
	renderer *Renderer
	logger   *slog.Logger
}

func NewDashboardHandler(renderer *Renderer, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{renderer: renderer, logger: logger}
}

// Overview renders the dashboard landing page.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	campaigns := model.Campaigns()
	recent := campaigns
	if len(recent) > 5 {
		recent = recent[:5]
	}
	h.renderer.Render(w, r, "dashboard.html", map[string]any{
		"Title":     "Dashboard — Muzads",
		"ActiveNav": "dashboard",
		"Recent":    recent,
	})
}

// Campaigns renders the campaign table, filtered by the search box via ?q=.
func (h *DashboardHandler) Campaigns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	h.renderer.Render(w, r, "campaigns.html", map[string]any{
		"Title":     "Campaigns — Muzads",
		"ActiveNav": "campaigns",
		"Query":     query,
		"Campaigns": model.FilterCampaigns(query),
	})
}

// Creative renders the creative library, optionally filtered by ?kind=.
func (h *DashboardHandler) Creative(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	switch kind {
	case model.CreativeImage, model.CreativeVideo, model.CreativeCopy:
	default:
		kind = ""
	}
	h.renderer.Render(w, r, "creative.html", map[string]any{
		"Title":     "Creative — Muzads",
		"ActiveNav": "creative",
		"Kind":      kind,
		"Creatives": model.Creatives(kind),
	})
}
