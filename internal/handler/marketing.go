package handler

import (
	"log/slog"
	"net/http"
)

// MarketingHandler serves the public landing pages.
type MarketingHandler struct {
	renderer *Renderer
	logger   *slog.Logger
}

func NewMarketingHandler(renderer *Renderer, logger *slog.Logger) *MarketingHandler {
	return &MarketingHandler{renderer: renderer, logger: logger}
}

// pricing plans shown on the landing page. Static marketing copy; there is
// no checkout behind the buttons yet.
type plan struct {
	Name         string
	MonthlyPrice int // 0 means custom pricing
	Description  string
	Features     []string
	Popular      bool
}

var plans = []plan{
	{
		Name:         "Starter",
		MonthlyPrice: 29,
		Description:  "Perfect for getting started",
		Features:     []string{"50 content pieces/month", "Basic brand learning", "2 platforms", "Email support"},
	},
	{
		Name:         "Pro",
		MonthlyPrice: 79,
		Description:  "For serious content creators",
		Features:     []string{"Unlimited content pieces", "Advanced brand DNA", "All platforms", "Priority support", "Custom templates", "Team collaboration"},
		Popular:      true,
	},
	{
		Name:        "Enterprise",
		Description: "For large teams & agencies",
		Features:    []string{"Everything in Pro", "Dedicated account manager", "Custom integrations", "SLA guarantee", "White-label options", "API access"},
	},
}

type stat struct {
	Value string
	Label string
}

var stats = []stat{
	{"10M+", "various content assets processed"},
	{"19,000+", "high-performing ads analyzed"},
	{"27%", "average CTR lift across campaigns"},
	{"95+", "languages supported for global brands"},
}

var businessTypes = []string{"Digital products", "Agencies", "SaaS", "Mobile apps", "Services"}

// Home renders the landing page: hero, stats, business-type showcase,
// brand-DNA and keyword sections, pricing.
func (h *MarketingHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.renderer.Render(w, r, "index.html", map[string]any{
		"Title":         "Muzads — AI advertising content that sounds like you",
		"ActiveNav":     "home",
		"Plans":         plans,
		"Stats":         stats,
		"BusinessTypes": businessTypes,
	})
}

// About renders the about page.
func (h *MarketingHandler) About(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "about.html", map[string]any{
		"Title":     "About — Muzads",
		"ActiveNav": "about",
	})
}

// FAQ renders the FAQ page.
func (h *MarketingHandler) FAQ(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "faq.html", map[string]any{
		"Title":     "FAQ — Muzads",
		"ActiveNav": "faq",
	})
}
