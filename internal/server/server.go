package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/muzads/muzads/internal/api"
	"github.com/muzads/muzads/internal/auth"
	"github.com/muzads/muzads/internal/config"
	"github.com/muzads/muzads/internal/handler"
	"github.com/muzads/muzads/internal/metrics"
	"github.com/muzads/muzads/internal/middleware"
	"github.com/muzads/muzads/internal/session"
	"github.com/muzads/muzads/internal/store"
	"github.com/muzads/muzads/internal/websocket"
)

const (
	loginLimit    = 10
	loginInterval = time.Minute
)

// Server wires the application together: backend client, auth controller,
// handlers, websocket hub, and background workers.
type Server struct {
	cfg        config.Config
	controller *auth.Controller
	hub        *websocket.Hub
	ticker     *metrics.Ticker
	limiter    *middleware.RateLimiter

	marketingH *handler.MarketingHandler
	blogH      *handler.BlogHandler
	authH      *handler.AuthHandler
	dashboardH *handler.DashboardHandler
	businessH  *handler.BusinessHandler

	logger *slog.Logger
}

// New builds a Server from configuration and an open content database.
func New(cfg config.Config, db *sql.DB, logger *slog.Logger) (*Server, error) {
	renderer, err := handler.NewRenderer(cfg.TemplateDir, logger.With("component", "render"))
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	backend := api.NewClient(cfg.APIBaseURL)
	sessions := &session.Store{Secure: cfg.CookieSecure}
	controller := auth.NewController(backend, sessions, logger.With("component", "auth"))

	content := store.NewContentStore(db)
	hub := websocket.NewHub(logger.With("component", "websocket"))

	return &Server{
		cfg:        cfg,
		controller: controller,
		hub:        hub,
		ticker:     metrics.NewTicker(hub, cfg.MetricsInterval, logger.With("component", "metrics")),
		limiter:    middleware.NewRateLimiter(),
		marketingH: handler.NewMarketingHandler(renderer, logger.With("component", "marketing")),
		blogH:      handler.NewBlogHandler(renderer, content, logger.With("component", "blog")),
		authH:      handler.NewAuthHandler(renderer, controller, logger.With("component", "auth_handler")),
		dashboardH: handler.NewDashboardHandler(renderer, logger.With("component", "dashboard")),
		businessH:  handler.NewBusinessHandler(renderer, backend, logger.With("component", "business")),
		logger:     logger,
	}, nil
}

// Run starts the background workers and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	go s.ticker.Run(ctx)

	cleanup := time.NewTicker(10 * time.Minute)
	defer cleanup.Stop()
	for {
		select {
		case <-cleanup.C:
			s.limiter.Cleanup()
		case <-ctx.Done():
			return
		}
	}
}

// Router assembles the full handler chain. The session guard runs on every
// request; it redirects anonymous visitors off private paths, so handlers
// under /dashboard can assume an authenticated user in context.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Marketing site
	mux.HandleFunc("GET /", s.marketingH.Home)
	mux.HandleFunc("GET /about", s.marketingH.About)
	mux.HandleFunc("GET /faq", s.marketingH.FAQ)
	mux.HandleFunc("GET /blog", s.blogH.Index)
	mux.HandleFunc("GET /blog/{slug}", s.blogH.Post)
	mux.HandleFunc("GET /use-cases", s.blogH.UseCases)
	mux.HandleFunc("GET /use-cases/{slug}", s.blogH.UseCase)

	// Auth
	mux.HandleFunc("GET /login", s.authH.LoginPage)
	mux.HandleFunc("POST /login", middleware.LimitByIP(s.limiter, loginLimit, loginInterval, s.authH.Login))
	mux.HandleFunc("GET /register", s.authH.RegisterPage)
	mux.HandleFunc("POST /register", middleware.LimitByIP(s.limiter, loginLimit, loginInterval, s.authH.Register))
	mux.HandleFunc("POST /logout", s.authH.Logout)

	// Dashboard
	mux.HandleFunc("GET /dashboard", s.dashboardH.Overview)
	mux.HandleFunc("GET /dashboard/campaigns", s.dashboardH.Campaigns)
	mux.HandleFunc("GET /dashboard/creative", s.dashboardH.Creative)
	mux.HandleFunc("GET /dashboard/add-business", s.businessH.AddPage)
	mux.HandleFunc("POST /dashboard/add-business", s.businessH.Add)
	mux.HandleFunc("GET /dashboard/businesses", s.businessH.List)
	mux.HandleFunc("POST /dashboard/businesses/{id}/delete", s.businessH.Delete)
	mux.Handle("GET /dashboard/ws", websocket.Handler(s.hub))

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir))))
	mux.HandleFunc("GET /health", s.health)

	guarded := middleware.SessionGuard(s.controller)(mux)
	return middleware.RequestLogger(s.logger.With("component", "http"))(guarded)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"clients": s.hub.ClientCount(),
	})
}
