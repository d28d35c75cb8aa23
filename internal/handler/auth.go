package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/muzads/muzads/internal/api"
	"github.com/muzads/muzads/internal/auth"
)

// AuthHandler serves the sign-in and sign-up forms and drives the auth
// controller from form submissions.
type AuthHandler struct {
	renderer   *Renderer
	controller *auth.Controller
	logger     *slog.Logger
}

func NewAuthHandler(renderer *Renderer, controller *auth.Controller, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{renderer: renderer, controller: controller, logger: logger}
}

// LoginPage renders the sign-in form. Already-authenticated visitors go
// straight to the dashboard.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if auth.UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderer.Render(w, r, "login.html", map[string]any{
		"Title": "Sign in — Muzads",
	})
}

// Login handles the sign-in form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		h.renderer.RenderStatus(w, r, http.StatusBadRequest, "login.html", map[string]any{
			"Title": "Sign in — Muzads",
			"Error": "Email and password are required.",
			"Email": email,
		})
		return
	}

	if _, err := h.controller.Login(r.Context(), w, email, password); err != nil {
		status, msg := authFailure(err)
		h.logger.Warn("login failed", "email", email, "error", err)
		h.renderer.RenderStatus(w, r, status, "login.html", map[string]any{
			"Title": "Sign in — Muzads",
			"Error": msg,
			"Email": email,
		})
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// RegisterPage renders the sign-up form.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if auth.UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderer.Render(w, r, "register.html", map[string]any{
		"Title": "Create account — Muzads",
	})
}

// Register handles the sign-up form. Success chains into login, so the user
// lands on the dashboard already signed in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		h.renderer.RenderStatus(w, r, http.StatusBadRequest, "register.html", map[string]any{
			"Title": "Create account — Muzads",
			"Error": "Email and password are required.",
			"Email": email,
		})
		return
	}

	if _, err := h.controller.Register(r.Context(), w, email, password, ""); err != nil {
		status, msg := authFailure(err)
		h.logger.Warn("registration failed", "email", email, "error", err)
		h.renderer.RenderStatus(w, r, status, "register.html", map[string]any{
			"Title": "Create account — Muzads",
			"Error": msg,
			"Email": email,
		})
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout tears down the session and bounces to the sign-in page with a
// confirmation message. Always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.controller.Logout(w)
	SetFlash(w, "success", "You have been successfully logged out.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// authFailure maps a controller error to an HTTP status and user-visible
// message. Transport failures carry no status and render as 502.
func authFailure(err error) (int, string) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		return status, apiErr.Message
	}
	return http.StatusInternalServerError, "An unexpected error occurred. Please try again."
}
