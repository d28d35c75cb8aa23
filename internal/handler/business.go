package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/muzads/muzads/internal/api"
	"github.com/muzads/muzads/internal/auth"
	"github.com/muzads/muzads/internal/model"
)

// BusinessHandler serves the business-profile pages. All persistence is
// delegated to the backend API; this layer only validates the form boundary.
type BusinessHandler struct {
	renderer *Renderer
	backend  *api.Client
	logger   *slog.Logger
}

func NewBusinessHandler(renderer *Renderer, backend *api.Client, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{renderer: renderer, backend: backend, logger: logger}
}

// businessForm carries submitted values and per-field validation errors back
// into the template.
type businessForm struct {
	Name        string
	URL         string
	Description string
	Errors      map[string]string
}

func (f *businessForm) validate() bool {
	f.Errors = make(map[string]string)
	if len(strings.TrimSpace(f.Name)) < 2 {
		f.Errors["Name"] = "Business name must be at least 2 characters"
	}
	if !validURL(f.URL) {
		f.Errors["URL"] = "Please enter a valid URL (e.g., https://example.com)"
	}
	if len(strings.TrimSpace(f.Description)) < 10 {
		f.Errors["Description"] = "Description must be at least 10 characters"
	}
	return len(f.Errors) == 0
}

func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// AddPage renders the add-business form.
func (h *BusinessHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, "add_business.html", map[string]any{
		"Title":     "Add your business — Muzads",
		"ActiveNav": "add-business",
		"Form":      &businessForm{},
	})
}

// Add handles the add-business submission.
func (h *BusinessHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	form := &businessForm{
		Name:        r.FormValue("business_name"),
		URL:         r.FormValue("business_url"),
		Description: r.FormValue("business_description"),
	}

	if !form.validate() {
		h.renderer.RenderStatus(w, r, http.StatusUnprocessableEntity, "add_business.html", map[string]any{
			"Title":     "Add your business — Muzads",
			"ActiveNav": "add-business",
			"Form":      form,
		})
		return
	}

	_, err := h.backend.CreateBusiness(r.Context(), api.CreateBusinessRequest{
		UserID:      user.ID,
		Name:        strings.TrimSpace(form.Name),
		URL:         strings.TrimSpace(form.URL),
		Description: strings.TrimSpace(form.Description),
	})
	if err != nil {
		h.logger.Error("create business", "user", user.Email, "error", err)
		h.renderer.RenderStatus(w, r, backendStatus(err), "add_business.html", map[string]any{
			"Title":     "Add your business — Muzads",
			"ActiveNav": "add-business",
			"Form":      form,
			"Error":     backendMessage(err),
		})
		return
	}

	SetFlash(w, "success", strings.TrimSpace(form.Name)+" has been added to your profile.")
	http.Redirect(w, r, "/dashboard/businesses", http.StatusSeeOther)
}

// List renders the user's business profiles.
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	businesses, err := h.backend.Businesses(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("list businesses", "user", user.Email, "error", err)
		h.renderer.RenderStatus(w, r, backendStatus(err), "businesses.html", map[string]any{
			"Title":      "Your businesses — Muzads",
			"ActiveNav":  "businesses",
			"Businesses": []model.Business{},
			"Error":      backendMessage(err),
		})
		return
	}
	h.renderer.Render(w, r, "businesses.html", map[string]any{
		"Title":      "Your businesses — Muzads",
		"ActiveNav":  "businesses",
		"Businesses": businesses,
	})
}

// Delete removes one business profile and redirects back to the list.
func (h *BusinessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid business id", http.StatusBadRequest)
		return
	}

	if err := h.backend.DeleteBusiness(r.Context(), id); err != nil {
		h.logger.Error("delete business", "id", id, "error", err)
		SetFlash(w, "error", backendMessage(err))
	} else {
		SetFlash(w, "success", "Business removed.")
	}
	http.Redirect(w, r, "/dashboard/businesses", http.StatusSeeOther)
}

func backendStatus(err error) int {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

func backendMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}
