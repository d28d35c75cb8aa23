package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/muzads/muzads/internal/auth"
)

// Renderer owns the parsed page templates. Each page is parsed together with
// the shared layout so pages can fill the layout's content block.
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

// NewRenderer parses every page template under dir against layout.html.
func NewRenderer(dir string, logger *slog.Logger) (*Renderer, error) {
	layout := filepath.Join(dir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		name := filepath.Base(page)
		if name == "layout.html" {
			continue
		}
		tmpl, err := template.ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		templates[name] = tmpl
	}

	return &Renderer{templates: templates, logger: logger}, nil
}

// Render writes a page wrapped in the layout with status 200.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	rd.RenderStatus(w, r, http.StatusOK, name, data)
}

// RenderStatus writes a page with an explicit HTTP status (form validation
// failures render at 422). The authenticated user and any pending flash
// message are injected alongside the page data.
func (rd *Renderer) RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	tmpl, ok := rd.templates[name]
	if !ok {
		rd.logger.Error("template not found", "name", name)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]any{}
	}
	data["User"] = auth.UserFromContext(r.Context())
	data["Year"] = time.Now().Year()
	if _, ok := data["ActiveNav"]; !ok {
		data["ActiveNav"] = ""
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = PopFlash(w, r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		rd.logger.Error("template render", "name", name, "error", err)
	}
}
