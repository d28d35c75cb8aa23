package handler

import (
	"log/slog"
	"net/http"

	"github.com/muzads/muzads/internal/store"
)

// BlogHandler serves the editorial pages: blog posts and use cases.
type BlogHandler struct {
	renderer *Renderer
	content  *store.ContentStore
	logger   *slog.Logger
}

func NewBlogHandler(renderer *Renderer, content *store.ContentStore, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{renderer: renderer, content: content, logger: logger}
}

// Index lists all posts, newest first.
func (h *BlogHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.content.Posts()
	if err != nil {
		h.logger.Error("list posts", "error", err)
		http.Error(w, "failed to load posts", http.StatusInternalServerError)
		return
	}
	h.renderer.Render(w, r, "blog_index.html", map[string]any{
		"Title":     "Blog — Muzads",
		"ActiveNav": "blog",
		"Posts":     posts,
	})
}

// Post renders one post by slug.
func (h *BlogHandler) Post(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	post, err := h.content.PostBySlug(slug)
	if err != nil {
		h.logger.Error("get post", "slug", slug, "error", err)
		http.Error(w, "failed to load post", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}
	h.renderer.Render(w, r, "blog_post.html", map[string]any{
		"Title":     post.Title + " — Muzads",
		"ActiveNav": "blog",
		"Post":      post,
	})
}

// UseCases lists every use-case page.
func (h *BlogHandler) UseCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.content.UseCases()
	if err != nil {
		h.logger.Error("list use cases", "error", err)
		http.Error(w, "failed to load use cases", http.StatusInternalServerError)
		return
	}
	h.renderer.Render(w, r, "use_cases.html", map[string]any{
		"Title":     "Use cases — Muzads",
		"ActiveNav": "use-cases",
		"Cases":     cases,
	})
}

// UseCase renders one use-case page by slug.
func (h *BlogHandler) UseCase(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	uc, err := h.content.UseCaseBySlug(slug)
	if err != nil {
		h.logger.Error("get use case", "slug", slug, "error", err)
		http.Error(w, "failed to load use case", http.StatusInternalServerError)
		return
	}
	if uc == nil {
		http.NotFound(w, r)
		return
	}
	h.renderer.Render(w, r, "use_case.html", map[string]any{
		"Title":     uc.Title + " — Muzads",
		"ActiveNav": "use-cases",
		"Case":      uc,
	})
}
