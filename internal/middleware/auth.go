package middleware

import (
	"net/http"

	"github.com/muzads/muzads/internal/auth"
)

// SessionGuard hydrates the session on every request and enforces the
// public-route allow-list. Authenticated users are injected into the request
// context. Private paths reconcile the cached snapshot against the backend
// before the handler runs, so a refreshed snapshot cookie can still be set;
// reconcile failures are tolerated and the stale user is kept.
func SessionGuard(controller *auth.Controller) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := controller.Hydrate(w, r)

			if user == nil {
				if !auth.PublicRoute(r.URL.Path) {
					http.Redirect(w, r, "/login", http.StatusSeeOther)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if !auth.PublicRoute(r.URL.Path) {
				user = controller.Reconcile(r.Context(), w, user)
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}
