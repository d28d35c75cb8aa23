package handler

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookie = "muzads_flash"

// Flash is a one-shot notification rendered by the layout on the next page
// load, the server-side stand-in for the SPA's toasts.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// SetFlash queues a flash message for the next rendered page.
func SetFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending flash, if any, and clears it.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	kind, msg := "success", raw
	if i := strings.IndexByte(raw, '|'); i >= 0 {
		kind, msg = raw[:i], raw[i+1:]
	}
	return &Flash{Kind: kind, Message: msg}
}
