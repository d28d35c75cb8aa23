// Package session persists the client session as a pair of cookies: an
// opaque token and a JSON user snapshot. The pair is always written and
// purged together; a half-written pair reads as no session at all.
package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/muzads/muzads/internal/model"
)

const (
	// TokenCookie holds the opaque session token.
	TokenCookie = "muzads_auth_token"
	// UserCookie holds the base64-encoded JSON user snapshot.
	UserCookie = "muzads_user_data"

	maxAge = 30 * 24 * 60 * 60 // 30 days
)

var (
	// ErrNoSession means one or both cookies are absent.
	ErrNoSession = errors.New("no stored session")
	// ErrCorrupt means the user snapshot failed to decode.
	ErrCorrupt = errors.New("corrupt stored session")
)

// Record is the stored pair: token plus cached user snapshot.
type Record struct {
	Token string
	User  model.User
}

// Store reads and writes session cookies. Secure controls the cookie Secure
// flag; disable only for local development over plain HTTP.
type Store struct {
	Secure bool
}

// Read returns the stored session, ErrNoSession if either half is missing,
// or ErrCorrupt if the snapshot cannot be decoded.
func (s *Store) Read(r *http.Request) (*Record, error) {
	tc, err := r.Cookie(TokenCookie)
	if err != nil || tc.Value == "" {
		return nil, ErrNoSession
	}
	uc, err := r.Cookie(UserCookie)
	if err != nil || uc.Value == "" {
		return nil, ErrNoSession
	}

	raw, err := base64.URLEncoding.DecodeString(uc.Value)
	if err != nil {
		return nil, ErrCorrupt
	}
	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, ErrCorrupt
	}
	if user.Email == "" {
		return nil, ErrCorrupt
	}

	return &Record{Token: tc.Value, User: user}, nil
}

// Write stores the token and snapshot as a pair. A nil writer (no response
// to attach cookies to) makes this a no-op.
func (s *Store) Write(w http.ResponseWriter, rec Record) {
	if w == nil {
		return
	}
	http.SetCookie(w, s.cookie(TokenCookie, rec.Token, maxAge))
	http.SetCookie(w, s.cookie(UserCookie, encodeUser(rec.User), maxAge))
}

// WriteUser replaces only the user snapshot, used by background refresh. The
// token cookie is left untouched.
func (s *Store) WriteUser(w http.ResponseWriter, user model.User) {
	if w == nil {
		return
	}
	http.SetCookie(w, s.cookie(UserCookie, encodeUser(user), maxAge))
}

// Clear expires both cookies.
func (s *Store) Clear(w http.ResponseWriter) {
	if w == nil {
		return
	}
	http.SetCookie(w, s.cookie(TokenCookie, "", -1))
	http.SetCookie(w, s.cookie(UserCookie, "", -1))
}

func (s *Store) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func encodeUser(user model.User) string {
	raw, err := json.Marshal(user)
	if err != nil {
		// model.User has no unmarshalable fields; keep the pair invariant
		// by writing an empty snapshot that reads back as corrupt.
		return ""
	}
	return base64.URLEncoding.EncodeToString(raw)
}
