package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/muzads/muzads/internal/api"
	"github.com/muzads/muzads/internal/auth"
	"github.com/muzads/muzads/internal/model"
	"github.com/muzads/muzads/internal/session"
)

func testAuthHandler(t *testing.T, backendURL string) *AuthHandler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	controller := auth.NewController(api.NewClient(backendURL), &session.Store{}, logger)
	return NewAuthHandler(testRenderer(t), controller, logger)
}

func formRequest(path string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestLoginSuccessRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		default:
			json.NewEncoder(w).Encode(map[string]any{"id": 1, "email": "a@b.com", "is_verified": true})
		}
	}))
	defer srv.Close()

	h := testAuthHandler(t, srv.URL)
	rec := httptest.NewRecorder()
	h.Login(rec, formRequest("/login", url.Values{"email": {"a@b.com"}, "password": {"pw"}}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("location = %q", loc)
	}
}

func TestLoginMissingFields(t *testing.T) {
	h := testAuthHandler(t, "http://invalid.invalid")
	rec := httptest.NewRecorder()
	h.Login(rec, formRequest("/login", url.Values{"email": {"a@b.com"}}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email and password are required.") {
		t.Error("missing validation message")
	}
}

func TestLoginBackendRejectsRerenders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer srv.Close()

	h := testAuthHandler(t, srv.URL)
	rec := httptest.NewRecorder()
	h.Login(rec, formRequest("/login", url.Values{"email": {"a@b.com"}, "password": {"wrong"}}))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Invalid credentials") {
		t.Error("missing backend message")
	}
	// submitted email is preserved in the re-rendered form
	if !strings.Contains(body, `value="a@b.com"`) {
		t.Error("email not preserved in form")
	}
}

func TestLoginBackendUnreachableRendersBadGateway(t *testing.T) {
	h := testAuthHandler(t, "http://127.0.0.1:1")
	rec := httptest.NewRecorder()
	h.Login(rec, formRequest("/login", url.Values{"email": {"a@b.com"}, "password": {"pw"}}))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Network error. Please check your connection.") {
		t.Error("missing network error message")
	}
}

func TestLoginPageRedirectsAuthenticated(t *testing.T) {
	h := testAuthHandler(t, "http://invalid.invalid")
	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	r = r.WithContext(auth.WithUser(r.Context(), &model.User{ID: 1, Email: "a@b.com"}))

	rec := httptest.NewRecorder()
	h.LoginPage(rec, r)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("location = %q", loc)
	}
}

func TestRegisterSuccessRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/users" && r.Method == http.MethodPost:
			json.NewEncoder(w).Encode(map[string]any{"id": 2, "email": "new@x.com", "is_verified": false})
		case r.URL.Path == "/login":
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		default:
			json.NewEncoder(w).Encode(map[string]any{"id": 2, "email": "new@x.com", "is_verified": false})
		}
	}))
	defer srv.Close()

	h := testAuthHandler(t, srv.URL)
	rec := httptest.NewRecorder()
	h.Register(rec, formRequest("/register", url.Values{"email": {"new@x.com"}, "password": {"pw"}}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("location = %q", loc)
	}

	resp := http.Response{Header: rec.Header()}
	names := map[string]bool{}
	for _, c := range resp.Cookies() {
		names[c.Name] = true
	}
	if !names[session.TokenCookie] || !names[session.UserCookie] {
		t.Errorf("cookies = %v, want session pair", names)
	}
}

func TestRegisterValidationErrorRerenders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"detail":[{"loc":["body","password"],"msg":"too short"}]}`)
	}))
	defer srv.Close()

	h := testAuthHandler(t, srv.URL)
	rec := httptest.NewRecorder()
	h.Register(rec, formRequest("/register", url.Values{"email": {"a@b.com"}, "password": {"x"}}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "body.password: too short") {
		t.Error("missing flattened validation message")
	}
}

func TestLogout(t *testing.T) {
	h := testAuthHandler(t, "http://invalid.invalid")
	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("location = %q", loc)
	}

	resp := http.Response{Header: rec.Header()}
	var sessionCleared, flashSet int
	for _, c := range resp.Cookies() {
		switch c.Name {
		case session.TokenCookie, session.UserCookie:
			if c.MaxAge < 0 {
				sessionCleared++
			}
		case "muzads_flash":
			flashSet++
		}
	}
	if sessionCleared != 2 {
		t.Errorf("cleared %d session cookies, want 2", sessionCleared)
	}
	if flashSet != 1 {
		t.Error("expected logout flash cookie")
	}
}
