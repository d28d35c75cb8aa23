package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "a@b.com" || body["password"] != "x" {
			t.Errorf("body = %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !resp.Success {
		t.Error("expected success")
	}
}

func TestLoginBackendRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "a@b.com", "wrong")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.Message != "Invalid credentials" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", apiErr.StatusCode)
	}
}

func TestLoginNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "a@b.com", "x")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.StatusCode != 0 {
		t.Errorf("status = %d, want 0 for transport failure", apiErr.StatusCode)
	}
	if apiErr.Message != errNetwork {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestLoginNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>upstream error</html>")
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "a@b.com", "x")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 0 {
		t.Errorf("status = %d, want 0 for unparseable body", apiErr.StatusCode)
	}
}

func TestRegisterDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["verification_otp"] != DefaultOTP {
			t.Errorf("verification_otp = %v, want %q", body["verification_otp"], DefaultOTP)
		}
		if body["is_verified"] != false {
			t.Errorf("is_verified = %v, want false", body["is_verified"])
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 2, "email": "new@x.com", "verification_otp": DefaultOTP, "is_verified": false})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Register(context.Background(), RegisterRequest{Email: "new@x.com", Password: "p"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.ID != 2 {
		t.Errorf("id = %d, want 2", resp.ID)
	}
}

func TestRegisterValidationDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"detail":[{"loc":["body","email"],"msg":"invalid format"}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Register(context.Background(), RegisterRequest{Email: "bad", Password: "p"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "body.email: invalid format" {
		t.Errorf("message = %q, want %q", apiErr.Message, "body.email: invalid format")
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", apiErr.StatusCode)
	}
}

func TestRegisterDetailString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"detail":"email already registered"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Register(context.Background(), RegisterRequest{Email: "dup@x.com", Password: "p"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "email already registered" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestUserByEmailEscapesPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "email": "a+b@c.com", "is_verified": true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.UserByEmail(context.Background(), "a+b@c.com")
	if err != nil {
		t.Fatalf("user by email: %v", err)
	}
	if gotPath != "/users/a+b@c.com" && gotPath != "/users/a%2Bb%40c.com" {
		t.Errorf("path = %q", gotPath)
	}
	if !resp.IsVerified {
		t.Error("expected verified user")
	}
	user := resp.User()
	if user.ID != 1 || user.Email != "a+b@c.com" {
		t.Errorf("user = %+v", user)
	}
}

func TestBusinessLifecycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/businesses":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["business_name"] != "Acme" {
				t.Errorf("business_name = %v", body["business_name"])
			}
			json.NewEncoder(w).Encode(map[string]any{"id": 7, "user_id": 1, "business_name": "Acme"})
		case r.Method == http.MethodGet && r.URL.Path == "/businesses":
			if r.URL.Query().Get("user") != "1" {
				t.Errorf("user query = %q", r.URL.Query().Get("user"))
			}
			io.WriteString(w, `[{"id":7,"user_id":1,"business_name":"Acme"}]`)
		case r.Method == http.MethodDelete && r.URL.Path == "/businesses/7":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	created, err := c.CreateBusiness(ctx, CreateBusinessRequest{UserID: 1, Name: "Acme", URL: "https://acme.io", Description: "We make everything."})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("id = %d, want 7", created.ID)
	}

	list, err := c.Businesses(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Acme" {
		t.Errorf("list = %+v", list)
	}

	if err := c.DeleteBusiness(ctx, 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
