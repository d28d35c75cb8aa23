package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/muzads/muzads/internal/model"
)

// DefaultBaseURL is the production ads backend.
const DefaultBaseURL = "https://adsbackend-ruddy.vercel.app"

// DefaultOTP is sent on registration when the caller supplies no code; the
// backend requires the field even for unverified signups.
const DefaultOTP = "123456"

// Client talks to the ads backend REST API. Every operation either returns a
// parsed success body or a *APIError; it never returns an error-shaped body.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// NewClient creates a backend client. An empty baseURL selects production.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoginResponse is the body of POST /login. The backend does not issue a
// session token; the token_type field is informational only.
type LoginResponse struct {
	Success   bool   `json:"success"`
	TokenType string `json:"token_type,omitempty"`
	Message   string `json:"message"`
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	VerificationOTP string `json:"verification_otp"`
	IsVerified      bool   `json:"is_verified"`
}

// UserResponse is the user resource returned by POST /users and GET /users/{email}.
type UserResponse struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	VerificationOTP string `json:"verification_otp"`
	IsVerified      bool   `json:"is_verified"`
}

// User converts the wire resource into the client-side user record,
// discarding the OTP.
func (u UserResponse) User() model.User {
	return model.User{ID: u.ID, Email: u.Email, IsVerified: u.IsVerified}
}

// CreateBusinessRequest is the body of POST /businesses.
type CreateBusinessRequest struct {
	UserID      int64  `json:"user_id"`
	Name        string `json:"business_name"`
	URL         string `json:"business_url"`
	Description string `json:"business_description"`
}

// Login authenticates email/password. A reachable backend that reports
// failure yields an APIError carrying the body's message and HTTP status.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", body, &out, "Login failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a user. Empty VerificationOTP defaults to DefaultOTP.
// Validation failures (422 detail arrays) are flattened into one message.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	if req.VerificationOTP == "" {
		req.VerificationOTP = DefaultOTP
	}
	var out UserResponse
	if err := c.do(ctx, http.MethodPost, "/users", req, &out, "Registration failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserByEmail fetches the user resource for an email address.
func (c *Client) UserByEmail(ctx context.Context, email string) (*UserResponse, error) {
	var out UserResponse
	path := "/users/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "Failed to fetch user"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBusiness creates a business profile for a user.
func (c *Client) CreateBusiness(ctx context.Context, req CreateBusinessRequest) (*model.Business, error) {
	var out model.Business
	if err := c.do(ctx, http.MethodPost, "/businesses", req, &out, "Failed to create business"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Businesses lists the business profiles owned by a user.
func (c *Client) Businesses(ctx context.Context, userID int64) ([]model.Business, error) {
	var out []model.Business
	path := "/businesses?user=" + strconv.FormatInt(userID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "Failed to list businesses"); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteBusiness removes a business profile.
func (c *Client) DeleteBusiness(ctx context.Context, id int64) error {
	path := "/businesses/" + strconv.FormatInt(id, 10)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "Failed to delete business")
}

// do issues one request and normalizes every failure mode into *APIError.
// fallback is the message used when an error body carries none.
func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, ok := errorMessage(data, fallback)
		if !ok {
			// Non-JSON error body: indistinguishable from a broken transport.
			return networkError()
		}
		return &APIError{
			Message:    msg,
			StatusCode: resp.StatusCode,
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return networkError()
	}
	return nil
}

// errorBody is the superset of error shapes the backend produces: a flat
// message, a string detail, or a FastAPI-style validation detail array.
type errorBody struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

type validationError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// errorMessage extracts a human-readable message from an error response
// body. Validation detail arrays are rendered as "loc.path: msg" entries,
// comma-joined, taking precedence over the flat message field. The second
// return is false when the body is not JSON at all.
func errorMessage(data []byte, fallback string) (string, bool) {
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return "", false
	}

	if len(body.Detail) > 0 {
		var entries []validationError
		if err := json.Unmarshal(body.Detail, &entries); err == nil {
			parts := make([]string, 0, len(entries))
			for _, e := range entries {
				locs := make([]string, 0, len(e.Loc))
				for _, l := range e.Loc {
					locs = append(locs, fmt.Sprint(l))
				}
				parts = append(parts, strings.Join(locs, ".")+": "+e.Msg)
			}
			if len(parts) > 0 {
				return strings.Join(parts, ", "), true
			}
		}
		var detail string
		if err := json.Unmarshal(body.Detail, &detail); err == nil && detail != "" {
			return detail, true
		}
	}

	if body.Message != "" {
		return body.Message, true
	}
	return fallback, true
}
