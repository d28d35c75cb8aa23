// Package auth owns the client session lifecycle: who is logged in, how a
// stored session is restored, and how login, registration, and logout move
// between the anonymous and authenticated states. All credential checks are
// delegated to the remote ads backend; this package only orchestrates.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/muzads/muzads/internal/api"
	"github.com/muzads/muzads/internal/model"
	"github.com/muzads/muzads/internal/session"
)

// Controller is the single source of truth for session state. One instance
// serves the whole application and is injected into middleware and handlers.
type Controller struct {
	backend  *api.Client
	sessions *session.Store
	logger   *slog.Logger
}

// NewController creates a Controller.
func NewController(backend *api.Client, sessions *session.Store, logger *slog.Logger) *Controller {
	return &Controller{
		backend:  backend,
		sessions: sessions,
		logger:   logger,
	}
}

// Hydrate restores the session from stored cookies without touching the
// network. A corrupt snapshot purges both cookies and resolves to anonymous;
// stored data is trusted as-is otherwise (optimistic hydration). Reconcile
// is the follow-up phase that replaces the snapshot with fresh data.
func (c *Controller) Hydrate(w http.ResponseWriter, r *http.Request) *model.User {
	rec, err := c.sessions.Read(r)
	if err == session.ErrCorrupt {
		c.logger.Warn("purging corrupt session data", "error", err)
		c.sessions.Clear(w)
		return nil
	}
	if err != nil {
		return nil
	}
	user := rec.User
	return &user
}

// Reconcile re-fetches the hydrated user from the backend and overwrites the
// stored snapshot. Failure keeps the stale snapshot and never logs the user
// out: an unreachable backend is indistinguishable from transient network
// trouble, and a usable stale session beats a forced re-login.
func (c *Controller) Reconcile(ctx context.Context, w http.ResponseWriter, user *model.User) *model.User {
	if user == nil {
		return nil
	}
	resp, err := c.backend.UserByEmail(ctx, user.Email)
	if err != nil {
		c.logger.Debug("user refresh failed, keeping cached data", "email", user.Email, "error", err)
		return user
	}
	fresh := resp.User()
	c.sessions.WriteUser(w, fresh)
	return &fresh
}

// Login authenticates against the backend, mints a local opaque session
// token (the backend issues none), fetches the full user record, and stores
// the pair. Navigation is left to the caller.
func (c *Controller) Login(ctx context.Context, w http.ResponseWriter, email, password string) (*model.User, error) {
	resp, err := c.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Login failed"
		}
		return nil, &api.APIError{Message: msg}
	}

	userResp, err := c.backend.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	user := userResp.User()

	c.sessions.Write(w, session.Record{Token: newToken(), User: user})
	c.logger.Info("user logged in", "email", user.Email)
	return &user, nil
}

// Register creates the account, then chains straight into Login with the
// same credentials; registration has no independent logged-in outcome.
func (c *Controller) Register(ctx context.Context, w http.ResponseWriter, email, password, otp string) (*model.User, error) {
	_, err := c.backend.Register(ctx, api.RegisterRequest{
		Email:           email,
		Password:        password,
		VerificationOTP: otp,
		IsVerified:      false,
	})
	if err != nil {
		return nil, err
	}
	return c.Login(ctx, w, email, password)
}

// Logout tears the session down locally. No backend call is made: the token
// was minted client-side and the backend keeps no revocable session for it,
// so a previously issued token stays valid against the API indefinitely.
func (c *Controller) Logout(w http.ResponseWriter) {
	c.sessions.Clear(w)
	c.logger.Info("user logged out")
}

// newToken mints an opaque session token. Format matches what the product
// has always stored: a session_ prefix, the mint time, and random hex.
func newToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}
