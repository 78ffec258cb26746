// Package services contains the application services consumed by
// presentation collaborators: authentication and the per-user task and
// meeting collection stores.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskmeet/internal/identity"
	"github.com/dmitrijs2005/taskmeet/internal/logging"
	"github.com/dmitrijs2005/taskmeet/internal/models"
	"github.com/dmitrijs2005/taskmeet/internal/session"
)

// AuthService defines the identity/session operations of the public API.
//
// Contract:
//   - Login: resolve credentials, establish the session, report success.
//   - Signup: create the account, auto-login, report success.
//   - Logout: clear the session; user records are untouched.
//
// Expected negative outcomes (unknown identifier, wrong password, duplicate
// email or name) are signalled by a false return, never an error: the caller
// surfaces them as a user-facing message.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) bool
	Signup(ctx context.Context, email, password, name string) bool
	Logout(ctx context.Context)
	CurrentUser() *models.User
	IsAuthenticated() bool
}

// authService is the concrete AuthService over the identity store and the
// session manager.
type authService struct {
	identity *identity.Store
	session  *session.Manager
	delay    time.Duration
	log      logging.Logger
}

// NewAuthService constructs an AuthService. delay is the artificial latency
// applied to login and signup, simulating a network round trip; pass 0 to
// disable it. There is no cancellation token: a later call simply supersedes
// an earlier one.
func NewAuthService(id *identity.Store, sess *session.Manager, delay time.Duration, log logging.Logger) AuthService {
	return &authService{identity: id, session: sess, delay: delay, log: log}
}

// simulateRoundTrip blocks for the configured delay, or until ctx is done.
func (a *authService) simulateRoundTrip(ctx context.Context) {
	if a.delay <= 0 {
		return
	}
	select {
	case <-time.After(a.delay):
	case <-ctx.Done():
	}
}

// Login verifies the identifier/password pair and establishes the session.
func (a *authService) Login(ctx context.Context, identifier, password string) bool {
	a.simulateRoundTrip(ctx)

	u, err := a.identity.Verify(ctx, identifier, password)
	if err != nil {
		a.log.Debug(ctx, "login rejected", "identifier", identifier)
		return false
	}

	if err := a.session.Establish(ctx, u.ID); err != nil {
		a.log.Error(ctx, "failed to establish session", "error", err)
		return false
	}

	a.log.Info(ctx, "user logged in", "user_id", u.ID)
	return true
}

// Signup creates a new account and, on success, logs it in.
func (a *authService) Signup(ctx context.Context, email, password, name string) bool {
	a.simulateRoundTrip(ctx)

	u, err := a.identity.Create(ctx, email, password, name)
	if err != nil {
		a.log.Debug(ctx, "signup rejected", "email", email, "name", name, "error", err)
		return false
	}

	if err := a.session.Establish(ctx, u.ID); err != nil {
		a.log.Error(ctx, "failed to establish session", "error", err)
		return false
	}

	a.log.Info(ctx, "user signed up", "user_id", u.ID)
	return true
}

// Logout clears the session pointer. Logout is non-destructive: all user
// records and their collections survive.
func (a *authService) Logout(ctx context.Context) {
	if err := a.session.Clear(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear session", "error", err)
	}
}

// CurrentUser returns the active user's public profile, or nil.
func (a *authService) CurrentUser() *models.User {
	return a.session.CurrentUser()
}

// IsAuthenticated reports whether a session is established.
func (a *authService) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}
