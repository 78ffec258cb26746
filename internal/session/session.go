// Package session tracks the single active user: a persisted pointer to a
// user id plus the resolved public profile held in memory. The manager is an
// explicitly constructed service; there is no ambient singleton.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/taskmeet/internal/identity"
	"github.com/dmitrijs2005/taskmeet/internal/logging"
	"github.com/dmitrijs2005/taskmeet/internal/models"
	"github.com/dmitrijs2005/taskmeet/internal/storage"
)

// CurrentUserKey is the storage key holding the active user id as a JSON
// string. Absent means logged out.
const CurrentUserKey = "snm_current_user"

// Manager owns the session pointer. It never owns user records; the pointer
// is a non-owning reference into the identity store.
type Manager struct {
	storage  storage.Storage
	identity *identity.Store
	log      logging.Logger

	user *models.User
}

// NewManager constructs a session manager. Call Init to resolve a previously
// persisted session.
func NewManager(st storage.Storage, id *identity.Store, log logging.Logger) *Manager {
	return &Manager{storage: st, identity: id, log: log}
}

// Init resolves the persisted pointer against the identity store. A pointer
// referencing a missing user (corrupted or cleared store) is self-healing:
// it is treated as absent and removed.
func (m *Manager) Init(ctx context.Context) error {
	m.user = nil

	raw, err := m.storage.Read(ctx, CurrentUserKey)
	if err != nil || raw == nil {
		return nil
	}

	var userID string
	if err := json.Unmarshal(raw, &userID); err != nil || userID == "" {
		m.log.Warn(ctx, "session pointer is corrupt, clearing")
		return m.storage.Delete(ctx, CurrentUserKey)
	}

	u, err := m.identity.GetByID(ctx, userID)
	if err != nil {
		m.log.Warn(ctx, "session pointer references missing user, clearing", "user_id", userID)
		return m.storage.Delete(ctx, CurrentUserKey)
	}

	m.user = u
	return nil
}

// Establish persists the pointer and sets the active in-memory user. The
// referenced user must exist.
func (m *Manager) Establish(ctx context.Context, userID string) error {
	u, err := m.identity.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(userID)
	if err != nil {
		return fmt.Errorf("failed to marshal session pointer: %w", err)
	}
	if err := m.storage.Write(ctx, CurrentUserKey, raw); err != nil {
		return fmt.Errorf("failed to persist session pointer: %w", err)
	}

	m.user = u
	return nil
}

// Clear removes the pointer and the in-memory user. User records and their
// collections are untouched; logout is non-destructive.
func (m *Manager) Clear(ctx context.Context) error {
	m.user = nil
	return m.storage.Delete(ctx, CurrentUserKey)
}

// CurrentUser returns the active user's public profile, or nil when no
// session is established.
func (m *Manager) CurrentUser() *models.User {
	return m.user
}

// IsAuthenticated reports whether a session is established.
func (m *Manager) IsAuthenticated() bool {
	return m.user != nil
}
