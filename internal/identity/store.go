// Package identity implements the identity store: the persisted mapping from
// user id to the full user record (credentials, profile, and the owned task
// and meeting collections).
//
// The whole map lives under a single storage key, so every mutation is a
// read-modify-write of the full blob. That keeps persistence atomic-per-user
// and makes orphaned records impossible; the accepted trade-off is
// last-write-wins across concurrent writers.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskmeet/internal/common"
	"github.com/dmitrijs2005/taskmeet/internal/logging"
	"github.com/dmitrijs2005/taskmeet/internal/models"
	"github.com/dmitrijs2005/taskmeet/internal/storage"
)

// UsersKey is the storage key holding the userId -> StoredUser map.
const UsersKey = "snm_users"

// Store persists and queries user records over a key-value storage adapter.
type Store struct {
	storage storage.Storage
	log     logging.Logger

	// test seams
	now   func() time.Time
	newID func(now time.Time) string
}

// NewStore constructs an identity store over the given storage adapter.
func NewStore(st storage.Storage, log logging.Logger) *Store {
	return &Store{
		storage: st,
		log:     log,
		now:     time.Now,
		newID:   func(now time.Time) string { return models.NewID("user", now) },
	}
}

// loadAll reads the full user map. A missing or corrupt value degrades to an
// empty map, never an error.
func (s *Store) loadAll(ctx context.Context) map[string]*models.StoredUser {
	raw, err := s.storage.Read(ctx, UsersKey)
	if err != nil {
		s.log.Warn(ctx, "reading user map failed, treating as empty", "error", err)
		return map[string]*models.StoredUser{}
	}
	if raw == nil {
		return map[string]*models.StoredUser{}
	}

	var users map[string]*models.StoredUser
	if err := json.Unmarshal(raw, &users); err != nil {
		s.log.Warn(ctx, "user map is corrupt, treating as empty", "error", err)
		return map[string]*models.StoredUser{}
	}
	if users == nil {
		return map[string]*models.StoredUser{}
	}
	return users
}

// saveAll writes the full user map back to storage.
func (s *Store) saveAll(ctx context.Context, users map[string]*models.StoredUser) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal user map: %w", err)
	}
	if err := s.storage.Write(ctx, UsersKey, raw); err != nil {
		return fmt.Errorf("failed to persist user map: %w", err)
	}
	return nil
}

// FindByIdentifier resolves a user by case-insensitive email or name match.
// Returns common.ErrorNotFound when nothing matches. If duplicates exist
// (which the signup invariant prevents) the first match wins.
func (s *Store) FindByIdentifier(ctx context.Context, identifier string) (*models.StoredUser, error) {
	users := s.loadAll(ctx)
	for _, u := range users {
		if strings.EqualFold(u.Email, identifier) || strings.EqualFold(u.Name, identifier) {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// GetByID returns the public projection of the user with the given id.
func (s *Store) GetByID(ctx context.Context, userID string) (*models.User, error) {
	users := s.loadAll(ctx)
	u, ok := users[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u.Public(), nil
}

// Create registers a new user. It fails with common.ErrorConflict when the
// email or the name (each case-insensitive) is already taken, leaving the
// store unchanged. On success the new record gets a fresh id, the default
// avatar, and empty task and meeting collections, and the public projection
// is returned.
func (s *Store) Create(ctx context.Context, email, password, name string) (*models.User, error) {
	if _, err := s.FindByIdentifier(ctx, email); err == nil {
		return nil, fmt.Errorf("email taken: %w", common.ErrorConflict)
	}
	if _, err := s.FindByIdentifier(ctx, name); err == nil {
		return nil, fmt.Errorf("name taken: %w", common.ErrorConflict)
	}

	now := s.now()
	u := &models.StoredUser{
		User: models.User{
			ID:     s.newID(now),
			Email:  email,
			Name:   name,
			Avatar: models.DefaultAvatarURL,
		},
		Password:  password,
		Tasks:     []models.Task{},
		Meetings:  []models.Meeting{},
		CreatedAt: now,
	}

	users := s.loadAll(ctx)
	users[u.ID] = u
	if err := s.saveAll(ctx, users); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user created", "user_id", u.ID)
	return u.Public(), nil
}

// Verify resolves the identifier and checks the password by exact,
// case-sensitive comparison. An unknown identifier and a wrong password are
// both common.ErrorUnauthorized.
func (s *Store) Verify(ctx context.Context, identifier, password string) (*models.User, error) {
	u, err := s.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}
	if u.Password != password {
		return nil, common.ErrorUnauthorized
	}
	return u.Public(), nil
}

// Tasks returns the user's owned task collection, or an empty slice when the
// user or the field is missing.
func (s *Store) Tasks(ctx context.Context, userID string) []models.Task {
	users := s.loadAll(ctx)
	u, ok := users[userID]
	if !ok || u.Tasks == nil {
		return []models.Task{}
	}
	return u.Tasks
}

// Meetings returns the user's owned meeting collection, or an empty slice
// when the user or the field is missing.
func (s *Store) Meetings(ctx context.Context, userID string) []models.Meeting {
	users := s.loadAll(ctx)
	u, ok := users[userID]
	if !ok || u.Meetings == nil {
		return []models.Meeting{}
	}
	return u.Meetings
}

// Mutate is the read-modify-write primitive: it loads the full stored-user
// map, applies fn to the one record, refreshes the owner's UpdatedAt, and
// writes the full map back. Within a single-threaded turn this is atomic;
// across writers the later write-back wins. Returns common.ErrorNotFound
// when the user record is absent.
func (s *Store) Mutate(ctx context.Context, userID string, fn func(u *models.StoredUser)) error {
	users := s.loadAll(ctx)
	u, ok := users[userID]
	if !ok {
		return common.ErrorNotFound
	}

	fn(u)
	u.UpdatedAt = s.now()

	return s.saveAll(ctx, users)
}

// ReplaceTasks overwrites the user's whole task collection.
func (s *Store) ReplaceTasks(ctx context.Context, userID string, tasks []models.Task) error {
	return s.Mutate(ctx, userID, func(u *models.StoredUser) {
		u.Tasks = tasks
	})
}

// ReplaceMeetings overwrites the user's whole meeting collection.
func (s *Store) ReplaceMeetings(ctx context.Context, userID string, meetings []models.Meeting) error {
	return s.Mutate(ctx, userID, func(u *models.StoredUser) {
		u.Meetings = meetings
	})
}
