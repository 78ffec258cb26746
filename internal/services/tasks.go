package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskmeet/internal/identity"
	"github.com/dmitrijs2005/taskmeet/internal/logging"
	"github.com/dmitrijs2005/taskmeet/internal/models"
	"github.com/dmitrijs2005/taskmeet/internal/session"
	"github.com/dmitrijs2005/taskmeet/internal/views"
)

// TaskStore owns the active user's task collection: an in-memory mirror of
// the persisted list plus the view state (filter, search query) applied to
// List. Every mutation rebuilds the whole list and persists it through the
// identity store's replace operation.
//
// All mutations are silent no-ops when no session is active: the UI should
// never allow that, so it is a defensive guard rather than an error.
type TaskStore struct {
	identity *identity.Store
	session  *session.Manager
	log      logging.Logger

	tasks       []models.Task
	filter      models.TaskFilter
	searchQuery string

	// test seams
	now   func() time.Time
	newID func(now time.Time) string
}

// NewTaskStore constructs a task store. Call Refresh after the session
// changes to load the active user's collection.
func NewTaskStore(id *identity.Store, sess *session.Manager, log logging.Logger) *TaskStore {
	return &TaskStore{
		identity: id,
		session:  sess,
		log:      log,
		tasks:    []models.Task{},
		filter:   models.TaskFilterAll,
		now:      time.Now,
		newID:    func(now time.Time) string { return models.NewID("task", now) },
	}
}

// Refresh mirrors the active user's owned collection into memory. With no
// active session the mirror resets to empty.
func (s *TaskStore) Refresh(ctx context.Context) {
	u := s.session.CurrentUser()
	if u == nil {
		s.tasks = []models.Task{}
		return
	}
	s.tasks = s.identity.Tasks(ctx, u.ID)
}

// persist saves the new list as the whole collection and updates the mirror.
func (s *TaskStore) persist(ctx context.Context, tasks []models.Task) {
	u := s.session.CurrentUser()
	if u == nil {
		return
	}
	if err := s.identity.ReplaceTasks(ctx, u.ID, tasks); err != nil {
		s.log.Warn(ctx, "failed to persist tasks", "user_id", u.ID, "error", err)
	}
	s.tasks = tasks
}

// Add creates a task from the draft: id, timestamps, ownership, and the
// completed flag are synthesized here. No-op without an active session.
func (s *TaskStore) Add(ctx context.Context, draft models.TaskDraft) {
	u := s.session.CurrentUser()
	if u == nil {
		s.log.Debug(ctx, "add task ignored, no active session")
		return
	}

	now := s.now()
	task := models.Task{
		ID:          s.newID(now),
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		Deadline:    draft.Deadline,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      u.ID,
	}

	s.persist(ctx, append(append([]models.Task{}, s.tasks...), task))
}

// Update merges the patch into the matching task and refreshes its
// UpdatedAt. Unknown ids are silent no-ops.
func (s *TaskStore) Update(ctx context.Context, id string, patch models.TaskPatch) {
	updated := make([]models.Task, len(s.tasks))
	found := false
	for i, t := range s.tasks {
		if t.ID == id {
			patch.Apply(&t)
			t.UpdatedAt = s.now()
			found = true
		}
		updated[i] = t
	}
	if !found {
		return
	}
	s.persist(ctx, updated)
}

// Remove deletes the matching task. Unknown ids are silent no-ops.
func (s *TaskStore) Remove(ctx context.Context, id string) {
	filtered := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == len(s.tasks) {
		return
	}
	s.persist(ctx, filtered)
}

// ToggleComplete flips the completed flag of the matching task. Unknown ids
// are silent no-ops.
func (s *TaskStore) ToggleComplete(ctx context.Context, id string) {
	for _, t := range s.tasks {
		if t.ID == id {
			completed := !t.Completed
			s.Update(ctx, id, models.TaskPatch{Completed: &completed})
			return
		}
	}
}

// List returns the current view: the mirror with search and filter applied.
func (s *TaskStore) List() []models.Task {
	return views.FilterTasks(views.SearchTasks(s.tasks, s.searchQuery), s.filter)
}

// All returns the unfiltered mirror.
func (s *TaskStore) All() []models.Task {
	return s.tasks
}

// Stats aggregates the whole collection, ignoring the active view state.
func (s *TaskStore) Stats() models.TaskStats {
	return views.TaskStats(s.tasks)
}

// SetFilter sets the active predicate tag for List.
func (s *TaskStore) SetFilter(f models.TaskFilter) {
	s.filter = f
}

// Filter returns the active predicate tag.
func (s *TaskStore) Filter() models.TaskFilter {
	return s.filter
}

// SetSearchQuery sets the active search query for List.
func (s *TaskStore) SetSearchQuery(q string) {
	s.searchQuery = q
}

// SearchQuery returns the active search query.
func (s *TaskStore) SearchQuery() string {
	return s.searchQuery
}
