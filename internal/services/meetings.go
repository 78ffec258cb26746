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

// MeetingStore owns the active user's meeting collection. It is structurally
// the same store as TaskStore: an in-memory mirror, whole-collection replace
// persistence, and silent no-ops without an active session.
type MeetingStore struct {
	identity *identity.Store
	session  *session.Manager
	log      logging.Logger

	meetings    []models.Meeting
	searchQuery string

	// test seams
	now   func() time.Time
	newID func(now time.Time) string
}

// NewMeetingStore constructs a meeting store. Call Refresh after the session
// changes to load the active user's collection.
func NewMeetingStore(id *identity.Store, sess *session.Manager, log logging.Logger) *MeetingStore {
	return &MeetingStore{
		identity: id,
		session:  sess,
		log:      log,
		meetings: []models.Meeting{},
		now:      time.Now,
		newID:    func(now time.Time) string { return models.NewID("meeting", now) },
	}
}

// Refresh mirrors the active user's owned collection into memory. With no
// active session the mirror resets to empty.
func (s *MeetingStore) Refresh(ctx context.Context) {
	u := s.session.CurrentUser()
	if u == nil {
		s.meetings = []models.Meeting{}
		return
	}
	s.meetings = s.identity.Meetings(ctx, u.ID)
}

func (s *MeetingStore) persist(ctx context.Context, meetings []models.Meeting) {
	u := s.session.CurrentUser()
	if u == nil {
		return
	}
	if err := s.identity.ReplaceMeetings(ctx, u.ID, meetings); err != nil {
		s.log.Warn(ctx, "failed to persist meetings", "user_id", u.ID, "error", err)
	}
	s.meetings = meetings
}

// Add creates a meeting from the draft. No-op without an active session.
func (s *MeetingStore) Add(ctx context.Context, draft models.MeetingDraft) {
	u := s.session.CurrentUser()
	if u == nil {
		s.log.Debug(ctx, "add meeting ignored, no active session")
		return
	}

	now := s.now()
	meeting := models.Meeting{
		ID:           s.newID(now),
		Title:        draft.Title,
		Description:  draft.Description,
		StartTime:    draft.StartTime,
		EndTime:      draft.EndTime,
		Participants: draft.Participants,
		Location:     draft.Location,
		IsVirtual:    draft.IsVirtual,
		MeetingLink:  draft.MeetingLink,
		CreatedAt:    now,
		UpdatedAt:    now,
		UserID:       u.ID,
	}

	s.persist(ctx, append(append([]models.Meeting{}, s.meetings...), meeting))
}

// Update merges the patch into the matching meeting and refreshes its
// UpdatedAt. Unknown ids are silent no-ops.
func (s *MeetingStore) Update(ctx context.Context, id string, patch models.MeetingPatch) {
	updated := make([]models.Meeting, len(s.meetings))
	found := false
	for i, m := range s.meetings {
		if m.ID == id {
			patch.Apply(&m)
			m.UpdatedAt = s.now()
			found = true
		}
		updated[i] = m
	}
	if !found {
		return
	}
	s.persist(ctx, updated)
}

// Remove deletes the matching meeting. Unknown ids are silent no-ops.
func (s *MeetingStore) Remove(ctx context.Context, id string) {
	filtered := make([]models.Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == len(s.meetings) {
		return
	}
	s.persist(ctx, filtered)
}

// List returns the mirror with the search query applied.
func (s *MeetingStore) List() []models.Meeting {
	return views.SearchMeetings(s.meetings, s.searchQuery)
}

// All returns the unfiltered mirror.
func (s *MeetingStore) All() []models.Meeting {
	return s.meetings
}

// Upcoming returns the meetings starting within the next seven days,
// ascending by start time.
func (s *MeetingStore) Upcoming() []models.Meeting {
	return views.UpcomingMeetings(s.meetings, s.now())
}

// Stats aggregates the whole collection relative to the current instant.
func (s *MeetingStore) Stats() models.MeetingStats {
	return views.MeetingStats(s.meetings, s.now())
}

// SetSearchQuery sets the active search query for List.
func (s *MeetingStore) SetSearchQuery(q string) {
	s.searchQuery = q
}

// SearchQuery returns the active search query.
func (s *MeetingStore) SearchQuery() string {
	return s.searchQuery
}
