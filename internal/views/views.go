// Package views computes derived projections over collection snapshots:
// filtered and searched subsets, aggregate statistics, and deadline labels.
// Everything here is a pure function; the package owns no state and never
// persists anything.
package views

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskmeet/internal/models"
)

// UpcomingWindow is how far ahead a meeting may start and still count as
// upcoming.
const UpcomingWindow = 7 * 24 * time.Hour

// SearchTasks returns the tasks whose title or description contains query,
// case-insensitively. An empty query matches everything.
func SearchTasks(tasks []models.Task, query string) []models.Task {
	if query == "" {
		return tasks
	}
	q := strings.ToLower(query)

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}

// FilterTasks returns the tasks matching the predicate tag. Unknown tags
// behave like "all".
func FilterTasks(tasks []models.Task, filter models.TaskFilter) []models.Task {
	if filter == models.TaskFilterAll || !filter.Valid() {
		return tasks
	}

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		var keep bool
		switch filter {
		case models.TaskFilterPending:
			keep = !t.Completed
		case models.TaskFilterCompleted:
			keep = t.Completed
		default:
			keep = t.Priority == models.Priority(filter)
		}
		if keep {
			out = append(out, t)
		}
	}
	return out
}

// TaskStats aggregates the whole collection (not a filtered view).
// CompletionRate is a rounded percentage and 0 for an empty collection.
func TaskStats(tasks []models.Task) models.TaskStats {
	s := models.TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// SearchMeetings returns the meetings whose title, description, or any
// participant contains query, case-insensitively. An empty query matches
// everything.
func SearchMeetings(meetings []models.Meeting, query string) []models.Meeting {
	if query == "" {
		return meetings
	}
	q := strings.ToLower(query)

	out := make([]models.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if meetingMatches(m, q) {
			out = append(out, m)
		}
	}
	return out
}

func meetingMatches(m models.Meeting, q string) bool {
	if strings.Contains(strings.ToLower(m.Title), q) ||
		strings.Contains(strings.ToLower(m.Description), q) {
		return true
	}
	for _, p := range m.Participants {
		if strings.Contains(strings.ToLower(p), q) {
			return true
		}
	}
	return false
}

// UpcomingMeetings returns the meetings starting within [now, now+7d],
// inclusive of now, sorted ascending by start time.
func UpcomingMeetings(meetings []models.Meeting, now time.Time) []models.Meeting {
	horizon := now.Add(UpcomingWindow)

	out := make([]models.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if !m.StartTime.Before(now) && !m.StartTime.After(horizon) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

// MeetingStats aggregates the whole meeting collection relative to now.
func MeetingStats(meetings []models.Meeting, now time.Time) models.MeetingStats {
	s := models.MeetingStats{
		Total:    len(meetings),
		Upcoming: len(UpcomingMeetings(meetings, now)),
	}
	for _, m := range meetings {
		if sameDay(m.StartTime, now) {
			s.Today++
		}
	}
	return s
}

// DeadlineKind classifies a task deadline relative to now.
type DeadlineKind string

const (
	DeadlineToday    DeadlineKind = "today"
	DeadlineTomorrow DeadlineKind = "tomorrow"
	DeadlineOverdue  DeadlineKind = "overdue"
	DeadlineUpcoming DeadlineKind = "upcoming"
)

// DeadlineStat is a classified deadline with its display label.
type DeadlineStat struct {
	Kind  DeadlineKind
	Label string
}

// DeadlineStatus classifies a deadline. The checks run in a fixed precedence:
// today, then tomorrow, then overdue, then upcoming. A same-day deadline whose
// time-of-day is already past is therefore still "today", not "overdue".
func DeadlineStatus(deadline, now time.Time) DeadlineStat {
	switch {
	case sameDay(deadline, now):
		return DeadlineStat{Kind: DeadlineToday, Label: "Today"}
	case sameDay(deadline, now.AddDate(0, 0, 1)):
		return DeadlineStat{Kind: DeadlineTomorrow, Label: "Tomorrow"}
	case now.After(deadline):
		return DeadlineStat{Kind: DeadlineOverdue, Label: "Overdue"}
	default:
		return DeadlineStat{Kind: DeadlineUpcoming, Label: deadline.Format("Jan 02")}
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
