package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/taskmeet/internal/models"
)

// AddMeeting prompts for the meeting fields and adds the meeting to the
// active user's collection.
func (a *App) AddMeeting(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		printlnFn("Title is required")
		return nil
	}

	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	start, err := GetOptionalTime(a.reader, "Enter start time", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	end, err := GetOptionalTime(a.reader, "Enter end time", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	participants, err := getSimpleText(a.reader, "Enter participants (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}

	virtual, err := GetYesNo(a.reader, "Virtual meeting?", os.Stdout)
	if err != nil {
		return err
	}

	draft := models.MeetingDraft{
		Title:        title,
		Description:  description,
		StartTime:    start,
		EndTime:      end,
		Participants: splitParticipants(participants),
		IsVirtual:    virtual,
	}

	if virtual {
		link, err := getSimpleText(a.reader, "Enter meeting link", os.Stdout)
		if err != nil {
			return err
		}
		draft.MeetingLink = link
	} else {
		location, err := getSimpleText(a.reader, "Enter location", os.Stdout)
		if err != nil {
			return err
		}
		draft.Location = location
	}

	a.meetings.Add(ctx, draft)
	printlnFn("Added")
	return nil
}

func splitParticipants(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ListMeetings prints the current view with the search query applied.
func (a *App) ListMeetings(ctx context.Context) error {
	for _, m := range a.meetings.List() {
		printlnFn(formatMeeting(m))
	}
	return nil
}

func formatMeeting(m models.Meeting) string {
	where := m.Location
	if m.IsVirtual {
		where = "virtual"
	}
	s := fmt.Sprintf("%s  %s", m.ID, m.Title)
	if !m.StartTime.IsZero() {
		s += "  " + m.StartTime.Format("Jan 02 15:04")
	}
	if where != "" {
		s += "  @" + where
	}
	if len(m.Participants) > 0 {
		s += "  with " + strings.Join(m.Participants, ", ")
	}
	return s
}

// UpcomingMeetings prints the meetings starting within the next seven days,
// soonest first.
func (a *App) UpcomingMeetings(ctx context.Context) error {
	for _, m := range a.meetings.Upcoming() {
		printlnFn(formatMeeting(m))
	}
	return nil
}

// RemoveMeeting deletes the meeting with the given id. Unknown ids are silent
// no-ops.
func (a *App) RemoveMeeting(ctx context.Context, id string) error {
	a.meetings.Remove(ctx, id)
	return nil
}

// SearchMeetings sets the meeting search query. An empty query clears it.
func (a *App) SearchMeetings(ctx context.Context, query string) error {
	a.meetings.SetSearchQuery(query)
	return nil
}

// MeetingStats prints aggregate statistics for the whole meeting collection.
func (a *App) MeetingStats(ctx context.Context) error {
	s := a.meetings.Stats()
	printlnFn(fmt.Sprintf("%d total, %d upcoming, %d today", s.Total, s.Upcoming, s.Today))
	return nil
}
