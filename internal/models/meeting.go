package models

import "time"

// Meeting is a single meeting record owned by a user. The ownership invariant
// is the same as for Task.
type Meeting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Participants []string  `json:"participants"`
	Location     string    `json:"location,omitempty"`
	IsVirtual    bool      `json:"isVirtual"`
	MeetingLink  string    `json:"meetingLink,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	UserID       string    `json:"userId"`
}

// MeetingDraft carries the caller-supplied fields of a new meeting.
type MeetingDraft struct {
	Title        string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	Participants []string
	Location     string
	IsVirtual    bool
	MeetingLink  string
}

// MeetingPatch is a partial field set for updating a meeting. Nil fields are
// left unchanged.
type MeetingPatch struct {
	Title        *string
	Description  *string
	StartTime    *time.Time
	EndTime      *time.Time
	Participants *[]string
	Location     *string
	IsVirtual    *bool
	MeetingLink  *string
}

// Apply merges the set fields of p into m.
func (p MeetingPatch) Apply(m *Meeting) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.StartTime != nil {
		m.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		m.EndTime = *p.EndTime
	}
	if p.Participants != nil {
		m.Participants = *p.Participants
	}
	if p.Location != nil {
		m.Location = *p.Location
	}
	if p.IsVirtual != nil {
		m.IsVirtual = *p.IsVirtual
	}
	if p.MeetingLink != nil {
		m.MeetingLink = *p.MeetingLink
	}
}

// MeetingStats aggregates a meeting collection relative to a point in time.
type MeetingStats struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Today    int `json:"today"`
}
