package models

import "time"

// Priority classifies how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single task record owned by a user. UserID always equals the id
// of the user whose record contains it.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Deadline    time.Time `json:"deadline"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      string    `json:"userId"`
}

// TaskDraft carries the caller-supplied fields of a new task. Identity,
// timestamps, ownership, and the completed flag are synthesized by the store.
type TaskDraft struct {
	Title       string
	Description string
	Priority    Priority
	Deadline    time.Time
}

// TaskPatch is a partial field set for updating a task. Nil fields are left
// unchanged; the store refreshes UpdatedAt on every applied patch.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Deadline    *time.Time
	Completed   *bool
}

// Apply merges the set fields of p into t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Deadline != nil {
		t.Deadline = *p.Deadline
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// TaskFilter selects a predicate for task list views.
type TaskFilter string

const (
	TaskFilterAll       TaskFilter = "all"
	TaskFilterPending   TaskFilter = "pending"
	TaskFilterCompleted TaskFilter = "completed"
	TaskFilterLow       TaskFilter = "low"
	TaskFilterMedium    TaskFilter = "medium"
	TaskFilterHigh      TaskFilter = "high"
)

// Valid reports whether f is one of the known filter tags.
func (f TaskFilter) Valid() bool {
	switch f {
	case TaskFilterAll, TaskFilterPending, TaskFilterCompleted,
		TaskFilterLow, TaskFilterMedium, TaskFilterHigh:
		return true
	}
	return false
}

// TaskStats aggregates a task collection. Total is always Completed+Pending,
// and CompletionRate is a rounded percentage (0 for an empty collection).
type TaskStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	CompletionRate int `json:"completionRate"`
}
