package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/taskmeet/internal/models"
	"github.com/dmitrijs2005/taskmeet/internal/views"
)

// AddTask prompts for the task fields and adds the task to the active user's
// collection. An invalid priority falls back to medium.
func (a *App) AddTask(ctx context.Context) error {
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

	priority, err := getSimpleText(a.reader, "Enter priority (low/medium/high)", os.Stdout)
	if err != nil {
		return err
	}
	p := models.Priority(priority)
	if !p.Valid() {
		p = models.PriorityMedium
	}

	deadline, err := GetOptionalTime(a.reader, "Enter deadline", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	a.tasks.Add(ctx, models.TaskDraft{
		Title:       title,
		Description: description,
		Priority:    p,
		Deadline:    deadline,
	})
	printlnFn("Added")
	return nil
}

// ListTasks prints the current view: search query and filter applied.
func (a *App) ListTasks(ctx context.Context) error {
	now := time.Now()
	for _, t := range a.tasks.List() {
		printlnFn(formatTask(t, now))
	}
	return nil
}

func formatTask(t models.Task, now time.Time) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	s := fmt.Sprintf("[%s] %s  %s (%s)", mark, t.ID, t.Title, t.Priority)
	if !t.Deadline.IsZero() {
		s += "  due " + views.DeadlineStatus(t.Deadline, now).Label
	}
	return s
}

// ToggleTask flips the completed flag of the task with the given id.
func (a *App) ToggleTask(ctx context.Context, id string) error {
	a.tasks.ToggleComplete(ctx, id)
	return nil
}

// EditTask prompts for replacement field values, empty answers keeping the
// current ones, and applies the resulting patch. Unknown ids are silent no-ops.
func (a *App) EditTask(ctx context.Context, id string) error {
	title, err := getSimpleText(a.reader, "New title (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "New description (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	priority, err := getSimpleText(a.reader, "New priority (low/medium/high, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	patch := models.TaskPatch{}
	if title != "" {
		patch.Title = &title
	}
	if description != "" {
		patch.Description = &description
	}
	if p := models.Priority(priority); p.Valid() {
		patch.Priority = &p
	}

	a.tasks.Update(ctx, id, patch)
	return nil
}

// RemoveTask deletes the task with the given id. Unknown ids are silent no-ops.
func (a *App) RemoveTask(ctx context.Context, id string) error {
	a.tasks.Remove(ctx, id)
	return nil
}

// SetTaskFilter switches the task list view to the given predicate tag.
func (a *App) SetTaskFilter(ctx context.Context, tag string) error {
	f := models.TaskFilter(tag)
	if !f.Valid() {
		printlnFn("Unknown filter:", tag)
		return nil
	}
	a.tasks.SetFilter(f)
	return nil
}

// SearchTasks sets the task search query. An empty query clears it.
func (a *App) SearchTasks(ctx context.Context, query string) error {
	a.tasks.SetSearchQuery(query)
	return nil
}

// TaskStats prints aggregate statistics for the whole task collection.
func (a *App) TaskStats(ctx context.Context) error {
	s := a.tasks.Stats()
	printlnFn(fmt.Sprintf("%d total, %d completed, %d pending (%d%%)",
		s.Total, s.Completed, s.Pending, s.CompletionRate))
	return nil
}
