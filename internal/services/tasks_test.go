package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskmeet/internal/models"
)

func signup(t *testing.T, env *testEnv, email, name string) *models.User {
	t.Helper()
	require.True(t, env.auth.Signup(context.Background(), email, "pw", name))
	env.tasks.Refresh(context.Background())
	env.meetings.Refresh(context.Background())
	return env.auth.CurrentUser()
}

func TestTaskStore_ScenarioHighPriorityTask(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	signup(t, env, "a@x.com", "Alice")

	env.tasks.Add(ctx, models.TaskDraft{
		Title:    "Write report",
		Priority: models.PriorityHigh,
		Deadline: time.Now().Add(24 * time.Hour),
	})

	require.Len(t, env.tasks.All(), 1)
	id := env.tasks.All()[0].ID

	env.tasks.SetFilter(models.TaskFilterHigh)
	require.Len(t, env.tasks.List(), 1)

	env.tasks.SetFilter(models.TaskFilterPending)
	require.Len(t, env.tasks.List(), 1)

	env.tasks.ToggleComplete(ctx, id)

	env.tasks.SetFilter(models.TaskFilterCompleted)
	require.Len(t, env.tasks.List(), 1)
	env.tasks.SetFilter(models.TaskFilterPending)
	require.Empty(t, env.tasks.List())

	stats := env.tasks.Stats()
	assert.Equal(t, 100, stats.CompletionRate)
	assert.Equal(t, stats.Total, stats.Completed+stats.Pending)
}

func TestTaskStore_AddSynthesizesFields(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	u := signup(t, env, "a@x.com", "Alice")

	fixed := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	env.tasks.now = func() time.Time { return fixed }

	env.tasks.Add(ctx, models.TaskDraft{Title: "T", Description: "D", Priority: models.PriorityLow})

	task := env.tasks.All()[0]
	assert.NotEmpty(t, task.ID)
	assert.False(t, task.Completed, "completed defaults to false")
	assert.Equal(t, fixed, task.CreatedAt)
	assert.Equal(t, fixed, task.UpdatedAt)
	assert.Equal(t, u.ID, task.UserID, "owner is the session user")
}

func TestTaskStore_AddWithoutSessionIsNoop(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	env.tasks.Add(ctx, models.TaskDraft{Title: "orphan"})
	assert.Empty(t, env.tasks.All())

	// Nothing was persisted either.
	raw, err := env.storage.Read(ctx, "snm_users")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestTaskStore_UpdateEmptyPatchTouchesOnlyUpdatedAt(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	signup(t, env, "a@x.com", "Alice")

	t0 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	env.tasks.now = func() time.Time { return t0 }
	env.tasks.Add(ctx, models.TaskDraft{Title: "T", Description: "D", Priority: models.PriorityHigh})
	before := env.tasks.All()[0]

	t1 := t0.Add(time.Hour)
	env.tasks.now = func() time.Time { return t1 }
	env.tasks.Update(ctx, before.ID, models.TaskPatch{})

	after := env.tasks.All()[0]
	assert.Equal(t, t1, after.UpdatedAt)

	after.UpdatedAt = before.UpdatedAt
	assert.Equal(t, before, after, "all other fields are identical")
}

func TestTaskStore_UpdateUnknownIDIsNoop(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	signup(t, env, "a@x.com", "Alice")

	env.tasks.Add(ctx, models.TaskDraft{Title: "T"})
	before := env.tasks.All()

	title := "changed"
	env.tasks.Update(ctx, "ghost", models.TaskPatch{Title: &title})
	assert.Equal(t, before, env.tasks.All())
}

func TestTaskStore_Remove(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	signup(t, env, "a@x.com", "Alice")

	env.tasks.Add(ctx, models.TaskDraft{Title: "keep"})
	env.tasks.Add(ctx, models.TaskDraft{Title: "drop"})
	require.Len(t, env.tasks.All(), 2)

	var dropID string
	for _, task := range env.tasks.All() {
		if task.Title == "drop" {
			dropID = task.ID
		}
	}

	env.tasks.Remove(ctx, dropID)
	require.Len(t, env.tasks.All(), 1)
	assert.Equal(t, "keep", env.tasks.All()[0].Title)

	env.tasks.Remove(ctx, "ghost")
	assert.Len(t, env.tasks.All(), 1)
}

func TestTaskStore_SearchAndFilterCompose(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	signup(t, env, "a@x.com", "Alice")

	env.tasks.Add(ctx, models.TaskDraft{Title: "Write report", Priority: models.PriorityHigh})
	env.tasks.Add(ctx, models.TaskDraft{Title: "Write tests", Priority: models.PriorityLow})
	env.tasks.Add(ctx, models.TaskDraft{Title: "Ship it", Priority: models.PriorityHigh})

	env.tasks.SetSearchQuery("write")
	env.tasks.SetFilter(models.TaskFilterHigh)

	got := env.tasks.List()
	require.Len(t, got, 1, "an item must satisfy both search and filter")
	assert.Equal(t, "Write report", got[0].Title)
}

func TestTaskStore_OwnershipIsolation(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	signup(t, env, "a@x.com", "Alice")
	env.tasks.Add(ctx, models.TaskDraft{Title: "Alice's task"})
	require.Len(t, env.tasks.All(), 1)

	env.auth.Logout(ctx)
	env.tasks.Refresh(ctx)
	assert.Empty(t, env.tasks.All(), "cleared session resets the mirror")

	signup(t, env, "b@x.com", "Bob")
	assert.Empty(t, env.tasks.All(), "Bob never sees Alice's tasks")

	env.tasks.Add(ctx, models.TaskDraft{Title: "Bob's task"})

	env.auth.Logout(ctx)
	require.True(t, env.auth.Login(ctx, "Alice", "pw"))
	env.tasks.Refresh(ctx)

	require.Len(t, env.tasks.All(), 1)
	assert.Equal(t, "Alice's task", env.tasks.All()[0].Title)
}

func TestTaskStore_PersistsAcrossReload(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	signup(t, env, "a@x.com", "Alice")

	env.tasks.Add(ctx, models.TaskDraft{Title: "durable"})

	// A fresh mirror over the same storage sees the task.
	env.tasks.Refresh(ctx)
	require.Len(t, env.tasks.All(), 1)
	assert.Equal(t, "durable", env.tasks.All()[0].Title)
}
