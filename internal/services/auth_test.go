package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskmeet/internal/identity"
	"github.com/dmitrijs2005/taskmeet/internal/logging"
	"github.com/dmitrijs2005/taskmeet/internal/session"
	"github.com/dmitrijs2005/taskmeet/internal/storage"
)

type testEnv struct {
	storage  storage.Storage
	identity *identity.Store
	session  *session.Manager
	auth     AuthService
	tasks    *TaskStore
	meetings *MeetingStore
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	st, err := storage.NewFileStorage(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	id := identity.NewStore(st, log)
	sess := session.NewManager(st, id, log)

	return &testEnv{
		storage:  st,
		identity: id,
		session:  sess,
		auth:     NewAuthService(id, sess, 0, log),
		tasks:    NewTaskStore(id, sess, log),
		meetings: NewMeetingStore(id, sess, log),
	}
}

func TestAuth_CredentialRoundTrip(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	require.True(t, env.auth.Signup(ctx, "a@x.com", "pw", "Alice"))
	require.True(t, env.auth.IsAuthenticated(), "signup auto-logs-in")
	created := env.auth.CurrentUser()
	require.NotNil(t, created)

	env.auth.Logout(ctx)
	require.False(t, env.auth.IsAuthenticated())
	require.Nil(t, env.auth.CurrentUser())

	require.True(t, env.auth.Login(ctx, "a@x.com", "pw"))
	require.Equal(t, created.ID, env.auth.CurrentUser().ID)

	env.auth.Logout(ctx)
	assert.False(t, env.auth.Login(ctx, "a@x.com", "wrong"))
	assert.False(t, env.auth.IsAuthenticated())
}

func TestAuth_LoginByNameIsCaseInsensitive(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	require.True(t, env.auth.Signup(ctx, "a@x.com", "pw", "Alice"))
	env.auth.Logout(ctx)

	assert.True(t, env.auth.Login(ctx, "ALICE", "pw"))
}

func TestAuth_SignupRejectsDuplicates(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	require.True(t, env.auth.Signup(ctx, "a@x.com", "pw", "Alice"))

	assert.False(t, env.auth.Signup(ctx, "a@x.com", "pw", "Other"))
	assert.False(t, env.auth.Signup(ctx, "b@x.com", "pw", "alice"),
		"name uniqueness is case-insensitive")
}

func TestAuth_LoginUnknownIdentifier(t *testing.T) {
	env := setupEnv(t)

	assert.False(t, env.auth.Login(context.Background(), "nobody", "pw"))
}

func TestAuth_ArtificialDelayApplies(t *testing.T) {
	env := setupEnv(t)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	delayed := NewAuthService(env.identity, env.session, 30*time.Millisecond, log)

	start := time.Now()
	delayed.Login(context.Background(), "nobody", "pw")
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestAuth_DelaySkippedOnDoneContext(t *testing.T) {
	env := setupEnv(t)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	delayed := NewAuthService(env.identity, env.session, 5*time.Second, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	delayed.Login(ctx, "nobody", "pw")
	assert.Less(t, time.Since(start), time.Second)
}
