package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/taskmeet/internal/config"
	"github.com/dmitrijs2005/taskmeet/internal/identity"
	"github.com/dmitrijs2005/taskmeet/internal/logging"
	"github.com/dmitrijs2005/taskmeet/internal/services"
	"github.com/dmitrijs2005/taskmeet/internal/session"
	"github.com/dmitrijs2005/taskmeet/internal/storage"
)

// App wires the storage substrate, identity, session, and the per-collection
// stores behind the interactive shell.
type App struct {
	config   *config.Config
	store    storage.Storage
	session  *session.Manager
	auth     services.AuthService
	tasks    *services.TaskStore
	meetings *services.MeetingStore
	log      logging.Logger
	reader   *bufio.Reader
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		return storage.NewSQLiteStorage(ctx, cfg.StorePath)
	case config.BackendFile:
		return storage.NewFileStorage(cfg.StorePath)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	st, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	id := identity.NewStore(st, log)
	sess := session.NewManager(st, id, log)
	if err := sess.Init(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	a := &App{
		config:   cfg,
		store:    st,
		session:  sess,
		auth:     services.NewAuthService(id, sess, cfg.AuthDelay, log),
		tasks:    services.NewTaskStore(id, sess, log),
		meetings: services.NewMeetingStore(id, sess, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}
	a.refresh(ctx)

	return a, nil
}

// refresh re-mirrors both collections for whoever the session points at.
func (a *App) refresh(ctx context.Context) {
	a.tasks.Refresh(ctx)
	a.meetings.Refresh(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.auth.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Warn(ctx, "failed to close storage", "error", err)
		}
	}()

	printlnFn("Welcome to taskmeet (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
