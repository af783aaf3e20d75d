// Package cli implements the interactive FamVault shell: account
// registration and login, profile management, and PIN changes against
// the local session manager.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/tobim/famvault/internal/config"
	"github.com/tobim/famvault/internal/logging"
	"github.com/tobim/famvault/internal/session"
	"github.com/tobim/famvault/internal/store"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	manager *session.Manager
	store   *store.SQLiteStore
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	st, err := store.OpenSQLiteStore(c.DatabasePath)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.StoreTimeout)
	defer cancel()
	if err := st.Ready(ctx); err != nil {
		st.Close()
		return nil, err
	}

	return &App{
		config:  c,
		manager: session.NewManager(st, log),
		store:   st,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isSignedIn() bool {
	return a.manager.SignedIn()
}

// storeCtx bounds a single store-backed operation with the configured
// timeout, so a hung store call cannot block the shell forever.
func (a *App) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.StoreTimeout)
}
