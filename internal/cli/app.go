// Package cli implements the getway command tree. The root command acts
// as the composition root: it loads configuration once, builds the store,
// client, and services, and hands them to subcommands. No command reads
// module-level singletons.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/getwaylabs/getway/internal/analytics"
	"github.com/getwaylabs/getway/internal/api"
	"github.com/getwaylabs/getway/internal/auth"
	"github.com/getwaylabs/getway/internal/config"
	"github.com/getwaylabs/getway/internal/journeys"
	"github.com/getwaylabs/getway/internal/owner"
	"github.com/getwaylabs/getway/internal/posts"
	"github.com/getwaylabs/getway/internal/session"
)

// App carries the dependencies shared by every command.
type App struct {
	Config config.ClientConfig
	Logger *slog.Logger

	Store  session.Store
	Client *api.Client

	Auth      *auth.Service
	Posts     *posts.Service
	Journeys  *journeys.Service
	Owner     *owner.Service
	Analytics *analytics.Service
}

// init wires the object graph from a loaded configuration.
func (a *App) init(cfg config.ClientConfig, logger *slog.Logger) error {
	a.Config = cfg
	a.Logger = logger

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return err
	}
	store, err := session.NewSQLiteStore(dbPath, cfg.Keys, logger)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	a.Store = store
	a.Client = api.New(cfg, store, logger)

	a.Auth = auth.NewService(a.Client, a.Store, logger)
	a.Posts = posts.NewService(a.Client, logger)
	a.Journeys = journeys.NewService(a.Client, logger)
	a.Owner = owner.NewService(a.Client, logger)
	a.Analytics = analytics.NewService(a.Client, logger)
	return nil
}

// Close releases the session store.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
