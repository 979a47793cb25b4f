// Package server initializes and runs the catalog API server.
// It opens the database, applies migrations, starts the HTTP server and
// handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/catalog/internal/buildinfo"
	"github.com/dmitrijs2005/catalog/internal/logging"
	"github.com/dmitrijs2005/catalog/internal/server/config"
	"github.com/dmitrijs2005/catalog/internal/server/httpserver"
	"github.com/dmitrijs2005/catalog/internal/server/repositories/repomanager"
)

type App struct {
	config *config.Config
	logger logging.Logger
	flush  func() error
	db     *sql.DB
	repos  repomanager.RepositoryManager
}

// NewApp builds the logger and connects to the database. Migrations run in Run.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, flush, err := logging.New(c.LogBackend, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, err := repomanager.Open(ctx, c.DSN())
	if err != nil {
		_ = flush()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{
		config: c,
		logger: logger,
		flush:  flush,
		db:     db,
		repos:  repomanager.NewPostgresRepositoryManager(),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.close(ctx)

	app.logger.Info(ctx, "Starting app...",
		"version", buildinfo.Version, "commit", buildinfo.Commit, "build_date", buildinfo.BuildDate)

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err)
		return err
	}

	app.initSignalHandler(cancelFunc)

	srv := httpserver.New(httpserver.Deps{
		DB:        app.db,
		Repos:     app.repos,
		Config:    app.config,
		Logger:    app.logger,
		StartTime: time.Now(),
	})

	var (
		wg       sync.WaitGroup
		serveErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Start(ctx); err != nil {
			app.logger.Error(ctx, "HTTP server failed", "error", err)
			serveErr = err
			cancelFunc()
		}
	}()

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.config.ShutdownTimeout)
	defer cancel()
	stopErr := srv.Stop(stopCtx)

	wg.Wait()
	return errors.Join(serveErr, stopErr)
}

func (app *App) close(ctx context.Context) {
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err)
	}
	_ = app.flush()
}
