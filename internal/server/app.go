// Package server wires the stub API: it opens the SQLite database, runs
// migrations, builds the services and serves HTTP until a shutdown signal.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophspend/internal/logging"
	"github.com/dmitrijs2005/gophspend/internal/server/config"
	"github.com/dmitrijs2005/gophspend/internal/server/httpserver"
	"github.com/dmitrijs2005/gophspend/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophspend/internal/server/repositories/sqlitex"
	"github.com/dmitrijs2005/gophspend/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpserver.HTTPServer
}

// NewApp opens storage and builds the HTTP server. Logs go to logOut.
func NewApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(logOut, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, err := sqlitex.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewSQLiteRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	s := httpserver.NewHTTPServer(c.EndpointAddr, logger,
		services.NewUserService(db, rm, c),
		services.NewCategoryService(db, rm),
		services.NewExpenseService(db, rm))

	return &App{config: c, logger: logger, db: db, server: s}, nil
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM/SIGQUIT arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "db close", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting app...")

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(context.Background(), "App stopped")
	return nil
}

// Main is the body of cmd/server.
func Main() int {
	cfg := config.LoadConfig()

	app, err := NewApp(context.Background(), cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(context.Background()); err != nil {
		return 1
	}
	return 0
}
