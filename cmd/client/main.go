package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophspend/internal/buildinfo"
	"github.com/dmitrijs2005/gophspend/internal/client/cli"
	"github.com/dmitrijs2005/gophspend/internal/client/client"
	"github.com/dmitrijs2005/gophspend/internal/client/config"
	"github.com/dmitrijs2005/gophspend/internal/client/services"
	"github.com/dmitrijs2005/gophspend/internal/client/tokenstore"
	"github.com/dmitrijs2005/gophspend/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	store, backend, err := tokenstore.Open(ctx, tokenstore.Options{
		Backend: cfg.StorageBackend,
		Path:    cfg.StoragePath,
		Service: cfg.KeyringService,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("token store: %w", err)
	}
	defer store.Close()

	api := client.New(cfg.ServerURL, client.StoreTokens(store),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger))

	session := services.NewSession(api, store, logger)
	expenses := services.NewExpenseService(api, session, logger)

	app := cli.NewApp(cli.Deps{
		Config:     cfg,
		Backend:    backend,
		Session:    session,
		Categories: services.NewCategoryService(api, session, logger),
		Expenses:   expenses,
		Dashboard:  services.NewDashboardService(expenses, logger),
		Logger:     logger,
	})
	app.Run(ctx)

	return nil
}
