package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"coinfolio/internal/config"
	"coinfolio/internal/database"
	"coinfolio/internal/logger"
	"coinfolio/internal/market"
	"coinfolio/internal/services"
	"coinfolio/internal/storage"
	"coinfolio/internal/store"
)

// app is the wired dependency graph shared by every command.
type app struct {
	cfg     *config.Config
	db      *database.Manager
	tracker services.TrackerServicer
}

// openDatabase loads configuration and opens the migrated database.
func openDatabase() (*config.Config, *database.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg.StoragePath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	return cfg, dbManager, nil
}

// newApp wires configuration, storage, the market provider and the tracker.
// Holdings are loaded from storage; the market snapshot starts empty.
func newApp(ctx context.Context) (*app, error) {
	cfg, dbManager, err := openDatabase()
	if err != nil {
		return nil, err
	}

	if err := dbManager.RunMigrations(); err != nil {
		_ = dbManager.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	s := store.New(storage.NewSQLStore(dbManager.DB()), cfg.StorageKey)
	holdings := s.Load(ctx)
	logger.Get().Debugw("holdings loaded", "count", len(holdings), "path", cfg.StoragePath)

	provider := market.NewCoinGeckoProvider(
		&http.Client{Timeout: cfg.RequestTimeout},
		cfg.MarketURL,
		cfg.VsCurrency,
		cfg.MarketPerPage,
	)

	tracker := services.NewTrackerService(s, provider, services.TrackerOptions{
		RefetchOnRefresh: cfg.RefetchOnRefresh,
	})

	return &app{cfg: cfg, db: dbManager, tracker: tracker}, nil
}

// loadMarkets fetches the snapshot for a one-shot command. On failure a
// notice goes to w and the command carries on without market prices.
func (a *app) loadMarkets(ctx context.Context, w io.Writer) bool {
	if err := a.tracker.LoadMarkets(ctx); err != nil {
		fmt.Fprintln(w, "market data unavailable, using recorded prices")
		return false
	}
	return true
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		logger.Get().Warnw("closing database failed", "error", err)
	}
}
