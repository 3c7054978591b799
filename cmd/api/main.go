package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/ritamartins/budgie/internal/budget"
	"github.com/ritamartins/budgie/internal/config"
	"github.com/ritamartins/budgie/internal/database"
	budgieHttp "github.com/ritamartins/budgie/internal/http"
	budgetHandler "github.com/ritamartins/budgie/internal/http/budget"
	importHandler "github.com/ritamartins/budgie/internal/http/importcsv"
	"github.com/ritamartins/budgie/internal/importer"
	"github.com/ritamartins/budgie/internal/ledger/postgres"
	"github.com/ritamartins/budgie/internal/ledger/sheets"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ledger, cleanup, err := newLedger(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open ledger", "backend", cfg.Ledger.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	limit := decimal.NewFromFloat(cfg.Budget.MonthlyLimit)

	var (
		budgetService = budget.NewService(ledger, budget.DefaultRates(), limit)
		importService = importer.NewService()
	)

	var (
		budgetH = budgetHandler.NewHandler(budgetService)
		importH = importHandler.NewHandler(importService, budgetService)
	)

	router := budgieHttp.New(budgetH, importH, cfg.Auth.Secret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "backend", cfg.Ledger.Backend)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// newLedger opens the configured backend. The returned cleanup is a no-op
// for sheets and closes the pool for postgres.
func newLedger(ctx context.Context, cfg *config.Config) (budget.Ledger, func(), error) {
	switch cfg.Ledger.Backend {
	case config.BackendSheets:
		store, err := sheets.New(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID)
		if err != nil {
			return nil, nil, err
		}

		return store, func() {}, nil

	case config.BackendPostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, nil, err
		}

		store := postgres.New(db)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		return store, func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown ledger backend: %s", cfg.Ledger.Backend)
	}
}
