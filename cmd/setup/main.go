// Command setup bootstraps the ledger: for sheets it creates the
// Transactions and Budget_Rules worksheets with headers and default rules;
// for postgres it runs the schema migration. Safe to run more than once.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ritamartins/budgie/internal/config"
	"github.com/ritamartins/budgie/internal/database"
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

	ctx := context.Background()

	switch cfg.Ledger.Backend {
	case config.BackendSheets:
		store, err := sheets.New(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID)
		if err != nil {
			slog.Error("failed to connect to spreadsheet", "error", err)
			os.Exit(1)
		}

		if err := store.Setup(ctx); err != nil {
			slog.Error("sheet setup failed", "error", err)
			os.Exit(1)
		}

		slog.Info("sheet setup complete", "spreadsheet_id", cfg.Sheets.SpreadsheetID)

	case config.BackendPostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := postgres.New(db).Migrate(ctx); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}

		slog.Info("database setup complete", "database", cfg.DB.Name)

	default:
		slog.Error("unknown ledger backend", "backend", cfg.Ledger.Backend)
		os.Exit(1)
	}
}
