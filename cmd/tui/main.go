package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/ritamartins/budgie/cmd/tui/internal/view"
	"github.com/ritamartins/budgie/internal/budget"
	"github.com/ritamartins/budgie/internal/config"
	"github.com/ritamartins/budgie/internal/database"
	"github.com/ritamartins/budgie/internal/ledger/postgres"
	"github.com/ritamartins/budgie/internal/ledger/sheets"
)

type model struct {
	budgetService *budget.Service

	currentView View

	dashboardView view.DashboardModel
	addView       view.AddModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewAdd       View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ledger, err := newLedger(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open ledger", "backend", cfg.Ledger.Backend, "error", err)
		os.Exit(1)
	}

	limit := decimal.NewFromFloat(cfg.Budget.MonthlyLimit)
	svc := budget.NewService(ledger, budget.DefaultRates(), limit)

	return model{
		budgetService: svc,
		currentView:   ViewMenu,
		dashboardView: view.NewDashboardModel(svc),
		addView:       view.NewAddModel(svc),
	}
}

func newLedger(ctx context.Context, cfg *config.Config) (budget.Ledger, error) {
	switch cfg.Ledger.Backend {
	case config.BackendSheets:
		return sheets.New(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID)
	case config.BackendPostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		store := postgres.New(db)
		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}

		return store, nil
	default:
		return nil, fmt.Errorf("unknown ledger backend: %s", cfg.Ledger.Backend)
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.budgetService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(m.budgetService)

				return m, m.addView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Budgie TUI\n\n" +
				"1. Dashboard\n" +
				"2. Add Transaction\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewAdd:
		return m.addView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
