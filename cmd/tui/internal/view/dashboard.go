package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ritamartins/budgie/internal/budget"
)

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Align(lipgloss.Center)

	cardLabelStyle = lipgloss.NewStyle().Faint(true)

	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type DashboardModel struct {
	CommonModel
	svc *budget.Service

	table    table.Model
	overview *budget.Overview
	loading  bool
	err      error
}

type loadOverviewMsg struct {
	overview *budget.Overview
	err      error
}

func NewDashboardModel(svc *budget.Service) DashboardModel {
	columns := []table.Column{
		{Title: "Category", Width: 12},
		{Title: "Spent", Width: 10},
		{Title: "Limit", Width: 10},
		{Title: "Remaining", Width: 10},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(7),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return DashboardModel{svc: svc, table: t, loading: true}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "Esc: back | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := LedgerCtx()
		defer cancel()

		overview, err := m.svc.Overview(ctx)

		return loadOverviewMsg{overview: overview, err: err}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadOverviewMsg:
		m.loading = false

		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.overview = msg.overview
		m.refreshTable()

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *DashboardModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.overview.Categories))

	for _, c := range m.overview.Categories {
		rows = append(rows, table.Row{
			c.Category,
			FormatMoney(c.Spent),
			FormatMoney(c.MonthlyLimit),
			FormatMoney(c.Remaining),
			string(c.Status),
		})
	}

	m.table.SetRows(rows)
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Syncing...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	stats := m.overview.Stats

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Budget Left", FormatMoney(stats.Remaining)),
		card("Daily Limit", FormatMoney(stats.DailyLimit)),
		card("Days Left", fmt.Sprintf("%d", stats.DaysLeft)),
		card("Used", fmt.Sprintf("%d%%", stats.PercentUsed)),
	)

	sections := []string{
		cards,
		usageBar(stats),
		statusLine(stats.Status),
		"",
		"Category Limits",
		m.table.View(),
		"",
		m.recentView(),
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m DashboardModel) recentView() string {
	if len(m.overview.Recent) == 0 {
		return cardLabelStyle.Render("No transactions yet.")
	}

	lines := []string{"Recent Activity"}

	for _, tx := range m.overview.Recent {
		lines = append(lines, fmt.Sprintf("%s  %8s %s  %-8s %s",
			FormatDate(tx.Date),
			tx.Amount.StringFixed(2),
			tx.Currency,
			tx.Category,
			tx.Description,
		))
	}

	return strings.Join(lines, "\n")
}

func card(label, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		cardLabelStyle.Render(label),
		value,
	))
}

// usageBar renders the month's budget consumption as a fixed-width bar.
func usageBar(stats budget.BurnRateStats) string {
	const width = 40

	filled := stats.PercentUsed * width / 100
	if filled > width {
		filled = width
	}

	style := okStyle
	switch {
	case stats.PercentUsed > 90:
		style = criticalStyle
	case stats.PercentUsed > 75:
		style = warningStyle
	}

	bar := style.Render(strings.Repeat("█", filled)) +
		cardLabelStyle.Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("%s %d%%", bar, stats.PercentUsed)
}

func statusLine(status budget.Status) string {
	switch status {
	case budget.StatusCritical:
		return criticalStyle.Render("CRITICAL: You have exceeded your budget!")
	case budget.StatusWarning:
		return warningStyle.Render("Warning: Less than 10% of budget remaining.")
	default:
		return okStyle.Render("On track.")
	}
}
