package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/ritamartins/budgie/internal/budget"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

type AddModel struct {
	CommonModel
	svc *budget.Service

	form *huh.Form

	date        string
	amount      string
	currency    string
	category    string
	description string

	saving bool
	status string
	err    error
}

type transactionSavedMsg struct {
	tx  *budget.Transaction
	err error
}

func NewAddModel(svc *budget.Service) AddModel {
	m := AddModel{
		svc:      svc,
		date:     time.Now().Format(time.DateOnly),
		currency: budget.CurrencyEUR,
		category: budget.CategoryOther,
	}
	m.form = m.newForm()

	return m
}

func (m AddModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&m.date).
				Validate(validateDate),
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.amount).
				Validate(validateAmount),
			huh.NewSelect[string]().
				Key("currency").
				Title("Currency").
				Options(huh.NewOptions(budget.Currencies()...)...).
				Value(&m.currency),
			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(huh.NewOptions(budget.Categories()...)...).
				Value(&m.category),
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.description),
		),
	).WithWidth(45).WithShowHelp(false)
}

func validateDate(s string) error {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}

	return nil
}

func validateAmount(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}

	if !d.IsPositive() {
		return fmt.Errorf("must be positive")
	}

	return nil
}

func (m AddModel) Title() string { return "Add Transaction" }

func (m AddModel) ShortHelp() string {
	return "Esc: back | Enter: next field"
}

func (m AddModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transactionSavedMsg:
		m.saving = false

		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.status = fmt.Sprintf("Added %s %s (%s EUR)",
			msg.tx.Amount.StringFixed(2),
			msg.tx.Currency,
			msg.tx.AmountEUR.StringFixed(2),
		)

		m.amount = ""
		m.description = ""
		m.form = m.newForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && !m.saving {
		m.saving = true
		m.err = nil
		m.status = ""

		return m, m.saveCmd()
	}

	return m, cmd
}

func (m AddModel) saveCmd() tea.Cmd {
	date, _ := time.Parse(time.DateOnly, m.form.GetString("date"))
	amount, _ := decimal.NewFromString(m.form.GetString("amount"))

	params := budget.AddParams{
		Date:        date,
		Amount:      amount,
		Currency:    m.form.GetString("currency"),
		Category:    m.form.GetString("category"),
		Description: m.form.GetString("description"),
	}

	return func() tea.Msg {
		ctx, cancel := LedgerCtx()
		defer cancel()

		tx, err := m.svc.Add(ctx, params)

		return transactionSavedMsg{tx: tx, err: err}
	}
}

func (m AddModel) View() string {
	if m.saving {
		return lipgloss.NewStyle().Padding(2).Render("Saving...")
	}

	sections := []string{m.form.View()}

	if m.err != nil {
		sections = append(sections, criticalStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}
