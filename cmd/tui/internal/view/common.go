package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const ledgerTimeout = 15 * time.Second

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// LedgerCtx returns a context with a standard timeout for ledger calls.
func LedgerCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ledgerTimeout)
}
