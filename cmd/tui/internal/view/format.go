package view

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a EUR amount with two decimals.
func FormatMoney(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format(time.DateOnly)
}
