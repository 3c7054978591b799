package sheets

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionRow(t *testing.T) {
	tests := []struct {
		name string
		row  []any

		wantOK       bool
		wantDate     time.Time
		wantAmount   string
		wantCurrency string
		wantEUR      string
	}{
		{
			name:         "FullRow",
			row:          []any{"2025-03-15", "1000", "CZK", "Food", "groceries", "40"},
			wantOK:       true,
			wantDate:     time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantAmount:   "1000",
			wantCurrency: "CZK",
			wantEUR:      "40",
		},
		{
			name:         "NumericCellsFromAPI",
			row:          []any{"2025-03-15", float64(12.5), "EUR", "Fun", "", float64(12.5)},
			wantOK:       true,
			wantDate:     time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantAmount:   "12.5",
			wantCurrency: "EUR",
			wantEUR:      "12.5",
		},
		{
			name:         "BadDateCoercedToZeroTime",
			row:          []any{"not a date", "10", "EUR", "Food", "", "10"},
			wantOK:       true,
			wantDate:     time.Time{},
			wantAmount:   "10",
			wantCurrency: "EUR",
			wantEUR:      "10",
		},
		{
			name:         "BadAmountCoercedToZero",
			row:          []any{"2025-03-15", "ten", "EUR", "Food", "", "abc"},
			wantOK:       true,
			wantDate:     time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantAmount:   "0",
			wantCurrency: "EUR",
			wantEUR:      "0",
		},
		{
			name:         "ShortRowPadded",
			row:          []any{"2025-03-15", "10"},
			wantOK:       true,
			wantDate:     time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantAmount:   "10",
			wantCurrency: "",
			wantEUR:      "0",
		},
		{
			name:         "CommaDecimalSeparator",
			row:          []any{"2025-03-15", "12,50", "EUR", "Food", "", "12,50"},
			wantOK:       true,
			wantDate:     time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantAmount:   "12.5",
			wantCurrency: "EUR",
			wantEUR:      "12.5",
		},
		{
			name:   "EmptyRowDropped",
			row:    []any{"", "", "", "", "", ""},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, ok := parseTransactionRow(tt.row)
			if !tt.wantOK {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.wantDate, tx.Date)
			assert.True(t, tx.Amount.Equal(decimal.RequireFromString(tt.wantAmount)), "Amount = %s", tx.Amount)
			assert.Equal(t, tt.wantCurrency, tx.Currency)
			assert.True(t, tx.AmountEUR.Equal(decimal.RequireFromString(tt.wantEUR)), "AmountEUR = %s", tx.AmountEUR)
		})
	}
}

func TestParseRuleRow(t *testing.T) {
	rule, ok := parseRuleRow([]any{"Food", "300", "270"})
	require.True(t, ok)
	assert.Equal(t, "Food", rule.Category)
	assert.True(t, rule.MonthlyLimit.Equal(decimal.RequireFromString("300")))
	assert.True(t, rule.AlertThreshold.Equal(decimal.RequireFromString("270")))

	_, ok = parseRuleRow([]any{"", "300", "270"})
	assert.False(t, ok)

	rule, ok = parseRuleRow([]any{"Rent", float64(400)})
	require.True(t, ok)
	assert.True(t, rule.MonthlyLimit.Equal(decimal.RequireFromString("400")))
	assert.True(t, rule.AlertThreshold.IsZero())
}
