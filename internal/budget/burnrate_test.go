package budget_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ritamartins/budgie/internal/budget"
)

// fixed "today": 2025-03-15, so March has 31 days and 16 remain.
var today = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func eur(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tx(date time.Time, amountEUR string) budget.Transaction {
	return budget.Transaction{
		Date:      date,
		Amount:    eur(amountEUR),
		Currency:  budget.CurrencyEUR,
		Category:  budget.CategoryOther,
		AmountEUR: eur(amountEUR),
	}
}

func TestCalculateBurnRate(t *testing.T) {
	tests := []struct {
		name  string
		txs   []budget.Transaction
		limit string

		wantSpent     string
		wantRemaining string
		wantDaysLeft  int
		wantDaily     string
		wantPercent   int
		wantStatus    budget.Status
	}{
		{
			name:          "HalfUsed",
			txs:           []budget.Transaction{tx(today, "500")},
			limit:         "1000",
			wantSpent:     "500",
			wantRemaining: "500",
			wantDaysLeft:  16,
			wantDaily:     "31.25",
			wantPercent:   50,
			wantStatus:    budget.StatusOK,
		},
		{
			name:          "Breach",
			txs:           []budget.Transaction{tx(today, "1100")},
			limit:         "1000",
			wantSpent:     "1100",
			wantRemaining: "-100",
			wantDaysLeft:  16,
			wantDaily:     "-6.25",
			wantPercent:   100,
			wantStatus:    budget.StatusCritical,
		},
		{
			name:          "UnderTenPercentLeftWarns",
			txs:           []budget.Transaction{tx(today, "950")},
			limit:         "1000",
			wantSpent:     "950",
			wantRemaining: "50",
			wantDaysLeft:  16,
			wantDaily:     "3.12",
			wantPercent:   95,
			wantStatus:    budget.StatusWarning,
		},
		{
			name:          "ExactlyTenPercentLeftIsOK",
			txs:           []budget.Transaction{tx(today, "900")},
			limit:         "1000",
			wantSpent:     "900",
			wantRemaining: "100",
			wantDaysLeft:  16,
			wantDaily:     "6.25",
			wantPercent:   90,
			wantStatus:    budget.StatusOK,
		},
		{
			name:          "NoTransactions",
			txs:           nil,
			limit:         "1000",
			wantSpent:     "0",
			wantRemaining: "1000",
			wantDaysLeft:  16,
			wantDaily:     "62.5",
			wantPercent:   0,
			wantStatus:    budget.StatusOK,
		},
		{
			name: "OtherMonthsIgnored",
			txs: []budget.Transaction{
				tx(today, "100"),
				tx(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), "400"),
				tx(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), "400"),
			},
			limit:         "1000",
			wantSpent:     "100",
			wantRemaining: "900",
			wantDaysLeft:  16,
			wantDaily:     "56.25",
			wantPercent:   10,
			wantStatus:    budget.StatusOK,
		},
		{
			name: "UnparseableDateExcluded",
			txs: []budget.Transaction{
				tx(time.Time{}, "400"),
				tx(today, "100"),
			},
			limit:         "1000",
			wantSpent:     "100",
			wantRemaining: "900",
			wantDaysLeft:  16,
			wantDaily:     "56.25",
			wantPercent:   10,
			wantStatus:    budget.StatusOK,
		},
		{
			name:          "ZeroLimit",
			txs:           []budget.Transaction{tx(today, "50")},
			limit:         "0",
			wantSpent:     "50",
			wantRemaining: "-50",
			wantDaysLeft:  16,
			wantDaily:     "-3.12",
			wantPercent:   0,
			wantStatus:    budget.StatusCritical,
		},
		{
			name:          "PercentCappedRemainingNot",
			txs:           []budget.Transaction{tx(today, "2500")},
			limit:         "1000",
			wantSpent:     "2500",
			wantRemaining: "-1500",
			wantDaysLeft:  16,
			wantDaily:     "-93.75",
			wantPercent:   100,
			wantStatus:    budget.StatusCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := budget.CalculateBurnRate(tt.txs, eur(tt.limit), today)

			assert.True(t, got.TotalSpent.Equal(eur(tt.wantSpent)), "TotalSpent = %s, want %s", got.TotalSpent, tt.wantSpent)
			assert.True(t, got.Remaining.Equal(eur(tt.wantRemaining)), "Remaining = %s, want %s", got.Remaining, tt.wantRemaining)
			assert.Equal(t, tt.wantDaysLeft, got.DaysLeft)
			assert.True(t, got.DailyLimit.Equal(eur(tt.wantDaily)), "DailyLimit = %s, want %s", got.DailyLimit, tt.wantDaily)
			assert.Equal(t, tt.wantPercent, got.PercentUsed)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestCalculateBurnRate_LastDayOfMonth(t *testing.T) {
	lastDay := time.Date(2025, time.April, 30, 23, 0, 0, 0, time.UTC)

	got := budget.CalculateBurnRate([]budget.Transaction{tx(lastDay, "600")}, eur("1000"), lastDay)

	assert.Equal(t, 0, got.DaysLeft)
	assert.True(t, got.DailyLimit.IsZero(), "DailyLimit = %s, want 0", got.DailyLimit)
	assert.True(t, got.Remaining.Equal(eur("400")))
}

func TestCalculateBurnRate_Deterministic(t *testing.T) {
	txs := []budget.Transaction{tx(today, "123.45"), tx(today, "67.89")}

	first := budget.CalculateBurnRate(txs, eur("1000"), today)
	second := budget.CalculateBurnRate(txs, eur("1000"), today)

	assert.Equal(t, first, second)
}
