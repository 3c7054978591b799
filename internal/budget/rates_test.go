package budget_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ritamartins/budgie/internal/budget"
)

func TestRateTable_Normalize(t *testing.T) {
	rates := budget.DefaultRates()

	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{name: "EURIdentity", amount: "100", currency: "EUR", want: "100"},
		{name: "CZK", amount: "1000", currency: "CZK", want: "40"},
		{name: "PLN", amount: "100", currency: "PLN", want: "23"},
		{name: "GBP", amount: "100", currency: "GBP", want: "117"},
		{name: "USD", amount: "100", currency: "USD", want: "92"},
		{name: "HUF", amount: "10000", currency: "HUF", want: "26"},
		{name: "MXN", amount: "1000", currency: "MXN", want: "54"},
		{name: "UnknownCurrencyFallsBack1To1", amount: "50", currency: "XYZ", want: "50"},
		{name: "RoundsToTwoDecimals", amount: "123", currency: "HUF", want: "0.32"},
		{name: "TiesRoundToEven", amount: "1.125", currency: "CZK", want: "0.04"},
		{name: "Zero", amount: "0", currency: "CZK", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rates.Normalize(decimal.RequireFromString(tt.amount), tt.currency)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"Normalize(%s, %s) = %s, want %s", tt.amount, tt.currency, got, tt.want)
		})
	}
}

func TestRateTable_NormalizeIdentityForEUR(t *testing.T) {
	rates := budget.DefaultRates()

	for _, amount := range []string{"0", "0.01", "12.34", "999.99", "100000"} {
		a := decimal.RequireFromString(amount)
		assert.True(t, rates.Normalize(a, "EUR").Equal(a), "amount %s", amount)
	}
}
