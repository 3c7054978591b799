package generic_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritamartins/budgie/internal/budget"
	"github.com/ritamartins/budgie/internal/importer/generic"
)

func TestParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"Date,Amount,Currency,Category,Description",
		"2025-03-01,12.50,EUR,Food,lunch",
		"2025-03-02,250,CZK,Travel,tram pass",
		"2025-03-03,9.99,,,",
	}, "\n")

	got, err := generic.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), got[0].Date)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "EUR", got[0].Currency)
	assert.Equal(t, "Food", got[0].Category)
	assert.Equal(t, "lunch", got[0].Description)

	assert.Equal(t, "CZK", got[1].Currency)

	// Missing currency defaults to the reference currency.
	assert.Equal(t, budget.CurrencyEUR, got[2].Currency)
	assert.Empty(t, got[2].Category)
}

func TestParser_ParseSemicolonWithPreamble(t *testing.T) {
	input := strings.Join([]string{
		"Account export;;;",
		"Generated;2025-03-20;;",
		";;;",
		"Datum;Částka;Měna;Popis",
		"15.03.2025;1.250,00;CZK;groceries",
		"16.03.2025;99,50;CZK;cinema",
		"Balance;12.345,00;;",
	}, "\n")

	got, err := generic.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), got[0].Date)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("1250")), "Amount = %s", got[0].Amount)
	assert.Equal(t, "CZK", got[0].Currency)
	assert.Equal(t, "groceries", got[0].Description)

	assert.True(t, got[1].Amount.Equal(decimal.RequireFromString("99.5")))
}

func TestParser_ParseSkipsUnparseableRows(t *testing.T) {
	input := strings.Join([]string{
		"Date,Amount",
		"2025-03-01,10",
		"not a date,10",
		"2025-03-02,not a number",
		"2025-03-03,-5",
		"2025-03-04,20",
	}, "\n")

	got, err := generic.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("10")))
	assert.True(t, got[1].Amount.Equal(decimal.RequireFromString("20")))
}

func TestParser_ParseNoHeader(t *testing.T) {
	input := "just,some,cells\nwithout,a,header\n"

	_, err := generic.NewParser().Parse(strings.NewReader(input))
	assert.Error(t, err)
}
