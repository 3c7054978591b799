package budget

import "github.com/shopspring/decimal"

// RateTable maps a currency code to its multiplier against the reference
// currency (EUR). Tables are snapshots: amounts are converted once, at entry
// time, and the result is persisted (see Transaction.AmountEUR).
type RateTable map[string]decimal.Decimal

// DefaultRates is the built-in rate snapshot.
func DefaultRates() RateTable {
	return RateTable{
		CurrencyEUR: decimal.NewFromFloat(1.0),
		CurrencyCZK: decimal.NewFromFloat(0.040),
		CurrencyPLN: decimal.NewFromFloat(0.23),
		CurrencyGBP: decimal.NewFromFloat(1.17),
		CurrencyUSD: decimal.NewFromFloat(0.92),
		CurrencyMXN: decimal.NewFromFloat(0.054),
		CurrencyHUF: decimal.NewFromFloat(0.0026),
	}
}

// Normalize converts amount in the given currency to the reference currency,
// rounded to 2 decimal places (ties to even).
//
// An unknown currency code falls back to a 1:1 rate rather than erroring.
// This is intentional: the entry forms only offer known codes, and imported
// data with an odd code is better recorded as-is than rejected.
func (r RateTable) Normalize(amount decimal.Decimal, currency string) decimal.Decimal {
	rate, ok := r[currency]
	if !ok {
		return amount.RoundBank(2)
	}

	return amount.Mul(rate).RoundBank(2)
}
