package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status classifies how the current month's spend tracks against the budget.
type Status string

const (
	StatusOK       Status = "OK"
	StatusWarning  Status = "WARNING"
	StatusCritical Status = "CRITICAL"
)

// LimitStatus classifies a single category against its monthly ceiling.
type LimitStatus string

const (
	LimitOK       LimitStatus = "OK"
	LimitExceeded LimitStatus = "Exceeded"
)

// Well-known currency codes accepted by the entry form. The rate table is the
// authority; codes outside this set are normalized 1:1 (see RateTable).
const (
	CurrencyEUR = "EUR"
	CurrencyCZK = "CZK"
	CurrencyPLN = "PLN"
	CurrencyGBP = "GBP"
	CurrencyUSD = "USD"
	CurrencyHUF = "HUF"
	CurrencyMXN = "MXN"
)

// Default spending categories. Categories are free strings at the ledger;
// these are the ones the entry form offers.
const (
	CategoryFood   = "Food"
	CategoryRent   = "Rent"
	CategoryTravel = "Travel"
	CategoryFun    = "Fun"
	CategoryOther  = "Other"
)

// Transaction is one spending event as stored in the ledger.
//
// AmountEUR is Amount converted to EUR with the rate table in force when the
// row was created. It is persisted next to Amount and never re-derived, so a
// later rate change does not rewrite history.
//
// A zero Date marks a row whose date could not be parsed at ingestion; such
// rows belong to no month and are skipped by the month filter.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Currency    string
	Category    string
	Description string
	AmountEUR   decimal.Decimal
}

// BudgetRule is a per-category monthly ceiling, curated outside this app and
// read-only here. AlertThreshold is advisory; nothing acts on it yet.
type BudgetRule struct {
	Category       string
	MonthlyLimit   decimal.Decimal
	AlertThreshold decimal.Decimal
}

// BurnRateStats is the month-to-date budget picture, recomputed on every
// read. Remaining may be negative; PercentUsed is capped at 100 for display
// and computed independently of Remaining.
type BurnRateStats struct {
	TotalSpent  decimal.Decimal
	Remaining   decimal.Decimal
	DaysLeft    int
	DailyLimit  decimal.Decimal
	PercentUsed int
	Status      Status
}

// CategoryStatus is one rule's month-to-date spend versus its ceiling.
type CategoryStatus struct {
	Category     string
	Spent        decimal.Decimal
	MonthlyLimit decimal.Decimal
	Remaining    decimal.Decimal
	Status       LimitStatus
}

// Currencies lists the codes offered by entry forms, reference currency first.
func Currencies() []string {
	return []string{CurrencyEUR, CurrencyCZK, CurrencyPLN, CurrencyGBP, CurrencyUSD, CurrencyHUF, CurrencyMXN}
}

// Categories lists the default spending buckets offered by entry forms.
func Categories() []string {
	return []string{CategoryFood, CategoryRent, CategoryTravel, CategoryFun, CategoryOther}
}

// inMonth reports whether t falls in the same calendar month and year as
// today. Zero times never match.
func inMonth(t, today time.Time) bool {
	if t.IsZero() {
		return false
	}

	return t.Month() == today.Month() && t.Year() == today.Year()
}

// daysInMonth returns the number of days in today's month. Day 0 of the next
// month normalizes to the last day of this one.
func daysInMonth(today time.Time) int {
	return time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, today.Location()).Day()
}
