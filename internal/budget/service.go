package budget

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=ledger_mock.go -package=budget
type Ledger interface {
	Transactions(ctx context.Context) ([]Transaction, error)
	Rules(ctx context.Context) ([]BudgetRule, error)
	Append(ctx context.Context, tx Transaction) error
}

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidDate   = errors.New("date is required")
)

// recentLimit caps the recent-activity slice on the overview.
const recentLimit = 10

type Service struct {
	ledger Ledger
	rates  RateTable
	limit  decimal.Decimal
	now    func() time.Time
}

type Option func(*Service)

// WithClock overrides the wall clock, fixing "today" for the month filter
// and the burn-rate projection.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService builds a budget service over the given ledger. limit is the
// total monthly budget in EUR; rates is the conversion snapshot applied to
// new entries.
func NewService(ledger Ledger, rates RateTable, limit decimal.Decimal, opts ...Option) *Service {
	s := &Service{
		ledger: ledger,
		rates:  rates,
		limit:  limit,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Overview is one pull-compute cycle: everything the dashboard shows.
type Overview struct {
	Stats      BurnRateStats
	Categories []CategoryStatus
	Recent     []Transaction
}

// Overview reads the ledger and computes the month-to-date stats, the
// per-category limit rows, and the most recent transactions. Both engine
// passes see the same "today".
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	txs, err := s.ledger.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}

	rules, err := s.ledger.Rules(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading budget rules: %w", err)
	}

	today := s.now()

	return &Overview{
		Stats:      CalculateBurnRate(txs, s.limit, today),
		Categories: CheckCategoryLimits(txs, rules, today),
		Recent:     recent(txs, recentLimit),
	}, nil
}

// List returns all transactions from the ledger.
func (s *Service) List(ctx context.Context) ([]Transaction, error) {
	return s.ledger.Transactions(ctx)
}

// Rules returns all budget rules from the ledger.
func (s *Service) Rules(ctx context.Context) ([]BudgetRule, error) {
	return s.ledger.Rules(ctx)
}

// AddParams are the user-entered fields of a new transaction. The EUR amount
// is derived here, not supplied by the caller.
type AddParams struct {
	Date        time.Time
	Amount      decimal.Decimal
	Currency    string
	Category    string
	Description string
}

// Add normalizes the amount to EUR at the current rate snapshot and appends
// the transaction to the ledger.
func (s *Service) Add(ctx context.Context, params AddParams) (*Transaction, error) {
	tx, err := s.build(params)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Append(ctx, *tx); err != nil {
		return nil, fmt.Errorf("appending transaction: %w", err)
	}

	return tx, nil
}

// AddBatch appends a set of transactions, typically from a CSV import, and
// returns how many were written. Appends are independent rows; on failure
// the rows already written stay written.
func (s *Service) AddBatch(ctx context.Context, params []AddParams) (int, error) {
	for i, p := range params {
		tx, err := s.build(p)
		if err != nil {
			return i, fmt.Errorf("row %d: %w", i+1, err)
		}

		if err := s.ledger.Append(ctx, *tx); err != nil {
			return i, fmt.Errorf("appending row %d: %w", i+1, err)
		}
	}

	return len(params), nil
}

func (s *Service) build(params AddParams) (*Transaction, error) {
	if !params.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if params.Date.IsZero() {
		return nil, ErrInvalidDate
	}

	category := params.Category
	if category == "" {
		category = CategoryOther
	}

	return &Transaction{
		Date:        params.Date,
		Amount:      params.Amount,
		Currency:    params.Currency,
		Category:    category,
		Description: params.Description,
		AmountEUR:   s.rates.Normalize(params.Amount, params.Currency),
	}, nil
}

// recent returns up to n transactions, newest first. The input is not
// mutated.
func recent(txs []Transaction, n int) []Transaction {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}
