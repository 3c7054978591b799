// Package postgres implements the ledger over a Postgres database for
// self-hosted deployments. Same contract as the sheets backend: transactions
// are append-only rows, rules are read-only.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ritamartins/budgie/internal/budget"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(s scanner) (budget.Transaction, error) {
	var (
		tx       budget.Transaction
		date     time.Time
		currency sql.NullString
		category sql.NullString
		desc     sql.NullString
	)

	if err := s.Scan(&date, &tx.Amount, &currency, &category, &desc, &tx.AmountEUR); err != nil {
		return budget.Transaction{}, err
	}

	tx.Date = date
	tx.Currency = currency.String
	tx.Category = category.String
	tx.Description = desc.String

	return tx, nil
}

func (s *Store) Transactions(ctx context.Context) ([]budget.Transaction, error) {
	query := `
		SELECT date, amount, currency, category, description, amount_eur
		FROM transactions
		ORDER BY date ASC, created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []budget.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func (s *Store) Rules(ctx context.Context) ([]budget.BudgetRule, error) {
	query := `
		SELECT category, monthly_limit, alert_threshold
		FROM budget_rules
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing budget rules: %w", err)
	}
	defer rows.Close()

	var rules []budget.BudgetRule

	for rows.Next() {
		var rule budget.BudgetRule
		if err := rows.Scan(&rule.Category, &rule.MonthlyLimit, &rule.AlertThreshold); err != nil {
			return nil, fmt.Errorf("scanning budget rule: %w", err)
		}

		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (s *Store) Append(ctx context.Context, tx budget.Transaction) error {
	query := `
		INSERT INTO transactions (id, date, amount, currency, category, description, amount_eur, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`

	_, err := s.db.ExecContext(ctx, query,
		uuid.New(),
		tx.Date,
		tx.Amount,
		tx.Currency,
		tx.Category,
		tx.Description,
		tx.AmountEUR,
	)
	if err != nil {
		return fmt.Errorf("appending transaction: %w", err)
	}

	return nil
}

// defaultRules mirrors the seed the sheets backend writes on first setup.
var defaultRules = []budget.BudgetRule{
	{Category: budget.CategoryRent, MonthlyLimit: decimal.NewFromInt(400), AlertThreshold: decimal.NewFromInt(380)},
	{Category: budget.CategoryFood, MonthlyLimit: decimal.NewFromInt(300), AlertThreshold: decimal.NewFromInt(270)},
	{Category: budget.CategoryTravel, MonthlyLimit: decimal.NewFromInt(200), AlertThreshold: decimal.NewFromInt(180)},
	{Category: budget.CategoryFun, MonthlyLimit: decimal.NewFromInt(100), AlertThreshold: decimal.NewFromInt(90)},
	{Category: budget.CategoryOther, MonthlyLimit: decimal.NewFromInt(50), AlertThreshold: decimal.NewFromInt(45)},
}
