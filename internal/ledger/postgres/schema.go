package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id          UUID PRIMARY KEY,
	date        DATE NOT NULL,
	amount      NUMERIC(12,2) NOT NULL,
	currency    TEXT NOT NULL DEFAULT 'EUR',
	category    TEXT NOT NULL DEFAULT 'Other',
	description TEXT NOT NULL DEFAULT '',
	amount_eur  NUMERIC(12,2) NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS transactions_date_idx ON transactions (date);

CREATE TABLE IF NOT EXISTS budget_rules (
	category        TEXT PRIMARY KEY,
	monthly_limit   NUMERIC(12,2) NOT NULL,
	alert_threshold NUMERIC(12,2) NOT NULL DEFAULT 0,
	position        INT NOT NULL DEFAULT 0
);
`

// Migrate bootstraps the schema and seeds the default category rules on an
// empty budget_rules table. Safe to run on every startup.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM budget_rules`).Scan(&count); err != nil {
		return fmt.Errorf("counting budget rules: %w", err)
	}

	if count > 0 {
		return nil
	}

	for i, rule := range defaultRules {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO budget_rules (category, monthly_limit, alert_threshold, position) VALUES ($1, $2, $3, $4)`,
			rule.Category, rule.MonthlyLimit, rule.AlertThreshold, i,
		)
		if err != nil {
			return fmt.Errorf("seeding rule %s: %w", rule.Category, err)
		}
	}

	return nil
}
