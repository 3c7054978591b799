package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckCategoryLimits compares this month's per-category spend against the
// given rules and returns one row per rule, in rule order.
//
// The join is driven by the rules: a rule with no matching spend reports
// Spent 0, while spend in a category without a rule is not reported. Either
// input being empty yields an empty result. The month filter is the same one
// CalculateBurnRate applies, evaluated against the same today.
func CheckCategoryLimits(transactions []Transaction, rules []BudgetRule, today time.Time) []CategoryStatus {
	if len(transactions) == 0 || len(rules) == 0 {
		return nil
	}

	spentByCategory := make(map[string]decimal.Decimal, len(rules))

	for _, tx := range transactions {
		if !inMonth(tx.Date, today) {
			continue
		}

		spentByCategory[tx.Category] = spentByCategory[tx.Category].Add(tx.AmountEUR)
	}

	statuses := make([]CategoryStatus, 0, len(rules))

	for _, rule := range rules {
		spent := spentByCategory[rule.Category]
		remaining := rule.MonthlyLimit.Sub(spent)

		status := LimitOK
		if remaining.IsNegative() {
			status = LimitExceeded
		}

		statuses = append(statuses, CategoryStatus{
			Category:     rule.Category,
			Spent:        spent.RoundBank(2),
			MonthlyLimit: rule.MonthlyLimit,
			Remaining:    remaining.RoundBank(2),
			Status:       status,
		})
	}

	return statuses
}
