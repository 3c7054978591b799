package sheets

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ritamartins/budgie/internal/budget"
)

// Accepted date layouts, most common first. The sheet is written with
// time.DateOnly; the rest cover hand-edited rows.
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02-01-2006",
	"2/1/2006",
}

// parseTransactionRow converts one sheet row into a Transaction. Rows that
// are entirely empty are dropped (ok=false). Malformed cells never fail the
// row: an unparseable date stays the zero time, an unparseable amount stays
// zero. Month filtering downstream treats the zero date as "no month".
func parseTransactionRow(row []any) (budget.Transaction, bool) {
	if isEmptyRow(row) {
		return budget.Transaction{}, false
	}

	return budget.Transaction{
		Date:        parseDate(cellString(row, 0)),
		Amount:      parseAmount(cell(row, 1)),
		Currency:    cellString(row, 2),
		Category:    cellString(row, 3),
		Description: cellString(row, 4),
		AmountEUR:   parseAmount(cell(row, 5)),
	}, true
}

// parseRuleRow converts one Budget_Rules row. Rows without a category are
// dropped.
func parseRuleRow(row []any) (budget.BudgetRule, bool) {
	category := cellString(row, 0)
	if category == "" {
		return budget.BudgetRule{}, false
	}

	return budget.BudgetRule{
		Category:       category,
		MonthlyLimit:   parseAmount(cell(row, 1)),
		AlertThreshold: parseAmount(cell(row, 2)),
	}, true
}

func isEmptyRow(row []any) bool {
	for i := range row {
		if cellString(row, i) != "" {
			return false
		}
	}

	return true
}

func cell(row []any, i int) any {
	if i >= len(row) {
		return nil
	}

	return row[i]
}

func cellString(row []any, i int) string {
	v := cell(row, i)
	if v == nil {
		return ""
	}

	s, ok := v.(string)
	if !ok {
		return strings.TrimSpace(decimalFromNumber(v).String())
	}

	return strings.TrimSpace(s)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

// parseAmount coerces a cell to a decimal. The Sheets API hands back strings
// under FORMATTED_VALUE and float64 under JSON number decoding; both occur
// in the wild. Anything unparseable is zero.
func parseAmount(v any) decimal.Decimal {
	switch val := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(val)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(val, ",", ".")))
		if err != nil {
			return decimal.Zero
		}

		return d
	default:
		return decimalFromNumber(v)
	}
}

func decimalFromNumber(v any) decimal.Decimal {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val)
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	default:
		return decimal.Zero
	}
}
