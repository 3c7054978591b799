package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// warnFraction is the remaining-budget share below which the month is flagged
// as WARNING (less than 10% left).
var warnFraction = decimal.NewFromFloat(0.1)

var hundred = decimal.NewFromInt(100)

// CalculateBurnRate computes the month-to-date budget picture for the month
// containing today.
//
// Only transactions dated in today's month and year count; rows with a zero
// (unparseable) date count toward no month. The projection divides what is
// left by the days left after today, so on the last day of the month the
// daily limit is 0 rather than a division by zero. A non-positive limit
// yields PercentUsed 0.
func CalculateBurnRate(transactions []Transaction, limit decimal.Decimal, today time.Time) BurnRateStats {
	totalSpent := decimal.Zero

	for _, tx := range transactions {
		if inMonth(tx.Date, today) {
			totalSpent = totalSpent.Add(tx.AmountEUR)
		}
	}

	remaining := limit.Sub(totalSpent)
	daysLeft := daysInMonth(today) - today.Day()

	dailyLimit := decimal.Zero
	if daysLeft > 0 {
		dailyLimit = remaining.DivRound(decimal.NewFromInt(int64(daysLeft)), 8)
	}

	percentUsed := 0
	if limit.IsPositive() {
		p := totalSpent.Div(limit).Mul(hundred).RoundBank(0).IntPart()
		if p > 100 {
			p = 100
		}

		percentUsed = int(p)
	}

	status := StatusOK

	switch {
	case remaining.IsNegative():
		status = StatusCritical
	case remaining.LessThan(limit.Mul(warnFraction)):
		status = StatusWarning
	}

	return BurnRateStats{
		TotalSpent:  totalSpent.RoundBank(2),
		Remaining:   remaining.RoundBank(2),
		DaysLeft:    daysLeft,
		DailyLimit:  dailyLimit.RoundBank(2),
		PercentUsed: percentUsed,
		Status:      status,
	}
}
