package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ritamartins/budgie/internal/budget"
)

type transactionResponse struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	AmountEUR   decimal.Decimal `json:"amount_eur"`
}

type ruleResponse struct {
	Category       string          `json:"category"`
	MonthlyLimit   decimal.Decimal `json:"monthly_limit"`
	AlertThreshold decimal.Decimal `json:"alert_threshold"`
}

type statsResponse struct {
	TotalSpent  decimal.Decimal `json:"total_spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	DaysLeft    int             `json:"days_left"`
	DailyLimit  decimal.Decimal `json:"daily_limit"`
	PercentUsed int             `json:"percent_used"`
	Status      budget.Status   `json:"status"`
}

type categoryStatusResponse struct {
	Category     string             `json:"category"`
	Spent        decimal.Decimal    `json:"spent"`
	MonthlyLimit decimal.Decimal    `json:"monthly_limit"`
	Remaining    decimal.Decimal    `json:"remaining"`
	Status       budget.LimitStatus `json:"status"`
}

type overviewResponse struct {
	Stats      statsResponse            `json:"stats"`
	Categories []categoryStatusResponse `json:"categories"`
	Recent     []transactionResponse    `json:"recent"`
}

func toTransactionResponse(tx budget.Transaction) transactionResponse {
	date := ""
	if !tx.Date.IsZero() {
		date = tx.Date.Format(time.DateOnly)
	}

	return transactionResponse{
		Date:        date,
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		Category:    tx.Category,
		Description: tx.Description,
		AmountEUR:   tx.AmountEUR,
	}
}

func toTransactionList(txs []budget.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toTransactionResponse(tx)
	}

	return resp
}

func toRuleList(rules []budget.BudgetRule) []ruleResponse {
	resp := make([]ruleResponse, len(rules))
	for i, rule := range rules {
		resp[i] = ruleResponse{
			Category:       rule.Category,
			MonthlyLimit:   rule.MonthlyLimit,
			AlertThreshold: rule.AlertThreshold,
		}
	}

	return resp
}

func toOverviewResponse(o *budget.Overview) overviewResponse {
	categories := make([]categoryStatusResponse, len(o.Categories))
	for i, c := range o.Categories {
		categories[i] = categoryStatusResponse{
			Category:     c.Category,
			Spent:        c.Spent,
			MonthlyLimit: c.MonthlyLimit,
			Remaining:    c.Remaining,
			Status:       c.Status,
		}
	}

	return overviewResponse{
		Stats: statsResponse{
			TotalSpent:  o.Stats.TotalSpent,
			Remaining:   o.Stats.Remaining,
			DaysLeft:    o.Stats.DaysLeft,
			DailyLimit:  o.Stats.DailyLimit,
			PercentUsed: o.Stats.PercentUsed,
			Status:      o.Stats.Status,
		},
		Categories: categories,
		Recent:     toTransactionList(o.Recent),
	}
}
