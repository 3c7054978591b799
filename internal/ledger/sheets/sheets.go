// Package sheets implements the ledger over a Google Sheets spreadsheet.
//
// The spreadsheet carries two worksheets: Transactions with the columns
// [Date, Amount, Currency, Category, Description, Amount_EUR] and
// Budget_Rules with [Category, Monthly_Limit, Alert_Threshold]. Column order
// matters: appends write positional rows.
package sheets

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ritamartins/budgie/internal/budget"
)

const (
	transactionsSheet = "Transactions"
	rulesSheet        = "Budget_Rules"

	transactionsRange = transactionsSheet + "!A2:F"
	rulesRange        = rulesSheet + "!A2:C"
)

type Store struct {
	svc           *sheets.Service
	spreadsheetID string
}

// New connects to the spreadsheet using a service-account credentials file.
func New(ctx context.Context, credentialsFile, spreadsheetID string) (*Store, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}

	return &Store{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Transactions reads every row of the Transactions worksheet. Malformed
// cells are coerced (zero date, zero amount) rather than failing the read;
// see parse.go.
func (s *Store) Transactions(ctx context.Context) ([]budget.Transaction, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, transactionsRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", transactionsRange, err)
	}

	txs := make([]budget.Transaction, 0, len(resp.Values))

	for _, row := range resp.Values {
		tx, ok := parseTransactionRow(row)
		if !ok {
			continue
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

// Rules reads every row of the Budget_Rules worksheet.
func (s *Store) Rules(ctx context.Context) ([]budget.BudgetRule, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rulesRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rulesRange, err)
	}

	rules := make([]budget.BudgetRule, 0, len(resp.Values))

	for _, row := range resp.Values {
		rule, ok := parseRuleRow(row)
		if !ok {
			continue
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

// Append writes one transaction as a positional row at the bottom of the
// Transactions worksheet.
func (s *Store) Append(ctx context.Context, tx budget.Transaction) error {
	row := []any{
		tx.Date.Format(time.DateOnly),
		tx.Amount.InexactFloat64(),
		tx.Currency,
		tx.Category,
		tx.Description,
		tx.AmountEUR.InexactFloat64(),
	}

	vr := &sheets.ValueRange{Values: [][]any{row}}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, transactionsSheet+"!A:F", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("appending transaction row: %w", err)
	}

	return nil
}

// defaultRules seeds Budget_Rules when the worksheet is first created.
var defaultRules = [][]any{
	{budget.CategoryRent, 400, 380},
	{budget.CategoryFood, 300, 270},
	{budget.CategoryTravel, 200, 180},
	{budget.CategoryFun, 100, 90},
	{budget.CategoryOther, 50, 45},
}

// Setup creates the two worksheets if missing, writes their header rows, and
// seeds default budget rules on a freshly created Budget_Rules sheet. Safe to
// run repeatedly; existing data is left alone.
func (s *Store) Setup(ctx context.Context) error {
	ss, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("opening spreadsheet: %w", err)
	}

	existing := make(map[string]bool, len(ss.Sheets))
	for _, sheet := range ss.Sheets {
		if sheet.Properties != nil {
			existing[sheet.Properties.Title] = true
		}
	}

	if !existing[transactionsSheet] {
		if err := s.addSheet(ctx, transactionsSheet); err != nil {
			return err
		}

		header := []any{"Date", "Amount", "Currency", "Category", "Description", "Amount_EUR"}
		if err := s.writeRange(ctx, transactionsSheet+"!A1:F1", [][]any{header}); err != nil {
			return err
		}
	}

	if !existing[rulesSheet] {
		if err := s.addSheet(ctx, rulesSheet); err != nil {
			return err
		}

		header := []any{"Category", "Monthly_Limit", "Alert_Threshold"}
		if err := s.writeRange(ctx, rulesSheet+"!A1:C1", [][]any{header}); err != nil {
			return err
		}

		if err := s.writeRange(ctx, rulesSheet+"!A2:C6", defaultRules); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) addSheet(ctx context.Context, title string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		}},
	}

	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("creating worksheet %s: %w", title, err)
	}

	return nil
}

func (s *Store) writeRange(ctx context.Context, rng string, values [][]any) error {
	vr := &sheets.ValueRange{Values: values}

	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("writing %s: %w", rng, err)
	}

	return nil
}
