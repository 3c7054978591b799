// Package generic parses CSV statement exports into transaction params.
//
// The parser scans for a header row naming at least a date and an amount
// column, so exports with preamble lines (account number, export date) work
// without preprocessing. Data rows that fail to parse are skipped, not
// fatal: bank exports routinely carry footer and balance lines.
package generic

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ritamartins/budgie/internal/budget"
	enc "github.com/ritamartins/budgie/internal/encoding"
)

// Recognized header names, lowercased.
var (
	dateCols     = []string{"date", "datum", "data"}
	amountCols   = []string{"amount", "částka", "kwota", "montante"}
	currencyCols = []string{"currency", "měna", "waluta"}
	categoryCols = []string{"category"}
	descCols     = []string{"description", "desc", "note", "popis"}
)

var dateLayouts = []string{
	time.DateOnly,
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2006/01/02",
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

type columns struct {
	date     int
	amount   int
	currency int
	category int
	desc     int
}

func (p *Parser) Parse(r io.Reader) ([]budget.AddParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no header row found: need at least date and amount columns")
	}

	var params []budget.AddParams

	for _, row := range rows[headerIdx+1:] {
		date, ok := parseDate(cellValue(row, cols.date))
		if !ok {
			continue
		}

		amount, err := parseAmount(cellValue(row, cols.amount))
		if err != nil || !amount.IsPositive() {
			continue
		}

		currency := strings.ToUpper(cellValue(row, cols.currency))
		if currency == "" {
			currency = budget.CurrencyEUR
		}

		params = append(params, budget.AddParams{
			Date:        date,
			Amount:      amount,
			Currency:    currency,
			Category:    cellValue(row, cols.category),
			Description: cellValue(row, cols.desc),
		})
	}

	return params, nil
}

// sniffDelimiter picks ';' or ',' by inspecting the buffered head. European
// exports favor semicolons; anything else falls back to commas.
func sniffDelimiter(br *bufio.Reader) rune {
	head, _ := br.Peek(1024)

	line, _, _ := strings.Cut(string(head), "\n")
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}

	return ','
}

// findHeader scans for the first row naming a date column and an amount
// column. Returns the resolved column indices and the header's row index.
func findHeader(rows [][]string) (columns, int, bool) {
	for idx, row := range rows {
		cols := columns{date: -1, amount: -1, currency: -1, category: -1, desc: -1}

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))

			switch {
			case matches(name, dateCols):
				cols.date = i
			case matches(name, amountCols):
				cols.amount = i
			case matches(name, currencyCols):
				cols.currency = i
			case matches(name, categoryCols):
				cols.category = i
			case matches(name, descCols):
				cols.desc = i
			}
		}

		if cols.date != -1 && cols.amount != -1 {
			return cols, idx, true
		}
	}

	return columns{}, 0, false
}

func matches(name string, candidates []string) bool {
	for _, c := range candidates {
		if name == c {
			return true
		}
	}

	return false
}

func cellValue(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount accepts both "1.234,56" and "1,234.56" style amounts, plus
// plain "1234.56".
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "'", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			// European: 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// Anglo: 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		parts := strings.Split(s, ",")
		if len(parts[len(parts)-1]) <= 2 {
			// Decimal comma: 1234,56
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// Thousands comma: 1,234
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	return decimal.NewFromString(s)
}
