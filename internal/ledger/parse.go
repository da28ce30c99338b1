// Package ledger builds the typed, immutable snapshot the auditors read:
// accounts, account changes, income items, detail records and
// transactions, resolved from raw tables through the configured column
// mapping.
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/table"
)

// summaryLabels are row names that denote totals rather than accounts or
// items; such rows are skipped during parsing.
var summaryLabels = map[string]bool{
	"合计":       true,
	"总计":       true,
	"小计":       true,
	"Total":    true,
	"Subtotal": true,
}

var positiveKeywords = []string{"收入", "收益", "利得", "revenue", "income", "gain"}

var negativeKeywords = []string{"成本", "费用", "损失", "减值", "营业外支出", "所得税", "cost", "expense", "loss", "impairment", "tax"}

func isSummaryRow(name string) bool {
	return summaryLabels[name]
}

func requireColumns(t *table.Table, cols ...string) error {
	for _, c := range cols {
		if c == "" || !t.HasColumn(c) {
			return &table.MissingColumnError{Table: t.Name, Column: c}
		}
	}
	return nil
}

// cellDecimal parses a numeric cell. Blank cells are zero; anything else
// that fails to parse is a TypeCoercionError.
func cellDecimal(t *table.Table, row table.Row, rowNum int, col string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(row[col])
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, &table.TypeCoercionError{Table: t.Name, Row: rowNum, Column: col, Value: raw}
	}
	return d, nil
}

// parseAccountType recognizes Chinese and English type names. Anything
// else, including a blank cell, defaults to asset.
func parseAccountType(raw string) model.AccountType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "负债", "liability", "liabilities":
		return model.AccountTypeLiability
	case "所有者权益", "权益", "equity", "owner's equity":
		return model.AccountTypeEquity
	default:
		return model.AccountTypeAsset
	}
}

// classifyIncomeItem decides whether an item increases profit. Negative
// keywords (costs, expenses, losses, taxes) override positive ones.
func classifyIncomeItem(name string) bool {
	lower := strings.ToLower(name)
	positive := false
	for _, kw := range positiveKeywords {
		if strings.Contains(lower, kw) {
			positive = true
			break
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return positive
}

// ParseBalanceSheet reads accounts from the balance sheet table. Summary
// rows are skipped; duplicate account names have their opening and closing
// balances summed. The type column is optional.
func ParseBalanceSheet(t *table.Table, cols config.BalanceSheetColumns) ([]model.Account, error) {
	if err := requireColumns(t, cols.Account, cols.Opening, cols.Closing); err != nil {
		return nil, err
	}
	hasType := cols.Type != "" && t.HasColumn(cols.Type)

	byName := make(map[string]int)
	var accounts []model.Account
	for i, row := range t.Rows {
		name := strings.TrimSpace(row[cols.Account])
		if name == "" || isSummaryRow(name) {
			continue
		}

		opening, err := cellDecimal(t, row, i+1, cols.Opening)
		if err != nil {
			return nil, err
		}
		closing, err := cellDecimal(t, row, i+1, cols.Closing)
		if err != nil {
			return nil, err
		}

		acctType := model.AccountTypeAsset
		if hasType {
			acctType = parseAccountType(row[cols.Type])
		}

		if idx, seen := byName[name]; seen {
			accounts[idx].Opening = accounts[idx].Opening.Add(opening)
			accounts[idx].Closing = accounts[idx].Closing.Add(closing)
			continue
		}
		byName[name] = len(accounts)
		accounts = append(accounts, model.Account{
			Name:    name,
			Type:    acctType,
			Opening: opening,
			Closing: closing,
		})
	}
	return accounts, nil
}

// ParseAccountChanges reads the account change table. Duplicate rows for
// one account have their debit and credit totals summed.
func ParseAccountChanges(t *table.Table, cols config.AccountChangesColumns) ([]model.AccountChange, error) {
	if err := requireColumns(t, cols.Account, cols.Debit, cols.Credit); err != nil {
		return nil, err
	}

	byName := make(map[string]int)
	var changes []model.AccountChange
	for i, row := range t.Rows {
		name := strings.TrimSpace(row[cols.Account])
		if name == "" || isSummaryRow(name) {
			continue
		}

		debit, err := cellDecimal(t, row, i+1, cols.Debit)
		if err != nil {
			return nil, err
		}
		credit, err := cellDecimal(t, row, i+1, cols.Credit)
		if err != nil {
			return nil, err
		}

		if idx, seen := byName[name]; seen {
			changes[idx].Debit = changes[idx].Debit.Add(debit)
			changes[idx].Credit = changes[idx].Credit.Add(credit)
			continue
		}
		byName[name] = len(changes)
		changes = append(changes, model.AccountChange{Account: name, Debit: debit, Credit: credit})
	}
	return changes, nil
}

// ParseIncomeStatement reads income items, classifying each as
// profit-increasing or profit-decreasing by name keywords.
func ParseIncomeStatement(t *table.Table, cols config.IncomeColumns) ([]model.IncomeItem, error) {
	if err := requireColumns(t, cols.Item, cols.Amount); err != nil {
		return nil, err
	}

	var items []model.IncomeItem
	for i, row := range t.Rows {
		name := strings.TrimSpace(row[cols.Item])
		if name == "" || isSummaryRow(name) {
			continue
		}

		amount, err := cellDecimal(t, row, i+1, cols.Amount)
		if err != nil {
			return nil, err
		}
		items = append(items, model.IncomeItem{
			Name:     name,
			Amount:   amount,
			Positive: classifyIncomeItem(name),
		})
	}
	return items, nil
}

// ParseIncomeDetails reads the detail records backing income items.
// Unlike ParseIncomeStatement it keeps summary-label rows: a 合计 or
// Total row in the details matches no statement item and surfaces as an
// orphan detail instead of being silently dropped.
func ParseIncomeDetails(t *table.Table, cols config.IncomeColumns) ([]model.DetailRecord, error) {
	if err := requireColumns(t, cols.Item, cols.Amount); err != nil {
		return nil, err
	}

	var details []model.DetailRecord
	for i, row := range t.Rows {
		name := strings.TrimSpace(row[cols.Item])
		if name == "" {
			continue
		}

		amount, err := cellDecimal(t, row, i+1, cols.Amount)
		if err != nil {
			return nil, err
		}
		details = append(details, model.DetailRecord{Item: name, Amount: amount})
	}
	return details, nil
}

var dateFormats = []string{"2006-01-02", "2006/01/02", "2006-01-02 15:04:05", "01-02-06", "2006年01月02日"}

func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, raw); err == nil {
			return d
		}
	}
	return time.Time{}
}

// ParseTransactions reads the transaction table. Date and voucher columns
// are optional and left zero when unmapped or absent.
func ParseTransactions(t *table.Table, cols config.TransactionColumns) ([]model.Transaction, error) {
	if err := requireColumns(t, cols.Account, cols.Debit, cols.Credit); err != nil {
		return nil, err
	}
	hasDate := cols.Date != "" && t.HasColumn(cols.Date)
	hasVoucher := cols.Voucher != "" && t.HasColumn(cols.Voucher)

	var txs []model.Transaction
	for i, row := range t.Rows {
		name := strings.TrimSpace(row[cols.Account])
		if name == "" {
			continue
		}

		debit, err := cellDecimal(t, row, i+1, cols.Debit)
		if err != nil {
			return nil, err
		}
		credit, err := cellDecimal(t, row, i+1, cols.Credit)
		if err != nil {
			return nil, err
		}

		tx := model.Transaction{Account: name, Debit: debit, Credit: credit}
		if hasDate {
			tx.Date = parseDate(row[cols.Date])
		}
		if hasVoucher {
			tx.Voucher = strings.TrimSpace(row[cols.Voucher])
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
