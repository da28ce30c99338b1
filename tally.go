// Package tally audits financial statements: it cross-validates balance
// sheet, account change, income statement, income detail and transaction
// tables against double-entry accounting identities and produces a
// structured audit report.
//
// The package is the embeddable API; the tally binary under cmd/tally
// wraps it with file loading and report output.
package tally

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/audit"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/export"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/report"
	"github.com/tally-dev/tally/internal/table"
)

// Re-exported types so embedding callers can name results and inputs
// without reaching into internal packages.
type (
	// AuditResult is the merged outcome of all auditors.
	AuditResult = model.AuditResult
	// AccountBalance is the per-account reconciliation outcome.
	AccountBalance = model.AccountBalance
	// UnbalancedItem is one categorized discrepancy.
	UnbalancedItem = model.UnbalancedItem
	// Table is a raw tabular input source.
	Table = table.Table
	// Row is one table row, header name to cell text.
	Row = table.Row
	// Mappings binds logical fields to source column headers.
	Mappings = config.Mappings
	// Config is the file-loadable audit configuration.
	Config = config.Config
	// Sheet is one table of the structured export.
	Sheet = report.Sheet
)

// Sources holds the raw input tables. BalanceSheet and AccountChanges are
// required; the rest are optional and skip their auditor when nil.
type Sources struct {
	BalanceSheet    *Table
	AccountChanges  *Table
	IncomeStatement *Table
	IncomeDetails   *Table
	Transactions    *Table
}

// Options controls an audit run. Zero values fall back to the defaults:
// tolerance 0.01, period "current period", built-in column mappings.
type Options struct {
	Tolerance decimal.Decimal
	Period    string
	Columns   Mappings
}

func (o Options) resolved() Options {
	def := config.Default()
	if o.Tolerance.IsZero() {
		o.Tolerance = def.ToleranceDecimal()
	}
	if o.Period == "" {
		o.Period = def.Period
	}
	if o.Columns.BalanceSheet == (config.BalanceSheetColumns{}) {
		o.Columns.BalanceSheet = def.Columns.BalanceSheet
	}
	if o.Columns.AccountChanges == (config.AccountChangesColumns{}) {
		o.Columns.AccountChanges = def.Columns.AccountChanges
	}
	if o.Columns.IncomeStatement == (config.IncomeColumns{}) {
		o.Columns.IncomeStatement = def.Columns.IncomeStatement
	}
	if o.Columns.IncomeDetails == (config.IncomeColumns{}) {
		o.Columns.IncomeDetails = def.Columns.IncomeDetails
	}
	if o.Columns.Transactions == (config.TransactionColumns{}) {
		o.Columns.Transactions = def.Columns.Transactions
	}
	return o
}

// Audit runs the full audit over in-memory tables. It returns the merged
// result plus the resolved per-account balances. Ingestion problems in the
// required tables (missing columns, unparsable numbers) are errors and
// abort the run; the same problems in an optional table skip only that
// dimension and leave a warning in the result. Imbalances are never
// errors; they are data inside the result.
func Audit(src Sources, opts Options) (*AuditResult, []AccountBalance, error) {
	opts = opts.resolved()

	snap, err := ledger.Build(src.BalanceSheet, src.AccountChanges, opts.Columns)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string
	if src.IncomeStatement != nil {
		if snap.Income, err = ledger.ParseIncomeStatement(src.IncomeStatement, opts.Columns.IncomeStatement); err != nil {
			warnings = append(warnings, fmt.Sprintf("income statement audit skipped: %v", err))
			snap.Income = nil
		}
	}
	// A details table with zero rows still means "verify against details":
	// every item with a nonzero reported amount then lacks support. Only a
	// missing or unparsable table skips the verification.
	hasDetails := false
	if snap.Income != nil && src.IncomeDetails != nil {
		if snap.Details, err = ledger.ParseIncomeDetails(src.IncomeDetails, opts.Columns.IncomeDetails); err != nil {
			warnings = append(warnings, fmt.Sprintf("income detail verification skipped: %v", err))
			snap.Details = nil
		} else {
			hasDetails = true
		}
	}
	if src.Transactions != nil {
		if snap.Transactions, err = ledger.ParseTransactions(src.Transactions, opts.Columns.Transactions); err != nil {
			warnings = append(warnings, fmt.Sprintf("transaction tracing skipped: %v", err))
			snap.Transactions = nil
		}
	}

	bs := audit.CheckBalanceSheet(snap, opts.Tolerance)

	var income *model.IncomeStatementResult
	var cross *model.CrossCheckResult
	if snap.Income != nil {
		if hasDetails {
			r := audit.CheckIncomeStatement(snap.Income, snap.Details, opts.Tolerance)
			income = &r
		} else {
			income = &model.IncomeStatementResult{NetProfit: audit.NetProfit(snap.Income)}
		}
		cross = audit.CheckCrossStatement(snap, income.NetProfit, opts.Tolerance)
	}

	trace := audit.TraceTransactions(snap, opts.Tolerance)

	result := report.Build(bs, income, cross, trace)
	result.Warnings = warnings
	return result, result.BalanceSheet.Accounts, nil
}

// Paths names the input files for a file-based audit. Empty optional
// paths skip the corresponding table. Sheet names apply to workbook
// formats and select the worksheet; empty means the first sheet.
type Paths struct {
	BalanceSheet    string
	AccountChanges  string
	IncomeStatement string
	IncomeDetails   string
	Transactions    string

	BalanceSheetSheet    string
	AccountChangesSheet  string
	IncomeStatementSheet string
	IncomeDetailsSheet   string
	TransactionsSheet    string
}

// AuditFiles loads the tables at the given paths and runs Audit.
func AuditFiles(paths Paths, opts Options) (*AuditResult, []AccountBalance, error) {
	var src Sources
	var err error

	if src.BalanceSheet, err = table.Open(paths.BalanceSheet, paths.BalanceSheetSheet); err != nil {
		return nil, nil, err
	}
	if src.AccountChanges, err = table.Open(paths.AccountChanges, paths.AccountChangesSheet); err != nil {
		return nil, nil, err
	}
	if paths.IncomeStatement != "" {
		if src.IncomeStatement, err = table.Open(paths.IncomeStatement, paths.IncomeStatementSheet); err != nil {
			return nil, nil, err
		}
	}
	if paths.IncomeDetails != "" {
		if src.IncomeDetails, err = table.Open(paths.IncomeDetails, paths.IncomeDetailsSheet); err != nil {
			return nil, nil, err
		}
	}
	if paths.Transactions != "" {
		if src.Transactions, err = table.Open(paths.Transactions, paths.TransactionsSheet); err != nil {
			return nil, nil, err
		}
	}

	return Audit(src, opts)
}

// RenderText renders the deterministic five-section text report.
func RenderText(result *AuditResult, period string) string {
	return report.RenderText(result, period)
}

// Export writes the structured report workbook to path.
func Export(result *AuditResult, period, path string) error {
	return export.WriteWorkbook(path, report.BuildSheets(result, period))
}
