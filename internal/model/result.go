package model

import "github.com/shopspring/decimal"

// Category discriminates the kinds of discrepancy an audit can surface.
type Category string

const (
	// CategoryAmountMismatch marks an amount that differs from its
	// recomputed value by more than the tolerance.
	CategoryAmountMismatch Category = "amount mismatch"
	// CategoryMissingChange marks a balance sheet account whose balance
	// moved but that has no change record explaining the movement.
	CategoryMissingChange Category = "missing change record"
	// CategoryMissingAccount marks a change record whose account does not
	// appear on the balance sheet.
	CategoryMissingAccount Category = "missing account"
	// CategoryNoDetailSupport marks an income item with a nonzero reported
	// amount and no detail records backing it.
	CategoryNoDetailSupport Category = "no detail support"
	// CategoryOrphanDetail marks a detail record whose item name matches
	// no income statement item. Orphans are advisory and do not affect the
	// overall pass flag.
	CategoryOrphanDetail Category = "orphan detail"
)

// UnbalancedItem is one entry in the consolidated discrepancy listing.
type UnbalancedItem struct {
	Name     string
	Category Category
	Diff     decimal.Decimal // signed
}

// AccountBalance is the reconciliation outcome for one balance sheet
// account: the resolved account plus its movement, recomputed closing
// balance, and balanced flag.
type AccountBalance struct {
	Name     string
	Type     AccountType
	Opening  decimal.Decimal
	Debit    decimal.Decimal
	Credit   decimal.Decimal
	Net      decimal.Decimal
	Expected decimal.Decimal
	Closing  decimal.Decimal
	Balanced bool
	Diff     decimal.Decimal // reported closing − expected closing
	// HasChange is false when no change record existed for the account and
	// the movement was taken as zero.
	HasChange bool
}

// BalanceSheetResult is the Balance Sheet Auditor's output.
type BalanceSheetResult struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal
	Diff        decimal.Decimal // assets − (liabilities + equity), signed
	Balanced    bool
	Accounts    []AccountBalance
	// MissingAccounts lists change records with no balance sheet account,
	// keyed by account name with the unexplained net movement.
	MissingAccounts []UnbalancedItem
}

// IncomeItemResult is the verification outcome for one income item.
type IncomeItemResult struct {
	Name        string
	Reported    decimal.Decimal
	DetailTotal decimal.Decimal
	DetailCount int
	Diff        decimal.Decimal // reported − detail total, signed
	Matched     bool
	Positive    bool
	// NoDetail is true when the item had a nonzero reported amount and no
	// matching detail records; such items are never counted as a plain
	// amount mismatch.
	NoDetail bool
}

// OrphanDetail is a detail record with no matching income item.
type OrphanDetail struct {
	Item   string
	Amount decimal.Decimal
}

// IncomeStatementResult is the Income Statement Auditor's output.
type IncomeStatementResult struct {
	Items     []IncomeItemResult
	Orphans   []OrphanDetail
	NetProfit decimal.Decimal
	Matched   int
	Total     int
}

// FullyMatched reports whether every income item matched its details.
func (r IncomeStatementResult) FullyMatched() bool {
	return r.Matched == r.Total
}

// CrossCheckResult is the Cross-Statement Validator's output: retained
// earnings movement against net profit.
type CrossCheckResult struct {
	Account   string
	NetProfit decimal.Decimal
	Opening   decimal.Decimal
	Closing   decimal.Decimal
	Movement  decimal.Decimal
	Diff      decimal.Decimal // movement − net profit, signed
	Passed    bool
}

// AccountTrace attributes one account's aggregate change to its individual
// transactions.
type AccountTrace struct {
	Account      string
	Transactions []Transaction
	Debit        decimal.Decimal // recomputed from transactions
	Credit       decimal.Decimal
	// Reported totals come from the account's change record; HasChange is
	// false when none existed.
	ReportedDebit  decimal.Decimal
	ReportedCredit decimal.Decimal
	HasChange      bool
	// Explained is true when the recomputed totals match the reported
	// totals within tolerance.
	Explained bool
}

// TraceResult is the Transaction Tracer's output.
type TraceResult struct {
	Accounts []AccountTrace
}

// AuditResult aggregates the four auditors' outputs. It is constructed
// once per audit run and immutable afterwards.
type AuditResult struct {
	// IsPassed is the strict overall flag: balance sheet balanced, every
	// account reconciled, income statement fully matched when supplied,
	// and the cross-statement check passed when performed.
	IsPassed bool
	// AdvisoryPassed ignores the cross-statement check, which is commonly
	// off by profit distribution events outside the model.
	AdvisoryPassed bool

	BalanceSheet BalanceSheetResult
	Income       *IncomeStatementResult
	Cross        *CrossCheckResult
	Trace        *TraceResult
	Unbalanced   []UnbalancedItem

	// Warnings records optional audit dimensions that were skipped because
	// their table could not be ingested. Problems in the required tables
	// are errors instead and abort the run.
	Warnings []string
}
