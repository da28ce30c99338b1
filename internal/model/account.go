package model

import "github.com/shopspring/decimal"

// AccountType classifies balance sheet accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
)

// Account represents one balance sheet row: an account with its opening
// and closing balance for the audited period.
type Account struct {
	Name    string
	Type    AccountType
	Opening decimal.Decimal
	Closing decimal.Decimal
}

// AccountChange holds the aggregate debit/credit movement for one account
// during the period. Duplicate source rows for the same account are summed
// before an AccountChange is built.
type AccountChange struct {
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// Net returns the net movement under the double-entry sign convention:
// debit − credit for asset accounts, credit − debit for liability and
// equity accounts.
func (c AccountChange) Net(t AccountType) decimal.Decimal {
	if t == AccountTypeAsset {
		return c.Debit.Sub(c.Credit)
	}
	return c.Credit.Sub(c.Debit)
}

// ExpectedClosing returns opening plus the net movement for the account's
// type.
func ExpectedClosing(a Account, c AccountChange) decimal.Decimal {
	return a.Opening.Add(c.Net(a.Type))
}
