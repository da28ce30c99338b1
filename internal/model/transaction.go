package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single booked movement against an account, used as
// evidence when tracing aggregate account changes. It references the
// account by name and never mutates account state. Date and Voucher are
// optional; a zero Date means the source table carried no date column.
type Transaction struct {
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Date    time.Time
	Voucher string
}

// Net returns debit minus credit for this transaction.
func (t Transaction) Net() decimal.Decimal {
	return t.Debit.Sub(t.Credit)
}
