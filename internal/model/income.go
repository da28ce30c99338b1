package model

import "github.com/shopspring/decimal"

// IncomeItem is one income statement line: a named item with its reported
// amount. Positive marks items that increase profit (revenue, gains);
// cost, expense, loss and tax items decrease it.
type IncomeItem struct {
	Name     string
	Amount   decimal.Decimal
	Positive bool
}

// Signed returns the item's contribution to net profit.
func (i IncomeItem) Signed() decimal.Decimal {
	if i.Positive {
		return i.Amount
	}
	return i.Amount.Neg()
}

// DetailRecord is one supporting detail row backing an income statement
// item. Detail amounts for an item must sum to the item's reported amount
// within tolerance.
type DetailRecord struct {
	Item      string
	Amount    decimal.Decimal
	Reference string
}
