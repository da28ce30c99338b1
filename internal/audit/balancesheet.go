// Package audit implements the four independent auditors. Each is a pure
// function over the immutable ledger snapshot; imbalances are returned as
// data, never as errors.
package audit

import (
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

// CheckBalanceSheet verifies the accounting identity assets = liabilities
// + equity over closing balances, and reconciles each account's opening
// balance plus net movement against its reported closing balance.
//
// Accounts with no change record are checked against a zero movement; the
// account is flagged "missing change record" only when its balance
// actually moved, since a stationary account needs no change row. Change
// records naming an account absent from the balance sheet are reported
// under "missing account" with their unexplained net movement.
func CheckBalanceSheet(s *ledger.Snapshot, tolerance decimal.Decimal) model.BalanceSheetResult {
	var res model.BalanceSheetResult

	for _, a := range s.Accounts {
		switch a.Type {
		case model.AccountTypeLiability:
			res.Liabilities = res.Liabilities.Add(a.Closing)
		case model.AccountTypeEquity:
			res.Equity = res.Equity.Add(a.Closing)
		default:
			res.Assets = res.Assets.Add(a.Closing)
		}
	}
	res.Diff = res.Assets.Sub(res.Liabilities.Add(res.Equity))
	res.Balanced = res.Diff.Abs().Cmp(tolerance) <= 0

	for _, a := range s.Accounts {
		change, hasChange := s.Change(a.Name)
		if !hasChange {
			change = model.AccountChange{Account: a.Name}
		}

		expected := model.ExpectedClosing(a, change)
		diff := a.Closing.Sub(expected)
		res.Accounts = append(res.Accounts, model.AccountBalance{
			Name:      a.Name,
			Type:      a.Type,
			Opening:   a.Opening,
			Debit:     change.Debit,
			Credit:    change.Credit,
			Net:       change.Net(a.Type),
			Expected:  expected,
			Closing:   a.Closing,
			Balanced:  diff.Abs().Cmp(tolerance) <= 0,
			Diff:      diff,
			HasChange: hasChange,
		})
	}

	for _, c := range s.Changes {
		if _, ok := s.Account(c.Account); !ok {
			res.MissingAccounts = append(res.MissingAccounts, model.UnbalancedItem{
				Name:     c.Account,
				Category: model.CategoryMissingAccount,
				Diff:     c.Debit.Sub(c.Credit),
			})
		}
	}

	return res
}
