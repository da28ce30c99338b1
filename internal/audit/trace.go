package audit

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

// TraceTransactions partitions transactions by account, recomputes each
// account's debit and credit totals from transaction-level data, and
// compares them with the aggregate change record to surface whether the
// change is fully explained by individual transactions.
//
// Accounts appear in first-seen input order. Within an account,
// transactions sort ascending by date with input order breaking ties.
// Undated transactions carry the zero time and so sort ahead of every
// dated one; when no row has a date the input order is unchanged.
func TraceTransactions(s *ledger.Snapshot, tolerance decimal.Decimal) *model.TraceResult {
	if len(s.Transactions) == 0 {
		return nil
	}

	groups := make(map[string][]model.Transaction)
	var order []string
	for _, tx := range s.Transactions {
		if _, seen := groups[tx.Account]; !seen {
			order = append(order, tx.Account)
		}
		groups[tx.Account] = append(groups[tx.Account], tx)
	}

	res := &model.TraceResult{}
	for _, name := range order {
		txs := groups[name]
		sort.SliceStable(txs, func(i, j int) bool {
			return txs[i].Date.Before(txs[j].Date)
		})

		debit := decimal.Zero
		credit := decimal.Zero
		for _, tx := range txs {
			debit = debit.Add(tx.Debit)
			credit = credit.Add(tx.Credit)
		}

		trace := model.AccountTrace{
			Account:      name,
			Transactions: txs,
			Debit:        debit,
			Credit:       credit,
		}
		if change, ok := s.Change(name); ok {
			trace.HasChange = true
			trace.ReportedDebit = change.Debit
			trace.ReportedCredit = change.Credit
			trace.Explained = debit.Sub(change.Debit).Abs().Cmp(tolerance) <= 0 &&
				credit.Sub(change.Credit).Abs().Cmp(tolerance) <= 0
		}
		res.Accounts = append(res.Accounts, trace)
	}
	return res
}
