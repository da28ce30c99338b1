package audit

import (
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

// RetainedEarningsKeywords identify the retained earnings account on the
// balance sheet by substring match.
var RetainedEarningsKeywords = []string{"未分配利润", "盈余公积", "未分配收益", "retained earnings"}

// CheckCrossStatement validates the retained-earnings movement against net
// profit. Returns nil when no retained earnings account can be located;
// the check is then skipped rather than failed, since the balance sheet
// may legitimately omit the account.
//
// A failing check is advisory: profit distributions outside the model
// commonly explain the gap. Callers decide whether it flips the overall
// verdict.
func CheckCrossStatement(s *ledger.Snapshot, netProfit, tolerance decimal.Decimal) *model.CrossCheckResult {
	acct, ok := s.FindAccountByKeywords(RetainedEarningsKeywords)
	if !ok {
		return nil
	}
	return CheckRetainedEarnings(acct, netProfit, tolerance)
}

// CheckRetainedEarnings compares one account's opening-to-closing movement
// with net profit within tolerance.
func CheckRetainedEarnings(acct model.Account, netProfit, tolerance decimal.Decimal) *model.CrossCheckResult {
	movement := acct.Closing.Sub(acct.Opening)
	diff := movement.Sub(netProfit)
	return &model.CrossCheckResult{
		Account:   acct.Name,
		NetProfit: netProfit,
		Opening:   acct.Opening,
		Closing:   acct.Closing,
		Movement:  movement,
		Diff:      diff,
		Passed:    diff.Abs().Cmp(tolerance) <= 0,
	}
}
