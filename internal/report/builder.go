// Package report merges the auditors' partial results into one immutable
// AuditResult and renders it as text and as export sheets. It performs no
// file I/O.
package report

import (
	"github.com/tally-dev/tally/internal/model"
)

// Build merges the auditors' outputs. Income, cross and trace may be nil
// when the corresponding input was not supplied. The consolidated
// unbalanced-item listing is ordered: balance sheet accounts first, then
// missing accounts, then income items, then orphan details.
func Build(bs model.BalanceSheetResult, income *model.IncomeStatementResult, cross *model.CrossCheckResult, trace *model.TraceResult) *model.AuditResult {
	res := &model.AuditResult{
		BalanceSheet: bs,
		Income:       income,
		Cross:        cross,
		Trace:        trace,
	}

	accountsBalanced := true
	for _, a := range bs.Accounts {
		if a.Balanced {
			continue
		}
		accountsBalanced = false
		category := model.CategoryAmountMismatch
		if !a.HasChange {
			category = model.CategoryMissingChange
		}
		res.Unbalanced = append(res.Unbalanced, model.UnbalancedItem{
			Name:     a.Name,
			Category: category,
			Diff:     a.Diff,
		})
	}

	res.Unbalanced = append(res.Unbalanced, bs.MissingAccounts...)

	if income != nil {
		for _, item := range income.Items {
			switch {
			case item.NoDetail:
				res.Unbalanced = append(res.Unbalanced, model.UnbalancedItem{
					Name:     item.Name,
					Category: model.CategoryNoDetailSupport,
					Diff:     item.Diff,
				})
			case !item.Matched:
				res.Unbalanced = append(res.Unbalanced, model.UnbalancedItem{
					Name:     item.Name,
					Category: model.CategoryAmountMismatch,
					Diff:     item.Diff,
				})
			}
		}
		for _, o := range income.Orphans {
			res.Unbalanced = append(res.Unbalanced, model.UnbalancedItem{
				Name:     o.Item,
				Category: model.CategoryOrphanDetail,
				Diff:     o.Amount,
			})
		}
	}

	res.AdvisoryPassed = bs.Balanced &&
		accountsBalanced &&
		len(bs.MissingAccounts) == 0 &&
		(income == nil || income.FullyMatched())
	res.IsPassed = res.AdvisoryPassed && (cross == nil || cross.Passed)

	return res
}
