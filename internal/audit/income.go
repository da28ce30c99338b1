package audit

import (
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// CheckIncomeStatement verifies each income item against the sum of its
// detail records and derives net profit from the items' signed amounts.
//
// Item names are matched exactly and case-sensitively; no whitespace or
// punctuation normalization is applied. An item with a nonzero reported
// amount and no details is flagged "no detail support" rather than
// "amount mismatch". Details matching no item are collected as orphans
// and affect no item's check.
func CheckIncomeStatement(items []model.IncomeItem, details []model.DetailRecord, tolerance decimal.Decimal) model.IncomeStatementResult {
	var res model.IncomeStatementResult

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, d := range details {
		totals[d.Item] = totals[d.Item].Add(d.Amount)
		counts[d.Item]++
	}

	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.Name] = true
		res.NetProfit = res.NetProfit.Add(item.Signed())

		detailTotal := totals[item.Name]
		count := counts[item.Name]
		diff := item.Amount.Sub(detailTotal)

		out := model.IncomeItemResult{
			Name:        item.Name,
			Reported:    item.Amount,
			DetailTotal: detailTotal,
			DetailCount: count,
			Diff:        diff,
			Positive:    item.Positive,
		}
		if count == 0 && !item.Amount.IsZero() {
			out.NoDetail = true
		} else {
			out.Matched = diff.Abs().Cmp(tolerance) <= 0
		}

		res.Items = append(res.Items, out)
		res.Total++
		if out.Matched {
			res.Matched++
		}
	}

	for _, d := range details {
		if !known[d.Item] {
			res.Orphans = append(res.Orphans, model.OrphanDetail{Item: d.Item, Amount: d.Amount})
		}
	}

	return res
}

// NetProfit sums the signed amounts of income items without running the
// detail verification. Used when no detail table is supplied.
func NetProfit(items []model.IncomeItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Signed())
	}
	return total
}
