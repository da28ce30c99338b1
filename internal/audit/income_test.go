package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func TestCheckIncomeStatement_Matched(t *testing.T) {
	items := []model.IncomeItem{{Name: "营业收入", Amount: dec("50000"), Positive: true}}
	details := []model.DetailRecord{
		{Item: "营业收入", Amount: dec("30000")},
		{Item: "营业收入", Amount: dec("20000")},
	}

	res := CheckIncomeStatement(items, details, tol)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, 1, res.Total)
	assert.True(t, res.FullyMatched())
	assert.True(t, res.Items[0].Matched)
	assert.Equal(t, 2, res.Items[0].DetailCount)
}

func TestCheckIncomeStatement_AmountMismatch(t *testing.T) {
	items := []model.IncomeItem{{Name: "营业收入", Amount: dec("50000"), Positive: true}}
	details := []model.DetailRecord{{Item: "营业收入", Amount: dec("49000")}}

	res := CheckIncomeStatement(items, details, tol)
	item := res.Items[0]
	assert.False(t, item.Matched)
	assert.False(t, item.NoDetail, "a mismatch with details present is never no-detail-support")
	assert.True(t, item.Diff.Equal(dec("1000")))
}

func TestCheckIncomeStatement_NoDetailSupport(t *testing.T) {
	items := []model.IncomeItem{{Name: "Revenue", Amount: dec("50000"), Positive: true}}

	res := CheckIncomeStatement(items, nil, tol)
	item := res.Items[0]
	assert.True(t, item.NoDetail)
	assert.False(t, item.Matched)
	assert.False(t, res.FullyMatched())
}

func TestCheckIncomeStatement_ZeroReportedZeroDetailsMatches(t *testing.T) {
	items := []model.IncomeItem{{Name: "营业外收入", Amount: dec("0"), Positive: true}}

	res := CheckIncomeStatement(items, nil, tol)
	assert.True(t, res.Items[0].Matched)
	assert.False(t, res.Items[0].NoDetail)
}

func TestCheckIncomeStatement_CaseSensitiveMatching(t *testing.T) {
	items := []model.IncomeItem{{Name: "Revenue", Amount: dec("100"), Positive: true}}
	details := []model.DetailRecord{{Item: "revenue", Amount: dec("100")}}

	res := CheckIncomeStatement(items, details, tol)
	assert.True(t, res.Items[0].NoDetail, "lowercase detail must not match")
	require.Len(t, res.Orphans, 1)
	assert.Equal(t, "revenue", res.Orphans[0].Item)
}

func TestCheckIncomeStatement_OrphanDetail(t *testing.T) {
	items := []model.IncomeItem{{Name: "营业收入", Amount: dec("100"), Positive: true}}
	details := []model.DetailRecord{
		{Item: "营业收入", Amount: dec("100")},
		{Item: "其他收益", Amount: dec("5")},
	}

	res := CheckIncomeStatement(items, details, tol)
	assert.True(t, res.Items[0].Matched, "orphan must not affect the item's check")
	require.Len(t, res.Orphans, 1)
	assert.Equal(t, "其他收益", res.Orphans[0].Item)
}

func TestCheckIncomeStatement_ToleranceBoundary(t *testing.T) {
	items := []model.IncomeItem{{Name: "a", Amount: dec("100.01"), Positive: true}}
	details := []model.DetailRecord{{Item: "a", Amount: dec("100.00")}}
	assert.True(t, CheckIncomeStatement(items, details, tol).Items[0].Matched)

	items[0].Amount = dec("100.02")
	assert.False(t, CheckIncomeStatement(items, details, tol).Items[0].Matched)
}

func TestCheckIncomeStatement_NetProfit(t *testing.T) {
	items := []model.IncomeItem{
		{Name: "营业收入", Amount: dec("50000"), Positive: true},
		{Name: "营业成本", Amount: dec("30000"), Positive: false},
		{Name: "所得税费用", Amount: dec("5000"), Positive: false},
	}

	res := CheckIncomeStatement(items, nil, tol)
	assert.True(t, res.NetProfit.Equal(dec("15000")))
	assert.True(t, NetProfit(items).Equal(dec("15000")))
}
