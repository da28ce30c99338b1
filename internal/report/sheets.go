package report

import (
	"strconv"

	"github.com/tally-dev/tally/internal/model"
)

// Sheet is one in-memory table of the structured export. The Report
// Builder only constructs sheets; writing them to a workbook is the
// export sink's job.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

const dateFormat = "2006-01-02"

// BuildSheets assembles the export sheets: the full report text, the
// account change analysis, and, when the corresponding audit ran, the
// transaction trace, income verification and unbalanced item listings.
func BuildSheets(r *model.AuditResult, period string) []Sheet {
	sheets := []Sheet{
		{
			Name:   "Audit Report",
			Header: []string{"Audit Report"},
			Rows:   [][]string{{RenderText(r, period)}},
		},
		accountAnalysisSheet(r.BalanceSheet),
	}

	if r.Trace != nil {
		sheets = append(sheets, traceSheet(r.Trace))
	}
	if r.Income != nil {
		sheets = append(sheets, incomeSheet(r.Income))
	}
	if len(r.Unbalanced) > 0 {
		sheets = append(sheets, unbalancedSheet(r.Unbalanced))
	}
	return sheets
}

func accountAnalysisSheet(bs model.BalanceSheetResult) Sheet {
	s := Sheet{
		Name:   "Account Analysis",
		Header: []string{"Account", "Type", "Opening", "Debit", "Credit", "Net", "Expected Closing", "Closing", "Balanced", "Difference"},
	}
	for _, a := range bs.Accounts {
		s.Rows = append(s.Rows, []string{
			a.Name,
			string(a.Type),
			a.Opening.StringFixed(2),
			a.Debit.StringFixed(2),
			a.Credit.StringFixed(2),
			a.Net.StringFixed(2),
			a.Expected.StringFixed(2),
			a.Closing.StringFixed(2),
			yesNo(a.Balanced),
			a.Diff.StringFixed(2),
		})
	}
	return s
}

func traceSheet(t *model.TraceResult) Sheet {
	s := Sheet{
		Name:   "Transaction Trace",
		Header: []string{"Account", "Date", "Voucher", "Debit", "Credit", "Net", "Explained"},
	}
	for _, acct := range t.Accounts {
		for _, tx := range acct.Transactions {
			date := ""
			if !tx.Date.IsZero() {
				date = tx.Date.Format(dateFormat)
			}
			s.Rows = append(s.Rows, []string{
				acct.Account,
				date,
				tx.Voucher,
				tx.Debit.StringFixed(2),
				tx.Credit.StringFixed(2),
				tx.Net().StringFixed(2),
				yesNo(acct.Explained),
			})
		}
	}
	return s
}

func incomeSheet(in *model.IncomeStatementResult) Sheet {
	s := Sheet{
		Name:   "Income Verification",
		Header: []string{"Item", "Reported", "Detail Total", "Details", "Difference", "Matched", "Increases Profit"},
	}
	for _, item := range in.Items {
		s.Rows = append(s.Rows, []string{
			item.Name,
			item.Reported.StringFixed(2),
			item.DetailTotal.StringFixed(2),
			strconv.Itoa(item.DetailCount),
			item.Diff.StringFixed(2),
			yesNo(item.Matched),
			yesNo(item.Positive),
		})
	}
	return s
}

func unbalancedSheet(items []model.UnbalancedItem) Sheet {
	s := Sheet{
		Name:   "Unbalanced Items",
		Header: []string{"Name", "Category", "Difference"},
	}
	for _, item := range items {
		s.Rows = append(s.Rows, []string{
			item.Name,
			string(item.Category),
			item.Diff.StringFixed(2),
		})
	}
	return s
}
