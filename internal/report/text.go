package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

const lineWidth = 80

var (
	thickRule = strings.Repeat("=", lineWidth)
	thinRule  = strings.Repeat("-", lineWidth)
)

// RenderText produces the fixed five-section audit report. Output is
// deterministic: identical inputs yield byte-identical reports.
func RenderText(r *model.AuditResult, period string) string {
	var b strings.Builder

	b.WriteString(thickRule + "\n")
	b.WriteString(center("Financial Audit Report - "+period) + "\n")
	b.WriteString(thickRule + "\n\n")

	b.WriteString("I. Overview\n")
	b.WriteString(thinRule + "\n")
	b.WriteString("Result: " + passFail(r.IsPassed) + "\n")
	if !r.IsPassed && r.AdvisoryPassed {
		b.WriteString("Warning: only the cross-statement check failed; see section IV\n")
	}
	for _, w := range r.Warnings {
		b.WriteString("Warning: " + w + "\n")
	}
	b.WriteString("\n")

	bs := r.BalanceSheet
	b.WriteString("II. Balance Sheet Audit\n")
	b.WriteString(thinRule + "\n")
	fmt.Fprintf(&b, "Total assets:      %s\n", formatAmount(bs.Assets))
	fmt.Fprintf(&b, "Total liabilities: %s\n", formatAmount(bs.Liabilities))
	fmt.Fprintf(&b, "Total equity:      %s\n", formatAmount(bs.Equity))
	fmt.Fprintf(&b, "Balanced: %s\n", yesNo(bs.Balanced))
	if !bs.Balanced {
		fmt.Fprintf(&b, "  Difference: %s\n", formatAmount(bs.Diff))
	}
	b.WriteString("\n")

	if r.Income != nil {
		in := r.Income
		b.WriteString("III. Income Statement Audit\n")
		b.WriteString(thinRule + "\n")
		fmt.Fprintf(&b, "Items matched: %d/%d\n", in.Matched, in.Total)
		fmt.Fprintf(&b, "Net profit: %s\n", formatAmount(in.NetProfit))
		if in.Matched < in.Total {
			b.WriteString("Unmatched items:\n")
			for _, item := range in.Items {
				if item.Matched {
					continue
				}
				reason := string(model.CategoryAmountMismatch)
				if item.NoDetail {
					reason = string(model.CategoryNoDetailSupport)
				}
				fmt.Fprintf(&b, "  - %s: difference %s (%s)\n", item.Name, formatAmount(item.Diff), reason)
			}
		}
		b.WriteString("\n")
	}

	if r.Cross != nil {
		c := r.Cross
		b.WriteString("IV. Cross-Statement Check\n")
		b.WriteString(thinRule + "\n")
		fmt.Fprintf(&b, "Retained earnings account: %s\n", c.Account)
		fmt.Fprintf(&b, "Net profit:                %s\n", formatAmount(c.NetProfit))
		fmt.Fprintf(&b, "Retained earnings movement: %s\n", formatAmount(c.Movement))
		fmt.Fprintf(&b, "Verified: %s\n", yesNo(c.Passed))
		if !c.Passed {
			fmt.Fprintf(&b, "  Difference: %s\n", formatAmount(c.Diff))
		}
		b.WriteString("\n")
	}

	b.WriteString("V. Unbalanced Items\n")
	b.WriteString(thinRule + "\n")
	if len(r.Unbalanced) == 0 {
		b.WriteString("  (none)\n")
	} else {
		for _, item := range r.Unbalanced {
			fmt.Fprintf(&b, "  - %s (%s): difference %s\n", item.Name, item.Category, formatAmount(item.Diff))
		}
	}
	b.WriteString("\n")

	b.WriteString(thickRule + "\n")
	b.WriteString("Audit complete\n")
	b.WriteString(thickRule + "\n")

	return b.String()
}

func passFail(ok bool) string {
	if ok {
		return "PASSED"
	}
	return "FAILED"
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	pad := (lineWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

// formatAmount renders a decimal with two fraction digits and thousands
// separators, e.g. -1234567.8 -> "-1,234,567.80".
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	out := grouped.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
