// Package renderer renders ledger reports as markdown strings, leaving the
// terminal styling to the caller.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/abrnc/ledger"
)

// SummaryMarkdown renders the financial summary as a markdown report.
// Amounts are formatted in the given currency.
func SummaryMarkdown(s ledger.FinancialSummary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ledger Summary")
	doc.PlainText(fmt.Sprintf("Total Revenue (paid): %s", ledger.M(s.TotalRevenue, currency)))

	table := md.TableSet{
		Header: []string{"Status", "Amount", "Receipts"},
		Rows: [][]string{
			{ledger.Paid.String(), ledger.M(s.TotalRevenue, currency).String(), fmt.Sprintf("%d", s.PaidCount)},
			{ledger.Pending.String(), ledger.M(s.PendingAmount, currency).String(), fmt.Sprintf("%d", s.PendingCount)},
			{ledger.Cancelled.String(), ledger.M(s.CancelledAmount, currency).String(), fmt.Sprintf("%d", s.CancelledCount)},
		},
	}
	doc.Table(table)

	return doc.String()
}

// InsightMarkdown wraps an AI analysis text in a small markdown report.
func InsightMarkdown(text string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("AI Insight")
	doc.PlainText(text)

	return doc.String()
}
