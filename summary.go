package ledger

import "github.com/shopspring/decimal"

// FinancialSummary is the reduction of the entry list into per-status
// totals and counts. It is derived on demand and never persisted.
type FinancialSummary struct {
	TotalRevenue    decimal.Decimal // sum of totalAmount over Paid entries
	PendingAmount   decimal.Decimal // sum of totalAmount over Pending entries
	CancelledAmount decimal.Decimal // sum of totalAmount over Cancelled entries
	PaidCount       int
	PendingCount    int
	CancelledCount  int
}

// Summarize folds the entries into a FinancialSummary in a single pass.
// Accumulation is commutative, so the result does not depend on entry
// order. The switch is exhaustive over the status enum; an entry carrying
// an unknown status (hand-edited snapshot) is ignored rather than counted
// under a wrong bucket.
func Summarize(entries []ReceiptEntry) FinancialSummary {
	var s FinancialSummary
	for _, e := range entries {
		switch e.Status {
		case Paid:
			s.TotalRevenue = s.TotalRevenue.Add(e.TotalAmount)
			s.PaidCount++
		case Pending:
			s.PendingAmount = s.PendingAmount.Add(e.TotalAmount)
			s.PendingCount++
		case Cancelled:
			s.CancelledAmount = s.CancelledAmount.Add(e.TotalAmount)
			s.CancelledCount++
		}
	}
	return s
}
