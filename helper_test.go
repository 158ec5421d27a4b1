package ledger

import "github.com/shopspring/decimal"

// dec is a helper for tests to build exact decimals from string constants.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// testEntry is a helper for tests to build an entry with a given receipt
// number, status and total amount.
func testEntry(id, receiptNo string, status Status, total string) ReceiptEntry {
	return ReceiptEntry{
		ID:              id,
		Date:            "2026-08-30",
		ReceiptNo:       receiptNo,
		Name:            "A. Customer",
		ItemDescription: "item",
		Quantity:        1,
		Price:           dec(total),
		Discount:        decimal.Zero,
		Amount:          dec(total),
		TotalAmount:     dec(total),
		Status:          status,
	}
}
