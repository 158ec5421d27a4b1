package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// receiptPrefix is the display prefix of every receipt number.
const receiptPrefix = "AB_RNC"

// receiptSeparator splits the prefix from the numeric suffix.
const receiptSeparator = " - "

// ComputeAmounts derives the two amounts of an entry from its raw inputs:
// amount = quantity * price, total = amount - discount.
//
// It performs no clamping: a discount larger than the amount yields a
// negative total. Rejecting non-positive quantities or negative prices is
// the form's responsibility.
func ComputeAmounts(quantity int64, price, discount decimal.Decimal) (amount, total decimal.Decimal) {
	amount = price.Mul(decimal.NewFromInt(quantity))
	total = amount.Sub(discount)
	return amount, total
}

// receiptSuffix extracts the numeric suffix of a receipt number.
// A malformed value (missing separator, non-numeric suffix) counts as 0
// rather than failing: a single bad record must not block numbering.
func receiptSuffix(receiptNo string) int {
	_, suffix, found := strings.Cut(receiptNo, receiptSeparator)
	if !found {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(suffix))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NextReceiptNumber generates the receipt number for the next entry, one
// past the highest suffix among the entries currently present. The suffix
// is zero-padded to at least two digits and grows unbounded past 99.
//
// Numbering is derived from the current collection, not from a persisted
// counter: deleting the entry holding the maximum suffix frees its number
// for reuse.
func NextReceiptNumber(entries []ReceiptEntry) string {
	max := 0
	for _, e := range entries {
		if n := receiptSuffix(e.ReceiptNo); n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%s%02d", receiptPrefix, receiptSeparator, max+1)
}
