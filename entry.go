package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Status is the settlement state of a receipt entry.
type Status string

// The three settlement states an entry can be in. Any status may transition
// to any other: the ledger records what the user says, it does not police
// the direction of the change.
const (
	Paid      Status = "Paid"
	Pending   Status = "Pending"
	Cancelled Status = "Cancelled"
)

// ParseStatus parses a string into a Status. Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paid":
		return Paid, nil
	case "pending":
		return Pending, nil
	case "cancelled":
		return Cancelled, nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

func (s Status) String() string { return string(s) }

// ReceiptEntry is one record in the ledger.
//
// Amount and TotalAmount are derived from Quantity, Price and Discount at
// creation time and are never edited afterwards; the only mutable field is
// Status. ID and ReceiptNo are assigned at creation and immutable.
type ReceiptEntry struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"` // user-supplied calendar date, ISO-like
	ReceiptNo       string          `json:"receiptNo"`
	Name            string          `json:"name"`
	ItemDescription string          `json:"itemDescription"`
	CustomerRequest string          `json:"customerRequest,omitempty"`
	Quantity        int64           `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Discount        decimal.Decimal `json:"discount"`
	Amount          decimal.Decimal `json:"amount"`      // quantity * price
	TotalAmount     decimal.Decimal `json:"totalAmount"` // amount - discount
	Status          Status          `json:"status"`
}

// MarshalJSON writes the entry with a canonical field order, so that
// persisted snapshots are stable and diffable.
func (e ReceiptEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("receiptNo", e.ReceiptNo)
	w.Append("name", e.Name)
	w.Append("itemDescription", e.ItemDescription)
	w.Optional("customerRequest", e.CustomerRequest)
	w.Append("quantity", e.Quantity)
	w.Append("price", e.Price)
	w.Append("discount", e.Discount)
	w.Append("amount", e.Amount)
	w.Append("totalAmount", e.TotalAmount)
	w.Append("status", e.Status)
	return w.MarshalJSON()
}

// Equal reports whether two entries are identical field for field.
func (e ReceiptEntry) Equal(o ReceiptEntry) bool {
	return e.ID == o.ID &&
		e.Date == o.Date &&
		e.ReceiptNo == o.ReceiptNo &&
		e.Name == o.Name &&
		e.ItemDescription == o.ItemDescription &&
		e.CustomerRequest == o.CustomerRequest &&
		e.Quantity == o.Quantity &&
		e.Price.Equal(o.Price) &&
		e.Discount.Equal(o.Discount) &&
		e.Amount.Equal(o.Amount) &&
		e.TotalAmount.Equal(o.TotalAmount) &&
		e.Status == o.Status
}

// EntryDraft carries the user-facing fields of a new entry. ID, ReceiptNo
// and the derived amounts are filled in by the store on Add.
type EntryDraft struct {
	Date            string
	Name            string
	ItemDescription string
	CustomerRequest string
	Quantity        int64
	Price           decimal.Decimal
	Discount        decimal.Decimal
	Status          Status
}

var (
	errMissingName = errors.New("name is required")
	errMissingItem = errors.New("item description is required")
)

// Validate checks the draft for the fields the ledger requires. Sign and
// range checks on quantity, price and discount are the form's concern, not
// the draft's.
func (d EntryDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errMissingName
	}
	if strings.TrimSpace(d.ItemDescription) == "" {
		return errMissingItem
	}
	return nil
}
