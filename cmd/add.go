package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/abrnc/ledger"
)

type addCmd struct {
	date     string
	name     string
	item     string
	request  string
	quantity int64
	price    string
	discount string
	status   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new receipt entry in the ledger" }
func (*addCmd) Usage() string {
	return `srl add -name <customer> -item <description> -qty <n> -price <unit price> [-discount <amount>] [-date <date>] [-request <note>] [-status <status>]

  Records a new entry. The receipt number and the derived amounts
  (quantity*price, minus discount) are computed automatically.

Usage Examples:
$ srl add -name "R. Sharma" -item "Wedding album" -qty 2 -price 1500 -discount 200
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Entry date (defaults to today).")
	f.StringVar(&c.name, "name", "", "Customer name (required).")
	f.StringVar(&c.item, "item", "", "Item description (required).")
	f.StringVar(&c.request, "request", "", "Optional customer request note.")
	f.Int64Var(&c.quantity, "qty", 1, "Quantity (positive integer).")
	f.StringVar(&c.price, "price", "0", "Unit price (non-negative).")
	f.StringVar(&c.discount, "discount", "0", "Discount to deduct (non-negative).")
	f.StringVar(&c.status, "status", "Pending", "Initial status (Paid, Pending or Cancelled).")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// The form rejects out-of-range inputs before the engine sees them;
	// the derivation itself never clamps.
	if c.quantity <= 0 {
		return fail(fmt.Errorf("quantity must be a positive integer, got %d", c.quantity))
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		return fail(fmt.Errorf("invalid price %q: %w", c.price, err))
	}
	if price.IsNegative() {
		return fail(fmt.Errorf("price must not be negative, got %s", price))
	}
	discount, err := decimal.NewFromString(c.discount)
	if err != nil {
		return fail(fmt.Errorf("invalid discount %q: %w", c.discount, err))
	}
	if discount.IsNegative() {
		return fail(fmt.Errorf("discount must not be negative, got %s", discount))
	}
	status, err := ledger.ParseStatus(c.status)
	if err != nil {
		return fail(err)
	}

	date := c.date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	entry, err := store.Add(ledger.EntryDraft{
		Date:            date,
		Name:            c.name,
		ItemDescription: c.item,
		CustomerRequest: c.request,
		Quantity:        c.quantity,
		Price:           price,
		Discount:        discount,
		Status:          status,
	})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded %s: %s, total %s (%s)\n",
		entry.ReceiptNo, entry.ItemDescription, ledger.M(entry.TotalAmount, cfg.Currency), entry.Status)
	return subcommands.ExitSuccess
}
