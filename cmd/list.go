package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/olekukonko/tablewriter"

	"github.com/abrnc/ledger"
)

type listCmd struct {
	status string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list receipt entries, newest first" }
func (*listCmd) Usage() string {
	return `srl list [-status <status>]

  Lists the ledger entries in a table, newest first, optionally filtered
  by status.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only show entries with this status.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filter ledger.Status
	if c.status != "" {
		s, err := ledger.ParseStatus(c.status)
		if err != nil {
			return fail(err)
		}
		filter = s
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

	entries := store.Entries()
	if filter != "" {
		kept := entries[:0]
		for _, e := range entries {
			if e.Status == filter {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	if len(entries) == 0 {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Printf("%s No entries found.\n", yellow("!"))
		return subcommands.ExitSuccess
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Receipt", "Date", "Customer", "Item", "Qty", "Total", "Status", "ID"})
	table.SetBorder(false)

	for _, e := range entries {
		item := e.ItemDescription
		if len(item) > 30 {
			item = item[:27] + "..."
		}

		statusColor := tablewriter.FgGreenColor
		switch e.Status {
		case ledger.Pending:
			statusColor = tablewriter.FgYellowColor
		case ledger.Cancelled:
			statusColor = tablewriter.FgRedColor
		}

		table.Rich([]string{
			e.ReceiptNo,
			e.Date,
			e.Name,
			item,
			fmt.Sprintf("%d", e.Quantity),
			ledger.M(e.TotalAmount, cfg.Currency).String(),
			e.Status.String(),
			e.ID,
		}, []tablewriter.Colors{
			{tablewriter.Bold},
			{},
			{},
			{},
			{},
			{tablewriter.FgGreenColor},
			{statusColor},
			{},
		})
	}
	table.Render()
	return subcommands.ExitSuccess
}
