package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/abrnc/ledger"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "change the status of a receipt entry" }
func (*statusCmd) Usage() string {
	return `srl status <id> <Paid|Pending|Cancelled>

  Sets the status of the entry with the given id. Any status can be
  assigned regardless of the current one.
`
}

func (*statusCmd) SetFlags(_ *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected an entry id and a status.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	status, err := ledger.ParseStatus(f.Arg(1))
	if err != nil {
		return fail(err)
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

	if !store.UpdateStatus(id, status) {
		return fail(fmt.Errorf("no entry with id %q", id))
	}
	entry, _ := store.Entry(id)
	fmt.Printf("%s is now %s.\n", entry.ReceiptNo, status)
	return subcommands.ExitSuccess
}
