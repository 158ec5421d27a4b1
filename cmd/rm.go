package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/subcommands"
)

type rmCmd struct {
	force bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a receipt entry" }
func (*rmCmd) Usage() string {
	return `srl rm [-f] <id>

  Deletes the entry with the given id, asking for confirmation first.
  Use -f to skip the confirmation.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Skip confirmation.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one entry id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	entry, ok := store.Entry(id)
	if !ok {
		return fail(fmt.Errorf("no entry with id %q", id))
	}

	if !c.force {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Printf("%s Delete %s: %s for %s on %s? [y/N] ",
			yellow("!"), entry.ReceiptNo, entry.ItemDescription, entry.Name, entry.Date)

		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fail(fmt.Errorf("could not read confirmation: %w", err))
		}
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Cancelled.")
			return subcommands.ExitSuccess
		}
	}

	if !store.Remove(id) {
		return fail(fmt.Errorf("no entry with id %q", id))
	}
	fmt.Printf("Deleted %s.\n", entry.ReceiptNo)
	return subcommands.ExitSuccess
}
