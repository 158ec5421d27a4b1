package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the persisted snapshot in canonical form"
}
func (*fmtCmd) Usage() string {
	return `srl fmt

  Reads the ledger and writes it back in canonical form: one JSON array,
  newest first, fields in a fixed order. Useful after hand-editing the
  snapshot or to normalize one produced by an older version.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if err := store.Flush(); err != nil {
		return fail(err)
	}
	fmt.Printf("Rewrote %d entries.\n", store.Len())
	return subcommands.ExitSuccess
}
