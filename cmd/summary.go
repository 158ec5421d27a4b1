package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/abrnc/ledger/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the financial summary of the ledger" }
func (*summaryCmd) Usage() string {
	return `srl summary

  Shows revenue, pending and cancelled totals with their receipt counts.
  The summary is recomputed from the entries on every call.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	printMarkdown(renderer.SummaryMarkdown(store.Summary(), cfg.Currency))
	return subcommands.ExitSuccess
}
