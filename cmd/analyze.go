package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/abrnc/ledger/agent"
	"github.com/abrnc/ledger/renderer"
)

type analyzeCmd struct{}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "ask the AI analyst for a summary of business health" }
func (*analyzeCmd) Usage() string {
	return `srl analyze

  Sends a digest of the ledger to Gemini and prints a short executive
  summary. Requires at least one entry and a GEMINI_API_KEY in the
  environment (a .env file next to the ledger works).
`
}

func (*analyzeCmd) SetFlags(_ *flag.FlagSet) {}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if store.Len() == 0 {
		return fail(agent.ErrNoEntries)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(fmt.Errorf("could not initialize Gemini client: %w", err))
	}

	analyst := agent.NewAnalyst(client)
	if cfg.Model != "" {
		analyst.Model = cfg.Model
	}

	request, err := analyst.Analyze(ctx, store.Entries())
	if err != nil {
		return fail(err)
	}

	fmt.Fprintln(os.Stderr, "Analyzing ledger...")
	var insight agent.Insight
	if _, err := request.Wait(ctx); err != nil {
		return fail(err)
	}
	insight.Adopt(request)

	printMarkdown(renderer.InsightMarkdown(insight.Text()))
	return subcommands.ExitSuccess
}
