// Package cmd implements the CLI application to manage a receipt ledger.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/abrnc/ledger"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "entries")
	c.Register(&rmCmd{}, "entries")
	c.Register(&statusCmd{}, "entries")
	c.Register(&listCmd{}, "entries")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&analyzeCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "maintenance")
}

// Config is the environment-driven configuration of the tool. Every field
// reads from an SRL_* variable; a local .env file is loaded first so the
// Gemini credential and overrides can live next to the ledger.
type Config struct {
	Dir      string `default:".srl" desc:"directory holding the ledger snapshot"`
	Backend  string `default:"file" desc:"storage backend: file or sqlite"`
	DBPath   string `envconfig:"DB_PATH" default:".srl/ledger.db" desc:"sqlite database path"`
	Currency string `default:"INR" desc:"display currency for amounts"`
	Model    string `default:"" desc:"Gemini model for srl analyze"`
}

// loadConfig reads .env (when present) and then the SRL_* environment.
func loadConfig() (Config, error) {
	_ = godotenv.Load() // a missing .env is fine

	var cfg Config
	if err := envconfig.Process("srl", &cfg); err != nil {
		return Config{}, fmt.Errorf("could not read configuration: %w", err)
	}
	return cfg, nil
}

// openStore opens the configured storage backend and loads the ledger.
// The returned closer must be called when the command is done.
func openStore(cfg Config) (*ledger.Store, func(), error) {
	switch cfg.Backend {
	case "file":
		return ledger.Open(ledger.NewFileStorage(cfg.Dir)), func() {}, nil
	case "sqlite":
		storage, err := ledger.OpenSQLiteStorage(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return ledger.Open(storage), func() { storage.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q (want file or sqlite)", cfg.Backend)
	}
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.RenderWithEnvironmentConfig(md)
	if err != nil {
		// Fall back to the raw markdown, still perfectly readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error the way every command reports them.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
