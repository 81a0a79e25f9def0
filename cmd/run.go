package cmd

import (
	"fmt"
	"os"

	"github.com/beemnet-bee/Elementia/internal/app"
	"github.com/beemnet-bee/Elementia/internal/facts"
	"github.com/beemnet-bee/Elementia/internal/progress"
	"github.com/beemnet-bee/Elementia/internal/storage"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	opts := app.Options{
		Store: progress.NewStore(db),
	}

	provider, err := facts.NewProviderFromEnv(ctx, db.FactEvents())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Fact provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Element fact lookups will be unavailable.")
	} else {
		opts.Facts = facts.NewService(provider)
	}

	return app.Run(ctx, opts)
}
