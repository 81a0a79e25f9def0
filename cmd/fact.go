package cmd

import (
	"fmt"

	"github.com/beemnet-bee/Elementia/internal/elements"
	"github.com/beemnet-bee/Elementia/internal/facts"
	"github.com/beemnet-bee/Elementia/internal/storage"
	"github.com/spf13/cobra"
)

var factCmd = &cobra.Command{
	Use:   "fact <element>",
	Short: "Print one scientific fact about an element",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		el, ok := elements.FindByName(args[0])
		if !ok {
			return fmt.Errorf("unknown element: %q", args[0])
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		db, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()

		ctx := cmd.Context()
		provider, err := facts.NewProviderFromEnv(ctx, db.FactEvents())
		if err != nil {
			return fmt.Errorf("fact provider not configured: %w", err)
		}

		fmt.Printf("%s (%s, %d)\n", el.Name, el.Symbol, el.Number)
		fmt.Println(facts.NewService(provider).ElementFact(ctx, el.Name))
		return nil
	},
}
