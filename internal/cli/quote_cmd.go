package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/cotiza/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newQuoteCmd(app *App) *cobra.Command {
	var flags quoteFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a quote for the given settings",
		Example: `  cotiza quote --area 120 --category paint
  cotiza quote --job job.yaml --products products.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := flags.apply(ctx, cmd.Flags(), app.Quotes); err != nil {
				return err
			}

			snap, err := app.Quotes.Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("computing quote: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			fmt.Fprintln(out, formatter.FormatQuote(snap))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full quote snapshot as JSON")

	return cmd
}
