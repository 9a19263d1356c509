package cli

import (
	"fmt"

	"github.com/alexanderramin/cotiza/internal/catalog"
	"github.com/alexanderramin/cotiza/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	var category categoryValue
	var products string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the products available for quoting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if products != "" {
				if err := addProducts(ctx, app.Quotes, products); err != nil {
					return err
				}
			}

			snap, err := app.Quotes.Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			list := snap.Catalog
			if cmd.Flags().Changed("category") {
				list = catalog.ByCategory(list, category.category)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(list, snap.Current.ID))
			return nil
		},
	}

	cmd.Flags().Var(&category, "category", "Only list products of this category")
	cmd.Flags().StringVar(&products, "products", "", "YAML list of custom products to include")

	return cmd
}
