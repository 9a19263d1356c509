package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/cotiza/internal/cli/formatter"
	"github.com/alexanderramin/cotiza/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var flags quoteFlags
	var format formatValue
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the quote as a PDF or XLSX document",
		Example: `  cotiza export --area 80 --format xlsx
  cotiza export --job job.yaml --out quotes/house.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("format") {
				if err := format.Set(app.Settings.ExportFormat); err != nil {
					return err
				}
			}
			if err := flags.apply(ctx, cmd.Flags(), app.Quotes); err != nil {
				return err
			}

			snap, err := app.Quotes.Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("computing quote: %w", err)
			}

			doc := export.NewDocument(snap, app.Settings.Company, app.now())
			data, err := export.Generate(doc, format.format)
			if err != nil {
				return err
			}

			path := exportPath(out, app.Settings.ExportDir, doc.FileName(format.format))
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating export directory: %w", err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				formatter.StyleGreen.Render("Exported"), doc.Reference, formatter.Dim("→ "+path))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().Var(&format, "format", "Output format: pdf or xlsx (default from COTIZA_EXPORT_FORMAT)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default <reference>.<format> in COTIZA_EXPORT_DIR)")

	return cmd
}

// exportPath resolves where an export is written. A bare file name goes
// into dir; anything with a directory part is used as given.
func exportPath(out, dir, defaultName string) string {
	if out == "" {
		return filepath.Join(dir, defaultName)
	}
	if filepath.IsAbs(out) || filepath.Dir(out) != "." {
		return out
	}
	return filepath.Join(dir, out)
}
