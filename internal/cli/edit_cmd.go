package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive quote editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd.Context(), app)
		},
	}
}

func runEditor(ctx context.Context, app *App) error {
	m, err := newEditorModel(ctx, app.Quotes)
	if err != nil {
		return err
	}
	return app.runProgram(m)
}
