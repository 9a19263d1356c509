package cli

import (
	"time"

	"github.com/alexanderramin/cotiza/internal/config"
	"github.com/alexanderramin/cotiza/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the quoting session and runtime settings used by CLI commands.
type App struct {
	Quotes   service.QuoteService
	Settings config.Config

	// Now stamps exported documents. Defaults to time.Now.
	Now func() time.Time
	// IsInteractive reports whether stdin is a terminal. When it does, the
	// bare root command opens the editor.
	IsInteractive func() bool
	// RunProgram runs a bubbletea model to completion. Tests replace it.
	RunProgram func(tea.Model) error
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewRootCmd creates the top-level "cotiza" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cotiza",
		Short:         "Waterproofing and paint quote calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runEditor(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newQuoteCmd(app),
		newCatalogCmd(app),
		newExportCmd(app),
		newEditCmd(app),
	)

	return root
}
