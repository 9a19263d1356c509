package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/cotiza/internal/catalog"
	"github.com/alexanderramin/cotiza/internal/cli"
	"github.com/alexanderramin/cotiza/internal/config"
	"github.com/alexanderramin/cotiza/internal/db"
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/repository"
	"github.com/alexanderramin/cotiza/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()
	settings := config.LoadConfig()

	builtin, err := loadCatalog(settings)
	if err != nil {
		return err
	}

	// Custom products live for one session only.
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if settings.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Quotes: service.NewQuoteService(
			builtin,
			repository.NewSQLiteCustomProductRepo(database),
			db.NewSQLiteUnitOfWork(database),
			observers...,
		),
		Settings: settings,
	}

	// Detect interactive terminal so a bare "cotiza" opens the editor.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

func loadCatalog(settings config.Config) ([]domain.Product, error) {
	if settings.CatalogPath != "" {
		return catalog.LoadFile(settings.CatalogPath)
	}
	return catalog.LoadBuiltin()
}
