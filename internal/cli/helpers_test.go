package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/cotiza/internal/catalog"
	"github.com/alexanderramin/cotiza/internal/config"
	"github.com/alexanderramin/cotiza/internal/repository"
	"github.com/alexanderramin/cotiza/internal/service"
	"github.com/alexanderramin/cotiza/internal/teatest"
	"github.com/alexanderramin/cotiza/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testIssuedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB and the built-in catalog.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	builtin, err := catalog.LoadBuiltin()
	require.NoError(t, err)

	quotes := service.NewQuoteService(
		builtin,
		repository.NewSQLiteCustomProductRepo(database),
		testutil.NewTestUoW(database),
	)

	settings := config.DefaultConfig()
	settings.ExportDir = t.TempDir()

	return &App{
		Quotes:   quotes,
		Settings: settings,
		Now:      func() time.Time { return testIssuedAt },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

// writeTestFile writes content to name inside a per-test directory.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// newEditorDriver starts the editor against app's session.
func newEditorDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	m, err := newEditorModel(context.Background(), app.Quotes)
	require.NoError(t, err)

	d := teatest.New(t, m, teatest.WithSize(160, 60))
	d.DrainInit()
	return d
}

func editorState(d *teatest.Driver) editorModel {
	return d.Model.(editorModel)
}
