package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/cotiza/internal/contract"
	"github.com/alexanderramin/cotiza/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func decodeSnapshot(t *testing.T, out string) contract.QuoteSnapshot {
	t.Helper()
	var snap contract.QuoteSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap), out)
	return snap
}

// --- quote ---

func TestQuoteCmd_Defaults(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "quote")
	require.NoError(t, err)

	plain := stripANSI(out)
	assert.Contains(t, plain, "Acrylic Waterproofing 5-Year")
	assert.Contains(t, plain, "Primary Sealer")
	assert.Contains(t, plain, "$16,290.00")
	assert.Contains(t, plain, "$18,896.40")
}

func TestQuoteCmd_FlagsOverrideDefaults(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "quote", "--json",
		"--area", "200", "--category", "paint", "--workers", "3", "--scaffolds", "2")
	require.NoError(t, err)

	snap := decodeSnapshot(t, out)
	assert.Equal(t, 200.0, snap.Config.Area)
	assert.Equal(t, 7, snap.Config.WorkDays, "work days follow the area")
	assert.Equal(t, domain.CategoryPaint, snap.Config.SelectedCategory)
	assert.Equal(t, "paint-vinyl-premium", snap.Current.ID)
	assert.Equal(t, 3, snap.Config.NumWorkers)
	assert.Equal(t, 2, snap.Config.ScaffoldCount)
	assert.InDelta(t, snap.Result.Subtotal*1.16, snap.Result.Total, 1e-6)
}

func TestQuoteCmd_JobFileWithFlagOverride(t *testing.T) {
	app := testApp(t)
	job := writeTestFile(t, "job.yaml", `
area: 120
category: Paint
product: paint-enamel
profit_rate: 30
masonry_repair_cost: 2000
extra_buckets: 1
`)

	out, err := executeCmd(t, app, "quote", "--json", "--job", job, "--profit", "20")
	require.NoError(t, err)

	snap := decodeSnapshot(t, out)
	assert.Equal(t, 120.0, snap.Config.Area)
	assert.Equal(t, "paint-enamel", snap.Current.ID)
	assert.Equal(t, 20.0, snap.Config.ProfitRate, "flag wins over job file")
	assert.True(t, snap.Config.MasonryRepairEnabled)
	assert.Equal(t, 1, snap.Config.ExtraBuckets)

	masonry, ok := snap.Result.Item(domain.RowMasonry)
	require.True(t, ok)
	assert.Equal(t, 2000.0, masonry.Total)
}

func TestQuoteCmd_ProductsFile(t *testing.T) {
	app := testApp(t)
	products := writeTestFile(t, "products.yaml", `
- name: House Vinyl
  brand: Local
  price: "1200"
  yield: "25"
- id: paint-enamel
  name: Exterior Enamel
  price: "2100"
  yield: "38"
`)

	out, err := executeCmd(t, app, "quote", "--json", "--category", "Paint", "--products", products)
	require.NoError(t, err)

	snap := decodeSnapshot(t, out)
	assert.Equal(t, "House Vinyl", snap.Current.Name, "new product becomes the selection")
	assert.Equal(t, domain.CategoryPaint, snap.Current.Category)
	assert.True(t, strings.HasPrefix(snap.Current.ID, "custom-"))

	var enamel domain.Product
	for _, p := range snap.Catalog {
		if p.ID == "paint-enamel" {
			enamel = p
		}
	}
	assert.Equal(t, 2100.0, enamel.Price, "draft with an id edits that product")
}

func TestQuoteCmd_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown category", []string{"quote", "--category", "roofing"}},
		{"negative area", []string{"quote", "--area", "-10"}},
		{"infinite area", []string{"quote", "--area", "Inf"}},
		{"nan profit", []string{"quote", "--profit", "NaN"}},
		{"unknown product", []string{"quote", "--product", "nope"}},
		{"missing job", []string{"quote", "--job", "/does/not/exist.yaml"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := executeCmd(t, testApp(t), tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestQuoteCmd_InvalidProductDraft(t *testing.T) {
	app := testApp(t)
	products := writeTestFile(t, "products.yaml", `
- name: ""
  price: "abc"
`)
	_, err := executeCmd(t, app, "quote", "--products", products)
	require.ErrorIs(t, err, domain.ErrInvalidProduct)
}

// --- catalog ---

func TestCatalogCmd_ListsAllProducts(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "catalog")
	require.NoError(t, err)

	plain := stripANSI(out)
	assert.Contains(t, plain, "wp-acrylic-5y")
	assert.Contains(t, plain, "paint-vinyl-premium")
	assert.Contains(t, plain, "sealer-5x1")
	assert.Contains(t, plain, "$1,450.00")
}

func TestCatalogCmd_FilterByCategory(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "catalog", "--category", "paint")
	require.NoError(t, err)

	plain := stripANSI(out)
	assert.Contains(t, plain, "paint-enamel")
	assert.NotContains(t, plain, "wp-acrylic-5y")
}

func TestCatalogCmd_RejectsUnknownCategory(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "catalog", "--category", "roofing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

// --- export ---

func TestExportCmd_PDFToExplicitPath(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "out", "house.pdf")

	out, err := executeCmd(t, app, "export", "--area", "80", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "COT-20260314-0930")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportCmd_XLSXDefaultsToExportDir(t *testing.T) {
	app := testApp(t)
	app.Settings.ExportFormat = "xlsx"

	_, err := executeCmd(t, app, "export", "--masonry-cost", "1500")
	require.NoError(t, err)

	path := filepath.Join(app.Settings.ExportDir, "cot-20260314-0930.xlsx")
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	concept, err := f.GetCellValue("Quote", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Waterproofing", concept)

	rows, err := f.GetRows("Quote")
	require.NoError(t, err)
	var found bool
	for _, r := range rows {
		for _, c := range r {
			if c == "Masonry Repairs" {
				found = true
			}
		}
	}
	assert.True(t, found, "masonry row exported")
}

func TestExportCmd_RejectsUnknownFormat(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "export", "--format", "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}

// --- root / edit ---

func TestRootCmd_InteractiveOpensEditor(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }

	var ran tea.Model
	app.RunProgram = func(m tea.Model) error {
		ran = m
		return nil
	}

	_, err := executeCmd(t, app)
	require.NoError(t, err)
	require.NotNil(t, ran)
	_, ok := ran.(editorModel)
	assert.True(t, ok)
}

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }
	app.RunProgram = func(tea.Model) error {
		t.Fatal("editor must not start without a terminal")
		return nil
	}

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "quote")
	assert.Contains(t, out, "export")
}

func TestEditCmd_RunsEditor(t *testing.T) {
	app := testApp(t)
	called := false
	app.RunProgram = func(tea.Model) error {
		called = true
		return nil
	}

	_, err := executeCmd(t, app, "edit")
	require.NoError(t, err)
	assert.True(t, called)
}
