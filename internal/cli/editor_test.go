package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/cotiza/internal/contract"
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_InitialView(t *testing.T) {
	d := newEditorDriver(t, testApp(t))

	view := d.PlainView()
	assert.Contains(t, view, "Acrylic Waterproofing 5-Year")
	assert.Contains(t, view, "100 m²")
	assert.Contains(t, view, "$18,896.40")
	assert.Contains(t, view, "BREAKDOWN")
	assert.Contains(t, view, "quit")
}

func TestEditor_AdjustPrimaryContainers(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)

	d.PressKeys("++")
	assert.Equal(t, 2, app.Quotes.Config().ExtraBuckets)
	assert.Contains(t, editorState(d).status, "5 bkt")

	d.PressKey('-')
	assert.Equal(t, 1, app.Quotes.Config().ExtraBuckets)
	assert.Contains(t, d.PlainView(), "4 bkt")
}

func TestEditor_AdjustSealerContainers(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)

	d.PressKey(']')
	assert.Equal(t, 1, app.Quotes.Config().ExtraSealerBuckets)

	d.PressKeys("[[")
	assert.Equal(t, -1, app.Quotes.Config().ExtraSealerBuckets)
	assert.Contains(t, editorState(d).status, "Primary Sealer")
}

func TestEditor_CycleCategory(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)
	d.PressKey('+')

	d.PressKey('c')
	cfg := app.Quotes.Config()
	assert.Equal(t, domain.CategoryPaint, cfg.SelectedCategory)
	assert.Equal(t, "paint-vinyl-premium", cfg.SelectedProductID)
	assert.Equal(t, 0, cfg.ExtraBuckets)
	assert.Contains(t, d.PlainView(), "Premium Vinyl Paint")

	d.PressKey('c')
	assert.Equal(t, domain.CategoryWaterproofing, app.Quotes.Config().SelectedCategory)
}

func TestEditor_ToggleMasonry(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)

	d.PressKey('m')
	assert.True(t, app.Quotes.Config().MasonryRepairEnabled)
	assert.Equal(t, "Masonry repairs included", editorState(d).status)
	assert.Contains(t, d.PlainView(), "Masonry Repairs")

	d.PressKey('m')
	assert.False(t, app.Quotes.Config().MasonryRepairEnabled)
	assert.NotContains(t, d.PlainView(), "Masonry Repairs")
}

func TestEditor_EscCancelsForm(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)
	before := app.Quotes.Config()

	d.PressKey('a')
	require.NotNil(t, editorState(d).form)
	assert.Contains(t, d.PlainView(), "AREA")

	d.PressEsc()
	assert.Nil(t, editorState(d).form)
	assert.Equal(t, "Cancelled.", editorState(d).status)
	assert.Equal(t, before, app.Quotes.Config())
}

func TestEditor_KeysGoToFormWhileOpen(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)

	d.PressKey('a')
	d.PressKey('q')
	assert.False(t, d.Quitting, "q is typed into the form")
	assert.NotNil(t, editorState(d).form)
}

func TestEditor_AreaForm_RoundTrip(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)

	d.PressKey('a')
	d.Type("150")
	d.PressEnter()

	assert.Nil(t, editorState(d).form)
	cfg := app.Quotes.Config()
	assert.Equal(t, 150.0, cfg.Area)
	assert.Equal(t, 5, cfg.WorkDays)
	assert.Equal(t, "Area set to 150 m²", editorState(d).status)
}

func TestEditor_LaborForm_AcceptDefaults(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)
	before := app.Quotes.Config()

	d.PressKey('l')
	d.PressEnter() // workers
	d.PressEnter() // daily rate
	d.PressEnter() // days

	assert.Nil(t, editorState(d).form)
	assert.Equal(t, before, app.Quotes.Config())
	assert.Contains(t, editorState(d).status, "Labor: 2 workers")
}

func TestEditor_ResetForm_DefaultKeeps(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)
	d.PressKeys("++")

	d.PressKey('r')
	d.PressEnter()

	assert.Nil(t, editorState(d).form)
	assert.Equal(t, "Reset skipped", editorState(d).status)
	assert.Equal(t, 2, app.Quotes.Config().ExtraBuckets)
}

func TestEditor_ProductPicker_OpensWithAvailableProducts(t *testing.T) {
	d := newEditorDriver(t, testApp(t))

	d.PressKey('p')
	require.NotNil(t, editorState(d).form)
	assert.Contains(t, d.PlainView(), "WATERPROOFING PRODUCTS")

	d.PressEsc()
	assert.Nil(t, editorState(d).form)
}

func TestEditor_HelpToggle(t *testing.T) {
	d := newEditorDriver(t, testApp(t))
	assert.NotContains(t, d.PlainView(), "masonry cost")

	d.PressKey('?')
	assert.Contains(t, d.PlainView(), "masonry cost")
}

func TestEditor_Quit(t *testing.T) {
	d := newEditorDriver(t, testApp(t))

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestEditor_ErrorShownInStatusLine(t *testing.T) {
	m, err := newEditorModel(context.Background(), testApp(t).Quotes)
	require.NoError(t, err)

	m = m.changed(func(*contract.QuoteSnapshot) string { return "ok" }, errors.New("boom"))
	assert.True(t, m.statusErr)
	assert.Contains(t, stripANSI(m.View()), "Error: boom")
}

// --- form apply functions ---

func TestAreaFields_Apply(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	status, err := (&areaFields{area: "1,200"}).apply(ctx, app.Quotes)
	require.NoError(t, err)
	assert.Equal(t, "Area set to 1200 m²", status)
	assert.Equal(t, 1200.0, app.Quotes.Config().Area)

	_, err = (&areaFields{area: "-5"}).apply(ctx, app.Quotes)
	require.Error(t, err)
	assert.Equal(t, 1200.0, app.Quotes.Config().Area)
}

func TestLaborAndScaffoldFields_Apply(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := (&laborFields{workers: "3", rate: "$800", days: "6"}).apply(ctx, app.Quotes)
	require.NoError(t, err)
	cfg := app.Quotes.Config()
	assert.Equal(t, 3, cfg.NumWorkers)
	assert.Equal(t, 800.0, cfg.WorkerDailyRate)
	assert.Equal(t, 6, cfg.WorkDays)

	status, err := (&scaffoldFields{count: "2", rate: "300", days: "4"}).apply(ctx, app.Quotes)
	require.NoError(t, err)
	assert.Contains(t, status, "2 towers")
	assert.Equal(t, 2, app.Quotes.Config().ScaffoldCount)

	status, err = (&scaffoldFields{count: "0", rate: "300", days: "4"}).apply(ctx, app.Quotes)
	require.NoError(t, err)
	assert.Equal(t, "Scaffold not rented", status)

	_, err = (&laborFields{workers: "two", rate: "800", days: "6"}).apply(ctx, app.Quotes)
	assert.Error(t, err)
}

func TestAmountFields_Apply(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := (&masonryCostFields{cost: "2500"}).apply(ctx, app.Quotes)
	require.NoError(t, err)
	cfg := app.Quotes.Config()
	assert.Equal(t, 2500.0, cfg.MasonryRepairCost)
	assert.False(t, cfg.MasonryRepairEnabled, "setting the cost keeps the toggle")

	_, err = (&auxFields{total: "1800"}).apply(ctx, app.Quotes)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, app.Quotes.Config().AuxMaterialTotal)

	status, err := (&profitFields{rate: "30"}).apply(ctx, app.Quotes)
	require.NoError(t, err)
	assert.Equal(t, "Supervision set to 30% of labor", status)
	assert.Equal(t, 30.0, app.Quotes.Config().ProfitRate)
}

func TestProductFields_Apply(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	f := &productFields{draft: domain.ProductDraft{Name: "House Blend", Price: "900"}}
	status, err := f.apply(ctx, app.Quotes)
	require.NoError(t, err)
	assert.Contains(t, status, "Saved House Blend")

	snap, err := app.Quotes.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "House Blend", snap.Current.Name)
	assert.Equal(t, domain.DefaultYield, snap.Current.Yield)

	bad := &productFields{draft: domain.ProductDraft{Name: "Broken", Price: "0"}}
	_, err = bad.apply(ctx, app.Quotes)
	require.ErrorIs(t, err, domain.ErrInvalidProduct)
}

func TestProductForm_EditPrefillsDraft(t *testing.T) {
	current := domain.Product{ID: "wp-acrylic-5y", Name: "Acrylic", Category: domain.CategoryWaterproofing, Yield: 34, Price: 1450, Brand: "Comex"}
	fv := newProductForm(current.Category, &current)
	assert.Equal(t, "Edit Acrylic", fv.title)

	fv = newProductForm(domain.CategoryPaint, nil)
	assert.Equal(t, "New Paint product", fv.title)
}

func TestProductChoiceAndReset_Apply(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := (&productChoice{id: "wp-elastomeric"}).apply(ctx, app.Quotes)
	require.NoError(t, err)
	assert.Equal(t, "wp-elastomeric", app.Quotes.Config().SelectedProductID)

	_, err = (&productChoice{id: "missing"}).apply(ctx, app.Quotes)
	require.ErrorIs(t, err, domain.ErrInvalidConfig)

	status, err := (&resetChoice{confirmed: true}).apply(ctx, app.Quotes)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(status, "Quote reset"))
	assert.Equal(t, domain.DefaultProductID, app.Quotes.Config().SelectedProductID)
}

func TestNewProductPicker_EmptyCategory(t *testing.T) {
	snap := &contract.QuoteSnapshot{Config: domain.InitialConfig()}
	assert.Nil(t, newProductPicker(snap))
}

func TestEditor_HeadingShowsRoundedTotal(t *testing.T) {
	d := newEditorDriver(t, testApp(t))
	assert.Contains(t, d.PlainView(), "≈ $18,896")
}
