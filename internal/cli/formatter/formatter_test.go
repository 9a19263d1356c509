package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/cotiza/internal/contract"
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/quote"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func testSnapshot(t *testing.T, masonry bool) *contract.QuoteSnapshot {
	t.Helper()
	cfg := domain.InitialConfig()
	cfg.MasonryRepairEnabled = masonry
	cfg.MasonryRepairCost = 2000
	p := domain.Product{ID: "wp-acrylic-5y", Name: "Acrylic 5Y", Category: domain.CategoryWaterproofing, Yield: 34, Price: 1450, Brand: "Comex"}

	result, err := quote.Derive(cfg, p)
	require.NoError(t, err)
	return &contract.QuoteSnapshot{
		Config:    cfg,
		Catalog:   []domain.Product{p},
		Current:   p,
		Available: []domain.Product{p},
		Result:    result,
		Summary:   quote.Summarize(cfg, result),
	}
}

func TestFormatQuote_ShowsRowsAndTotals(t *testing.T) {
	out := stripANSI(FormatQuote(testSnapshot(t, false)))

	assert.Contains(t, out, "Waterproofing")
	assert.Contains(t, out, "Acrylic 5Y")
	assert.Contains(t, out, "100 m²")
	assert.Contains(t, out, "3 bkt")
	assert.Contains(t, out, "$4,350.00")
	assert.Contains(t, out, "Primary Sealer")
	assert.Contains(t, out, "Supervision & Administration")
	assert.Contains(t, out, "$16,290.00")
	assert.Contains(t, out, "IVA 16%")
	assert.Contains(t, out, "$2,606.40")
	assert.Contains(t, out, "$18,896.40")
	assert.NotContains(t, out, "Masonry Repairs")
	assert.Contains(t, out, "BREAKDOWN")
}

func TestFormatQuoteItems_MarksAdjustableAndWarningRows(t *testing.T) {
	snap := testSnapshot(t, true)
	out := stripANSI(FormatQuoteItems(snap.Result.Items))

	lines := strings.Split(out, "\n")
	var primary, masonry, aux string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Waterproofing"):
			primary = l
		case strings.Contains(l, "Masonry Repairs"):
			masonry = l
		case strings.Contains(l, "Auxiliary"):
			aux = l
		}
	}
	require.NotEmpty(t, primary)
	require.NotEmpty(t, masonry)
	assert.True(t, strings.HasPrefix(primary, "±"))
	assert.True(t, strings.HasPrefix(masonry, "!"))
	assert.False(t, strings.HasPrefix(aux, "±"))
	assert.Contains(t, masonry, "Service")
}

func TestFormatSummary_IncludesMasonryOnlyWhenEnabled(t *testing.T) {
	off := testSnapshot(t, false)
	assert.NotContains(t, stripANSI(FormatSummary(off.Summary, off.Result.Subtotal)), "Masonry")

	on := testSnapshot(t, true)
	out := stripANSI(FormatSummary(on.Summary, on.Result.Subtotal))
	assert.Contains(t, out, "Masonry")
	assert.Contains(t, out, "$2,000.00")
	assert.Contains(t, out, "Materials")
}

func TestFormatCatalog_MarksCurrent(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "Alpha", Category: domain.CategoryPaint, Yield: 40, Price: 1650, Brand: "Berel"},
		{ID: "b", Name: "Beta", Category: domain.CategoryWaterproofing, Yield: 34, Price: 1450, Brand: "Comex"},
	}
	out := stripANSI(FormatCatalog(products, "b"))

	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "Beta") {
			assert.True(t, strings.HasPrefix(l, "●"), "current product marked: %q", l)
		}
		if strings.Contains(l, "Alpha") {
			assert.False(t, strings.HasPrefix(l, "●"))
		}
	}
	assert.Contains(t, out, "40 m²/bkt")
	assert.Contains(t, out, "$1,650.00")
}

func TestFormatCatalog_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatCatalog(nil, "")), "No products.")
}

func TestFormatProductSaved(t *testing.T) {
	p := domain.Product{ID: "custom-1", Name: "House Blend", Yield: 34, Price: 900}
	out := stripANSI(FormatProductSaved(p))
	assert.Contains(t, out, "Saved House Blend")
	assert.Contains(t, out, "custom-1")
	assert.Contains(t, out, "$900.00")
}

func TestRenderTable_RightAlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"Name", "Amount"}, [][]string{
		{"a", "$1.00"},
		{"b", "$1,000.00"},
	}, 1))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(lines[3]))
	assert.True(t, strings.HasSuffix(lines[2], "    $1.00"))
	assert.True(t, strings.HasSuffix(lines[3], "$1,000.00"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderShare(t *testing.T) {
	assert.Equal(t, "[██░░]  50%", stripANSI(RenderShare(1, 2, 4, StyleGreen)))
	assert.Equal(t, "[░░░░]   0%", stripANSI(RenderShare(5, 0, 4, StyleGreen)))
	assert.Equal(t, "[████] 100%", stripANSI(RenderShare(9, 3, 4, StyleGreen)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("Totals", "content here")
	assert.Contains(t, result, "TOTALS")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestHeader(t *testing.T) {
	out := stripANSI(Header("Breakdown"))
	assert.Equal(t, "BREAKDOWN\n─────────", out)
}
