package export

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/alexanderramin/cotiza/internal/contract"
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var issuedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func testSnapshot(t *testing.T, masonry bool) *contract.QuoteSnapshot {
	t.Helper()
	cfg := domain.InitialConfig()
	cfg.MasonryRepairEnabled = masonry
	cfg.MasonryRepairCost = 2000
	p := domain.Product{ID: "wp", Name: "Acrylic 5Y", Category: domain.CategoryWaterproofing, Yield: 34, Price: 1450, Brand: "Comex"}

	result, err := quote.Derive(cfg, p)
	require.NoError(t, err)
	return &contract.QuoteSnapshot{
		Config:  cfg,
		Catalog: []domain.Product{p},
		Current: p,
		Result:  result,
		Summary: quote.Summarize(cfg, result),
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(testSnapshot(t, true), "Impermeabilizantes SA", issuedAt)

	assert.Equal(t, "Waterproofing quote - 100 m²", doc.Title)
	assert.Equal(t, "COT-20260314-0930", doc.Reference)
	assert.Equal(t, "Acrylic 5Y (Comex)", doc.Product)
	require.Len(t, doc.Rows, 7)
	assert.Equal(t, 1, doc.Rows[0].Index)
	assert.Equal(t, "3 bkt", doc.Rows[0].Quantity)
	assert.True(t, doc.Rows[5].Warning)
	assert.Equal(t, "Service", doc.Rows[5].Quantity)
	assert.Equal(t, "cot-20260314-0930.pdf", doc.FileName(FormatPDF))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("docx")
	assert.Error(t, err)
}

func TestGeneratePDF(t *testing.T) {
	doc := NewDocument(testSnapshot(t, true), "Impermeabilizantes SA", issuedAt)

	out, err := GeneratePDF(doc)
	require.NoError(t, err)
	require.Greater(t, len(out), 5)
	assert.Equal(t, "%PDF-", string(out[:5]))
}

func TestGeneratePDF_NoRows(t *testing.T) {
	out, err := GeneratePDF(Document{Title: "Empty", Company: "X", IssuedAt: issuedAt})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateExcel(t *testing.T) {
	doc := NewDocument(testSnapshot(t, false), "Impermeabilizantes SA", issuedAt)

	out, err := Generate(doc, FormatXLSX)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	company, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Impermeabilizantes SA", company)

	concept, err := f.GetCellValue(sheetName, "B6")
	require.NoError(t, err)
	assert.Equal(t, "Waterproofing", concept)

	qty, err := f.GetCellValue(sheetName, "D6")
	require.NoError(t, err)
	assert.Equal(t, "3 bkt", qty)

	// Six rows (6..11), a blank line, then subtotal, IVA and total.
	label, err := f.GetCellValue(sheetName, "E15")
	require.NoError(t, err)
	assert.Equal(t, "Total", label)

	raw, err := f.GetCellValue(sheetName, "F15", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	total, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err)
	assert.InDelta(t, doc.Total, total, 1e-6)

	iva, err := f.GetCellValue(sheetName, "E14")
	require.NoError(t, err)
	assert.Equal(t, "IVA (16%)", iva)
}

func TestSanitizeExcelCell(t *testing.T) {
	assert.Equal(t, "'=SUM(A1)", sanitizeExcelCell("=SUM(A1)"))
	assert.Equal(t, "'-5", sanitizeExcelCell("-5"))
	assert.Equal(t, "Global", sanitizeExcelCell("Global"))
	assert.Equal(t, "", sanitizeExcelCell(""))
}

func TestFormatQty(t *testing.T) {
	assert.Equal(t, "100", formatQty(100))
	assert.Equal(t, "12.50", formatQty(12.5))
}
