package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Quote"

// excelHeaderRow is the 1-based row holding column titles; quote rows
// follow it directly.
const excelHeaderRow = 5

var excelColumns = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// GenerateExcel writes the quote to a single-sheet workbook. Prices and
// totals are stored as numbers with a currency format so the sheet can be
// recalculated.
func GenerateExcel(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	lastCol := excelColumns[len(excelColumns)-1]
	widths := []float64{5, 30, 44, 14, 14, 14, 14, 16}
	for i, c := range excelColumns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	header := []struct {
		cell  string
		value string
		style int
	}{
		{"A1", doc.Company, styles.title},
		{"A2", doc.Title, styles.subtitle},
		{"A3", fmt.Sprintf("Ref: %s · %s · %s", doc.Reference, doc.IssuedAt.Format("2006-01-02"), doc.Product), styles.subtitle},
	}
	for i, h := range header {
		end := fmt.Sprintf("%s%d", lastCol, i+1)
		if err := f.MergeCell(sheetName, h.cell, end); err != nil {
			return nil, fmt.Errorf("merge %s: %w", h.cell, err)
		}
		f.SetCellValue(sheetName, h.cell, sanitizeExcelCell(h.value))
		f.SetCellStyle(sheetName, h.cell, end, h.style)
	}

	titles := []string{"#", "Concept", "Detail", "Quantity", "Unit price", "Total", "Brand", "Yield"}
	for i, t := range titles {
		f.SetCellValue(sheetName, fmt.Sprintf("%s%d", excelColumns[i], excelHeaderRow), t)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", excelHeaderRow), fmt.Sprintf("%s%d", lastCol, excelHeaderRow), styles.header)

	line := excelHeaderRow + 1
	for _, r := range doc.Rows {
		n := fmt.Sprint(line)
		f.SetCellValue(sheetName, "A"+n, r.Index)
		f.SetCellValue(sheetName, "B"+n, sanitizeExcelCell(r.Concept))
		f.SetCellValue(sheetName, "C"+n, sanitizeExcelCell(r.Detail))
		f.SetCellValue(sheetName, "D"+n, sanitizeExcelCell(r.Quantity))
		f.SetCellValue(sheetName, "E"+n, r.UnitPrice)
		f.SetCellValue(sheetName, "F"+n, r.Total)
		f.SetCellValue(sheetName, "G"+n, sanitizeExcelCell(r.Brand))
		f.SetCellValue(sheetName, "H"+n, sanitizeExcelCell(r.Yield))

		textStyle, moneyStyle := styles.item, styles.itemMoney
		if r.Warning {
			textStyle, moneyStyle = styles.warning, styles.warningMoney
		}
		f.SetCellStyle(sheetName, "A"+n, "D"+n, textStyle)
		f.SetCellStyle(sheetName, "E"+n, "F"+n, moneyStyle)
		f.SetCellStyle(sheetName, "G"+n, lastCol+n, textStyle)
		line++
	}

	line++
	totals := []struct {
		label string
		value float64
	}{
		{"Subtotal", doc.Subtotal},
		{fmt.Sprintf("IVA (%.0f%%)", taxPercent), doc.Tax},
		{"Total", doc.Total},
	}
	for _, t := range totals {
		n := fmt.Sprint(line)
		f.SetCellValue(sheetName, "E"+n, t.label)
		f.SetCellStyle(sheetName, "E"+n, "E"+n, styles.summaryLabel)
		f.SetCellValue(sheetName, "F"+n, t.value)
		f.SetCellStyle(sheetName, "F"+n, "F"+n, styles.summaryValue)
		line++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type excelStyles struct {
	title, subtitle, header    int
	item, itemMoney            int
	warning, warningMoney      int
	summaryLabel, summaryValue int
}

// numFmtMoney is the built-in "#,##0.00" number format.
const numFmtMoney = 4

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	defs := []struct {
		dst   *int
		name  string
		style *excelize.Style
	}{
		{&s.title, "title", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}},
		{&s.subtitle, "subtitle", &excelize.Style{Font: &excelize.Font{Size: 11, Color: "#555555"}}},
		{&s.header, "header", &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{&s.item, "item", &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{&s.itemMoney, "item money", &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders(), NumFmt: numFmtMoney}},
		{&s.warning, "warning", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 10, Color: "#BE1E2D"}, Border: thinBorders()}},
		{&s.warningMoney, "warning money", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 10, Color: "#BE1E2D"}, Border: thinBorders(), NumFmt: numFmtMoney}},
		{&s.summaryLabel, "summary label", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, Alignment: &excelize.Alignment{Horizontal: "right"}}},
		{&s.summaryValue, "summary value", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, NumFmt: numFmtMoney}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return excelStyles{}, fmt.Errorf("create %s style: %w", d.name, err)
		}
		*d.dst = id
	}
	return s, nil
}

// sanitizeExcelCell prefixes values Excel would otherwise read as a formula.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
