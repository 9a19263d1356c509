// Package export renders a quote snapshot as a printable PDF or an XLSX
// workbook.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cotiza/internal/contract"
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/quote"
)

const taxPercent = quote.TaxRate * 100

// Format selects the output encoding.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "pdf" or "xlsx" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want pdf or xlsx)", s)
	}
}

// Row is one printable quote line.
type Row struct {
	Index     int
	Concept   string
	Detail    string
	Quantity  string
	UnitPrice float64
	Total     float64
	Brand     string
	Yield     string
	Warning   bool
}

// Document is the export-ready view of a quote.
type Document struct {
	Title     string
	Company   string
	Reference string
	IssuedAt  time.Time
	Area      float64
	Product   string
	Rows      []Row
	Subtotal  float64
	Tax       float64
	Total     float64
	Summary   quote.Summary
}

// NewDocument flattens snap into a Document issued by company at issuedAt.
func NewDocument(snap *contract.QuoteSnapshot, company string, issuedAt time.Time) Document {
	doc := Document{
		Title:     fmt.Sprintf("%s quote - %s m²", snap.Config.SelectedCategory, formatQty(snap.Config.Area)),
		Company:   company,
		Reference: "COT-" + issuedAt.Format("20060102-1504"),
		IssuedAt:  issuedAt,
		Area:      snap.Config.Area,
		Product:   productLine(snap.Current),
		Subtotal:  snap.Result.Subtotal,
		Tax:       snap.Result.Tax,
		Total:     snap.Result.Total,
		Summary:   snap.Summary,
	}
	for i, it := range snap.Result.Items {
		doc.Rows = append(doc.Rows, Row{
			Index:     i + 1,
			Concept:   it.Concept,
			Detail:    it.Detail,
			Quantity:  it.Quantity.String(),
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
			Brand:     it.Brand,
			Yield:     it.YieldDisplay,
			Warning:   it.Warning,
		})
	}
	return doc
}

// FileName suggests a file name for doc in the given format.
func (d Document) FileName(f Format) string {
	return strings.ToLower(d.Reference) + "." + string(f)
}

// Generate encodes doc in format f.
func Generate(doc Document, f Format) ([]byte, error) {
	switch f {
	case FormatPDF:
		return GeneratePDF(doc)
	case FormatXLSX:
		return GenerateExcel(doc)
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
}

func productLine(p domain.Product) string {
	if p.Brand == "" {
		return p.Name
	}
	return p.Name + " (" + p.Brand + ")"
}
