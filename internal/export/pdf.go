package export

import (
	"fmt"
	"math"

	"github.com/alexanderramin/cotiza/internal/money"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfMuted   = &props.Color{Red: 110, Green: 110, Blue: 110}
	pdfWarning = &props.Color{Red: 190, Green: 30, Blue: 45}
	pdfAccent  = &props.Color{Red: 79, Green: 70, Blue: 229}
)

// GeneratePDF lays the quote out on A4 portrait pages and returns the PDF
// bytes.
func GeneratePDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   pdfMuted,
		}).
		Build()

	m := maroto.New(cfg)
	addPDFHeader(m, doc)
	addPDFTableHeader(m)
	for _, r := range doc.Rows {
		addPDFRow(m, r)
	}
	addPDFTotals(m, doc)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return out.GetBytes(), nil
}

func addPDFHeader(m core.Maroto, doc Document) {
	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(text.New(doc.Company, props.Text{
				Size:  15,
				Style: fontstyle.Bold,
				Color: pdfAccent,
			})),
			col.New(4).Add(text.New(doc.Reference, props.Text{
				Size:  9,
				Align: align.Right,
				Color: pdfMuted,
			})),
		),
		row.New(8).Add(
			col.New(8).Add(text.New(doc.Title, props.Text{Size: 11, Style: fontstyle.Bold})),
			col.New(4).Add(text.New(doc.IssuedAt.Format("2006-01-02"), props.Text{
				Size:  9,
				Align: align.Right,
				Color: pdfMuted,
			})),
		),
		row.New(6).Add(
			col.New(12).Add(text.New("Product: "+doc.Product, props.Text{Size: 9, Color: pdfMuted})),
		),
		row.New(4),
	)
}

func addPDFTableHeader(m core.Maroto) {
	head := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headLeft := head
	headLeft.Align = align.Left
	cell := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}

	m.AddRows(row.New(8).Add(
		col.New(1).Add(text.New("#", head)).WithStyle(cell),
		col.New(4).Add(text.New("Concept", headLeft)).WithStyle(cell),
		col.New(2).Add(text.New("Quantity", head)).WithStyle(cell),
		col.New(2).Add(text.New("Unit price", head)).WithStyle(cell),
		col.New(2).Add(text.New("Total", head)).WithStyle(cell),
		col.New(1).Add(text.New("Brand", head)).WithStyle(cell),
	))
}

func addPDFRow(m core.Maroto, r Row) {
	base := props.Text{Size: 8, Align: align.Center}
	if r.Warning {
		base.Color = pdfWarning
		base.Style = fontstyle.Bold
	}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right
	detail := props.Text{Size: 6, Top: 4, Color: pdfMuted}

	m.AddRows(row.New(10).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), base)),
		col.New(4).Add(text.New(r.Concept, left), text.New(r.Detail, detail)),
		col.New(2).Add(text.New(r.Quantity, base)),
		col.New(2).Add(text.New(money.Format(r.UnitPrice), right)),
		col.New(2).Add(text.New(money.Format(r.Total), right)),
		col.New(1).Add(text.New(r.Brand, base)),
	))
}

func addPDFTotals(m core.Maroto, doc Document) {
	m.AddRows(row.New(6))

	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	value := label
	cell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}

	lines := []struct {
		label string
		value float64
	}{
		{"Subtotal", doc.Subtotal},
		{fmt.Sprintf("IVA (%.0f%%)", taxPercent), doc.Tax},
		{"Total", doc.Total},
	}
	for _, l := range lines {
		m.AddRows(row.New(8).Add(
			col.New(9).Add(text.New(l.label, label)).WithStyle(cell),
			col.New(3).Add(text.New(money.Format(l.value), value)).WithStyle(cell),
		))
	}

	m.AddRows(
		row.New(6),
		row.New(6).Add(col.New(12).Add(text.New(fmt.Sprintf(
			"Materials %s · Labor and scaffold %s · Supervision %s",
			money.Format(doc.Summary.MaterialCost),
			money.Format(doc.Summary.LaborAndScaffold),
			money.Format(doc.Summary.ProfitTotal),
		), props.Text{Size: 7, Color: pdfMuted}))),
	)
}

// formatQty prints whole numbers without decimals and anything else with two.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
