package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cotiza/internal/contract"
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/money"
	"github.com/alexanderramin/cotiza/internal/quote"
)

const detailWidth = 38

// FormatQuote renders the full quote view: heading, line items, totals and
// the cost breakdown.
func FormatQuote(snap *contract.QuoteSnapshot) string {
	var b strings.Builder
	b.WriteString(FormatQuoteHeading(snap))
	b.WriteString("\n\n")
	b.WriteString(FormatQuoteItems(snap.Result.Items))
	b.WriteString("\n")
	b.WriteString(FormatTotals(snap.Result))
	b.WriteString("\n")
	b.WriteString(FormatSummary(snap.Summary, snap.Result.Subtotal))
	return b.String()
}

// FormatQuoteHeading renders the one-line description of what is being quoted.
func FormatQuoteHeading(snap *contract.QuoteSnapshot) string {
	parts := []string{
		CategoryBadge(snap.Config.SelectedCategory),
		Bold(snap.Current.Name),
	}
	if snap.Current.Brand != "" {
		parts = append(parts, Dim(snap.Current.Brand))
	}
	parts = append(parts, StyleFg.Render(formatNumber(snap.Config.Area)+" m²"))
	return strings.Join(parts, Dim(" · "))
}

// FormatQuoteItems renders the line items as a table. Adjustable rows are
// marked "±" and warning rows are highlighted in red.
func FormatQuoteItems(items []domain.QuoteItem) string {
	headers := []string{" ", "Concept", "Detail", "Quantity", "Unit price", "Total", "Brand", "Yield"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		marker, concept, total := " ", it.Concept, money.Format(it.Total)
		switch {
		case it.Warning:
			marker = StyleRed.Render("!")
			concept = StyleRed.Render(concept)
			total = StyleRed.Render(total)
		case it.Adjustable:
			marker = StyleBlue.Render("±")
		}
		rows = append(rows, []string{
			marker,
			concept,
			Dim(Truncate(it.Detail, detailWidth)),
			it.Quantity.String(),
			money.Format(it.UnitPrice),
			total,
			it.Brand,
			Dim(it.YieldDisplay),
		})
	}
	return RenderTable(headers, rows, 4, 5)
}

// FormatTotals renders subtotal, IVA and grand total in a box.
func FormatTotals(r domain.QuoteResult) string {
	lines := [][2]string{
		{"Subtotal", money.Format(r.Subtotal)},
		{fmt.Sprintf("IVA %.0f%%", quote.TaxRate*100), money.Format(r.Tax)},
		{"Total", money.Format(r.Total)},
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l[1]))
	}

	var b strings.Builder
	for i, l := range lines {
		value := fmt.Sprintf("%*s", width, l[1])
		label := fmt.Sprintf("%-10s", l[0])
		if i == len(lines)-1 {
			b.WriteString(StyleHeader.Render(label) + StyleBold.Render(value))
			break
		}
		b.WriteString(Dim(label) + StyleFg.Render(value) + "\n")
	}
	return RenderBox("Totals", b.String())
}

// FormatSummary renders how the subtotal splits into materials, labor and
// scaffold, supervision and masonry.
func FormatSummary(s quote.Summary, subtotal float64) string {
	type line struct {
		label string
		value float64
		share string
	}
	lines := []line{
		{"Materials", s.MaterialCost, RenderShare(s.MaterialCost, subtotal, 16, StyleBlue)},
		{"Labor + scaffold", s.LaborAndScaffold, RenderShare(s.LaborAndScaffold, subtotal, 16, StyleGreen)},
		{"Supervision", s.ProfitTotal, RenderShare(s.ProfitTotal, subtotal, 16, StylePurple)},
	}
	if s.MasonryTotal > 0 {
		lines = append(lines, line{"Masonry", s.MasonryTotal, RenderShare(s.MasonryTotal, subtotal, 16, StyleRed)})
	}

	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{l.label, money.Format(l.value), l.share})
	}
	return Header("Breakdown") + "\n" + RenderTable([]string{"Part", "Amount", "Share"}, rows, 1)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
