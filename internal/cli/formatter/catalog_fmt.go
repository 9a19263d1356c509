package formatter

import (
	"fmt"

	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/money"
)

// FormatCatalog lists products in catalog order. The product with
// currentID is marked with "●".
func FormatCatalog(products []domain.Product, currentID string) string {
	if len(products) == 0 {
		return Dim("No products.") + "\n"
	}
	headers := []string{" ", "ID", "Name", "Category", "Brand", "Yield", "Price"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		marker := " "
		if p.ID == currentID {
			marker = StyleGreen.Render("●")
		}
		rows = append(rows, []string{
			marker,
			Dim(p.ID),
			p.Name,
			CategoryStyle(p.Category).Render(string(p.Category)),
			p.Brand,
			p.YieldDisplay(),
			money.Format(p.Price),
		})
	}
	return RenderTable(headers, rows, 6)
}

// FormatProductSaved confirms a saved product in one line.
func FormatProductSaved(p domain.Product) string {
	return fmt.Sprintf("%s %s %s",
		StyleGreen.Render("✔ Saved"),
		Bold(p.Name),
		Dim(fmt.Sprintf("(%s · %s · %s)", p.ID, p.YieldDisplay(), money.Format(p.Price))),
	)
}
