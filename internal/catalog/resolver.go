package catalog

import "github.com/alexanderramin/cotiza/internal/domain"

// Merge builds the effective catalog: built-in products whose id is not
// taken by a custom product, followed by every custom product. A custom
// product therefore replaces a same-id built-in instead of duplicating it.
func Merge(builtin, custom []domain.Product) []domain.Product {
	customIDs := make(map[string]bool, len(custom))
	for _, p := range custom {
		customIDs[p.ID] = true
	}

	out := make([]domain.Product, 0, len(builtin)+len(custom))
	for _, p := range builtin {
		if !customIDs[p.ID] {
			out = append(out, p)
		}
	}
	return append(out, custom...)
}

// Current returns the product with the given id, or the first catalog entry
// when there is no match. ok is false only for an empty catalog.
func Current(products []domain.Product, id string) (domain.Product, bool) {
	if p, found := Find(products, id); found {
		return p, true
	}
	if len(products) == 0 {
		return domain.Product{}, false
	}
	return products[0], true
}

// Find looks up a product by exact id.
func Find(products []domain.Product, id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ByCategory returns the products of category in catalog order.
func ByCategory(products []domain.Product, category domain.Category) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// RepairSelection keeps selectedID when it belongs to category, otherwise
// picks the category's first product. With no products in the category the
// selection is left unchanged.
func RepairSelection(products []domain.Product, category domain.Category, selectedID string) string {
	filtered := ByCategory(products, category)
	if len(filtered) == 0 {
		return selectedID
	}
	if _, ok := Find(filtered, selectedID); ok {
		return selectedID
	}
	return filtered[0].ID
}
