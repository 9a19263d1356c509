package service

import (
	"fmt"

	"github.com/alexanderramin/cotiza/internal/catalog"
	"github.com/alexanderramin/cotiza/internal/domain"
)

// selectCategory switches the category, repairs the product selection and
// clears both adjustment counters.
func selectCategory(cfg *domain.ProjectConfig, products []domain.Product, category domain.Category) error {
	if !domain.ValidCategories[category] {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidConfig, category)
	}
	cfg.SelectedCategory = category
	cfg.SelectedProductID = catalog.RepairSelection(products, category, cfg.SelectedProductID)
	cfg.ExtraBuckets = 0
	cfg.ExtraSealerBuckets = 0
	return nil
}

// selectProduct switches the product and clears the primary adjustment.
// A product from another category brings its category along, which in
// turn clears the sealer adjustment too.
func selectProduct(cfg *domain.ProjectConfig, products []domain.Product, productID string) error {
	p, ok := catalog.Find(products, productID)
	if !ok {
		return fmt.Errorf("%w: unknown product %q", domain.ErrInvalidConfig, productID)
	}
	if p.Category != cfg.SelectedCategory {
		cfg.SelectedCategory = p.Category
		cfg.ExtraSealerBuckets = 0
	}
	cfg.SelectedProductID = p.ID
	cfg.ExtraBuckets = 0
	return nil
}
