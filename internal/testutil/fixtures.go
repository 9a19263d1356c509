package testutil

import (
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/google/uuid"
)

// ProductOption customizes a fixture product.
type ProductOption func(*domain.Product)

func WithProductID(id string) ProductOption {
	return func(p *domain.Product) {
		p.ID = id
	}
}

func WithCategory(c domain.Category) ProductOption {
	return func(p *domain.Product) {
		p.Category = c
	}
}

func WithPrice(price float64) ProductOption {
	return func(p *domain.Product) {
		p.Price = price
	}
}

func WithYield(yield float64) ProductOption {
	return func(p *domain.Product) {
		p.Yield = yield
	}
}

func WithBrand(brand string) ProductOption {
	return func(p *domain.Product) {
		p.Brand = brand
	}
}

// NewTestProduct returns a valid waterproofing product with a fresh custom id.
func NewTestProduct(name string, opts ...ProductOption) domain.Product {
	p := domain.Product{
		ID:       "custom-" + uuid.NewString(),
		Name:     name,
		Category: domain.CategoryWaterproofing,
		Yield:    domain.DefaultYield,
		Price:    1000,
		Brand:    "Test Brand",
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// DraftOption customizes a fixture draft.
type DraftOption func(*domain.ProductDraft)

func WithDraftPrice(price string) DraftOption {
	return func(d *domain.ProductDraft) {
		d.Price = price
	}
}

func WithDraftYield(yield string) DraftOption {
	return func(d *domain.ProductDraft) {
		d.Yield = yield
	}
}

func WithDraftBrand(brand string) DraftOption {
	return func(d *domain.ProductDraft) {
		d.Brand = brand
	}
}

// NewTestDraft returns form input that builds into a valid product.
func NewTestDraft(name string, opts ...DraftOption) domain.ProductDraft {
	d := domain.ProductDraft{
		Name:  name,
		Brand: "Test Brand",
		Price: "1200",
		Yield: "30",
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
