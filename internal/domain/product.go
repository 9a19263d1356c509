package domain

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultYield is the coverage (m² per container) assumed when a product
// draft carries no usable yield.
const DefaultYield = 34.0

// DefaultCustomBrand labels custom products saved without a brand.
const DefaultCustomBrand = "Custom"

// Product is one catalog entry, built-in or user-defined.
type Product struct {
	ID       string   `yaml:"id" json:"id" validate:"required"`
	Name     string   `yaml:"name" json:"name" validate:"required"`
	Category Category `yaml:"category" json:"category" validate:"required,oneof=Waterproofing Paint Sealer"`
	Yield    float64  `yaml:"yield" json:"yield" validate:"amount,gt=0"`
	Price    float64  `yaml:"price" json:"price" validate:"amount,gte=0"`
	Brand    string   `yaml:"brand" json:"brand"`
}

// Validate checks the product definition. A non-positive yield is always
// rejected so container math never divides by it.
func (p Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		return validationError(ErrInvalidProduct, err)
	}
	return nil
}

// YieldDisplay renders the coverage as shown on quote rows, e.g. "34 m²/bkt".
func (p Product) YieldDisplay() string {
	return formatYield(p.Yield)
}

// ProductDraft is the raw, user-typed input for creating or correcting a
// product. Numbers are kept as text so Build can apply the input rules.
type ProductDraft struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Brand string `yaml:"brand"`
	Price string `yaml:"price"`
	Yield string `yaml:"yield"`
}

// DraftFromProduct pre-fills a draft with p's current values.
func DraftFromProduct(p Product) ProductDraft {
	return ProductDraft{
		ID:    p.ID,
		Name:  p.Name,
		Brand: p.Brand,
		Price: strconv.FormatFloat(p.Price, 'f', -1, 64),
		Yield: strconv.FormatFloat(p.Yield, 'f', -1, 64),
	}
}

// Build turns the draft into a product with the given id and category.
//
// Name and a positive price are mandatory. A blank, non-numeric or
// non-positive yield falls back to DefaultYield instead of failing.
func (d ProductDraft) Build(id string, category Category) (Product, error) {
	name := strings.TrimSpace(d.Name)
	price, err := parseAmount(d.Price)
	if name == "" || err != nil || price <= 0 {
		return Product{}, fmt.Errorf("%w: name and a positive price are required", ErrInvalidProduct)
	}

	yield, err := parseAmount(d.Yield)
	if err != nil || yield <= 0 {
		yield = DefaultYield
	}

	p := Product{
		ID:       id,
		Name:     name,
		Category: category,
		Yield:    yield,
		Price:    price,
		Brand:    cmp.Or(strings.TrimSpace(d.Brand), DefaultCustomBrand),
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}

func formatYield(y float64) string {
	return strconv.FormatFloat(y, 'f', -1, 64) + " m²/bkt"
}
