// Package catalog resolves the effective product catalog: built-in entries
// merged with the session's custom products.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/cotiza/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// ErrEmpty is returned when a catalog holds no products at all.
var ErrEmpty = errors.New("catalog has no products")

type catalogFile struct {
	Products []domain.Product `yaml:"products"`
}

// LoadBuiltin parses the catalog embedded in the binary.
func LoadBuiltin() ([]domain.Product, error) {
	products, err := Parse(builtinYAML)
	if err != nil {
		return nil, fmt.Errorf("loading built-in catalog: %w", err)
	}
	return products, nil
}

// LoadFile parses a catalog YAML file with the same layout as the built-in one.
func LoadFile(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	products, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return products, nil
}

// Parse decodes and validates a catalog document. Every product must pass
// validation and ids must be unique.
func Parse(data []byte) ([]domain.Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, ErrEmpty
	}

	seen := make(map[string]bool, len(f.Products))
	for i, p := range f.Products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("product %d (%s): %w", i, p.ID, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return f.Products, nil
}

// LoadDrafts parses a YAML sequence of product drafts, the input format for
// bulk-adding custom products.
func LoadDrafts(path string) ([]domain.ProductDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading products %s: %w", path, err)
	}
	var drafts []domain.ProductDraft
	if err := yaml.Unmarshal(data, &drafts); err != nil {
		return nil, fmt.Errorf("decoding products %s: %w", path, err)
	}
	return drafts, nil
}
