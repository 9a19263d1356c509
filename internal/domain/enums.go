package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryWaterproofing Category = "Waterproofing"
	CategoryPaint         Category = "Paint"
	CategorySealer        Category = "Sealer"
)

// SelectableCategories are the categories offered as the primary material
// of a quote. Sealer products exist in the catalog but the sealer row is
// driven by the material configuration instead.
var SelectableCategories = []Category{CategoryWaterproofing, CategoryPaint}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[Category]bool{
	CategoryWaterproofing: true,
	CategoryPaint:         true,
	CategorySealer:        true,
}

// ParseCategory matches s against the known categories, ignoring case.
func ParseCategory(s string) (Category, error) {
	for _, c := range []Category{CategoryWaterproofing, CategoryPaint, CategorySealer} {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q (want Waterproofing, Paint or Sealer)", ErrInvalidConfig, s)
}

// NextSelectableCategory returns the category after c in SelectableCategories,
// wrapping around. Unknown categories map to the first selectable one.
func NextSelectableCategory(c Category) Category {
	for i, sc := range SelectableCategories {
		if sc == c {
			return SelectableCategories[(i+1)%len(SelectableCategories)]
		}
	}
	return SelectableCategories[0]
}

type MaterialRole string

const (
	RoleSealer MaterialRole = "Sealer"
)

// RowKind tags each quote row with what it prices.
type RowKind string

const (
	RowPrimary     RowKind = "primary"
	RowSealer      RowKind = "sealer"
	RowAuxiliary   RowKind = "auxiliary"
	RowScaffold    RowKind = "scaffold"
	RowLabor       RowKind = "labor"
	RowMasonry     RowKind = "masonry"
	RowSupervision RowKind = "supervision"
)

// Adjustable reports whether rows of this kind carry a container count the
// user can nudge up or down.
func (k RowKind) Adjustable() bool {
	return k == RowPrimary || k == RowSealer
}

