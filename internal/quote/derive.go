// Package quote derives an itemized quote from a project configuration and
// the product currently selected for it.
package quote

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/alexanderramin/cotiza/internal/domain"
)

// TaxRate is the IVA rate applied to every quote subtotal.
const TaxRate = 0.16

// ErrInvalidYield is returned when a material's coverage cannot be divided by.
var ErrInvalidYield = errors.New("material yield must be positive")

const (
	unitBucket   = "bkt"
	unitUnitDay  = "unit-days"
	unitLaborDay = "labor-days"
	unitArea     = "m²"
)

// MaxContainers caps a container count. Every count up to it is exact in
// float64, so row totals stay precise.
const MaxContainers = 1 << 53

// ContainerCount returns how many containers cover area at the given yield,
// shifted by adjustment and clamped to [0, MaxContainers].
func ContainerCount(area, yield float64, adjustment int) int {
	n := math.Ceil(area/yield) + float64(adjustment)
	switch {
	case math.IsNaN(n) || n <= 0:
		return 0
	case n >= MaxContainers:
		return MaxContainers
	}
	return int(n)
}

// Derive builds the full quote. Rows always come out in the same order:
// primary material, sealer, auxiliary materials, scaffold, labor, masonry
// (only when enabled) and supervision.
func Derive(cfg domain.ProjectConfig, current domain.Product) (domain.QuoteResult, error) {
	sealer, ok := cfg.Sealer()
	if !ok {
		return domain.QuoteResult{}, fmt.Errorf("deriving quote: %w: no %s material defined", domain.ErrInvalidConfig, domain.RoleSealer)
	}
	if current.Yield <= 0 {
		return domain.QuoteResult{}, fmt.Errorf("deriving quote: product %s: %w", current.ID, ErrInvalidYield)
	}
	if sealer.Yield <= 0 {
		return domain.QuoteResult{}, fmt.Errorf("deriving quote: sealer %s: %w", sealer.Name, ErrInvalidYield)
	}

	items := []domain.QuoteItem{
		primaryRow(cfg, current),
		sealerRow(cfg, sealer),
		auxiliaryRow(cfg),
		scaffoldRow(cfg),
		laborRow(cfg),
	}
	if cfg.MasonryRepairEnabled {
		items = append(items, masonryRow(cfg))
	}
	items = append(items, supervisionRow(cfg))

	return Total(items), nil
}

// Total folds rows into a result: subtotal, tax and grand total.
func Total(items []domain.QuoteItem) domain.QuoteResult {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Total
	}
	tax := subtotal * TaxRate
	return domain.QuoteResult{
		Items:    items,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

func primaryRow(cfg domain.ProjectConfig, p domain.Product) domain.QuoteItem {
	n := float64(ContainerCount(cfg.Area, p.Yield, cfg.ExtraBuckets))
	return domain.QuoteItem{
		Kind:         domain.RowPrimary,
		Concept:      string(cfg.SelectedCategory),
		Detail:       fmt.Sprintf("%s - coverage for %s m²", p.Name, formatNumber(cfg.Area)),
		Quantity:     domain.CountOf(n, unitBucket),
		UnitPrice:    p.Price,
		Total:        n * p.Price,
		Brand:        p.Brand,
		YieldDisplay: p.YieldDisplay(),
		Adjustable:   domain.RowPrimary.Adjustable(),
	}
}

func sealerRow(cfg domain.ProjectConfig, m domain.MaterialConfig) domain.QuoteItem {
	n := float64(ContainerCount(cfg.Area, m.Yield, cfg.ExtraSealerBuckets))
	return domain.QuoteItem{
		Kind:         domain.RowSealer,
		Concept:      "Primary Sealer",
		Detail:       "Mandatory adhesion base coat",
		Quantity:     domain.CountOf(n, unitBucket),
		UnitPrice:    m.Price,
		Total:        n * m.Price,
		Brand:        m.Brand,
		YieldDisplay: m.YieldDisplay(),
		Adjustable:   domain.RowSealer.Adjustable(),
	}
}

func auxiliaryRow(cfg domain.ProjectConfig) domain.QuoteItem {
	return domain.QuoteItem{
		Kind:         domain.RowAuxiliary,
		Concept:      "Auxiliary Materials",
		Detail:       "Rollers, brushes, tape and masking",
		Quantity:     domain.LabelOf("Global"),
		UnitPrice:    cfg.AuxMaterialTotal,
		Total:        cfg.AuxMaterialTotal,
		Brand:        "Various",
		YieldDisplay: "N/A",
	}
}

func scaffoldRow(cfg domain.ProjectConfig) domain.QuoteItem {
	item := domain.QuoteItem{
		Kind:         domain.RowScaffold,
		Concept:      "Scaffold Rental",
		Detail:       "Certified towers for work at height",
		Quantity:     domain.CountOf(0, unitUnitDay),
		UnitPrice:    cfg.ScaffoldDailyRate,
		Brand:        "NO",
		YieldDisplay: "0 d",
	}
	if cfg.ScaffoldCount > 0 {
		n := float64(cfg.ScaffoldCount) * float64(cfg.ScaffoldDays)
		item.Quantity = domain.CountOf(n, unitUnitDay)
		item.Total = n * cfg.ScaffoldDailyRate
		item.Brand = "YES"
		item.YieldDisplay = fmt.Sprintf("%d units x %d days", cfg.ScaffoldCount, cfg.ScaffoldDays)
	}
	return item
}

func laborRow(cfg domain.ProjectConfig) domain.QuoteItem {
	n := float64(cfg.NumWorkers) * float64(cfg.WorkDays)
	return domain.QuoteItem{
		Kind:         domain.RowLabor,
		Concept:      "Specialized Labor",
		Detail:       "Technical application work",
		Quantity:     domain.CountOf(n, unitLaborDay),
		UnitPrice:    cfg.WorkerDailyRate,
		Total:        n * cfg.WorkerDailyRate,
		Brand:        fmt.Sprintf("%d workers", cfg.NumWorkers),
		YieldDisplay: fmt.Sprintf("%d days", cfg.WorkDays),
	}
}

func masonryRow(cfg domain.ProjectConfig) domain.QuoteItem {
	return domain.QuoteItem{
		Kind:         domain.RowMasonry,
		Concept:      "Masonry Repairs",
		Detail:       "STRUCTURAL DAMAGE: repair of broken walls and patching",
		Quantity:     domain.LabelOf("Service"),
		UnitPrice:    cfg.MasonryRepairCost,
		Total:        cfg.MasonryRepairCost,
		Brand:        "URGENT",
		YieldDisplay: "Pre-work",
		Warning:      true,
	}
}

func supervisionRow(cfg domain.ProjectConfig) domain.QuoteItem {
	return domain.QuoteItem{
		Kind:         domain.RowSupervision,
		Concept:      "Supervision & Administration",
		Detail:       "Technical direction and site management",
		Quantity:     domain.CountOf(cfg.Area, unitArea),
		UnitPrice:    cfg.ProfitRate,
		Total:        cfg.Area * cfg.ProfitRate,
		Brand:        "Engineering",
		YieldDisplay: "N/A",
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
