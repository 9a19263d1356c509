package domain

import (
	"fmt"
	"maps"
	"math"
)

// DefaultProductID is the built-in product selected by InitialConfig.
const DefaultProductID = "wp-acrylic-5y"

// areaPerWorkDay is the surface one crew covers in a day when work days are
// derived from the project area.
const areaPerWorkDay = 33.3

// MaterialConfig defines the material bound to a role, such as the sealer.
type MaterialConfig struct {
	Name  string  `yaml:"name" json:"name" validate:"required"`
	Yield float64 `yaml:"yield" json:"yield" validate:"amount,gt=0"`
	Price float64 `yaml:"price" json:"price" validate:"amount,gte=0"`
	Brand string  `yaml:"brand" json:"brand"`
}

// YieldDisplay renders the coverage as shown on quote rows.
func (m MaterialConfig) YieldDisplay() string {
	return formatYield(m.Yield)
}

// ProjectConfig is the full set of user choices a quote is derived from.
// Treat values as immutable snapshots: mutate a Clone, never a shared copy.
type ProjectConfig struct {
	Area                 float64                         `json:"area" validate:"amount,gte=0"`
	SelectedCategory     Category                        `json:"selected_category" validate:"required,oneof=Waterproofing Paint Sealer"`
	SelectedProductID    string                          `json:"selected_product_id"`
	AuxMaterialTotal     float64                         `json:"aux_material_total" validate:"amount,gte=0"`
	ProfitRate           float64                         `json:"profit_rate" validate:"amount,gte=0"`
	Materials            map[MaterialRole]MaterialConfig `json:"materials" validate:"dive"`
	NumWorkers           int                             `json:"num_workers" validate:"gte=0"`
	WorkerDailyRate      float64                         `json:"worker_daily_rate" validate:"amount,gte=0"`
	WorkDays             int                             `json:"work_days" validate:"gte=0"`
	ScaffoldCount        int                             `json:"scaffold_count" validate:"gte=0"`
	ScaffoldDailyRate    float64                         `json:"scaffold_daily_rate" validate:"amount,gte=0"`
	ScaffoldDays         int                             `json:"scaffold_days" validate:"gte=0"`
	MasonryRepairEnabled bool                            `json:"masonry_repair_enabled"`
	MasonryRepairCost    float64                         `json:"masonry_repair_cost" validate:"amount,gte=0"`
	ExtraBuckets         int                             `json:"extra_buckets"`
	ExtraSealerBuckets   int                             `json:"extra_sealer_buckets"`
}

// InitialConfig returns the configuration every session starts from and
// returns to on reset.
func InitialConfig() ProjectConfig {
	const area = 100
	return ProjectConfig{
		Area:              area,
		SelectedCategory:  CategoryWaterproofing,
		SelectedProductID: DefaultProductID,
		AuxMaterialTotal:  1500,
		ProfitRate:        25,
		Materials: map[MaterialRole]MaterialConfig{
			RoleSealer: {Name: "Primary Sealer 5x1", Yield: 40, Price: 780, Brand: "Comex"},
		},
		NumWorkers:           2,
		WorkerDailyRate:      700,
		WorkDays:             WorkDaysForArea(area),
		ScaffoldDailyRate:    250,
		ScaffoldDays:         5,
		MasonryRepairEnabled: false,
	}
}

// WorkDaysForArea estimates the crew days needed for area square meters.
// It never returns less than one day.
func WorkDaysForArea(area float64) int {
	if area <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(area/areaPerWorkDay)))
}

// Clone returns a deep copy; the materials map is not shared.
func (c ProjectConfig) Clone() ProjectConfig {
	out := c
	out.Materials = maps.Clone(c.Materials)
	return out
}

// Sealer returns the material bound to the sealer role.
func (c ProjectConfig) Sealer() (MaterialConfig, bool) {
	m, ok := c.Materials[RoleSealer]
	return m, ok
}

// Validate checks ranges on every field and that a usable sealer is defined.
func (c ProjectConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return validationError(ErrInvalidConfig, err)
	}
	if _, ok := c.Sealer(); !ok {
		return fmt.Errorf("%w: no %s material defined", ErrInvalidConfig, RoleSealer)
	}
	return nil
}
