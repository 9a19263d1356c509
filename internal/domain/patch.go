package domain

// ConfigPatch is a partial configuration update. Nil fields are left alone.
// Category and Product are resolved by the session, which owns the catalog.
type ConfigPatch struct {
	Area               *float64 `yaml:"area"`
	Category           *string  `yaml:"category"`
	ProductID          *string  `yaml:"product"`
	AuxMaterialTotal   *float64 `yaml:"aux_material_total"`
	ProfitRate         *float64 `yaml:"profit_rate"`
	NumWorkers         *int     `yaml:"workers"`
	WorkerDailyRate    *float64 `yaml:"worker_daily_rate"`
	WorkDays           *int     `yaml:"work_days"`
	ScaffoldCount      *int     `yaml:"scaffolds"`
	ScaffoldDailyRate  *float64 `yaml:"scaffold_daily_rate"`
	ScaffoldDays       *int     `yaml:"scaffold_days"`
	MasonryRepair      *bool    `yaml:"masonry_repair"`
	MasonryRepairCost  *float64 `yaml:"masonry_repair_cost"`
	ExtraBuckets       *int     `yaml:"extra_buckets"`
	ExtraSealerBuckets *int     `yaml:"extra_sealer_buckets"`
}

// Merge returns a patch where fields set in other win over p's.
func (p ConfigPatch) Merge(other ConfigPatch) ConfigPatch {
	return ConfigPatch{
		Area:               override(p.Area, other.Area),
		Category:           override(p.Category, other.Category),
		ProductID:          override(p.ProductID, other.ProductID),
		AuxMaterialTotal:   override(p.AuxMaterialTotal, other.AuxMaterialTotal),
		ProfitRate:         override(p.ProfitRate, other.ProfitRate),
		NumWorkers:         override(p.NumWorkers, other.NumWorkers),
		WorkerDailyRate:    override(p.WorkerDailyRate, other.WorkerDailyRate),
		WorkDays:           override(p.WorkDays, other.WorkDays),
		ScaffoldCount:      override(p.ScaffoldCount, other.ScaffoldCount),
		ScaffoldDailyRate:  override(p.ScaffoldDailyRate, other.ScaffoldDailyRate),
		ScaffoldDays:       override(p.ScaffoldDays, other.ScaffoldDays),
		MasonryRepair:      override(p.MasonryRepair, other.MasonryRepair),
		MasonryRepairCost:  override(p.MasonryRepairCost, other.MasonryRepairCost),
		ExtraBuckets:       override(p.ExtraBuckets, other.ExtraBuckets),
		ExtraSealerBuckets: override(p.ExtraSealerBuckets, other.ExtraSealerBuckets),
	}
}

// ApplyScalars copies the numeric and boolean settings of p onto a clone of
// cfg. Setting the area re-derives work days unless the patch also sets
// them. The adjustment counters are applied last so they survive any
// reset the session performs for category or product changes.
func (p ConfigPatch) ApplyScalars(cfg ProjectConfig) ProjectConfig {
	out := cfg.Clone()
	if p.Area != nil {
		out.Area = *p.Area
		out.WorkDays = WorkDaysForArea(*p.Area)
	}
	out.AuxMaterialTotal = valueOr(out.AuxMaterialTotal, p.AuxMaterialTotal)
	out.ProfitRate = valueOr(out.ProfitRate, p.ProfitRate)
	out.NumWorkers = valueOr(out.NumWorkers, p.NumWorkers)
	out.WorkerDailyRate = valueOr(out.WorkerDailyRate, p.WorkerDailyRate)
	out.WorkDays = valueOr(out.WorkDays, p.WorkDays)
	out.ScaffoldCount = valueOr(out.ScaffoldCount, p.ScaffoldCount)
	out.ScaffoldDailyRate = valueOr(out.ScaffoldDailyRate, p.ScaffoldDailyRate)
	out.ScaffoldDays = valueOr(out.ScaffoldDays, p.ScaffoldDays)
	out.MasonryRepairCost = valueOr(out.MasonryRepairCost, p.MasonryRepairCost)
	// A repair cost without an explicit toggle implies the repair applies.
	out.MasonryRepairEnabled = valueOr(out.MasonryRepairEnabled || p.MasonryRepairCost != nil, p.MasonryRepair)
	out.ExtraBuckets = valueOr(out.ExtraBuckets, p.ExtraBuckets)
	out.ExtraSealerBuckets = valueOr(out.ExtraSealerBuckets, p.ExtraSealerBuckets)
	return out
}

// valueOr returns *p when the patch sets it, else fallback.
func valueOr[T any](fallback T, p *T) T {
	if p != nil {
		return *p
	}
	return fallback
}

func override[T any](base, over *T) *T {
	if over != nil {
		return over
	}
	return base
}
