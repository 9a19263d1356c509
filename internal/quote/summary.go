package quote

import "github.com/alexanderramin/cotiza/internal/domain"

// Summary splits a quote subtotal into the figures shown in the footer.
type Summary struct {
	LaborTotal       float64 `json:"labor_total"`
	ScaffoldTotal    float64 `json:"scaffold_total"`
	LaborAndScaffold float64 `json:"labor_and_scaffold"`
	ProfitTotal      float64 `json:"profit_total"`
	MasonryTotal     float64 `json:"masonry_total"`
	MaterialCost     float64 `json:"material_cost"`
}

// Summarize computes the footer metrics for a quote derived from cfg.
// MaterialCost is whatever remains of the subtotal after labor, scaffold,
// profit and masonry, so the parts always add back up to the subtotal.
func Summarize(cfg domain.ProjectConfig, result domain.QuoteResult) Summary {
	labor := float64(cfg.NumWorkers) * float64(cfg.WorkDays) * cfg.WorkerDailyRate
	scaffold := float64(cfg.ScaffoldCount) * float64(cfg.ScaffoldDays) * cfg.ScaffoldDailyRate
	profit := cfg.Area * cfg.ProfitRate
	var masonry float64
	if cfg.MasonryRepairEnabled {
		masonry = cfg.MasonryRepairCost
	}
	return Summary{
		LaborTotal:       labor,
		ScaffoldTotal:    scaffold,
		LaborAndScaffold: labor + scaffold,
		ProfitTotal:      profit,
		MasonryTotal:     masonry,
		MaterialCost:     result.Subtotal - labor - scaffold - profit - masonry,
	}
}
