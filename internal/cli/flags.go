package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/cotiza/internal/catalog"
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/export"
	"github.com/alexanderramin/cotiza/internal/service"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// categoryValue is a pflag.Value restricted to known material categories.
type categoryValue struct {
	category domain.Category
}

var _ pflag.Value = (*categoryValue)(nil)

func (v *categoryValue) String() string { return string(v.category) }
func (v *categoryValue) Type() string   { return "category" }

func (v *categoryValue) Set(s string) error {
	c, err := domain.ParseCategory(s)
	if err != nil {
		return err
	}
	v.category = c
	return nil
}

// formatValue is a pflag.Value restricted to the supported export formats.
type formatValue struct {
	format export.Format
}

var _ pflag.Value = (*formatValue)(nil)

func (v *formatValue) String() string { return string(v.format) }
func (v *formatValue) Type() string   { return "format" }

func (v *formatValue) Set(s string) error {
	f, err := export.ParseFormat(s)
	if err != nil {
		return err
	}
	v.format = f
	return nil
}

// quoteFlags are the inputs shared by the quote and export commands.
type quoteFlags struct {
	job      string
	products string

	area         float64
	category     categoryValue
	product      string
	auxTotal     float64
	profitRate   float64
	workers      int
	workerRate   float64
	workDays     int
	scaffolds    int
	scaffoldRate float64
	scaffoldDays int
	masonry      bool
	masonryCost  float64
	extra        int
	extraSealer  int
}

func (f *quoteFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.job, "job", "", "YAML job file with configuration values")
	fs.StringVar(&f.products, "products", "", "YAML list of custom products to add before quoting")

	fs.Float64Var(&f.area, "area", 0, "Surface to treat in m²")
	fs.Var(&f.category, "category", "Material category (Waterproofing, Paint)")
	fs.StringVar(&f.product, "product", "", "Product ID to quote")
	fs.Float64Var(&f.auxTotal, "aux", 0, "Auxiliary materials total")
	fs.Float64Var(&f.profitRate, "profit", 0, "Supervision rate per m²")
	fs.IntVar(&f.workers, "workers", 0, "Number of workers")
	fs.Float64Var(&f.workerRate, "worker-rate", 0, "Daily rate per worker")
	fs.IntVar(&f.workDays, "work-days", 0, "Work days")
	fs.IntVar(&f.scaffolds, "scaffolds", 0, "Scaffold towers rented")
	fs.Float64Var(&f.scaffoldRate, "scaffold-rate", 0, "Daily rate per scaffold tower")
	fs.IntVar(&f.scaffoldDays, "scaffold-days", 0, "Scaffold rental days")
	fs.BoolVar(&f.masonry, "masonry", false, "Include masonry repairs")
	fs.Float64Var(&f.masonryCost, "masonry-cost", 0, "Masonry repair cost")
	fs.IntVar(&f.extra, "extra-buckets", 0, "Containers added to or removed from the primary material")
	fs.IntVar(&f.extraSealer, "extra-sealer-buckets", 0, "Containers added to or removed from the sealer")
}

// patch builds a ConfigPatch from the flags the user actually set.
func (f *quoteFlags) patch(fs *pflag.FlagSet) domain.ConfigPatch {
	var p domain.ConfigPatch
	if fs.Changed("area") {
		p.Area = &f.area
	}
	if fs.Changed("category") {
		s := string(f.category.category)
		p.Category = &s
	}
	if fs.Changed("product") {
		p.ProductID = &f.product
	}
	if fs.Changed("aux") {
		p.AuxMaterialTotal = &f.auxTotal
	}
	if fs.Changed("profit") {
		p.ProfitRate = &f.profitRate
	}
	if fs.Changed("workers") {
		p.NumWorkers = &f.workers
	}
	if fs.Changed("worker-rate") {
		p.WorkerDailyRate = &f.workerRate
	}
	if fs.Changed("work-days") {
		p.WorkDays = &f.workDays
	}
	if fs.Changed("scaffolds") {
		p.ScaffoldCount = &f.scaffolds
	}
	if fs.Changed("scaffold-rate") {
		p.ScaffoldDailyRate = &f.scaffoldRate
	}
	if fs.Changed("scaffold-days") {
		p.ScaffoldDays = &f.scaffoldDays
	}
	if fs.Changed("masonry") {
		p.MasonryRepair = &f.masonry
	}
	if fs.Changed("masonry-cost") {
		p.MasonryRepairCost = &f.masonryCost
	}
	if fs.Changed("extra-buckets") {
		p.ExtraBuckets = &f.extra
	}
	if fs.Changed("extra-sealer-buckets") {
		p.ExtraSealerBuckets = &f.extraSealer
	}
	return p
}

// apply loads the job file and products, then applies flags over the job.
// The category goes first so new products land in it.
func (f *quoteFlags) apply(ctx context.Context, fs *pflag.FlagSet, quotes service.QuoteService) error {
	var patch domain.ConfigPatch
	if f.job != "" {
		job, err := loadJob(f.job)
		if err != nil {
			return err
		}
		patch = job
	}
	patch = patch.Merge(f.patch(fs))

	if f.products != "" {
		if patch.Category != nil {
			category, err := domain.ParseCategory(*patch.Category)
			if err != nil {
				return err
			}
			if err := quotes.SelectCategory(ctx, category); err != nil {
				return err
			}
		}
		if err := addProducts(ctx, quotes, f.products); err != nil {
			return err
		}
	}

	if err := quotes.ApplyPatch(ctx, patch); err != nil {
		return fmt.Errorf("applying quote settings: %w", err)
	}
	return nil
}

// addProducts saves every draft in a YAML products file. A draft with an
// id edits that existing product instead of adding one.
func addProducts(ctx context.Context, quotes service.QuoteService, path string) error {
	drafts, err := catalog.LoadDrafts(path)
	if err != nil {
		return err
	}
	for i, d := range drafts {
		if _, err := quotes.SaveProduct(ctx, strings.TrimSpace(d.ID), d); err != nil {
			return fmt.Errorf("adding product %d from %s: %w", i+1, path, err)
		}
	}
	return nil
}

// loadJob reads a YAML job file into a ConfigPatch.
func loadJob(path string) (domain.ConfigPatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigPatch{}, fmt.Errorf("reading job %s: %w", path, err)
	}
	var p domain.ConfigPatch
	if err := yaml.Unmarshal(data, &p); err != nil {
		return domain.ConfigPatch{}, fmt.Errorf("decoding job %s: %w", path, err)
	}
	return p, nil
}
