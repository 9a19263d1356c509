package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cotiza/internal/catalog"
	"github.com/alexanderramin/cotiza/internal/contract"
	"github.com/alexanderramin/cotiza/internal/db"
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/quote"
	"github.com/alexanderramin/cotiza/internal/repository"
	"github.com/google/uuid"
)

const customIDPrefix = "custom-"

type quoteService struct {
	builtin  []domain.Product
	products repository.CustomProductRepo
	uow      db.UnitOfWork
	observer UseCaseObserver

	cfg domain.ProjectConfig
}

// NewQuoteService starts a session on the initial configuration. The
// initial selection is repaired against builtin so an alternate catalog
// without the default product still starts on a product of the default
// category.
func NewQuoteService(
	builtin []domain.Product,
	products repository.CustomProductRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) QuoteService {
	return &quoteService{
		builtin:  builtin,
		products: products,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		cfg:      initialConfig(builtin),
	}
}

func initialConfig(builtin []domain.Product) domain.ProjectConfig {
	cfg := domain.InitialConfig()
	cfg.SelectedProductID = catalog.RepairSelection(builtin, cfg.SelectedCategory, cfg.SelectedProductID)
	return cfg
}

func (s *quoteService) catalog(ctx context.Context) ([]domain.Product, error) {
	custom, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading custom products: %w", err)
	}
	return catalog.Merge(s.builtin, custom), nil
}

func (s *quoteService) Snapshot(ctx context.Context) (*contract.QuoteSnapshot, error) {
	products, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	current, ok := catalog.Current(products, s.cfg.SelectedProductID)
	if !ok {
		return nil, catalog.ErrEmpty
	}

	cfg := s.cfg.Clone()
	result, err := quote.Derive(cfg, current)
	if err != nil {
		return nil, err
	}
	return &contract.QuoteSnapshot{
		Config:    cfg,
		Catalog:   products,
		Current:   current,
		Available: catalog.ByCategory(products, cfg.SelectedCategory),
		Result:    result,
		Summary:   quote.Summarize(cfg, result),
	}, nil
}

func (s *quoteService) Config() domain.ProjectConfig {
	return s.cfg.Clone()
}

// update applies fn to a copy of the configuration and swaps it in only if
// fn succeeds and the result validates.
func (s *quoteService) update(ctx context.Context, name string, fields map[string]any, fn func(cfg *domain.ProjectConfig) error) (err error) {
	defer report(ctx, s.observer, name, time.Now().UTC(), fields, &err)

	next := s.cfg.Clone()
	if err = fn(&next); err != nil {
		return err
	}
	if err = next.Validate(); err != nil {
		return err
	}
	s.cfg = next
	return nil
}

func (s *quoteService) SetArea(ctx context.Context, area float64) error {
	return s.update(ctx, "set-area", map[string]any{"area": area}, func(cfg *domain.ProjectConfig) error {
		cfg.Area = area
		cfg.WorkDays = domain.WorkDaysForArea(area)
		return nil
	})
}

func (s *quoteService) SelectCategory(ctx context.Context, category domain.Category) error {
	products, err := s.catalog(ctx)
	if err != nil {
		return err
	}
	return s.update(ctx, "select-category", map[string]any{"category": category}, func(cfg *domain.ProjectConfig) error {
		return selectCategory(cfg, products, category)
	})
}

func (s *quoteService) SelectProduct(ctx context.Context, productID string) error {
	products, err := s.catalog(ctx)
	if err != nil {
		return err
	}
	return s.update(ctx, "select-product", map[string]any{"product": productID}, func(cfg *domain.ProjectConfig) error {
		return selectProduct(cfg, products, productID)
	})
}

func (s *quoteService) AdjustBuckets(ctx context.Context, delta int) error {
	return s.update(ctx, "adjust-buckets", map[string]any{"delta": delta}, func(cfg *domain.ProjectConfig) error {
		cfg.ExtraBuckets += delta
		return nil
	})
}

func (s *quoteService) AdjustSealerBuckets(ctx context.Context, delta int) error {
	return s.update(ctx, "adjust-sealer-buckets", map[string]any{"delta": delta}, func(cfg *domain.ProjectConfig) error {
		cfg.ExtraSealerBuckets += delta
		return nil
	})
}

func (s *quoteService) SetAuxMaterialTotal(ctx context.Context, total float64) error {
	return s.update(ctx, "set-aux-material", map[string]any{"total": total}, func(cfg *domain.ProjectConfig) error {
		cfg.AuxMaterialTotal = total
		return nil
	})
}

func (s *quoteService) SetProfitRate(ctx context.Context, rate float64) error {
	return s.update(ctx, "set-profit-rate", map[string]any{"rate": rate}, func(cfg *domain.ProjectConfig) error {
		cfg.ProfitRate = rate
		return nil
	})
}

func (s *quoteService) SetLabor(ctx context.Context, workers int, dailyRate float64, days int) error {
	fields := map[string]any{"workers": workers, "daily_rate": dailyRate, "days": days}
	return s.update(ctx, "set-labor", fields, func(cfg *domain.ProjectConfig) error {
		cfg.NumWorkers = workers
		cfg.WorkerDailyRate = dailyRate
		cfg.WorkDays = days
		return nil
	})
}

func (s *quoteService) SetScaffold(ctx context.Context, count int, dailyRate float64, days int) error {
	fields := map[string]any{"count": count, "daily_rate": dailyRate, "days": days}
	return s.update(ctx, "set-scaffold", fields, func(cfg *domain.ProjectConfig) error {
		cfg.ScaffoldCount = count
		cfg.ScaffoldDailyRate = dailyRate
		cfg.ScaffoldDays = days
		return nil
	})
}

func (s *quoteService) SetMasonryRepair(ctx context.Context, enabled bool, cost float64) error {
	fields := map[string]any{"enabled": enabled, "cost": cost}
	return s.update(ctx, "set-masonry", fields, func(cfg *domain.ProjectConfig) error {
		cfg.MasonryRepairEnabled = enabled
		cfg.MasonryRepairCost = cost
		return nil
	})
}

func (s *quoteService) ToggleMasonryRepair(ctx context.Context) error {
	return s.update(ctx, "toggle-masonry", nil, func(cfg *domain.ProjectConfig) error {
		cfg.MasonryRepairEnabled = !cfg.MasonryRepairEnabled
		return nil
	})
}

func (s *quoteService) SetSealer(ctx context.Context, sealer domain.MaterialConfig) error {
	return s.update(ctx, "set-sealer", map[string]any{"name": sealer.Name}, func(cfg *domain.ProjectConfig) error {
		cfg.Materials[domain.RoleSealer] = sealer
		return nil
	})
}

// ApplyPatch applies a category change first, then a product change, then
// the scalar settings, all as a single update.
func (s *quoteService) ApplyPatch(ctx context.Context, patch domain.ConfigPatch) error {
	products, err := s.catalog(ctx)
	if err != nil {
		return err
	}
	return s.update(ctx, "apply-patch", nil, func(cfg *domain.ProjectConfig) error {
		if patch.Category != nil {
			category, err := domain.ParseCategory(*patch.Category)
			if err != nil {
				return err
			}
			if err := selectCategory(cfg, products, category); err != nil {
				return err
			}
		}
		if patch.ProductID != nil {
			if err := selectProduct(cfg, products, *patch.ProductID); err != nil {
				return err
			}
		}
		*cfg = patch.ApplyScalars(*cfg)
		return nil
	})
}

func (s *quoteService) SaveProduct(ctx context.Context, editingID string, draft domain.ProductDraft) (saved domain.Product, err error) {
	fields := map[string]any{"editing": editingID != ""}
	defer report(ctx, s.observer, "save-product", time.Now().UTC(), fields, &err)

	id, category := customIDPrefix+uuid.NewString(), s.cfg.SelectedCategory
	if editingID != "" {
		existing, err := s.editTarget(ctx, editingID)
		if err != nil {
			return domain.Product{}, err
		}
		id, category = existing.ID, existing.Category
	}

	saved, err = draft.Build(id, category)
	if err != nil {
		return domain.Product{}, err
	}
	fields["product"] = saved.ID

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCustomProductRepo(tx).Upsert(ctx, saved)
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("saving product: %w", err)
	}

	if editingID == "" {
		next := s.cfg.Clone()
		next.SelectedProductID = saved.ID
		next.ExtraBuckets = 0
		s.cfg = next
	}
	return saved, nil
}

// editTarget resolves the product being edited. A stored custom product,
// including a shadow of a built-in, takes precedence over the built-in.
func (s *quoteService) editTarget(ctx context.Context, id string) (domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return domain.Product{}, fmt.Errorf("loading product %s: %w", id, err)
	}
	if p, ok := catalog.Find(s.builtin, id); ok {
		return p, nil
	}
	return domain.Product{}, fmt.Errorf("%w: unknown product %q", domain.ErrInvalidProduct, id)
}

func (s *quoteService) Reset(ctx context.Context) (err error) {
	defer report(ctx, s.observer, "reset", time.Now().UTC(), nil, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCustomProductRepo(tx).DeleteAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("resetting session: %w", err)
	}
	s.cfg = initialConfig(s.builtin)
	return nil
}
