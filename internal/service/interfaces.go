package service

import (
	"context"

	"github.com/alexanderramin/cotiza/internal/contract"
	"github.com/alexanderramin/cotiza/internal/domain"
)

// QuoteService is the single owner of a quoting session's configuration.
// Every mutation validates first and either replaces the configuration
// wholesale or leaves it untouched. It is not safe for concurrent use.
type QuoteService interface {
	Snapshot(ctx context.Context) (*contract.QuoteSnapshot, error)
	Config() domain.ProjectConfig

	SetArea(ctx context.Context, area float64) error
	SelectCategory(ctx context.Context, category domain.Category) error
	SelectProduct(ctx context.Context, productID string) error
	AdjustBuckets(ctx context.Context, delta int) error
	AdjustSealerBuckets(ctx context.Context, delta int) error
	SetAuxMaterialTotal(ctx context.Context, total float64) error
	SetProfitRate(ctx context.Context, rate float64) error
	SetLabor(ctx context.Context, workers int, dailyRate float64, days int) error
	SetScaffold(ctx context.Context, count int, dailyRate float64, days int) error
	SetMasonryRepair(ctx context.Context, enabled bool, cost float64) error
	ToggleMasonryRepair(ctx context.Context) error
	SetSealer(ctx context.Context, sealer domain.MaterialConfig) error
	ApplyPatch(ctx context.Context, patch domain.ConfigPatch) error

	// SaveProduct creates a product when editingID is empty and otherwise
	// updates the product with that id. Editing a built-in product stores a
	// custom copy under the same id which then shadows it.
	SaveProduct(ctx context.Context, editingID string, draft domain.ProductDraft) (domain.Product, error)
	// Reset restores the initial configuration and drops every custom product.
	Reset(ctx context.Context) error
}
