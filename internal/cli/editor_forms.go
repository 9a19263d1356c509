package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cotiza/internal/contract"
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/money"
	"github.com/alexanderramin/cotiza/internal/service"
	"github.com/charmbracelet/huh"
)

// formView is a huh form shown in place of the quote table. apply runs once
// the form completes and returns the status line to show.
type formView struct {
	title string
	form  *huh.Form
	apply func(ctx context.Context, quotes service.QuoteService) (string, error)
}

func newFormView(title string, apply func(context.Context, service.QuoteService) (string, error), groups ...*huh.Group) *formView {
	return &formView{
		title: title,
		form:  huh.NewForm(groups...).WithTheme(cotizaHuhTheme()).WithShowHelp(false),
		apply: apply,
	}
}

func amountInput(title string, value *string) *huh.Input {
	return huh.NewInput().Title(title).Value(value).Validate(validateAmount)
}

func countInput(title string, value *string) *huh.Input {
	return huh.NewInput().Title(title).Value(value).Validate(validateCount)
}

// ── Area ─────────────────────────────────────────────────────────────────────

type areaFields struct {
	area string
}

func (f *areaFields) apply(ctx context.Context, quotes service.QuoteService) (string, error) {
	area, err := parseAmount(f.area)
	if err != nil {
		return "", fmt.Errorf("area: %w", err)
	}
	if err := quotes.SetArea(ctx, area); err != nil {
		return "", err
	}
	return fmt.Sprintf("Area set to %s m²", formatAmount(area)), nil
}

func newAreaForm(cfg domain.ProjectConfig) *formView {
	f := &areaFields{area: formatAmount(cfg.Area)}
	return newFormView("Area", f.apply, huh.NewGroup(
		amountInput("Surface to treat (m²)", &f.area).
			Description("Work days are recalculated from the area."),
	))
}

// ── Labor ────────────────────────────────────────────────────────────────────

type laborFields struct {
	workers string
	rate    string
	days    string
}

func (f *laborFields) apply(ctx context.Context, quotes service.QuoteService) (string, error) {
	workers, err := parseCount(f.workers)
	if err != nil {
		return "", fmt.Errorf("workers: %w", err)
	}
	rate, err := parseAmount(f.rate)
	if err != nil {
		return "", fmt.Errorf("daily rate: %w", err)
	}
	days, err := parseCount(f.days)
	if err != nil {
		return "", fmt.Errorf("work days: %w", err)
	}
	if err := quotes.SetLabor(ctx, workers, rate, days); err != nil {
		return "", err
	}
	return fmt.Sprintf("Labor: %d workers × %d days at %s", workers, days, money.Format(rate)), nil
}

func newLaborForm(cfg domain.ProjectConfig) *formView {
	f := &laborFields{
		workers: fmt.Sprint(cfg.NumWorkers),
		rate:    formatAmount(cfg.WorkerDailyRate),
		days:    fmt.Sprint(cfg.WorkDays),
	}
	return newFormView("Labor", f.apply, huh.NewGroup(
		countInput("Workers", &f.workers),
		amountInput("Daily rate per worker", &f.rate),
		countInput("Work days", &f.days),
	))
}

// ── Scaffold ─────────────────────────────────────────────────────────────────

type scaffoldFields struct {
	count string
	rate  string
	days  string
}

func (f *scaffoldFields) apply(ctx context.Context, quotes service.QuoteService) (string, error) {
	count, err := parseCount(f.count)
	if err != nil {
		return "", fmt.Errorf("towers: %w", err)
	}
	rate, err := parseAmount(f.rate)
	if err != nil {
		return "", fmt.Errorf("daily rate: %w", err)
	}
	days, err := parseCount(f.days)
	if err != nil {
		return "", fmt.Errorf("rental days: %w", err)
	}
	if err := quotes.SetScaffold(ctx, count, rate, days); err != nil {
		return "", err
	}
	if count == 0 {
		return "Scaffold not rented", nil
	}
	return fmt.Sprintf("Scaffold: %d towers × %d days at %s", count, days, money.Format(rate)), nil
}

func newScaffoldForm(cfg domain.ProjectConfig) *formView {
	f := &scaffoldFields{
		count: fmt.Sprint(cfg.ScaffoldCount),
		rate:  formatAmount(cfg.ScaffoldDailyRate),
		days:  fmt.Sprint(cfg.ScaffoldDays),
	}
	return newFormView("Scaffold", f.apply, huh.NewGroup(
		countInput("Towers (0 = not rented)", &f.count),
		amountInput("Daily rate per tower", &f.rate),
		countInput("Rental days", &f.days),
	))
}

// ── Single amounts ───────────────────────────────────────────────────────────

type masonryCostFields struct {
	cost string
}

func (f *masonryCostFields) apply(ctx context.Context, quotes service.QuoteService) (string, error) {
	cost, err := parseAmount(f.cost)
	if err != nil {
		return "", fmt.Errorf("masonry cost: %w", err)
	}
	// The cost is kept even while repairs are switched off.
	if err := quotes.SetMasonryRepair(ctx, quotes.Config().MasonryRepairEnabled, cost); err != nil {
		return "", err
	}
	return "Masonry repair cost set to " + money.Format(cost), nil
}

func newMasonryCostForm(cfg domain.ProjectConfig) *formView {
	f := &masonryCostFields{cost: formatAmount(cfg.MasonryRepairCost)}
	return newFormView("Masonry repairs", f.apply, huh.NewGroup(
		amountInput("Repair cost", &f.cost).Description("Press m in the editor to include or exclude it."),
	))
}

type auxFields struct {
	total string
}

func (f *auxFields) apply(ctx context.Context, quotes service.QuoteService) (string, error) {
	total, err := parseAmount(f.total)
	if err != nil {
		return "", fmt.Errorf("auxiliary total: %w", err)
	}
	if err := quotes.SetAuxMaterialTotal(ctx, total); err != nil {
		return "", err
	}
	return "Auxiliary materials set to " + money.Format(total), nil
}

func newAuxForm(cfg domain.ProjectConfig) *formView {
	f := &auxFields{total: formatAmount(cfg.AuxMaterialTotal)}
	return newFormView("Auxiliary materials", f.apply, huh.NewGroup(
		amountInput("Rollers, brushes, tape and masking", &f.total),
	))
}

type profitFields struct {
	rate string
}

func (f *profitFields) apply(ctx context.Context, quotes service.QuoteService) (string, error) {
	rate, err := parseAmount(f.rate)
	if err != nil {
		return "", fmt.Errorf("supervision rate: %w", err)
	}
	if err := quotes.SetProfitRate(ctx, rate); err != nil {
		return "", err
	}
	return fmt.Sprintf("Supervision set to %s%% of labor", formatAmount(rate)), nil
}

func newProfitForm(cfg domain.ProjectConfig) *formView {
	f := &profitFields{rate: formatAmount(cfg.ProfitRate)}
	return newFormView("Supervision", f.apply, huh.NewGroup(
		amountInput("Rate (% of labor)", &f.rate),
	))
}

// ── Products ─────────────────────────────────────────────────────────────────

type productChoice struct {
	id string
}

func (f *productChoice) apply(ctx context.Context, quotes service.QuoteService) (string, error) {
	if err := quotes.SelectProduct(ctx, f.id); err != nil {
		return "", err
	}
	return "Selected " + f.id, nil
}

// newProductPicker offers the products of the selected category. It returns
// nil when the category has none.
func newProductPicker(snap *contract.QuoteSnapshot) *formView {
	if len(snap.Available) == 0 {
		return nil
	}
	options := make([]huh.Option[string], 0, len(snap.Available))
	for _, p := range snap.Available {
		label := fmt.Sprintf("%s · %s · %s", p.Name, money.Format(p.Price), p.YieldDisplay())
		if p.Brand != "" {
			label = fmt.Sprintf("%s (%s) · %s · %s", p.Name, p.Brand, money.Format(p.Price), p.YieldDisplay())
		}
		options = append(options, huh.NewOption(label, p.ID))
	}

	f := &productChoice{id: snap.Current.ID}
	return newFormView(string(snap.Config.SelectedCategory)+" products", f.apply, huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which product?").
			Options(options...).
			Value(&f.id),
	))
}

type productFields struct {
	editingID string
	draft     domain.ProductDraft
}

func (f *productFields) apply(ctx context.Context, quotes service.QuoteService) (string, error) {
	p, err := quotes.SaveProduct(ctx, f.editingID, f.draft)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Saved %s (%s · %s)", p.Name, money.Format(p.Price), p.YieldDisplay()), nil
}

// newProductForm creates a product in the selected category, or corrects
// editing when it is non-nil.
func newProductForm(category domain.Category, editing *domain.Product) *formView {
	f := &productFields{}
	title := "New " + string(category) + " product"
	if editing != nil {
		f.editingID = editing.ID
		f.draft = domain.DraftFromProduct(*editing)
		title = "Edit " + editing.Name
	}

	return newFormView(title, f.apply, huh.NewGroup(
		huh.NewInput().Title("Name").Value(&f.draft.Name).Validate(validateRequired),
		huh.NewInput().Title("Brand").Placeholder(domain.DefaultCustomBrand).Value(&f.draft.Brand),
		amountInput("Price per container", &f.draft.Price),
		huh.NewInput().
			Title("Yield (m² per container)").
			Placeholder(formatAmount(domain.DefaultYield)).
			Description("Blank uses the default coverage.").
			Value(&f.draft.Yield),
	))
}

// ── Reset ────────────────────────────────────────────────────────────────────

type resetChoice struct {
	confirmed bool
}

func (f *resetChoice) apply(ctx context.Context, quotes service.QuoteService) (string, error) {
	if !f.confirmed {
		return "Reset skipped", nil
	}
	if err := quotes.Reset(ctx); err != nil {
		return "", err
	}
	return "Quote reset; custom products removed", nil
}

func newResetForm() *formView {
	f := &resetChoice{}
	return newFormView("Reset", f.apply, huh.NewGroup(
		huh.NewConfirm().
			Title("Start over?").
			Description("Restores the initial settings and removes every custom product.").
			Affirmative("Reset").
			Negative("Keep").
			Value(&f.confirmed),
	))
}
