package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cotiza/internal/cli/formatter"
	"github.com/alexanderramin/cotiza/internal/contract"
	"github.com/alexanderramin/cotiza/internal/domain"
	"github.com/alexanderramin/cotiza/internal/money"
	"github.com/alexanderramin/cotiza/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var formKeys = []key.Binding{
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next / save")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// editorModel is the interactive quote editor. Every key press goes through
// the QuoteService and the view is re-rendered from a fresh snapshot.
type editorModel struct {
	ctx    context.Context
	quotes service.QuoteService
	keys   editorKeyMap
	help   help.Model

	snap *contract.QuoteSnapshot
	form *formView

	status    string
	statusErr bool
	quitting  bool
}

func newEditorModel(ctx context.Context, quotes service.QuoteService) (editorModel, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	snap, err := quotes.Snapshot(ctx)
	if err != nil {
		return editorModel{}, fmt.Errorf("starting editor: %w", err)
	}

	h := help.New()
	h.Styles.ShortKey = formatter.StyleHeader
	h.Styles.FullKey = formatter.StyleHeader
	h.Styles.ShortDesc = formatter.StyleDim
	h.Styles.FullDesc = formatter.StyleDim

	return editorModel{
		ctx:    ctx,
		quotes: quotes,
		keys:   defaultEditorKeyMap(),
		help:   h,
		snap:   snap,
	}, nil
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.help.Width = ws.Width
	}
	if m.form != nil {
		return m.updateForm(msg)
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(k)
	}
	return m, nil
}

func (m editorModel) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx, cfg := m.ctx, m.snap.Config

	switch {
	case key.Matches(k, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(k, m.keys.MoreBuckets):
		return m.changed(rowStatus(domain.RowPrimary), m.quotes.AdjustBuckets(ctx, 1)), nil
	case key.Matches(k, m.keys.FewerBuckets):
		return m.changed(rowStatus(domain.RowPrimary), m.quotes.AdjustBuckets(ctx, -1)), nil
	case key.Matches(k, m.keys.MoreSealer):
		return m.changed(rowStatus(domain.RowSealer), m.quotes.AdjustSealerBuckets(ctx, 1)), nil
	case key.Matches(k, m.keys.FewerSealer):
		return m.changed(rowStatus(domain.RowSealer), m.quotes.AdjustSealerBuckets(ctx, -1)), nil

	case key.Matches(k, m.keys.Category):
		next := domain.NextSelectableCategory(cfg.SelectedCategory)
		return m.changed(func(*contract.QuoteSnapshot) string { return "Category: " + string(next) }, m.quotes.SelectCategory(ctx, next)), nil

	case key.Matches(k, m.keys.Masonry):
		return m.changed(func(snap *contract.QuoteSnapshot) string {
			if snap.Config.MasonryRepairEnabled {
				return "Masonry repairs included"
			}
			return "Masonry repairs removed"
		}, m.quotes.ToggleMasonryRepair(ctx)), nil

	case key.Matches(k, m.keys.Product):
		picker := newProductPicker(m.snap)
		if picker == nil {
			m.setStatus(fmt.Sprintf("No %s products in the catalog", cfg.SelectedCategory), true)
			return m, nil
		}
		return m.openForm(picker)
	case key.Matches(k, m.keys.Area):
		return m.openForm(newAreaForm(cfg))
	case key.Matches(k, m.keys.Labor):
		return m.openForm(newLaborForm(cfg))
	case key.Matches(k, m.keys.Scaffold):
		return m.openForm(newScaffoldForm(cfg))
	case key.Matches(k, m.keys.MasonryCost):
		return m.openForm(newMasonryCostForm(cfg))
	case key.Matches(k, m.keys.AuxMaterial):
		return m.openForm(newAuxForm(cfg))
	case key.Matches(k, m.keys.Profit):
		return m.openForm(newProfitForm(cfg))
	case key.Matches(k, m.keys.NewProduct):
		return m.openForm(newProductForm(cfg.SelectedCategory, nil))
	case key.Matches(k, m.keys.EditProduct):
		current := m.snap.Current
		return m.openForm(newProductForm(current.Category, &current))
	case key.Matches(k, m.keys.Reset):
		return m.openForm(newResetForm())
	}

	return m, nil
}

func (m editorModel) openForm(f *formView) (tea.Model, tea.Cmd) {
	m.form = f
	m.status = ""
	return m, f.form.Init()
}

func (m editorModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form.
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.form = nil
		m.setStatus("Cancelled.", false)
		return m, nil
	}

	updated, cmd := m.form.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form.form = f
	}

	switch m.form.form.State {
	case huh.StateCompleted:
		status, err := m.form.apply(m.ctx, m.quotes)
		m.form = nil
		return m.changed(func(*contract.QuoteSnapshot) string { return status }, err), nil
	case huh.StateAborted:
		m.form = nil
		m.setStatus("Cancelled.", false)
		return m, nil
	}
	return m, cmd
}

// changed refreshes the snapshot after a mutation. A failed mutation leaves
// the quote as it was and shows the error instead of status.
func (m editorModel) changed(status func(*contract.QuoteSnapshot) string, err error) editorModel {
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	snap, err := m.quotes.Snapshot(m.ctx)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	m.snap = snap
	m.setStatus(status(snap), false)
	return m
}

// rowStatus describes a row's quantity in the refreshed snapshot.
func rowStatus(kind domain.RowKind) func(*contract.QuoteSnapshot) string {
	return func(snap *contract.QuoteSnapshot) string {
		item, ok := snap.Result.Item(kind)
		if !ok {
			return ""
		}
		return fmt.Sprintf("%s: %s", item.Concept, item.Quantity)
	}
}

func (m *editorModel) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m editorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.FormatQuoteHeading(m.snap))
	b.WriteString(formatter.Dim(" · "))
	b.WriteString(formatter.Bold("≈ " + money.FormatWhole(m.snap.Result.Total)))
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(formatter.Header(m.form.title))
		b.WriteString("\n\n")
		b.WriteString(m.form.form.View())
		b.WriteString("\n\n")
		b.WriteString(m.help.ShortHelpView(formKeys))
		return b.String()
	}

	b.WriteString(formatter.FormatQuoteItems(m.snap.Result.Items))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		formatter.FormatTotals(m.snap.Result),
		"   ",
		formatter.FormatSummary(m.snap.Summary, m.snap.Result.Subtotal),
	))
	b.WriteString("\n\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(formatter.StyleRed.Render("Error: " + m.status))
		} else {
			b.WriteString(formatter.StyleGreen.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
