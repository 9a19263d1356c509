package cli

import "github.com/charmbracelet/bubbles/key"

// editorKeyMap holds the editor's single-key commands. It satisfies
// help.KeyMap so the bottom bar and the "?" overlay render from it.
type editorKeyMap struct {
	MoreBuckets  key.Binding
	FewerBuckets key.Binding
	MoreSealer   key.Binding
	FewerSealer  key.Binding
	Category     key.Binding
	Product      key.Binding
	Area         key.Binding
	Labor        key.Binding
	Scaffold     key.Binding
	Masonry      key.Binding
	MasonryCost  key.Binding
	AuxMaterial  key.Binding
	Profit       key.Binding
	NewProduct   key.Binding
	EditProduct  key.Binding
	Reset        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		MoreBuckets:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "containers")),
		FewerBuckets: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer containers")),
		MoreSealer:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]/[", "sealer")),
		FewerSealer:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "fewer sealer")),
		Category:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Product:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "product")),
		Area:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "area")),
		Labor:        key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "labor")),
		Scaffold:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scaffold")),
		Masonry:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "masonry on/off")),
		MasonryCost:  key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "masonry cost")),
		AuxMaterial:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "auxiliary")),
		Profit:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "supervision %")),
		NewProduct:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new product")),
		EditProduct:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit product")),
		Reset:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoreBuckets, k.MoreSealer, k.Category, k.Product, k.Area, k.Help, k.Quit}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoreBuckets, k.FewerBuckets, k.MoreSealer, k.FewerSealer},
		{k.Category, k.Product, k.NewProduct, k.EditProduct},
		{k.Area, k.Labor, k.Scaffold, k.AuxMaterial, k.Profit},
		{k.Masonry, k.MasonryCost, k.Reset, k.Help, k.Quit},
	}
}
