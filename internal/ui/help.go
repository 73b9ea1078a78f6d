package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "showroom/internal/ui/input/types"
)

// keyMap feeds the bubbles help bar. Key handling itself lives in the input
// modes; these bindings only describe it.
type keyMap struct {
	Move     key.Binding
	Facet    key.Binding
	Search   key.Binding
	Open     key.Binding
	Pages    key.Binding
	History  key.Binding
	Copy     key.Binding
	Quote    key.Binding
	Overview key.Binding
	Help     key.Binding
	Quit     key.Binding

	Apply  key.Binding
	Cancel key.Binding

	Next  key.Binding
	Prev  key.Binding
	Close key.Binding

	mode        inputtypes.Mode
	catalogPage bool
}

func newKeyMap() keyMap {
	return keyMap{
		Move:     key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "move")),
		Facet:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "category")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view")),
		Pages:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "pages")),
		History:  key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "back/fwd")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Quote:    key.NewBinding(key.WithKeys("Q"), key.WithHelp("Q", "quote")),
		Overview: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overview")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Apply:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
		Close:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
	}
}

// forMode returns the bindings to advertise in mode
func (k keyMap) forMode(mode inputtypes.Mode, catalogPage bool) keyMap {
	k.mode = mode
	k.catalogPage = catalogPage
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	switch k.mode {
	case inputtypes.ModeSearch:
		return []key.Binding{k.Apply, k.Cancel, k.Move}
	case inputtypes.ModeLightbox:
		return []key.Binding{k.Prev, k.Next, k.Quote, k.Close}
	}
	if !k.catalogPage {
		return []key.Binding{k.Pages, k.History, k.Copy, k.Help, k.Quit}
	}
	return []key.Binding{k.Move, k.Facet, k.Search, k.Open, k.Pages, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Facet, k.Open},
		{k.Search, k.Overview, k.Quote},
		{k.Pages, k.History, k.Copy},
		{k.Help, k.Quit},
	}
}
