package state

import (
	"context"
	"time"

	"showroom/internal/catalog"
	"showroom/internal/domain"
	"showroom/internal/ui/services/debounce"
	"showroom/internal/ui/services/events"
	"showroom/internal/ui/services/facets"
	"showroom/internal/ui/services/lightbox"
	"showroom/internal/ui/services/navigation"
	"showroom/internal/ui/services/router"
)

// PageState is everything owned by one mounted page. It is created on mount
// and dropped on unmount; only the address outlives it.
type PageState struct {
	Page     router.Page
	Source   string
	Resource *catalog.Resource // nil for pages without a catalog
	Facets   *facets.Service
	Debounce *debounce.Debouncer
	Lightbox *lightbox.Service
	Nav      *navigation.Service
	Service  string // contact page: item a quote was requested for
}

// NewPageState mounts page. Catalog pages get a Resource bound to parent.
func NewPageState(parent context.Context, page router.Page, source string, window time.Duration, bus events.EventBus) *PageState {
	p := &PageState{
		Page:     page,
		Source:   source,
		Facets:   facets.NewService(bus),
		Debounce: debounce.New(window),
		Lightbox: lightbox.NewService(bus),
		Nav:      navigation.NewService(bus),
	}
	if kind, ok := page.Kind(); ok {
		p.Resource = catalog.NewResource(parent, source, kind)
	}
	p.Nav.SetCountFunction(func() int {
		return len(p.Facets.Visible())
	})
	return p
}

// IsCatalog is false for the contact page
func (p *PageState) IsCatalog() bool {
	return p.Resource != nil
}

// Loaded reports whether a catalog is shown
func (p *PageState) Loaded() bool {
	return p.Resource != nil && p.Resource.Catalog() != nil
}

// Visible returns the derived item sequence
func (p *PageState) Visible() []domain.Item {
	return p.Facets.Visible()
}

// Selected returns the item under the cursor
func (p *PageState) Selected() (domain.Item, bool) {
	items := p.Visible()
	i := p.Nav.GetCursor()
	if i < 0 || i >= len(items) {
		return domain.Item{}, false
	}
	return items[i], true
}

// Unmount cancels the in-flight load and the pending debounce window and
// closes the lightbox.
func (p *PageState) Unmount() {
	if p.Resource != nil {
		p.Resource.Unmount()
	}
	p.Debounce.Cancel()
	p.Lightbox.Close()
}

// AppState contains the application state that outlives page mounts
type AppState struct {
	Page          *PageState
	ShowHelp      bool
	StatusMessage string
	InPagerMode   bool // tracks if an external pager owns the terminal
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}
