package facets

import (
	"showroom/internal/domain"
	"showroom/internal/ui/logic"
	"showroom/internal/ui/services/events"
)

// Service owns the active facet and the search query, and derives the
// visible items from them
type Service struct {
	state   *State
	catalog *domain.Catalog
	filter  *logic.ItemFilter
	bus     events.EventBus
}

// NewService creates a new facet service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state:  &State{},
		filter: logic.NewItemFilter(),
		bus:    bus,
	}
}

// Seed sets the facet and query read from the address before any data
// has loaded. The facet is checked once a catalog is installed.
func (s *Service) Seed(facet, query string) {
	s.state.ActiveFacet = facet
	s.state.QueryText = query
	s.state.DebouncedQuery = query
}

// SetCatalog installs data. If the current facet is not part of cat the
// first facet is selected instead. Returns true when that correction happened.
func (s *Service) SetCatalog(cat *domain.Catalog) bool {
	s.catalog = cat

	wanted := s.state.ActiveFacet
	corrected := false
	if _, ok := cat.Facet(wanted); !ok {
		s.state.ActiveFacet = cat.FirstKey()
		corrected = wanted != ""
	}

	s.bus.Publish(CatalogInstalledEvent{
		Facets:    len(cat.Keys()),
		Active:    s.state.ActiveFacet,
		Corrected: corrected,
	})
	return corrected
}

// Catalog returns the installed catalog, nil before load
func (s *Service) Catalog() *domain.Catalog {
	return s.catalog
}

// Keys returns facet keys in display order
func (s *Service) Keys() []string {
	return s.catalog.Keys()
}

// ActiveFacet returns the active facet key
func (s *Service) ActiveFacet() string {
	return s.state.ActiveFacet
}

// Active returns the active facet
func (s *Service) Active() (*domain.Facet, bool) {
	if s.state.ActiveFacet == "" {
		return nil, false
	}
	return s.catalog.Facet(s.state.ActiveFacet)
}

// SetActiveFacet switches facets. It is a no-op returning false when key is
// unknown or already active. The query is kept across switches.
func (s *Service) SetActiveFacet(key string) bool {
	if key == s.state.ActiveFacet {
		return false
	}
	if _, ok := s.catalog.Facet(key); !ok {
		return false
	}

	old := s.state.ActiveFacet
	s.state.ActiveFacet = key
	s.bus.Publish(FacetChangedEvent{OldFacet: old, NewFacet: key})
	return true
}

// NextFacet activates the following facet, wrapping at the end
func (s *Service) NextFacet() bool {
	return s.step(1)
}

// PrevFacet activates the preceding facet, wrapping at the start
func (s *Service) PrevFacet() bool {
	return s.step(-1)
}

func (s *Service) step(delta int) bool {
	keys := s.Keys()
	if len(keys) == 0 {
		return false
	}
	cur := 0
	for i, k := range keys {
		if k == s.state.ActiveFacet {
			cur = i
			break
		}
	}
	next := ((cur+delta)%len(keys) + len(keys)) % len(keys)
	return s.SetActiveFacet(keys[next])
}

// QueryText returns the raw query as typed
func (s *Service) QueryText() string {
	return s.state.QueryText
}

// SetQueryText records the raw query. Filtering waits for SetDebouncedQuery.
func (s *Service) SetQueryText(text string) {
	if text == s.state.QueryText {
		return
	}
	s.state.QueryText = text
	s.bus.Publish(QueryChangedEvent{Query: text})
}

// DebouncedQuery returns the query the visible set is filtered by
func (s *Service) DebouncedQuery() string {
	return s.state.DebouncedQuery
}

// SetDebouncedQuery applies a settled query. Returns false if unchanged.
func (s *Service) SetDebouncedQuery(text string) bool {
	if text == s.state.DebouncedQuery {
		return false
	}
	s.state.DebouncedQuery = text
	s.bus.Publish(QuerySettledEvent{Query: text, Matches: len(s.Visible())})
	return true
}

// ClearQuery resets both the raw and the settled query
func (s *Service) ClearQuery() bool {
	changed := s.state.QueryText != "" || s.state.DebouncedQuery != ""
	s.state.QueryText = ""
	s.state.DebouncedQuery = ""
	if changed {
		s.bus.Publish(QuerySettledEvent{Query: "", Matches: len(s.Visible())})
	}
	return changed
}

// Visible returns the items of the active facet matching the settled query,
// in source order. It is empty, not nil, when a query matches nothing.
func (s *Service) Visible() []domain.Item {
	facet, ok := s.Active()
	if !ok {
		return nil
	}
	return s.filter.Filter(facet.Items, s.state.DebouncedQuery)
}

// Filtering reports whether a non-blank settled query is in effect
func (s *Service) Filtering() bool {
	return s.filter.Normalize(s.state.DebouncedQuery) != ""
}

// Snapshot returns a copy of the current state
func (s *Service) Snapshot() State {
	return *s.state
}
