package router

import (
	"showroom/internal/ui/services/events"
	"showroom/internal/ui/services/urlstate"
)

// Service tracks the current page and moves through address history
type Service struct {
	sync    *urlstate.Sync
	current Page
	bus     events.EventBus
}

// NewService creates a router positioned at the page of the current address
func NewService(sync *urlstate.Sync, bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	s := &Service{sync: sync, bus: bus}
	s.current = s.resolve()
	return s
}

// Current returns the page being shown
func (s *Service) Current() Page {
	return s.current
}

// Go pushes an address for page. Returns false if page is already current
// and no params are given.
func (s *Service) Go(page Page, params map[string]string) bool {
	if page == s.current && len(params) == 0 {
		return false
	}
	s.sync.Navigate(string(page), params)
	s.set(page)
	return true
}

// Back moves to the previous address. Returns false at the start of history.
func (s *Service) Back() bool {
	if !s.sync.Location().Back() {
		return false
	}
	s.set(s.resolve())
	return true
}

// Forward moves to the next address. Returns false at the end of history.
func (s *Service) Forward() bool {
	if !s.sync.Location().Forward() {
		return false
	}
	s.set(s.resolve())
	return true
}

func (s *Service) set(page Page) {
	old := s.current
	s.current = page
	s.bus.Publish(PageChangedEvent{From: old, To: page})
}

func (s *Service) resolve() Page {
	if p, ok := ParsePage(urlstate.PageOf(s.sync.Current())); ok {
		return p
	}
	return DefaultPage
}
