package navigation

import (
	"showroom/internal/ui/services/events"
)

// rows around the list: padding, title, facets, overview, search box,
// scroll indicators, status line and help
const chromeRows = 11

// Service moves a cursor over the visible items and keeps it in view
type Service struct {
	state   *State
	bus     events.EventBus
	countFn func() int
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{ViewportHeight: 10},
		bus:   bus,
	}
}

// SetCountFunction sets the function reporting how many items are visible
func (s *Service) SetCountFunction(fn func() int) {
	s.countFn = fn
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns the first visible row
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns the number of item rows on screen
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight sizes the list from the terminal height
func (s *Service) SetViewportHeight(height int) {
	effective := height - chromeRows
	if effective < 1 {
		effective = 1
	}
	s.state.ViewportHeight = effective
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	s.refresh()
	old := s.state.Cursor

	page := s.state.ViewportHeight - 1
	if page < 1 {
		page = 1
	}

	switch direction {
	case DirectionUp:
		s.state.Cursor--
	case DirectionDown:
		s.state.Cursor++
	case DirectionPageUp:
		s.state.Cursor -= page
	case DirectionPageDown:
		s.state.Cursor += page
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.state.Count - 1
	}
	s.state.Cursor = s.clamp(s.state.Cursor)
	s.ensureVisible()

	if old != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{OldIndex: old, NewIndex: s.state.Cursor})
	}
}

// MoveToIndex moves cursor to a specific index
func (s *Service) MoveToIndex(index int) {
	s.refresh()
	old := s.state.Cursor
	s.state.Cursor = s.clamp(index)
	s.ensureVisible()

	if old != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{OldIndex: old, NewIndex: s.state.Cursor})
	}
}

// Reset returns to the top, used when the visible set is replaced
func (s *Service) Reset() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
	s.refresh()
}

// Clamp pulls the cursor back inside a shrunken list
func (s *Service) Clamp() {
	s.refresh()
	s.state.Cursor = s.clamp(s.state.Cursor)
	s.ensureVisible()
}

func (s *Service) refresh() {
	if s.countFn != nil {
		s.state.Count = s.countFn()
	}
}

func (s *Service) clamp(index int) int {
	if index >= s.state.Count {
		index = s.state.Count - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

func (s *Service) ensureVisible() {
	old := s.state.ViewportOffset
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	if old != s.state.ViewportOffset {
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	}
}
