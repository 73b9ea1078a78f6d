package lightbox

import (
	"fmt"

	"showroom/internal/ui/services/events"
)

// Service navigates a modal viewer over an ordered sequence with wraparound
type Service struct {
	state State
	bus   events.EventBus
}

// NewService creates a closed lightbox
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{bus: bus}
}

// Open shows item index of a sequence of length n
func (s *Service) Open(index, n int) error {
	if n <= 0 {
		return ErrEmptySequence
	}
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, n)
	}
	s.state = State{IsOpen: true, CurrentIndex: index, Length: n}
	s.bus.Publish(OpenedEvent{Index: index, Length: n})
	return nil
}

// Next moves forward, wrapping from the last item to the first
func (s *Service) Next() bool {
	return s.move(1)
}

// Prev moves back, wrapping from the first item to the last
func (s *Service) Prev() bool {
	return s.move(-1)
}

func (s *Service) move(delta int) bool {
	if !s.state.IsOpen {
		return false
	}
	n := s.state.Length
	old := s.state.CurrentIndex
	s.state.CurrentIndex = ((old+delta)%n + n) % n
	if s.state.CurrentIndex != old {
		s.bus.Publish(MovedEvent{OldIndex: old, NewIndex: s.state.CurrentIndex})
	}
	return true
}

// Close hides the lightbox and resets its state
func (s *Service) Close() bool {
	return s.close("closed")
}

func (s *Service) close(reason string) bool {
	if !s.state.IsOpen {
		return false
	}
	s.state = State{}
	s.bus.Publish(ClosedEvent{Reason: reason})
	return true
}

// Reconcile adjusts to a sequence that now has n items. The lightbox closes
// when the current index no longer exists. Returns true if it closed.
func (s *Service) Reconcile(n int) bool {
	if !s.state.IsOpen {
		return false
	}
	if n <= 0 || s.state.CurrentIndex >= n {
		return s.close("sequence changed")
	}
	s.state.Length = n
	return false
}

// IsOpen reports whether the lightbox is shown
func (s *Service) IsOpen() bool {
	return s.state.IsOpen
}

// Index returns the current position, meaningful only while open
func (s *Service) Index() int {
	return s.state.CurrentIndex
}

// Snapshot returns a copy of the current state
func (s *Service) Snapshot() State {
	return s.state
}
