package lightbox

import "errors"

var (
	ErrEmptySequence   = errors.New("lightbox: empty sequence")
	ErrIndexOutOfRange = errors.New("lightbox: index out of range")
)

// State holds the lightbox position over the visible sequence.
// While open, 0 <= CurrentIndex < Length.
type State struct {
	IsOpen       bool
	CurrentIndex int
	Length       int
}

// Event types
type OpenedEvent struct {
	Index  int
	Length int
}

type MovedEvent struct {
	OldIndex int
	NewIndex int
}

type ClosedEvent struct {
	Reason string
}
