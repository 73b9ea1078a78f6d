package navigation

// State holds the cursor over the visible item list
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	Count          int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// Event types for navigation changes
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

type ViewportChangedEvent struct {
	Offset int
	Height int
}
