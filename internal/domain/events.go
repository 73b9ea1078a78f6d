package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded  EventType = "CatalogLoaded"
	EventCatalogFailed  EventType = "CatalogFailed"
	EventCatalogChanged EventType = "CatalogChanged"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventViewSaved      EventType = "ViewSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted after a catalog was fetched and decoded
type CatalogLoadedEvent struct {
	Source string
	Kind   Kind
	Facets int
	Items  int
	Cached bool
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogFailedEvent is emitted when fetching or decoding a catalog fails
type CatalogFailedEvent struct {
	Source string
	Err    error
}

func (e CatalogFailedEvent) Type() EventType { return EventCatalogFailed }

// CatalogChangedEvent is emitted when a watched local catalog file is written
type CatalogChangedEvent struct {
	Source string
}

func (e CatalogChangedEvent) Type() EventType { return EventCatalogChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted once configuration has been read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ViewSavedEvent is emitted after the last view address was persisted
type ViewSavedEvent struct {
	Address string
}

func (e ViewSavedEvent) Type() EventType { return EventViewSaved }
