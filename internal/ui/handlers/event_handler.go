package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"showroom/internal/eventbus"
	"showroom/internal/ui/state"
)

// EventHandler applies domain events forwarded from the event bus
type EventHandler struct {
	state  *state.AppState
	reload func() tea.Cmd
	logger zerolog.Logger
}

// NewEventHandler creates a new event handler. reload is called when the
// mounted page's catalog changed on disk.
func NewEventHandler(appState *state.AppState, reload func() tea.Cmd, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		state:  appState,
		reload: reload,
		logger: logger.With().Str("component", "events").Logger(),
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogChangedEvent:
		page := h.state.Page
		if page == nil || !page.IsCatalog() || page.Source != e.Source {
			return nil
		}
		h.logger.Info().Str("source", e.Source).Msg("catalog changed on disk, reloading")
		return h.reload()

	case eventbus.CatalogLoadedEvent:
		h.logger.Debug().
			Str("source", e.Source).
			Int("facets", e.Facets).
			Int("items", e.Items).
			Msg("catalog loaded")

	case eventbus.CatalogFailedEvent:
		h.logger.Warn().Err(e.Err).Str("source", e.Source).Msg("catalog load failed")

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)

	case eventbus.ViewSavedEvent:
		h.logger.Debug().Str("address", e.Address).Msg("view saved")
	}

	return nil
}
