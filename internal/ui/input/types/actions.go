package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Page actions
type SwitchPageAction struct {
	Number int // 1-based position in the page switcher
}

func (a SwitchPageAction) Type() string { return "switch_page" }

type HistoryAction struct {
	Direction string // "back" or "forward"
}

func (a HistoryAction) Type() string { return "history" }

// Facet actions
type CycleFacetAction struct {
	Delta int
}

func (a CycleFacetAction) Type() string { return "cycle_facet" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Lightbox actions
type OpenLightboxAction struct {
	Index int
}

func (a OpenLightboxAction) Type() string { return "open_lightbox" }

type LightboxStepAction struct {
	Delta int // +1 next, -1 previous
}

func (a LightboxStepAction) Type() string { return "lightbox_step" }

type CloseLightboxAction struct{}

func (a CloseLightboxAction) Type() string { return "close_lightbox" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type CopyAddressAction struct{}

func (a CopyAddressAction) Type() string { return "copy_address" }

type RequestQuoteAction struct{}

func (a RequestQuoteAction) Type() string { return "request_quote" }

type OpenOverviewAction struct{}

func (a OpenOverviewAction) Type() string { return "open_overview" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
