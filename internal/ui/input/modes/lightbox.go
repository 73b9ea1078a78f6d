package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"showroom/internal/ui/input/types"
)

// LightboxMode owns the keyboard while the lightbox is open
type LightboxMode struct{}

func NewLightboxMode() *LightboxMode {
	return &LightboxMode{}
}

func (m *LightboxMode) Name() string {
	return "lightbox"
}

func (m *LightboxMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *LightboxMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *LightboxMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "right", "l", "n", " ":
		return []types.Action{types.LightboxStepAction{Delta: 1}}, true
	case "left", "h", "p":
		return []types.Action{types.LightboxStepAction{Delta: -1}}, true
	case "esc", "q", "enter":
		return []types.Action{
			types.CloseLightboxAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "Q":
		return []types.Action{
			types.CloseLightboxAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
			types.RequestQuoteAction{},
		}, true
	}
	// swallow everything else so the page underneath stays put
	return nil, true
}
