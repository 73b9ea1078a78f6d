package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"showroom/internal/ui/input/types"
)

// HelpMode shows the inline help popup; any key dismisses it
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "ctrl+c" {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
}
