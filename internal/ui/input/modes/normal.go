package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"showroom/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.CycleFacetAction{Delta: 1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.CycleFacetAction{Delta: -1}}, true

	case tea.KeyEnter:
		// Enter opens the lightbox on the item under the cursor
		if ctx.IsCatalogPage() && ctx.VisibleCount() > 0 {
			return []types.Action{types.OpenLightboxAction{Index: ctx.CurrentIndex()}}, true
		}
		return nil, true

	case tea.KeyEsc:
		if ctx.QueryText() != "" {
			return []types.Action{types.ClearQueryAction{}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case "1", "2", "3", "4", "5", "6":
		return []types.Action{types.SwitchPageAction{Number: int(msg.Runes[0] - '0')}}, true

	case "[":
		return []types.Action{types.HistoryAction{Direction: "back"}}, true

	case "]":
		return []types.Action{types.HistoryAction{Direction: "forward"}}, true

	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "l":
		return []types.Action{types.CycleFacetAction{Delta: 1}}, true

	case "h":
		return []types.Action{types.CycleFacetAction{Delta: -1}}, true

	case "/":
		if !ctx.IsCatalogPage() {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.QueryText()}}, true

	case "r":
		return []types.Action{types.ReloadAction{}}, true

	case "y":
		return []types.Action{types.CopyAddressAction{}}, true

	case "Q":
		return []types.Action{types.RequestQuoteAction{}}, true

	case "o":
		if ctx.HasCatalog() {
			return []types.Action{types.OpenOverviewAction{}}, true
		}
		return nil, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		m.lastKeyWasG = false
	}

	return nil, false
}
