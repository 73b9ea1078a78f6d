package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroom/internal/ui/input/types"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func catalogCtx() *ModelContext {
	return &ModelContext{Visible: 3, Loaded: true, CatalogPage: true}
}

func TestNormalModeKeys(t *testing.T) {
	h := New()
	ctx := catalogCtx()

	cases := []struct {
		msg  tea.KeyMsg
		want types.Action
	}{
		{runes("j"), types.NavigateAction{Direction: "down"}},
		{key(tea.KeyUp), types.NavigateAction{Direction: "up"}},
		{key(tea.KeyTab), types.CycleFacetAction{Delta: 1}},
		{key(tea.KeyShiftTab), types.CycleFacetAction{Delta: -1}},
		{runes("2"), types.SwitchPageAction{Number: 2}},
		{runes("["), types.HistoryAction{Direction: "back"}},
		{runes("y"), types.CopyAddressAction{}},
		{runes("Q"), types.RequestQuoteAction{}},
		{runes("r"), types.ReloadAction{}},
		{key(tea.KeyEnter), types.OpenLightboxAction{Index: 0}},
	}
	for _, c := range cases {
		actions, _ := h.HandleKey(c.msg, ctx)
		require.Len(t, actions, 1, c.msg.String())
		assert.Equal(t, c.want, actions[0], c.msg.String())
	}
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestEnterWithNothingVisibleDoesNotOpenLightbox(t *testing.T) {
	h := New()
	ctx := catalogCtx()
	ctx.Visible = 0

	actions, _ := h.HandleKey(key(tea.KeyEnter), ctx)
	assert.Empty(t, actions)
}

func TestSearchModeTypingEmitsUpdates(t *testing.T) {
	h := New()
	ctx := catalogCtx()

	actions, cmd := h.HandleKey(runes("/"), ctx)
	assert.Empty(t, actions)
	assert.NotNil(t, cmd)
	require.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "Search: ", h.Prompt())

	actions, _ = h.HandleKey(runes("e"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "e"}}, actions)
	actions, _ = h.HandleKey(runes("p"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "ep"}}, actions)

	// keys bound in normal mode are typed while searching
	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "epq"}}, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())

	actions, _ = h.HandleKey(key(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "epq", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeStartsWithCurrentQuery(t *testing.T) {
	h := New()
	ctx := catalogCtx()
	ctx.Query = "epoxy"

	h.HandleKey(runes("/"), ctx)
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "epoxy", h.TextInput().Value())

	actions, _ := h.HandleKey(key(tea.KeyEsc), ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestLightboxModeOwnsKeys(t *testing.T) {
	h := New()
	ctx := catalogCtx()
	h.ChangeMode(types.ModeLightbox, "", ctx)

	actions, _ := h.HandleKey(key(tea.KeyRight), ctx)
	assert.Equal(t, []types.Action{types.LightboxStepAction{Delta: 1}}, actions)
	actions, _ = h.HandleKey(runes("h"), ctx)
	assert.Equal(t, []types.Action{types.LightboxStepAction{Delta: -1}}, actions)

	// page keys are swallowed
	actions, _ = h.HandleKey(runes("2"), ctx)
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(key(tea.KeyEsc), ctx)
	assert.Equal(t, []types.Action{types.CloseLightboxAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	// arrows are not lightbox keys once closed
	actions, _ = h.HandleKey(key(tea.KeyRight), ctx)
	assert.Empty(t, actions)
}

func TestResetLeavesTextMode(t *testing.T) {
	h := New()
	ctx := catalogCtx()
	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("x"), ctx)

	h.Reset()
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSlashIgnoredOnContactPage(t *testing.T) {
	h := New()
	ctx := &ModelContext{}

	actions, _ := h.HandleKey(runes("/"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}
