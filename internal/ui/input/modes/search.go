package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"showroom/internal/ui/input/types"
)

// SearchMode edits the free-text query. Every edit is reported as an
// UpdateTextAction; esc leaves the box keeping the text and enter applies
// it at once.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
