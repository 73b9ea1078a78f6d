package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup over the main content. Rows covered by
// the popup show the popup; every other row shows the content greyed out.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	if width <= 0 {
		width = lipgloss.Width(styledPopup)
	}
	if height <= 0 {
		height = lipgloss.Height(mainContent)
	}

	placed := strings.Split(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styledPopup), "\n")
	base := strings.Split(desaturateANSI(mainContent), "\n")

	out := make([]string, len(placed))
	for i, row := range placed {
		if strings.TrimSpace(ansiRE.ReplaceAllString(row, "")) != "" {
			out[i] = row
			continue
		}
		if i < len(base) {
			out[i] = base[i]
		}
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes color/style codes
func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(s, "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = grey.Render(stripANSI(line))
	}
	return strings.Join(lines, "\n")
}
