package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"↑/↓, j/k", "Move up/down"},
		{"PgUp/PgDn", "Page up/down"},
		{"gg/G", "Go to top/bottom"},
		{"Tab/S-Tab", "Next/previous category"},
		{"l/h", "Next/previous category"},
	}},
	{"Pages", []helpEntry{
		{"1-6", "Products, Photos, Projects, Contact, Home, About"},
		{"[ / ]", "Back/forward in history"},
	}},
	{"Search", []helpEntry{
		{"/", "Search name or description"},
		{"Enter", "Apply search now"},
		{"Esc", "Clear search"},
	}},
	{"Viewer", []helpEntry{
		{"Enter", "Open selected item"},
		{"→/l, ←/h", "Next/previous item"},
		{"Esc/q", "Close viewer"},
	}},
	{"Other", []helpEntry{
		{"o", "Category overview in pager"},
		{"y", "Copy link to this view"},
		{"Q", "Request a quote"},
		{"r", "Reload catalog"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}},
}

// HelpContent renders the full key reference with colors
func HelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("Showroom Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

// renderHelpContent renders the help information clipped to the popup height
func (r *Renderer) renderHelpContent(height int) string {
	lines := strings.Split(HelpContent(), "\n")

	// Calculate visible window (account for popup border and padding)
	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
		lines[len(lines)-1] = r.styles.Scroll.Render("↓ (more below)")
	}

	return strings.Join(lines, "\n")
}
