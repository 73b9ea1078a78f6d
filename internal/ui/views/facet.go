package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FacetRenderer handles rendering of the facet tab bar
type FacetRenderer struct {
	styles *Styles
}

// NewFacetRenderer creates a new facet renderer
func NewFacetRenderer(styles *Styles) *FacetRenderer {
	return &FacetRenderer{
		styles: styles,
	}
}

// RenderFacets renders facet keys on one line, the active one emphasized.
// When the line would overflow width, facets before the active one are
// dropped and replaced with an ellipsis.
func (f *FacetRenderer) RenderFacets(keys []string, active string, counts map[string]int, width int) string {
	if len(keys) == 0 {
		return ""
	}

	parts := make([]string, len(keys))
	activeIdx := 0
	for i, key := range keys {
		label := key
		if n, ok := counts[key]; ok {
			label = fmt.Sprintf("%s (%d)", key, n)
		}
		if key == active {
			activeIdx = i
			parts[i] = f.styles.ActiveFacet.Render(label)
		} else {
			parts[i] = f.styles.Facet.Render(label)
		}
	}

	sep := f.styles.Dim.Render(" │ ")
	line := strings.Join(parts, sep)
	if width <= 0 || lipgloss.Width(line) <= width {
		return line
	}

	for start := 1; start <= activeIdx; start++ {
		line = f.styles.Dim.Render("… ") + strings.Join(parts[start:], sep)
		if lipgloss.Width(line) <= width {
			break
		}
	}
	return line
}

// RenderPageTabs renders the numbered page switcher
func (f *FacetRenderer) RenderPageTabs(tabs []PageTab) string {
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := fmt.Sprintf("%d %s", tab.Number, tab.Title)
		if tab.Active {
			parts = append(parts, f.styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, f.styles.Tab.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
