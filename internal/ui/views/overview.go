package views

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"showroom/internal/domain"
)

const overviewWidth = 78

// RenderOverview renders a facet and its visible items as plain text for the pager
func RenderOverview(page string, facet domain.Facet, items []domain.Item) string {
	var b strings.Builder

	title := fmt.Sprintf("%s / %s", page, facet.Key)
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(title))))
	b.WriteString("\n\n")

	if facet.Overview != "" {
		b.WriteString(wordwrap.String(facet.Overview, overviewWidth))
		b.WriteString("\n\n")
	}

	if len(items) == 0 {
		b.WriteString("No items match your search.\n")
		return b.String()
	}

	for _, item := range items {
		b.WriteString("* ")
		b.WriteString(item.Name)
		if tag := itemTag(item); tag != "" {
			b.WriteString("  (")
			b.WriteString(tag)
			b.WriteString(")")
		}
		b.WriteString("\n")
		if item.Description != "" {
			b.WriteString(indent.String(wordwrap.String(item.Description, overviewWidth-2), 2))
			b.WriteString("\n")
		}
		if item.Link != "" {
			b.WriteString("  ")
			b.WriteString(item.Link)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
