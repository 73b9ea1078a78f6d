package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"showroom/internal/domain"
)

// ItemRenderer handles rendering of catalog rows
type ItemRenderer struct {
	styles *Styles
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles) *ItemRenderer {
	return &ItemRenderer{
		styles: styles,
	}
}

// RenderItem renders one list row: name, an optional tag (price or place)
// and as much of the description as fits in width.
func (r *ItemRenderer) RenderItem(item domain.Item, isSelected bool, query string, width int) string {
	bg := lipgloss.NewStyle()
	if isSelected {
		bg = r.styles.SelectionBg
	}

	marker := "  "
	if isSelected {
		marker = "▸ "
	}

	var parts []string
	parts = append(parts, bg.Render(marker))
	parts = append(parts, highlightMatch(item.Name, query, r.styles.Highlight.Inherit(bg), bg.Bold(true)))

	if tag := itemTag(item); tag != "" {
		parts = append(parts, bg.Render("  "))
		parts = append(parts, r.styles.Price.Inherit(bg).Render(tag))
	}

	line := strings.Join(parts, "")
	if item.Description != "" && width > 0 {
		room := width - lipgloss.Width(line) - 2
		if room > 8 {
			desc := truncate.StringWithTail(item.Description, uint(room), "…")
			line += bg.Render("  ") + highlightMatch(desc, query, r.styles.Highlight.Inherit(bg), r.styles.Dim.Inherit(bg))
		}
	}

	if isSelected && width > 0 {
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += bg.Render(strings.Repeat(" ", pad))
		}
	}
	return line
}

// RenderSkeleton renders a placeholder row shown while a catalog loads
func (r *ItemRenderer) RenderSkeleton(row, width int) string {
	nameW := 14 + (row*7)%9
	descW := 24 + (row*11)%17
	if width > 0 && nameW+descW+4 > width {
		descW = width - nameW - 4
		if descW < 0 {
			descW = 0
		}
	}
	return r.styles.Skeleton.Render("  " + strings.Repeat("░", nameW) + "  " + strings.Repeat("░", descW))
}

// FormatPrice formats a photo price the way the showroom quotes it
func FormatPrice(price float64) string {
	return fmt.Sprintf("₹ %s / sq ft", humanize.Commaf(price))
}

func itemTag(item domain.Item) string {
	switch {
	case item.Price != nil:
		return FormatPrice(*item.Price)
	case item.Place != "":
		return item.Place
	}
	return ""
}

// highlightMatch highlights the first case-insensitive occurrence of query
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return normalStyle.Render(text)
	}

	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	// byte offsets only line up when lowering kept the length
	if len(lowerText) != len(text) || len(lowerQuery) != len(query) {
		return normalStyle.Render(text)
	}

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
