package views

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"showroom/internal/domain"
)

const lightboxTextWidth = 56

// LightboxView is the item shown in the lightbox and its position
type LightboxView struct {
	Item  domain.Item
	Index int
	Count int
}

// LightboxRenderer renders the item detail shown inside the lightbox
type LightboxRenderer struct {
	styles *Styles
}

// NewLightboxRenderer creates a new lightbox renderer
func NewLightboxRenderer(styles *Styles) *LightboxRenderer {
	return &LightboxRenderer{styles: styles}
}

// RenderContent renders the lightbox body without its border
func (r *LightboxRenderer) RenderContent(lb LightboxView) string {
	var b strings.Builder

	position := r.styles.Dim.Render(fmt.Sprintf("%d / %d", lb.Index+1, lb.Count))
	b.WriteString(r.styles.Title.Render(lb.Item.Name))
	b.WriteString("  ")
	b.WriteString(position)
	b.WriteString("\n\n")

	if lb.Item.Description != "" {
		b.WriteString(wordwrap.String(lb.Item.Description, lightboxTextWidth))
		b.WriteString("\n\n")
	}

	if lb.Item.Price != nil {
		b.WriteString(detailLine("Price", r.styles.Price.Render(FormatPrice(*lb.Item.Price))))
	}
	if lb.Item.Place != "" {
		b.WriteString(detailLine("Place", lb.Item.Place))
	}
	if lb.Item.Link != "" {
		b.WriteString(detailLine("Link", lb.Item.Link))
	}
	if lb.Item.ImageURL != "" {
		b.WriteString(detailLine("Image", r.styles.Dim.Render(lb.Item.ImageURL)))
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("←/h prev • →/l next • Q request quote • esc close"))
	return b.String()
}

func detailLine(label, value string) string {
	return fmt.Sprintf("%-6s %s\n", label+":", value)
}
