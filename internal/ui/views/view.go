package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"showroom/internal/catalog"
	"showroom/internal/domain"
)

// PageTab is one entry of the page switcher
type PageTab struct {
	Number int
	Title  string
	Active bool
}

// ContactView is the static contact page content
type ContactView struct {
	Service string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Tabs           []PageTab
	PageTitle      string
	CatalogPage    bool
	Facets         []string
	FacetCounts    map[string]int
	ActiveFacet    string
	Overview       string
	LoadStatus     catalog.Status
	Refreshing     bool
	Spinner        string
	SkeletonRows   int
	ErrorMessage   string
	Items          []domain.Item
	Filtering      bool
	HighlightQuery string
	QueryText      string
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	InputPrompt    string
	TextInput      string
	Lightbox       *LightboxView
	Contact        *ContactView
	InfoPage       string // "home" or "about"
	ShowHelp       bool
	HelpModel      help.Model
	HelpKeys       help.KeyMap
	Address        string
	StatusMessage  string
	RefreshError   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles         *Styles
	itemRender     *ItemRenderer
	facetRender    *FacetRenderer
	popupRender    *PopupRenderer
	lightboxRender *LightboxRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:         styles,
		itemRender:     NewItemRenderer(styles),
		facetRender:    NewFacetRenderer(styles),
		popupRender:    NewPopupRenderer(styles),
		lightboxRender: NewLightboxRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	innerWidth := termWidth - 4 // Account for main container padding

	content.WriteString(r.renderTitleLine(state, innerWidth))
	content.WriteString("\n\n")

	if state.CatalogPage {
		if facets := r.facetRender.RenderFacets(state.Facets, state.ActiveFacet, state.FacetCounts, innerWidth); facets != "" {
			content.WriteString(facets)
			content.WriteString("\n")
		}
		if state.Overview != "" {
			content.WriteString(r.styles.Overview.Render(truncate.StringWithTail(state.Overview, uint(innerWidth), "…")))
			content.WriteString("\n")
		}
		if state.InputPrompt != "" {
			content.WriteString(r.styles.Filter.Render(state.InputPrompt))
			content.WriteString(state.TextInput)
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	content.WriteString(r.renderMain(state, innerWidth))

	footer := r.renderFooter(state, innerWidth)

	// Pad so the footer sits at the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	footerLines := strings.Count(footer, "\n") + 1
	if paddingNeeded := availableLines - currentLines - footerLines; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	if state.Lightbox != nil {
		return r.popupRender.RenderPopupOverlay(finalContent, r.lightboxRender.RenderContent(*state.Lightbox), state.Height, state.Width, r.styles.LightboxBox)
	}

	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderHelpContent(state.Height), state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// renderTitleLine renders the logo and page tabs with right-aligned indicators
func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	left := r.styles.Title.Render("showroom") + "  " + r.facetRender.RenderPageTabs(state.Tabs)

	var indicators []string
	switch {
	case state.LoadStatus == catalog.StatusLoading:
		indicators = append(indicators, r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading", state.Spinner)))
	case state.Refreshing:
		indicators = append(indicators, r.styles.StatusLoading.Render(fmt.Sprintf("%s Refreshing", state.Spinner)))
	}
	if state.QueryText != "" && state.InputPrompt == "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", state.QueryText)))
	}
	if len(indicators) == 0 {
		return left
	}

	right := strings.Join(indicators, "  ")
	paddingWidth := width - lipgloss.Width(left) - lipgloss.Width(right)
	if paddingWidth > 0 {
		return left + strings.Repeat(" ", paddingWidth) + right
	}
	return left + "  " + right
}

// renderMain renders the body for the current page and load state
func (r *Renderer) renderMain(state ViewState, width int) string {
	if state.Contact != nil {
		return r.renderContact(*state.Contact)
	}
	if state.InfoPage != "" {
		return r.renderInfoPage(state.InfoPage)
	}

	switch state.LoadStatus {
	case catalog.StatusIdle, catalog.StatusLoading:
		rows := make([]string, 0, state.SkeletonRows)
		for i := 0; i < state.SkeletonRows; i++ {
			rows = append(rows, r.itemRender.RenderSkeleton(i, width))
		}
		return strings.Join(rows, "\n")
	case catalog.StatusFailed:
		panelWidth := width - 2
		if panelWidth > 72 {
			panelWidth = 72
		}
		return r.styles.ErrorPanel.Width(panelWidth).Render(state.ErrorMessage + "\n" + r.styles.Dim.Render("Press r to try again."))
	}

	switch {
	case len(state.Facets) == 0:
		return r.styles.Dim.Render("This catalog is empty.")
	case len(state.Items) == 0 && state.Filtering:
		return r.styles.StatusWarning.Render("No items match your search.")
	case len(state.Items) == 0:
		return r.styles.Dim.Render("No items in this category.")
	}
	return r.renderItemList(state, width)
}

// renderItemList renders the visible window of items with scroll indicators
func (r *Renderer) renderItemList(state ViewState, width int) string {
	total := len(state.Items)
	height := state.ViewportHeight
	if height <= 0 {
		height = total
	}

	offset := state.ViewportOffset
	if offset > total-1 {
		offset = total - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > total {
		end = total
	}

	var lines []string
	if offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}
	for i := offset; i < end; i++ {
		lines = append(lines, r.itemRender.RenderItem(state.Items[i], i == state.Cursor, state.HighlightQuery, width))
	}
	if end < total {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", total-end)))
	}

	return strings.Join(lines, "\n")
}

// renderContact renders the static contact panel
func (r *Renderer) renderContact(c ContactView) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Contact us"))
	b.WriteString("\n\n")
	if c.Service != "" {
		b.WriteString(fmt.Sprintf("Quote request for: %s\n\n", r.styles.Highlight.Render(c.Service)))
	}
	b.WriteString(detailLine("Phone", "+91 98765 43210"))
	b.WriteString(detailLine("Email", "sales@showroom.example"))
	b.WriteString(detailLine("Hours", "Mon-Sat, 9:30 to 18:30"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Mention the product or project name when you call and we will prepare a site visit."))
	return r.styles.InfoBox.Render(b.String())
}

// renderFooter renders the status line and the key help bar
func (r *Renderer) renderFooter(state ViewState, width int) string {
	var status []string
	if state.Address != "" {
		status = append(status, r.styles.Status.Render(state.Address))
	}
	if state.RefreshError != "" {
		status = append(status, r.styles.StatusError.Render("refresh failed: "+state.RefreshError))
	} else if state.StatusMessage != "" {
		status = append(status, r.styles.StatusSuccess.Render(state.StatusMessage))
	}
	statusLine := truncate.StringWithTail(strings.Join(status, "  "), uint(width), "…")

	helpLine := r.styles.Help.Render("Press ? for help")
	if state.HelpKeys != nil {
		hm := state.HelpModel
		hm.Width = width
		helpLine = hm.View(state.HelpKeys)
	}
	return statusLine + "\n" + helpLine
}
