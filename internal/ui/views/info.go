package views

import (
	"fmt"
	"strings"
)

type infoEntry struct {
	title string
	text  string
}

var homeSystems = []infoEntry{
	{"Epoxy Flooring Systems", "Heavy-duty seamless floors for industrial, chemical and automotive use."},
	{"PU & Hybrid Floors", "Abrasion-resistant coatings for food, pharma and commercial spaces."},
	{"ESD & Conductive Coatings", "Static-controlled systems for cleanrooms and electronics."},
	{"Chemical-Resistant Linings", "Protective resin layers for tanks, drains and processing zones."},
}

var homeIndustries = []string{"Pharmaceutical", "Food & Beverage", "Automotive", "Electronics", "Warehousing"}

var aboutTimeline = []infoEntry{
	{"2019", "Started as a two-person venture laying safer, longer-lasting industrial floors."},
	{"2021", "Work grew from small workshops to large manufacturing plants across the region."},
	{"Today", "A team of engineers, chemists and site specialists delivering documented surfaces."},
}

var aboutStats = []infoEntry{
	{"100+", "Projects Completed"},
	{"25+", "Cities Served"},
}

// renderInfoPage renders the static home and about panels
func (r *Renderer) renderInfoPage(page string) string {
	var b strings.Builder
	switch page {
	case "home":
		b.WriteString(r.styles.Title.Render("Excellence in Resin Flooring"))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("Seamless, durable and chemical-resistant surfaces."))
		b.WriteString("\n\n")
		for _, s := range homeSystems {
			b.WriteString(fmt.Sprintf("• %s\n  %s\n", r.styles.Highlight.Render(s.title), s.text))
		}
		b.WriteString("\nIndustries: " + strings.Join(homeIndustries, ", ") + "\n\n")
		b.WriteString(r.styles.Help.Render("1 browse products • 2 view photos • 4 book a site visit"))
	case "about":
		b.WriteString(r.styles.Title.Render("About us"))
		b.WriteString("\n\n")
		for _, e := range aboutTimeline {
			b.WriteString(detailLine(e.title, e.text))
		}
		b.WriteString("\n")
		for _, s := range aboutStats {
			b.WriteString(fmt.Sprintf("%s %s\n", r.styles.Highlight.Render(s.title), s.text))
		}
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render("4 contact the team"))
	default:
		return ""
	}
	return r.styles.InfoBox.Render(b.String())
}
