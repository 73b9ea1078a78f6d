package router

import "showroom/internal/domain"

// Page is a top-level screen
type Page string

const (
	PageProducts Page = "products"
	PagePhotos   Page = "photos"
	PageProjects Page = "projects"
	PageContact  Page = "contact"
	PageHome     Page = "home"
	PageAbout    Page = "about"
)

// Pages in switcher order; key 1 selects the first
var Pages = []Page{PageProducts, PagePhotos, PageProjects, PageContact, PageHome, PageAbout}

// DefaultPage is shown when an address names no known page
const DefaultPage = PageProducts

// ParsePage maps a page name to a Page
func ParsePage(s string) (Page, bool) {
	for _, p := range Pages {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// ByNumber maps switcher keys 1..n to pages
func ByNumber(n int) (Page, bool) {
	if n < 1 || n > len(Pages) {
		return "", false
	}
	return Pages[n-1], true
}

// Kind returns the catalog shown on the page; the static pages have none
func (p Page) Kind() (domain.Kind, bool) {
	switch p {
	case PageProducts:
		return domain.KindProducts, true
	case PagePhotos:
		return domain.KindPhotos, true
	case PageProjects:
		return domain.KindProjects, true
	}
	return "", false
}

// Title returns the display name
func (p Page) Title() string {
	switch p {
	case PageProducts:
		return "Products"
	case PagePhotos:
		return "Photos"
	case PageProjects:
		return "Projects"
	case PageContact:
		return "Contact"
	case PageHome:
		return "Home"
	case PageAbout:
		return "About"
	}
	return string(p)
}

// Event types
type PageChangedEvent struct {
	From Page
	To   Page
}
