package domain

import "strings"

// Kind identifies the source JSON shape of a catalog
type Kind string

const (
	KindProducts Kind = "products"
	KindPhotos   Kind = "photos"
	KindProjects Kind = "projects"
)

// ParseKind maps a page or config name to a Kind
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindProducts:
		return KindProducts, true
	case KindPhotos:
		return KindPhotos, true
	case KindProjects:
		return KindProjects, true
	}
	return "", false
}

// Placeholder returns the fallback image path for items without one
func (k Kind) Placeholder() string {
	switch k {
	case KindProducts:
		return "/images/products/placeholder.jpg"
	default:
		return "/images/placeholder.jpg"
	}
}

// Item is a single entry shown in a facet
type Item struct {
	Name        string
	Description string
	ImageURL    string
	Price       *float64 // photos only
	Place       string   // projects only
	Link        string   // projects only
}

// Facet is a named grouping of items
type Facet struct {
	Key      string
	Overview string
	Items    []Item
}

// Catalog is the loaded dataset, ordered as in the source
type Catalog struct {
	Source string
	Kind   Kind
	Facets []Facet
}

// Keys returns the facet keys in display order
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.Facets))
	for _, f := range c.Facets {
		keys = append(keys, f.Key)
	}
	return keys
}

// Facet looks up a facet by key
func (c *Catalog) Facet(key string) (*Facet, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Facets {
		if c.Facets[i].Key == key {
			return &c.Facets[i], true
		}
	}
	return nil, false
}

// FirstKey returns the first facet key, or "" for an empty catalog
func (c *Catalog) FirstKey() string {
	if c == nil || len(c.Facets) == 0 {
		return ""
	}
	return c.Facets[0].Key
}

// ItemCount returns the number of items across all facets
func (c *Catalog) ItemCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, f := range c.Facets {
		n += len(f.Items)
	}
	return n
}
