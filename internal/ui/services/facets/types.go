package facets

// State holds the browser state of one page mount
type State struct {
	ActiveFacet    string // empty before load or for an empty catalog
	QueryText      string
	DebouncedQuery string
}

// Event types
type CatalogInstalledEvent struct {
	Facets    int
	Active    string
	Corrected bool // a seeded facet was not in the catalog
}

type FacetChangedEvent struct {
	OldFacet string
	NewFacet string
}

type QueryChangedEvent struct {
	Query string
}

type QuerySettledEvent struct {
	Query   string
	Matches int
}
