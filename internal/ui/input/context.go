package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Cursor      int
	Visible     int
	Loaded      bool
	Query       string
	CatalogPage bool
	Lightbox    bool
}

// CurrentIndex returns the cursor position in the visible list
func (c *ModelContext) CurrentIndex() int {
	return c.Cursor
}

// VisibleCount returns the number of items currently shown
func (c *ModelContext) VisibleCount() int {
	return c.Visible
}

// HasCatalog reports whether the page has data to show
func (c *ModelContext) HasCatalog() bool {
	return c.Loaded
}

// QueryText returns the raw search text
func (c *ModelContext) QueryText() string {
	return c.Query
}

// IsCatalogPage is false for the contact page
func (c *ModelContext) IsCatalogPage() bool {
	return c.CatalogPage
}

// LightboxOpen reports whether the lightbox is shown
func (c *ModelContext) LightboxOpen() bool {
	return c.Lightbox
}
