package urlstate

import (
	"fmt"
	"net/url"
	"strings"

	"showroom/internal/ui/services/events"
)

// Build returns the address of a page view. Empty values are omitted.
func Build(page string, params map[string]string) *url.URL {
	values := url.Values{}
	for k, v := range params {
		if v != "" {
			values.Set(k, v)
		}
	}
	return &url.URL{
		Scheme:   Scheme,
		Path:     "/" + strings.Trim(page, "/"),
		RawQuery: values.Encode(),
	}
}

// Parse reads an address. The scheme may be omitted, so "photos?category=PU"
// and "/photos" are accepted too.
func Parse(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty address")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", raw, err)
	}
	switch u.Scheme {
	case Scheme:
	case "":
		u.Scheme = Scheme
	default:
		return nil, fmt.Errorf("invalid address %q: scheme must be %s", raw, Scheme)
	}
	if u.Opaque != "" {
		u.Path = "/" + u.Opaque
		u.Opaque = ""
	}
	// "showroom://photos" puts the page in the host
	if u.Host != "" {
		u.Path = "/" + u.Host + u.Path
		u.Host = ""
	}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u, nil
}

// PageOf returns the page name of an address
func PageOf(u *url.URL) string {
	if u == nil {
		return ""
	}
	return strings.Trim(u.Path, "/")
}

// Seed reads the facet and query of an address
func Seed(u *url.URL) (facet, query string) {
	if u == nil {
		return "", ""
	}
	q := u.Query()
	return q.Get(ParamCategory), q.Get(ParamQuery)
}

// Sync mirrors browser state into a Location
type Sync struct {
	loc Location
	bus events.EventBus
}

// NewSync creates a sync over loc
func NewSync(loc Location, bus events.EventBus) *Sync {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Sync{loc: loc, bus: bus}
}

// Location returns the underlying history
func (s *Sync) Location() Location {
	return s.loc
}

// Current returns the current address
func (s *Sync) Current() *url.URL {
	return s.loc.Current()
}

// Write replaces the current entry with the page's facet and settled query.
// Nothing is written when the address would not change.
func (s *Sync) Write(page, facet, query string) bool {
	next := Build(page, map[string]string{ParamCategory: facet, ParamQuery: query})
	if next.String() == s.loc.Current().String() {
		return false
	}
	s.loc.Replace(next)
	s.bus.Publish(AddressReplacedEvent{Address: next.String()})
	return true
}

// Navigate pushes a new entry for page
func (s *Sync) Navigate(page string, params map[string]string) *url.URL {
	next := Build(page, params)
	s.loc.Push(next)
	s.bus.Publish(AddressPushedEvent{Address: next.String()})
	return next
}
