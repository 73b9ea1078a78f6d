package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"showroom/internal/domain"
)

// GeneralFacet collects photos and projects that carry no category
const GeneralFacet = "General"

// Decode parses raw JSON into a catalog. An empty kind is detected from the
// document shape.
func Decode(source string, data []byte, kind domain.Kind) (*domain.Catalog, error) {
	if kind == "" {
		detected, err := DetectKind(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, source, err)
		}
		kind = detected
	}

	var (
		facets []domain.Facet
		err    error
	)
	switch kind {
	case domain.KindProducts:
		facets, err = decodeProducts(data)
	case domain.KindPhotos:
		facets, err = decodePhotos(data)
	case domain.KindProjects:
		facets, err = decodeProjects(data)
	default:
		err = fmt.Errorf("unknown catalog kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, source, err)
	}

	return &domain.Catalog{Source: source, Kind: kind, Facets: facets}, nil
}

// DetectKind guesses the catalog kind: an array is photos, an object with a
// "projects" member is projects, any other object is products.
func DetectKind(data []byte) (domain.Kind, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "", fmt.Errorf("empty document")
	}
	switch trimmed[0] {
	case '[':
		return domain.KindPhotos, nil
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return "", err
		}
		if _, ok := probe["projects"]; ok {
			return domain.KindProjects, nil
		}
		return domain.KindProducts, nil
	}
	return "", fmt.Errorf("unexpected document start %q", trimmed[0])
}

// eachMember walks a JSON object in document order. fn must consume exactly
// one value from dec.
func eachMember(data []byte, fn func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if err := fn(key, dec); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

type productCategory struct {
	Overview string          `json:"overview"`
	Services json.RawMessage `json:"services"`
}

type productService struct {
	Desc        string `json:"desc"`
	Description string `json:"description"`
	Img         string `json:"img"`
	Image       string `json:"image"`
}

func decodeProducts(data []byte) ([]domain.Facet, error) {
	var facets []domain.Facet
	index := map[string]int{}

	err := eachMember(data, func(key string, dec *json.Decoder) error {
		var cat productCategory
		if err := dec.Decode(&cat); err != nil {
			return err
		}
		items, err := decodeServices(cat.Services)
		if err != nil {
			return err
		}
		facet := domain.Facet{Key: key, Overview: cat.Overview, Items: items}
		// a repeated key keeps its first position and takes the last value
		if i, ok := index[key]; ok {
			facets[i] = facet
			return nil
		}
		index[key] = len(facets)
		facets = append(facets, facet)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return facets, nil
}

func decodeServices(raw json.RawMessage) ([]domain.Item, error) {
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return nil, nil
	}

	var items []domain.Item
	index := map[string]int{}

	err := eachMember(raw, func(name string, dec *json.Decoder) error {
		var s productService
		if err := dec.Decode(&s); err != nil {
			return err
		}
		item := domain.Item{
			Name:        name,
			Description: firstNonEmpty(s.Desc, s.Description),
			ImageURL:    firstNonEmpty(s.Img, s.Image, domain.KindProducts.Placeholder()),
		}
		if i, ok := index[name]; ok {
			items[i] = item
			return nil
		}
		index[name] = len(items)
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// price accepts a JSON number or a numeric string
type price struct {
	value *float64
}

func (p *price) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == "" {
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		// non-numeric prices are shown without a price line
		return nil
	}
	p.value = &v
	return nil
}

type photoEntry struct {
	Name        string `json:"name"`
	Desc        string `json:"desc"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Img         string `json:"img"`
	Price       price  `json:"price"`
	Category    string `json:"category"`
}

func decodePhotos(data []byte) ([]domain.Facet, error) {
	var entries []photoEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	g := newGrouper()
	for _, e := range entries {
		g.add(e.Category, domain.Item{
			Name:        e.Name,
			Description: firstNonEmpty(e.Desc, e.Description),
			ImageURL:    firstNonEmpty(e.Image, e.Img, domain.KindPhotos.Placeholder()),
			Price:       e.Price.value,
		})
	}
	return g.facets(), nil
}

type projectEntry struct {
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Img      string `json:"img"`
	Place    string `json:"place"`
	Category string `json:"category"`
	Link     string `json:"link"`
}

func decodeProjects(data []byte) ([]domain.Facet, error) {
	var doc struct {
		Projects []projectEntry `json:"projects"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	g := newGrouper()
	for _, p := range doc.Projects {
		g.add(p.Category, domain.Item{
			Name:        p.Title,
			Description: p.Desc,
			ImageURL:    firstNonEmpty(p.Img, domain.KindProjects.Placeholder()),
			Place:       p.Place,
			Link:        p.Link,
		})
	}
	return g.facets(), nil
}

// grouper builds facets in order of first appearance, with uncategorized
// items collected in a trailing General facet
type grouper struct {
	order   []string
	items   map[string][]domain.Item
	general []domain.Item
}

func newGrouper() *grouper {
	return &grouper{items: map[string][]domain.Item{}}
}

func (g *grouper) add(category string, item domain.Item) {
	category = strings.TrimSpace(category)
	if category == "" {
		g.general = append(g.general, item)
		return
	}
	if _, ok := g.items[category]; !ok {
		g.order = append(g.order, category)
	}
	g.items[category] = append(g.items[category], item)
}

func (g *grouper) facets() []domain.Facet {
	facets := make([]domain.Facet, 0, len(g.order)+1)
	for _, key := range g.order {
		facets = append(facets, domain.Facet{Key: key, Items: g.items[key]})
	}
	if len(g.general) > 0 {
		if _, clash := g.items[GeneralFacet]; clash {
			// an explicit "General" category already exists; merge into it
			for i := range facets {
				if facets[i].Key == GeneralFacet {
					facets[i].Items = append(facets[i].Items, g.general...)
				}
			}
		} else {
			facets = append(facets, domain.Facet{Key: GeneralFacet, Items: g.general})
		}
	}
	return facets
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
