package catalog

import (
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroom/internal/domain"
)

var productsJSON = dedent.Dedent(`
	{
	  "Flooring": {
	    "overview": "Seamless industrial floors",
	    "services": {
	      "Epoxy Flooring": {"desc": "Durable chemical resistant floor", "img": "/images/epoxy.jpg"},
	      "PU Flooring": {"description": "Flexible polyurethane"}
	    }
	  },
	  "Coatings": {
	    "overview": "Protective paints",
	    "services": {
	      "Anti-Corrosive": {"desc": "Steel protection", "image": "/images/ac.jpg"}
	    }
	  },
	  "Waterproofing": {"overview": "Coming soon"}
	}
`)

func TestDecodeProductsKeepsSourceOrder(t *testing.T) {
	cat, err := Decode("pro.json", []byte(productsJSON), "")
	require.NoError(t, err)

	assert.Equal(t, domain.KindProducts, cat.Kind)
	assert.Equal(t, []string{"Flooring", "Coatings", "Waterproofing"}, cat.Keys())

	flooring, ok := cat.Facet("Flooring")
	require.True(t, ok)
	assert.Equal(t, "Seamless industrial floors", flooring.Overview)
	require.Len(t, flooring.Items, 2)
	assert.Equal(t, "Epoxy Flooring", flooring.Items[0].Name)
	assert.Equal(t, "/images/epoxy.jpg", flooring.Items[0].ImageURL)
	assert.Equal(t, "PU Flooring", flooring.Items[1].Name)
	assert.Equal(t, "Flexible polyurethane", flooring.Items[1].Description)
	assert.Equal(t, "/images/products/placeholder.jpg", flooring.Items[1].ImageURL)

	coatings, _ := cat.Facet("Coatings")
	assert.Equal(t, "/images/ac.jpg", coatings.Items[0].ImageURL)

	empty, _ := cat.Facet("Waterproofing")
	assert.Empty(t, empty.Items)
}

func TestDecodeProductsDuplicateKeyKeepsFirstPosition(t *testing.T) {
	data := `{"A": {"overview": "one"}, "B": {}, "A": {"overview": "two"}}`

	cat, err := Decode("dup.json", []byte(data), domain.KindProducts)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, cat.Keys())
	a, _ := cat.Facet("A")
	assert.Equal(t, "two", a.Overview)
}

func TestDecodePhotosGroupsByCategory(t *testing.T) {
	data := dedent.Dedent(`
		[
		  {"name": "Warehouse", "desc": "Grey epoxy", "image": "/p/1.jpg", "price": 1250, "category": "Epoxy"},
		  {"name": "Lobby", "desc": "No category"},
		  {"name": "Kitchen", "desc": "PU screed", "image": "/p/3.jpg", "price": "85.5", "category": "PU"},
		  {"name": "Garage", "desc": "Metallic", "image": "/p/4.jpg", "price": "on request", "category": "Epoxy"}
		]
	`)

	cat, err := Decode("pho.json", []byte(data), "")
	require.NoError(t, err)

	assert.Equal(t, domain.KindPhotos, cat.Kind)
	assert.Equal(t, []string{"Epoxy", "PU", GeneralFacet}, cat.Keys())

	epoxy, _ := cat.Facet("Epoxy")
	require.Len(t, epoxy.Items, 2)
	require.NotNil(t, epoxy.Items[0].Price)
	assert.Equal(t, 1250.0, *epoxy.Items[0].Price)
	assert.Nil(t, epoxy.Items[1].Price)

	pu, _ := cat.Facet("PU")
	require.NotNil(t, pu.Items[0].Price)
	assert.Equal(t, 85.5, *pu.Items[0].Price)

	general, _ := cat.Facet(GeneralFacet)
	require.Len(t, general.Items, 1)
	assert.Equal(t, "Lobby", general.Items[0].Name)
	assert.Equal(t, "/images/placeholder.jpg", general.Items[0].ImageURL)
}

func TestDecodeProjects(t *testing.T) {
	data := dedent.Dedent(`
		{
		  "projects": [
		    {"title": "Pharma plant", "desc": "ESD flooring", "img": "/p/a.jpg", "place": "Chennai", "category": "Industrial", "link": "https://example.com/a"},
		    {"title": "Showroom", "desc": "Decorative", "place": "Madurai"}
		  ]
		}
	`)

	cat, err := Decode("store.json", []byte(data), "")
	require.NoError(t, err)

	assert.Equal(t, domain.KindProjects, cat.Kind)
	assert.Equal(t, []string{"Industrial", GeneralFacet}, cat.Keys())

	industrial, _ := cat.Facet("Industrial")
	item := industrial.Items[0]
	assert.Equal(t, "Pharma plant", item.Name)
	assert.Equal(t, "Chennai", item.Place)
	assert.Equal(t, "https://example.com/a", item.Link)

	general, _ := cat.Facet(GeneralFacet)
	assert.Equal(t, "/images/placeholder.jpg", general.Items[0].ImageURL)
}

func TestDecodeMalformed(t *testing.T) {
	for name, data := range map[string]string{
		"empty":     "",
		"truncated": `{"Flooring": {"overview": `,
		"scalar":    `42`,
		"bad array": `[{"name": 1}]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode("bad.json", []byte(data), "")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecode)
			assert.True(t, IsFailure(err))
		})
	}
}

func TestDecodeEmptyCatalog(t *testing.T) {
	cat, err := Decode("empty.json", []byte(`{}`), domain.KindProducts)
	require.NoError(t, err)
	assert.Empty(t, cat.Facets)
	assert.Equal(t, "", cat.FirstKey())
}
