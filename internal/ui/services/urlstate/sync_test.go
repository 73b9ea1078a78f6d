package urlstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroom/internal/ui/services/events"
)

func TestBuildOmitsEmptyQuery(t *testing.T) {
	u := Build("products", map[string]string{ParamCategory: "Epoxy Flooring", ParamQuery: ""})
	assert.Equal(t, "showroom:///products?category=Epoxy+Flooring", u.String())
}

func TestParseVariants(t *testing.T) {
	for _, raw := range []string{
		"showroom:///photos?category=PU&query=warehouse",
		"showroom://photos?category=PU&query=warehouse",
		"showroom:photos?category=PU&query=warehouse",
		"/photos?category=PU&query=warehouse",
		"photos?category=PU&query=warehouse",
	} {
		t.Run(raw, func(t *testing.T) {
			u, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, "photos", PageOf(u))
			facet, query := Seed(u)
			assert.Equal(t, "PU", facet)
			assert.Equal(t, "warehouse", query)
		})
	}
}

func TestParseRejects(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
	_, err = Parse("https://example.com/photos")
	assert.Error(t, err)
}

func TestSeedDecodesEscapes(t *testing.T) {
	u, err := Parse("showroom:///products?category=Epoxy+Flooring&query=anti%2Dslip")
	require.NoError(t, err)

	facet, query := Seed(u)
	assert.Equal(t, "Epoxy Flooring", facet)
	assert.Equal(t, "anti-slip", query)
}

func TestWriteReplacesWithoutGrowingHistory(t *testing.T) {
	h := NewHistory(Build("products", nil))
	rec := &events.Recorder{}
	s := NewSync(h, rec)

	assert.True(t, s.Write("products", "Flooring", ""))
	assert.True(t, s.Write("products", "Flooring", "epoxy"))
	assert.True(t, s.Write("products", "Coatings", "epoxy"))

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, "showroom:///products?category=Coatings&query=epoxy", s.Current().String())
	assert.Len(t, rec.Events, 3)
}

func TestWriteSkipsUnchanged(t *testing.T) {
	h := NewHistory(Build("products", nil))
	rec := &events.Recorder{}
	s := NewSync(h, rec)

	s.Write("products", "Flooring", "")
	assert.False(t, s.Write("products", "Flooring", ""))
	assert.Len(t, rec.Events, 1)
}

func TestWriteThenSeedRoundTrip(t *testing.T) {
	s := NewSync(NewHistory(nil), nil)
	s.Write("photos", "Self Leveling & Screed", "grey / white")

	facet, query := Seed(s.Current())
	assert.Equal(t, "Self Leveling & Screed", facet)
	assert.Equal(t, "grey / white", query)
}

func TestNavigatePushesAndHistoryMoves(t *testing.T) {
	h := NewHistory(Build("products", nil))
	s := NewSync(h, nil)

	s.Navigate("photos", nil)
	s.Navigate("contact", map[string]string{ParamService: "Epoxy Flooring"})
	assert.Equal(t, 3, h.Len())

	require.True(t, h.Back())
	assert.Equal(t, "photos", PageOf(h.Current()))
	require.True(t, h.Back())
	assert.False(t, h.Back())
	assert.Equal(t, "products", PageOf(h.Current()))

	require.True(t, h.Forward())
	s.Navigate("projects", nil)
	assert.False(t, h.Forward())
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, "projects", PageOf(h.Current()))
}

func TestHistoryCurrentIsACopy(t *testing.T) {
	h := NewHistory(Build("products", nil))
	u := h.Current()
	u.Path = "/mutated"
	assert.Equal(t, "products", PageOf(h.Current()))
}
