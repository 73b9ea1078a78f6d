package commands

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroom/internal/config"
	"showroom/internal/domain"
)

type fakeLoader struct {
	cat *domain.Catalog
	err error
	got string
}

func (f *fakeLoader) Load(ctx context.Context, source string, kind domain.Kind) (*domain.Catalog, error) {
	f.got = source
	return f.cat, f.err
}

func TestLoadCatalogCarriesToken(t *testing.T) {
	cat := &domain.Catalog{Source: "data/products.json"}
	loader := &fakeLoader{cat: cat}
	exec := NewExecutor(&CommandContext{Loader: loader})

	msg := exec.ExecuteLoad(context.Background(), "data/products.json", domain.KindProducts, 7)()
	res, ok := msg.(CatalogResultMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(7), res.Token)
	assert.Same(t, cat, res.Catalog)
	assert.NoError(t, res.Err)
	assert.Equal(t, "data/products.json", loader.got)
}

func TestCopyAddress(t *testing.T) {
	var copied string
	exec := NewExecutor(&CommandContext{Clipboard: func(s string) error {
		copied = s
		return nil
	}})

	msg := exec.ExecuteCopyAddress("showroom:///photos?category=Lobby")()
	assert.Equal(t, StatusMsg{Text: "Link copied"}, msg)
	assert.Equal(t, "showroom:///photos?category=Lobby", copied)
}

func TestCopyAddressFailure(t *testing.T) {
	boom := errors.New("no clipboard utility")
	exec := NewExecutor(&CommandContext{Clipboard: func(string) error { return boom }})

	msg := exec.ExecuteCopyAddress("showroom:///products")().(StatusMsg)
	assert.Equal(t, "Copy failed", msg.Text)
	assert.ErrorIs(t, msg.Err, boom)
}

func TestSaveView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.toml")
	exec := NewExecutor(&CommandContext{StateFile: path})

	require.NoError(t, exec.SaveView("showroom:///projects?query=mall"))

	vs, err := config.LoadViewState(path)
	require.NoError(t, err)
	require.NotNil(t, vs)
	assert.Equal(t, "showroom:///projects?query=mall", vs.Address)
	assert.False(t, vs.SavedAt.IsZero())
}

func TestSaveViewWithoutStateFileIsNoop(t *testing.T) {
	exec := NewExecutor(&CommandContext{})
	assert.NoError(t, exec.SaveView("showroom:///products"))
}
