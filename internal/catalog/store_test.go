package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroom/internal/domain"
)

type recordingBus struct {
	mu     sync.Mutex
	events []domain.DomainEvent
}

func (b *recordingBus) Publish(e domain.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) types() []domain.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.EventType, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type())
	}
	return out
}

func newTestStore(bus Publisher) *Store {
	return NewStore(NewRoutingFetcher(2*time.Second), Options{
		CacheSize: 4,
		CacheTTL:  time.Minute,
		Bus:       bus,
		Logger:    zerolog.Nop(),
	})
}

func TestLoadOverHTTP(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productsJSON))
	}))
	defer srv.Close()

	bus := &recordingBus{}
	store := newTestStore(bus)

	cat, err := store.Load(context.Background(), srv.URL+"/pro.json", "")
	require.NoError(t, err)
	assert.Equal(t, "Flooring", cat.FirstKey())
	assert.Equal(t, int32(1), hits.Load())

	cached, ok := store.Cached(srv.URL + "/pro.json")
	require.True(t, ok)
	assert.Same(t, cat, cached)
	assert.Equal(t, []domain.EventType{domain.EventCatalogLoaded}, bus.types())
}

func TestLoadHTTPErrorIsSingleAttempt(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	bus := &recordingBus{}
	store := newTestStore(bus)

	_, err := store.Load(context.Background(), srv.URL, domain.KindProducts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, []domain.EventType{domain.EventCatalogFailed}, bus.types())

	_, ok := store.Cached(srv.URL)
	assert.False(t, ok)
}

func TestLoadMalformedIsDecodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pho.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "x"`), 0644))

	_, err := newTestStore(nil).Load(context.Background(), path, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.True(t, IsFailure(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := newTestStore(nil).Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"), "")
	assert.ErrorIs(t, err, ErrFetch)
}

func TestLoadWithoutSource(t *testing.T) {
	_, err := newTestStore(nil).Load(context.Background(), "", domain.KindProducts)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestLoadCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := newTestStore(nil).Load(ctx, srv.URL, domain.KindPhotos)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("load did not return after cancel")
	}
}

func TestConcurrentLoadsShareOneFetch(t *testing.T) {
	var hits atomic.Int32
	gate := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-gate
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := newTestStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Load(context.Background(), srv.URL, domain.KindPhotos)
			assert.NoError(t, err)
		}()
	}
	time.Sleep(100 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}

type gatedFetcher struct {
	started chan struct{}
	gate    chan struct{}
	hits    atomic.Int32
}

func (f *gatedFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if f.hits.Add(1) == 1 {
		close(f.started)
	}
	select {
	case <-f.gate:
		return []byte(`{"A": {}}`), nil
	case <-ctx.Done():
		return nil, &FetchError{Source: source, Err: ctx.Err()}
	}
}

func TestCancelledLoadDoesNotFailSharedLoad(t *testing.T) {
	f := &gatedFetcher{started: make(chan struct{}), gate: make(chan struct{})}
	store := NewStore(f, Options{CacheSize: 4, CacheTTL: time.Minute, Logger: zerolog.Nop()})

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := store.Load(firstCtx, "cat.json", domain.KindProducts)
		first <- err
	}()
	<-f.started

	second := make(chan error, 1)
	go func() {
		cat, err := store.Load(context.Background(), "cat.json", domain.KindProducts)
		if err == nil {
			assert.Equal(t, []string{"A"}, cat.Keys())
		}
		second <- err
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	select {
	case err := <-first:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled load did not return")
	}

	close(f.gate)
	select {
	case err := <-second:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shared load did not return")
	}

	assert.Equal(t, int32(1), f.hits.Load())
	_, ok := store.Cached("cat.json")
	assert.True(t, ok)
}

func TestSuccessfulReloadReplacesCachedCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pro.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"A": {}}`), 0644))

	store := newTestStore(nil)
	first, err := store.Load(context.Background(), path, "")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"B": {}, "C": {}}`), 0644))
	second, err := store.Load(context.Background(), path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, first.Keys())
	cached, _ := store.Cached(path)
	assert.Same(t, second, cached)
	assert.Equal(t, []string{"B", "C"}, cached.Keys())

	store.Invalidate(path)
	_, ok := store.Cached(path)
	assert.False(t, ok)
}

func TestPrefetch(t *testing.T) {
	dir := t.TempDir()
	products := filepath.Join(dir, "pro.json")
	require.NoError(t, os.WriteFile(products, []byte(productsJSON), 0644))

	store := newTestStore(nil)
	err := store.Prefetch(context.Background(), map[domain.Kind]string{
		domain.KindProducts: products,
		domain.KindPhotos:   filepath.Join(dir, "missing.json"),
		domain.KindProjects: "",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)

	_, ok := store.Cached(products)
	assert.True(t, ok)
}
