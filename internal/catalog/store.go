package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"showroom/internal/domain"
)

// Publisher receives catalog events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Options configures a Store
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
	Bus       Publisher
	Logger    zerolog.Logger
}

// Store loads catalogs and keeps recently loaded ones in a short-lived cache
type Store struct {
	fetcher Fetcher
	cache   *expirable.LRU[string, *domain.Catalog]
	group   singleflight.Group
	bus     Publisher
	log     zerolog.Logger
}

// NewStore creates a store backed by fetcher
func NewStore(fetcher Fetcher, opts Options) *Store {
	size := opts.CacheSize
	if size < 1 {
		size = 1
	}
	return &Store{
		fetcher: fetcher,
		cache:   expirable.NewLRU[string, *domain.Catalog](size, nil, opts.CacheTTL),
		bus:     opts.Bus,
		log:     opts.Logger.With().Str("component", "catalog").Logger(),
	}
}

// Cached returns a previously loaded catalog for source, if still fresh
func (s *Store) Cached(source string) (*domain.Catalog, bool) {
	return s.cache.Get(source)
}

// Invalidate drops source from the cache
func (s *Store) Invalidate(source string) {
	s.cache.Remove(source)
}

// Load fetches and decodes source. It makes a single attempt; concurrent
// loads of the same source share one fetch. The shared fetch outlives a
// cancelled caller so the callers still waiting on it get its result. A
// successful result replaces the cached catalog as a whole.
func (s *Store) Load(ctx context.Context, source string, kind domain.Kind) (*domain.Catalog, error) {
	if source == "" {
		return nil, &FetchError{Source: source, Err: errors.New("no data resource configured")}
	}

	flight := context.WithoutCancel(ctx)
	ch := s.group.DoChan(string(kind)+"|"+source, func() (any, error) {
		return s.load(flight, source, kind)
	})

	select {
	case <-ctx.Done():
		return nil, &FetchError{Source: source, Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Catalog), nil
	}
}

func (s *Store) load(ctx context.Context, source string, kind domain.Kind) (*domain.Catalog, error) {
	start := time.Now()

	data, err := s.fetcher.Fetch(ctx, source)
	if err != nil {
		s.fail(source, err)
		return nil, err
	}

	cat, err := Decode(source, data, kind)
	if err != nil {
		s.fail(source, err)
		return nil, err
	}

	s.cache.Add(source, cat)

	s.log.Info().
		Str("source", source).
		Str("kind", string(cat.Kind)).
		Int("facets", len(cat.Facets)).
		Dur("took", time.Since(start)).
		Msg("catalog loaded")

	if s.bus != nil {
		s.bus.Publish(domain.CatalogLoadedEvent{
			Source: source,
			Kind:   cat.Kind,
			Facets: len(cat.Facets),
			Items:  cat.ItemCount(),
		})
	}
	return cat, nil
}

func (s *Store) fail(source string, err error) {
	if errors.Is(err, context.Canceled) {
		s.log.Debug().Str("source", source).Msg("catalog load cancelled")
		return
	}
	s.log.Error().Err(err).Str("source", source).Msg("catalog load failed")
	if s.bus != nil {
		s.bus.Publish(domain.CatalogFailedEvent{Source: source, Err: err})
	}
}

// Prefetch warms the cache for every non-empty source. It returns the first
// error but still attempts all sources.
func (s *Store) Prefetch(ctx context.Context, sources map[domain.Kind]string) error {
	g := new(errgroup.Group)
	for kind, source := range sources {
		if source == "" {
			continue
		}
		g.Go(func() error {
			if _, err := s.Load(ctx, source, kind); err != nil {
				return fmt.Errorf("prefetch %s: %w", kind, err)
			}
			return nil
		})
	}
	return g.Wait()
}
