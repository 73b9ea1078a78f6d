package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"showroom/internal/domain"
)

// Watcher publishes CatalogChangedEvent when a local catalog file is written
type Watcher struct {
	fw  *fsnotify.Watcher
	bus Publisher
	log zerolog.Logger

	mu      sync.Mutex
	sources map[string]string // absolute path -> configured source
	dirs    map[string]bool
}

// NewWatcher creates a watcher publishing to bus
func NewWatcher(bus Publisher, logger zerolog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		fw:      fw,
		bus:     bus,
		log:     logger.With().Str("component", "watcher").Logger(),
		sources: map[string]string{},
		dirs:    map[string]bool{},
	}, nil
}

// Add watches a local catalog source. Remote sources are ignored.
// The parent directory is watched so files replaced by editors are still seen.
func (w *Watcher) Add(source string) error {
	if source == "" || IsRemote(source) {
		return nil
	}
	abs, err := filepath.Abs(strings.TrimPrefix(source, "file://"))
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", source, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		if err := w.fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.sources[abs] = source
	return nil
}

// Run forwards file events until ctx is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.mu.Lock()
			source, watched := w.sources[filepath.Clean(event.Name)]
			w.mu.Unlock()
			if !watched {
				continue
			}
			w.log.Debug().Str("source", source).Str("op", event.Op.String()).Msg("catalog file changed")
			w.bus.Publish(domain.CatalogChangedEvent{Source: source})
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.fw.Close()
}
