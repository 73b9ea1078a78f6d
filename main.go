package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"showroom/internal/catalog"
	"showroom/internal/config"
	"showroom/internal/domain"
	"showroom/internal/eventbus"
	"showroom/internal/ui"
	"showroom/internal/ui/services/urlstate"
)

func main() {
	fs := pflag.NewFlagSet(config.AppName, pflag.ContinueOnError)
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\nBrowse the product, photo and project catalogs in the terminal.\n\nFlags:\n", config.AppName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	config.LoadEnvFile()

	cfg, err := config.NewLoader(nil).Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := setupLogger(cfg.Log)
	defer closeLog()
	logger.Info().Str("config", cfg.Path).Msg("starting")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New(logger)
	defer bus.Close()

	store := catalog.NewStore(catalog.NewRoutingFetcher(cfg.Catalog.Timeout), catalog.Options{
		CacheSize: cfg.Catalog.CacheSize,
		CacheTTL:  cfg.Catalog.CacheTTL,
		Bus:       bus,
		Logger:    logger,
	})

	sources := map[domain.Kind]string{
		domain.KindProducts: cfg.Catalog.Products,
		domain.KindPhotos:   cfg.Catalog.Photos,
		domain.KindProjects: cfg.Catalog.Projects,
	}

	// an edited file must not come back from the cache on the next mount
	unsubscribe := bus.Subscribe(eventbus.EventCatalogChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CatalogChangedEvent); ok {
			store.Invalidate(event.Source)
		}
	})
	defer unsubscribe()

	if cfg.Catalog.Watch {
		startWatcher(ctx, bus, logger, sources)
	}

	// Warm the other pages in the background
	go func() {
		if err := store.Prefetch(ctx, sources); err != nil {
			logger.Warn().Err(err).Msg("prefetch incomplete")
		}
	}()

	model, err := ui.Run(ui.Options{
		Config: cfg,
		Store:  store,
		Bus:    bus,
		Logger: logger,
		Start:  startAddress(cfg, logger),
	}, tea.WithAltScreen(), tea.WithContext(ctx))
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error().Err(err).Msg("error running program")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	if model != nil {
		logger.Info().Str("address", model.Address()).Msg("exited")
	}
}

// setupLogger writes plain console-formatted logs to the configured file.
// Without a file nothing is logged, the terminal belongs to the UI.
func setupLogger(lc config.LogConfig) (zerolog.Logger, func()) {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil || lc.Level == "" {
		level = zerolog.InfoLevel
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if lc.File != "" {
		logFile, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		} else {
			out = zerolog.ConsoleWriter{Out: logFile, NoColor: true}
			closeFn = func() { _ = logFile.Close() }
		}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closeFn
}

// startWatcher reloads pages when their local catalog files change
func startWatcher(ctx context.Context, bus eventbus.EventBus, logger zerolog.Logger, sources map[domain.Kind]string) {
	w, err := catalog.NewWatcher(bus, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("catalog files will not be watched")
		return
	}
	for _, source := range sources {
		if err := w.Add(source); err != nil {
			logger.Warn().Err(err).Str("source", source).Msg("not watching")
		}
	}
	go func() {
		defer w.Close()
		w.Run(ctx)
	}()
}

// startAddress picks the address to open: --url first, then the view saved
// by the previous run.
func startAddress(cfg *config.Config, logger zerolog.Logger) *url.URL {
	raw := cfg.URL
	if raw == "" && cfg.UI.RestoreLastView {
		vs, err := config.LoadViewState(cfg.UI.StateFile)
		if err != nil {
			logger.Warn().Err(err).Msg("ignoring saved view")
		} else if vs != nil {
			raw = vs.Address
		}
	}
	if raw == "" {
		return nil
	}

	u, err := urlstate.Parse(raw)
	if err != nil {
		logger.Warn().Err(err).Msg("ignoring start address")
		return nil
	}
	return u
}
