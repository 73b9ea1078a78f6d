package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"showroom/internal/domain"
	"showroom/internal/eventbus"
)

const (
	AppName     = "showroom"
	EnvFileName = "config.env"
	EnvPrefix   = "SHOWROOM"
)

// Config represents the application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Search  SearchConfig  `mapstructure:"search"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`

	// URL is an address to open on start, e.g. showroom:///photos?category=Epoxy
	URL string `mapstructure:"url"`

	// Path is the config file that was read, empty when running on defaults
	Path string `mapstructure:"-"`
}

// CatalogConfig holds the data resources behind each page
type CatalogConfig struct {
	Products  string        `mapstructure:"products"`
	Photos    string        `mapstructure:"photos"`
	Projects  string        `mapstructure:"projects"`
	Timeout   time.Duration `mapstructure:"timeout"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
	CacheSize int           `mapstructure:"cache_size"`
	Watch     bool          `mapstructure:"watch"`
}

// Source returns the configured resource for a catalog kind
func (c CatalogConfig) Source(kind domain.Kind) string {
	switch kind {
	case domain.KindProducts:
		return c.Products
	case domain.KindPhotos:
		return c.Photos
	case domain.KindProjects:
		return c.Projects
	}
	return ""
}

// SearchConfig holds search box settings
type SearchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// UIConfig represents UI-related configuration
type UIConfig struct {
	SkeletonRows    int    `mapstructure:"skeleton_rows"`
	RestoreLastView bool   `mapstructure:"restore_last_view"`
	StateFile       string `mapstructure:"state_file"`
}

// LogConfig controls the log file
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// RegisterFlags adds the command line flags understood by Load
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a showroom.toml config file")
	fs.String("products", "", "Products catalog (file path or http(s) URL)")
	fs.String("photos", "", "Photos catalog (file path or http(s) URL)")
	fs.String("projects", "", "Projects catalog (file path or http(s) URL)")
	fs.String("url", "", "Address to open, e.g. showroom:///products?category=Flooring")
	fs.String("log-file", "", "Log file path")
	fs.Duration("debounce", 0, "Search debounce window")
}

// flag name -> config key
var flagKeys = map[string]string{
	"products": "catalog.products",
	"photos":   "catalog.photos",
	"projects": "catalog.projects",
	"url":      "url",
	"log-file": "log.file",
	"debounce": "search.debounce",
}

// Loader reads configuration from defaults, config file, environment and flags
type Loader struct {
	bus eventbus.EventBus
	v   *viper.Viper
}

// NewLoader creates a loader. bus may be nil.
func NewLoader(bus eventbus.EventBus) *Loader {
	return &Loader{bus: bus, v: viper.New()}
}

// LoadEnvFile loads environment variables from config.env in the working
// directory and in the user's config directory. Errors are ignored since the
// files may not exist.
func LoadEnvFile() {
	_ = godotenv.Load(EnvFileName)
	if dir, err := appConfigDir(); err == nil {
		_ = godotenv.Load(filepath.Join(dir, EnvFileName))
	}
}

// Load resolves the configuration. Only flags that were set on the command
// line override file and environment values.
func (l *Loader) Load(fs *pflag.FlagSet) (*Config, error) {
	v := l.v
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	explicit := ""
	if fs != nil {
		if f := fs.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := appConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Path = v.ConfigFileUsed()

	if cfg.UI.StateFile == "" {
		cfg.UI.StateFile = defaultStateFile()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if l.bus != nil {
		l.bus.Publish(eventbus.ConfigLoadedEvent{Path: cfg.Path})
	}

	return &cfg, nil
}

// Validate checks values that would otherwise fail later in confusing ways
func (c *Config) Validate() error {
	if c.Search.Debounce <= 0 {
		return fmt.Errorf("search.debounce must be positive, got %s", c.Search.Debounce)
	}
	if c.UI.SkeletonRows < 1 {
		return fmt.Errorf("ui.skeleton_rows must be at least 1, got %d", c.UI.SkeletonRows)
	}
	if c.Catalog.CacheSize < 1 {
		return fmt.Errorf("catalog.cache_size must be at least 1, got %d", c.Catalog.CacheSize)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout must be positive, got %s", c.Catalog.Timeout)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Products:  "data/products.json",
			Photos:    "data/photos.json",
			Projects:  "data/projects.json",
			Timeout:   10 * time.Second,
			CacheTTL:  5 * time.Minute,
			CacheSize: 8,
			Watch:     true,
		},
		Search: SearchConfig{Debounce: 275 * time.Millisecond},
		UI: UIConfig{
			SkeletonRows:    6,
			RestoreLastView: true,
			StateFile:       defaultStateFile(),
		},
		Log: LogConfig{File: "showroom.log", Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("catalog.products", d.Catalog.Products)
	v.SetDefault("catalog.photos", d.Catalog.Photos)
	v.SetDefault("catalog.projects", d.Catalog.Projects)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout)
	v.SetDefault("catalog.cache_ttl", d.Catalog.CacheTTL)
	v.SetDefault("catalog.cache_size", d.Catalog.CacheSize)
	v.SetDefault("catalog.watch", d.Catalog.Watch)

	v.SetDefault("search.debounce", d.Search.Debounce)

	v.SetDefault("ui.skeleton_rows", d.UI.SkeletonRows)
	v.SetDefault("ui.restore_last_view", d.UI.RestoreLastView)
	v.SetDefault("ui.state_file", "")

	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)

	v.SetDefault("url", "")
}

func appConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

func defaultStateFile() string {
	dir, err := appConfigDir()
	if err != nil {
		return ".showroom-state.toml"
	}
	return filepath.Join(dir, "state.toml")
}
