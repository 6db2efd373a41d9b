package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override the configured API key, checked
// in order.
const (
	EnvAPIKey         = "PRESSCAN_API_KEY"
	EnvFallbackAPIKey = "ZEROENTROPY_API_KEY"
)

// Defaults applied when the config file omits a value.
const (
	DefaultCollection        = "articles"
	DefaultReranker          = "zerank-1-small"
	DefaultTimeoutSeconds    = 60
	DefaultRequestsPerSecond = 2.0
)

// Config is the resolved application configuration.
type Config struct {
	// API holds index-service connection settings.
	API APIConfig `toml:"api"`

	// Scrape holds feed-ingestion settings.
	Scrape ScrapeConfig `toml:"scrape"`

	// Search holds query-side settings.
	Search SearchConfig `toml:"search"`

	// DataDir is where the run ledger and archives are stored.
	// Empty means ~/.presscan/data.
	DataDir string `toml:"data_dir"`
}

// APIConfig configures the index-service client.
type APIConfig struct {
	// Key authenticates against the index service. The PRESSCAN_API_KEY
	// and ZEROENTROPY_API_KEY environment variables take precedence.
	Key string `toml:"key"`

	// BaseURL overrides the service endpoint, empty for the default.
	BaseURL string `toml:"base_url"`

	// TimeoutSeconds bounds each API request.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// ScrapeConfig configures feed fetching and ingestion.
type ScrapeConfig struct {
	// Feeds is the list of RSS feed URLs to scrape.
	Feeds []string `toml:"feeds"`

	// Collection is the index-service collection to write to.
	Collection string `toml:"collection"`

	// RequestsPerSecond caps the outbound feed-fetch rate.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// SearchConfig configures query behaviour.
type SearchConfig struct {
	// Reranker is the rerank model used by advanced search.
	Reranker string `toml:"reranker"`
}

// Timeout returns the configured API timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Load reads configuration from path. An empty path resolves to
// ~/.presscan/config.toml; a missing file yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".presscan", "config.toml")
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	fillDefaults(cfg)
	applyEnv(cfg)
	return cfg, nil
}

// Save writes the configuration to path with restricted permissions,
// creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".presscan", "config.toml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		API: APIConfig{
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Scrape: ScrapeConfig{
			Collection:        DefaultCollection,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		Search: SearchConfig{
			Reranker: DefaultReranker,
		},
	}
}

// fillDefaults restores defaults for values the file set to zero.
func fillDefaults(cfg *Config) {
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Scrape.Collection == "" {
		cfg.Scrape.Collection = DefaultCollection
	}
	if cfg.Scrape.RequestsPerSecond <= 0 {
		cfg.Scrape.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Search.Reranker == "" {
		cfg.Search.Reranker = DefaultReranker
	}
}

func applyEnv(cfg *Config) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.API.Key = key
		return
	}
	if key := os.Getenv(EnvFallbackAPIKey); key != "" {
		cfg.API.Key = key
	}
}
