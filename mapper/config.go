package mapper

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/syssam/graphocean/dialect"
)

// Config holds the mapper settings.
type Config struct {
	// Space is the graph space statements run against.
	Space string `yaml:"space" env:"GRAPH_SPACE"`

	// BatchSize is the number of statements sent per round trip.
	BatchSize int `yaml:"batch_size" env:"GRAPH_BATCH_SIZE"`

	// StatsPollInterval is the wait between two status checks of a
	// statistics job.
	StatsPollInterval time.Duration `yaml:"stats_poll_interval" env:"GRAPH_STATS_POLL_INTERVAL"`

	// StatsTimeout bounds the wait for a statistics job.
	StatsTimeout time.Duration `yaml:"stats_timeout" env:"GRAPH_STATS_TIMEOUT"`

	// Charset string cells are decoded with.
	Charset string `yaml:"charset" env:"GRAPH_CHARSET"`

	// CacheTTL is the lifetime of cached query results, 0 for no expiry.
	CacheTTL time.Duration `yaml:"cache_ttl" env:"GRAPH_CACHE_TTL"`
}

// Default settings.
const (
	DefaultBatchSize         = 255
	DefaultStatsPollInterval = 10 * time.Second
	DefaultStatsTimeout      = 10 * time.Minute
)

// DefaultConfig returns the default settings. Space is left empty.
func DefaultConfig() Config {
	return Config{
		BatchSize:         DefaultBatchSize,
		StatsPollInterval: DefaultStatsPollInterval,
		StatsTimeout:      DefaultStatsTimeout,
		Charset:           dialect.UTF8.Name(),
	}
}

// LoadConfig returns the default settings overlaid with the YAML file at
// path, if it exists, and then with the environment.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("mapper: read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("mapper: parse config %s: %w", path, err)
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("mapper: parse environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Space == "":
		return errors.New("mapper: space is required")
	case c.BatchSize <= 0:
		return fmt.Errorf("mapper: batch size must be positive, got %d", c.BatchSize)
	case c.StatsPollInterval <= 0:
		return fmt.Errorf("mapper: stats poll interval must be positive, got %s", c.StatsPollInterval)
	case c.StatsTimeout <= 0:
		return fmt.Errorf("mapper: stats timeout must be positive, got %s", c.StatsTimeout)
	case c.CacheTTL < 0:
		return fmt.Errorf("mapper: cache ttl must not be negative, got %s", c.CacheTTL)
	}
	if _, err := dialect.LookupCharset(c.Charset); err != nil {
		return fmt.Errorf("mapper: %w", err)
	}
	return nil
}
