// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kelseyhightower/envconfig"

	"github.com/tradeforge/go-opensea/pkg/types"
)

const maxPageLimit = 50

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	// OpenSea API
	APIKey         string        `envconfig:"OPENSEA_API_KEY"`
	ChainName      string        `envconfig:"OPENSEA_CHAIN" default:"ethereum"`
	BaseURL        string        `envconfig:"OPENSEA_BASE_URL"`
	RequestTimeout time.Duration `envconfig:"OPENSEA_REQUEST_TIMEOUT" default:"30s"`

	// Listing watcher
	WatchPollInterval time.Duration `envconfig:"WATCH_POLL_INTERVAL" default:"30s"`
	WatchPageLimit    int           `envconfig:"WATCH_PAGE_LIMIT" default:"50"`
	WatchContract     string        `envconfig:"WATCH_CONTRACT"`

	// Poll circuit breaker
	BreakerThreshold int           `envconfig:"WATCH_BREAKER_THRESHOLD" default:"5"`
	BreakerCooldown  time.Duration `envconfig:"WATCH_BREAKER_COOLDOWN" default:"2m"`

	// Cache
	CacheMaxEntries int64 `envconfig:"CACHE_MAX_ENTRIES" default:"10000"`

	// Storage
	StorageMode  string `envconfig:"STORAGE_MODE" default:"console"` // "postgres" or "console"
	PostgresHost string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort string `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser string `envconfig:"POSTGRES_USER" default:"opensea"`
	PostgresPass string `envconfig:"POSTGRES_PASSWORD"`
	PostgresDB   string `envconfig:"POSTGRES_DB" default:"opensea"`
	PostgresSSL  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.HTTPPort, validation.Required),
		validation.Field(&c.ChainName, validation.Required, validation.By(knownChain)),
		validation.Field(&c.RequestTimeout, validation.Required, validation.Min(1)),
		validation.Field(&c.WatchPollInterval, validation.Required, validation.Min(1)),
		validation.Field(&c.WatchPageLimit, validation.By(pageLimitInRange)),
		validation.Field(&c.WatchContract, validation.By(addressOrEmpty)),
		validation.Field(&c.BreakerThreshold, validation.Required, validation.Min(1)),
		validation.Field(&c.BreakerCooldown, validation.Required, validation.Min(1)),
		validation.Field(&c.CacheMaxEntries, validation.Required, validation.Min(1)),
		validation.Field(&c.StorageMode, validation.Required, validation.In("console", "postgres")),
	)
}

// Chain resolves the configured chain name, accepting aliases such as "polygon".
func (c *Config) Chain() (types.Chain, error) {
	return types.ParseChain(c.ChainName)
}

// Contract resolves the optional watch contract filter. A nil result means
// the watcher polls listings for every collection on the chain.
func (c *Config) Contract() (*types.Address, error) {
	if c.WatchContract == "" {
		return nil, nil
	}

	addr, err := types.ParseAddress(c.WatchContract)
	if err != nil {
		return nil, fmt.Errorf("parse watch contract: %w", err)
	}

	return &addr, nil
}

func knownChain(value interface{}) error {
	s, _ := value.(string)
	_, err := types.ParseChain(s)
	return err
}

func pageLimitInRange(value interface{}) error {
	n, _ := value.(int)
	if n < 1 || n > maxPageLimit {
		return fmt.Errorf("must be between 1 and %d", maxPageLimit)
	}
	return nil
}

func addressOrEmpty(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	_, err := types.ParseAddress(s)
	return err
}
