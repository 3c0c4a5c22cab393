package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tradeforge/go-opensea/internal/circuitbreaker"
	"github.com/tradeforge/go-opensea/internal/storage"
	"github.com/tradeforge/go-opensea/internal/watch"
	"github.com/tradeforge/go-opensea/pkg/cache"
	"github.com/tradeforge/go-opensea/pkg/config"
	"github.com/tradeforge/go-opensea/pkg/healthprobe"
	"github.com/tradeforge/go-opensea/pkg/httpserver"
	"github.com/tradeforge/go-opensea/pkg/opensea"
	"github.com/tradeforge/go-opensea/pkg/types"
	"go.uber.org/zap"
)

// New creates a new application instance.
func New(cfg *config.Config, logger *zap.Logger, opts *Options) (*App, error) {
	if opts == nil {
		opts = &Options{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	healthChecker := setupHealthChecker()

	// Setup cache
	orderCache, err := setupCache(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup cache: %w", err)
	}

	// Setup API client
	client, err := setupClient(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup client: %w", err)
	}
	healthChecker.MarkReady("client")

	// Setup listing watcher
	watcher, err := setupWatcher(cfg, logger, client, orderCache, opts)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup watcher: %w", err)
	}

	// Setup storage
	listingStorage, err := setupStorage(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup storage: %w", err)
	}

	// Setup HTTP server (needs the watcher for the listing endpoint)
	httpServer := setupHTTPServer(cfg, logger, healthChecker, watcher)

	return &App{
		cfg:            cfg,
		logger:         logger,
		healthChecker:  healthChecker,
		httpServer:     httpServer,
		client:         client,
		orderCache:     orderCache,
		watcher:        watcher,
		listingStorage: listingStorage,
		ctx:            ctx,
		cancel:         cancel,
	}, nil
}

func setupHealthChecker() *healthprobe.HealthChecker {
	return healthprobe.New("client", "watcher")
}

func setupCache(cfg *config.Config, logger *zap.Logger) (cache.Cache, error) {
	return cache.NewRistrettoCache(&cache.RistrettoConfig{
		NumCounters: cfg.CacheMaxEntries * 10, // 10x expected max items
		MaxCost:     cfg.CacheMaxEntries,      // Maximum entries in cache
		BufferItems: 64,                       // Buffer size for Get operations
		Logger:      logger,
	})
}

func setupClient(cfg *config.Config, logger *zap.Logger) (*opensea.Client, error) {
	chain, err := cfg.Chain()
	if err != nil {
		return nil, err
	}

	return opensea.New(opensea.Config{
		APIKey:     cfg.APIKey,
		Chain:      chain,
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Logger:     logger,
	})
}

func setupWatcher(
	cfg *config.Config,
	logger *zap.Logger,
	client *opensea.Client,
	orderCache cache.Cache,
	opts *Options,
) (*watch.Service, error) {
	contract, err := cfg.Contract()
	if err != nil {
		return nil, err
	}

	// A contract flag overrides the configured one
	if opts.Contract != "" {
		addr, err := types.ParseAddress(opts.Contract)
		if err != nil {
			return nil, fmt.Errorf("parse contract flag: %w", err)
		}
		contract = &addr
	}

	breaker, err := circuitbreaker.New(&circuitbreaker.Config{
		FailureThreshold: cfg.BreakerThreshold,
		Cooldown:         cfg.BreakerCooldown,
		Logger:           logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create circuit breaker: %w", err)
	}

	return watch.New(&watch.Config{
		Source:       client,
		Cache:        orderCache,
		PollInterval: cfg.WatchPollInterval,
		PageLimit:    cfg.WatchPageLimit,
		Contract:     contract,
		Breaker:      breaker,
		Logger:       logger,
	}), nil
}

func setupStorage(cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	if cfg.StorageMode == "postgres" {
		pgStorage, err := storage.NewPostgresStorage(&storage.PostgresConfig{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPass,
			Database: cfg.PostgresDB,
			SSLMode:  cfg.PostgresSSL,
			Logger:   logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create postgres storage: %w", err)
		}
		return pgStorage, nil
	}

	return storage.NewConsoleStorage(logger), nil
}

func setupHTTPServer(
	cfg *config.Config,
	logger *zap.Logger,
	healthChecker *healthprobe.HealthChecker,
	watcher *watch.Service,
) *httpserver.Server {
	return httpserver.New(&httpserver.Config{
		Port:          cfg.HTTPPort,
		Logger:        logger,
		HealthChecker: healthChecker,
		Watcher:       watcher,
	})
}
