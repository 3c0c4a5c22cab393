// Package app wires the OpenSea client, the listing watcher, the order
// cache and the HTTP server into one runnable service.
package app

import (
	"context"
	"sync"

	"github.com/tradeforge/go-opensea/internal/storage"
	"github.com/tradeforge/go-opensea/internal/watch"
	"github.com/tradeforge/go-opensea/pkg/cache"
	"github.com/tradeforge/go-opensea/pkg/config"
	"github.com/tradeforge/go-opensea/pkg/healthprobe"
	"github.com/tradeforge/go-opensea/pkg/httpserver"
	"github.com/tradeforge/go-opensea/pkg/opensea"
	"go.uber.org/zap"
)

// App is the main application orchestrator.
type App struct {
	cfg            *config.Config
	logger         *zap.Logger
	healthChecker  *healthprobe.HealthChecker
	httpServer     *httpserver.Server
	client         *opensea.Client
	orderCache     cache.Cache
	watcher        *watch.Service
	listingStorage storage.Storage
	ctx            context.Context
	cancel         context.CancelFunc
	wg             sync.WaitGroup
}

// Options holds application options.
type Options struct {
	Contract string // For debugging: watch a single NFT contract
}
