// Package watch polls the seaport listings endpoint and emits orders that
// have not been seen before.
package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tradeforge/go-opensea/internal/circuitbreaker"
	"github.com/tradeforge/go-opensea/pkg/cache"
	"github.com/tradeforge/go-opensea/pkg/types"
)

const maxPageLimit = 50

// ListingSource is the slice of the API client the watcher needs.
type ListingSource interface {
	RetrieveListings(ctx context.Context, req *types.RetrieveListingsRequest) (*types.RetrieveListingsResponse, error)
}

// Service discovers new listings by polling the orders API.
type Service struct {
	source       ListingSource
	cache        cache.Cache
	breaker      *circuitbreaker.PollCircuitBreaker
	pollInterval time.Duration
	pageLimit    int
	contract     *types.Address // If set, only watch this NFT contract
	logger       *zap.Logger
	seen         map[string]struct{}
	mu           sync.RWMutex
	newOrdersCh  chan *types.Order
}

// Config holds watch service configuration.
type Config struct {
	Source       ListingSource
	Cache        cache.Cache
	Breaker      *circuitbreaker.PollCircuitBreaker // Optional: suspends polling while the API keeps failing
	PollInterval time.Duration
	PageLimit    int
	Contract     *types.Address // Optional: restrict the watch to one contract
	Logger       *zap.Logger
}

// New creates a new watch service.
func New(cfg *Config) *Service {
	pageLimit := cfg.PageLimit
	if pageLimit < 1 || pageLimit > maxPageLimit {
		pageLimit = maxPageLimit
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source:       cfg.Source,
		cache:        cfg.Cache,
		breaker:      cfg.Breaker,
		pollInterval: cfg.PollInterval,
		pageLimit:    pageLimit,
		contract:     cfg.Contract,
		logger:       logger,
		seen:         make(map[string]struct{}),
		newOrdersCh:  make(chan *types.Order, 100),
	}
}

// Run starts the polling loop. It returns when ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("watch-service-starting",
		zap.Duration("poll-interval", s.pollInterval),
		zap.Int("page-limit", s.pageLimit))

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	// Initial poll
	err := s.pollGuarded(ctx)
	if err != nil {
		s.logger.Error("initial-poll-failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("watch-service-stopping")
			close(s.newOrdersCh)
			return ctx.Err()
		case <-ticker.C:
			err := s.pollGuarded(ctx)
			if err != nil {
				s.logger.Error("poll-failed", zap.Error(err))
			}
		}
	}
}

// pollGuarded runs one poll unless the breaker is holding polls back, and
// feeds the outcome into the breaker.
func (s *Service) pollGuarded(ctx context.Context) error {
	if s.breaker != nil && !s.breaker.Allow() {
		s.logger.Debug("poll-suspended")
		return nil
	}

	err := s.poll(ctx)
	if s.breaker == nil {
		return err
	}

	if err != nil {
		s.breaker.RecordFailure(err)
	} else {
		s.breaker.RecordSuccess()
	}
	return err
}

// poll fetches the newest listings and identifies unseen ones.
func (s *Service) poll(ctx context.Context) error {
	start := time.Now()
	defer func() {
		PollDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	limit := s.pageLimit
	req := &types.RetrieveListingsRequest{
		AssetContractAddress: s.contract,
		Limit:                &limit,
		OrderBy:              types.OrderByCreatedDate,
		OrderDirection:       types.DirectionDesc,
	}

	resp, err := s.source.RetrieveListings(ctx, req)
	if err != nil {
		PollErrorsTotal.Inc()
		return fmt.Errorf("retrieve listings: %w", err)
	}

	OrdersSeenTotal.Add(float64(len(resp.Orders)))

	newOrders := s.identifyNewOrders(resp.Orders)

	// Cache and send new orders to channel (non-blocking)
	for i := range newOrders {
		s.cacheOrder(newOrders[i])

		select {
		case s.newOrdersCh <- newOrders[i]:
			NewOrdersTotal.Inc()
			s.logger.Info("new-listing-discovered",
				zap.String("order-hash", newOrders[i].Hash()),
				zap.String("price", newOrders[i].CurrentPrice.String()))
		default:
			s.logger.Warn("new-orders-channel-full",
				zap.String("order-hash", newOrders[i].Hash()))
		}
	}

	s.logger.Debug("poll-complete",
		zap.Int("total-orders", len(resp.Orders)),
		zap.Int("new-orders", len(newOrders)),
		zap.Duration("duration", time.Since(start)))

	return nil
}

// identifyNewOrders returns fillable orders whose hashes have not been
// emitted before.
func (s *Service) identifyNewOrders(orders []types.Order) []*types.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var newOrders []*types.Order

	for i := range orders {
		order := &orders[i]

		hash := order.Hash()
		if hash == "" {
			s.logger.Debug("skipping-order-without-hash")
			continue
		}
		if _, exists := s.seen[hash]; exists {
			continue
		}
		if !order.IsFillable() {
			s.logger.Debug("skipping-unfillable-order",
				zap.String("order-hash", hash))
			continue
		}

		s.seen[hash] = struct{}{}
		newOrders = append(newOrders, order)
	}

	return newOrders
}

// NewOrdersChan returns the channel for receiving new orders.
func (s *Service) NewOrdersChan() <-chan *types.Order {
	return s.newOrdersCh
}

// SeenCount reports how many distinct order hashes have been emitted.
func (s *Service) SeenCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}

// cacheOrder stores an order in the cache, keyed by its hash. The TTL is
// bounded by the order's own expiration when it is in the future.
func (s *Service) cacheOrder(order *types.Order) {
	if s.cache == nil {
		return
	}

	ttl := 24 * time.Hour
	if order.ExpirationTime > 0 {
		if until := time.Until(time.Unix(order.ExpirationTime, 0)); until > 0 && until < ttl {
			ttl = until
		}
	}

	success := s.cache.Set(order.Hash(), order, ttl)
	if !success {
		s.logger.Warn("failed-to-cache-order", zap.String("order-hash", order.Hash()))
	}
}

// GetOrder retrieves a previously seen order from cache, or nil.
func (s *Service) GetOrder(hash string) *types.Order {
	if s.cache == nil {
		return nil
	}

	value, found := s.cache.Get(hash)
	if !found {
		return nil
	}

	order, ok := value.(*types.Order)
	if !ok {
		s.logger.Warn("invalid-order-type-in-cache",
			zap.String("order-hash", hash))
		return nil
	}

	return order
}
