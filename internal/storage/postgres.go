package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/tradeforge/go-opensea/pkg/types"
	"go.uber.org/zap"
)

// PostgresStorage implements Storage using PostgreSQL.
type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	Logger   *zap.Logger
}

// NewPostgresStorage creates a new PostgreSQL storage.
func NewPostgresStorage(cfg *PostgresConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Test connection
	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	cfg.Logger.Info("postgres-storage-connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database))

	return &PostgresStorage{
		db:     db,
		logger: cfg.Logger,
	}, nil
}

// RecordListing stores a discovered listing in PostgreSQL. Re-discovered
// hashes are ignored, the watcher's in-memory seen set does not survive
// restarts.
func (p *PostgresStorage) RecordListing(ctx context.Context, order *types.Order) error {
	query := `
		INSERT INTO listings (
			order_hash, protocol_address, side, order_type, price_wei,
			maker, remaining_quantity, listing_time, expiration_time,
			created_date, closing_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (order_hash) DO NOTHING
	`

	_, err := p.db.ExecContext(ctx, query,
		order.Hash(),
		order.ProtocolAddress,
		string(order.Side),
		string(order.OrderType),
		order.CurrentPrice.String(),
		order.Maker.Address,
		order.RemainingQuantity,
		order.ListingTime,
		order.ExpirationTime,
		order.CreatedDate,
		order.ClosingDate,
	)

	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	p.logger.Debug("listing-stored",
		zap.String("order-hash", order.Hash()),
		zap.String("price-wei", order.CurrentPrice.String()))

	return nil
}

// Close closes the database connection.
func (p *PostgresStorage) Close() error {
	p.logger.Info("closing-postgres-storage")
	return p.db.Close()
}
