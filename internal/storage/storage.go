// Package storage persists listings discovered by the watcher.
package storage

import (
	"context"

	"github.com/tradeforge/go-opensea/pkg/types"
)

// Storage is the interface for recording discovered listings.
type Storage interface {
	// RecordListing stores one discovered listing.
	RecordListing(ctx context.Context, order *types.Order) error

	// Close closes the storage connection.
	Close() error
}
