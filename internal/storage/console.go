package storage

import (
	"context"
	"fmt"

	"github.com/tradeforge/go-opensea/pkg/types"
	"go.uber.org/zap"
)

// ConsoleStorage implements Storage by pretty-printing to console.
type ConsoleStorage struct {
	logger *zap.Logger
}

// NewConsoleStorage creates a new console storage.
func NewConsoleStorage(logger *zap.Logger) *ConsoleStorage {
	logger.Info("console-storage-initialized")
	return &ConsoleStorage{
		logger: logger,
	}
}

// RecordListing pretty-prints a discovered listing to console.
func (c *ConsoleStorage) RecordListing(ctx context.Context, order *types.Order) error {
	fmt.Println("\n" + "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("🖼️  NEW LISTING DISCOVERED\n")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("Hash:     %s\n", order.Hash())
	fmt.Printf("Type:     %s / %s\n", order.OrderType, order.Side)
	fmt.Printf("Created:  %s\n", order.CreatedDate)
	if order.ClosingDate != nil {
		fmt.Printf("Closes:   %s\n", *order.ClosingDate)
	} else {
		fmt.Printf("Closes:   open-ended\n")
	}
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("💰 PRICE\n")
	fmt.Printf("  %s ETH (%s wei)\n", types.WeiToEth(order.CurrentPrice), order.CurrentPrice.String())
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("Maker:     %s\n", order.Maker.Address)
	fmt.Printf("Remaining: %d\n", order.RemainingQuantity)
	if order.IsFillable() {
		fmt.Printf("✅ Fillable\n")
	} else {
		fmt.Printf("❌ Not fillable\n")
	}
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	return nil
}

// Close is a no-op for console storage.
func (c *ConsoleStorage) Close() error {
	c.logger.Info("closing-console-storage")
	return nil
}
