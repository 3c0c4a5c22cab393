package app

import (
	"github.com/tradeforge/go-opensea/pkg/types"
	"go.uber.org/zap"
)

// handleNewListings reports and records listings as the watcher discovers them.
func (a *App) handleNewListings() {
	defer a.wg.Done()

	for {
		select {
		case <-a.ctx.Done():
			return
		case order, ok := <-a.watcher.NewOrdersChan():
			if !ok {
				return
			}

			a.reportListing(order)

			if err := a.listingStorage.RecordListing(a.ctx, order); err != nil {
				a.logger.Error("failed-to-record-listing",
					zap.String("order-hash", order.Hash()),
					zap.Error(err))
			}
		}
	}
}

// reportListing logs one discovered listing with its price in ether.
func (a *App) reportListing(order *types.Order) {
	a.logger.Info("listing-discovered",
		zap.String("order-hash", order.Hash()),
		zap.String("price-eth", types.WeiToEth(order.CurrentPrice).String()),
		zap.String("maker", order.Maker.Address),
		zap.String("order-type", string(order.OrderType)),
		zap.Uint64("remaining-quantity", order.RemainingQuantity))
}
