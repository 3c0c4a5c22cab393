package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tradeforge/go-opensea/internal/testutil"
	"github.com/tradeforge/go-opensea/pkg/opensea"
	"github.com/tradeforge/go-opensea/pkg/types"
	"go.uber.org/zap/zaptest"
)

// TestIntegration_ClientEndpoints drives every API operation against the
// fake server and checks the decoded results.
func TestIntegration_ClientEndpoints(t *testing.T) {
	hash := "0x541a9eb3962494caffeda36a495cc978c7ecc21c6b714aaabc678187d3da9ac7"

	mockAPI := testutil.NewMockOpenSeaAPI([]types.Order{*testutil.CreateTestOrder(hash)})
	defer mockAPI.Close()

	mockAPI.SetListings("cool-cats", []types.ItemListing{testutil.CreateTestItemListing(hash)})
	mockAPI.SetCollection(testutil.CreateTestCollection("cool-cats"))

	client, err := opensea.New(opensea.Config{
		Chain:   types.ChainEthereum,
		BaseURL: mockAPI.URL,
		Logger:  zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("retrieve_listings", func(t *testing.T) {
		resp, err := client.RetrieveListings(ctx, nil)
		if err != nil {
			t.Fatalf("RetrieveListings() error = %v", err)
		}

		if len(resp.Orders) != 1 {
			t.Fatalf("got %d orders, want 1", len(resp.Orders))
		}
		if resp.Orders[0].Hash() != hash {
			t.Errorf("order hash = %s, want %s", resp.Orders[0].Hash(), hash)
		}
		if got := types.WeiToEth(resp.Orders[0].CurrentPrice).String(); got != "1.5" {
			t.Errorf("order price = %s ETH, want 1.5", got)
		}
	})

	t.Run("get_all_listings", func(t *testing.T) {
		resp, err := client.GetAllListings(ctx, "cool-cats", nil)
		if err != nil {
			t.Fatalf("GetAllListings() error = %v", err)
		}

		if len(resp.Listings) != 1 {
			t.Fatalf("got %d listings, want 1", len(resp.Listings))
		}
		if resp.Listings[0].OrderHash != hash {
			t.Errorf("listing hash = %s, want %s", resp.Listings[0].OrderHash, hash)
		}
		if resp.Listings[0].Price.Current.Value != "1500000000000000000" {
			t.Errorf("listing price = %s, want 1500000000000000000", resp.Listings[0].Price.Current.Value)
		}
	})

	t.Run("get_all_listings_unknown_collection", func(t *testing.T) {
		_, err := client.GetAllListings(ctx, "no-such-collection", nil)
		if err == nil {
			t.Fatal("GetAllListings() expected error for unknown collection")
		}

		var apiErr *opensea.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("GetAllListings() error = %v, want APIError", err)
		}
	})

	t.Run("get_collection", func(t *testing.T) {
		coll, err := client.GetCollection(ctx, "cool-cats")
		if err != nil {
			t.Fatalf("GetCollection() error = %v", err)
		}

		if coll.Collection != "cool-cats" {
			t.Errorf("collection slug = %s, want cool-cats", coll.Collection)
		}
		if coll.SafelistStatus != types.SafelistVerified {
			t.Errorf("safelist status = %s, want %s", coll.SafelistStatus, types.SafelistVerified)
		}
		if coll.TotalSupply != 10000 {
			t.Errorf("total supply = %d, want 10000", coll.TotalSupply)
		}
	})

	t.Run("fulfill_listing", func(t *testing.T) {
		orderHash, err := types.ParseHash(hash)
		if err != nil {
			t.Fatalf("ParseHash() error = %v", err)
		}
		fulfiller, err := types.ParseAddress("0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D")
		if err != nil {
			t.Fatalf("ParseAddress() error = %v", err)
		}

		resp, err := client.FulfillListing(ctx, &types.FulfillListingRequest{
			Listing: types.ListingRef{
				Hash:            orderHash,
				Chain:           types.ChainEthereum,
				ProtocolVersion: types.SeaportV1_6,
			},
			Fulfiller: types.Fulfiller{Address: fulfiller},
		})
		if err != nil {
			t.Fatalf("FulfillListing() error = %v", err)
		}

		if resp.Protocol != "seaport1.6" {
			t.Errorf("protocol = %s, want seaport1.6", resp.Protocol)
		}
		if resp.FulfillmentData.Transaction.Chain != 1 {
			t.Errorf("transaction chain = %d, want 1", resp.FulfillmentData.Transaction.Chain)
		}

		recorded := mockAPI.LastFulfillRequest()
		if recorded == nil {
			t.Fatal("fake API recorded no fulfillment request")
		}
		if recorded.Listing.Hash != orderHash {
			t.Errorf("recorded hash = %s, want %s", recorded.Listing.Hash, orderHash)
		}
	})
}
