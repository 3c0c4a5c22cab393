// Package testutil provides fixtures and a fake OpenSea API server for
// integration tests.
package testutil

import (
	"time"

	"github.com/tradeforge/go-opensea/pkg/types"
)

// CreateTestOrder creates a fillable basic ask with the given hash.
func CreateTestOrder(hash string) *types.Order {
	protocol := "0x0000000000000068f116a894984e2db1123eb395"
	closing := "2023-11-28T04:50:26.000000"

	return &types.Order{
		CreatedDate:       "2023-11-27T23:21:26.000000",
		ClosingDate:       &closing,
		ListingTime:       1701132086,
		ExpirationTime:    1701146826,
		OrderHash:         &hash,
		ProtocolAddress:   &protocol,
		CurrentPrice:      types.NewU256(1500000000000000000),
		Maker:             types.Account{Address: "0x3fa5b646b19271033f059ec83de38738f3d3d003"},
		Side:              types.SideAsk,
		OrderType:         types.OrderTypeBasic,
		RemainingQuantity: 1,
	}
}

// CreateTestItemListing creates the compact listing record the collection
// endpoints serve for the given hash.
func CreateTestItemListing(hash string) types.ItemListing {
	return types.ItemListing{
		OrderHash: hash,
		Chain:     types.ChainEthereum,
		Type:      types.OrderTypeBasic,
		Price: types.BasicListingPrice{
			Current: types.Price{
				Currency: types.CurrencyEth,
				Decimals: 18,
				Value:    "1500000000000000000",
			},
		},
	}
}

// CreateTestCollection creates collection metadata behind the given slug.
func CreateTestCollection(slug string) *types.CollectionResponse {
	created := types.Date(time.Date(2021, time.April, 22, 0, 0, 0, 0, time.UTC))

	return &types.CollectionResponse{
		Collection:     slug,
		Name:           "Test Collection " + slug,
		Description:    "A collection for tests",
		Owner:          "0xaba7161a7fb69c88e16ed9f455ce62b791ee4d03",
		SafelistStatus: types.SafelistVerified,
		Contracts: []types.ContractRef{
			{Address: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d", Chain: types.ChainEthereum},
		},
		Fees: []types.CollectionFee{
			{Fee: 2.5, Recipient: "0x0000a26b00c1f0df003000390027140000faa719", Required: true},
		},
		TotalSupply: 10000,
		CreatedDate: &created,
	}
}

// CreateTestFulfillment creates the settlement call for a basic listing
// paid in the native token.
func CreateTestFulfillment() *types.FulfillListingResponse {
	seaport, _ := types.ParseAddress("0x0000000000000068F116a894984e2DB1123eB395")
	offerer, _ := types.ParseAddress("0x3fa5b646b19271033f059ec83de38738f3d3d003")
	contract, _ := types.ParseAddress("0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D")
	feeRecipient, _ := types.ParseAddress("0x0000a26b00c1F0DF003000390027140000fAa719")

	return &types.FulfillListingResponse{
		Protocol: "seaport1.6",
		FulfillmentData: types.FulfillmentData{
			Transaction: types.Transaction{
				Function: "fulfillBasicOrder_efficient_6GL6yc(tuple parameters)",
				Chain:    1,
				To:       seaport,
				Value:    types.TxValue(types.NewU256(1500000000000000000)),
				InputData: types.InputData{
					Parameters: types.FulfillmentParameters{
						ConsiderationAmount:               types.NewU256(1462500000000000000),
						Offerer:                           offerer,
						OfferToken:                        contract,
						OfferIdentifier:                   types.NewU256(7712),
						OfferAmount:                       types.NewU256(1),
						StartTime:                         types.NewU256(1701132086),
						EndTime:                           types.NewU256(1701146826),
						Salt:                              types.NewU256(51951570786726),
						TotalOriginalAdditionalRecipients: types.NewU256(1),
						AdditionalRecipients: []types.AdditionalRecipient{
							{Amount: types.NewU256(37500000000000000), Recipient: feeRecipient},
						},
						Signature: types.Bytes{0x1c, 0x7a, 0x9e, 0x03},
					},
				},
			},
		},
	}
}
