package types

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Currency tags the denomination of a listing price. "ETH" is the value
// the API special-cases; any other non-empty symbol passes through
// verbatim.
type Currency string

// CurrencyEth is the distinguished native-token denomination.
const CurrencyEth Currency = "ETH"

// IsEth reports whether the price is denominated in the native token.
func (c Currency) IsEth() bool {
	return c == CurrencyEth
}

func (c Currency) String() string {
	return string(c)
}

// UnmarshalJSON accepts any non-empty symbol.
func (c *Currency) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("currency: %w", err)
	}
	if v == "" {
		return fmt.Errorf("currency must not be empty")
	}
	*c = Currency(v)
	return nil
}

// Price is a token amount in the smallest denomination of its currency.
// Value stays a string: display math belongs to callers.
type Price struct {
	Currency Currency `json:"currency"`
	Decimals uint16   `json:"decimals"`
	Value    string   `json:"value"`
}

// BasicListingPrice wraps the current price of a listing.
type BasicListingPrice struct {
	Current Price `json:"current"`
}

// ItemListing is the compact listing record produced by the collection
// listing endpoints.
type ItemListing struct {
	OrderHash       string              `json:"order_hash"`
	Chain           Chain               `json:"chain"`
	Type            OrderType           `json:"type"`
	Price           BasicListingPrice   `json:"price"`
	ProtocolData    SeaportProtocolData `json:"protocol_data"`
	ProtocolAddress *string             `json:"protocol_address"`
}
