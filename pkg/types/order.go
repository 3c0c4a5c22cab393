package types

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// UserID is a marketplace account identifier. Legacy accounts carry it as
// a JSON number and newer ones as a string; both normalize to the string
// form and re-encode as a string.
type UserID string

// UnmarshalJSON accepts a number or a string.
func (u *UserID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("user id: %w", err)
		}
		*u = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user id must be a number or string: %w", err)
	}
	*u = UserID(n.String())
	return nil
}

// Account is the marketplace profile attached to makers, takers and fee
// recipients.
type Account struct {
	User          *UserID `json:"user"`
	ProfileImgURL string  `json:"profile_img_url"`
	Address       string  `json:"address"`
	Config        string  `json:"config"`
}

// OrderFee is one fee taken from a filled order, in basis points.
type OrderFee struct {
	Account     Account `json:"account"`
	BasisPoints string  `json:"basis_points"`
}

// OrderSide distinguishes sell orders from offers.
type OrderSide string

// Order sides.
const (
	SideAsk OrderSide = "ask"
	SideBid OrderSide = "bid"
)

// UnmarshalJSON rejects anything but the two known sides.
func (s *OrderSide) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("order side: %w", err)
	}
	switch OrderSide(v) {
	case SideAsk, SideBid:
		*s = OrderSide(v)
		return nil
	}
	return fmt.Errorf("unknown order side %q", v)
}

// OrderType is the marketplace sale mechanism of an order.
type OrderType string

// Order types.
const (
	OrderTypeBasic    OrderType = "basic"
	OrderTypeDutch    OrderType = "dutch"
	OrderTypeEnglish  OrderType = "english"
	OrderTypeCriteria OrderType = "criteria"
)

// UnmarshalJSON rejects unknown sale mechanisms.
func (t *OrderType) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("order type: %w", err)
	}
	switch OrderType(v) {
	case OrderTypeBasic, OrderTypeDutch, OrderTypeEnglish, OrderTypeCriteria:
		*t = OrderType(v)
		return nil
	}
	return fmt.Errorf("unknown order type %q", v)
}

// Order is the full marketplace record of a listing or offer.
type Order struct {
	CreatedDate     string              `json:"created_date"`
	ClosingDate     *string             `json:"closing_date"`
	ListingTime     int64               `json:"listing_time"`
	ExpirationTime  int64               `json:"expiration_time"`
	OrderHash       *string             `json:"order_hash"`
	ProtocolData    SeaportProtocolData `json:"protocol_data"`
	ProtocolAddress *string             `json:"protocol_address"`
	CurrentPrice    U256                `json:"current_price"`
	Maker           Account             `json:"maker"`
	Taker           *Account            `json:"taker"`
	MakerFees       []OrderFee          `json:"maker_fees"`
	TakerFees       []OrderFee          `json:"taker_fees"`
	Side            OrderSide           `json:"side"`
	OrderType       OrderType           `json:"order_type"`
	Cancelled       bool                `json:"cancelled"`
	Finalized       bool                `json:"finalized"`
	MarkedInvalid   bool                `json:"marked_invalid"`
	// RemainingQuantity is how many items are still takeable.
	RemainingQuantity uint64  `json:"remaining_quantity"`
	ClientSignature   *string `json:"client_signature"`
	RelayID           string  `json:"relay_id"`
	CriteriaProof     *string `json:"criteria_proof"`

	// Deprecated: asset bundles predate the current listing endpoints and
	// are decoded only for wire compatibility.
	MakerAssetBundle *Bundle `json:"maker_asset_bundle,omitempty"`
	// Deprecated: see MakerAssetBundle.
	TakerAssetBundle *Bundle `json:"taker_asset_bundle,omitempty"`
}

// Hash returns the order hash, or "" when the server omitted it.
func (o *Order) Hash() string {
	if o.OrderHash == nil {
		return ""
	}
	return *o.OrderHash
}

// IsFillable reports whether the order can still be taken.
func (o *Order) IsFillable() bool {
	return !o.Cancelled && !o.Finalized && !o.MarkedInvalid && o.RemainingQuantity > 0
}
