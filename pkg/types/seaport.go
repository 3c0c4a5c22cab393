package types

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// ItemType codes the asset class of an offer or consideration item,
// matching the Seaport contract's ItemType enum.
type ItemType uint8

// Seaport item types.
const (
	ItemTypeNative ItemType = iota
	ItemTypeERC20
	ItemTypeERC721
	ItemTypeERC1155
	ItemTypeERC721WithCriteria
	ItemTypeERC1155WithCriteria
)

func (t ItemType) String() string {
	switch t {
	case ItemTypeNative:
		return "native"
	case ItemTypeERC20:
		return "erc20"
	case ItemTypeERC721:
		return "erc721"
	case ItemTypeERC1155:
		return "erc1155"
	case ItemTypeERC721WithCriteria:
		return "erc721_with_criteria"
	case ItemTypeERC1155WithCriteria:
		return "erc1155_with_criteria"
	}
	return "item_type_" + strconv.Itoa(int(t))
}

// UnmarshalJSON decodes the numeric code, rejecting values outside 0..5.
func (t *ItemType) UnmarshalJSON(data []byte) error {
	var v uint8
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("item type: %w", err)
	}
	if v > uint8(ItemTypeERC1155WithCriteria) {
		return fmt.Errorf("item type %d out of range", v)
	}
	*t = ItemType(v)
	return nil
}

// ProtocolOrderType codes the Seaport order restriction mode: whether the
// order supports partial fills and who may execute it.
type ProtocolOrderType uint8

// Seaport order restriction modes.
const (
	OrderFullOpen ProtocolOrderType = iota
	OrderPartialOpen
	OrderFullRestricted
	OrderPartialRestricted
)

func (t ProtocolOrderType) String() string {
	switch t {
	case OrderFullOpen:
		return "full_open"
	case OrderPartialOpen:
		return "partial_open"
	case OrderFullRestricted:
		return "full_restricted"
	case OrderPartialRestricted:
		return "partial_restricted"
	}
	return "order_type_" + strconv.Itoa(int(t))
}

// UnmarshalJSON decodes the numeric code, rejecting values outside 0..3.
func (t *ProtocolOrderType) UnmarshalJSON(data []byte) error {
	var v uint8
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("protocol order type: %w", err)
	}
	if v > uint8(OrderPartialRestricted) {
		return fmt.Errorf("protocol order type %d out of range", v)
	}
	*t = ProtocolOrderType(v)
	return nil
}

// Counter is the per-offerer nonce inside Seaport order parameters. Some
// chains emit it as a bare number and others as a decimal string; the
// incoming JSON shape is kept so the value re-encodes exactly as it
// arrived.
type Counter struct {
	value  string
	quoted bool
}

// CounterNumber builds a Counter carrying the bare-number shape.
func CounterNumber(n uint64) Counter {
	return Counter{value: strconv.FormatUint(n, 10)}
}

// CounterText builds a Counter carrying the quoted-string shape.
func CounterText(s string) Counter {
	return Counter{value: s, quoted: true}
}

// IsText reports whether the counter arrived as a JSON string.
func (c Counter) IsText() bool {
	return c.quoted
}

func (c Counter) String() string {
	return c.value
}

// MarshalJSON re-encodes the counter in its original JSON shape.
func (c Counter) MarshalJSON() ([]byte, error) {
	if c.quoted {
		return json.Marshal(c.value)
	}
	if c.value == "" {
		return []byte("0"), nil
	}
	return []byte(c.value), nil
}

// UnmarshalJSON accepts a bare number or a string and records which shape
// arrived.
func (c *Counter) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("counter: %w", err)
		}
		*c = Counter{value: s, quoted: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("counter must be a number or string: %w", err)
	}
	*c = Counter{value: n.String()}
	return nil
}

// SeaportProtocolData carries the on-chain order struct plus its
// signature. The signature slot keeps its raw JSON: mainnet sends a hex
// string, test networks sometimes send null.
type SeaportProtocolData struct {
	Parameters SeaportOrderParameters `json:"parameters"`
	Signature  json.RawMessage        `json:"signature"`
}

// SeaportOrderParameters mirrors the signed Seaport order struct. Field
// names follow the contract ABI casing used on the wire.
type SeaportOrderParameters struct {
	Offerer                         string            `json:"offerer"`
	Offer                           []Offer           `json:"offer"`
	Consideration                   []Consideration   `json:"consideration"`
	StartTime                       UnixTime          `json:"startTime"`
	EndTime                         UnixTime          `json:"endTime"`
	OrderType                       ProtocolOrderType `json:"orderType"`
	Zone                            string            `json:"zone"`
	ZoneHash                        string            `json:"zoneHash"`
	Salt                            string            `json:"salt"`
	ConduitKey                      string            `json:"conduitKey"`
	TotalOriginalConsiderationItems uint64            `json:"totalOriginalConsiderationItems"`
	Counter                         Counter           `json:"counter"`
}

// Offer is one item the offerer gives up.
type Offer struct {
	ItemType             ItemType `json:"itemType"`
	Token                string   `json:"token"`
	IdentifierOrCriteria U256     `json:"identifierOrCriteria"`
	StartAmount          U256     `json:"startAmount"`
	EndAmount            U256     `json:"endAmount"`
}

// Consideration is one item the offerer asks for, routed to a recipient.
type Consideration struct {
	ItemType             ItemType `json:"itemType"`
	Token                string   `json:"token"`
	IdentifierOrCriteria U256     `json:"identifierOrCriteria"`
	StartAmount          U256     `json:"startAmount"`
	EndAmount            U256     `json:"endAmount"`
	Recipient            string   `json:"recipient"`
}
