package types

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// OrderBy selects the sort key for listing queries.
type OrderBy string

// Listing sort keys. Sorting by ETH price requires asset_contract_address
// and token_ids to be set as well.
const (
	OrderByCreatedDate OrderBy = "created_date"
	OrderByEthPrice    OrderBy = "eth_price"
)

// OrderDirection selects ascending or descending sort.
type OrderDirection string

// Sort directions.
const (
	DirectionAsc  OrderDirection = "asc"
	DirectionDesc OrderDirection = "desc"
)

// QueryParam is one key/value pair of a linearized query string.
type QueryParam struct {
	Key   string
	Value string
}

// EncodeQuery renders linearized parameters as a raw query string in the
// order given. url.Values is not usable here: it sorts keys, and the API
// cares about repeated-key sequences staying in caller order.
func EncodeQuery(params []QueryParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// RetrieveListingsRequest filters the seaport listings endpoint. Nil and
// zero optional fields are omitted from the query entirely.
type RetrieveListingsRequest struct {
	// AssetContractAddress restricts results to one NFT contract.
	AssetContractAddress *Address
	// Limit caps the page size; the API accepts 1 to 50.
	Limit *int
	// TokenIDs restricts results to the given decimal token ids. A listing
	// matches if its token id equals any element.
	TokenIDs []string
	// Maker filters by the order maker's wallet.
	Maker *Address
	// Taker filters by the order taker's wallet.
	Taker *Address
	OrderBy        OrderBy
	OrderDirection OrderDirection
	// ListedAfter keeps only orders listed after this instant.
	ListedAfter *time.Time
	// ListedBefore keeps only orders listed before this instant.
	ListedBefore *time.Time
}

// Validate checks field domains before the request is linearized.
func (r RetrieveListingsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Limit, validation.By(limitInRange)),
		validation.Field(&r.OrderBy, validation.In(OrderByCreatedDate, OrderByEthPrice)),
		validation.Field(&r.OrderDirection, validation.In(DirectionAsc, DirectionDesc)),
	)
}

func limitInRange(value interface{}) error {
	limit, ok := value.(*int)
	if !ok || limit == nil {
		return nil
	}
	if *limit < 1 || *limit > 50 {
		return fmt.Errorf("must be between 1 and 50")
	}
	return nil
}

// QueryValues linearizes the request in declaration order. Sequence fields
// repeat their key once per element (token_ids=1&token_ids=2), addresses
// emit as lowercase hex and timestamps as decimal seconds.
func (r RetrieveListingsRequest) QueryValues() []QueryParam {
	var params []QueryParam
	add := func(key, value string) {
		params = append(params, QueryParam{Key: key, Value: value})
	}
	if r.AssetContractAddress != nil {
		add("asset_contract_address", hexutil.Encode(r.AssetContractAddress[:]))
	}
	if r.Limit != nil {
		add("limit", strconv.Itoa(*r.Limit))
	}
	for _, id := range r.TokenIDs {
		add("token_ids", id)
	}
	if r.Maker != nil {
		add("maker", hexutil.Encode(r.Maker[:]))
	}
	if r.Taker != nil {
		add("taker", hexutil.Encode(r.Taker[:]))
	}
	if r.OrderBy != "" {
		add("order_by", string(r.OrderBy))
	}
	if r.OrderDirection != "" {
		add("order_direction", string(r.OrderDirection))
	}
	if r.ListedAfter != nil {
		add("listed_after", strconv.FormatInt(r.ListedAfter.Unix(), 10))
	}
	if r.ListedBefore != nil {
		add("listed_before", strconv.FormatInt(r.ListedBefore.Unix(), 10))
	}
	return params
}

// GetAllListingsRequest pages through every active listing of a
// collection. Next is the opaque cursor from the previous page; empty
// means the first page.
type GetAllListingsRequest struct {
	Limit *int
	Next  string
}

// Validate checks the page size domain.
func (r GetAllListingsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Limit, validation.By(limitInRange)),
	)
}

// QueryValues linearizes the request in declaration order.
func (r GetAllListingsRequest) QueryValues() []QueryParam {
	var params []QueryParam
	if r.Limit != nil {
		params = append(params, QueryParam{Key: "limit", Value: strconv.Itoa(*r.Limit)})
	}
	if r.Next != "" {
		params = append(params, QueryParam{Key: "next", Value: r.Next})
	}
	return params
}

// FulfillListingRequest asks the API to compute the settlement call for
// one listing and one fulfiller.
type FulfillListingRequest struct {
	Listing   ListingRef `json:"listing"`
	Fulfiller Fulfiller  `json:"fulfiller"`
}

// Validate checks the listing reference is complete.
func (r FulfillListingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Listing),
	)
}

// ListingRef identifies the order to fulfill: its hash, the chain it
// lives on and the Seaport revision it was created against. The revision
// serializes as the deployed contract address.
type ListingRef struct {
	Hash            Hash            `json:"hash"`
	Chain           Chain           `json:"chain"`
	ProtocolVersion ProtocolVersion `json:"protocol_address"`
}

// Validate checks the chain is a registered member.
func (r ListingRef) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Chain, validation.By(chainRegistered)),
	)
}

func chainRegistered(value interface{}) error {
	chain, ok := value.(Chain)
	if !ok {
		return nil
	}
	if chain == "" {
		return fmt.Errorf("is required")
	}
	if !chain.IsLive() && !chain.IsTest() {
		return fmt.Errorf("unknown chain %q", string(chain))
	}
	return nil
}

// Fulfiller is the account that will submit the settlement transaction.
type Fulfiller struct {
	Address Address `json:"address"`
}
