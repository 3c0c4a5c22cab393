package opensea

import (
	"fmt"
	"net/url"

	"github.com/tradeforge/go-opensea/pkg/types"
)

// Base hosts for the two API environments. Test networks live on a
// separate host with a slightly different path layout.
const (
	mainnetBaseURL = "https://api.opensea.io/api"
	testnetBaseURL = "https://testnets-api.opensea.io"

	apiVersion = "v2"
)

// apiURL builds endpoint URLs rooted at one environment's versioned base.
type apiURL struct {
	base string
}

// newAPIURL selects the environment from the chain and pins the API
// version segment. An explicit override replaces the host part, which is
// how tests point the client at a local server.
func newAPIURL(chain types.Chain, override string) apiURL {
	base := mainnetBaseURL
	if chain.IsTest() {
		base = testnetBaseURL
	}
	if override != "" {
		base = override
	}
	return apiURL{base: base + "/" + apiVersion}
}

func (u apiURL) retrieveListings(chain types.Chain) string {
	return fmt.Sprintf("%s/orders/%s/seaport/listings", u.base, chain)
}

func (u apiURL) getAllListings(slug string) string {
	return fmt.Sprintf("%s/listings/collection/%s/all", u.base, url.PathEscape(slug))
}

func (u apiURL) getCollection(slug string) string {
	return fmt.Sprintf("%s/collections/%s", u.base, url.PathEscape(slug))
}

func (u apiURL) fulfillListing() string {
	return u.base + "/listings/fulfillment_data"
}
