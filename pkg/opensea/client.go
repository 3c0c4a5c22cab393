// Package opensea is a typed client for the OpenSea v2 HTTP API. It covers
// the Seaport listings endpoints, collection metadata, and fulfillment data
// for taking a listing on chain.
package opensea

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/tradeforge/go-opensea/pkg/types"
)

const defaultTimeout = 30 * time.Second

// Operation names used in errors and metric labels.
const (
	opRetrieveListings = "retrieve_listings"
	opGetAllListings   = "get_all_listings"
	opGetCollection    = "get_collection"
	opFulfillListing   = "fulfill_listing"
)

// Config carries the client settings. The zero value is usable and targets
// Ethereum mainnet without an API key.
type Config struct {
	// APIKey is sent verbatim in the X-API-KEY header. Leave empty to omit
	// the header entirely.
	APIKey string

	// Chain selects the network and with it the API environment: test
	// chains route to the testnet host. Defaults to types.DefaultChain.
	// Aliases such as "mainnet" are accepted.
	Chain types.Chain

	// BaseURL overrides the environment host, mainly for tests pointing at
	// a local server. The version path segment is still appended.
	BaseURL string

	// HTTPClient performs the round trips. Defaults to a client with a
	// 30 second timeout.
	HTTPClient *http.Client

	// Logger receives a debug line per request. Defaults to a nop logger.
	Logger *zap.Logger
}

// Client is a typed client for the OpenSea v2 API.
type Client struct {
	apiKey     string
	chain      types.Chain
	urls       apiURL
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a Client from cfg.
func New(cfg Config) (*Client, error) {
	name := cfg.Chain
	if name == "" {
		name = types.DefaultChain
	}
	chain, err := types.ParseChain(string(name))
	if err != nil {
		return nil, fmt.Errorf("new opensea client: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		apiKey:     cfg.APIKey,
		chain:      chain,
		urls:       newAPIURL(chain, cfg.BaseURL),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Chain reports the network the client is configured for.
func (c *Client) Chain() types.Chain {
	return c.chain
}

// RetrieveListings fetches active Seaport listings on the configured chain,
// filtered and ordered by req. A nil req requests the first page with
// server-side defaults.
func (c *Client) RetrieveListings(ctx context.Context, req *types.RetrieveListingsRequest) (*types.RetrieveListingsResponse, error) {
	const op = opRetrieveListings
	if req == nil {
		req = &types.RetrieveListingsRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("opensea: %s: invalid request: %w", op, err)
	}

	var out types.RetrieveListingsResponse
	if err := c.do(ctx, op, http.MethodGet, c.urls.retrieveListings(c.chain), req.QueryValues(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllListings fetches the complete set of active listings for one
// collection, page by page. A nil req requests the first page with the
// server's default page size.
func (c *Client) GetAllListings(ctx context.Context, slug string, req *types.GetAllListingsRequest) (*types.GetAllListingsResponse, error) {
	const op = opGetAllListings
	if slug == "" {
		return nil, fmt.Errorf("opensea: %s: collection slug is required", op)
	}
	if req == nil {
		req = &types.GetAllListingsRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("opensea: %s: invalid request: %w", op, err)
	}

	var out types.GetAllListingsResponse
	if err := c.do(ctx, op, http.MethodGet, c.urls.getAllListings(slug), req.QueryValues(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCollection fetches the metadata of a collection by its slug.
func (c *Client) GetCollection(ctx context.Context, slug string) (*types.CollectionResponse, error) {
	const op = opGetCollection
	if slug == "" {
		return nil, fmt.Errorf("opensea: %s: collection slug is required", op)
	}

	var out types.CollectionResponse
	if err := c.do(ctx, op, http.MethodGet, c.urls.getCollection(slug), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FulfillListing asks the API for the transaction that fills the given
// listing, including the signed Seaport parameters.
func (c *Client) FulfillListing(ctx context.Context, req *types.FulfillListingRequest) (*types.FulfillListingResponse, error) {
	const op = opFulfillListing
	if req == nil {
		return nil, fmt.Errorf("opensea: %s: request is required", op)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("opensea: %s: invalid request: %w", op, err)
	}

	var out types.FulfillListingResponse
	if err := c.do(ctx, op, http.MethodPost, c.urls.fulfillListing(), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request and decodes the response into out. Bodies of
// bad-request responses are parsed as error envelopes, every other non-2xx
// status surfaces as a StatusError.
func (c *Client) do(ctx context.Context, op, method, rawURL string, query []types.QueryParam, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &EncodeError{Op: op, Err: err}
		}
		reader = bytes.NewReader(encoded)
	}
	if len(query) > 0 {
		rawURL += "?" + types.EncodeQuery(query)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "go-opensea/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-KEY", c.apiKey)
	}

	c.logger.Debug("sending-request",
		zap.String("operation", op),
		zap.String("method", method),
		zap.String("url", rawURL))

	start := time.Now()
	RequestsTotal.WithLabelValues(op).Inc()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		RequestErrorsTotal.WithLabelValues(op, "transport").Inc()
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	RequestDurationSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		RequestErrorsTotal.WithLabelValues(op, "transport").Inc()
		return &TransportError{Op: op, Err: err}
	}

	c.logger.Debug("received-response",
		zap.String("operation", op),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)))

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		if err := json.Unmarshal(raw, out); err != nil {
			RequestErrorsTotal.WithLabelValues(op, "decode").Inc()
			return &DecodeError{Op: op, Err: err}
		}
		return nil

	case resp.StatusCode == http.StatusBadRequest:
		// A body without an errors list is not an envelope.
		var envelope types.ErrorResponse
		if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Errors == nil {
			RequestErrorsTotal.WithLabelValues(op, "status").Inc()
			return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
		}
		RequestErrorsTotal.WithLabelValues(op, "api").Inc()
		return errorFromEnvelope(resp.StatusCode, envelope)

	default:
		RequestErrorsTotal.WithLabelValues(op, "status").Inc()
		return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
}
