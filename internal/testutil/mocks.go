package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/tradeforge/go-opensea/pkg/types"
)

// MockOpenSeaAPI is a fake OpenSea v2 server backed by in-memory fixtures.
// Point a client at it through the base URL override; the client appends
// the version segment, so every route lives under /v2.
type MockOpenSeaAPI struct {
	*httptest.Server

	mu          sync.Mutex
	orders      []types.Order
	listings    map[string][]types.ItemListing
	collections map[string]*types.CollectionResponse
	fulfillment *types.FulfillListingResponse
	lastFulfill *types.FulfillListingRequest
	pollCount   int
}

// NewMockOpenSeaAPI creates a fake API server seeded with the given orders.
func NewMockOpenSeaAPI(orders []types.Order) *MockOpenSeaAPI {
	mock := &MockOpenSeaAPI{
		orders:      orders,
		listings:    make(map[string][]types.ItemListing),
		collections: make(map[string]*types.CollectionResponse),
	}

	r := chi.NewRouter()
	r.Get("/v2/orders/{chain}/seaport/listings", mock.handleRetrieveListings)
	r.Get("/v2/listings/collection/{slug}/all", mock.handleAllListings)
	r.Get("/v2/collections/{slug}", mock.handleCollection)
	r.Post("/v2/listings/fulfillment_data", mock.handleFulfillment)

	mock.Server = httptest.NewServer(r)
	return mock
}

// AddOrder adds an order to the listings page the server returns.
func (m *MockOpenSeaAPI) AddOrder(order types.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, order)
}

// SetOrders replaces the listings page the server returns.
func (m *MockOpenSeaAPI) SetOrders(orders []types.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = orders
}

// SetListings installs the compact listings served for a collection slug.
func (m *MockOpenSeaAPI) SetListings(slug string, listings []types.ItemListing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[slug] = listings
}

// SetCollection installs collection metadata, keyed by its slug.
func (m *MockOpenSeaAPI) SetCollection(coll *types.CollectionResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[coll.Collection] = coll
}

// SetFulfillment overrides the settlement response. Without an override
// the server answers with CreateTestFulfillment.
func (m *MockOpenSeaAPI) SetFulfillment(resp *types.FulfillListingResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fulfillment = resp
}

// PollCount returns how many times the listings endpoint was hit.
func (m *MockOpenSeaAPI) PollCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pollCount
}

// LastFulfillRequest returns the most recent fulfillment request body.
func (m *MockOpenSeaAPI) LastFulfillRequest() *types.FulfillListingRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastFulfill
}

func (m *MockOpenSeaAPI) handleRetrieveListings(w http.ResponseWriter, _ *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pollCount++

	orders := make([]types.Order, len(m.orders))
	copy(orders, m.orders)

	writeJSON(w, &types.RetrieveListingsResponse{Orders: orders})
}

func (m *MockOpenSeaAPI) handleAllListings(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	m.mu.Lock()
	defer m.mu.Unlock()

	listings, ok := m.listings[slug]
	if !ok {
		writeError(w, fmt.Sprintf("Collection %s not found", slug))
		return
	}

	writeJSON(w, &types.GetAllListingsResponse{Listings: listings})
}

func (m *MockOpenSeaAPI) handleCollection(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	m.mu.Lock()
	defer m.mu.Unlock()

	coll, ok := m.collections[slug]
	if !ok {
		writeError(w, fmt.Sprintf("Collection %s not found", slug))
		return
	}

	writeJSON(w, coll)
}

func (m *MockOpenSeaAPI) handleFulfillment(w http.ResponseWriter, r *http.Request) {
	var req types.FulfillListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid fulfillment request")
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFulfill = &req

	resp := m.fulfillment
	if resp == nil {
		resp = CreateTestFulfillment()
	}

	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(&types.ErrorResponse{Errors: []string{msg}})
}
