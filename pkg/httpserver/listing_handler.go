package httpserver

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/tradeforge/go-opensea/internal/watch"
	"github.com/tradeforge/go-opensea/pkg/types"
	"go.uber.org/zap"
)

// ListingHandler handles HTTP requests for listings tracked by the watcher.
type ListingHandler struct {
	watcher *watch.Service
	logger  *zap.Logger
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(watcher *watch.Service, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		watcher: watcher,
		logger:  logger,
	}
}

// ListingResponse represents the HTTP response for a tracked listing.
type ListingResponse struct {
	OrderHash         string  `json:"order_hash"`
	ProtocolAddress   string  `json:"protocol_address,omitempty"`
	Side              string  `json:"side"`
	OrderType         string  `json:"order_type"`
	PriceWei          string  `json:"price_wei"`
	Maker             string  `json:"maker"`
	RemainingQuantity uint64  `json:"remaining_quantity"`
	CreatedDate       string  `json:"created_date"`
	ClosingDate       *string `json:"closing_date,omitempty"`
	Fillable          bool    `json:"fillable"`
}

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleListing handles GET /api/listings?order_hash=<hash> requests.
func (h *ListingHandler) HandleListing(w http.ResponseWriter, r *http.Request) {
	// Only allow GET requests
	if r.Method != http.MethodGet {
		h.writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Get order hash from query parameter
	rawHash := r.URL.Query().Get("order_hash")
	if rawHash == "" {
		h.writeError(w, "missing required query parameter: order_hash", http.StatusBadRequest)
		return
	}

	hash, err := types.ParseHash(rawHash)
	if err != nil {
		h.writeError(w, "malformed order hash", http.StatusBadRequest)
		return
	}

	h.logger.Debug("listing-request-received", zap.String("order-hash", hash.Hex()))

	// The watcher caches orders under the lowercase hash
	order := h.watcher.GetOrder(hash.Hex())
	if order == nil {
		h.writeError(w, "listing not seen or expired", http.StatusNotFound)
		return
	}

	response := ListingResponse{
		OrderHash:         order.Hash(),
		Side:              string(order.Side),
		OrderType:         string(order.OrderType),
		PriceWei:          order.CurrentPrice.String(),
		Maker:             order.Maker.Address,
		RemainingQuantity: order.RemainingQuantity,
		CreatedDate:       order.CreatedDate,
		ClosingDate:       order.ClosingDate,
		Fillable:          order.IsFillable(),
	}
	if order.ProtocolAddress != nil {
		response.ProtocolAddress = *order.ProtocolAddress
	}

	// Write JSON response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.logger.Error("failed-to-encode-response", zap.Error(err))
	}
}

// writeError writes a JSON error response.
func (h *ListingHandler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{Error: message}
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.logger.Error("failed-to-encode-error-response", zap.Error(err))
	}
}
