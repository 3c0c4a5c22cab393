package types

// RetrieveListingsResponse is one page of full order records. Next and
// Previous are opaque pagination cursors; nil means no further page in
// that direction.
type RetrieveListingsResponse struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Orders   []Order `json:"orders"`
}

// GetAllListingsResponse is one page of compact listings for a
// collection.
type GetAllListingsResponse struct {
	Listings []ItemListing `json:"listings"`
	Next     *string       `json:"next"`
}

// ErrorResponse is the envelope the API attaches to HTTP 400 rejections.
// Every message is preserved in server order.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}
