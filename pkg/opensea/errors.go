package opensea

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tradeforge/go-opensea/pkg/types"
)

// Sentinel errors for server failures common enough to branch on with
// errors.Is.
var (
	// ErrOrderHashDoesNotExist reports that the order hash sent to the
	// fulfillment endpoint is unknown to the orderbook.
	ErrOrderHashDoesNotExist = errors.New("opensea: order hash does not exist")

	// ErrOrderCannotBeFulfilled reports that the order exists but cannot be
	// filled right now, typically because it was cancelled or already taken.
	ErrOrderCannotBeFulfilled = errors.New("opensea: order can not be fulfilled at this time")
)

// knownServerErrors maps the first message of an error envelope to its
// sentinel. Matching is exact, the server keeps these strings stable.
//
//nolint:gochecknoglobals // static lookup table
var knownServerErrors = map[string]error{
	"The order_hash you provided does not exist":    ErrOrderHashDoesNotExist,
	"This order can not be fulfilled at this time.": ErrOrderCannotBeFulfilled,
}

// APIError is a bad-request response carrying a structured error envelope
// that matches no sentinel.
type APIError struct {
	StatusCode int
	Errors     []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("opensea: api error (status %d): %s", e.StatusCode, strings.Join(e.Errors, "; "))
}

// StatusError is a non-2xx response without a parseable error envelope.
// The raw body is kept for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("opensea: unexpected status %d: %s", e.StatusCode, e.Body)
}

// TransportError wraps a failure to complete the HTTP round trip itself.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("opensea: %s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError wraps a failure to decode a response body.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("opensea: %s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError wraps a failure to encode a request body.
type EncodeError struct {
	Op  string
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("opensea: %s: encode request: %v", e.Op, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// errorFromEnvelope picks the most specific error for a parsed envelope.
// Envelopes whose first message is a known server failure collapse to the
// matching sentinel so callers can test with errors.Is.
func errorFromEnvelope(status int, envelope types.ErrorResponse) error {
	if len(envelope.Errors) > 0 {
		if sentinel, ok := knownServerErrors[envelope.Errors[0]]; ok {
			return sentinel
		}
	}
	return &APIError{StatusCode: status, Errors: envelope.Errors}
}
