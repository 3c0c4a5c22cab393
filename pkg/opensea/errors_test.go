package opensea

import (
	"errors"
	"strings"
	"testing"

	"github.com/tradeforge/go-opensea/pkg/types"
)

func TestErrorFromEnvelope_KnownMessages(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    error
	}{
		{"unknown order hash", "The order_hash you provided does not exist", ErrOrderHashDoesNotExist},
		{"unfulfillable order", "This order can not be fulfilled at this time.", ErrOrderCannotBeFulfilled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errorFromEnvelope(400, types.ErrorResponse{Errors: []string{tt.message}})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestErrorFromEnvelope_UnknownMessage(t *testing.T) {
	err := errorFromEnvelope(400, types.ErrorResponse{Errors: []string{"Invalid limit", "Invalid cursor"}})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("expected status 400, got %d", apiErr.StatusCode)
	}
	if len(apiErr.Errors) != 2 {
		t.Errorf("expected 2 messages, got %d", len(apiErr.Errors))
	}
	if !strings.Contains(apiErr.Error(), "Invalid limit") {
		t.Errorf("message missing from error text: %s", apiErr.Error())
	}
}

func TestErrorFromEnvelope_MatchesFirstMessageOnly(t *testing.T) {
	err := errorFromEnvelope(400, types.ErrorResponse{
		Errors: []string{"something else", "The order_hash you provided does not exist"},
	})
	if errors.Is(err, ErrOrderHashDoesNotExist) {
		t.Error("expected no sentinel when the known message is not first")
	}
}

func TestErrorFromEnvelope_ExactMatchRequired(t *testing.T) {
	err := errorFromEnvelope(400, types.ErrorResponse{
		Errors: []string{"the order_hash you provided does not exist"},
	})
	if errors.Is(err, ErrOrderHashDoesNotExist) {
		t.Error("expected case-sensitive matching")
	}
}

func TestStatusError_Message(t *testing.T) {
	err := &StatusError{StatusCode: 503, Body: "upstream down"}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("status missing from error text: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "upstream down") {
		t.Errorf("body missing from error text: %s", err.Error())
	}
}

func TestWrappedErrors_Unwrap(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
	}{
		{"transport", &TransportError{Op: opRetrieveListings, Err: cause}},
		{"decode", &DecodeError{Op: opGetCollection, Err: cause}},
		{"encode", &EncodeError{Op: opFulfillListing, Err: cause}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, cause) {
				t.Errorf("expected %v to unwrap to the cause", tt.err)
			}
			if !strings.Contains(tt.err.Error(), "boom") {
				t.Errorf("cause missing from error text: %s", tt.err.Error())
			}
		})
	}
}
