package types

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Address is a 20-byte account or contract identifier. It travels as
// 0x-prefixed hex and re-encodes lowercase.
type Address = common.Address

// Hash is a 32-byte value: order hashes, zone hashes, conduit keys.
type Hash = common.Hash

// Bytes is an arbitrary-length byte string carried as 0x-prefixed hex,
// such as an order signature.
type Bytes = hexutil.Bytes

var (
	// ErrInvalidNumber reports a 256-bit numeric field whose wire form is
	// not a plain decimal integer.
	ErrInvalidNumber = errors.New("invalid 256-bit decimal")

	// ErrValueTooLarge reports a transaction value too wide to re-encode
	// as a JSON number without risking consumer overflow.
	ErrValueTooLarge = errors.New("value does not fit in 128 bits")
)

// ParseAddress strictly parses a 0x-prefixed 20-byte hex address.
// common.HexToAddress silently crops malformed input, which is exactly
// wrong for values that end up in query strings and request bodies.
func ParseAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// ParseHash strictly parses a 0x-prefixed 32-byte hex value.
func ParseHash(s string) (Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hash %q: %v", s, err)
	}
	if len(b) != common.HashLength {
		return Hash{}, fmt.Errorf("invalid hash %q: got %d bytes, want %d", s, len(b), common.HashLength)
	}
	return common.BytesToHash(b), nil
}

// HexAddress renders an address as lowercase 0x hex, the form the API
// expects in query strings.
func HexAddress(a Address) string {
	return hexutil.Encode(a[:])
}

// WeiToEth converts a wei amount to ether for display.
func WeiToEth(v U256) decimal.Decimal {
	return decimal.NewFromBigInt(v.Int().ToBig(), -18)
}

// U256 is an unsigned 256-bit integer. The API writes these as decimal
// strings ("1780000000000000000") but bare JSON numbers appear on a few
// fields, so both decode. Re-encoding always produces the string form.
type U256 uint256.Int

// NewU256 builds a U256 from a uint64.
func NewU256(v uint64) U256 {
	return U256(*uint256.NewInt(v))
}

// U256FromDecimal parses a base-10 string into a U256.
func U256FromDecimal(s string) (U256, error) {
	var u U256
	if err := u.setDecimal(s); err != nil {
		return U256{}, err
	}
	return u, nil
}

// Int exposes the underlying uint256.Int for arithmetic.
func (u *U256) Int() *uint256.Int {
	return (*uint256.Int)(u)
}

// IsZero reports whether the value is zero.
func (u U256) IsZero() bool {
	return (*uint256.Int)(&u).IsZero()
}

// Cmp compares u and v, returning -1, 0 or +1.
func (u U256) Cmp(v U256) int {
	return (*uint256.Int)(&u).Cmp((*uint256.Int)(&v))
}

func (u U256) String() string {
	return (*uint256.Int)(&u).Dec()
}

// MarshalJSON encodes the value as a decimal string.
func (u U256) MarshalJSON() ([]byte, error) {
	dec := (*uint256.Int)(&u).Dec()
	buf := make([]byte, 0, len(dec)+2)
	buf = append(buf, '"')
	buf = append(buf, dec...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON decodes either a decimal string or a bare number.
func (u *U256) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return u.setDecimal(s)
}

func (u *U256) setDecimal(s string) error {
	n, err := uint256.FromDecimal(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	*u = U256(*n)
	return nil
}

// TxValue is the native-token amount attached to a settlement transaction.
// Unlike U256 it travels as a bare JSON number. Re-encoding refuses values
// wider than 128 bits: past that point a plain JSON number stops being
// readable by common consumers, and 128 bits already covers every token
// supply in circulation.
type TxValue U256

// NewTxValue builds a TxValue from a uint64.
func NewTxValue(v uint64) TxValue {
	return TxValue(NewU256(v))
}

// Int exposes the underlying uint256.Int.
func (v *TxValue) Int() *uint256.Int {
	return (*uint256.Int)(v)
}

func (v TxValue) String() string {
	return (*uint256.Int)(&v).Dec()
}

// MarshalJSON encodes the value as a bare number, or fails with
// ErrValueTooLarge beyond 128 bits.
func (v TxValue) MarshalJSON() ([]byte, error) {
	n := (*uint256.Int)(&v)
	if n.BitLen() > 128 {
		return nil, fmt.Errorf("%w: %s", ErrValueTooLarge, n.Dec())
	}
	return []byte(n.Dec()), nil
}

// UnmarshalJSON accepts a bare number or a decimal string.
func (v *TxValue) UnmarshalJSON(data []byte) error {
	return (*U256)(v).UnmarshalJSON(data)
}
