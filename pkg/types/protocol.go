package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ProtocolVersion selects the deployed Seaport revision an order settles
// through. It serializes as the revision's contract address and decodes
// from the address in any casing.
type ProtocolVersion uint8

// Supported Seaport revisions.
const (
	SeaportV1_1 ProtocolVersion = iota
	SeaportV1_4
	SeaportV1_5
	SeaportV1_6
)

// Deployed Seaport contract addresses.
const (
	SeaportV1_1Address = "0x00000000006c3852cbEf3e08E8dF289169EdE581"
	SeaportV1_4Address = "0x00000000000001ad428e4906aE43D8F9852d0dD6"
	SeaportV1_5Address = "0x00000000000000ADc04C56Bf30aC9d3c0aAF14dC"
	SeaportV1_6Address = "0x0000000000000068f116a894984e2db1123eb395"
)

//nolint:gochecknoglobals // static registry tables
var seaportAddresses = map[ProtocolVersion]string{
	SeaportV1_1: SeaportV1_1Address,
	SeaportV1_4: SeaportV1_4Address,
	SeaportV1_5: SeaportV1_5Address,
	SeaportV1_6: SeaportV1_6Address,
}

//nolint:gochecknoglobals // static registry tables
var seaportNames = map[ProtocolVersion]string{
	SeaportV1_1: "seaport1.1",
	SeaportV1_4: "seaport1.4",
	SeaportV1_5: "seaport1.5",
	SeaportV1_6: "seaport1.6",
}

// Address returns the revision's deployed contract address, or "" for an
// unregistered value.
func (p ProtocolVersion) Address() string {
	return seaportAddresses[p]
}

func (p ProtocolVersion) String() string {
	if name, ok := seaportNames[p]; ok {
		return name
	}
	return "seaport?" + strconv.Itoa(int(p))
}

// MarshalJSON encodes the revision as its quoted contract address.
func (p ProtocolVersion) MarshalJSON() ([]byte, error) {
	addr, ok := seaportAddresses[p]
	if !ok {
		return nil, fmt.Errorf("unknown protocol version %d", p)
	}
	return strconv.AppendQuote(nil, addr), nil
}

// UnmarshalJSON resolves a revision from its quoted contract address,
// ignoring checksum casing.
func (p *ProtocolVersion) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("protocol address must be a string")
	}
	for version, addr := range seaportAddresses {
		if strings.EqualFold(addr, s) {
			*p = version
			return nil
		}
	}
	return fmt.Errorf("unknown protocol address %q", s)
}

// ParseProtocolVersion resolves a revision name like "seaport1.6".
func ParseProtocolVersion(name string) (ProtocolVersion, error) {
	for version, n := range seaportNames {
		if n == name {
			return version, nil
		}
	}
	return 0, fmt.Errorf("unknown protocol version %q", name)
}
