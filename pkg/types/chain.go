package types

import (
	"fmt"
)

// Chain identifies a blockchain the marketplace operates on. Values
// serialize as the canonical lower-snake-case name ("arbitrum_nova").
type Chain string

// Mainnet chains.
const (
	ChainEthereum     Chain = "ethereum"
	ChainPolygon      Chain = "matic"
	ChainKlaytn       Chain = "klaytn"
	ChainBase         Chain = "base"
	ChainBSC          Chain = "bsc"
	ChainArbitrum     Chain = "arbitrum"
	ChainArbitrumNova Chain = "arbitrum_nova"
	ChainAvalanche    Chain = "avalanche"
	ChainOptimism     Chain = "optimism"
	ChainSolana       Chain = "solana"
	ChainZora         Chain = "zora"
)

// Testnet chains.
const (
	ChainGoerli         Chain = "goerli"
	ChainSepolia        Chain = "sepolia"
	ChainMumbai         Chain = "mumbai"
	ChainBoabab         Chain = "boabab"
	ChainBaseGoerli     Chain = "base_goerli"
	ChainBSCTestnet     Chain = "bsc_testnet"
	ChainArbitrumGoerli Chain = "arbitrum_goerli"
	ChainAvalancheFuji  Chain = "avalanche_fuji"
	ChainOptimismGoerli Chain = "optimism_goerli"
	ChainSolanaDevnet   Chain = "solana_devnet"
	ChainZoraTestnet    Chain = "zora_testnet"
)

// DefaultChain is used when a client is configured without one.
const DefaultChain = ChainEthereum

//nolint:gochecknoglobals // static registry tables
var liveChains = map[Chain]struct{}{
	ChainEthereum:     {},
	ChainPolygon:      {},
	ChainKlaytn:       {},
	ChainBase:         {},
	ChainBSC:          {},
	ChainArbitrum:     {},
	ChainArbitrumNova: {},
	ChainAvalanche:    {},
	ChainOptimism:     {},
	ChainSolana:       {},
	ChainZora:         {},
}

//nolint:gochecknoglobals // static registry tables
var testChains = map[Chain]struct{}{
	ChainGoerli:         {},
	ChainSepolia:        {},
	ChainMumbai:         {},
	ChainBoabab:         {},
	ChainBaseGoerli:     {},
	ChainBSCTestnet:     {},
	ChainArbitrumGoerli: {},
	ChainAvalancheFuji:  {},
	ChainOptimismGoerli: {},
	ChainSolanaDevnet:   {},
	ChainZoraTestnet:    {},
}

// chainAliases maps the widely used alternate names accepted on input.
// Canonical names are always emitted on output.
//
//nolint:gochecknoglobals // static registry tables
var chainAliases = map[string]Chain{
	"mainnet": ChainEthereum,
	"polygon": ChainPolygon,
	"fuji":    ChainAvalancheFuji,
}

// ParseChain resolves a chain name to its canonical member. Aliases
// ("mainnet", "polygon", "fuji") are accepted; unknown names fail.
func ParseChain(s string) (Chain, error) {
	c := Chain(s)
	if _, ok := liveChains[c]; ok {
		return c, nil
	}
	if _, ok := testChains[c]; ok {
		return c, nil
	}
	if c, ok := chainAliases[s]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown chain %q", s)
}

// IsTest reports whether the chain is a test network.
func (c Chain) IsTest() bool {
	_, ok := testChains[c]
	return ok
}

// IsLive reports whether the chain is a production network.
func (c Chain) IsLive() bool {
	_, ok := liveChains[c]
	return ok
}

func (c Chain) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler. Only registered chains
// serialize; a hand-rolled Chain value fails instead of leaking onto the
// wire.
func (c Chain) MarshalText() ([]byte, error) {
	if !c.IsLive() && !c.IsTest() {
		return nil, fmt.Errorf("unknown chain %q", string(c))
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Chain) UnmarshalText(data []byte) error {
	parsed, err := ParseChain(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
