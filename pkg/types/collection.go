package types

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// SafelistStatus is the marketplace review state of a collection.
type SafelistStatus string

// Safelist states.
const (
	SafelistNotRequested        SafelistStatus = "not_requested"
	SafelistRequested           SafelistStatus = "requested"
	SafelistApproved            SafelistStatus = "approved"
	SafelistVerified            SafelistStatus = "verified"
	SafelistDisabledTopTrending SafelistStatus = "disabled_top_trending"
)

// UnmarshalJSON rejects unknown review states.
func (s *SafelistStatus) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("safelist status: %w", err)
	}
	switch SafelistStatus(v) {
	case SafelistNotRequested, SafelistRequested, SafelistApproved,
		SafelistVerified, SafelistDisabledTopTrending:
		*s = SafelistStatus(v)
		return nil
	}
	return fmt.Errorf("unknown safelist status %q", v)
}

// RarityStrategyID identifies the algorithm behind a collection's rarity
// ranks.
type RarityStrategyID string

// RarityStrategyOpenRarity is the only strategy the API currently emits.
const RarityStrategyOpenRarity RarityStrategyID = "openrarity"

// UnmarshalJSON rejects unknown strategies.
func (s *RarityStrategyID) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("rarity strategy: %w", err)
	}
	if RarityStrategyID(v) != RarityStrategyOpenRarity {
		return fmt.Errorf("unknown rarity strategy %q", v)
	}
	*s = RarityStrategyID(v)
	return nil
}

// Rarity describes how rarity ranks were computed for a collection.
type Rarity struct {
	StrategyID      RarityStrategyID `json:"strategy_id"`
	StrategyVersion string           `json:"strategy_version"`
	CalculatedAt    string           `json:"calculated_at"`
	MaxRank         int              `json:"max_rank"`
	TotalSupply     int              `json:"total_supply"`
}

// CollectionFee is one platform or creator fee on a collection, as a
// percentage.
type CollectionFee struct {
	Fee       float64 `json:"fee"`
	Recipient string  `json:"recipient"`
	Required  bool    `json:"required"`
}

// PaymentToken is one currency a collection accepts. Address stays a
// string: its format depends on the chain.
type PaymentToken struct {
	Symbol   Currency `json:"symbol"`
	Address  string   `json:"address"`
	Chain    Chain    `json:"chain"`
	Image    string   `json:"image"`
	Name     string   `json:"name"`
	Decimals int      `json:"decimals"`
}

// ContractRef points at one deployed contract of a collection.
type ContractRef struct {
	Address string `json:"address"`
	Chain   Chain  `json:"chain"`
}

// CollectionResponse is the metadata record behind a collection slug.
// Test-network responses may omit fields that production carries, so
// everything optional stays optional.
type CollectionResponse struct {
	Collection              string          `json:"collection"`
	Name                    string          `json:"name"`
	Description             string          `json:"description"`
	ImageURL                string          `json:"image_url"`
	BannerImageURL          string          `json:"banner_image_url"`
	Owner                   string          `json:"owner"`
	SafelistStatus          SafelistStatus  `json:"safelist_status"`
	Category                string          `json:"category"`
	IsDisabled              bool            `json:"is_disabled"`
	IsNSFW                  bool            `json:"is_nsfw"`
	TraitOffersEnabled      bool            `json:"trait_offers_enabled"`
	CollectionOffersEnabled bool            `json:"collection_offers_enabled"`
	OpenseaURL              string          `json:"opensea_url"`
	ProjectURL              string          `json:"project_url"`
	WikiURL                 string          `json:"wiki_url"`
	DiscordURL              string          `json:"discord_url"`
	TelegramURL             string          `json:"telegram_url"`
	TwitterUsername         string          `json:"twitter_username"`
	InstagramUsername       string          `json:"instagram_username"`
	Contracts               []ContractRef   `json:"contracts"`
	Editors                 []string        `json:"editors"`
	Fees                    []CollectionFee `json:"fees"`
	Rarity                  *Rarity         `json:"rarity"`
	PaymentTokens           []PaymentToken  `json:"payment_tokens"`
	TotalSupply             uint64          `json:"total_supply"`
	CreatedDate             *Date           `json:"created_date"`
}
