package types

import (
	json "github.com/goccy/go-json"
)

// Bundle groups the assets on one side of an order. The order endpoints
// still emit bundles but the fields inside them are frozen; anything the
// server may reshape is kept as raw JSON.
type Bundle struct {
	Assets            []Asset         `json:"assets"`
	Maker             json.RawMessage `json:"maker"`
	Slug              *string         `json:"slug"`
	Name              *string         `json:"name"`
	Description       *string         `json:"description"`
	ExternalLink      *string         `json:"external_link"`
	AssetContract     json.RawMessage `json:"asset_contract"`
	Permalink         *string         `json:"permalink"`
	SeaportSellOrders json.RawMessage `json:"seaport_sell_orders"`
}

// Asset is one NFT inside a bundle.
type Asset struct {
	ID                   uint64           `json:"id"`
	TokenID              string           `json:"token_id"`
	NumSales             uint64           `json:"num_sales"`
	BackgroundColor      json.RawMessage  `json:"background_color"`
	ImageURL             string           `json:"image_url"`
	ImagePreviewURL      string           `json:"image_preview_url"`
	ImageThumbnailURL    string           `json:"image_thumbnail_url"`
	ImageOriginalURL     *string          `json:"image_original_url"`
	AnimationURL         json.RawMessage  `json:"animation_url"`
	AnimationOriginalURL json.RawMessage  `json:"animation_original_url"`
	Name                 string           `json:"name"`
	Description          *string          `json:"description"`
	ExternalLink         *string          `json:"external_link"`
	AssetContract        AssetContract    `json:"asset_contract"`
	Permalink            string           `json:"permalink"`
	Collection           BundleCollection `json:"collection"`
	Decimals             json.RawMessage  `json:"decimals"`
	TokenMetadata        *string          `json:"token_metadata"`
	IsNSFW               bool             `json:"is_nsfw"`
	Owner                json.RawMessage  `json:"owner"`
}

// AssetContract is the on-chain contract an asset belongs to.
type AssetContract struct {
	Address                     string          `json:"address"`
	AssetContractType           string          `json:"asset_contract_type"`
	ChainIdentifier             string          `json:"chain_identifier"`
	CreatedDate                 string          `json:"created_date"`
	Name                        string          `json:"name"`
	NFTVersion                  json.RawMessage `json:"nft_version"`
	OpenseaVersion              *string         `json:"opensea_version"`
	Owner                       *uint64         `json:"owner"`
	SchemaName                  string          `json:"schema_name"`
	Symbol                      string          `json:"symbol"`
	TotalSupply                 *string         `json:"total_supply"`
	Description                 *string         `json:"description"`
	ExternalLink                *string         `json:"external_link"`
	ImageURL                    *string         `json:"image_url"`
	DefaultToFiat               bool            `json:"default_to_fiat"`
	DevBuyerFeeBasisPoints      uint64          `json:"dev_buyer_fee_basis_points"`
	DevSellerFeeBasisPoints     uint64          `json:"dev_seller_fee_basis_points"`
	OnlyProxiedTransfers        bool            `json:"only_proxied_transfers"`
	OpenseaBuyerFeeBasisPoints  uint64          `json:"opensea_buyer_fee_basis_points"`
	OpenseaSellerFeeBasisPoints uint64          `json:"opensea_seller_fee_basis_points"`
	BuyerFeeBasisPoints         uint64          `json:"buyer_fee_basis_points"`
	SellerFeeBasisPoints        uint64          `json:"seller_fee_basis_points"`
	PayoutAddress               *string         `json:"payout_address"`
}

// BundleCollection is the collection record embedded in bundle assets.
// It predates CollectionResponse and keeps the old field set.
type BundleCollection struct {
	BannerImageURL              *string              `json:"banner_image_url"`
	ChatURL                     *string              `json:"chat_url"`
	CreatedDate                 string               `json:"created_date"`
	DefaultToFiat               bool                 `json:"default_to_fiat"`
	Description                 *string              `json:"description"`
	DevBuyerFeeBasisPoints      string               `json:"dev_buyer_fee_basis_points"`
	DevSellerFeeBasisPoints     string               `json:"dev_seller_fee_basis_points"`
	DiscordURL                  *string              `json:"discord_url"`
	DisplayData                 json.RawMessage      `json:"display_data"`
	ExternalURL                 *string              `json:"external_url"`
	Featured                    bool                 `json:"featured"`
	FeaturedImageURL            *string              `json:"featured_image_url"`
	Hidden                      bool                 `json:"hidden"`
	SafelistRequestStatus       string               `json:"safelist_request_status"`
	ImageURL                    *string              `json:"image_url"`
	IsSubjectToWhitelist        bool                 `json:"is_subject_to_whitelist"`
	LargeImageURL               *string              `json:"large_image_url"`
	MediumUsername              *string              `json:"medium_username"`
	Name                        string               `json:"name"`
	OnlyProxiedTransfers        bool                 `json:"only_proxied_transfers"`
	OpenseaBuyerFeeBasisPoints  string               `json:"opensea_buyer_fee_basis_points"`
	OpenseaSellerFeeBasisPoints uint64               `json:"opensea_seller_fee_basis_points"`
	PayoutAddress               *string              `json:"payout_address"`
	RequireEmail                bool                 `json:"require_email"`
	ShortDescription            json.RawMessage      `json:"short_description"`
	Slug                        string               `json:"slug"`
	TelegramURL                 json.RawMessage      `json:"telegram_url"`
	TwitterUsername             *string              `json:"twitter_username"`
	InstagramUsername           *string              `json:"instagram_username"`
	WikiURL                     json.RawMessage      `json:"wiki_url"`
	IsNSFW                      bool                 `json:"is_nsfw"`
	Fees                        BundleCollectionFees `json:"fees"`
	IsRarityEnabled             bool                 `json:"is_rarity_enabled"`
	IsCreatorFeesEnforced       bool                 `json:"is_creator_fees_enforced"`
}

// BundleCollectionFees maps fee recipient addresses to basis points.
type BundleCollectionFees struct {
	SellerFees  map[string]uint64 `json:"seller_fees"`
	OpenseaFees map[string]uint64 `json:"opensea_fees"`
}
