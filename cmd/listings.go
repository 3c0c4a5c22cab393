package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tradeforge/go-opensea/pkg/config"
	"github.com/tradeforge/go-opensea/pkg/opensea"
	"github.com/tradeforge/go-opensea/pkg/types"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Retrieve active seaport listings",
	Long: `Fetches active seaport listings on the configured chain.

Filters are combined: a listing must match every flag that is set.
Sorting by eth_price requires --contract and at least one --token-id.

Examples:
  # Newest listings across the chain
  go run . listings

  # Listings for one contract, cheapest first
  go run . listings --contract 0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d \
    --token-id 1 --order-by eth_price --order-direction asc`,
	Args: cobra.NoArgs,
	RunE: runListings,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(listingsCmd)
	listingsCmd.Flags().String("contract", "", "Filter by NFT contract address")
	listingsCmd.Flags().StringSlice("token-id", nil, "Filter by decimal token id (repeatable)")
	listingsCmd.Flags().String("maker", "", "Filter by maker wallet address")
	listingsCmd.Flags().String("taker", "", "Filter by taker wallet address")
	listingsCmd.Flags().IntP("limit", "l", 20, "Maximum number of listings to fetch (1-50)")
	listingsCmd.Flags().String("order-by", "created_date", "Sort key: created_date or eth_price")
	listingsCmd.Flags().String("order-direction", "desc", "Sort direction: asc or desc")
	listingsCmd.Flags().String("listed-after", "", "Only listings after this time (RFC3339 or unix seconds)")
	listingsCmd.Flags().String("listed-before", "", "Only listings before this time (RFC3339 or unix seconds)")
}

// listingsFilters carries the raw flag values of the listings command.
type listingsFilters struct {
	Contract       string
	TokenIDs       []string
	Maker          string
	Taker          string
	Limit          int
	OrderBy        string
	OrderDirection string
	ListedAfter    string
	ListedBefore   string
}

func runListings(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Load configuration
	cfg, err := loadListingsConfig()
	if err != nil {
		return err
	}

	// Create logger
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Get flags
	filters := listingsFilters{}
	filters.Contract, _ = cmd.Flags().GetString("contract")
	filters.TokenIDs, _ = cmd.Flags().GetStringSlice("token-id")
	filters.Maker, _ = cmd.Flags().GetString("maker")
	filters.Taker, _ = cmd.Flags().GetString("taker")
	filters.Limit, _ = cmd.Flags().GetInt("limit")
	filters.OrderBy, _ = cmd.Flags().GetString("order-by")
	filters.OrderDirection, _ = cmd.Flags().GetString("order-direction")
	filters.ListedAfter, _ = cmd.Flags().GetString("listed-after")
	filters.ListedBefore, _ = cmd.Flags().GetString("listed-before")

	req, err := buildListingsRequest(filters)
	if err != nil {
		return err
	}

	// Create client
	client, err := createListingsClient(cfg, logger)
	if err != nil {
		return err
	}

	// Fetch listings
	fmt.Printf("Fetching up to %d listings on %s...\n\n", filters.Limit, client.Chain())

	resp, err := client.RetrieveListings(ctx, req)
	if err != nil {
		return fmt.Errorf("retrieve listings: %w", err)
	}

	if len(resp.Orders) == 0 {
		fmt.Println("No listings found.")
		return nil
	}

	displayListingsTable(resp.Orders)

	fmt.Printf("\nTotal: %d listings\n", len(resp.Orders))
	if resp.Next != nil {
		fmt.Printf("Next page cursor: %s\n", *resp.Next)
	}

	return nil
}

func loadListingsConfig() (*config.Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

func createListingsClient(cfg *config.Config, logger *zap.Logger) (*opensea.Client, error) {
	chain, err := cfg.Chain()
	if err != nil {
		return nil, err
	}

	client, err := opensea.New(opensea.Config{
		APIKey:     cfg.APIKey,
		Chain:      chain,
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return client, nil
}

// buildListingsRequest turns raw flag values into a typed request.
func buildListingsRequest(filters listingsFilters) (*types.RetrieveListingsRequest, error) {
	req := &types.RetrieveListingsRequest{
		TokenIDs:       filters.TokenIDs,
		OrderBy:        types.OrderBy(filters.OrderBy),
		OrderDirection: types.OrderDirection(filters.OrderDirection),
	}

	if filters.Contract != "" {
		addr, err := types.ParseAddress(filters.Contract)
		if err != nil {
			return nil, fmt.Errorf("parse contract: %w", err)
		}
		req.AssetContractAddress = &addr
	}

	if filters.Maker != "" {
		addr, err := types.ParseAddress(filters.Maker)
		if err != nil {
			return nil, fmt.Errorf("parse maker: %w", err)
		}
		req.Maker = &addr
	}

	if filters.Taker != "" {
		addr, err := types.ParseAddress(filters.Taker)
		if err != nil {
			return nil, fmt.Errorf("parse taker: %w", err)
		}
		req.Taker = &addr
	}

	if filters.Limit > 0 {
		limit := filters.Limit
		req.Limit = &limit
	}

	if filters.ListedAfter != "" {
		after, err := parseListedTime(filters.ListedAfter)
		if err != nil {
			return nil, fmt.Errorf("parse listed-after: %w", err)
		}
		req.ListedAfter = &after
	}

	if filters.ListedBefore != "" {
		before, err := parseListedTime(filters.ListedBefore)
		if err != nil {
			return nil, fmt.Errorf("parse listed-before: %w", err)
		}
		req.ListedBefore = &before
	}

	return req, nil
}

// parseListedTime accepts RFC3339 timestamps or unix seconds.
func parseListedTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q, want RFC3339 or unix seconds", s)
}

func displayListingsTable(orders []types.Order) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "HASH\tPRICE (ETH)\tMAKER\tTYPE\tFILLABLE\tCREATED\n")
	fmt.Fprintf(w, "----\t-----------\t-----\t----\t--------\t-------\n")

	for i := range orders {
		order := &orders[i]

		fillable := "yes"
		if !order.IsFillable() {
			fillable = "no"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			truncateMiddle(order.Hash(), 18),
			types.WeiToEth(order.CurrentPrice).String(),
			truncateMiddle(order.Maker.Address, 14),
			order.OrderType,
			fillable,
			order.CreatedDate)
	}

	w.Flush()
}

// truncateMiddle shortens long hex strings, keeping both ends visible.
func truncateMiddle(s string, max int) string {
	if len(s) <= max || max < 5 {
		return s
	}
	keep := (max - 3) / 2
	return s[:max-3-keep] + "..." + s[len(s)-keep:]
}
