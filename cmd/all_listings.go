package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/tradeforge/go-opensea/pkg/config"
	"github.com/tradeforge/go-opensea/pkg/opensea"
	"github.com/tradeforge/go-opensea/pkg/types"
)

//nolint:gochecknoglobals // Cobra boilerplate
var allListingsCmd = &cobra.Command{
	Use:   "all-listings <collection-slug>",
	Short: "List active listings of a collection",
	Long: `Fetches active listings for one collection, cheapest first.

Pages through results with an opaque cursor. Pass --next to continue
from where a previous call stopped, or --pages to follow the cursor
automatically.`,
	Args: cobra.ExactArgs(1),
	RunE: runAllListings,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(allListingsCmd)
	allListingsCmd.Flags().IntP("limit", "l", 50, "Page size (1-50)")
	allListingsCmd.Flags().String("next", "", "Cursor from a previous page")
	allListingsCmd.Flags().IntP("pages", "p", 1, "Number of pages to fetch")
}

func runAllListings(cmd *cobra.Command, args []string) error {
	slug := args[0]

	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found\n")
	}

	// Load config
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
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
	limit, _ := cmd.Flags().GetInt("limit")
	next, _ := cmd.Flags().GetString("next")
	pages, _ := cmd.Flags().GetInt("pages")

	// Create client
	chain, err := cfg.Chain()
	if err != nil {
		return err
	}
	client, err := opensea.New(opensea.Config{
		APIKey:     cfg.APIKey,
		Chain:      chain,
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Fetch listings page by page
	fmt.Printf("Fetching listings for collection %q...\n\n", slug)

	var listings []types.ItemListing
	cursor := next
	for page := 0; page < pages; page++ {
		req := &types.GetAllListingsRequest{Next: cursor}
		if limit > 0 {
			req.Limit = &limit
		}

		resp, err := client.GetAllListings(ctx, slug, req)
		if err != nil {
			return fmt.Errorf("get all listings: %w", err)
		}

		listings = append(listings, resp.Listings...)

		if resp.Next == nil {
			cursor = ""
			break
		}
		cursor = *resp.Next
	}

	if len(listings) == 0 {
		fmt.Println("No active listings found.")
		return nil
	}

	// Display listings
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "HASH\tPRICE\tCURRENCY\tTYPE\n")
	fmt.Fprintf(w, "----\t-----\t--------\t----\n")

	for i := range listings {
		listing := &listings[i]
		price := listing.Price.Current

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			truncateMiddle(listing.OrderHash, 18),
			formatPrice(price),
			price.Currency,
			listing.Type)
	}

	w.Flush()

	fmt.Printf("\nTotal: %d listings\n", len(listings))
	if cursor != "" {
		fmt.Printf("Next page cursor: %s\n", cursor)
	}

	return nil
}

// formatPrice renders a smallest-denomination value in whole currency
// units. Unparseable values come back unchanged.
func formatPrice(p types.Price) string {
	d, err := decimal.NewFromString(p.Value)
	if err != nil {
		return p.Value
	}
	return d.Shift(-int32(p.Decimals)).String()
}
