package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tradeforge/go-opensea/pkg/config"
	"github.com/tradeforge/go-opensea/pkg/opensea"
	"github.com/tradeforge/go-opensea/pkg/types"
)

//nolint:gochecknoglobals // Cobra boilerplate
var collectionCmd = &cobra.Command{
	Use:   "collection <collection-slug>",
	Short: "Show collection metadata",
	Long: `Fetches the metadata record behind a collection slug, including
its contracts, fee schedule and safelist status.`,
	Args: cobra.ExactArgs(1),
	RunE: runCollection,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(collectionCmd)
	collectionCmd.Flags().BoolP("verbose", "v", false, "Show description, links and payment tokens")
}

func runCollection(cmd *cobra.Command, args []string) error {
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
	verbose, _ := cmd.Flags().GetBool("verbose")

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Fetch collection
	coll, err := client.GetCollection(ctx, slug)
	if err != nil {
		return fmt.Errorf("get collection: %w", err)
	}

	displayCollection(coll, verbose)

	return nil
}

func displayCollection(coll *types.CollectionResponse, verbose bool) {
	fmt.Printf("=== %s ===\n\n", coll.Name)
	fmt.Printf("Slug:            %s\n", coll.Collection)
	fmt.Printf("Owner:           %s\n", coll.Owner)
	fmt.Printf("Safelist status: %s\n", coll.SafelistStatus)
	fmt.Printf("Total supply:    %d\n", coll.TotalSupply)
	if coll.CreatedDate != nil {
		fmt.Printf("Created:         %s\n", coll.CreatedDate)
	}
	if coll.IsDisabled {
		fmt.Printf("Disabled:        yes\n")
	}
	if coll.IsNSFW {
		fmt.Printf("NSFW:            yes\n")
	}

	if len(coll.Contracts) > 0 {
		fmt.Printf("\nContracts:\n")
		for _, contract := range coll.Contracts {
			fmt.Printf("  %s (%s)\n", contract.Address, contract.Chain)
		}
	}

	if len(coll.Fees) > 0 {
		fmt.Printf("\nFees:\n")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  FEE\tRECIPIENT\tREQUIRED\n")
		for _, fee := range coll.Fees {
			required := "no"
			if fee.Required {
				required = "yes"
			}
			fmt.Fprintf(w, "  %.2f%%\t%s\t%s\n", fee.Fee, fee.Recipient, required)
		}
		w.Flush()
	}

	if verbose {
		if coll.Description != "" {
			fmt.Printf("\nDescription:\n  %s\n", coll.Description)
		}
		if coll.OpenseaURL != "" {
			fmt.Printf("\nOpenSea:  %s\n", coll.OpenseaURL)
		}
		if coll.ProjectURL != "" {
			fmt.Printf("Project:  %s\n", coll.ProjectURL)
		}
		if coll.DiscordURL != "" {
			fmt.Printf("Discord:  %s\n", coll.DiscordURL)
		}
		if coll.TwitterUsername != "" {
			fmt.Printf("Twitter:  @%s\n", coll.TwitterUsername)
		}
		if len(coll.PaymentTokens) > 0 {
			fmt.Printf("\nPayment tokens:\n")
			for _, token := range coll.PaymentTokens {
				fmt.Printf("  %s (%s, %d decimals)\n", token.Symbol, token.Chain, token.Decimals)
			}
		}
	}
}
