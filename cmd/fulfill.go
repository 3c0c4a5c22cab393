package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tradeforge/go-opensea/pkg/config"
	"github.com/tradeforge/go-opensea/pkg/types"
)

//nolint:gochecknoglobals // Cobra boilerplate
var fulfillCmd = &cobra.Command{
	Use:   "fulfill",
	Short: "Compute the fulfillment transaction for a listing",
	Long: `Asks the API for the ready-to-submit transaction that fills one
listing: target contract, native value to attach and the signed Seaport
parameters.

The transaction is printed, never submitted.

Examples:
  go run . fulfill \
    --order-hash 0x541a9eb3962494caffeda36a495cc978c7ecc21c6b714aaabc678187d3da9ac7 \
    --fulfiller 0x3fa5b646b19271033f059ec83de38738f3d3d003`,
	Args: cobra.NoArgs,
	RunE: runFulfill,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(fulfillCmd)
	fulfillCmd.Flags().String("order-hash", "", "Hash of the listing to fulfill (required)")
	fulfillCmd.Flags().String("fulfiller", "", "Wallet that will submit the fulfillment (required)")
	fulfillCmd.Flags().String("protocol", "seaport1.6", "Seaport revision the listing was created against")
	_ = fulfillCmd.MarkFlagRequired("order-hash")
	_ = fulfillCmd.MarkFlagRequired("fulfiller")
}

func runFulfill(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := loadFulfillConfig()
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
	orderHash, _ := cmd.Flags().GetString("order-hash")
	fulfiller, _ := cmd.Flags().GetString("fulfiller")
	protocol, _ := cmd.Flags().GetString("protocol")

	chain, err := cfg.Chain()
	if err != nil {
		return err
	}

	req, err := buildFulfillRequest(orderHash, fulfiller, protocol, chain)
	if err != nil {
		return err
	}

	// Create client
	client, err := createListingsClient(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Fetch fulfillment data
	resp, err := client.FulfillListing(ctx, req)
	if err != nil {
		return fmt.Errorf("fulfill listing: %w", err)
	}

	displayFulfillment(resp)

	return nil
}

func loadFulfillConfig() (*config.Config, error) {
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

// buildFulfillRequest turns raw flag values into a typed request.
func buildFulfillRequest(orderHash, fulfiller, protocol string, chain types.Chain) (*types.FulfillListingRequest, error) {
	hash, err := types.ParseHash(orderHash)
	if err != nil {
		return nil, fmt.Errorf("parse order-hash: %w", err)
	}

	addr, err := types.ParseAddress(fulfiller)
	if err != nil {
		return nil, fmt.Errorf("parse fulfiller: %w", err)
	}

	version, err := types.ParseProtocolVersion(protocol)
	if err != nil {
		return nil, fmt.Errorf("parse protocol: %w", err)
	}

	return &types.FulfillListingRequest{
		Listing: types.ListingRef{
			Hash:            hash,
			Chain:           chain,
			ProtocolVersion: version,
		},
		Fulfiller: types.Fulfiller{Address: addr},
	}, nil
}

func displayFulfillment(resp *types.FulfillListingResponse) {
	tx := resp.FulfillmentData.Transaction

	fmt.Printf("=== Fulfillment Transaction ===\n\n")
	fmt.Printf("Protocol: %s\n", resp.Protocol)
	fmt.Printf("Function: %s\n", tx.Function)
	fmt.Printf("Chain ID: %d\n", tx.Chain)
	fmt.Printf("To:       %s\n", tx.To.Hex())
	fmt.Printf("Value:    %s wei\n", tx.Value.String())

	params, err := json.MarshalIndent(tx.InputData.Parameters, "", "  ")
	if err != nil {
		fmt.Printf("\nInput parameters unavailable: %v\n", err)
		return
	}
	fmt.Printf("\nInput parameters:\n%s\n", params)
}
