package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tradeforge/go-opensea/internal/app"
	"github.com/tradeforge/go-opensea/pkg/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for newly created listings",
	Long: `Starts the listing watcher, which will:
1. Poll the seaport listings endpoint for newly created orders
2. Cache every discovered order under its hash
3. Serve cached orders, health and metrics over HTTP

Use --contract to restrict the watch to a single NFT contract.`,
	RunE: runWatch,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringP("contract", "c", "", "Watch only this NFT contract (overrides WATCH_CONTRACT)")
}

func runWatch(cmd *cobra.Command, args []string) error {
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
	contract, _ := cmd.Flags().GetString("contract")

	// Create app with options
	opts := &app.Options{
		Contract: contract,
	}

	application, err := app.New(cfg, logger, opts)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	// Run app
	err = application.Run()
	if err != nil {
		return fmt.Errorf("run app: %w", err)
	}

	return nil
}
