package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "go-opensea",
	Short: "OpenSea marketplace client",
	Long: `Client for the OpenSea v2 marketplace API.

Retrieves seaport listings, collection metadata and fulfillment payloads,
and can run a long-lived watcher that polls for newly created listings,
caches them by order hash and serves them over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	// Flags can be added here if needed
}
