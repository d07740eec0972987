package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath  string
	databaseURL string
	verbose     bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "agromap",
		Short: "AgroMap advisor - crop supply analysis and planting recommendations",
		Long: `AgroMap advisor aggregates farmer crop reports, scores market
saturation per crop and recommends what to plant next.

Examples:
  agromap report submit --crop wheat --area 12.5 --lat 41.31 --lon 69.28
  agromap report list --crop cotton
  agromap market analyze
  agromap recommend
  agromap rotation --previous wheat
  agromap dashboard
  agromap price record --crop potato --price 3400
  agromap price ingest --feed-url https://feed.example.uz`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: startMetrics,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs or /etc/agromap)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "",
		"Database URL or sqlite path (overrides config and DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewReportCommand())
	rootCmd.AddCommand(NewMarketCommand())
	rootCmd.AddCommand(NewRecommendCommand())
	rootCmd.AddCommand(NewRotationCommand())
	rootCmd.AddCommand(NewDashboardCommand())
	rootCmd.AddCommand(NewPriceCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
