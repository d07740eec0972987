package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agromap-uz/agromap-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration after defaults and env overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fmt.Printf("Database: %s", cfg.Database.Type)
			if cfg.Database.Type == "sqlite" {
				fmt.Printf(" (%s)\n", cfg.Database.Path)
			} else {
				fmt.Printf(" (%s:%d/%s)\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
			}

			fmt.Printf("Saturation thresholds: low < %.0f, high >= %.0f\n\n",
				cfg.Scoring.SaturationLowMax, cfg.Scoring.SaturationHighMin)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CROP\tCAPACITY (HA)\tBASELINE PRICE (UZS/KG)\tTREND")
			for _, name := range sortedCropNames(cfg) {
				capacity := "-"
				if c, ok := cfg.Scoring.Capacities[name]; ok {
					capacity = fmt.Sprintf("%.0f", c)
				}
				price, trend := "-", "-"
				if p, ok := cfg.Prices.Baseline[name]; ok {
					price = fmt.Sprintf("%.0f", p.Price)
					trend = p.Trend
					if trend == "" {
						trend = "stable"
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, capacity, price, trend)
			}
			w.Flush()

			if cfg.Feed.BaseURL != "" {
				fmt.Printf("\nPrice feed: %s (poll every %s)\n", cfg.Feed.BaseURL, cfg.Feed.PollInterval)
			}
			if cfg.Metrics.Enabled {
				fmt.Printf("Metrics: http://%s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
			}
			return nil
		},
	}

	return cmd
}

// sortedCropNames returns the union of configured capacity and price crop
// names, sorted.
func sortedCropNames(cfg *config.Config) []string {
	seen := make(map[string]bool)
	var names []string
	for name := range cfg.Scoring.Capacities {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range cfg.Prices.Baseline {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
