package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agromap-uz/agromap-go/internal/adapters/pricefeed"
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
)

// NewPriceCommand creates the price command with subcommands
func NewPriceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Record and ingest market prices",
		Long: `Manage the observed price history that drives trend derivation.

Examples:
  agromap price record --crop wheat --price 2720
  agromap price ingest --feed-url https://feed.example.uz
  agromap price trend --crop cotton`,
	}

	cmd.AddCommand(newPriceRecordCommand())
	cmd.AddCommand(newPriceIngestCommand())
	cmd.AddCommand(newPriceTrendCommand())

	return cmd
}

func newPriceRecordCommand() *cobra.Command {
	var (
		cropName string
		price    float64
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record one observed price",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			cropType := crop.ParseCropType(cropName)
			point := &pricing.PricePoint{
				CropType:   cropType,
				Price:      price,
				RecordedAt: time.Now().UTC(),
			}
			if err := env.history.RecordPrice(env.commandContext(), point); err != nil {
				return fmt.Errorf("failed to record price: %w", err)
			}

			fmt.Printf("Recorded %s at %.0f UZS/kg\n", cropType, price)
			return nil
		},
	}

	cmd.Flags().StringVar(&cropName, "crop", "", "Crop type (required)")
	cmd.Flags().Float64Var(&price, "price", 0, "Price in UZS per kg (required)")
	_ = cmd.MarkFlagRequired("crop")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newPriceIngestCommand() *cobra.Command {
	var feedURL string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Fetch current quotes from the price feed and record them",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			baseURL := feedURL
			if baseURL == "" {
				baseURL = env.cfg.Feed.BaseURL
			}
			if baseURL == "" {
				return fmt.Errorf("no feed URL: set --feed-url or feed.base_url in config")
			}

			client := pricefeed.NewClient(baseURL, pricefeed.ClientOptions{
				Timeout:          env.cfg.Feed.Timeout,
				RateLimit:        env.cfg.Feed.RateLimit.Requests,
				RateBurst:        env.cfg.Feed.RateLimit.Burst,
				MaxRetries:       env.cfg.Feed.Retry.MaxAttempts,
				BackoffBase:      env.cfg.Feed.Retry.BackoffBase,
				FailureThreshold: env.cfg.Feed.CircuitBreaker.FailureThreshold,
				ResetTimeout:     env.cfg.Feed.CircuitBreaker.ResetTimeout,
			})

			ingestor := pricefeed.NewIngestor(client, env.history)
			recorded, err := ingestor.IngestOnce(env.commandContext())
			if err != nil {
				return fmt.Errorf("ingestion failed: %w", err)
			}

			fmt.Printf("Recorded %d quote(s)\n", recorded)
			return nil
		},
	}

	cmd.Flags().StringVar(&feedURL, "feed-url", "", "Price feed base URL (overrides config)")

	return cmd
}

func newPriceTrendCommand() *cobra.Command {
	var cropName string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show the current price and derived trend for a crop",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			cropType := crop.ParseCropType(cropName)
			info, err := env.prices.CurrentPrice(env.commandContext(), cropType)
			if err != nil {
				return fmt.Errorf("failed to resolve price for %s: %w", cropType, err)
			}

			fmt.Printf("%s: %.0f UZS/kg, trend %s\n", cropType, info.Price, info.Trend)
			return nil
		},
	}

	cmd.Flags().StringVar(&cropName, "crop", "", "Crop type (required)")
	_ = cmd.MarkFlagRequired("crop")

	return cmd
}
