package pricefeed

import (
	"context"
	"fmt"
	"time"

	"github.com/agromap-uz/agromap-go/internal/application/common"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
)

// QuoteSource is the slice of the feed client the ingestor needs.
type QuoteSource interface {
	FetchQuotes(ctx context.Context) ([]*pricing.PricePoint, error)
}

// Ingestor pulls quotes from the feed and records them as price history, so
// trend derivation works from observed data instead of configured baselines.
type Ingestor struct {
	source  QuoteSource
	history pricing.PriceHistoryRepository
}

func NewIngestor(source QuoteSource, history pricing.PriceHistoryRepository) *Ingestor {
	return &Ingestor{source: source, history: history}
}

// IngestOnce fetches the current quotes and records them. Individual record
// failures abort the pass; a partial write is fine since each point stands
// alone in the history.
func (i *Ingestor) IngestOnce(ctx context.Context) (int, error) {
	points, err := i.source.FetchQuotes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to ingest price quotes: %w", err)
	}

	recorded := 0
	for _, point := range points {
		if err := i.history.RecordPrice(ctx, point); err != nil {
			return recorded, fmt.Errorf("failed to record price for %s: %w", point.CropType, err)
		}
		recorded++
	}

	common.LoggerFromContext(ctx).Log("INFO", "price quotes ingested", map[string]interface{}{
		"quotes_recorded": recorded,
	})

	return recorded, nil
}

// Run polls the feed at the given interval until the context is cancelled.
// Errors are logged and the loop keeps going; a flaky feed should not kill
// the process.
func (i *Ingestor) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := i.IngestOnce(ctx); err != nil {
			common.LoggerFromContext(ctx).Log("ERROR", "price ingestion failed", map[string]interface{}{
				"error": err.Error(),
			})
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
