package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
)

// trendSeriesLimit bounds how many observations feed trend derivation. The
// moving-average windows only look at the trailing seven points, so anything
// beyond a small buffer is wasted I/O.
const trendSeriesLimit = 30

// HistoryPriceReference resolves current prices from recorded price history,
// deriving the trend from the trailing series. When a crop has no recorded
// history it falls back to the wrapped reference (typically the configured
// baseline prices), so a fresh database still produces analyses.
type HistoryPriceReference struct {
	history  pricing.PriceHistoryRepository
	fallback pricing.PriceReference
}

// NewHistoryPriceReference creates a history-backed price reference. The
// fallback may be nil, in which case crops without history are unavailable.
func NewHistoryPriceReference(history pricing.PriceHistoryRepository, fallback pricing.PriceReference) *HistoryPriceReference {
	return &HistoryPriceReference{history: history, fallback: fallback}
}

func (r *HistoryPriceReference) CurrentPrice(ctx context.Context, cropType crop.CropType) (pricing.PriceInfo, error) {
	latest, err := r.history.LatestPrice(ctx, cropType)
	if err != nil {
		if errors.Is(err, pricing.ErrPriceUnavailable) {
			return r.fallbackPrice(ctx, cropType)
		}
		return pricing.PriceInfo{}, fmt.Errorf("failed to resolve latest price: %w", err)
	}

	series, err := r.history.PriceSeries(ctx, cropType, trendSeriesLimit)
	if err != nil {
		return pricing.PriceInfo{}, fmt.Errorf("failed to load price series: %w", err)
	}

	return pricing.PriceInfo{
		Price: latest.Price,
		Trend: pricing.TrendFromSeries(series),
	}, nil
}

func (r *HistoryPriceReference) fallbackPrice(ctx context.Context, cropType crop.CropType) (pricing.PriceInfo, error) {
	if r.fallback == nil {
		return pricing.PriceInfo{}, pricing.ErrPriceUnavailable
	}
	return r.fallback.CurrentPrice(ctx, cropType)
}
