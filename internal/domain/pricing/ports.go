package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

// ErrPriceUnavailable indicates no price reference exists for a crop type.
var ErrPriceUnavailable = errors.New("no price reference for crop type")

// PriceInfo is the current market price for a crop together with its
// short-term trend. Prices are quoted in UZS per kilogram.
type PriceInfo struct {
	Price float64
	Trend PriceTrend
}

// PriceReference supplies current baseline prices. The engine never computes
// prices from first principles; it only consumes this reference.
type PriceReference interface {
	// CurrentPrice returns the price info for a crop, or ErrPriceUnavailable
	// when the crop has no configured or observed price.
	CurrentPrice(ctx context.Context, cropType crop.CropType) (PriceInfo, error)
}

// PricePoint is a single observed price for a crop at a point in time.
type PricePoint struct {
	CropType   crop.CropType
	Price      float64
	RecordedAt time.Time
}

// PriceHistoryRepository persists observed price points and serves them back
// for trend derivation.
type PriceHistoryRepository interface {
	RecordPrice(ctx context.Context, point *PricePoint) error

	// PriceSeries returns up to limit prices for a crop ordered oldest first,
	// suitable for feeding directly into TrendFromSeries.
	PriceSeries(ctx context.Context, cropType crop.CropType, limit int) ([]float64, error)

	// LatestPrice returns the most recently recorded price point for a crop,
	// or ErrPriceUnavailable when none exists.
	LatestPrice(ctx context.Context, cropType crop.CropType) (*PricePoint, error)
}
