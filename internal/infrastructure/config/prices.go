package config

import (
	"context"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
)

// CropPriceConfig is one configured baseline price entry.
type CropPriceConfig struct {
	// Price in UZS per kilogram
	Price float64 `mapstructure:"price" validate:"required,gt=0"`

	// Trend: increasing, decreasing or stable (default stable)
	Trend string `mapstructure:"trend" validate:"omitempty,oneof=increasing decreasing stable"`
}

// PricesConfig holds the configured baseline market prices, keyed by crop
// type name. These seed the price reference until recorded history takes
// over trend derivation.
type PricesConfig struct {
	Baseline map[string]CropPriceConfig `mapstructure:"baseline" validate:"dive"`
}

// StaticPriceReference serves the configured baseline prices.
type StaticPriceReference struct {
	prices map[crop.CropType]pricing.PriceInfo
}

// BuildPriceReference converts the loaded baseline table into a price
// reference. Crop type names are normalized the same way report input is.
func (c PricesConfig) BuildPriceReference() *StaticPriceReference {
	prices := make(map[crop.CropType]pricing.PriceInfo, len(c.Baseline))
	for name, entry := range c.Baseline {
		prices[crop.ParseCropType(name)] = pricing.PriceInfo{
			Price: entry.Price,
			Trend: pricing.ParsePriceTrend(entry.Trend),
		}
	}
	return &StaticPriceReference{prices: prices}
}

func (r *StaticPriceReference) CurrentPrice(_ context.Context, cropType crop.CropType) (pricing.PriceInfo, error) {
	info, ok := r.prices[cropType]
	if !ok {
		return pricing.PriceInfo{}, pricing.ErrPriceUnavailable
	}
	return info, nil
}
