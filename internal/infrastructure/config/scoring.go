package config

import (
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/supply"
)

// ScoringConfig holds the supply scoring calibration: per-crop reference
// capacities and the saturation thresholds.
type ScoringConfig struct {
	// Capacities maps crop type names to reference capacity in hectares,
	// the expected healthy total planted area for the observed region set.
	// Crops without an entry are reported as configuration gaps, never
	// scored against a default.
	Capacities map[string]float64 `mapstructure:"capacities"`

	// SaturationLowMax is the exclusive upper bound of the low saturation
	// bucket (default 30).
	SaturationLowMax float64 `mapstructure:"saturation_low_max" validate:"omitempty,gt=0,lt=100"`

	// SaturationHighMin is the inclusive lower bound of the high saturation
	// bucket (default 70).
	SaturationHighMin float64 `mapstructure:"saturation_high_min" validate:"omitempty,gt=0,lte=100"`
}

// BuildScoringConfig converts the loaded configuration into the domain's
// scoring configuration. Crop type names are normalized, so "Wheat" and
// "wheat" configure the same crop.
func (c ScoringConfig) BuildScoringConfig() *supply.StaticScoringConfig {
	capacities := make(map[crop.CropType]float64, len(c.Capacities))
	for name, capacity := range c.Capacities {
		capacities[crop.ParseCropType(name)] = capacity
	}

	policy := supply.DefaultScoringPolicy()
	if c.SaturationLowMax > 0 {
		policy.SaturationLowMax = c.SaturationLowMax
	}
	if c.SaturationHighMin > 0 {
		policy.SaturationHighMin = c.SaturationHighMin
	}

	return supply.NewStaticScoringConfig(capacities, policy)
}
