package supply

import (
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
)

// ScoringConfig supplies the per-crop reference capacities and the threshold
// policy the engine scores against. Reference capacity is an external
// configuration input (the expected healthy total planted area for a crop in
// the observed region set), never computed.
type ScoringConfig interface {
	// ReferenceCapacity returns the configured capacity in hectares for a
	// crop, or a *ConfigurationMissingError when the crop is not configured.
	// There is no default capacity: an unconfigured crop must surface the
	// gap rather than score against an arbitrary denominator.
	ReferenceCapacity(cropType crop.CropType) (float64, error)

	// Policy returns the threshold policy used for saturation buckets and
	// the recommendation decision table.
	Policy() ScoringPolicy
}

// StaticScoringConfig is a ScoringConfig backed by an in-memory capacity
// table. It is the standard implementation: the infrastructure config layer
// builds one from the loaded configuration, and tests build them directly.
type StaticScoringConfig struct {
	capacities map[crop.CropType]float64
	policy     ScoringPolicy
}

// NewStaticScoringConfig copies the given capacity table. A nil or empty map
// is valid and simply reports every crop as unconfigured.
func NewStaticScoringConfig(capacities map[crop.CropType]float64, policy ScoringPolicy) *StaticScoringConfig {
	table := make(map[crop.CropType]float64, len(capacities))
	for cropType, capacity := range capacities {
		table[cropType] = capacity
	}
	return &StaticScoringConfig{capacities: table, policy: policy}
}

func (c *StaticScoringConfig) ReferenceCapacity(cropType crop.CropType) (float64, error) {
	capacity, ok := c.capacities[cropType]
	if !ok || capacity <= 0 {
		return 0, NewConfigurationMissingError(cropType, "reference capacity")
	}
	return capacity, nil
}

func (c *StaticScoringConfig) Policy() ScoringPolicy {
	return c.policy
}
