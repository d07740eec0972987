package supply

import (
	"github.com/agromap-uz/agromap-go/pkg/utils"
)

// SaturationLevel is the categorical bucket derived from the supply score.
type SaturationLevel string

const (
	SaturationLow      SaturationLevel = "low"
	SaturationModerate SaturationLevel = "moderate"
	SaturationHigh     SaturationLevel = "high"
)

func (s SaturationLevel) String() string {
	return string(s)
}

// RiskAssessment frames saturation for a new farmer entering the crop: high
// existing saturation means high risk of price depression at harvest.
type RiskAssessment string

const (
	RiskLow    RiskAssessment = "low"
	RiskMedium RiskAssessment = "medium"
	RiskHigh   RiskAssessment = "high"
)

func (r RiskAssessment) String() string {
	return string(r)
}

// Default threshold values. The thresholds are tunable policy, not physical
// law; ScoringPolicy carries them as named fields so recalibration never
// touches scoring logic.
const (
	DefaultSaturationLowMax  = 30.0
	DefaultSaturationHighMin = 70.0

	// Supply score bounds.
	ScoreFloor   = 0.0
	ScoreCeiling = 100.0
)

// ScoringPolicy holds the calibrated thresholds used for saturation buckets
// and the recommendation decision table.
type ScoringPolicy struct {
	// SaturationLowMax is the exclusive upper bound of the "low" saturation
	// bucket. Scores of exactly this value fall into "moderate".
	SaturationLowMax float64

	// SaturationHighMin is the inclusive lower bound of the "high" saturation
	// bucket.
	SaturationHighMin float64
}

// DefaultScoringPolicy returns the policy with the standard 30/70 cutoffs.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		SaturationLowMax:  DefaultSaturationLowMax,
		SaturationHighMin: DefaultSaturationHighMin,
	}
}

// SupplyScore converts a crop's total planted area into the 0-100 supply
// signal: the share of the configured reference capacity already claimed by
// reported plantings, clamped to [0, 100]. Total area exactly equal to the
// capacity yields exactly 100. referenceCapacity must be positive; the
// caller resolves and validates it before scoring.
func (p ScoringPolicy) SupplyScore(totalPlantedArea, referenceCapacity float64) float64 {
	if totalPlantedArea <= 0 {
		return ScoreFloor
	}
	return utils.Clamp(ScoreCeiling*totalPlantedArea/referenceCapacity, ScoreFloor, ScoreCeiling)
}

// SaturationFor buckets a supply score: below SaturationLowMax is low, at or
// above SaturationHighMin is high, everything between is moderate.
func (p ScoringPolicy) SaturationFor(score float64) SaturationLevel {
	switch {
	case score < p.SaturationLowMax:
		return SaturationLow
	case score >= p.SaturationHighMin:
		return SaturationHigh
	default:
		return SaturationModerate
	}
}

// RiskFor mirrors the saturation bucket onto the entrant-risk scale.
func (p ScoringPolicy) RiskFor(score float64) RiskAssessment {
	switch p.SaturationFor(score) {
	case SaturationLow:
		return RiskLow
	case SaturationHigh:
		return RiskHigh
	default:
		return RiskMedium
	}
}
