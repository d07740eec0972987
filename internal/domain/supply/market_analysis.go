package supply

import (
	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
)

// MarketRecommendation is the engine's verdict for entering a crop's market.
type MarketRecommendation string

const (
	RecommendationRecommended MarketRecommendation = "recommended"
	RecommendationConsider    MarketRecommendation = "consider"
	RecommendationCaution     MarketRecommendation = "caution"
	RecommendationAvoid       MarketRecommendation = "avoid"
)

func (m MarketRecommendation) String() string {
	return string(m)
}

// MarketAnalysis is the full per-crop market picture: supply aggregate,
// current price, score, and the derived labels. Ephemeral, recomputed per
// query.
type MarketAnalysis struct {
	CropType         crop.CropType
	TotalPlantedArea float64
	NumberOfFarms    int
	CurrentPrice     float64
	SupplyScore      float64
	PriceTrend       pricing.PriceTrend
	SaturationLevel  SaturationLevel
	Recommendation   MarketRecommendation
	RiskAssessment   RiskAssessment
}

// RecommendationFor is the deterministic decision table combining supply
// score and price trend:
//
//	score < 30:        increasing/stable -> recommended, decreasing -> consider
//	30 <= score <= 70: increasing -> consider, stable/decreasing -> caution
//	score > 70:        avoid
//
// Scores of exactly 30 and exactly 70 belong to the middle band.
func (p ScoringPolicy) RecommendationFor(score float64, trend pricing.PriceTrend) MarketRecommendation {
	switch {
	case score < p.SaturationLowMax:
		if trend == pricing.PriceTrendDecreasing {
			return RecommendationConsider
		}
		return RecommendationRecommended
	case score <= p.SaturationHighMin:
		if trend == pricing.PriceTrendIncreasing {
			return RecommendationConsider
		}
		return RecommendationCaution
	default:
		return RecommendationAvoid
	}
}

// AnalyzeMarket computes the MarketAnalysis for one crop from its supply
// aggregate and price reference. A crop with no reports is analyzed with a
// zero-valued aggregate and scores 0. A missing reference capacity returns a
// *ConfigurationMissingError instead of silently defaulting; the caller
// decides whether to omit the crop or surface the gap.
func AnalyzeMarket(
	cropType crop.CropType,
	aggregate CropSupplyAggregate,
	priceInfo pricing.PriceInfo,
	config ScoringConfig,
) (*MarketAnalysis, error) {
	capacity, err := config.ReferenceCapacity(cropType)
	if err != nil {
		return nil, err
	}

	policy := config.Policy()
	score := policy.SupplyScore(aggregate.TotalPlantedArea, capacity)

	return &MarketAnalysis{
		CropType:         cropType,
		TotalPlantedArea: aggregate.TotalPlantedArea,
		NumberOfFarms:    aggregate.NumberOfFarms,
		CurrentPrice:     priceInfo.Price,
		SupplyScore:      score,
		PriceTrend:       priceInfo.Trend,
		SaturationLevel:  policy.SaturationFor(score),
		Recommendation:   policy.RecommendationFor(score, priceInfo.Trend),
		RiskAssessment:   policy.RiskFor(score),
	}, nil
}

// CropFailure pairs a crop type with the per-crop error that kept it out of
// the successful results.
type CropFailure struct {
	CropType crop.CropType
	Err      error
}

// MarketReport is the partial-success envelope for a batch analysis: every
// crop that computed successfully plus every per-crop failure. One bad crop
// never blanks out results for the others.
type MarketReport struct {
	Analyses []MarketAnalysis
	Failures []CropFailure
}
