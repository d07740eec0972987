package supply

import (
	"fmt"
	"sort"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
)

// PlantingRecommendation is one ranked entry in the planting opportunity
// list.
type PlantingRecommendation struct {
	CropType         crop.CropType
	OpportunityScore float64
	Recommendation   MarketRecommendation
	Reasoning        string
}

// OpportunityRanking is the partial-success envelope for the ranked
// recommendation list.
type OpportunityRanking struct {
	Recommendations []PlantingRecommendation
	Failures        []CropFailure
}

// RankPlantingOpportunities scores every known crop type and returns the
// list sorted by descending opportunity score, ties broken by lexical crop
// type order so the output is a total order. Crops with zero current reports
// are maximally underfilled: supply score 0, opportunity 100.
//
// The opportunity score is the pure complement of the supply score
// (100 - supply score); the price trend feeds the recommendation label and
// reasoning but is not blended into the numeric score. The function is pure:
// identical inputs produce byte-identical output.
func RankPlantingOpportunities(
	allCropTypes []crop.CropType,
	aggregates map[crop.CropType]CropSupplyAggregate,
	priceReferences map[crop.CropType]pricing.PriceInfo,
	config ScoringConfig,
) OpportunityRanking {
	policy := config.Policy()

	// Deterministic iteration order regardless of input order.
	cropTypes := dedupeSorted(allCropTypes)

	var ranking OpportunityRanking
	for _, cropType := range cropTypes {
		capacity, err := config.ReferenceCapacity(cropType)
		if err != nil {
			ranking.Failures = append(ranking.Failures, CropFailure{CropType: cropType, Err: err})
			continue
		}

		priceInfo, ok := priceReferences[cropType]
		if !ok {
			ranking.Failures = append(ranking.Failures, CropFailure{
				CropType: cropType,
				Err:      NewConfigurationMissingError(cropType, "price reference"),
			})
			continue
		}

		aggregate := aggregates[cropType] // zero value when unreported
		score := policy.SupplyScore(aggregate.TotalPlantedArea, capacity)
		recommendation := policy.RecommendationFor(score, priceInfo.Trend)

		ranking.Recommendations = append(ranking.Recommendations, PlantingRecommendation{
			CropType:         cropType,
			OpportunityScore: ScoreCeiling - score,
			Recommendation:   recommendation,
			Reasoning:        reasoningFor(cropType, score, policy.SaturationFor(score), priceInfo.Trend, recommendation),
		})
	}

	sort.SliceStable(ranking.Recommendations, func(i, j int) bool {
		a, b := ranking.Recommendations[i], ranking.Recommendations[j]
		if a.OpportunityScore != b.OpportunityScore {
			return a.OpportunityScore > b.OpportunityScore
		}
		return a.CropType < b.CropType
	})

	return ranking
}

// reasoningFor renders the fixed reasoning template for a recommendation.
// These are parameterized sentences, not free text: the same computed triple
// always yields the same string.
func reasoningFor(
	cropType crop.CropType,
	score float64,
	saturation SaturationLevel,
	trend pricing.PriceTrend,
	recommendation MarketRecommendation,
) string {
	switch recommendation {
	case RecommendationRecommended:
		return fmt.Sprintf(
			"%s supply is %s (%.0f/100 of reference capacity) and prices are %s: a good opening for new plantings.",
			cropType, saturation, score, trend)
	case RecommendationConsider:
		return fmt.Sprintf(
			"%s supply is %s (%.0f/100 of reference capacity) with %s prices: viable, but watch the market before committing.",
			cropType, saturation, score, trend)
	case RecommendationCaution:
		return fmt.Sprintf(
			"%s supply is %s (%.0f/100 of reference capacity) and prices are %s: margins are likely to tighten at harvest.",
			cropType, saturation, score, trend)
	default:
		return fmt.Sprintf(
			"%s supply is %s (%.0f/100 of reference capacity): the market is oversupplied, expect price depression at harvest.",
			cropType, saturation, score)
	}
}

func dedupeSorted(cropTypes []crop.CropType) []crop.CropType {
	seen := make(map[crop.CropType]bool, len(cropTypes))
	out := make([]crop.CropType, 0, len(cropTypes))
	for _, ct := range cropTypes {
		if !seen[ct] {
			seen[ct] = true
			out = append(out, ct)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
