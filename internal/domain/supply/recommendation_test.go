package supply_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
	"github.com/agromap-uz/agromap-go/internal/domain/supply"
)

func TestRankPlantingOpportunities_OrdersByOpportunityDescending(t *testing.T) {
	// Arrange: wheat at 30% capacity, cotton saturated, potato unreported.
	reports := []*crop.CropReport{
		newReport(t, "wheat", 15),
		newReport(t, "cotton", 100),
	}
	aggregates := supply.ComputeSupplyAggregates(reports)
	config := staticConfig(map[crop.CropType]float64{
		crop.CropTypeWheat:  50,
		crop.CropTypeCotton: 50,
		crop.CropTypePotato: 50,
	})
	prices := map[crop.CropType]pricing.PriceInfo{
		crop.CropTypeWheat:  {Price: 2720, Trend: pricing.PriceTrendStable},
		crop.CropTypeCotton: {Price: 8900, Trend: pricing.PriceTrendIncreasing},
		crop.CropTypePotato: {Price: 3400, Trend: pricing.PriceTrendStable},
	}
	allCrops := []crop.CropType{crop.CropTypeWheat, crop.CropTypeCotton, crop.CropTypePotato}

	// Act
	ranking := supply.RankPlantingOpportunities(allCrops, aggregates, prices, config)

	// Assert
	require.Empty(t, ranking.Failures)
	require.Len(t, ranking.Recommendations, 3)

	// Potato has zero reports: maximally underfilled.
	assert.Equal(t, crop.CropTypePotato, ranking.Recommendations[0].CropType)
	assert.Equal(t, 100.0, ranking.Recommendations[0].OpportunityScore)
	assert.Equal(t, supply.RecommendationRecommended, ranking.Recommendations[0].Recommendation)

	assert.Equal(t, crop.CropTypeWheat, ranking.Recommendations[1].CropType)
	assert.Equal(t, 70.0, ranking.Recommendations[1].OpportunityScore)

	assert.Equal(t, crop.CropTypeCotton, ranking.Recommendations[2].CropType)
	assert.Equal(t, 0.0, ranking.Recommendations[2].OpportunityScore)
	assert.Equal(t, supply.RecommendationAvoid, ranking.Recommendations[2].Recommendation)
}

func TestRankPlantingOpportunities_IsDeterministic(t *testing.T) {
	reports := []*crop.CropReport{
		newReport(t, "wheat", 25),
		newReport(t, "barley", 25),
	}
	aggregates := supply.ComputeSupplyAggregates(reports)
	config := staticConfig(map[crop.CropType]float64{
		crop.CropTypeWheat:  50,
		crop.CropTypeBarley: 50,
		crop.CropTypeCorn:   50,
		crop.CropTypeRice:   50,
	})
	prices := map[crop.CropType]pricing.PriceInfo{
		crop.CropTypeWheat:  {Price: 2720, Trend: pricing.PriceTrendStable},
		crop.CropTypeBarley: {Price: 2100, Trend: pricing.PriceTrendStable},
		crop.CropTypeCorn:   {Price: 3100, Trend: pricing.PriceTrendStable},
		crop.CropTypeRice:   {Price: 4950, Trend: pricing.PriceTrendStable},
	}
	// Shuffled input orders must not change the output.
	first := supply.RankPlantingOpportunities(
		[]crop.CropType{crop.CropTypeRice, crop.CropTypeWheat, crop.CropTypeBarley, crop.CropTypeCorn},
		aggregates, prices, config)
	second := supply.RankPlantingOpportunities(
		[]crop.CropType{crop.CropTypeBarley, crop.CropTypeCorn, crop.CropTypeRice, crop.CropTypeWheat},
		aggregates, prices, config)

	assert.Equal(t, first, second)
}

func TestRankPlantingOpportunities_TieBreaksLexically(t *testing.T) {
	// barley and wheat both at 50% capacity; corn and rice both unreported.
	reports := []*crop.CropReport{
		newReport(t, "wheat", 25),
		newReport(t, "barley", 25),
	}
	aggregates := supply.ComputeSupplyAggregates(reports)
	config := staticConfig(map[crop.CropType]float64{
		crop.CropTypeWheat:  50,
		crop.CropTypeBarley: 50,
		crop.CropTypeCorn:   50,
		crop.CropTypeRice:   50,
	})
	prices := map[crop.CropType]pricing.PriceInfo{
		crop.CropTypeWheat:  {Price: 2720, Trend: pricing.PriceTrendStable},
		crop.CropTypeBarley: {Price: 2100, Trend: pricing.PriceTrendStable},
		crop.CropTypeCorn:   {Price: 3100, Trend: pricing.PriceTrendStable},
		crop.CropTypeRice:   {Price: 4950, Trend: pricing.PriceTrendStable},
	}

	ranking := supply.RankPlantingOpportunities(
		[]crop.CropType{crop.CropTypeWheat, crop.CropTypeRice, crop.CropTypeBarley, crop.CropTypeCorn},
		aggregates, prices, config)

	require.Len(t, ranking.Recommendations, 4)
	// corn before rice at 100, barley before wheat at 50.
	assert.Equal(t, crop.CropTypeCorn, ranking.Recommendations[0].CropType)
	assert.Equal(t, crop.CropTypeRice, ranking.Recommendations[1].CropType)
	assert.Equal(t, crop.CropTypeBarley, ranking.Recommendations[2].CropType)
	assert.Equal(t, crop.CropTypeWheat, ranking.Recommendations[3].CropType)
}

func TestRankPlantingOpportunities_CollectsPerCropFailures(t *testing.T) {
	// rice has no capacity configured, corn has no price reference; wheat is
	// fine. The two gaps must not blank out wheat's result.
	reports := []*crop.CropReport{newReport(t, "wheat", 15)}
	aggregates := supply.ComputeSupplyAggregates(reports)
	config := staticConfig(map[crop.CropType]float64{
		crop.CropTypeWheat: 50,
		crop.CropTypeCorn:  50,
	})
	prices := map[crop.CropType]pricing.PriceInfo{
		crop.CropTypeWheat: {Price: 2720, Trend: pricing.PriceTrendStable},
		crop.CropTypeRice:  {Price: 4950, Trend: pricing.PriceTrendStable},
	}

	ranking := supply.RankPlantingOpportunities(
		[]crop.CropType{crop.CropTypeWheat, crop.CropTypeRice, crop.CropTypeCorn},
		aggregates, prices, config)

	require.Len(t, ranking.Recommendations, 1)
	assert.Equal(t, crop.CropTypeWheat, ranking.Recommendations[0].CropType)

	require.Len(t, ranking.Failures, 2)
	for _, failure := range ranking.Failures {
		assert.True(t, errors.Is(failure.Err, supply.ErrConfigurationMissing))
	}
}

func TestRankPlantingOpportunities_ReasoningIsTemplated(t *testing.T) {
	config := staticConfig(map[crop.CropType]float64{crop.CropTypeWheat: 50})
	prices := map[crop.CropType]pricing.PriceInfo{
		crop.CropTypeWheat: {Price: 2720, Trend: pricing.PriceTrendStable},
	}

	first := supply.RankPlantingOpportunities(
		[]crop.CropType{crop.CropTypeWheat}, nil, prices, config)
	second := supply.RankPlantingOpportunities(
		[]crop.CropType{crop.CropTypeWheat}, nil, prices, config)

	require.Len(t, first.Recommendations, 1)
	assert.NotEmpty(t, first.Recommendations[0].Reasoning)
	assert.Equal(t, first.Recommendations[0].Reasoning, second.Recommendations[0].Reasoning)
	assert.Contains(t, first.Recommendations[0].Reasoning, "wheat")
}
