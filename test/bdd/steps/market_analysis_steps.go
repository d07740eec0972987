package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/agromap-uz/agromap-go/internal/domain/crop"
	"github.com/agromap-uz/agromap-go/internal/domain/pricing"
	"github.com/agromap-uz/agromap-go/internal/domain/supply"
)

type marketAnalysisContext struct {
	capacities map[crop.CropType]float64
	reports    []*crop.CropReport
	trends     map[crop.CropType]pricing.PriceTrend
	reportSeq  int

	analysis    *supply.MarketAnalysis
	analysisErr error
	ranking     supply.OpportunityRanking
}

func (ctx *marketAnalysisContext) reset() {
	ctx.capacities = make(map[crop.CropType]float64)
	ctx.reports = nil
	ctx.trends = make(map[crop.CropType]pricing.PriceTrend)
	ctx.reportSeq = 0
	ctx.analysis = nil
	ctx.analysisErr = nil
	ctx.ranking = supply.OpportunityRanking{}
}

func InitializeMarketAnalysisScenario(sc *godog.ScenarioContext) {
	maCtx := &marketAnalysisContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		maCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a reference capacity of (\d+(?:\.\d+)?) hectares for "([^"]*)"$`, maCtx.referenceCapacity)
	sc.Step(`^farmers reported a total of (\d+(?:\.\d+)?) hectares of "([^"]*)"$`, maCtx.farmersReported)
	sc.Step(`^the market price trend for "([^"]*)" is "([^"]*)"$`, maCtx.priceTrend)
	sc.Step(`^the market for "([^"]*)" is analyzed$`, maCtx.analyzeMarket)
	sc.Step(`^the supply score is (\d+(?:\.\d+)?)$`, maCtx.supplyScoreIs)
	sc.Step(`^the saturation level is "([^"]*)"$`, maCtx.saturationLevelIs)
	sc.Step(`^the market recommendation is "([^"]*)"$`, maCtx.recommendationIs)
	sc.Step(`^the analysis fails with a configuration gap for "([^"]*)"$`, maCtx.analysisFailsWithGap)
	sc.Step(`^planting opportunities are ranked$`, maCtx.rankOpportunities)
	sc.Step(`^"([^"]*)" is ranked (\d+) with opportunity score (\d+(?:\.\d+)?)$`, maCtx.rankedWithScore)
	sc.Step(`^the ranking contains (\d+) recommendations?$`, maCtx.rankingContains)
	sc.Step(`^the ranking reports a failure for "([^"]*)"$`, maCtx.rankingReportsFailure)
}

func (ctx *marketAnalysisContext) referenceCapacity(capacity float64, cropName string) error {
	ctx.capacities[crop.ParseCropType(cropName)] = capacity
	return nil
}

func (ctx *marketAnalysisContext) farmersReported(area float64, cropName string) error {
	if area == 0 {
		return nil
	}
	ctx.reportSeq++
	report, err := crop.NewCropReport(
		fmt.Sprintf("report-%d", ctx.reportSeq),
		cropName, area, 41.31, 69.28, nil, time.Now().UTC())
	if err != nil {
		return err
	}
	ctx.reports = append(ctx.reports, report)
	return nil
}

func (ctx *marketAnalysisContext) priceTrend(cropName, trend string) error {
	ctx.trends[crop.ParseCropType(cropName)] = pricing.ParsePriceTrend(trend)
	return nil
}

func (ctx *marketAnalysisContext) scoringConfig() supply.ScoringConfig {
	return supply.NewStaticScoringConfig(ctx.capacities, supply.DefaultScoringPolicy())
}

func (ctx *marketAnalysisContext) priceReferences() map[crop.CropType]pricing.PriceInfo {
	prices := make(map[crop.CropType]pricing.PriceInfo, len(ctx.trends))
	for cropType, trend := range ctx.trends {
		prices[cropType] = pricing.PriceInfo{Price: 1000, Trend: trend}
	}
	return prices
}

func (ctx *marketAnalysisContext) analyzeMarket(cropName string) error {
	cropType := crop.ParseCropType(cropName)
	aggregates := supply.ComputeSupplyAggregates(ctx.reports)

	trend, ok := ctx.trends[cropType]
	if !ok {
		trend = pricing.PriceTrendStable
	}

	ctx.analysis, ctx.analysisErr = supply.AnalyzeMarket(
		cropType,
		aggregates[cropType],
		pricing.PriceInfo{Price: 1000, Trend: trend},
		ctx.scoringConfig(),
	)
	return nil
}

func (ctx *marketAnalysisContext) supplyScoreIs(expected float64) error {
	if ctx.analysisErr != nil {
		return fmt.Errorf("analysis failed: %w", ctx.analysisErr)
	}
	if ctx.analysis.SupplyScore != expected {
		return fmt.Errorf("expected supply score %v, got %v", expected, ctx.analysis.SupplyScore)
	}
	return nil
}

func (ctx *marketAnalysisContext) saturationLevelIs(expected string) error {
	if ctx.analysisErr != nil {
		return fmt.Errorf("analysis failed: %w", ctx.analysisErr)
	}
	if ctx.analysis.SaturationLevel.String() != expected {
		return fmt.Errorf("expected saturation %q, got %q", expected, ctx.analysis.SaturationLevel)
	}
	return nil
}

func (ctx *marketAnalysisContext) recommendationIs(expected string) error {
	if ctx.analysisErr != nil {
		return fmt.Errorf("analysis failed: %w", ctx.analysisErr)
	}
	if ctx.analysis.Recommendation.String() != expected {
		return fmt.Errorf("expected recommendation %q, got %q", expected, ctx.analysis.Recommendation)
	}
	return nil
}

func (ctx *marketAnalysisContext) analysisFailsWithGap(what string) error {
	if ctx.analysisErr == nil {
		return fmt.Errorf("expected a configuration gap, analysis succeeded")
	}
	var missing *supply.ConfigurationMissingError
	if !errors.As(ctx.analysisErr, &missing) {
		return fmt.Errorf("expected ConfigurationMissingError, got %v", ctx.analysisErr)
	}
	if missing.What != what {
		return fmt.Errorf("expected gap for %q, got %q", what, missing.What)
	}
	return nil
}

func (ctx *marketAnalysisContext) rankOpportunities() error {
	cropTypes := make([]crop.CropType, 0, len(ctx.capacities))
	for cropType := range ctx.capacities {
		cropTypes = append(cropTypes, cropType)
	}

	ctx.ranking = supply.RankPlantingOpportunities(
		cropTypes,
		supply.ComputeSupplyAggregates(ctx.reports),
		ctx.priceReferences(),
		ctx.scoringConfig(),
	)
	return nil
}

func (ctx *marketAnalysisContext) rankedWithScore(cropName string, position int, score float64) error {
	if position < 1 || position > len(ctx.ranking.Recommendations) {
		return fmt.Errorf("position %d out of range (%d recommendations)", position, len(ctx.ranking.Recommendations))
	}
	rec := ctx.ranking.Recommendations[position-1]
	if rec.CropType != crop.ParseCropType(cropName) {
		return fmt.Errorf("expected %q at position %d, got %q", cropName, position, rec.CropType)
	}
	if rec.OpportunityScore != score {
		return fmt.Errorf("expected opportunity score %v for %q, got %v", score, cropName, rec.OpportunityScore)
	}
	return nil
}

func (ctx *marketAnalysisContext) rankingContains(count int) error {
	if len(ctx.ranking.Recommendations) != count {
		return fmt.Errorf("expected %d recommendations, got %d", count, len(ctx.ranking.Recommendations))
	}
	return nil
}

func (ctx *marketAnalysisContext) rankingReportsFailure(cropName string) error {
	cropType := crop.ParseCropType(cropName)
	for _, failure := range ctx.ranking.Failures {
		if failure.CropType == cropType {
			return nil
		}
	}
	return fmt.Errorf("no failure recorded for %q", cropName)
}
